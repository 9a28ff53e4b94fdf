package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"foundation_backend/internal/models"
	"foundation_backend/internal/storage"
	"foundation_backend/pkg/utils"
)

// --- Custom Service Errors for Blog ---
var (
	ErrBlogPostNotFound = errors.New("blog post not found")
	ErrNotScriptFile    = errors.New("not a script file")
)

const (
	blogAuthor    = "Foundation Team"
	excerptLines  = 5
	scriptFileExt = ".sh"
)

// --- BlogService Interface ---
//
// Shell scripts co-located with the server double as blog posts. They are
// discovered by glob on every request; there is no table behind them and no
// creation API.
type BlogService interface {
	ListPosts() ([]models.BlogPost, error)
	GetPost(filename string) (*models.BlogPost, error)
	// ResolveScript maps a post filename to its on-disk path for raw download.
	ResolveScript(filename string) (string, error)
}

// --- blogService Implementation ---
type blogService struct {
	dir string
}

// NewBlogService creates a new instance of BlogService over the given directory.
func NewBlogService(dir string) BlogService {
	return &blogService{dir: dir}
}

// titleFromFilename derives a display title from a script's filename stem:
// underscores become spaces and each word is capitalized.
func titleFromFilename(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), scriptFileExt)
	words := strings.Fields(strings.ReplaceAll(stem, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// excerptOf returns the first few lines of content, with an ellipsis when
// truncated.
func excerptOf(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= excerptLines {
		return content
	}
	return strings.Join(lines[:excerptLines], "\n") + "..."
}

// ListPosts globs the blog directory for scripts, newest first by mtime.
// Unreadable files are logged and skipped rather than failing the listing.
func (s *blogService) ListPosts() ([]models.BlogPost, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*"+scriptFileExt))
	if err != nil {
		return nil, fmt.Errorf("globbing blog directory: %w", err)
	}

	posts := []models.BlogPost{}
	for _, path := range matches {
		content, err := os.ReadFile(path)
		if err != nil {
			utils.LogError(err, "ListPosts: skipping unreadable script "+path)
			continue
		}
		info, err := os.Stat(path)
		if err != nil {
			utils.LogError(err, "ListPosts: skipping unstattable script "+path)
			continue
		}

		posts = append(posts, models.BlogPost{
			Title:     titleFromFilename(path),
			Filename:  filepath.Base(path),
			Author:    blogAuthor,
			Excerpt:   excerptOf(string(content)),
			CreatedAt: info.ModTime().Format(time.RFC3339),
			Size:      info.Size(),
		})
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	return posts, nil
}

// GetPost returns a single post with its full content.
func (s *blogService) GetPost(filename string) (*models.BlogPost, error) {
	path, err := s.ResolveScript(filename)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading blog post %s: %w", filename, err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stating blog post %s: %w", filename, err)
	}

	return &models.BlogPost{
		Title:     titleFromFilename(filename),
		Filename:  filepath.Base(path),
		Author:    blogAuthor,
		Content:   string(content),
		CreatedAt: info.ModTime().Format(time.RFC3339),
		Size:      info.Size(),
	}, nil
}

func (s *blogService) ResolveScript(filename string) (string, error) {
	if !strings.HasSuffix(filename, scriptFileExt) {
		return "", ErrNotScriptFile
	}
	clean := storage.SanitizeFilename(filename)
	if clean == "" {
		return "", ErrNotScriptFile
	}
	path := filepath.Join(s.dir, clean)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrBlogPostNotFound
		}
		return "", fmt.Errorf("stating script %s: %w", clean, err)
	}
	return path, nil
}
