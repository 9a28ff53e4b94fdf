// Package config loads runtime configuration from the environment.
//
// Everything mutable between deployments lives here, including the operator
// credential table, so that services receive their settings at construction
// instead of reading package-level state.
package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"

	"foundation_backend/pkg/utils"
)

// Operator is a single entry in the static credential table. Passwords are
// stored and compared in plaintext; hashing, lockout and rate limiting are
// intentionally absent from this system.
type Operator struct {
	Password string
	Role     string
	Name     string
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Config is the full runtime configuration for the backend.
type Config struct {
	Database DatabaseConfig

	Port string

	// GalleryDir is the blob storage directory for uploaded media.
	GalleryDir string
	// BlogDir is scanned for *.sh files served as blog posts.
	BlogDir string

	// MaxUploadBytes caps multipart upload size (16MB by default).
	MaxUploadBytes int64

	JWTSecret   string
	SessionTTL  time.Duration
	CORSOrigins []string
	Credentials map[string]Operator
}

// defaultCredentials mirrors the foundation leadership table the site ships
// with. Deployments override it by constructing their own Config.
func defaultCredentials() map[string]Operator {
	return map[string]Operator{
		"admin":       {Password: "foundation2024", Role: "Foundation Director", Name: "Sarah Johnson"},
		"coordinator": {Password: "service2024", Role: "Program Coordinator", Name: "Michael Chen"},
		"outreach":    {Password: "community2024", Role: "Outreach Manager", Name: "Amanda Rodriguez"},
		"finance":     {Password: "finance2024", Role: "Finance Director", Name: "David Thompson"},
	}
}

// Load reads configuration from environment variables, with an optional .env
// file, applying defaults for anything unset.
func Load() (*Config, error) {
	// Missing .env is fine; env vars still apply.
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     utils.Getenv("DB_HOST", "localhost"),
			Port:     utils.Getenv("DB_PORT", "5432"),
			User:     utils.Getenv("DB_USER", "foundation_user"),
			Password: utils.Getenv("DB_PASSWORD", "foundation_password"),
			Name:     utils.Getenv("DB_NAME", "foundation_db"),
			SSLMode:  utils.Getenv("DB_SSLMODE", "disable"),
		},
		Port:           utils.Getenv("PORT", "8080"),
		GalleryDir:     utils.Getenv("GALLERY_DIR", "gallery"),
		BlogDir:        utils.Getenv("BLOG_DIR", "."),
		MaxUploadBytes: int64(utils.GetenvInt("MAX_UPLOAD_MB", 16)) << 20,
		JWTSecret:      utils.Getenv("JWT_SECRET", "change-me-foundation-backend-secret"),
		SessionTTL:     time.Duration(utils.GetenvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		Credentials:    defaultCredentials(),
	}

	origins := utils.Getenv("CORS_ALLOWED_ORIGINS", "")
	if origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	return cfg, nil
}
