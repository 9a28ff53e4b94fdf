package services

// Hand-rolled fakes for the repository and blob-store interfaces. Each fake
// records what it was asked to do and returns whatever error it is primed with.

import (
	"io"
	"strings"

	"foundation_backend/internal/models"
	"foundation_backend/internal/repositories"
	"foundation_backend/internal/storage"
)

type fakeMemberRepo struct {
	members   []models.Member
	createErr error
	listErr   error
	created   []*models.Member
	count     int
	countErr  error
}

func (f *fakeMemberRepo) CreateMember(_ repositories.SQLExecutor, m *models.Member) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, m)
	return int64(len(f.created)), nil
}

func (f *fakeMemberRepo) GetActiveMembers() ([]models.Member, error) {
	return f.members, f.listErr
}

func (f *fakeMemberRepo) CountActiveMembers() (int, error) {
	return f.count, f.countErr
}

type fakeEventRepo struct {
	events    []models.Event
	createErr error
	created   []*models.Event
	count     int
	countErr  error
}

func (f *fakeEventRepo) CreateEvent(_ repositories.SQLExecutor, e *models.Event) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, e)
	return int64(len(f.created)), nil
}

func (f *fakeEventRepo) GetUpcomingEvents() ([]models.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) CountEvents() (int, error) {
	return f.count, f.countErr
}

type fakeContactRepo struct {
	messages  []models.ContactMessage
	createErr error
	created   []*models.ContactMessage
	lastLimit int
	count     int
	countErr  error
}

func (f *fakeContactRepo) CreateMessage(_ repositories.SQLExecutor, m *models.ContactMessage) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, m)
	return int64(len(f.created)), nil
}

func (f *fakeContactRepo) GetRecentMessages(limit int) ([]models.ContactMessage, error) {
	f.lastLimit = limit
	if limit < len(f.messages) {
		return f.messages[:limit], nil
	}
	return f.messages, nil
}

func (f *fakeContactRepo) CountMessages() (int, error) {
	return f.count, f.countErr
}

type fakeGalleryRepo struct {
	items     []models.GalleryItem
	createErr error
	created   []*models.GalleryItem
	count     int
	countErr  error
}

func (f *fakeGalleryRepo) CreateItem(_ repositories.SQLExecutor, item *models.GalleryItem) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	f.created = append(f.created, item)
	return int64(len(f.created)), nil
}

func (f *fakeGalleryRepo) GetItems() ([]models.GalleryItem, error) {
	return f.items, nil
}

func (f *fakeGalleryRepo) CountItems() (int, error) {
	return f.count, f.countErr
}

// fakeBlobStore records saves and removals in memory.
type fakeBlobStore struct {
	saveErr error
	saved   []string
	removed []string
}

func (f *fakeBlobStore) Save(originalName string, src io.Reader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	stored := "20240101_120000_" + storage.SanitizeFilename(originalName)
	f.saved = append(f.saved, stored)
	_, _ = io.Copy(io.Discard, src)
	return stored, nil
}

func (f *fakeBlobStore) Path(filename string) (string, error) {
	for _, s := range f.saved {
		if s == filename && !f.isRemoved(filename) {
			return "/blobs/" + filename, nil
		}
	}
	return "", storage.ErrBlobNotFound
}

func (f *fakeBlobStore) Remove(filename string) error {
	f.removed = append(f.removed, filename)
	return nil
}

func (f *fakeBlobStore) isRemoved(filename string) bool {
	for _, r := range f.removed {
		if strings.EqualFold(r, filename) {
			return true
		}
	}
	return false
}
