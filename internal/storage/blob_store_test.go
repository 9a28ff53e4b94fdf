package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (BlobStore, string) {
	dir := t.TempDir()
	store, err := NewDiskBlobStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"photo.png":            "photo.png",
		"my photo.png":         "my_photo.png",
		"../../etc/passwd":     "passwd",
		"weird$$name!!.jpg":    "weirdname.jpg",
		"..":                   "",
		"___":                  "",
		"CAPS and spaces.webp": "CAPS_and_spaces.webp",
	}
	for input, want := range cases {
		assert.Equal(t, want, SanitizeFilename(input), "input %q", input)
	}
}

func TestSave_StoresTimestampedFile(t *testing.T) {
	store, dir := newTestStore(t)

	stored, err := store.Save("beach cleanup.png", strings.NewReader("fake-png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(stored, "_beach_cleanup.png"), "got %q", stored)
	assert.NotEqual(t, "beach_cleanup.png", stored, "expected a timestamp prefix")

	data, err := os.ReadFile(filepath.Join(dir, stored))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestSave_EmptyFilename(t *testing.T) {
	store, dir := newTestStore(t)

	_, err := store.Save("", strings.NewReader("bytes"))
	assert.True(t, errors.Is(err, ErrInvalidFilename))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be written for an invalid name")
}

func TestPath_MissingBlob(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Path("nope.png")
	assert.True(t, errors.Is(err, ErrBlobNotFound))
}

func TestPath_RejectsTraversal(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Path("../secret.txt")
	assert.True(t, errors.Is(err, ErrInvalidFilename))
}

func TestRemove_DeletesBlob(t *testing.T) {
	store, dir := newTestStore(t)

	stored, err := store.Save("clip.mp4", strings.NewReader("video-bytes"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(stored))

	_, statErr := os.Stat(filepath.Join(dir, stored))
	assert.True(t, os.IsNotExist(statErr))

	assert.True(t, errors.Is(store.Remove(stored), ErrBlobNotFound))
}
