package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*LocalStorage, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "/images/portfolio"})
	require.NoError(t, err)
	return store, dir
}

func TestLocalStorageSaveAndExists(t *testing.T) {
	store, dir := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a.png", strings.NewReader("content")))

	data, err := os.ReadFile(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	ok, err := store.Exists(ctx, "a.png")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "missing.png")
	require.NoError(t, err)
	assert.False(t, ok)

	// No temp files left behind after a successful save.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStorageDeleteIdempotent(t *testing.T) {
	store, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "b.png", strings.NewReader("x")))
	require.NoError(t, store.Delete(ctx, "b.png"))

	ok, err := store.Exists(ctx, "b.png")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent file is a no-op.
	require.NoError(t, store.Delete(ctx, "b.png"))
}

func TestLocalStorageURL(t *testing.T) {
	store, _ := newTestStorage(t)
	assert.Equal(t, "/images/portfolio/c.png", store.URL("c.png"))
}

func TestNewLocalStorageCreatesBasePath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "/images/portfolio"})
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
