package assets

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"klodtattoo_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "/images/portfolio"})
	require.NoError(t, err)
	return NewManager(store), dir
}

func pngBytes() []byte {
	return append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x00}, 700)...)
}

func TestManagerStoreGeneratesFreshName(t *testing.T) {
	m, dir := newTestManager(t)
	ctx := context.Background()

	url, err := m.Store(ctx, bytes.NewReader(pngBytes()), "client-name.png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/images/portfolio/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	assert.NotContains(t, url, "client-name", "stored name must not reuse the client's")

	// Full content lands on disk, including the part past the sniff window.
	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, pngBytes(), data)

	// A second upload of the same file gets its own name.
	url2, err := m.Store(ctx, bytes.NewReader(pngBytes()), "client-name.png")
	require.NoError(t, err)
	assert.NotEqual(t, url, url2)
}

func TestManagerStoreExtensionFallsBackToSniffed(t *testing.T) {
	m, _ := newTestManager(t)

	url, err := m.Store(context.Background(), bytes.NewReader(pngBytes()), "noextension")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestManagerStoreRejectsNonImage(t *testing.T) {
	m, dir := newTestManager(t)

	_, err := m.Store(context.Background(), strings.NewReader("<!doctype html><html></html>"), "page.png")
	require.ErrorIs(t, err, ErrNotImage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestManagerRemoveAndExists(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	url, err := m.Store(ctx, bytes.NewReader(pngBytes()), "a.png")
	require.NoError(t, err)

	ok, err := m.Exists(ctx, url)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.Remove(ctx, url))

	ok, err = m.Exists(ctx, url)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an already-absent asset stays quiet.
	require.NoError(t, m.Remove(ctx, url))
}
