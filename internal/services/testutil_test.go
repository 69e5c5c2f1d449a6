package services

import (
	"bytes"
	"path/filepath"
	"testing"

	"klodtattoo_backend/internal/assets"
	"klodtattoo_backend/internal/config"
	"klodtattoo_backend/internal/database"
	"klodtattoo_backend/internal/storage"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestImages returns an asset manager over a temp directory plus the
// directory itself so tests can look at the files behind the URLs.
func newTestImages(t *testing.T) (*assets.Manager, string) {
	t.Helper()

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: dir,
		BaseURL:  "/images/portfolio",
	})
	require.NoError(t, err)
	return assets.NewManager(store), dir
}

// pngUpload yields bytes that sniff as image/png.
func pngUpload() *bytes.Reader {
	content := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x00}, 64)...)
	return bytes.NewReader(content)
}

func imagePath(dir, imageURL string) string {
	return filepath.Join(dir, filepath.Base(imageURL))
}
