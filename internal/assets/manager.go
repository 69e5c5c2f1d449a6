package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"klodtattoo_backend/internal/logger"
	"klodtattoo_backend/internal/storage"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
)

// ErrNotImage means the uploaded bytes are not a recognized image format.
var ErrNotImage = errors.New("uploaded file is not an image")

// Manager owns the portfolio image lifecycle: store on create, replace on
// update, delete on record delete. Each stored file gets a collision-free
// name (uuid + extension) and is addressed publicly through the storage
// base URL.
type Manager struct {
	store storage.Storage
}

func NewManager(store storage.Storage) *Manager {
	return &Manager{store: store}
}

// Store sniffs the content, writes it under a fresh name and returns the
// public URL the record should reference. The caller must only commit the
// record after Store succeeds.
func (m *Manager) Store(ctx context.Context, r io.Reader, originalName string) (string, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	// Trust magic bytes, not the client extension.
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown || !strings.HasPrefix(kind.MIME.Value, "image/") {
		return "", ErrNotImage
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = "." + kind.Extension
	}

	name := uuid.NewString() + ext
	content := io.MultiReader(bytes.NewReader(head), r)

	if err := m.store.Save(ctx, name, content); err != nil {
		return "", fmt.Errorf("store asset %s: %w", name, err)
	}

	return m.store.URL(name), nil
}

// Remove deletes the file behind a public image URL. Absent files are not an
// error; failures are logged and reported but callers treat cleanup as
// best-effort.
func (m *Manager) Remove(ctx context.Context, imageURL string) error {
	name := path.Base(imageURL)
	if name == "" || name == "." || name == "/" {
		return nil
	}
	if err := m.store.Delete(ctx, name); err != nil {
		logger.CtxWarn(ctx, "failed to delete image asset", "asset", name, "error", err.Error())
		return err
	}
	return nil
}

// Exists reports whether the file behind a public image URL is present.
func (m *Manager) Exists(ctx context.Context, imageURL string) (bool, error) {
	return m.store.Exists(ctx, path.Base(imageURL))
}
