package storage

import (
	"context"
	"io"
)

// Storage is the file-store boundary the asset manager writes through.
// Paths are relative; the implementation decides where they land.
type Storage interface {
	// Save stores a file at the given path.
	Save(ctx context.Context, path string, reader io.Reader) error

	// Delete removes a file. Deleting an absent file is a no-op.
	Delete(ctx context.Context, path string) error

	// Exists checks if a file exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)

	// URL returns the public URL for the file.
	URL(path string) string
}

// Config holds storage configuration.
type Config struct {
	BasePath string // filesystem root
	BaseURL  string // public URL prefix consumers rely on
}
