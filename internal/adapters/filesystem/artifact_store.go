// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/example/crudgen/internal/ports/secondary"
)

// ArtifactStore implements secondary.ArtifactStore on the local filesystem.
type ArtifactStore struct{}

// NewArtifactStore creates a new filesystem artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{}
}

// Exists checks if a file or directory exists at path.
func (a *ArtifactStore) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", path, err)
	}
	return true, nil
}

// EnsureDir creates a directory with all parent directories.
func (a *ArtifactStore) EnsureDir(ctx context.Context, path string, mode uint32) error {
	if err := os.MkdirAll(path, os.FileMode(mode)); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// CreateFile writes content to a new file, refusing to replace an existing one.
// The returned error matches fs.ErrExist when the target is already present.
func (a *ArtifactStore) CreateFile(ctx context.Context, path string, content []byte, mode uint32) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, os.FileMode(mode))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := f.Write(content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// ListDirectories returns the sorted names of the subdirectories of path.
func (a *ArtifactStore) ListDirectories(ctx context.Context, path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ReadFile returns the content of the file at path.
func (a *ArtifactStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return content, nil
}

// Ensure ArtifactStore implements the interface
var _ secondary.ArtifactStore = (*ArtifactStore)(nil)
