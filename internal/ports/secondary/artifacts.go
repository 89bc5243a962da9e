package secondary

import "context"

// ArtifactStore defines the secondary port for reading and emitting generated files.
type ArtifactStore interface {
	// Exists reports whether a file or directory is present at path.
	Exists(ctx context.Context, path string) (bool, error)

	// EnsureDir creates a directory with all parent directories.
	EnsureDir(ctx context.Context, path string, mode uint32) error

	// CreateFile writes content to a new file. It never overwrites:
	// an existing target yields an error matching fs.ErrExist.
	CreateFile(ctx context.Context, path string, content []byte, mode uint32) error

	// ListDirectories returns the names of the immediate subdirectories of path, sorted.
	ListDirectories(ctx context.Context, path string) ([]string, error)

	// ReadFile returns the content of the file at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}
