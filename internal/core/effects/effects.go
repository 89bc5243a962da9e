// Package effects defines effect types as data structures representing I/O operations.
// Effects are pure data - they describe what should happen, not how.
package effects

// File operations understood by the executor.
const (
	OpMkdir  = "mkdir"
	OpCreate = "create" // Write a new file, failing if it already exists
)

// Default permissions for emitted directories and files.
const (
	DirMode  uint32 = 0755
	FileMode uint32 = 0644
)

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a logging operation.
type LogEffect struct {
	Level   string // debug, info, warn or error
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// FileEffect represents a file system operation.
type FileEffect struct {
	Operation string // OpMkdir or OpCreate
	Path      string
	Content   []byte // For create operations
	Mode      uint32 // File permissions
}

func (e FileEffect) EffectType() string { return "file" }

// Mkdir returns an effect creating path and its parents.
func Mkdir(path string) FileEffect {
	return FileEffect{Operation: OpMkdir, Path: path, Mode: DirMode}
}

// Create returns an effect writing content to a new file at path.
func Create(path string, content []byte) FileEffect {
	return FileEffect{Operation: OpCreate, Path: path, Content: content, Mode: FileMode}
}
