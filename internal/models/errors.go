package models

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidModel means the identifier does not resolve to a registered model.
	ErrInvalidModel = errors.New("invalid model")

	// ErrIntrospectionUnavailable means no introspection driver is compiled in for the connection.
	ErrIntrospectionUnavailable = errors.New("schema introspection unavailable")

	// ErrConnection means the data store could not be reached.
	ErrConnection = errors.New("database connection failed")

	// ErrInvalidStub means an explicit stub override path does not exist.
	ErrInvalidStub = errors.New("stub file does not exist")

	// ErrTableNotFound means the model's table is missing from the data store.
	ErrTableNotFound = errors.New("table not found")
)

// GenerationError wraps a pipeline failure with the identifier or path involved.
type GenerationError struct {
	Op         string // "lookup", "stub", "introspect", ...
	Identifier string // Model or table identifier
	Path       string // Attempted path, if any
	Err        error
}

func (e *GenerationError) Error() string {
	msg := e.Op
	if e.Identifier != "" {
		msg += fmt.Sprintf(" [%s]", e.Identifier)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	return msg + ": " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
