package ir

import (
	"errors"
	"fmt"
)

// ErrNotObject is the sentinel wrapped by every PathError.
var ErrNotObject = errors.New("not an object")

// PathError reports a structural mismatch during key path navigation:
// a node that must be an Object to descend further is something else.
type PathError struct {
	// Path is the key path prefix walked before the mismatch.
	Path string
	// Type is the type of the node found there.
	Type Type
}

func (e *PathError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("expected Object, got %s", e.Type)
	}
	return fmt.Sprintf("expected Object at %q, got %s", e.Path, e.Type)
}

func (e *PathError) Unwrap() error {
	return ErrNotObject
}
