package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for the parse/build error taxonomy. File-level I/O errors
// are returned wrapped but otherwise untranslated.
var (
	// ErrFormat marks a structurally malformed record: missing marker,
	// too few fields, or an unparseable number.
	ErrFormat = errors.New("malformed record")

	// ErrReference marks an edge referencing a node id with no entry in the
	// lithology or node property mappings.
	ErrReference = errors.New("unresolved node reference")

	// ErrNodeNotFound is returned by graph lookups for absent nodes.
	ErrNodeNotFound = errors.New("node not found")

	// ErrEdgeNotFound is returned by graph lookups for absent edges.
	ErrEdgeNotFound = errors.New("edge not found")
)

// ParseError identifies the offending record of a failed model parse.
// All parse failures are fatal for that model; there is no partial result.
type ParseError struct {
	File  string // file name within the model source
	Line  int    // 1-based line number, 0 if not line-specific
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Cause)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's cause.
func (e *ParseError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

func parseErrf(file string, line int, format string, args ...any) *ParseError {
	return &ParseError{File: file, Line: line, Cause: fmt.Errorf(format, args...)}
}
