package pdfmeta

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound reports a Remove or Rename for a key the Info dictionary
// does not hold.
var ErrKeyNotFound = errors.New("pdfmeta: key not found")

// ErrInvalidKey reports a metadata key that cannot be written as a PDF
// name: empty, or containing bytes outside printable ASCII, delimiters,
// or '#'.
var ErrInvalidKey = errors.New("pdfmeta: invalid metadata key")

// LoadError reports a file that could not be read or parsed as a PDF.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("pdfmeta: load: %v", e.Err)
	}
	return fmt.Sprintf("pdfmeta: load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// StructureError reports a trailer or object graph inconsistent in a way
// that blocks locating or creating the Info dictionary.
type StructureError struct {
	Reason string
	Err    error
}

func (e *StructureError) Error() string {
	if e.Err == nil {
		return "pdfmeta: " + e.Reason
	}
	return fmt.Sprintf("pdfmeta: %s: %v", e.Reason, e.Err)
}

func (e *StructureError) Unwrap() error { return e.Err }

// IOError reports a filesystem failure while persisting a document.
type IOError struct {
	Op   string // "save" or "rename"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("pdfmeta: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
