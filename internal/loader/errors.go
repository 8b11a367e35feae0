package loader

import (
	"errors"
	"fmt"
)

// Error categories. Use errors.Is against these to classify a load failure.
var (
	// ErrIO covers files that cannot be opened or read.
	ErrIO = errors.New("io error")
	// ErrFormat covers rows that cannot be turned into records.
	ErrFormat = errors.New("format error")
)

// Specific failures, each belonging to one of the categories above.
var (
	ErrFileNotFound = fmt.Errorf("%w: file not found", ErrIO)
	ErrMalformedRow = fmt.Errorf("%w: malformed row", ErrFormat)
	ErrParse        = fmt.Errorf("%w: parse error", ErrFormat)
)

// LoadError describes why a file could not be loaded.
type LoadError struct {
	Path string
	Line int // 0 when the failure is not tied to a line
	Kind error
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v: %v", e.Path, e.Line, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v: %v", e.Path, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the underlying cause to errors.Is/As.
func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// IsIOError reports whether err is an I/O failure.
func IsIOError(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsFormatError reports whether err is a malformed-input failure.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrFormat)
}
