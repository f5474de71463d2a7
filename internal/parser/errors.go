package parser

import (
	"errors"
	"fmt"
)

// Decode error kinds. Every error returned by the parser wraps exactly one
// of these, so callers can classify with errors.Is and count per kind.
var (
	ErrShortBuffer    = errors.New("short buffer")
	ErrBadVersion     = errors.New("bad version")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrUnknownFieldID = errors.New("unknown field id")
	ErrBadSetID       = errors.New("bad set id")
	ErrCountMismatch  = errors.New("count mismatch")
)

// shortBuffer builds a ShortBuffer error naming the structure that could
// not be read and the shortfall.
func shortBuffer(structure string, need, got int) error {
	return fmt.Errorf("%w: %s needs %d bytes, got %d", ErrShortBuffer, structure, need, got)
}

// ErrorKind returns a stable label for a decode error, used as a metric
// label value. Unclassified errors map to "other".
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrShortBuffer):
		return "short_buffer"
	case errors.Is(err, ErrBadVersion):
		return "bad_version"
	case errors.Is(err, ErrLengthMismatch):
		return "length_mismatch"
	case errors.Is(err, ErrUnknownFieldID):
		return "unknown_field_id"
	case errors.Is(err, ErrBadSetID):
		return "bad_set_id"
	case errors.Is(err, ErrCountMismatch):
		return "count_mismatch"
	default:
		return "other"
	}
}
