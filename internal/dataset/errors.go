package dataset

import (
	"errors"
	"fmt"
	"io/fs"
)

// ParseError reports a malformed cell or row in a dataset file. Load-time
// parse failures are fatal to the session; there is no retry.
type ParseError struct {
	File   string
	Line   int
	Column string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s:%d: column %q: %s", e.File, e.Line, e.Column, e.Reason)
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
}

// IsMissingFile reports whether err means a dataset file was not found.
func IsMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsParseError reports whether err (or anything it wraps) is a ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
