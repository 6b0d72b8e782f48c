package sudoku

import "fmt"

// MalformedInputError reports that a grid or text encoding could not be
// interpreted as a valid Sudoku instance: wrong shape, non-square size,
// a grid dimension that isn't a perfect square, or a value outside the
// valid range. It is always returned, never panicked -- malformed input
// is surfaced to the caller at this package's boundary.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("sudoku: malformed input: %s", e.Reason)
}

func malformed(format string, a ...any) error {
	return &MalformedInputError{Reason: fmt.Sprintf(format, a...)}
}
