package nbt

import (
	"errors"
	"fmt"
)

var ErrUnexpectedEOF = errors.New("nbt: unexpected end of buffer")
var ErrTooDeep = errors.New("nbt: nesting too deep")

// FormatError reports structurally invalid input: a length that does not fit
// the buffer, a wrong kind where a specific one was required, or a missing
// field.
type FormatError struct {
	Offset int
	Msg    string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("nbt: format error at offset %d: %s", e.Offset, msg)
	}
	return "nbt: format error: " + msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// UnsupportedTagError reports a tag kind code outside the enumerated kinds.
type UnsupportedTagError struct {
	Offset int
	Kind   byte
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("nbt: unsupported tag kind %d at offset %d", e.Kind, e.Offset)
}

// Errorf builds a FormatError that is not tied to a buffer position.
func Errorf(format string, args ...any) *FormatError {
	return &FormatError{Offset: -1, Msg: fmt.Sprintf(format, args...)}
}

// Wrapf builds a FormatError that wraps err.
func Wrapf(err error, format string, args ...any) *FormatError {
	return &FormatError{Offset: -1, Msg: fmt.Sprintf(format, args...), Err: err}
}
