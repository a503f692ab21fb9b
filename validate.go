package tpp

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

// ParseError reports a source line the parser refused.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidateLine returns an error if line is not valid UTF-8 or contains NUL.
func ValidateLine(line string) error {
	if !utf8.ValidString(line) {
		return ErrInvalidUTF8
	}
	if strings.IndexByte(line, 0x00) >= 0 {
		return ErrBinaryInput
	}
	return nil
}
