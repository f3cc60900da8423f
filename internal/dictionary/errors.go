package dictionary

import (
	"errors"
	"fmt"
)

// ErrSkipLine is returned for comment and blank lines. It is not a parse failure.
var ErrSkipLine = errors.New("skip line")

// MalformedLineError is returned when a line has no "::" separator.
type MalformedLineError struct {
	Line string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("no translation separator found in line %q", e.Line)
}

// NoTypeIndicatorError is returned when the original word carries no class marker.
type NoTypeIndicatorError struct {
	Line string
	Word string
}

func (e *NoTypeIndicatorError) Error() string {
	return fmt.Sprintf("no type indicator for %q in line %q", e.Word, e.Line)
}

// UnknownVariantTypeError is returned when the original word carries an unsupported marker.
type UnknownVariantTypeError struct {
	Line   string
	Word   string
	Marker string
}

func (e *UnknownVariantTypeError) Error() string {
	return fmt.Sprintf("unknown variant type {%s} for %q in line %q", e.Marker, e.Word, e.Line)
}

// ParseError is returned when a side of a line yields no usable variant.
type ParseError struct {
	Line   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Line)
}

// WordNotFoundError is returned by lookups that miss both the word and its alternate casing.
type WordNotFoundError struct {
	Word      string
	Alternate string
}

func (e *WordNotFoundError) Error() string {
	if e.Alternate == "" || e.Alternate == e.Word {
		return fmt.Sprintf("word %q not found", e.Word)
	}
	return fmt.Sprintf("word %q not found (also tried %q)", e.Word, e.Alternate)
}

// IsWordNotFound reports whether err is or wraps a *WordNotFoundError.
func IsWordNotFound(err error) bool {
	var notFound *WordNotFoundError
	return errors.As(err, &notFound)
}
