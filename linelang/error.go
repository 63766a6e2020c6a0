package linelang

import (
	"errors"
	"fmt"
)

var (
	ErrWhitespaceInKey      = errors.New("whitespace in key")
	ErrQuoteInKey           = errors.New("quote in key")
	ErrBackslashInKey       = errors.New("backslash in key")
	ErrMissingColon         = errors.New("missing colon")
	ErrEmptyKey             = errors.New("empty key")
	ErrKeyTooLong           = errors.New("key too long")
	ErrValueTooLong         = errors.New("value too long")
	ErrWhitespaceAfterColon = errors.New("whitespace after colon")
	ErrEmptyValue           = errors.New("empty unquoted value")
	ErrBackslashInValue     = errors.New("backslash in unquoted value")
	ErrTrailingBackslash    = errors.New("trailing backslash")
	ErrUnknownEscape        = errors.New("unknown escape")
	ErrUnclosedQuote        = errors.New("unclosed quote")
)

// ParseError reports the byte offset within the line where parsing stopped.
// It wraps one of the sentinel errors above, so errors.Is works against them.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
