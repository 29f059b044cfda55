package pdgid

import (
	"errors"
	"fmt"
)

// Common decoder errors.
var (
	// ErrOutOfRange indicates an integer outside the supported signed 32-bit range.
	ErrOutOfRange = errors.New("pdgid out of range")

	// ErrSyntax indicates text that is not a decimal integer.
	ErrSyntax = errors.New("invalid pdgid syntax")

	// ErrUnknownQuery indicates a query name that is not in the query table.
	ErrUnknownQuery = errors.New("unknown query")
)

// RangeError wraps ErrOutOfRange with the rejected value.
type RangeError struct {
	Value int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("pdgid %d out of range [%d, %d]", e.Value, MinValue, MaxValue)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// SyntaxError wraps ErrSyntax with the rejected input.
type SyntaxError struct {
	Input string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid pdgid %q", e.Input)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

// IsOutOfRange checks if an error is a range error.
func IsOutOfRange(err error) bool {
	return errors.Is(err, ErrOutOfRange)
}

// IsSyntax checks if an error is a syntax error.
func IsSyntax(err error) bool {
	return errors.Is(err, ErrSyntax)
}
