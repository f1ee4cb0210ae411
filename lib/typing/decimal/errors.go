package decimal

import (
	"errors"
	"fmt"
)

// OverflowError means a rescale, widen/narrow, or numeric conversion cannot be
// represented in the destination width. It always names the destination family.
type OverflowError struct {
	width  Width
	reason string
}

func NewOverflowError(width Width, reason string) OverflowError {
	return OverflowError{width: width, reason: reason}
}

func (o OverflowError) Error() string {
	if o.reason == "" {
		return fmt.Sprintf("%s convert overflow", o.width)
	}

	return fmt.Sprintf("%s convert overflow: %s", o.width, o.reason)
}

func (o OverflowError) Width() Width {
	return o.width
}

func IsOverflowError(err error) bool {
	return errors.As(err, &OverflowError{})
}

// ParseError means text did not match the decimal grammar, or its digits do
// not fit the declared precision and scale.
type ParseError struct {
	message string
}

func NewParseError(message string) ParseError {
	return ParseError{message: message}
}

func (p ParseError) Error() string {
	return p.message
}

func IsParseError(err error) bool {
	return errors.As(err, &ParseError{})
}
