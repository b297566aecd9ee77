package base

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against resolver failures.
var (
	ErrInvalidHint    = errors.New("invalid base hint")
	ErrInvalidBase    = errors.New("invalid base number")
	ErrBaseOutOfRange = errors.New("base out of range")
)

// HintError reports a hint that matched no base name, alias or base<N> form.
type HintError struct {
	Hint string
}

func (e *HintError) Error() string {
	return fmt.Sprintf("Invalid base hint: %s", e.Hint)
}

func (e *HintError) Is(target error) bool { return target == ErrInvalidHint }

// BaseError reports a base<N> remainder that is not a uint8.
type BaseError struct {
	Text string
	Err  error
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("Base hint '%s' could not be parsed as uint8: %v", e.Text, e.Err)
}

func (e *BaseError) Is(target error) bool { return target == ErrInvalidBase }

func (e *BaseError) Unwrap() error { return e.Err }

// RangeError reports a custom radix outside [2,36].
type RangeError struct {
	Radix uint8
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("Base %d is not in [%d, %d]", e.Radix, MinRadix, MaxRadix)
}

func (e *RangeError) Is(target error) bool { return target == ErrBaseOutOfRange }
