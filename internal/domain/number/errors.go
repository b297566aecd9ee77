package number

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/corey/radix/internal/domain/base"
)

// Sentinels for errors.Is checks against engine failures.
var (
	ErrInvalidNumber     = errors.New("invalid number")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ParseError reports text that is not a valid int64 in the attempted base.
type ParseError struct {
	Text string
	Base base.Spec
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Number '%s' could not be parsed as %s: %v", e.Text, e.Base, e.Err)
}

func (e *ParseError) Is(target error) bool { return target == ErrInvalidNumber }

func (e *ParseError) Unwrap() error { return e.Err }

// FormatError reports a request to render in a base the engine cannot render.
// Convert only targets canonical bases, so this signals a caller bug.
type FormatError struct {
	Base base.Spec
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s formatting is not supported", e.Base)
}

func (e *FormatError) Is(target error) bool { return target == ErrUnsupportedFormat }

func numCause(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
