// Package number parses text into 64-bit integers using a resolved or guessed
// base and renders the result in the canonical bases.
package number

import (
	"errors"
	"strconv"
	"strings"

	"github.com/corey/radix/internal/domain/base"
)

// Parsed is a successfully interpreted number and the base it was read in.
type Parsed struct {
	Value int64
	Base  base.Spec
}

// inlinePrefixes are checked in order when no hint is given.
var inlinePrefixes = []struct {
	prefix string
	spec   base.Spec
}{
	{"0b", base.Binary},
	{"0o", base.Octal},
	{"0d", base.Decimal},
	{"0x", base.Hexadecimal},
}

// Parse interprets text. A non-nil hint is resolved and decides the base.
// Otherwise an inline prefix (0b, 0o, 0d, 0x) decides it, and failing that the
// text is read as decimal, then as hexadecimal. When both attempts fail the
// hexadecimal error is returned.
func Parse(text string, hint *string) (Parsed, error) {
	if hint != nil {
		spec, err := base.Resolve(*hint)
		if err != nil {
			return Parsed{}, err
		}
		return ParseIn(text, spec)
	}

	for _, p := range inlinePrefixes {
		if rest, ok := strings.CutPrefix(text, p.prefix); ok {
			return ParseIn(rest, p.spec)
		}
	}

	if n, err := ParseIn(text, base.Decimal); err == nil {
		return n, nil
	}
	return ParseIn(text, base.Hexadecimal)
}

// ParseIn reads text strictly in spec: an optional sign followed by digits
// valid for the radix, letters in either case, fitting in an int64.
//
// Binary, octal and hexadecimal also accept an unsigned 64-bit pattern with
// the top bit set and read it as two's complement, which is how Format
// renders negative values in those bases.
func ParseIn(text string, spec base.Spec) (Parsed, error) {
	v, err := strconv.ParseInt(text, spec.Radix(), 64)
	if err != nil && errors.Is(err, strconv.ErrRange) && twosComplement(spec) {
		if u, uerr := strconv.ParseUint(text, spec.Radix(), 64); uerr == nil {
			v, err = int64(u), nil
		}
	}
	if err != nil {
		return Parsed{}, &ParseError{Text: text, Base: spec, Err: numCause(err)}
	}
	return Parsed{Value: v, Base: spec}, nil
}

// Format renders v in spec using lowercase digits. Decimal keeps a minus
// sign; the other canonical bases render negative values as 64-bit two's
// complement. Custom bases yield a *FormatError.
func Format(v int64, spec base.Spec) (string, error) {
	switch {
	case spec == base.Decimal:
		return strconv.FormatInt(v, 10), nil
	case twosComplement(spec):
		return strconv.FormatUint(uint64(v), spec.Radix()), nil
	}
	return "", &FormatError{Base: spec}
}

func twosComplement(spec base.Spec) bool {
	return spec == base.Binary || spec == base.Octal || spec == base.Hexadecimal
}
