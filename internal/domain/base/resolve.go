package base

import (
	"errors"
	"strconv"
	"strings"
)

// matcher inspects a lower-cased hint. ok reports whether the matcher claimed
// the hint; a claimed hint may still fail with err.
type matcher func(hint string) (spec Spec, ok bool, err error)

// matchers run in precedence order; the first one to claim a hint decides it.
var matchers = []matcher{
	matchWord,
	matchAlias,
	matchBaseWord,
}

// words are checked in declaration order, so "b" is Binary and "d" is Decimal.
var words = []struct {
	name string
	spec Spec
}{
	{"binary", Binary},
	{"octal", Octal},
	{"decimal", Decimal},
	{"hexadecimal", Hexadecimal},
}

var aliases = map[string]Spec{
	"0b": Binary,
	"0o": Octal,
	"0d": Decimal,
	"0":  Decimal,
	"0x": Hexadecimal,
	"x":  Hexadecimal,
}

// baseWord is the literal tried, with progressively shorter prefixes, in front
// of a custom radix: "base17", "bas17", "ba17", "b17", "17".
const baseWord = "base"

// Resolve maps a hint such as "hex", "0o", "b", "base17" or "17" to a Spec.
// Matching is case-insensitive.
func Resolve(hint string) (Spec, error) {
	lower := strings.ToLower(hint)
	for _, m := range matchers {
		spec, ok, err := m(lower)
		if !ok {
			continue
		}
		if err != nil {
			return Spec{}, err
		}
		return spec, nil
	}
	return Spec{}, &HintError{Hint: hint}
}

// matchWord claims a non-empty hint that prefixes a canonical base name.
func matchWord(hint string) (Spec, bool, error) {
	if hint == "" {
		return Spec{}, false, nil
	}
	for _, w := range words {
		if strings.HasPrefix(w.name, hint) {
			return w.spec, true, nil
		}
	}
	return Spec{}, false, nil
}

// matchAlias claims the inline-prefix spellings.
func matchAlias(hint string) (Spec, bool, error) {
	spec, ok := aliases[hint]
	return spec, ok, nil
}

// matchBaseWord strips the longest matching prefix of "base" and reads the
// remainder as a uint8 radix. A remainder that does not parse is reported only
// when a word prefix was actually stripped or the remainder is numeric; plain
// words fall through so they surface as invalid hints.
func matchBaseWord(hint string) (Spec, bool, error) {
	var reported error
	for n := len(baseWord); n >= 0; n-- {
		rest, found := strings.CutPrefix(hint, baseWord[:n])
		if !found {
			continue
		}
		radix, err := parseRadix(rest)
		if err == nil {
			spec, err := Custom(uint8(radix))
			return spec, true, err
		}
		if reported == nil && (n > 0 || isDigits(strings.TrimPrefix(rest, "+"))) {
			reported = &BaseError{Text: rest, Err: numCause(err)}
		}
	}
	if reported != nil {
		return Spec{}, true, reported
	}
	return Spec{}, false, nil
}

// parseRadix reads a decimal uint8, allowing one leading plus sign.
func parseRadix(s string) (uint64, error) {
	return strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 8)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// numCause drops the strconv function and input from a parse failure, leaving
// the reason ("invalid syntax", "value out of range").
func numCause(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
