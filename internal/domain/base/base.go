// Package base models numeric bases and resolves free-form base hints.
//
// A Spec is a validated radix in [2,36]. The four canonical bases (binary,
// octal, decimal, hexadecimal) have names and icons of their own; every other
// radix is a custom base that can be parsed but not rendered.
package base

import "fmt"

// Radix bounds accepted by Custom.
const (
	MinRadix = 2
	MaxRadix = 36
)

// Spec is a resolved numeric base. The zero value is not a valid Spec;
// obtain one from the canonical values, Custom, or Resolve.
//
// A custom Spec never equals a canonical one, even for the same radix:
// "base16" names Base16, not Hexadecimal.
type Spec struct {
	radix  uint8
	custom bool
}

// Canonical bases.
var (
	Binary      = Spec{radix: 2}
	Octal       = Spec{radix: 8}
	Decimal     = Spec{radix: 10}
	Hexadecimal = Spec{radix: 16}
)

// Canonical lists the bases offered as conversion targets, in output order.
var Canonical = []Spec{Binary, Octal, Decimal, Hexadecimal}

// Custom returns the custom Spec for radix n, or a *RangeError when n is
// outside [2,36].
func Custom(n uint8) (Spec, error) {
	if n < MinRadix || n > MaxRadix {
		return Spec{}, &RangeError{Radix: n}
	}
	return Spec{radix: n, custom: true}, nil
}

// Radix returns the numeric base.
func (s Spec) Radix() int {
	return int(s.radix)
}

// IsCanonical reports whether s is one of binary, octal, decimal or hexadecimal.
func (s Spec) IsCanonical() bool {
	switch s {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// String returns the display name: "Binary", "Hexadecimal", "Base17", ...
func (s Spec) String() string {
	switch s {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	}
	return fmt.Sprintf("Base%d", s.radix)
}

// Icon returns the icon path shown next to results in this base.
func (s Spec) Icon() string {
	if s.IsCanonical() {
		return "icons/" + s.String() + ".png"
	}
	return "icons/Custom.png"
}
