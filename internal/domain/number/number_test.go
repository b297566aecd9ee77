package number

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/corey/radix/internal/domain/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hint(s string) *string { return &s }

func TestParse_InlinePrefixes(t *testing.T) {
	tests := []struct {
		text  string
		value int64
		spec  base.Spec
	}{
		{"0xFF", 255, base.Hexadecimal},
		{"0xff", 255, base.Hexadecimal},
		{"0b1010", 10, base.Binary},
		{"0o777", 511, base.Octal},
		{"0d42", 42, base.Decimal},
	}
	for _, tt := range tests {
		got, err := Parse(tt.text, nil)
		require.NoError(t, err, "text %q", tt.text)
		assert.Equal(t, Parsed{Value: tt.value, Base: tt.spec}, got, "text %q", tt.text)
	}
}

func TestParse_DecimalThenHex(t *testing.T) {
	got, err := Parse("10", nil)
	require.NoError(t, err)
	assert.Equal(t, Parsed{Value: 10, Base: base.Decimal}, got)

	got, err = Parse("ff", nil)
	require.NoError(t, err)
	assert.Equal(t, Parsed{Value: 255, Base: base.Hexadecimal}, got)

	got, err = Parse("1e5", nil)
	require.NoError(t, err)
	assert.Equal(t, Parsed{Value: 0x1e5, Base: base.Hexadecimal}, got)

	got, err = Parse("-12", nil)
	require.NoError(t, err)
	assert.Equal(t, Parsed{Value: -12, Base: base.Decimal}, got)
}

func TestParse_FallbackReportsHexFailure(t *testing.T) {
	_, err := Parse("xyz", nil)
	var ne *ParseError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, base.Hexadecimal, ne.Base)
	assert.Equal(t, "xyz", ne.Text)
	assert.Equal(t, "Number 'xyz' could not be parsed as Hexadecimal: invalid syntax", err.Error())
}

func TestParse_WithHint(t *testing.T) {
	got, err := Parse("777", hint("octal"))
	require.NoError(t, err)
	assert.Equal(t, Parsed{Value: 511, Base: base.Octal}, got)

	got, err = Parse("z", hint("base36"))
	require.NoError(t, err)
	assert.Equal(t, int64(35), got.Value)
	assert.Equal(t, "Base36", got.Base.String())

	_, err = Parse("z", hint("base16"))
	assert.EqualError(t, err, "Number 'z' could not be parsed as Base16: invalid syntax")

	// A hint overrides inline prefixes: "0x10" is not hexadecimal digits.
	_, err = Parse("0x10", hint("hex"))
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParse_HintErrorsPropagate(t *testing.T) {
	_, err := Parse("10", hint("zzz"))
	assert.ErrorIs(t, err, base.ErrInvalidHint)

	_, err = Parse("10", hint("base99"))
	assert.ErrorIs(t, err, base.ErrBaseOutOfRange)

	_, err = Parse("10", hint("base999"))
	assert.ErrorIs(t, err, base.ErrInvalidBase)
}

func TestParse_InvalidDigits(t *testing.T) {
	_, err := Parse("xyz", hint("hex"))
	var ne *ParseError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, base.Hexadecimal, ne.Base)
	assert.ErrorIs(t, err, strconv.ErrSyntax)

	_, err = Parse("102", hint("bin"))
	assert.ErrorIs(t, err, ErrInvalidNumber)

	_, err = Parse("0b", nil)
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, "", ne.Text)
	assert.Equal(t, base.Binary, ne.Base)

	_, err = Parse("1_000", nil)
	assert.ErrorIs(t, err, ErrInvalidNumber)
}

func TestParse_Overflow(t *testing.T) {
	_, err := Parse("9223372036854775808", hint("dec"))
	var ne *ParseError
	require.ErrorAs(t, err, &ne)
	assert.ErrorIs(t, err, strconv.ErrRange)

	// 65 bits never fit, even as two's complement.
	_, err = Parse("0x1ffffffffffffffff", nil)
	assert.ErrorIs(t, err, strconv.ErrRange)

	got, err := Parse("9223372036854775807", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got.Value)
}

func TestParseIn_TwosComplement(t *testing.T) {
	got, err := ParseIn("ffffffffffffffff", base.Hexadecimal)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), got.Value)

	got, err = ParseIn("8000000000000000", base.Hexadecimal)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), got.Value)

	// Custom bases are never rendered, so they stay strictly signed.
	b36, err := base.Custom(36)
	require.NoError(t, err)
	_, err = ParseIn("zzzzzzzzzzzzzzzz", b36)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestFormat_Canonical(t *testing.T) {
	tests := []struct {
		value int64
		spec  base.Spec
		want  string
	}{
		{255, base.Binary, "11111111"},
		{255, base.Octal, "377"},
		{255, base.Decimal, "255"},
		{255, base.Hexadecimal, "ff"},
		{0, base.Binary, "0"},
		{-1, base.Decimal, "-1"},
		{-1, base.Hexadecimal, "ffffffffffffffff"},
		{-1, base.Octal, "1777777777777777777777"},
		{math.MinInt64, base.Binary, "1" + strings.Repeat("0", 63)},
	}
	for _, tt := range tests {
		got, err := Format(tt.value, tt.spec)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Format(%d, %s)", tt.value, tt.spec)
	}
}

func TestFormat_CustomUnsupported(t *testing.T) {
	b17, err := base.Custom(17)
	require.NoError(t, err)

	_, err = Format(10, b17)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, "Base17 formatting is not supported", err.Error())
}

func TestParseIn_CustomRadixIsStrictlySigned(t *testing.T) {
	b16, err := base.Custom(16)
	require.NoError(t, err)

	got, err := ParseIn("ff", b16)
	require.NoError(t, err)
	assert.Equal(t, Parsed{Value: 255, Base: b16}, got)

	_, err = ParseIn("ffffffffffffffff", b16)
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = Format(255, b16)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRoundTrip(t *testing.T) {
	values := []int64{0, 1, 7, 10, 255, 511, 1 << 40, math.MaxInt64, -1, -255, math.MinInt64}
	for _, spec := range base.Canonical {
		for _, v := range values {
			text, err := Format(v, spec)
			require.NoError(t, err)
			got, err := ParseIn(text, spec)
			require.NoError(t, err, "re-parse %q as %s", text, spec)
			assert.Equal(t, v, got.Value, "%s round trip of %d", spec, v)
		}
	}
}
