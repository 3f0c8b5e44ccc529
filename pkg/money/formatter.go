// Package money formats decimal amounts the way a store is configured to
// display them: a fixed number of decimals plus thousands and decimal separators.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultDecimals          = 2
	DefaultThousandSeparator = ","
	DefaultDecimalSeparator  = "."
)

// Formatter renders decimals with fixed places and custom separators.
type Formatter struct {
	Decimals          int32
	ThousandSeparator string
	DecimalSeparator  string
}

// NewFormatter builds a Formatter. Negative decimals fall back to the default
// and an empty decimal separator falls back to ".". An empty thousands
// separator is valid and disables grouping.
func NewFormatter(decimals int, thousandSep, decimalSep string) Formatter {
	if decimals < 0 {
		decimals = DefaultDecimals
	}
	if decimalSep == "" {
		decimalSep = DefaultDecimalSeparator
	}
	return Formatter{
		Decimals:          int32(decimals),
		ThousandSeparator: thousandSep,
		DecimalSeparator:  decimalSep,
	}
}

// Default returns the formatter used when no store configuration is available.
func Default() Formatter {
	return NewFormatter(DefaultDecimals, DefaultThousandSeparator, DefaultDecimalSeparator)
}

// Format renders d, e.g. 1234.5 -> "1,234.50".
func (f Formatter) Format(d decimal.Decimal) string {
	rounded := d.Round(f.Decimals)
	fixed := rounded.Abs().StringFixed(f.Decimals)

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(group(intPart, f.ThousandSeparator))
	if f.Decimals > 0 {
		b.WriteString(f.decimalSeparator())
		b.WriteString(fracPart)
	}
	return b.String()
}

func (f Formatter) decimalSeparator() string {
	if f.DecimalSeparator == "" {
		return DefaultDecimalSeparator
	}
	return f.DecimalSeparator
}

func group(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FromCents converts an integer amount in minor units to a decimal.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
