package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var errSubCentPrecision = errors.New("amount has sub-cent precision")

// All arithmetic in this package is integer cents; decimal is only used at
// the edges, for rendering amounts in API payloads and parsing human-written
// prices in seed data.

// FormatCents renders integer cents as a two-decimal amount string,
// e.g. 2550 -> "25.50".
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// ParseAmountCents parses a decimal amount string ("19.99") into integer
// cents, rejecting values with sub-cent precision.
func ParseAmountCents(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, errSubCentPrecision
	}
	return cents.IntPart(), nil
}
