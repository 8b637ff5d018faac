// Package pricing computes quote values. Every function works on raw decimal
// values; currency formatting belongs to the presentation layer and its
// output is never parsed back.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// LineSubtotal returns unitPrice × length × width × quantity.
func LineSubtotal(unitPrice, length, width decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.
		Mul(length).
		Mul(width).
		Mul(decimal.NewFromInt(int64(quantity)))
}

// Adjustments are the optional quote-level terms. Nil means absent (zero).
type Adjustments struct {
	Shipping     *decimal.Decimal
	Installation *decimal.Decimal
	Discount     *decimal.Decimal
}

// OrderTotal returns Σ subtotals + shipping + installation − discount.
// The result is not clamped and may be negative.
func OrderTotal(subtotals []decimal.Decimal, adj Adjustments) decimal.Decimal {
	return Sum(subtotals).
		Add(valueOrZero(adj.Shipping)).
		Add(valueOrZero(adj.Installation)).
		Sub(valueOrZero(adj.Discount))
}

// Sum adds the given values.
func Sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Summary is the breakdown shown under a quote's item table.
type Summary struct {
	ItemsSubtotal decimal.Decimal
	Shipping      decimal.Decimal
	Installation  decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
}

func Summarize(subtotals []decimal.Decimal, adj Adjustments) Summary {
	return Summary{
		ItemsSubtotal: Sum(subtotals),
		Shipping:      valueOrZero(adj.Shipping),
		Installation:  valueOrZero(adj.Installation),
		Discount:      valueOrZero(adj.Discount),
		Total:         OrderTotal(subtotals, adj),
	}
}

// ParseDecimal reads a form value. Blank or non-numeric input is zero; a
// decimal comma ("1,5") is accepted.
func ParseDecimal(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FromFloat converts a stored dimension. NaN and values beyond MaxDimension
// count as zero; callers validate input against MaxDimension first.
func FromFloat(f float64) decimal.Decimal {
	if f != f || f > MaxDimension || f < -MaxDimension {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// MaxDimension is the largest length or width, in meters, a line item accepts.
const MaxDimension = 1e12

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
