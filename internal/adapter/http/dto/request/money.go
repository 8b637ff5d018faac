package request

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount reads a money or measure value sent as a string. A decimal
// comma ("1.080,50" or "1,5") is accepted, with dots before it read as
// thousands separators. Without a comma a single dot is always the decimal
// separator: "1.080" is 1.08 and "2.125" is 2.125. Blank input and dots after
// the comma ("1,080.50") are rejected.
func ParseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%s: %w", field, ErrInvalidAmount)
	}
	if i := strings.Index(s, ","); i >= 0 {
		if strings.Contains(s[i:], ".") {
			return decimal.Zero, fmt.Errorf("%s: %w", field, ErrInvalidAmount)
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, ErrInvalidAmount)
	}
	return d, nil
}

func parseOptionalAmount(field string, s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := ParseAmount(field, *s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
