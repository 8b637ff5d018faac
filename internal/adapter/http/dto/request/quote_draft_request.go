package request

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase"
)

var ErrInvalidDate = errors.New("invalid date")

var dateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

// DraftStartRequest opens a new quote, or an existing one when OrderID is set.
type DraftStartRequest struct {
	OrderID int `json:"order_id"`
}

type DraftCustomerRequest struct {
	CustomerID int `json:"customer_id" binding:"required"`
}

// LineItemRequest carries measures as strings so "1,5" is accepted.
type LineItemRequest struct {
	MaterialID  int    `json:"material_id" binding:"required"`
	Description string `json:"description" binding:"required"`
	Length      string `json:"length" binding:"required"`
	Width       string `json:"width" binding:"required"`
	Quantity    int    `json:"quantity"`
}

// ToInput defaults the quantity to 1. Range checks are left to the editor.
func (r LineItemRequest) ToInput() (usecase.LineItemInput, error) {
	length, err := ParseAmount("length", r.Length)
	if err != nil {
		return usecase.LineItemInput{}, err
	}
	width, err := ParseAmount("width", r.Width)
	if err != nil {
		return usecase.LineItemInput{}, err
	}
	qty := r.Quantity
	if qty == 0 {
		qty = 1
	}
	return usecase.LineItemInput{
		MaterialID:  r.MaterialID,
		Description: strings.TrimSpace(r.Description),
		Length:      length.InexactFloat64(),
		Width:       width.InexactFloat64(),
		Quantity:    qty,
	}, nil
}

// DraftUpdateRequest patches quote-level fields. An adjustment is removed
// with its clear_* flag; sending both a value and the flag keeps the value.
type DraftUpdateRequest struct {
	Status                *string `json:"status"`
	Date                  *string `json:"date"`
	Notes                 *string `json:"notes"`
	ShippingCost          *string `json:"shipping_cost"`
	InstallationCost      *string `json:"installation_cost"`
	Discount              *string `json:"discount"`
	ClearShippingCost     bool    `json:"clear_shipping_cost"`
	ClearInstallationCost bool    `json:"clear_installation_cost"`
	ClearDiscount         bool    `json:"clear_discount"`
}

func (r DraftUpdateRequest) ToUpdate() (usecase.DraftUpdate, error) {
	var out usecase.DraftUpdate
	var err error

	if r.Status != nil {
		s := entities.OrderStatus(strings.TrimSpace(*r.Status))
		out.Status = &s
	}
	if r.Date != nil {
		d, err := ParseDate(*r.Date)
		if err != nil {
			return usecase.DraftUpdate{}, err
		}
		out.Date = &d
	}
	out.Notes = r.Notes

	if out.ShippingCost, err = parseOptionalAmount("shipping_cost", r.ShippingCost); err != nil {
		return usecase.DraftUpdate{}, err
	}
	if out.InstallationCost, err = parseOptionalAmount("installation_cost", r.InstallationCost); err != nil {
		return usecase.DraftUpdate{}, err
	}
	if out.Discount, err = parseOptionalAmount("discount", r.Discount); err != nil {
		return usecase.DraftUpdate{}, err
	}
	out.ClearShipping = r.ClearShippingCost
	out.ClearInstallation = r.ClearInstallationCost
	out.ClearDiscount = r.ClearDiscount
	return out, nil
}

// ParseDate accepts ISO dates, RFC 3339 timestamps and dd/mm/yyyy.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: %w", s, ErrInvalidDate)
}
