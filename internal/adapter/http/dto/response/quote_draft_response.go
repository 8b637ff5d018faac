package response

import (
	"marmoraria_tech/internal/usecase"
)

type SummaryResponse struct {
	ItemsSubtotal string `json:"items_subtotal"`
	Shipping      string `json:"shipping"`
	Installation  string `json:"installation"`
	Discount      string `json:"discount"`
	Total         string `json:"total"`
}

type QuoteDraftResponse struct {
	ID               string                   `json:"id"`
	OrderID          int                      `json:"order_id,omitempty"`
	State            string                   `json:"state"`
	CustomerID       *int                     `json:"customer_id,omitempty"`
	Customer         usecase.CustomerSnapshot `json:"customer"`
	Date             string                   `json:"date"`
	Status           string                   `json:"status"`
	Items            []LineItemResponse       `json:"items"`
	ShippingCost     *string                  `json:"shipping_cost,omitempty"`
	InstallationCost *string                  `json:"installation_cost,omitempty"`
	Discount         *string                  `json:"discount,omitempty"`
	Notes            string                   `json:"notes,omitempty"`
	Summary          SummaryResponse          `json:"summary"`
}

func FromQuoteDraft(d usecase.QuoteDraft) QuoteDraftResponse {
	return QuoteDraftResponse{
		ID:               d.ID,
		OrderID:          d.OrderID,
		State:            string(d.State),
		CustomerID:       d.CustomerID,
		Customer:         d.Customer,
		Date:             date(d.Date),
		Status:           string(d.Status),
		Items:            FromLineItems(d.Items),
		ShippingCost:     optionalMoney(d.Adjustments.Shipping),
		InstallationCost: optionalMoney(d.Adjustments.Installation),
		Discount:         optionalMoney(d.Adjustments.Discount),
		Notes:            d.Notes,
		Summary: SummaryResponse{
			ItemsSubtotal: money(d.Summary.ItemsSubtotal),
			Shipping:      money(d.Summary.Shipping),
			Installation:  money(d.Summary.Installation),
			Discount:      money(d.Summary.Discount),
			Total:         money(d.Summary.Total),
		},
	}
}
