package response

import "marmoraria_tech/internal/domain/entities"

type LineItemResponse struct {
	ID           int     `json:"id"`
	MaterialID   int     `json:"material_id"`
	MaterialName string  `json:"material_name"`
	Description  string  `json:"description"`
	Length       float64 `json:"length"`
	Width        float64 `json:"width"`
	Quantity     int     `json:"quantity"`
	Subtotal     string  `json:"subtotal"`
}

type OrderResponse struct {
	ID               int                `json:"id"`
	Customer         string             `json:"customer"`
	CustomerID       *int               `json:"customer_id,omitempty"`
	Date             string             `json:"date"`
	Status           string             `json:"status"`
	Total            string             `json:"total"`
	Items            []LineItemResponse `json:"items"`
	ShippingCost     *string            `json:"shipping_cost,omitempty"`
	InstallationCost *string            `json:"installation_cost,omitempty"`
	Discount         *string            `json:"discount,omitempty"`
	Notes            string             `json:"notes,omitempty"`
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, LineItemResponse{
			ID:           it.ID,
			MaterialID:   it.MaterialID,
			MaterialName: it.MaterialName,
			Description:  it.Description,
			Length:       it.Length,
			Width:        it.Width,
			Quantity:     it.Quantity,
			Subtotal:     money(it.Subtotal),
		})
	}
	return out
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:               o.ID,
		Customer:         o.Customer,
		CustomerID:       o.CustomerID,
		Date:             date(o.Date),
		Status:           string(o.Status),
		Total:            money(o.Total),
		Items:            FromLineItems(o.Items),
		ShippingCost:     optionalMoney(o.ShippingCost),
		InstallationCost: optionalMoney(o.InstallationCost),
		Discount:         optionalMoney(o.Discount),
		Notes:            o.Notes,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
