package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the label of a quote (orçamento) in the shop's workflow.
//
// The set is open: the known values below are the defaults offered to the
// operator, any non-empty label is accepted.
type OrderStatus string

const (
	OrderStatusAberto      OrderStatus = "Aberto"
	OrderStatusEmAndamento OrderStatus = "Em Andamento"
	OrderStatusFinalizado  OrderStatus = "Finalizado"
	OrderStatusCancelado   OrderStatus = "Cancelado"
)

// KnownOrderStatuses lists the default labels in display order.
var KnownOrderStatuses = []OrderStatus{
	OrderStatusAberto,
	OrderStatusEmAndamento,
	OrderStatusFinalizado,
	OrderStatusCancelado,
}

// Order is a priced quote for a customer.
//
// Snapshot + weak reference:
//   - Customer is a copy of the customer's name taken on save; CustomerID is
//     only a lookup hint and may dangle after the customer is deleted.
//   - Each LineItem keeps MaterialName next to MaterialID for the same reason.
//
// Total is derived when the quote is saved and is authoritative afterwards.
type Order struct {
	ID               int              `json:"id"`
	Customer         string           `json:"customer"`
	CustomerID       *int             `json:"customer_id,omitempty"`
	Date             time.Time        `json:"date"`
	Status           OrderStatus      `json:"status"`
	Total            decimal.Decimal  `json:"total"`
	Items            []LineItem       `json:"items,omitempty"`
	ShippingCost     *decimal.Decimal `json:"shipping_cost,omitempty"`
	InstallationCost *decimal.Decimal `json:"installation_cost,omitempty"`
	Discount         *decimal.Decimal `json:"discount,omitempty"`
	Notes            string           `json:"notes,omitempty"`
}

func (o Order) GetID() int { return o.ID }

func (o Order) WithID(id int) Order {
	o.ID = id
	return o
}

// LineItem is one priced entry of an order: a material cut to length × width,
// times quantity.
type LineItem struct {
	ID           int             `json:"id"`
	MaterialID   int             `json:"material_id"`
	MaterialName string          `json:"material_name"`
	Description  string          `json:"description"`
	Length       float64         `json:"length"`
	Width        float64         `json:"width"`
	Quantity     int             `json:"quantity"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// OrderPatch is a partial order update. Items, when non-nil, replace the
// whole item list. ClearAdjustments makes the three adjustment fields
// authoritative, so a nil one removes the stored term.
type OrderPatch struct {
	Customer         *string
	CustomerID       *int
	ClearCustomerID  bool
	ClearAdjustments bool
	Date             *time.Time
	Status           *OrderStatus
	Total            *decimal.Decimal
	Items            []LineItem
	ShippingCost     *decimal.Decimal
	InstallationCost *decimal.Decimal
	Discount         *decimal.Decimal
	Notes            *string
}

func (p OrderPatch) Apply(o Order) Order {
	if p.Customer != nil {
		o.Customer = *p.Customer
	}
	if p.ClearCustomerID {
		o.CustomerID = nil
	}
	if p.CustomerID != nil {
		id := *p.CustomerID
		o.CustomerID = &id
	}
	if p.Date != nil {
		o.Date = *p.Date
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Total != nil {
		o.Total = *p.Total
	}
	if p.Items != nil {
		o.Items = append([]LineItem(nil), p.Items...)
	}
	if p.ClearAdjustments {
		o.ShippingCost, o.InstallationCost, o.Discount = nil, nil, nil
	}
	if p.ShippingCost != nil {
		o.ShippingCost = decimalPtr(*p.ShippingCost)
	}
	if p.InstallationCost != nil {
		o.InstallationCost = decimalPtr(*p.InstallationCost)
	}
	if p.Discount != nil {
		o.Discount = decimalPtr(*p.Discount)
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
	return o
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
