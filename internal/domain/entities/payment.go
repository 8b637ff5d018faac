package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// Payment is a charge made against a quote total.
//
// ProviderPayload keeps the provider response body for traceability;
// ProviderData is its parsed form when it decodes as a JSON object.
type Payment struct {
	ID                int                    `json:"id"`
	OrderID           int                    `json:"order_id"`
	ProviderPaymentID string                 `json:"provider_payment_id"`
	Amount            decimal.Decimal        `json:"amount"`
	Date              time.Time              `json:"date"`
	Status            PaymentStatus          `json:"status"`
	ProviderPayload   json.RawMessage        `json:"provider_payload,omitempty"`
	ProviderData      map[string]interface{} `json:"provider_data,omitempty"`
}

func (p Payment) GetID() int { return p.ID }

func (p Payment) WithID(id int) Payment {
	p.ID = id
	return p
}
