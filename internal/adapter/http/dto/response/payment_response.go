package response

import (
	"time"

	"marmoraria_tech/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID         int       `json:"payment_id"`
	ID                int       `json:"id"`
	OrderID           int       `json:"order_id"`
	ProviderPaymentID string    `json:"provider_payment_id"`
	Amount            string    `json:"amount"`
	PaymentDate       time.Time `json:"payment_date"`
	Status            string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.ID,
		ID:                p.ID,
		OrderID:           p.OrderID,
		ProviderPaymentID: p.ProviderPaymentID,
		Amount:            money(p.Amount),
		PaymentDate:       p.Date,
		Status:            string(p.Status),
		MPPayloadRaw:      string(p.ProviderPayload),
		MPPayload:         p.ProviderData,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
