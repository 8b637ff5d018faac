package interfaces

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/payment_gateway_interface_mock.go -package=mocks

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The quote payment flow uses it to charge a quote total and keeps the
// provider response payload for traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
