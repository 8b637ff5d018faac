package request

import "encoding/json"

// PaymentCreateRequest is the payload for charging a quote.
//
// `mp_payload` is passed to Mercado Pago as-is (raw JSON) to support varying
// schemas; the amount is always replaced by the quote total.
type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
