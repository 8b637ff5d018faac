package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		_, err := NewMercadoPagoGateway("", false, nil)
		require.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		g, err := NewMercadoPagoGateway("", true, nil)
		require.NoError(t, err)
		assert.True(t, g.mockMode)
	})
}

func TestCreatePayment_Mock(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true, zap.NewNop())
	require.NoError(t, err)
	g.now = func() time.Time { return time.Unix(1700000000, 0) }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":1080,"external_reference":"7"}`))
	require.NoError(t, err)
	assert.Equal(t, "1700000000000000000", id)
	assert.Equal(t, "approved", status)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "7", body["external_reference"])
	assert.Equal(t, "accredited", body["status_detail"])
	assert.Contains(t, body, "date_approved")
}

func TestCreatePayment_SDK(t *testing.T) {
	fake := &fakeCreator{resp: &payment.Response{ID: 42, Status: "approved"}}
	g := &MercadoPagoGateway{client: fake, logger: zap.NewNop(), now: time.Now}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":150.5,"payment_method_id":"pix"}`))
	require.NoError(t, err)
	assert.Equal(t, "42", id)
	assert.Equal(t, "approved", status)
	assert.NotEmpty(t, raw)
	assert.Equal(t, 150.5, fake.got.TransactionAmount)
	assert.Equal(t, "pix", fake.got.PaymentMethodID)
}

func TestCreatePayment_Errors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		require.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
	})

	t.Run("sdk failure is returned", func(t *testing.T) {
		boom := errors.New(`{"status":400,"error":"bad_request"}`)
		g := &MercadoPagoGateway{client: &fakeCreator{err: boom}, logger: zap.NewNop(), now: time.Now}
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		require.ErrorIs(t, err, boom)
	})

	t.Run("payload that is not a request", func(t *testing.T) {
		g := &MercadoPagoGateway{client: &fakeCreator{}, logger: zap.NewNop(), now: time.Now}
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`[1,2]`))
		require.Error(t, err)
	})
}
