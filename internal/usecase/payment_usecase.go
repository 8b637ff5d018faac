package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOrderCancelled                 = errors.New("order is cancelled")
	ErrOrderNothingToCharge           = errors.New("order total must be positive")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentSettings tunes the Mercado Pago request built for a quote.
//
// In MockMode the payload checks are relaxed; the gateway is expected to be
// mocked as well. The sandbox fields only apply to TEST- access tokens.
type PaymentSettings struct {
	MockMode        bool
	AccessToken     string
	TestPayerEmail  string
	TestPayerUserID string
}

// IPaymentUseCase charges quote totals.
type IPaymentUseCase interface {
	CreateForOrder(ctx context.Context, orderID int, mpPayload json.RawMessage) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID int) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo      interfaces.IPaymentRepository
	orders    interfaces.IOrderRepository
	customers interfaces.ICustomerRepository
	gateway   interfaces.IPaymentGateway
	settings  PaymentSettings
	logger    *zap.Logger
	now       func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, orders interfaces.IOrderRepository, customers interfaces.ICustomerRepository, gateway interfaces.IPaymentGateway, settings PaymentSettings, logger *zap.Logger) *PaymentUseCase {
	return &PaymentUseCase{
		repo:      repo,
		orders:    orders,
		customers: customers,
		gateway:   gateway,
		settings:  settings,
		logger:    loggerOrNop(logger),
		now:       time.Now,
	}
}

// CreateForOrder charges the stored total of an order. Whatever amount the
// payload carries is replaced by the order total. An approved payment is
// added to the customer's cumulative spend when the order's customer
// reference still resolves.
func (u *PaymentUseCase) CreateForOrder(ctx context.Context, orderID int, mpPayload json.RawMessage) (entities.Payment, error) {
	log := u.logger.With(zap.Int("order_id", orderID))
	log.Info("[payment][usecase] create start", zap.Int("payload_len", len(mpPayload)))

	if orderID <= 0 {
		return entities.Payment{}, ErrInvalidOrderID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.settings.MockMode {
			log.Warn("[payment][usecase] invalid payload")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Error("[payment][usecase] gateway not configured")
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	order, err := NewOrderUseCase(u.orders, u.logger).GetByID(ctx, orderID)
	if err != nil {
		log.Warn("[payment][usecase] order lookup failed", zap.Error(err))
		return entities.Payment{}, err
	}
	if order.Status == entities.OrderStatusCancelado {
		return entities.Payment{}, ErrOrderCancelled
	}
	if !order.Total.IsPositive() {
		return entities.Payment{}, ErrOrderNothingToCharge
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.settings.MockMode {
			log.Warn("[payment][usecase] payload is not an object", zap.Error(err))
			return entities.Payment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.settings.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("[payment][usecase] missing payment_method_id")
			return entities.Payment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayerFromUserID(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn("[payment][usecase] missing or invalid payer")
			return entities.Payment{}, ErrInvalidMPPayload
		}
	}

	// Mercado Pago uses external_reference to reconcile events.
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = strconv.Itoa(orderID)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Orçamento #%d", orderID)
	}
	reqMap["transaction_amount"] = order.Total.InexactFloat64()
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Error("[payment][usecase] payment gateway failed", zap.Error(err))
		return entities.Payment{}, classifyGatewayError(err)
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", zap.Error(err))
	}

	created, err := u.repo.Create(ctx, entities.Payment{
		OrderID:           orderID,
		ProviderPaymentID: providerPaymentID,
		Amount:            order.Total,
		Date:              u.now().UTC(),
		Status:            paymentStatusFromProvider(providerStatus),
		ProviderPayload:   providerResp,
		ProviderData:      parsed,
	})
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.Error(err))
		return entities.Payment{}, err
	}

	if created.Status == entities.PaymentStatusAprovado && order.CustomerID != nil {
		u.addToCustomerSpend(ctx, log, *order.CustomerID, created)
	}
	log.Info("[payment][usecase] create success", zap.Int("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID int) ([]entities.Payment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

// addToCustomerSpend is best effort: the payment is already recorded, so a
// failure here is logged and not returned.
func (u *PaymentUseCase) addToCustomerSpend(ctx context.Context, log *zap.Logger, customerID int, p entities.Payment) {
	c, err := u.customers.AddToTotalSpent(ctx, customerID, p.Amount)
	if err != nil {
		log.Error("[payment][usecase] customer spend update failed", zap.Int("customer_id", customerID), zap.Error(err))
		return
	}
	if c.ID == 0 {
		log.Info("[payment][usecase] customer reference dangling; spend not updated", zap.Int("customer_id", customerID))
	}
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	default:
		return entities.PaymentStatusPendente
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func (u *PaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.settings.AccessToken), "TEST-")
}

func (u *PaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(u.settings.TestPayerEmail); email != "" {
			payer["email"] = email
		} else if u.sandbox() {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func (u *PaymentUseCase) normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") || !u.sandbox() {
		return
	}

	userID := strings.TrimSpace(u.settings.TestPayerUserID)
	email := strings.TrimSpace(u.settings.TestPayerEmail)
	if userID == "" || email == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != userID {
		return
	}

	payer["email"] = email
	delete(payer, "id")
	u.logger.Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
