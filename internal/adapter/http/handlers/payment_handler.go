package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "marmoraria_tech/internal/adapter/http/dto/response"
	"marmoraria_tech/internal/usecase"
	"marmoraria_tech/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler handles HTTP requests for quote payments.
type PaymentHandler struct {
	usecase  usecase.IPaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, mockMode bool, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, mockMode: mockMode, logger: loggerOrNop(logger)}
}

// CreatePayment godoc
// @Summary      Charge a quote total through Mercado Pago
// @Description  Body is the Mercado Pago payment request, bare or wrapped in mp_payload. The amount is always the stored quote total.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path      int                           true  "order id"
// @Param        body  body      request.PaymentCreateRequest  false "provider payload"
// @Success      200   {object}  response.PaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /orders/{id}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	log := h.logger.With(zap.Int("order_id", orderID))
	log.Info("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn("[payment][handler] invalid payload", zap.Error(err))
			abortWith(c, h.logger, errInvalidRequest)
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateForOrder(c.Request.Context(), orderID, mpPayload)
	if err != nil {
		abortWith(c, h.logger, mapPaymentError(err))
		return
	}
	log.Info("[payment][handler] create success", zap.Int("payment_id", created.ID), zap.String("status", string(created.Status)))
	c.JSON(http.StatusOK, response.FromPayment(created))
}

// ListPayments godoc
// @Summary  Payments of a quote
// @Tags     payments
// @Produce  json
// @Param    id   path     int  true  "order id"
// @Success  200  {array}  response.PaymentResponse
// @Security Bearer
// @Router   /orders/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	payments, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		abortWith(c, h.logger, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderCancelled):
		return pkg.NewDomainErrorSimple("ORDER_CANCELLED", "Cancelled quotes cannot be charged", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNothingToCharge):
		return pkg.NewDomainErrorSimple("ORDER_NOTHING_TO_CHARGE", "Quote total must be positive", http.StatusConflict)
	}
	return mapDomainError(err)
}
