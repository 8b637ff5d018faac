package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "marmoraria_tech/internal/adapter/http/dto/request"
	response "marmoraria_tech/internal/adapter/http/dto/response"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase"
	"marmoraria_tech/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errPrintUnavailable = pkg.NewDomainErrorSimple("PRINT_UNAVAILABLE", "PDF printing is not available on this server", http.StatusServiceUnavailable)

// OrderHandler serves stored quotes and their printable forms.
type OrderHandler struct {
	orders   usecase.IOrderUseCase
	printing usecase.IPrintUseCase
	logger   *zap.Logger
}

func NewOrderHandler(orders usecase.IOrderUseCase, printing usecase.IPrintUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, printing: printing, logger: loggerOrNop(logger)}
}

// ListOrders godoc
// @Summary  List quotes
// @Tags     orders
// @Produce  json
// @Param    q    query    string  false  "search on customer and status"
// @Success  200  {array}  response.OrderResponse
// @Security Bearer
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder godoc
// @Summary  Get a quote
// @Tags     orders
// @Produce  json
// @Param    id   path      int  true  "order id"
// @Success  200  {object}  response.OrderResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	order, err := h.orders.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdateOrderStatus godoc
// @Summary  Change a quote's status label
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id    path      int                         true  "order id"
// @Param    body  body      request.OrderStatusRequest  true  "new status"
// @Success  200   {object}  response.OrderResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	var payload request.OrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	updated, err := h.orders.UpdateStatus(c.Request.Context(), id, entities.OrderStatus(payload.Status))
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	h.logger.Info("[order][handler] status changed", zap.Int("order_id", id), zap.String("status", string(updated.Status)))
	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// DeleteOrder godoc
// @Summary  Delete a quote
// @Tags     orders
// @Param    id  path  int  true  "order id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// PrintOrder godoc
// @Summary  Printable quote (HTML)
// @Tags     orders
// @Produce  html
// @Param    id   path    int  true  "order id"
// @Success  200  {string}  string
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/print [get]
func (h *OrderHandler) PrintOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	doc, err := h.printing.RenderHTML(c.Request.Context(), id)
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", doc)
}

// PrintOrderPDF godoc
// @Summary  Printable quote (PDF)
// @Tags     orders
// @Produce  application/pdf
// @Param    id   path    int  true  "order id"
// @Success  200  {file}  file
// @Failure  404  {object}  pkg.HTTPError
// @Failure  503  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /orders/{id}/print.pdf [get]
func (h *OrderHandler) PrintOrderPDF(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	pdf, err := h.printing.RenderPDF(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPrintSurfaceUnavailable) {
			abortWith(c, h.logger, errPrintUnavailable)
			return
		}
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="orcamento-%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
