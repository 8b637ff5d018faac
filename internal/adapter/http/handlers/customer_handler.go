package handlers

import (
	"net/http"

	request "marmoraria_tech/internal/adapter/http/dto/request"
	response "marmoraria_tech/internal/adapter/http/dto/response"
	"marmoraria_tech/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
	logger  *zap.Logger
}

func NewCustomerHandler(uc usecase.ICustomerUseCase, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{usecase: uc, logger: loggerOrNop(logger)}
}

// ListCustomers godoc
// @Summary      List customers
// @Description  Case-insensitive search on name, email and phone
// @Tags         customers
// @Produce      json
// @Param        q   query  string  false  "search text"
// @Success      200  {array}   response.CustomerResponse
// @Failure      500  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// GetCustomer godoc
// @Summary  Get a customer
// @Tags     customers
// @Produce  json
// @Param    id   path      int  true  "customer id"
// @Success  200  {object}  response.CustomerResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	customer, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// CreateCustomer godoc
// @Summary  Create a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    body  body      request.CustomerCreateRequest  true  "customer"
// @Success  201   {object}  response.CustomerResponse
// @Failure  400   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	h.logger.Info("[customer][handler] created", zap.Int("customer_id", created.ID))
	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

// UpdateCustomer godoc
// @Summary  Update a customer
// @Tags     customers
// @Accept   json
// @Produce  json
// @Param    id    path      int                            true  "customer id"
// @Param    body  body      request.CustomerUpdateRequest  true  "fields to change"
// @Success  200   {object}  response.CustomerResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /customers/{id} [patch]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	var payload request.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

// DeleteCustomer godoc
// @Summary  Delete a customer
// @Description Quotes keep the customer's name snapshot.
// @Tags     customers
// @Param    id  path  int  true  "customer id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	h.logger.Info("[customer][handler] deleted", zap.Int("customer_id", id))
	c.Status(http.StatusNoContent)
}
