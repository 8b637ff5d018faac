package handlers

import (
	"errors"
	"io"
	"net/http"

	request "marmoraria_tech/internal/adapter/http/dto/request"
	response "marmoraria_tech/internal/adapter/http/dto/response"
	"marmoraria_tech/internal/usecase"
	"marmoraria_tech/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteDraftHandler exposes the quote editor as server-side draft sessions.
type QuoteDraftHandler struct {
	usecase usecase.IQuoteDraftUseCase
	logger  *zap.Logger
}

func NewQuoteDraftHandler(uc usecase.IQuoteDraftUseCase, logger *zap.Logger) *QuoteDraftHandler {
	return &QuoteDraftHandler{usecase: uc, logger: loggerOrNop(logger)}
}

// StartDraft godoc
// @Summary      Open a quote editing session
// @Description  Empty body starts a new quote; order_id loads a stored one.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body      request.DraftStartRequest  false  "optional order to edit"
// @Success      201   {object}  response.QuoteDraftResponse
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/drafts [post]
func (h *QuoteDraftHandler) StartDraft(c *gin.Context) {
	var payload request.DraftStartRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	draft, err := h.usecase.Start(c.Request.Context(), payload.OrderID)
	if err != nil {
		abortWith(c, h.logger, mapDraftError(err))
		return
	}
	h.logger.Info("[quote][handler] draft started", zap.String("draft_id", draft.ID), zap.Int("order_id", draft.OrderID))
	c.JSON(http.StatusCreated, response.FromQuoteDraft(draft))
}

// GetDraft godoc
// @Summary  Current state of a draft
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "draft id"
// @Success  200  {object}  response.QuoteDraftResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /quotes/drafts/{id} [get]
func (h *QuoteDraftHandler) GetDraft(c *gin.Context) {
	draft, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	h.respond(c, draft, err)
}

// DiscardDraft godoc
// @Summary  Discard a draft without saving
// @Tags     quotes
// @Param    id  path  string  true  "draft id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /quotes/drafts/{id} [delete]
func (h *QuoteDraftHandler) DiscardDraft(c *gin.Context) {
	if err := h.usecase.Discard(c.Request.Context(), c.Param("id")); err != nil {
		abortWith(c, h.logger, mapDraftError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SelectCustomer godoc
// @Summary  Pick the quote's customer
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id    path      string                        true  "draft id"
// @Param    body  body      request.DraftCustomerRequest  true  "customer"
// @Success  200   {object}  response.QuoteDraftResponse
// @Failure  404   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /quotes/drafts/{id}/customer [put]
func (h *QuoteDraftHandler) SelectCustomer(c *gin.Context) {
	var payload request.DraftCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	draft, err := h.usecase.SelectCustomer(c.Request.Context(), c.Param("id"), payload.CustomerID)
	h.respond(c, draft, err)
}

// ClearCustomer godoc
// @Summary  Unset the quote's customer
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "draft id"
// @Success  200  {object}  response.QuoteDraftResponse
// @Security Bearer
// @Router   /quotes/drafts/{id}/customer [delete]
func (h *QuoteDraftHandler) ClearCustomer(c *gin.Context) {
	draft, err := h.usecase.ClearCustomer(c.Request.Context(), c.Param("id"))
	h.respond(c, draft, err)
}

// AddItem godoc
// @Summary      Add a line item
// @Description  Priced at the material's current unit price.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "draft id"
// @Param        body  body      request.LineItemRequest  true  "line item"
// @Success      201   {object}  response.QuoteDraftResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/drafts/{id}/items [post]
func (h *QuoteDraftHandler) AddItem(c *gin.Context) {
	var payload request.LineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, h.logger, pkg.NewDomainError("INVALID_REQUEST", "Invalid request: "+err.Error(), err, http.StatusBadRequest))
		return
	}
	draft, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		abortWith(c, h.logger, mapDraftError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromQuoteDraft(draft))
}

// RemoveItem godoc
// @Summary  Remove a line item
// @Tags     quotes
// @Produce  json
// @Param    id       path      string  true  "draft id"
// @Param    item_id  path      int     true  "line item id"
// @Success  200      {object}  response.QuoteDraftResponse
// @Security Bearer
// @Router   /quotes/drafts/{id}/items/{item_id} [delete]
func (h *QuoteDraftHandler) RemoveItem(c *gin.Context) {
	itemID, ok := pathID(c, "item_id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	draft, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), itemID)
	h.respond(c, draft, err)
}

// UpdateDraft godoc
// @Summary  Change status, date, notes or adjustments
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id    path      string                      true  "draft id"
// @Param    body  body      request.DraftUpdateRequest  true  "fields to change"
// @Success  200   {object}  response.QuoteDraftResponse
// @Failure  400   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /quotes/drafts/{id} [patch]
func (h *QuoteDraftHandler) UpdateDraft(c *gin.Context) {
	var payload request.DraftUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	update, err := payload.ToUpdate()
	if err != nil {
		abortWith(c, h.logger, pkg.NewDomainError("INVALID_REQUEST", "Invalid request: "+err.Error(), err, http.StatusBadRequest))
		return
	}
	draft, err := h.usecase.Update(c.Request.Context(), c.Param("id"), update)
	h.respond(c, draft, err)
}

// SaveDraft godoc
// @Summary      Save the quote
// @Description  Creates a new order or updates the one being edited. The session is closed afterwards.
// @Tags         quotes
// @Produce      json
// @Param        id   path      string  true  "draft id"
// @Success      200  {object}  response.OrderResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /quotes/drafts/{id}/save [post]
func (h *QuoteDraftHandler) SaveDraft(c *gin.Context) {
	draftID := c.Param("id")
	order, err := h.usecase.Save(c.Request.Context(), draftID)
	if err != nil {
		abortWith(c, h.logger, mapDraftError(err))
		return
	}
	h.logger.Info("[quote][handler] saved", zap.String("draft_id", draftID), zap.Int("order_id", order.ID), zap.String("total", order.Total.StringFixed(2)))
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *QuoteDraftHandler) respond(c *gin.Context, draft usecase.QuoteDraft, err error) {
	if err != nil {
		abortWith(c, h.logger, mapDraftError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDraft(draft))
}

func mapDraftError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainError("DRAFT_NOT_FOUND", "Quote draft not found or expired", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteAlreadySaved):
		return pkg.NewDomainError("QUOTE_ALREADY_SAVED", "Quote already saved; start a new draft to edit it again", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDraftID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid draft id", err, http.StatusBadRequest)
	}
	return mapDomainError(err)
}
