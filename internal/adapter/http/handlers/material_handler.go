package handlers

import (
	"net/http"

	request "marmoraria_tech/internal/adapter/http/dto/request"
	response "marmoraria_tech/internal/adapter/http/dto/response"
	"marmoraria_tech/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MaterialHandler handles HTTP requests for the stone catalog.
type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
	logger  *zap.Logger
}

func NewMaterialHandler(uc usecase.IMaterialUseCase, logger *zap.Logger) *MaterialHandler {
	return &MaterialHandler{usecase: uc, logger: loggerOrNop(logger)}
}

// ListMaterials godoc
// @Summary  List materials
// @Tags     materials
// @Produce  json
// @Param    q    query     string  false  "search on name and type"
// @Success  200  {array}   response.MaterialResponse
// @Security Bearer
// @Router   /materials [get]
func (h *MaterialHandler) ListMaterials(c *gin.Context) {
	materials, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

// GetMaterial godoc
// @Summary  Get a material
// @Tags     materials
// @Produce  json
// @Param    id   path      int  true  "material id"
// @Success  200  {object}  response.MaterialResponse
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /materials/{id} [get]
func (h *MaterialHandler) GetMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	m, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMaterial(m))
}

// CreateMaterial godoc
// @Summary  Create a material
// @Tags     materials
// @Accept   json
// @Produce  json
// @Param    body  body      request.MaterialCreateRequest  true  "material"
// @Success  201   {object}  response.MaterialResponse
// @Failure  400   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /materials [post]
func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	m, err := payload.ToEntity()
	if err != nil {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), m)
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	h.logger.Info("[material][handler] created", zap.Int("material_id", created.ID))
	c.JSON(http.StatusCreated, response.FromMaterial(created))
}

// UpdateMaterial godoc
// @Summary  Update a material
// @Description A new price only applies to quote lines added afterwards.
// @Tags     materials
// @Accept   json
// @Produce  json
// @Param    id    path      int                            true  "material id"
// @Param    body  body      request.MaterialUpdateRequest  true  "fields to change"
// @Success  200   {object}  response.MaterialResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Security Bearer
// @Router   /materials/{id} [patch]
func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	var payload request.MaterialUpdateRequest
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
	c.JSON(http.StatusOK, response.FromMaterial(updated))
}

// DeleteMaterial godoc
// @Summary  Delete a material
// @Tags     materials
// @Param    id  path  int  true  "material id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Security Bearer
// @Router   /materials/{id} [delete]
func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWith(c, h.logger, errInvalidID)
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	h.logger.Info("[material][handler] deleted", zap.Int("material_id", id))
	c.Status(http.StatusNoContent)
}
