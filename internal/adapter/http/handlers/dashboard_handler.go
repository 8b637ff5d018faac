package handlers

import (
	"net/http"

	response "marmoraria_tech/internal/adapter/http/dto/response"
	"marmoraria_tech/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	logger  *zap.Logger
}

func NewDashboardHandler(uc usecase.IDashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{usecase: uc, logger: loggerOrNop(logger)}
}

// GetDashboard godoc
// @Summary  Headline numbers
// @Tags     dashboard
// @Produce  json
// @Success  200  {object}  response.DashboardResponse
// @Security Bearer
// @Router   /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(summary))
}
