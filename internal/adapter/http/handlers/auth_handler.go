package handlers

import (
	"errors"
	"net/http"

	request "marmoraria_tech/internal/adapter/http/dto/request"
	response "marmoraria_tech/internal/adapter/http/dto/response"
	"marmoraria_tech/internal/infrastructure/auth"
	"marmoraria_tech/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidCredentials = pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)

// ILoginService issues bearer tokens for the admin credential.
type ILoginService interface {
	Login(email, password string) (auth.Token, error)
}

type AuthHandler struct {
	service ILoginService
	logger  *zap.Logger
}

func NewAuthHandler(service ILoginService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: loggerOrNop(logger)}
}

// Login godoc
// @Summary  Log in as the shop operator
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body  body      request.LoginRequest  true  "credentials"
// @Success  200   {object}  response.LoginResponse
// @Failure  401   {object}  pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, h.logger, errInvalidRequest)
		return
	}
	tok, err := h.service.Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("[auth][handler] login rejected", zap.String("email", payload.Email))
			abortWith(c, h.logger, errInvalidCredentials)
			return
		}
		abortWith(c, h.logger, mapDomainError(err))
		return
	}
	h.logger.Info("[auth][handler] login", zap.String("subject", tok.Subject))
	c.JSON(http.StatusOK, response.LoginResponse{Token: tok.Value, TokenType: "Bearer", ExpiresAt: tok.ExpiresAt})
}
