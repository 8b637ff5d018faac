package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/usecase"
	"marmoraria_tech/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid id", http.StatusBadRequest)
)

// mapDomainError translates the shared error taxonomy. Handler-specific
// sentinels are matched by the callers before falling back here.
func mapDomainError(err error) *pkg.AppError {
	var (
		validation *apperrors.ValidationError
		notFound   *apperrors.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request: "+validation.Error(), err, http.StatusBadRequest)
	case errors.As(err, &notFound):
		kind := strings.ToUpper(strings.ReplaceAll(notFound.Kind, " ", "_"))
		return pkg.NewDomainError(kind+"_NOT_FOUND", capitalize(notFound.Kind)+" not found", err, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrConflict):
		return pkg.NewDomainError("STORAGE_CONFLICT", "The record was changed by another request, retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidMaterialID),
		errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidDraftID):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid id", err, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrStorage):
		return pkg.NewDomainError("STORAGE_ERROR", "Storage unavailable", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWith(c *gin.Context, log *zap.Logger, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("[http][handler] request failed", zap.String("code", appErr.Code), zap.Error(appErr))
	} else {
		log.Info("[http][handler] request rejected", zap.String("code", appErr.Code), zap.Error(appErr))
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
