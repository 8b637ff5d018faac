package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestMapDomainError(t *testing.T) {
	conflict := apperrors.NewStorage("put", "orders", fmt.Errorf("%w", apperrors.ErrConflict))

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", apperrors.NewValidation("name", "is required"), http.StatusBadRequest, "INVALID_REQUEST"},
		{"wrapped validation", fmt.Errorf("save: %w", apperrors.NewValidation("discount", "total is negative")), http.StatusBadRequest, "INVALID_REQUEST"},
		{"customer not found", apperrors.NewNotFound("customer", 9), http.StatusNotFound, "CUSTOMER_NOT_FOUND"},
		{"material not found", apperrors.NewNotFound("material", 9), http.StatusNotFound, "MATERIAL_NOT_FOUND"},
		{"order not found", apperrors.NewNotFound("order", 9), http.StatusNotFound, "ORDER_NOT_FOUND"},
		{"conflict", conflict, http.StatusConflict, "STORAGE_CONFLICT"},
		{"storage", apperrors.NewStorage("get", "orders", errors.New("down")), http.StatusInternalServerError, "STORAGE_ERROR"},
		{"invalid id", usecase.ErrInvalidMaterialID, http.StatusBadRequest, "INVALID_REQUEST"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapDomainError(tc.err)
			assert.Equal(t, tc.status, got.HTTPStatus)
			assert.Equal(t, tc.code, got.Code)
		})
	}
}

func TestMapDomainError_NotFoundMessage(t *testing.T) {
	got := mapDomainError(apperrors.NewNotFound("customer", 9))
	assert.Equal(t, "Customer not found", got.Message)
}
