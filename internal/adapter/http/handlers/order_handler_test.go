package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"marmoraria_tech/internal/adapter/http/handlers/mocks"
	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func orderRouter(orders *mocks.MockIOrderUseCase, printing *mocks.MockIPrintUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewOrderHandler(orders, printing, nil)
	r := gin.New()
	r.GET("/v1/orders", h.ListOrders)
	r.GET("/v1/orders/:id", h.GetOrder)
	r.PATCH("/v1/orders/:id/status", h.UpdateOrderStatus)
	r.DELETE("/v1/orders/:id", h.DeleteOrder)
	r.GET("/v1/orders/:id/print", h.PrintOrder)
	r.GET("/v1/orders/:id/print.pdf", h.PrintOrderPDF)
	return r
}

func TestOrderHandler_GetAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	r := orderRouter(orders, mocks.NewMockIPrintUseCase(ctrl))

	o := entities.Order{ID: 1, Customer: "João Silva", Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), Status: entities.OrderStatusAberto, Total: decimal.NewFromInt(2500)}
	orders.EXPECT().List(gomock.Any(), "aberto").Return([]entities.Order{o}, nil)
	orders.EXPECT().GetByID(gomock.Any(), 1).Return(o, nil)
	orders.EXPECT().GetByID(gomock.Any(), 5).Return(entities.Order{}, apperrors.NewNotFound("order", 5))

	if w := doRequest(r, http.MethodGet, "/v1/orders?q=aberto", ""); w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}

	w := doRequest(r, http.MethodGet, "/v1/orders/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["total"] != "2500.00" || body["date"] != "2024-01-15" {
		t.Fatalf("unexpected body: %v", body)
	}

	w = doRequest(r, http.MethodGet, "/v1/orders/5", "")
	if w.Code != http.StatusNotFound || decodeBody(t, w)["code"] != "ORDER_NOT_FOUND" {
		t.Fatalf("missing: expected 404 ORDER_NOT_FOUND, got %d %s", w.Code, w.Body.String())
	}
}

func TestOrderHandler_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	r := orderRouter(orders, mocks.NewMockIPrintUseCase(ctrl))

	orders.EXPECT().UpdateStatus(gomock.Any(), 1, entities.OrderStatusFinalizado).
		Return(entities.Order{ID: 1, Status: entities.OrderStatusFinalizado}, nil)

	w := doRequest(r, http.MethodPatch, "/v1/orders/1/status", `{"status":"Finalizado"}`)
	if w.Code != http.StatusOK || decodeBody(t, w)["status"] != "Finalizado" {
		t.Fatalf("expected 200 Finalizado, got %d %s", w.Code, w.Body.String())
	}

	if w := doRequest(r, http.MethodPatch, "/v1/orders/1/status", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing status: expected 400, got %d", w.Code)
	}
}

func TestOrderHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	orders := mocks.NewMockIOrderUseCase(ctrl)
	r := orderRouter(orders, mocks.NewMockIPrintUseCase(ctrl))

	orders.EXPECT().Delete(gomock.Any(), 3).Return(nil)
	if w := doRequest(r, http.MethodDelete, "/v1/orders/3", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestOrderHandler_Print(t *testing.T) {
	t.Run("html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		printing := mocks.NewMockIPrintUseCase(ctrl)
		printing.EXPECT().RenderHTML(gomock.Any(), 7).Return([]byte("<html>Orçamento #7</html>"), nil)

		w := doRequest(orderRouter(mocks.NewMockIOrderUseCase(ctrl), printing), http.MethodGet, "/v1/orders/7/print", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Fatalf("unexpected content type %q", ct)
		}
	})

	t.Run("pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		printing := mocks.NewMockIPrintUseCase(ctrl)
		printing.EXPECT().RenderPDF(gomock.Any(), 7).Return([]byte("%PDF-1.4"), nil)

		w := doRequest(orderRouter(mocks.NewMockIOrderUseCase(ctrl), printing), http.MethodGet, "/v1/orders/7/print.pdf", "")
		if w.Code != http.StatusOK || w.Header().Get("Content-Type") != "application/pdf" {
			t.Fatalf("expected 200 pdf, got %d %q", w.Code, w.Header().Get("Content-Type"))
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `inline; filename="orcamento-7.pdf"` {
			t.Fatalf("unexpected disposition %q", cd)
		}
	})

	t.Run("pdf without browser", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		printing := mocks.NewMockIPrintUseCase(ctrl)
		printing.EXPECT().RenderPDF(gomock.Any(), 7).Return(nil, usecase.ErrPrintSurfaceUnavailable)

		w := doRequest(orderRouter(mocks.NewMockIOrderUseCase(ctrl), printing), http.MethodGet, "/v1/orders/7/print.pdf", "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("browser failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		printing := mocks.NewMockIPrintUseCase(ctrl)
		printing.EXPECT().RenderPDF(gomock.Any(), 7).Return(nil, errors.New("chrome crashed"))

		w := doRequest(orderRouter(mocks.NewMockIOrderUseCase(ctrl), printing), http.MethodGet, "/v1/orders/7/print.pdf", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
