package handlers

import (
	"errors"
	"net/http"
	"testing"

	"marmoraria_tech/internal/adapter/http/handlers/mocks"
	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestDashboardHandler_GetDashboard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{
			Customers:   2,
			Materials:   3,
			Orders:      1,
			ByStatus:    map[entities.OrderStatus]int{entities.OrderStatusAberto: 1},
			TotalQuoted: decimal.NewFromInt(2500),
			OpenValue:   decimal.NewFromInt(2500),
		}, nil)

		r := gin.New()
		r.GET("/v1/dashboard", NewDashboardHandler(uc, nil).GetDashboard)
		w := doRequest(r, http.MethodGet, "/v1/dashboard", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["customers"] != float64(2) || body["total_quoted"] != "2500.00" {
			t.Fatalf("unexpected body: %v", body)
		}
		if byStatus, _ := body["by_status"].(map[string]any); byStatus["Aberto"] != float64(1) {
			t.Fatalf("unexpected by_status: %v", body["by_status"])
		}
		if recent, ok := body["recent_orders"].([]any); !ok || len(recent) != 0 {
			t.Fatalf("recent_orders must be an empty array, got %v", body["recent_orders"])
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		uc.EXPECT().Summary(gomock.Any()).Return(usecase.DashboardSummary{}, errors.Join(apperrors.ErrStorage, errors.New("dial tcp")))

		r := gin.New()
		r.GET("/v1/dashboard", NewDashboardHandler(uc, nil).GetDashboard)
		w := doRequest(r, http.MethodGet, "/v1/dashboard", "")
		if w.Code != http.StatusInternalServerError || decodeBody(t, w)["code"] != "STORAGE_ERROR" {
			t.Fatalf("expected 500 STORAGE_ERROR, got %d %s", w.Code, w.Body.String())
		}
	})
}
