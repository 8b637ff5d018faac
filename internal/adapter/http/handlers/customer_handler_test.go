package handlers

import (
	"net/http"
	"testing"

	"marmoraria_tech/internal/adapter/http/handlers/mocks"
	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func customerRouter(uc *mocks.MockICustomerUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCustomerHandler(uc, nil)
	r := gin.New()
	r.GET("/v1/customers", h.ListCustomers)
	r.GET("/v1/customers/:id", h.GetCustomer)
	r.POST("/v1/customers", h.CreateCustomer)
	r.PATCH("/v1/customers/:id", h.UpdateCustomer)
	r.DELETE("/v1/customers/:id", h.DeleteCustomer)
	return r
}

func TestCustomerHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	uc.EXPECT().List(gomock.Any(), "silva").Return([]entities.Customer{{ID: 1, Name: "João Silva", TotalSpent: decimal.NewFromInt(15000)}}, nil)

	w := doRequest(customerRouter(uc), http.MethodGet, "/v1/customers?q=silva", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if want := `[{"id":1,"name":"João Silva","phone":"","email":"","address":"","document":"","total_spent":"15000.00"}]`; w.Body.String() != want {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCustomerHandler_Get(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		w := doRequest(customerRouter(uc), http.MethodGet, "/v1/customers/0", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		uc.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Customer{}, apperrors.NewNotFound("customer", 9))

		w := doRequest(customerRouter(uc), http.MethodGet, "/v1/customers/9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "CUSTOMER_NOT_FOUND" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		w := doRequest(customerRouter(uc), http.MethodPost, "/v1/customers", `{"phone":"1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		uc.EXPECT().Create(gomock.Any(), entities.Customer{Name: "Ana", Email: "ana@x.com"}).
			Return(entities.Customer{ID: 4, Name: "Ana", Email: "ana@x.com"}, nil)

		w := doRequest(customerRouter(uc), http.MethodPost, "/v1/customers", `{"name":" Ana ","email":"ana@x.com"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["id"] != float64(4) || body["total_spent"] != "0.00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestCustomerHandler_Update(t *testing.T) {
	t.Run("bad amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		w := doRequest(customerRouter(uc), http.MethodPatch, "/v1/customers/1", `{"total_spent":"muito"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("merges given fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		uc.EXPECT().Update(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ any, _ int, p entities.CustomerPatch) (entities.Customer, error) {
				if p.Phone == nil || *p.Phone != "(11) 9" || p.Name != nil {
					t.Fatalf("unexpected patch: %+v", p)
				}
				return entities.Customer{ID: 1, Name: "João Silva", Phone: "(11) 9"}, nil
			})

		w := doRequest(customerRouter(uc), http.MethodPatch, "/v1/customers/1", `{"phone":"(11) 9"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	uc.EXPECT().Delete(gomock.Any(), 2).Return(nil)
	uc.EXPECT().Delete(gomock.Any(), 99).Return(apperrors.NewNotFound("customer", 99))
	r := customerRouter(uc)

	if w := doRequest(r, http.MethodDelete, "/v1/customers/2", ""); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if w := doRequest(r, http.MethodDelete, "/v1/customers/99", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
