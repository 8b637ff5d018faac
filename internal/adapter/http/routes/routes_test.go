package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"marmoraria_tech/internal/adapter/http/handlers"
	"marmoraria_tech/internal/adapter/http/handlers/mocks"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T, opts Options) (*gin.Engine, *mocks.MockICustomerUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	customers := mocks.NewMockICustomerUseCase(ctrl)

	var login handlers.ILoginService
	if a, ok := opts.Verifier.(*auth.Authenticator); ok {
		login = a
	}
	h := Handlers{
		Customers: handlers.NewCustomerHandler(customers, nil),
		Quotes:    handlers.NewQuoteDraftHandler(mocks.NewMockIQuoteDraftUseCase(ctrl), nil),
	}
	if login != nil {
		h.Auth = handlers.NewAuthHandler(login, nil)
	}
	return New(h, opts, zap.NewNop()), customers
}

func serve(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_LoginGate(t *testing.T) {
	a, err := auth.NewAuthenticator(auth.Settings{AdminEmail: "admin@marmorariatech.com", AdminPassword: "admin123", Secret: "s"})
	require.NoError(t, err)
	r, customers := newTestRouter(t, Options{Verifier: a})

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/v1/ping", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/v1/customers", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/v1/quotes/drafts", "").Code)

	tok, err := a.Login("admin@marmorariatech.com", "admin123")
	require.NoError(t, err)
	customers.EXPECT().List(gomock.Any(), "").Return([]entities.Customer{}, nil)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/v1/customers", tok.Value).Code)

	// login itself stays public
	assert.NotEqual(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/v1/auth/login", "").Code)
}

func TestRouter_AuthDisabled(t *testing.T) {
	r, customers := newTestRouter(t, Options{AuthDisabled: true})
	customers.EXPECT().List(gomock.Any(), "granito").Return(nil, nil)

	w := serve(r, http.MethodGet, "/v1/customers?q=granito", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRouter_UnmountedAreasAre404(t *testing.T) {
	r, _ := newTestRouter(t, Options{AuthDisabled: true})
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/v1/dashboard", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/v1/orders", "").Code)
}

func TestRouter_Swagger(t *testing.T) {
	r, _ := newTestRouter(t, Options{AuthDisabled: true})
	w := serve(r, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/quotes/drafts")
}

func TestServe_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, Serve(ctx, 0, http.NewServeMux(), zap.NewNop()))
}
