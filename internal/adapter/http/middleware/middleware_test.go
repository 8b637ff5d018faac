package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marmoraria_tech/internal/infrastructure/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubVerifier struct {
	subject string
	err     error
}

func (s stubVerifier) Verify(string) (string, error) { return s.subject, s.err }

func protectedRouter(v TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireAuth(v, zap.NewNop()))
	r.GET("/v1/customers", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(SubjectKey))
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	cases := []struct {
		name     string
		header   string
		verifier stubVerifier
		status   int
		code     string
	}{
		{name: "missing header", verifier: stubVerifier{subject: "x"}, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "wrong scheme", header: "Basic abc", verifier: stubVerifier{subject: "x"}, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "invalid token", header: "Bearer abc", verifier: stubVerifier{err: auth.ErrInvalidToken}, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "expired token", header: "Bearer abc", verifier: stubVerifier{err: auth.ErrTokenExpired}, status: http.StatusUnauthorized, code: "TOKEN_EXPIRED"},
		{name: "valid token", header: "bearer abc", verifier: stubVerifier{subject: "admin@marmorariatech.com"}, status: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			protectedRouter(tc.verifier).ServeHTTP(w, req)

			require.Equal(t, tc.status, w.Code)
			if tc.code != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tc.code, body["code"])
				return
			}
			assert.Equal(t, tc.verifier.subject, w.Body.String())
		})
	}
}

func TestRequireAuth_WithAuthenticator(t *testing.T) {
	a, err := auth.NewAuthenticator(auth.Settings{AdminEmail: "admin@marmorariatech.com", AdminPassword: "admin123", Secret: "s"})
	require.NoError(t, err)
	tok, err := a.Login("admin@marmorariatech.com", "admin123")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Value)
	w := httptest.NewRecorder()
	protectedRouter(a).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "admin@marmorariatech.com", w.Body.String())
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(RequestLogger(zap.New(core)))
	r.GET("/v1/orders/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/orders/9", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "[http][middleware] request", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "/v1/orders/:id", ctx["path"])
	assert.EqualValues(t, http.StatusNotFound, ctx["status"])
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}
