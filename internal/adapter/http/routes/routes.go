package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "marmoraria_tech/docs" // swag init output
	"marmoraria_tech/internal/adapter/http/handlers"
	"marmoraria_tech/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Customers *handlers.CustomerHandler
	Materials *handlers.MaterialHandler
	Orders    *handlers.OrderHandler
	Payments  *handlers.PaymentHandler
	Quotes    *handlers.QuoteDraftHandler
	Dashboard *handlers.DashboardHandler
}

// Options controls the login gate. A nil Verifier or AuthDisabled leaves
// every route public.
type Options struct {
	Verifier     middleware.TokenVerifier
	AuthDisabled bool
}

// New builds the /v1 API.
func New(h Handlers, opts Options, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	router := gin.New()
	router.Use(middleware.Recovery(logger), middleware.RequestLogger(logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	if h.Auth != nil {
		v1.POST(PathLogin, h.Auth.Login)
	}

	protected := v1.Group("")
	if !opts.AuthDisabled && opts.Verifier != nil {
		protected.Use(middleware.RequireAuth(opts.Verifier, logger))
	} else {
		logger.Warn("[http][routes] login gate disabled, every route is public")
	}
	addCustomerRoutes(protected, h.Customers)
	addMaterialRoutes(protected, h.Materials)
	addOrderRoutes(protected, h.Orders, h.Payments)
	addQuoteRoutes(protected, h.Quotes)
	if h.Dashboard != nil {
		protected.GET(PathDashboard, h.Dashboard.GetDashboard)
	}
	return router
}

// Serve runs the router until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, port int, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http][server] listening", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("[http][server] shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("[http][server] stopped")
	return nil
}
