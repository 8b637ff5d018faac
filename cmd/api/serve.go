package main

import (
	"context"

	"marmoraria_tech/internal/adapter/http/handlers"
	"marmoraria_tech/internal/adapter/http/routes"
	"marmoraria_tech/internal/infrastructure/auth"
	"marmoraria_tech/internal/infrastructure/payments"
	"marmoraria_tech/internal/usecase"
	"marmoraria_tech/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func runServe(ctx context.Context) error {
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer a.shutdown()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, cfg.Payments.MockMode, logger)
	if err != nil {
		logger.Warn("[app] Mercado Pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	printUseCase, err := a.printUseCase()
	if err != nil {
		return err
	}

	paymentUseCase := usecase.NewPaymentUseCase(a.payments, a.orders, a.customers, paymentGateway, usecase.PaymentSettings{
		MockMode:        cfg.Payments.MockMode,
		AccessToken:     cfg.Payments.AccessToken,
		TestPayerEmail:  cfg.Payments.TestPayerEmail,
		TestPayerUserID: cfg.Payments.TestPayerUserID,
	}, logger)

	h := routes.Handlers{
		Customers: handlers.NewCustomerHandler(usecase.NewCustomerUseCase(a.customers, logger), logger),
		Materials: handlers.NewMaterialHandler(usecase.NewMaterialUseCase(a.materials, logger), logger),
		Orders:    handlers.NewOrderHandler(usecase.NewOrderUseCase(a.orders, logger), printUseCase, logger),
		Payments:  handlers.NewPaymentHandler(paymentUseCase, cfg.Payments.MockMode, logger),
		Quotes:    handlers.NewQuoteDraftHandler(usecase.NewQuoteDraftUseCase(a.customers, a.materials, a.orders, logger, cfg.Quotes.DraftTTL), logger),
		Dashboard: handlers.NewDashboardHandler(usecase.NewDashboardUseCase(a.customers, a.materials, a.orders), logger),
	}

	opts := routes.Options{AuthDisabled: cfg.Auth.Disabled}
	if !cfg.Auth.Disabled {
		authenticator, err := auth.NewAuthenticator(auth.Settings{
			AdminEmail:        cfg.Auth.AdminEmail,
			AdminPassword:     cfg.Auth.AdminPassword,
			AdminPasswordHash: cfg.Auth.AdminPasswordHash,
			Secret:            cfg.Auth.TokenSecret,
			TokenTTL:          cfg.Auth.TokenTTL,
		})
		if err != nil {
			return err
		}
		if cfg.Auth.TokenSecret == "" {
			logger.Warn("[app] no token secret configured, tokens will not survive a restart")
		}
		h.Auth = handlers.NewAuthHandler(authenticator, logger)
		opts.Verifier = authenticator
	}

	logger.Info("[app] starting",
		zap.String("storage", cfg.Storage.Driver),
		zap.Bool("auth", !cfg.Auth.Disabled),
		zap.Bool("payments_mock", cfg.Payments.MockMode),
	)
	return routes.Serve(ctx, cfg.HTTP.Port, routes.New(h, opts, logger), logger)
}
