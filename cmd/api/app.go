package main

import (
	"context"

	"marmoraria_tech/internal/adapter/persistence/repository"
	"marmoraria_tech/internal/adapter/printing"
	"marmoraria_tech/internal/infrastructure/browser"
	"marmoraria_tech/internal/infrastructure/database"
	"marmoraria_tech/internal/usecase"
	"marmoraria_tech/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// app holds the repositories shared by every command.
type app struct {
	customers *repository.CustomerRepository
	materials *repository.MaterialRepository
	orders    *repository.OrderRepository
	payments  *repository.PaymentRepository
	close     func() error
}

func openApp(ctx context.Context) (*app, error) {
	store, closeStore, err := database.OpenStore(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, err
	}
	return &app{
		customers: repository.NewCustomerRepository(store),
		materials: repository.NewMaterialRepository(store),
		orders:    repository.NewOrderRepository(store),
		payments:  repository.NewPaymentRepository(store),
		close:     closeStore,
	}, nil
}

func (a *app) printUseCase() (*usecase.PrintUseCase, error) {
	renderer, err := printing.NewQuoteRenderer(cfg.Company)
	if err != nil {
		return nil, err
	}
	var surface interfaces.IPrintSurface = browser.NewRodSurface(cfg.Print.ChromeBin, cfg.Print.Timeout, logger)
	return usecase.NewPrintUseCase(a.orders, a.customers, a.materials, renderer, surface, logger), nil
}

func (a *app) shutdown() {
	if err := a.close(); err != nil {
		logger.Warn("[app] close storage", zap.Error(err))
	}
}
