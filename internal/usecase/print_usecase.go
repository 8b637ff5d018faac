package usecase

import (
	"context"
	"errors"

	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/print_usecase_mock.go -package=mocks

var ErrPrintSurfaceUnavailable = errors.New("print surface not configured")

// IPrintUseCase produces the printable document of a stored quote.
type IPrintUseCase interface {
	RenderHTML(ctx context.Context, orderID int) ([]byte, error)
	RenderPDF(ctx context.Context, orderID int) ([]byte, error)
}

type PrintUseCase struct {
	orders    interfaces.IOrderRepository
	customers interfaces.ICustomerRepository
	materials interfaces.IMaterialRepository
	renderer  interfaces.IQuoteRenderer
	surface   interfaces.IPrintSurface
	logger    *zap.Logger
}

var _ IPrintUseCase = (*PrintUseCase)(nil)

// NewPrintUseCase wires the renderer. surface may be nil; RenderPDF then
// fails with ErrPrintSurfaceUnavailable.
func NewPrintUseCase(orders interfaces.IOrderRepository, customers interfaces.ICustomerRepository, materials interfaces.IMaterialRepository, renderer interfaces.IQuoteRenderer, surface interfaces.IPrintSurface, logger *zap.Logger) *PrintUseCase {
	return &PrintUseCase{
		orders:    orders,
		customers: customers,
		materials: materials,
		renderer:  renderer,
		surface:   surface,
		logger:    loggerOrNop(logger),
	}
}

// RenderHTML resolves the order's weak references and renders it. Only a
// missing order is an error; a deleted customer or material falls back to
// the snapshots stored on the order.
func (u *PrintUseCase) RenderHTML(ctx context.Context, orderID int) ([]byte, error) {
	order, err := NewOrderUseCase(u.orders, u.logger).GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var customer *entities.Customer
	if order.CustomerID != nil {
		c, err := u.customers.GetByID(ctx, *order.CustomerID)
		if err != nil {
			return nil, err
		}
		if c.ID != 0 {
			customer = &c
		}
	}

	materials := map[int]entities.Material{}
	if len(order.Items) > 0 {
		all, err := u.materials.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, m := range all {
			materials[m.ID] = m
		}
	}

	doc, err := u.renderer.Render(order, customer, materials)
	if err != nil {
		u.logger.Error("[print][usecase] render failed", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	return doc, nil
}

func (u *PrintUseCase) RenderPDF(ctx context.Context, orderID int) ([]byte, error) {
	if u.surface == nil {
		return nil, ErrPrintSurfaceUnavailable
	}
	doc, err := u.RenderHTML(ctx, orderID)
	if err != nil {
		return nil, err
	}
	pdf, err := u.surface.Print(ctx, doc)
	if err != nil {
		u.logger.Error("[print][usecase] print failed", zap.Int("order_id", orderID), zap.Error(err))
		return nil, err
	}
	u.logger.Info("[print][usecase] pdf ready", zap.Int("order_id", orderID), zap.Int("bytes", len(pdf)))
	return pdf, nil
}
