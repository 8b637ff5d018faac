package usecase

import (
	"context"
	"sort"

	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/dashboard_usecase_mock.go -package=mocks

// recentOrdersLimit is how many orders the dashboard lists.
const recentOrdersLimit = 5

// DashboardSummary holds the shop's headline numbers.
type DashboardSummary struct {
	Customers    int
	Materials    int
	Orders       int
	ByStatus     map[entities.OrderStatus]int
	TotalQuoted  decimal.Decimal
	OpenValue    decimal.Decimal
	RecentOrders []entities.Order
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	customers interfaces.ICustomerRepository
	materials interfaces.IMaterialRepository
	orders    interfaces.IOrderRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(customers interfaces.ICustomerRepository, materials interfaces.IMaterialRepository, orders interfaces.IOrderRepository) *DashboardUseCase {
	return &DashboardUseCase{customers: customers, materials: materials, orders: orders}
}

// Summary loads the three collections concurrently. Totals are summed from
// the stored numeric values. OpenValue covers every order that is neither
// Finalizado nor Cancelado.
func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	var (
		customers []entities.Customer
		materials []entities.Material
		orders    []entities.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		customers, err = u.customers.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		materials, err = u.materials.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		orders, err = u.orders.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardSummary{}, err
	}

	s := DashboardSummary{
		Customers:   len(customers),
		Materials:   len(materials),
		Orders:      len(orders),
		ByStatus:    map[entities.OrderStatus]int{},
		TotalQuoted: decimal.Zero,
		OpenValue:   decimal.Zero,
	}
	for _, st := range entities.KnownOrderStatuses {
		s.ByStatus[st] = 0
	}
	for _, o := range orders {
		s.ByStatus[o.Status]++
		s.TotalQuoted = s.TotalQuoted.Add(o.Total)
		if o.Status != entities.OrderStatusFinalizado && o.Status != entities.OrderStatusCancelado {
			s.OpenValue = s.OpenValue.Add(o.Total)
		}
	}

	recent := append([]entities.Order(nil), orders...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	s.RecentOrders = recent
	return s, nil
}
