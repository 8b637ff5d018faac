package repository

import (
	"context"

	"marmoraria_tech/internal/adapter/persistence/kv"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase/interfaces"
)

// OrderRepository persists quotes under the "orders" key, line items embedded.
type OrderRepository struct {
	records *Collection[entities.Order]
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(store kv.Store) *OrderRepository {
	return &OrderRepository{records: NewCollection(store, OrdersKey, seedOrders)}
}

func (r *OrderRepository) List(ctx context.Context) ([]entities.Order, error) {
	return r.records.List(ctx)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (entities.Order, error) {
	o, _, err := r.records.GetByID(ctx, id)
	return o, err
}

func (r *OrderRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	return r.records.Add(ctx, o)
}

func (r *OrderRepository) Update(ctx context.Context, id int, patch entities.OrderPatch) (entities.Order, error) {
	o, _, err := r.records.Update(ctx, id, patch)
	return o, err
}

func (r *OrderRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.records.Delete(ctx, id)
}
