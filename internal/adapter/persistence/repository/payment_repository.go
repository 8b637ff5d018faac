package repository

import (
	"context"

	"marmoraria_tech/internal/adapter/persistence/kv"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase/interfaces"
)

// PaymentRepository persists quote payments under the "payments" key.
// Payments are append-only.
type PaymentRepository struct {
	records *Collection[entities.Payment]
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(store kv.Store) *PaymentRepository {
	return &PaymentRepository{records: NewCollection[entities.Payment](store, PaymentsKey, nil)}
}

func (r *PaymentRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	return r.records.Add(ctx, p)
}

func (r *PaymentRepository) ListByOrderID(ctx context.Context, orderID int) ([]entities.Payment, error) {
	all, err := r.records.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entities.Payment, 0, len(all))
	for _, p := range all {
		if p.OrderID == orderID {
			items = append(items, p)
		}
	}
	return items, nil
}
