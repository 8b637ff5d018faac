package repository

import (
	"context"

	"marmoraria_tech/internal/adapter/persistence/kv"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// CustomerRepository persists customers under the "customers" key.
type CustomerRepository struct {
	records *Collection[entities.Customer]
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(store kv.Store) *CustomerRepository {
	return &CustomerRepository{records: NewCollection(store, CustomersKey, seedCustomers)}
}

func (r *CustomerRepository) List(ctx context.Context) ([]entities.Customer, error) {
	return r.records.List(ctx)
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int) (entities.Customer, error) {
	c, _, err := r.records.GetByID(ctx, id)
	return c, err
}

func (r *CustomerRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	return r.records.Add(ctx, c)
}

func (r *CustomerRepository) Update(ctx context.Context, id int, patch entities.CustomerPatch) (entities.Customer, error) {
	c, _, err := r.records.Update(ctx, id, patch)
	return c, err
}

// AddToTotalSpent adds amount to the stored TotalSpent under the collection
// lock, so concurrent payments for the same customer all count.
func (r *CustomerRepository) AddToTotalSpent(ctx context.Context, id int, amount decimal.Decimal) (entities.Customer, error) {
	c, _, err := r.records.Update(ctx, id, spendIncrement{amount: amount})
	return c, err
}

func (r *CustomerRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.records.Delete(ctx, id)
}

// spendIncrement is a patch relative to the stored value.
type spendIncrement struct {
	amount decimal.Decimal
}

func (p spendIncrement) Apply(c entities.Customer) entities.Customer {
	c.TotalSpent = c.TotalSpent.Add(p.amount)
	return c
}
