package interfaces

import (
	"context"
	"marmoraria_tech/internal/domain/entities"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/customer_repository_interface_mock.go -package=mocks

// ICustomerRepository abstracts persistence of the customers collection.
//
// Lookups and updates of a missing id return the zero Customer and a nil error;
// the use case decides whether that is a NotFoundError.
type ICustomerRepository interface {
	List(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id int) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, id int, patch entities.CustomerPatch) (entities.Customer, error)
	// AddToTotalSpent increments TotalSpent by amount as one read-modify-write.
	AddToTotalSpent(ctx context.Context, id int, amount decimal.Decimal) (entities.Customer, error)
	Delete(ctx context.Context, id int) (bool, error)
}
