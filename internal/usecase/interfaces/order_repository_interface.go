package interfaces

import (
	"context"
	"marmoraria_tech/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/order_repository_interface_mock.go -package=mocks

// IOrderRepository abstracts persistence of the orders (quotes) collection.

type IOrderRepository interface {
	List(ctx context.Context) ([]entities.Order, error)
	GetByID(ctx context.Context, id int) (entities.Order, error)
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	Update(ctx context.Context, id int, patch entities.OrderPatch) (entities.Order, error)
	Delete(ctx context.Context, id int) (bool, error)
}
