package interfaces

import (
	"context"
	"marmoraria_tech/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/payment_repository_interface_mock.go -package=mocks

// IPaymentRepository abstracts persistence of quote payments.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByOrderID(ctx context.Context, orderID int) ([]entities.Payment, error)
}
