package usecase

import (
	"context"
	"errors"
	"strings"

	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase/interfaces"

	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/order_usecase_mock.go -package=mocks

var ErrInvalidOrderID = errors.New("invalid order id")

// IOrderUseCase exposes stored quotes. Composing and editing a quote goes
// through IQuoteDraftUseCase.
type IOrderUseCase interface {
	List(ctx context.Context, query string) ([]entities.Order, error)
	GetByID(ctx context.Context, id int) (entities.Order, error)
	UpdateStatus(ctx context.Context, id int, status entities.OrderStatus) (entities.Order, error)
	Delete(ctx context.Context, id int) error
}

type OrderUseCase struct {
	repo   interfaces.IOrderRepository
	logger *zap.Logger
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, logger *zap.Logger) *OrderUseCase {
	return &OrderUseCase{repo: repo, logger: loggerOrNop(logger)}
}

// List returns the orders whose customer name or status contain query.
func (u *OrderUseCase) List(ctx context.Context, query string) ([]entities.Order, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(all))
	for _, o := range all {
		if matchesQuery(query, o.Customer, string(o.Status)) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id int) (entities.Order, error) {
	if id <= 0 {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == 0 {
		return entities.Order{}, apperrors.NewNotFound("order", id)
	}
	return o, nil
}

// UpdateStatus relabels a stored quote. Any non-empty label is accepted.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int, status entities.OrderStatus) (entities.Order, error) {
	if id <= 0 {
		return entities.Order{}, ErrInvalidOrderID
	}
	status = entities.OrderStatus(strings.TrimSpace(string(status)))
	if status == "" {
		return entities.Order{}, apperrors.NewValidation("status", "required")
	}

	updated, err := u.repo.Update(ctx, id, entities.OrderPatch{Status: &status})
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == 0 {
		return entities.Order{}, apperrors.NewNotFound("order", id)
	}
	u.logger.Info("[order][usecase] status updated", zap.Int("order_id", id), zap.String("status", string(status)))
	return updated, nil
}

func (u *OrderUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("order", id)
	}
	u.logger.Info("[order][usecase] deleted", zap.Int("order_id", id))
	return nil
}
