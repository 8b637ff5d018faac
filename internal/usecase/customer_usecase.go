package usecase

import (
	"context"
	"errors"
	"strings"

	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/customer_usecase_mock.go -package=mocks

var ErrInvalidCustomerID = errors.New("invalid customer id")

// ICustomerUseCase exposes the customer registry.
type ICustomerUseCase interface {
	List(ctx context.Context, query string) ([]entities.Customer, error)
	GetByID(ctx context.Context, id int) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, id int, patch entities.CustomerPatch) (entities.Customer, error)
	Delete(ctx context.Context, id int) error
}

type CustomerUseCase struct {
	repo   interfaces.ICustomerRepository
	logger *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, logger *zap.Logger) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, logger: loggerOrNop(logger)}
}

// List returns the customers whose name, email or phone contain query.
func (u *CustomerUseCase) List(ctx context.Context, query string) ([]entities.Customer, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(all))
	for _, c := range all {
		if matchesQuery(query, c.Name, c.Email, c.Phone) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id int) (entities.Customer, error) {
	if id <= 0 {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == 0 {
		return entities.Customer{}, apperrors.NewNotFound("customer", id)
	}
	return c, nil
}

// Create stores a new customer. The cumulative spend always starts at zero.
func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Customer{}, apperrors.NewValidation("name", "required")
	}
	c.ID = 0
	c.TotalSpent = decimal.Zero

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.logger.Error("[customer][usecase] create failed", zap.String("name", c.Name), zap.Error(err))
		return entities.Customer{}, err
	}
	u.logger.Info("[customer][usecase] created", zap.Int("customer_id", created.ID))
	return created, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id int, patch entities.CustomerPatch) (entities.Customer, error) {
	if id <= 0 {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return entities.Customer{}, apperrors.NewValidation("name", "required")
		}
		patch.Name = &name
	}
	if patch.TotalSpent != nil && patch.TotalSpent.IsNegative() {
		return entities.Customer{}, apperrors.NewValidation("total_spent", "must not be negative")
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Customer{}, err
	}
	if updated.ID == 0 {
		return entities.Customer{}, apperrors.NewNotFound("customer", id)
	}
	return updated, nil
}

// Delete removes the customer. Orders that reference it keep their name
// snapshot.
func (u *CustomerUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidCustomerID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("customer", id)
	}
	u.logger.Info("[customer][usecase] deleted", zap.Int("customer_id", id))
	return nil
}
