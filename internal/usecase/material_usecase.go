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

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/material_usecase_mock.go -package=mocks

var ErrInvalidMaterialID = errors.New("invalid material id")

// IMaterialUseCase exposes the stone catalogue.
type IMaterialUseCase interface {
	List(ctx context.Context, query string) ([]entities.Material, error)
	GetByID(ctx context.Context, id int) (entities.Material, error)
	Create(ctx context.Context, material entities.Material) (entities.Material, error)
	Update(ctx context.Context, id int, patch entities.MaterialPatch) (entities.Material, error)
	Delete(ctx context.Context, id int) error
}

type MaterialUseCase struct {
	repo   interfaces.IMaterialRepository
	logger *zap.Logger
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(repo interfaces.IMaterialRepository, logger *zap.Logger) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, logger: loggerOrNop(logger)}
}

// List returns the materials whose name or type contain query.
func (u *MaterialUseCase) List(ctx context.Context, query string) ([]entities.Material, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Material, 0, len(all))
	for _, m := range all {
		if matchesQuery(query, m.Name, m.Type) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (u *MaterialUseCase) GetByID(ctx context.Context, id int) (entities.Material, error) {
	if id <= 0 {
		return entities.Material{}, ErrInvalidMaterialID
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if m.ID == 0 {
		return entities.Material{}, apperrors.NewNotFound("material", id)
	}
	return m, nil
}

func (u *MaterialUseCase) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Type = strings.TrimSpace(m.Type)
	m.Unit = strings.TrimSpace(m.Unit)
	if err := validateMaterial(m); err != nil {
		return entities.Material{}, err
	}
	m.ID = 0

	created, err := u.repo.Create(ctx, m)
	if err != nil {
		u.logger.Error("[material][usecase] create failed", zap.String("name", m.Name), zap.Error(err))
		return entities.Material{}, err
	}
	u.logger.Info("[material][usecase] created", zap.Int("material_id", created.ID))
	return created, nil
}

// Update merges patch into the stored material. The merged record must still
// be valid; nothing is written otherwise.
func (u *MaterialUseCase) Update(ctx context.Context, id int, patch entities.MaterialPatch) (entities.Material, error) {
	current, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if err := validateMaterial(patch.Apply(current)); err != nil {
		return entities.Material{}, err
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Material{}, err
	}
	if updated.ID == 0 {
		return entities.Material{}, apperrors.NewNotFound("material", id)
	}
	return updated, nil
}

// Delete removes the material. Line items keep their material name snapshot.
func (u *MaterialUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidMaterialID
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NewNotFound("material", id)
	}
	u.logger.Info("[material][usecase] deleted", zap.Int("material_id", id))
	return nil
}

func validateMaterial(m entities.Material) error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return apperrors.NewValidation("name", "required")
	case strings.TrimSpace(m.Type) == "":
		return apperrors.NewValidation("type", "required")
	case strings.TrimSpace(m.Unit) == "":
		return apperrors.NewValidation("unit", "required")
	case m.Price.IsNegative():
		return apperrors.NewValidation("price", "must not be negative")
	case m.Stock < 0:
		return apperrors.NewValidation("stock", "must not be negative")
	}
	return nil
}
