package interfaces

import (
	"context"
	"marmoraria_tech/internal/domain/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mocks/material_repository_interface_mock.go -package=mocks

// IMaterialRepository abstracts persistence of the materials collection.
type IMaterialRepository interface {
	List(ctx context.Context) ([]entities.Material, error)
	GetByID(ctx context.Context, id int) (entities.Material, error)
	Create(ctx context.Context, material entities.Material) (entities.Material, error)
	Update(ctx context.Context, id int, patch entities.MaterialPatch) (entities.Material, error)
	Delete(ctx context.Context, id int) (bool, error)
}
