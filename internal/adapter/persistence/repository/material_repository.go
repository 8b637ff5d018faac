package repository

import (
	"context"

	"marmoraria_tech/internal/adapter/persistence/kv"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase/interfaces"
)

// MaterialRepository persists materials under the "materials" key.
type MaterialRepository struct {
	records *Collection[entities.Material]
}

var _ interfaces.IMaterialRepository = (*MaterialRepository)(nil)

func NewMaterialRepository(store kv.Store) *MaterialRepository {
	return &MaterialRepository{records: NewCollection(store, MaterialsKey, seedMaterials)}
}

func (r *MaterialRepository) List(ctx context.Context) ([]entities.Material, error) {
	return r.records.List(ctx)
}

func (r *MaterialRepository) GetByID(ctx context.Context, id int) (entities.Material, error) {
	m, _, err := r.records.GetByID(ctx, id)
	return m, err
}

func (r *MaterialRepository) Create(ctx context.Context, m entities.Material) (entities.Material, error) {
	return r.records.Add(ctx, m)
}

func (r *MaterialRepository) Update(ctx context.Context, id int, patch entities.MaterialPatch) (entities.Material, error) {
	m, _, err := r.records.Update(ctx, id, patch)
	return m, err
}

func (r *MaterialRepository) Delete(ctx context.Context, id int) (bool, error) {
	return r.records.Delete(ctx, id)
}
