package usecase

import (
	"context"
	"errors"
	"testing"

	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/domain/entities"
	mock_interfaces "marmoraria_tech/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validMaterial() entities.Material {
	return entities.Material{Name: "Mármore Carrara", Type: "Mármore", Price: decimal.NewFromInt(350), Stock: 50, Unit: "m²"}
}

func TestMaterialUseCase_CreateValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entities.Material)
		field  string
	}{
		{"name", func(m *entities.Material) { m.Name = "" }, "name"},
		{"type", func(m *entities.Material) { m.Type = " " }, "type"},
		{"unit", func(m *entities.Material) { m.Unit = "" }, "unit"},
		{"negative price", func(m *entities.Material) { m.Price = decimal.NewFromInt(-1) }, "price"},
		{"negative stock", func(m *entities.Material) { m.Stock = -3 }, "stock"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMaterial()
			tc.mutate(&m)
			_, err := NewMaterialUseCase(nil, nil).Create(context.Background(), m)
			var ve *apperrors.ValidationError
			require.True(t, errors.As(err, &ve), "got %v", err)
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestMaterialUseCase_CreateAllowsZeroPriceAndStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
	m := validMaterial()
	m.Price = decimal.Zero
	m.Stock = 0
	repo.EXPECT().Create(gomock.Any(), m).Return(m.WithID(6), nil)

	created, err := NewMaterialUseCase(repo, nil).Create(context.Background(), m)
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)
}

func TestMaterialUseCase_UpdateValidatesMergedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), 1).Return(validMaterial().WithID(1), nil)

	neg := -1
	_, err := NewMaterialUseCase(repo, nil).Update(context.Background(), 1, entities.MaterialPatch{Stock: &neg})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestMaterialUseCase_UpdateMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
	repo.EXPECT().GetByID(gomock.Any(), 8).Return(entities.Material{}, nil)

	price := decimal.NewFromInt(10)
	_, err := NewMaterialUseCase(repo, nil).Update(context.Background(), 8, entities.MaterialPatch{Price: &price})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMaterialUseCase_UpdateSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
	current := validMaterial().WithID(1)
	price := decimal.NewFromInt(380)
	patch := entities.MaterialPatch{Price: &price}
	repo.EXPECT().GetByID(gomock.Any(), 1).Return(current, nil)
	repo.EXPECT().Update(gomock.Any(), 1, patch).Return(patch.Apply(current), nil)

	updated, err := NewMaterialUseCase(repo, nil).Update(context.Background(), 1, patch)
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, current.Name, updated.Name)
}

func TestMaterialUseCase_ListFiltersByNameAndType(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Material{
		{ID: 1, Name: "Mármore Carrara", Type: "Mármore"},
		{ID: 2, Name: "Granito Preto São Gabriel", Type: "Granito"},
		{ID: 3, Name: "Quartzo Branco", Type: "Quartzo"},
	}, nil).Times(2)
	uc := NewMaterialUseCase(repo, nil)

	got, err := uc.List(context.Background(), "granito")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)

	got, err = uc.List(context.Background(), "branco")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].ID)
}

func TestMaterialUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
	repo.EXPECT().Delete(gomock.Any(), 2).Return(true, nil)
	repo.EXPECT().Delete(gomock.Any(), 99).Return(false, nil)
	uc := NewMaterialUseCase(repo, nil)

	assert.NoError(t, uc.Delete(context.Background(), 2))
	assert.ErrorIs(t, uc.Delete(context.Background(), 99), apperrors.ErrNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), -1), ErrInvalidMaterialID)
}
