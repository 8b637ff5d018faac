package request

import (
	"strings"

	"marmoraria_tech/internal/domain/entities"
)

const DefaultMaterialUnit = "m²"

type MaterialCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Stock       int    `json:"stock"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// ToEntity defaults the unit to m².
func (r MaterialCreateRequest) ToEntity() (entities.Material, error) {
	price, err := ParseAmount("price", r.Price)
	if err != nil {
		return entities.Material{}, err
	}
	unit := strings.TrimSpace(r.Unit)
	if unit == "" {
		unit = DefaultMaterialUnit
	}
	return entities.Material{
		Name:        strings.TrimSpace(r.Name),
		Type:        strings.TrimSpace(r.Type),
		Price:       price,
		Stock:       r.Stock,
		Unit:        unit,
		Description: strings.TrimSpace(r.Description),
	}, nil
}

type MaterialUpdateRequest struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Price       *string `json:"price"`
	Stock       *int    `json:"stock"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
}

func (r MaterialUpdateRequest) ToPatch() (entities.MaterialPatch, error) {
	price, err := parseOptionalAmount("price", r.Price)
	if err != nil {
		return entities.MaterialPatch{}, err
	}
	return entities.MaterialPatch{
		Name:        r.Name,
		Type:        r.Type,
		Price:       price,
		Stock:       r.Stock,
		Unit:        r.Unit,
		Description: r.Description,
	}, nil
}
