package entities

import "github.com/shopspring/decimal"

// Material is a stone sold by area (usually m²).
//
// Stock is informational: quotes never reserve or decrement it.
type Material struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Unit        string          `json:"unit"`
	Description string          `json:"description,omitempty"`
}

func (m Material) GetID() int { return m.ID }

func (m Material) WithID(id int) Material {
	m.ID = id
	return m
}

type MaterialPatch struct {
	Name        *string          `json:"name,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (p MaterialPatch) Apply(m Material) Material {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Stock != nil {
		m.Stock = *p.Stock
	}
	if p.Unit != nil {
		m.Unit = *p.Unit
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	return m
}
