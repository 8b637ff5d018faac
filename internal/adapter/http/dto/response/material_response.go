package response

import "marmoraria_tech/internal/domain/entities"

type MaterialResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Unit        string `json:"unit"`
	Description string `json:"description,omitempty"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:          m.ID,
		Name:        m.Name,
		Type:        m.Type,
		Price:       money(m.Price),
		Stock:       m.Stock,
		Unit:        m.Unit,
		Description: m.Description,
	}
}

func FromMaterials(ms []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromMaterial(m))
	}
	return out
}
