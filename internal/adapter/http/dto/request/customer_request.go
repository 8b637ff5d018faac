package request

import (
	"strings"

	"marmoraria_tech/internal/domain/entities"
)

type CustomerCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	Document string `json:"document"`
}

func (r CustomerCreateRequest) ToEntity() entities.Customer {
	return entities.Customer{
		Name:     strings.TrimSpace(r.Name),
		Phone:    strings.TrimSpace(r.Phone),
		Email:    strings.TrimSpace(r.Email),
		Address:  strings.TrimSpace(r.Address),
		Document: strings.TrimSpace(r.Document),
	}
}

// CustomerUpdateRequest is a partial update; absent fields keep their value.
type CustomerUpdateRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	Document   *string `json:"document"`
	TotalSpent *string `json:"total_spent"`
}

func (r CustomerUpdateRequest) ToPatch() (entities.CustomerPatch, error) {
	spent, err := parseOptionalAmount("total_spent", r.TotalSpent)
	if err != nil {
		return entities.CustomerPatch{}, err
	}
	return entities.CustomerPatch{
		Name:       r.Name,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    r.Address,
		Document:   r.Document,
		TotalSpent: spent,
	}, nil
}
