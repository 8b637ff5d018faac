package entities

import "github.com/shopspring/decimal"

// Customer is a client of the shop.
//
// TotalSpent accumulates approved quote payments. It is stored as a number and
// only formatted as currency when presented.
type Customer struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	Email      string          `json:"email"`
	Address    string          `json:"address"`
	Document   string          `json:"document"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

func (c Customer) GetID() int { return c.ID }

func (c Customer) WithID(id int) Customer {
	c.ID = id
	return c
}

// CustomerPatch carries the fields of a partial customer update. Nil fields
// are left untouched.
type CustomerPatch struct {
	Name       *string          `json:"name,omitempty"`
	Phone      *string          `json:"phone,omitempty"`
	Email      *string          `json:"email,omitempty"`
	Address    *string          `json:"address,omitempty"`
	Document   *string          `json:"document,omitempty"`
	TotalSpent *decimal.Decimal `json:"total_spent,omitempty"`
}

func (p CustomerPatch) Apply(c Customer) Customer {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Address != nil {
		c.Address = *p.Address
	}
	if p.Document != nil {
		c.Document = *p.Document
	}
	if p.TotalSpent != nil {
		c.TotalSpent = *p.TotalSpent
	}
	return c
}
