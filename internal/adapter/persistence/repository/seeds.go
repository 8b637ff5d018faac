package repository

import (
	"time"

	"marmoraria_tech/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Substrate keys, one per collection.
const (
	CustomersKey = "customers"
	MaterialsKey = "materials"
	OrdersKey    = "orders"
	PaymentsKey  = "payments"
)

// First-run example records, persisted the first time a collection is read.

func seedCustomers() []entities.Customer {
	return []entities.Customer{
		{
			ID:         1,
			Name:       "João Silva",
			Phone:      "(11) 98765-4321",
			Email:      "joao@exemplo.com",
			Address:    "Rua das Flores, 123 - São Paulo/SP",
			Document:   "123.456.789-00",
			TotalSpent: decimal.NewFromInt(5800),
		},
		{
			ID:         2,
			Name:       "Maria Oliveira",
			Phone:      "(11) 91234-5678",
			Email:      "maria@exemplo.com",
			Address:    "Av. Paulista, 1000 - São Paulo/SP",
			Document:   "987.654.321-00",
			TotalSpent: decimal.NewFromInt(3200),
		},
		{
			ID:         3,
			Name:       "Carlos Santos",
			Phone:      "(11) 99876-5432",
			Email:      "carlos@exemplo.com",
			Address:    "Rua Augusta, 500 - São Paulo/SP",
			Document:   "456.789.123-00",
			TotalSpent: decimal.NewFromInt(1800),
		},
	}
}

func seedMaterials() []entities.Material {
	return []entities.Material{
		{ID: 1, Name: "Mármore Carrara", Type: "Mármore", Price: decimal.NewFromInt(350), Stock: 50, Unit: "m²",
			Description: "Mármore branco de alta qualidade, importado da Itália."},
		{ID: 2, Name: "Granito Preto São Gabriel", Type: "Granito", Price: decimal.NewFromInt(280), Stock: 35, Unit: "m²",
			Description: "Granito nacional de cor preta com pequenos cristais."},
		{ID: 3, Name: "Quartzo Branco", Type: "Quartzo", Price: decimal.NewFromInt(420), Stock: 25, Unit: "m²",
			Description: "Quartzo branco com alta resistência a manchas e riscos."},
		{ID: 4, Name: "Mármore Travertino", Type: "Mármore", Price: decimal.NewFromInt(300), Stock: 40, Unit: "m²"},
		{ID: 5, Name: "Granito Verde Ubatuba", Type: "Granito", Price: decimal.NewFromInt(260), Stock: 30, Unit: "m²"},
	}
}

func seedOrders() []entities.Order {
	day := func(d int) time.Time { return time.Date(2023, time.October, d, 0, 0, 0, 0, time.UTC) }
	return []entities.Order{
		{ID: 1, Customer: "João Silva", Date: day(15), Status: entities.OrderStatusAberto, Total: decimal.NewFromInt(2500)},
		{ID: 2, Customer: "Maria Oliveira", Date: day(14), Status: entities.OrderStatusEmAndamento, Total: decimal.NewFromInt(3200)},
		{ID: 3, Customer: "Carlos Santos", Date: day(12), Status: entities.OrderStatusFinalizado, Total: decimal.NewFromInt(1800)},
		{ID: 4, Customer: "Ana Ferreira", Date: day(10), Status: entities.OrderStatusAberto, Total: decimal.NewFromInt(4100)},
	}
}
