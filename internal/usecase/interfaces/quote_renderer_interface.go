package interfaces

import "marmoraria_tech/internal/domain/entities"

//go:generate mockgen -source=$GOFILE -destination=mocks/quote_renderer_interface_mock.go -package=mocks

// IQuoteRenderer projects a stored quote into a standalone printable document.
//
// customer is nil when the order has no customer reference or it no longer
// resolves; materials holds the current material records by id. Missing
// references never make Render fail.
type IQuoteRenderer interface {
	Render(order entities.Order, customer *entities.Customer, materials map[int]entities.Material) ([]byte, error)
}
