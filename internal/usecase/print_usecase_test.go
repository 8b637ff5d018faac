package usecase

import (
	"context"
	"errors"
	"testing"

	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/domain/entities"
	mock_interfaces "marmoraria_tech/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPrintUseCase_RenderHTML(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		orders.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Order{}, nil)

		uc := NewPrintUseCase(orders, nil, nil, nil, nil, nil)
		if _, err := uc.RenderHTML(context.Background(), 9); !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("dangling references are passed as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		materials := mock_interfaces.NewMockIMaterialRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)

		cid := 3
		order := entities.Order{ID: 1, Customer: "Carlos Santos", CustomerID: &cid, Items: []entities.LineItem{{ID: 1, MaterialID: 4, MaterialName: "Mármore Travertino"}}}
		orders.EXPECT().GetByID(gomock.Any(), 1).Return(order, nil)
		customers.EXPECT().GetByID(gomock.Any(), 3).Return(entities.Customer{}, nil)
		materials.EXPECT().List(gomock.Any()).Return([]entities.Material{{ID: 1, Name: "Mármore Carrara"}}, nil)
		renderer.EXPECT().Render(order, nil, gomock.Any()).DoAndReturn(func(_ entities.Order, c *entities.Customer, m map[int]entities.Material) ([]byte, error) {
			if c != nil {
				t.Fatalf("expected nil customer, got %+v", c)
			}
			if _, ok := m[4]; ok {
				t.Fatalf("deleted material must not be resolved")
			}
			return []byte("<html></html>"), nil
		})

		doc, err := NewPrintUseCase(orders, customers, materials, renderer, nil, nil).RenderHTML(context.Background(), 1)
		if err != nil || string(doc) != "<html></html>" {
			t.Fatalf("unexpected result: %q %v", doc, err)
		}
	})

	t.Run("resolved customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)

		cid := 1
		order := entities.Order{ID: 2, Customer: "João Silva", CustomerID: &cid}
		joao := entities.Customer{ID: 1, Name: "João Silva", Phone: "(11) 98765-4321"}
		orders.EXPECT().GetByID(gomock.Any(), 2).Return(order, nil)
		customers.EXPECT().GetByID(gomock.Any(), 1).Return(joao, nil)
		renderer.EXPECT().Render(order, &joao, map[int]entities.Material{}).Return([]byte("ok"), nil)

		if _, err := NewPrintUseCase(orders, customers, nil, renderer, nil, nil).RenderHTML(context.Background(), 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPrintUseCase_RenderPDF(t *testing.T) {
	t.Run("no surface", func(t *testing.T) {
		uc := NewPrintUseCase(nil, nil, nil, nil, nil, nil)
		if _, err := uc.RenderPDF(context.Background(), 1); !errors.Is(err, ErrPrintSurfaceUnavailable) {
			t.Fatalf("expected ErrPrintSurfaceUnavailable, got %v", err)
		}
	})

	t.Run("prints rendered html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		surface := mock_interfaces.NewMockIPrintSurface(ctrl)

		order := entities.Order{ID: 4, Customer: "Ana Ferreira"}
		orders.EXPECT().GetByID(gomock.Any(), 4).Return(order, nil)
		renderer.EXPECT().Render(order, nil, gomock.Any()).Return([]byte("<html>4</html>"), nil)
		surface.EXPECT().Print(gomock.Any(), []byte("<html>4</html>")).Return([]byte("%PDF-1.4"), nil)

		pdf, err := NewPrintUseCase(orders, nil, nil, renderer, surface, nil).RenderPDF(context.Background(), 4)
		if err != nil || string(pdf) != "%PDF-1.4" {
			t.Fatalf("unexpected result: %q %v", pdf, err)
		}
	})

	t.Run("surface error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		surface := mock_interfaces.NewMockIPrintSurface(ctrl)

		orders.EXPECT().GetByID(gomock.Any(), 4).Return(entities.Order{ID: 4}, nil)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte("x"), nil)
		surface.EXPECT().Print(gomock.Any(), gomock.Any()).Return(nil, errors.New("browser crashed"))

		_, err := NewPrintUseCase(orders, nil, nil, renderer, surface, nil).RenderPDF(context.Background(), 4)
		if err == nil || err.Error() != "browser crashed" {
			t.Fatalf("expected browser error, got %v", err)
		}
	})
}
