package usecase

import (
	"context"
	"errors"
	"testing"

	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/domain/entities"
	mock_interfaces "marmoraria_tech/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_List(t *testing.T) {
	seed := []entities.Customer{
		{ID: 1, Name: "João Silva", Email: "joao@exemplo.com", Phone: "(11) 98765-4321"},
		{ID: 2, Name: "Maria Oliveira", Email: "maria@exemplo.com", Phone: "(11) 91234-5678"},
	}

	cases := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "empty query returns all", query: "", want: []int{1, 2}},
		{name: "name ignores case", query: "MARIA", want: []int{2}},
		{name: "email", query: "joao@", want: []int{1}},
		{name: "phone", query: "91234", want: []int{2}},
		{name: "no match", query: "zzz", want: []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockICustomerRepository(ctrl)
			repo.EXPECT().List(gomock.Any()).Return(seed, nil)

			got, err := NewCustomerUseCase(repo, nil).List(context.Background(), tc.query)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d customers, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("position %d: expected id %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := NewCustomerUseCase(repo, nil).List(context.Background(), ""); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), 0); !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), 9).Return(entities.Customer{}, nil)

		_, err := NewCustomerUseCase(repo, nil).GetByID(context.Background(), 9)
		var nf *apperrors.NotFoundError
		if !errors.As(err, &nf) || nf.Kind != "customer" || nf.ID != 9 {
			t.Fatalf("expected customer NotFoundError, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), 1).Return(entities.Customer{ID: 1, Name: "João Silva"}, nil)

		c, err := NewCustomerUseCase(repo, nil).GetByID(context.Background(), 1)
		if err != nil || c.Name != "João Silva" {
			t.Fatalf("unexpected result: %+v %v", c, err)
		}
	})
}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewCustomerUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Customer{Name: "  "})
		var ve *apperrors.ValidationError
		if !errors.As(err, &ve) || ve.Field != "name" {
			t.Fatalf("expected name ValidationError, got %v", err)
		}
	})

	t.Run("spend starts at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			if !c.TotalSpent.IsZero() {
				t.Fatalf("expected zero spend, got %s", c.TotalSpent)
			}
			if c.Name != "Ana" {
				t.Fatalf("expected trimmed name, got %q", c.Name)
			}
			c.ID = 4
			return c, nil
		})

		c, err := NewCustomerUseCase(repo, nil).Create(context.Background(), entities.Customer{Name: " Ana ", TotalSpent: decimal.NewFromInt(999)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != 4 {
			t.Fatalf("expected id 4, got %d", c.ID)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("blank name rejected", func(t *testing.T) {
		blank := ""
		_, err := NewCustomerUseCase(nil, nil).Update(context.Background(), 1, entities.CustomerPatch{Name: &blank})
		if !errors.Is(err, apperrors.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("negative spend rejected", func(t *testing.T) {
		neg := decimal.NewFromInt(-1)
		_, err := NewCustomerUseCase(nil, nil).Update(context.Background(), 1, entities.CustomerPatch{TotalSpent: &neg})
		if !errors.Is(err, apperrors.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("missing customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().Update(gomock.Any(), 7, gomock.Any()).Return(entities.Customer{}, nil)

		email := "x@y.com"
		_, err := NewCustomerUseCase(repo, nil).Update(context.Background(), 7, entities.CustomerPatch{Email: &email})
		if !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("miss is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().Delete(gomock.Any(), 5).Return(false, nil)

		if err := NewCustomerUseCase(repo, nil).Delete(context.Background(), 5); !errors.Is(err, apperrors.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("storage error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().Delete(gomock.Any(), 5).Return(false, apperrors.NewStorage("put", "customers", errors.New("disk full")))

		if err := NewCustomerUseCase(repo, nil).Delete(context.Background(), 5); !errors.Is(err, apperrors.ErrStorage) {
			t.Fatalf("expected ErrStorage, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		repo.EXPECT().Delete(gomock.Any(), 5).Return(true, nil)

		if err := NewCustomerUseCase(repo, nil).Delete(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
