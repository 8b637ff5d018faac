package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftUseCase(repos seededRepos) *QuoteDraftUseCase {
	return NewQuoteDraftUseCase(repos.customers, repos.materials, repos.orders, nil, 0)
}

func TestQuoteDraftUseCase_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repos := newSeededRepos()
	uc := newDraftUseCase(repos)

	d, err := uc.Start(ctx, 0)
	require.NoError(t, err)
	require.NotEmpty(t, d.ID)
	assert.Equal(t, EditorStateEmpty, d.State)
	assert.Equal(t, entities.OrderStatusAberto, d.Status)

	d, err = uc.SelectCustomer(ctx, d.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "Maria Oliveira", d.Customer.Name)

	d, err = uc.AddItem(ctx, d.ID, LineItemInput{MaterialID: 3, Description: "Ilha", Length: 2, Width: 1, Quantity: 1})
	require.NoError(t, err)
	assert.Equal(t, EditorStateHasItems, d.State)
	assert.True(t, d.Summary.ItemsSubtotal.Equal(decimal.NewFromInt(840)))

	shipping := decimal.NewFromInt(60)
	notes := "Cliente prefere acabamento polido"
	d, err = uc.Update(ctx, d.ID, DraftUpdate{ShippingCost: &shipping, Notes: &notes})
	require.NoError(t, err)
	assert.True(t, d.Summary.Total.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, notes, d.Notes)

	got, err := uc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)

	order, err := uc.Save(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, order.ID)
	assert.Equal(t, notes, order.Notes)

	got, err = uc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, EditorStateSaved, got.State)
	assert.Equal(t, 5, got.OrderID)

	_, err = uc.Save(ctx, d.ID)
	assert.ErrorIs(t, err, ErrQuoteAlreadySaved)

	require.NoError(t, uc.Discard(ctx, d.ID))
	_, err = uc.Get(ctx, d.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.ErrorIs(t, uc.Discard(ctx, d.ID), ErrDraftNotFound)
}

func TestQuoteDraftUseCase_StartFromOrder(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUseCase(newSeededRepos())

	d, err := uc.Start(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, d.OrderID)
	assert.Equal(t, entities.OrderStatusEmAndamento, d.Status)
	assert.Equal(t, "Maria Oliveira", d.Customer.Name)
	assert.Nil(t, d.CustomerID, "seeded orders carry only the name snapshot")

	_, err = uc.Start(ctx, 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestQuoteDraftUseCase_UpdateIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUseCase(newSeededRepos())
	d, err := uc.Start(ctx, 0)
	require.NoError(t, err)

	status := entities.OrderStatusFinalizado
	negative := decimal.NewFromInt(-10)
	_, err = uc.Update(ctx, d.ID, DraftUpdate{Status: &status, Discount: &negative})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	var zero time.Time
	_, err = uc.Update(ctx, d.ID, DraftUpdate{Status: &status, Date: &zero})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	got, err := uc.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusAberto, got.Status)
	assert.Nil(t, got.Adjustments.Discount)
}

func TestQuoteDraftUseCase_ClearAdjustment(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUseCase(newSeededRepos())
	d, _ := uc.Start(ctx, 0)

	discount := decimal.NewFromInt(15)
	d, err := uc.Update(ctx, d.ID, DraftUpdate{Discount: &discount})
	require.NoError(t, err)
	require.NotNil(t, d.Adjustments.Discount)

	d, err = uc.Update(ctx, d.ID, DraftUpdate{ClearDiscount: true})
	require.NoError(t, err)
	assert.Nil(t, d.Adjustments.Discount)
}

func TestQuoteDraftUseCase_UnknownDraft(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUseCase(newSeededRepos())

	_, err := uc.AddItem(ctx, "missing", LineItemInput{})
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = uc.Get(ctx, " ")
	assert.ErrorIs(t, err, ErrInvalidDraftID)
}

func TestQuoteDraftUseCase_ExpiredDraftsAreDropped(t *testing.T) {
	ctx := context.Background()
	repos := newSeededRepos()
	uc := NewQuoteDraftUseCase(repos.customers, repos.materials, repos.orders, nil, time.Hour)
	clock := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }

	old, err := uc.Start(ctx, 0)
	require.NoError(t, err)

	clock = clock.Add(2 * time.Hour)
	fresh, err := uc.Start(ctx, 0)
	require.NoError(t, err)

	_, err = uc.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = uc.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestQuoteDraftUseCase_ExpiredDraftUnreachableWithoutNewStart(t *testing.T) {
	ctx := context.Background()
	repos := newSeededRepos()
	uc := NewQuoteDraftUseCase(repos.customers, repos.materials, repos.orders, nil, time.Hour)
	clock := time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }

	d, err := uc.Start(ctx, 0)
	require.NoError(t, err)

	clock = clock.Add(59 * time.Minute)
	_, err = uc.Get(ctx, d.ID)
	require.NoError(t, err, "touching inside the ttl keeps the draft")

	clock = clock.Add(61 * time.Minute)
	_, err = uc.Get(ctx, d.ID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = uc.AddItem(ctx, d.ID, LineItemInput{MaterialID: 1, Description: "Bancada", Length: 1, Width: 1, Quantity: 1})
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.ErrorIs(t, uc.Discard(ctx, d.ID), ErrDraftNotFound)
}

func TestQuoteDraftUseCase_ConcurrentItemsOnOneDraft(t *testing.T) {
	ctx := context.Background()
	uc := newDraftUseCase(newSeededRepos())
	d, err := uc.Start(ctx, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.AddItem(ctx, d.ID, LineItemInput{MaterialID: 1, Description: "Peça", Length: 1, Width: 1, Quantity: 1})
		}()
	}
	wg.Wait()

	got, err := uc.Get(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 10)
	seen := map[int]bool{}
	for _, it := range got.Items {
		assert.False(t, seen[it.ID])
		seen[it.ID] = true
	}
}
