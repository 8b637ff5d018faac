package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/quote_draft_usecase_mock.go -package=mocks

var (
	ErrDraftNotFound  = errors.New("quote draft not found")
	ErrInvalidDraftID = errors.New("invalid quote draft id")
)

// DefaultDraftTTL is how long an untouched draft is kept.
const DefaultDraftTTL = 24 * time.Hour

// DraftUpdate carries the quote-level fields of a PATCH. Nil fields are left
// untouched; an adjustment is removed by its Clear flag.
type DraftUpdate struct {
	Status            *entities.OrderStatus
	Date              *time.Time
	Notes             *string
	ShippingCost      *decimal.Decimal
	InstallationCost  *decimal.Decimal
	Discount          *decimal.Decimal
	ClearShipping     bool
	ClearInstallation bool
	ClearDiscount     bool
}

// IQuoteDraftUseCase keeps quote editing sessions across requests.
type IQuoteDraftUseCase interface {
	Start(ctx context.Context, orderID int) (QuoteDraft, error)
	Get(ctx context.Context, draftID string) (QuoteDraft, error)
	Discard(ctx context.Context, draftID string) error
	SelectCustomer(ctx context.Context, draftID string, customerID int) (QuoteDraft, error)
	ClearCustomer(ctx context.Context, draftID string) (QuoteDraft, error)
	AddItem(ctx context.Context, draftID string, in LineItemInput) (QuoteDraft, error)
	RemoveItem(ctx context.Context, draftID string, itemID int) (QuoteDraft, error)
	Update(ctx context.Context, draftID string, in DraftUpdate) (QuoteDraft, error)
	Save(ctx context.Context, draftID string) (entities.Order, error)
}

type draftSession struct {
	mu      sync.Mutex
	editor  *QuoteEditor
	touched time.Time
}

type QuoteDraftUseCase struct {
	customers interfaces.ICustomerRepository
	materials interfaces.IMaterialRepository
	orders    interfaces.IOrderRepository
	logger    *zap.Logger
	ttl       time.Duration
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*draftSession
}

var _ IQuoteDraftUseCase = (*QuoteDraftUseCase)(nil)

func NewQuoteDraftUseCase(customers interfaces.ICustomerRepository, materials interfaces.IMaterialRepository, orders interfaces.IOrderRepository, logger *zap.Logger, ttl time.Duration) *QuoteDraftUseCase {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	return &QuoteDraftUseCase{
		customers: customers,
		materials: materials,
		orders:    orders,
		logger:    loggerOrNop(logger),
		ttl:       ttl,
		now:       time.Now,
		sessions:  map[string]*draftSession{},
	}
}

// Start opens a session: a new quote when orderID is zero, otherwise an edit
// of the stored quote. Expired sessions are dropped here.
func (u *QuoteDraftUseCase) Start(ctx context.Context, orderID int) (QuoteDraft, error) {
	var (
		editor *QuoteEditor
		err    error
	)
	if orderID == 0 {
		editor = NewQuoteEditor(u.customers, u.materials, u.orders, u.logger)
	} else {
		editor, err = OpenQuoteEditor(ctx, u.customers, u.materials, u.orders, u.logger, orderID)
		if err != nil {
			return QuoteDraft{}, err
		}
	}

	id := uuid.NewString()
	now := u.now()

	u.mu.Lock()
	for key, s := range u.sessions {
		if u.expired(s, now) {
			delete(u.sessions, key)
		}
	}
	u.sessions[id] = &draftSession{editor: editor, touched: now}
	u.mu.Unlock()

	u.logger.Info("[quote][usecase] draft started", zap.String("draft_id", id), zap.Int("order_id", orderID))
	draft := editor.Snapshot()
	draft.ID = id
	return draft, nil
}

func (u *QuoteDraftUseCase) Get(ctx context.Context, draftID string) (QuoteDraft, error) {
	return u.with(draftID, func(*QuoteEditor) error { return nil })
}

func (u *QuoteDraftUseCase) Discard(ctx context.Context, draftID string) error {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return ErrInvalidDraftID
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[draftID]
	if !ok {
		return ErrDraftNotFound
	}
	delete(u.sessions, draftID)
	if u.expired(s, u.now()) {
		return ErrDraftNotFound
	}
	return nil
}

func (u *QuoteDraftUseCase) SelectCustomer(ctx context.Context, draftID string, customerID int) (QuoteDraft, error) {
	return u.with(draftID, func(e *QuoteEditor) error { return e.SelectCustomer(ctx, customerID) })
}

func (u *QuoteDraftUseCase) ClearCustomer(ctx context.Context, draftID string) (QuoteDraft, error) {
	return u.with(draftID, func(e *QuoteEditor) error { return e.ClearCustomer() })
}

func (u *QuoteDraftUseCase) AddItem(ctx context.Context, draftID string, in LineItemInput) (QuoteDraft, error) {
	return u.with(draftID, func(e *QuoteEditor) error {
		_, err := e.AddLineItem(ctx, in)
		return err
	})
}

func (u *QuoteDraftUseCase) RemoveItem(ctx context.Context, draftID string, itemID int) (QuoteDraft, error) {
	return u.with(draftID, func(e *QuoteEditor) error { return e.RemoveLineItem(itemID) })
}

// Update applies quote-level changes. Validation happens before anything is
// changed, so a rejected update leaves the draft as it was.
func (u *QuoteDraftUseCase) Update(ctx context.Context, draftID string, in DraftUpdate) (QuoteDraft, error) {
	return u.with(draftID, func(e *QuoteEditor) error {
		adj := e.Snapshot().Adjustments
		adj.Shipping = mergeTerm(adj.Shipping, in.ShippingCost, in.ClearShipping)
		adj.Installation = mergeTerm(adj.Installation, in.InstallationCost, in.ClearInstallation)
		adj.Discount = mergeTerm(adj.Discount, in.Discount, in.ClearDiscount)

		if in.Date != nil && in.Date.IsZero() {
			return e.SetDate(*in.Date)
		}
		if err := e.SetAdjustments(adj); err != nil {
			return err
		}
		if in.Status != nil {
			if err := e.SetStatus(*in.Status); err != nil {
				return err
			}
		}
		if in.Date != nil {
			if err := e.SetDate(*in.Date); err != nil {
				return err
			}
		}
		if in.Notes != nil {
			return e.SetNotes(*in.Notes)
		}
		return nil
	})
}

// Save persists the draft. The session stays in the Saved state until it is
// discarded or expires.
func (u *QuoteDraftUseCase) Save(ctx context.Context, draftID string) (entities.Order, error) {
	var saved entities.Order
	_, err := u.with(draftID, func(e *QuoteEditor) error {
		o, err := e.Save(ctx)
		saved = o
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}
	return saved, nil
}

func (u *QuoteDraftUseCase) lookup(draftID string) (*draftSession, error) {
	draftID = strings.TrimSpace(draftID)
	if draftID == "" {
		return nil, ErrInvalidDraftID
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[draftID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	if u.expired(s, u.now()) {
		delete(u.sessions, draftID)
		return nil, ErrDraftNotFound
	}
	return s, nil
}

func (u *QuoteDraftUseCase) expired(s *draftSession, now time.Time) bool {
	return now.Sub(s.touchedAt()) > u.ttl
}

func (u *QuoteDraftUseCase) with(draftID string, fn func(*QuoteEditor) error) (QuoteDraft, error) {
	s, err := u.lookup(draftID)
	if err != nil {
		return QuoteDraft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.touched = u.now()
	if err := fn(s.editor); err != nil {
		return QuoteDraft{}, err
	}
	draft := s.editor.Snapshot()
	draft.ID = strings.TrimSpace(draftID)
	return draft, nil
}

func (s *draftSession) touchedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}

func mergeTerm(current, next *decimal.Decimal, drop bool) *decimal.Decimal {
	switch {
	case next != nil:
		return next
	case drop:
		return nil
	default:
		return current
	}
}
