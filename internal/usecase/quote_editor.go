package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"marmoraria_tech/internal/domain/apperrors"
	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/domain/pricing"
	"marmoraria_tech/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrQuoteAlreadySaved = errors.New("quote already saved in this session")

// EditorState is where a quote editing session stands.
type EditorState string

const (
	EditorStateEmpty    EditorState = "empty"
	EditorStateHasItems EditorState = "has_items"
	EditorStateSaved    EditorState = "saved"
)

// CustomerSnapshot is the customer data shown while composing a quote.
type CustomerSnapshot struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// LineItemInput is what the operator types for one line of a quote.
type LineItemInput struct {
	MaterialID  int
	Description string
	Length      float64
	Width       float64
	Quantity    int
}

// QuoteDraft is a read-only view of an editing session.
type QuoteDraft struct {
	ID          string
	OrderID     int
	State       EditorState
	CustomerID  *int
	Customer    CustomerSnapshot
	Date        time.Time
	Status      entities.OrderStatus
	Items       []entities.LineItem
	Adjustments pricing.Adjustments
	Notes       string
	Summary     pricing.Summary
}

// QuoteEditor composes one new quote or edits one stored quote.
//
// A QuoteEditor is not safe for concurrent use; QuoteDraftUseCase serializes
// access per session.
type QuoteEditor struct {
	customers interfaces.ICustomerRepository
	materials interfaces.IMaterialRepository
	orders    interfaces.IOrderRepository
	logger    *zap.Logger

	orderID    int
	customerID *int
	customer   CustomerSnapshot
	date       time.Time
	status     entities.OrderStatus
	items      []entities.LineItem
	nextItemID int
	adj        pricing.Adjustments
	notes      string
	saved      bool
}

// NewQuoteEditor starts an empty quote dated now with status Aberto.
func NewQuoteEditor(customers interfaces.ICustomerRepository, materials interfaces.IMaterialRepository, orders interfaces.IOrderRepository, logger *zap.Logger) *QuoteEditor {
	return &QuoteEditor{
		customers:  customers,
		materials:  materials,
		orders:     orders,
		logger:     loggerOrNop(logger),
		date:       time.Now().UTC(),
		status:     entities.OrderStatusAberto,
		nextItemID: 1,
	}
}

// OpenQuoteEditor loads a stored quote for editing. The customer snapshot is
// refreshed from the customer record when the weak reference still resolves.
func OpenQuoteEditor(ctx context.Context, customers interfaces.ICustomerRepository, materials interfaces.IMaterialRepository, orders interfaces.IOrderRepository, logger *zap.Logger, orderID int) (*QuoteEditor, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	o, err := orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.ID == 0 {
		return nil, apperrors.NewNotFound("order", orderID)
	}

	e := NewQuoteEditor(customers, materials, orders, logger)
	e.orderID = o.ID
	e.date = o.Date
	e.status = o.Status
	e.notes = o.Notes
	e.items = append([]entities.LineItem(nil), o.Items...)
	e.adj = pricing.Adjustments{
		Shipping:     copyDecimal(o.ShippingCost),
		Installation: copyDecimal(o.InstallationCost),
		Discount:     copyDecimal(o.Discount),
	}
	for _, it := range e.items {
		if it.ID >= e.nextItemID {
			e.nextItemID = it.ID + 1
		}
	}

	e.customer = CustomerSnapshot{Name: o.Customer}
	if o.CustomerID != nil {
		id := *o.CustomerID
		e.customerID = &id
		c, err := customers.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if c.ID != 0 {
			e.customer = snapshotOf(c)
		}
	}
	return e, nil
}

// State reports Empty, HasItems or Saved.
func (e *QuoteEditor) State() EditorState {
	switch {
	case e.saved:
		return EditorStateSaved
	case len(e.items) == 0:
		return EditorStateEmpty
	default:
		return EditorStateHasItems
	}
}

// SelectCustomer resolves the customer and snapshots its display fields.
func (e *QuoteEditor) SelectCustomer(ctx context.Context, customerID int) error {
	if e.saved {
		return ErrQuoteAlreadySaved
	}
	if customerID <= 0 {
		return apperrors.NewValidation("customer_id", "required")
	}
	c, err := e.customers.GetByID(ctx, customerID)
	if err != nil {
		return err
	}
	if c.ID == 0 {
		return apperrors.NewNotFound("customer", customerID)
	}
	id := c.ID
	e.customerID = &id
	e.customer = snapshotOf(c)
	return nil
}

// ClearCustomer drops the selection and its snapshot.
func (e *QuoteEditor) ClearCustomer() error {
	if e.saved {
		return ErrQuoteAlreadySaved
	}
	e.customerID = nil
	e.customer = CustomerSnapshot{}
	return nil
}

// AddLineItem prices a new line with the material's current unit price and
// appends it. On any error the editor is left unchanged.
func (e *QuoteEditor) AddLineItem(ctx context.Context, in LineItemInput) (entities.LineItem, error) {
	if e.saved {
		return entities.LineItem{}, ErrQuoteAlreadySaved
	}
	if err := validateLineItem(in); err != nil {
		return entities.LineItem{}, err
	}

	m, err := e.materials.GetByID(ctx, in.MaterialID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if m.ID == 0 {
		return entities.LineItem{}, apperrors.NewNotFound("material", in.MaterialID)
	}

	item := entities.LineItem{
		ID:           e.nextItemID,
		MaterialID:   m.ID,
		MaterialName: m.Name,
		Description:  strings.TrimSpace(in.Description),
		Length:       in.Length,
		Width:        in.Width,
		Quantity:     in.Quantity,
		Subtotal:     pricing.LineSubtotal(m.Price, pricing.FromFloat(in.Length), pricing.FromFloat(in.Width), in.Quantity),
	}
	e.nextItemID++
	e.items = append(e.items, item)
	return item, nil
}

// RemoveLineItem drops the item with itemID. Unknown ids are ignored.
func (e *QuoteEditor) RemoveLineItem(itemID int) error {
	if e.saved {
		return ErrQuoteAlreadySaved
	}
	for i, it := range e.items {
		if it.ID == itemID {
			e.items = append(e.items[:i:i], e.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// SetStatus sets the label stored on save. An empty label is accepted here
// and rejected by Save.
func (e *QuoteEditor) SetStatus(status entities.OrderStatus) error {
	if e.saved {
		return ErrQuoteAlreadySaved
	}
	e.status = entities.OrderStatus(strings.TrimSpace(string(status)))
	return nil
}

// SetAdjustments replaces shipping, installation and discount. Nil clears a
// term.
func (e *QuoteEditor) SetAdjustments(adj pricing.Adjustments) error {
	if e.saved {
		return ErrQuoteAlreadySaved
	}
	for _, term := range []struct {
		field string
		value *decimal.Decimal
	}{
		{"shipping_cost", adj.Shipping},
		{"installation_cost", adj.Installation},
		{"discount", adj.Discount},
	} {
		if term.value != nil && term.value.IsNegative() {
			return apperrors.NewValidation(term.field, "must not be negative")
		}
	}
	e.adj = pricing.Adjustments{
		Shipping:     copyDecimal(adj.Shipping),
		Installation: copyDecimal(adj.Installation),
		Discount:     copyDecimal(adj.Discount),
	}
	return nil
}

func (e *QuoteEditor) SetNotes(notes string) error {
	if e.saved {
		return ErrQuoteAlreadySaved
	}
	e.notes = strings.TrimSpace(notes)
	return nil
}

func (e *QuoteEditor) SetDate(date time.Time) error {
	if e.saved {
		return ErrQuoteAlreadySaved
	}
	if date.IsZero() {
		return apperrors.NewValidation("date", "required")
	}
	e.date = date
	return nil
}

// Save persists the quote: add for a new quote, update for an opened one.
// The total is recomputed from the line subtotals and adjustments; a negative
// total is rejected.
func (e *QuoteEditor) Save(ctx context.Context) (entities.Order, error) {
	if e.saved {
		return entities.Order{}, ErrQuoteAlreadySaved
	}
	if e.customerID == nil {
		return entities.Order{}, apperrors.NewValidation("customer_id", "required")
	}
	if e.status == "" {
		return entities.Order{}, apperrors.NewValidation("status", "required")
	}

	summary := e.summary()
	if summary.Total.IsNegative() {
		return entities.Order{}, apperrors.NewValidation("discount", "exceeds the quote value")
	}

	name := e.customer.Name
	c, err := e.customers.GetByID(ctx, *e.customerID)
	if err != nil {
		return entities.Order{}, err
	}
	if c.ID != 0 {
		name = c.Name
	}

	customerID := *e.customerID
	items := append([]entities.LineItem{}, e.items...)
	order := entities.Order{
		ID:               e.orderID,
		Customer:         name,
		CustomerID:       &customerID,
		Date:             e.date,
		Status:           e.status,
		Total:            summary.Total,
		Items:            items,
		ShippingCost:     copyDecimal(e.adj.Shipping),
		InstallationCost: copyDecimal(e.adj.Installation),
		Discount:         copyDecimal(e.adj.Discount),
		Notes:            e.notes,
	}

	var stored entities.Order
	if e.orderID == 0 {
		stored, err = e.orders.Create(ctx, order)
	} else {
		stored, err = e.orders.Update(ctx, e.orderID, entities.OrderPatch{
			Customer:         &order.Customer,
			CustomerID:       order.CustomerID,
			Date:             &order.Date,
			Status:           &order.Status,
			Total:            &order.Total,
			Items:            items,
			ShippingCost:     order.ShippingCost,
			InstallationCost: order.InstallationCost,
			Discount:         order.Discount,
			ClearAdjustments: true,
			Notes:            &order.Notes,
		})
		if err == nil && stored.ID == 0 {
			err = apperrors.NewNotFound("order", e.orderID)
		}
	}
	if err != nil {
		e.logger.Error("[quote][usecase] save failed", zap.Int("order_id", e.orderID), zap.Error(err))
		return entities.Order{}, err
	}

	e.orderID = stored.ID
	e.saved = true
	e.logger.Info("[quote][usecase] saved",
		zap.Int("order_id", stored.ID),
		zap.Int("items", len(stored.Items)),
		zap.String("total", stored.Total.StringFixed(2)),
	)
	return stored, nil
}

// Snapshot returns a copy of the session state.
func (e *QuoteEditor) Snapshot() QuoteDraft {
	var customerID *int
	if e.customerID != nil {
		id := *e.customerID
		customerID = &id
	}
	return QuoteDraft{
		OrderID:    e.orderID,
		State:      e.State(),
		CustomerID: customerID,
		Customer:   e.customer,
		Date:       e.date,
		Status:     e.status,
		Items:      append([]entities.LineItem{}, e.items...),
		Adjustments: pricing.Adjustments{
			Shipping:     copyDecimal(e.adj.Shipping),
			Installation: copyDecimal(e.adj.Installation),
			Discount:     copyDecimal(e.adj.Discount),
		},
		Notes:   e.notes,
		Summary: e.summary(),
	}
}

func (e *QuoteEditor) summary() pricing.Summary {
	subtotals := make([]decimal.Decimal, 0, len(e.items))
	for _, it := range e.items {
		subtotals = append(subtotals, it.Subtotal)
	}
	return pricing.Summarize(subtotals, e.adj)
}

func validateLineItem(in LineItemInput) error {
	switch {
	case in.MaterialID <= 0:
		return apperrors.NewValidation("material_id", "required")
	case strings.TrimSpace(in.Description) == "":
		return apperrors.NewValidation("description", "required")
	case !positiveFinite(in.Length):
		return apperrors.NewValidation("length", "must be greater than zero")
	case in.Length > pricing.MaxDimension:
		return apperrors.NewValidation("length", "too large")
	case !positiveFinite(in.Width):
		return apperrors.NewValidation("width", "must be greater than zero")
	case in.Width > pricing.MaxDimension:
		return apperrors.NewValidation("width", "too large")
	case in.Quantity <= 0:
		return apperrors.NewValidation("quantity", "must be greater than zero")
	}
	return nil
}

func positiveFinite(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}

func snapshotOf(c entities.Customer) CustomerSnapshot {
	return CustomerSnapshot{Name: c.Name, Phone: c.Phone, Email: c.Email, Address: c.Address}
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
