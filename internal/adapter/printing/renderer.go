// Package printing renders stored quotes as standalone printable HTML.
package printing

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"marmoraria_tech/internal/domain/entities"
	"marmoraria_tech/internal/domain/pricing"
	"marmoraria_tech/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

//go:embed templates/quote.html.tmpl
var templateFS embed.FS

const (
	missingField    = "-"
	missingMaterial = "Material"
)

// Letterhead is the company block printed on every quote.
type Letterhead struct {
	CompanyName  string `yaml:"company_name"`
	Address      string `yaml:"address"`
	Phone        string `yaml:"phone"`
	Email        string `yaml:"email"`
	LegalName    string `yaml:"legal_name"`
	CNPJ         string `yaml:"cnpj"`
	ValidityDays int    `yaml:"validity_days"`
}

func DefaultLetterhead() Letterhead {
	return Letterhead{
		CompanyName:  "MARMORARIA TECH",
		Address:      "Rua Exemplo, 123 - Bairro - Cidade/UF",
		Phone:        "(11) 1234-5678",
		Email:        "contato@marmorariatech.com",
		LegalName:    "Marmoraria Tech",
		CNPJ:         "00.000.000/0001-00",
		ValidityDays: 15,
	}
}

// QuoteRenderer formats money and measures in pt-BR.
type QuoteRenderer struct {
	letterhead Letterhead
	tmpl       *template.Template
	printer    *message.Printer
}

var _ interfaces.IQuoteRenderer = (*QuoteRenderer)(nil)

func NewQuoteRenderer(letterhead Letterhead) (*QuoteRenderer, error) {
	if letterhead.ValidityDays <= 0 {
		letterhead.ValidityDays = DefaultLetterhead().ValidityDays
	}
	r := &QuoteRenderer{
		letterhead: letterhead,
		printer:    message.NewPrinter(language.BrazilianPortuguese),
	}
	tmpl, err := template.New("quote.html.tmpl").Funcs(template.FuncMap{
		"money":   r.money,
		"measure": r.measure,
		"date":    formatDate,
	}).ParseFS(templateFS, "templates/quote.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse quote template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

type customerView struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

type lineView struct {
	Position    int
	Description string
	Material    string
	Length      float64
	Width       float64
	Quantity    int
	Subtotal    decimal.Decimal
}

type quoteView struct {
	Letterhead    Letterhead
	Order         entities.Order
	Customer      customerView
	Lines         []lineView
	ItemsSubtotal decimal.Decimal
}

// Render re-displays stored values only: line subtotals and the order total
// are printed as stored, never recomputed.
func (r *QuoteRenderer) Render(order entities.Order, customer *entities.Customer, materials map[int]entities.Material) ([]byte, error) {
	view := quoteView{
		Letterhead: r.letterhead,
		Order:      order,
		Customer:   resolveCustomer(order, customer),
		Lines:      make([]lineView, 0, len(order.Items)),
	}

	subtotals := make([]decimal.Decimal, 0, len(order.Items))
	for i, it := range order.Items {
		view.Lines = append(view.Lines, lineView{
			Position:    i + 1,
			Description: it.Description,
			Material:    resolveMaterialName(it, materials),
			Length:      it.Length,
			Width:       it.Width,
			Quantity:    it.Quantity,
			Subtotal:    it.Subtotal,
		})
		subtotals = append(subtotals, it.Subtotal)
	}
	view.ItemsSubtotal = pricing.Sum(subtotals)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render quote %d: %w", order.ID, err)
	}
	return buf.Bytes(), nil
}

func resolveCustomer(order entities.Order, c *entities.Customer) customerView {
	if c == nil {
		return customerView{
			Name:    orMissing(order.Customer),
			Phone:   missingField,
			Email:   missingField,
			Address: missingField,
		}
	}
	name := c.Name
	if strings.TrimSpace(name) == "" {
		name = order.Customer
	}
	return customerView{
		Name:    orMissing(name),
		Phone:   orMissing(c.Phone),
		Email:   orMissing(c.Email),
		Address: orMissing(c.Address),
	}
}

// resolveMaterialName prefers the current record, then the snapshot taken
// when the line was added.
func resolveMaterialName(it entities.LineItem, materials map[int]entities.Material) string {
	if m, ok := materials[it.MaterialID]; ok && strings.TrimSpace(m.Name) != "" {
		return m.Name
	}
	if strings.TrimSpace(it.MaterialName) != "" {
		return it.MaterialName
	}
	return missingMaterial
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return missingField
	}
	return s
}

// money formats "R$ 1.080,00". It accepts decimal values and pointers so the
// template can pass optional adjustments directly.
func (r *QuoteRenderer) money(v any) string {
	var d decimal.Decimal
	switch x := v.(type) {
	case decimal.Decimal:
		d = x
	case *decimal.Decimal:
		if x != nil {
			d = *x
		}
	}
	return "R$ " + groupBRL(d.StringFixed(2))
}

// groupBRL rewrites a fixed-point "-1234.50" as "-1.234,50" digit by digit,
// so amounts beyond float64 precision print exactly.
func groupBRL(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

func (r *QuoteRenderer) measure(f float64) string {
	return r.printer.Sprint(number.Decimal(f, number.MaxFractionDigits(3)))
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return missingField
	}
	return t.Format("02/01/2006")
}
