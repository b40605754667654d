//go:build unit || e2e

package builder

import (
	"time"

	"bioinsight-quotes/internal/domain/quote"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteItemBuilder struct {
	QuoteID     uuid.UUID
	Position    int
	ProductName string
	Brand       string
	CatalogNo   string
	VendorName  string
	Unit        string
	Quantity    int
	UnitPrice   decimal.Decimal
	Currency    string
	Note        string
}

func NewQuoteItemBuilder() *QuoteItemBuilder {
	return &QuoteItemBuilder{
		QuoteID:     uuid.New(),
		Position:    1,
		ProductName: "Human IL-6 ELISA Kit",
		Brand:       "R&D Systems",
		CatalogNo:   "D6050",
		VendorName:  "Koryo Science",
		Unit:        "kit",
		Quantity:    2,
		UnitPrice:   decimal.NewFromInt(450000),
		Currency:    "KRW",
	}
}

func (b *QuoteItemBuilder) WithQuoteID(id uuid.UUID) *QuoteItemBuilder {
	b.QuoteID = id
	return b
}

func (b *QuoteItemBuilder) WithPosition(pos int) *QuoteItemBuilder {
	b.Position = pos
	return b
}

func (b *QuoteItemBuilder) WithProductName(name string) *QuoteItemBuilder {
	b.ProductName = name
	return b
}

func (b *QuoteItemBuilder) WithQuantity(qty int) *QuoteItemBuilder {
	b.Quantity = qty
	return b
}

func (b *QuoteItemBuilder) WithUnitPrice(price decimal.Decimal) *QuoteItemBuilder {
	b.UnitPrice = price
	return b
}

func (b *QuoteItemBuilder) WithCurrency(currency string) *QuoteItemBuilder {
	b.Currency = currency
	return b
}

func (b *QuoteItemBuilder) BuildDomain() (*quote.Item, error) {
	return quote.NewItem(b.QuoteID, b.Position, quote.ItemSpec{
		ProductName: b.ProductName,
		Brand:       b.Brand,
		CatalogNo:   b.CatalogNo,
		VendorName:  b.VendorName,
		Unit:        b.Unit,
		Quantity:    b.Quantity,
		UnitPrice:   b.UnitPrice,
		Currency:    b.Currency,
		Note:        b.Note,
	})
}

type QuoteBuilder struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Title   string
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Title:   "Q3 Immunology Reagents",
	}
}

func (b *QuoteBuilder) WithTitle(title string) *QuoteBuilder {
	b.Title = title
	return b
}

func (b *QuoteBuilder) BuildDomain() (*quote.Quote, error) {
	return quote.NewQuote(b.OwnerID, b.Title)
}

func (b *QuoteBuilder) BuildReconstructed() *quote.Quote {
	now := time.Now()
	return quote.ReconstructQuote(b.ID, b.OwnerID, b.Title, now, now)
}
