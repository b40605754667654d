//go:build unit || e2e

package builder

import (
	"time"

	"bioinsight-quotes/internal/domain/quote"
	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VendorRequestBuilder struct {
	QuoteID       uuid.UUID
	QuoteTitle    string
	VendorEmail   string
	VendorName    string
	AccessToken   string
	Items         []*quote.Item
	Now           time.Time
	ExpiresInDays int
}

func NewVendorRequestBuilder() *VendorRequestBuilder {
	item, err := NewQuoteItemBuilder().BuildDomain()
	if err != nil {
		panic(err)
	}
	return &VendorRequestBuilder{
		QuoteID:       item.QuoteID(),
		QuoteTitle:    "Q3 Immunology Reagents",
		VendorEmail:   "sales@vendor-a.example.com",
		VendorName:    "Vendor A",
		AccessToken:   "test-access-token",
		Items:         []*quote.Item{item},
		Now:           time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		ExpiresInDays: 30,
	}
}

func (b *VendorRequestBuilder) WithVendor(email, name string) *VendorRequestBuilder {
	b.VendorEmail = email
	b.VendorName = name
	return b
}

func (b *VendorRequestBuilder) WithItems(items ...*quote.Item) *VendorRequestBuilder {
	b.Items = items
	return b
}

func (b *VendorRequestBuilder) WithNow(now time.Time) *VendorRequestBuilder {
	b.Now = now
	return b
}

func (b *VendorRequestBuilder) WithExpiresInDays(days int) *VendorRequestBuilder {
	b.ExpiresInDays = days
	return b
}

func (b *VendorRequestBuilder) BuildSnapshot() (vendorreq.Snapshot, error) {
	return vendorreq.BuildSnapshot(b.QuoteTitle, b.Items)
}

func (b *VendorRequestBuilder) BuildDomain() (*vendorreq.VendorRequest, error) {
	snapshot, err := b.BuildSnapshot()
	if err != nil {
		return nil, err
	}
	return vendorreq.NewVendorRequest(b.QuoteID, b.VendorEmail, b.VendorName, snapshot, b.AccessToken, b.Now, b.ExpiresInDays)
}

// BuildView assembles the read model the way the readstore would return it.
func (b *VendorRequestBuilder) BuildView() (*queries.VendorRequestView, error) {
	req, err := b.BuildDomain()
	if err != nil {
		return nil, err
	}
	name := req.VendorName()
	var namePtr *string
	if name != "" {
		namePtr = &name
	}
	return &queries.VendorRequestView{
		ID:              req.ID(),
		QuoteID:         req.QuoteID(),
		VendorEmail:     req.VendorEmail(),
		VendorName:      namePtr,
		AccessToken:     req.AccessToken(),
		Status:          req.Status().String(),
		EffectiveStatus: req.Status().String(),
		Snapshot:        req.Snapshot(),
		CreatedAt:       req.CreatedAt(),
		ExpiresAt:       req.ExpiresAt(),
	}, nil
}

type ResponseItemBuilder struct {
	QuoteItemID  uuid.UUID
	UnitPrice    decimal.Decimal
	Currency     string
	LeadTimeDays int
	MOQ          *int32
	Note         *string
}

func NewResponseItemBuilder(quoteItemID uuid.UUID) *ResponseItemBuilder {
	moq := int32(1)
	return &ResponseItemBuilder{
		QuoteItemID:  quoteItemID,
		UnitPrice:    decimal.NewFromInt(420000),
		Currency:     "KRW",
		LeadTimeDays: 7,
		MOQ:          &moq,
	}
}

func (b *ResponseItemBuilder) WithUnitPrice(price decimal.Decimal) *ResponseItemBuilder {
	b.UnitPrice = price
	return b
}

func (b *ResponseItemBuilder) WithLeadTimeDays(days int) *ResponseItemBuilder {
	b.LeadTimeDays = days
	return b
}

func (b *ResponseItemBuilder) BuildDomain() (vendorreq.ResponseItem, error) {
	return vendorreq.NewResponseItem(b.QuoteItemID, b.UnitPrice, b.Currency, b.LeadTimeDays, b.MOQ, b.Note)
}

func (b *ResponseItemBuilder) BuildView() queries.ResponseItemView {
	return queries.ResponseItemView{
		QuoteItemID:  b.QuoteItemID,
		UnitPrice:    b.UnitPrice,
		Currency:     b.Currency,
		LeadTimeDays: b.LeadTimeDays,
		MOQ:          b.MOQ,
		Note:         b.Note,
	}
}
