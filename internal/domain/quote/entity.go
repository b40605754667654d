package quote

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTitle       = errors.New("quote title must not be empty")
	ErrEmptyProductName = errors.New("product name must not be empty")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrNegativePrice    = errors.New("unit price cannot be negative")
	ErrInvalidCurrency  = errors.New("currency must be a 3-letter code")
)

// Quote is a buyer's working list of candidate purchase lines. Items stay
// freely editable until a snapshot is taken from them; the snapshot, not the
// quote, is what vendors see.
type Quote struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	title     string
	createdAt time.Time
	updatedAt time.Time
}

func NewQuote(ownerID uuid.UUID, title string) (*Quote, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &Quote{
		id:      uuid.New(),
		ownerID: ownerID,
		title:   title,
	}, nil
}

func ReconstructQuote(id, ownerID uuid.UUID, title string, createdAt, updatedAt time.Time) *Quote {
	return &Quote{
		id:        id,
		ownerID:   ownerID,
		title:     title,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (q *Quote) ID() uuid.UUID        { return q.id }
func (q *Quote) OwnerID() uuid.UUID   { return q.ownerID }
func (q *Quote) Title() string        { return q.title }
func (q *Quote) CreatedAt() time.Time { return q.createdAt }
func (q *Quote) UpdatedAt() time.Time { return q.updatedAt }

func (q *Quote) IsOwnedBy(userID uuid.UUID) bool {
	return q.ownerID == userID
}

// Item is a single candidate purchase line.
type Item struct {
	id          uuid.UUID
	quoteID     uuid.UUID
	position    int
	productName string
	brand       string
	catalogNo   string
	vendorName  string
	unit        string
	quantity    int
	unitPrice   decimal.Decimal
	currency    string
	note        string
	createdAt   time.Time
	updatedAt   time.Time
}

type ItemSpec struct {
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

func NewItem(quoteID uuid.UUID, position int, spec ItemSpec) (*Item, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	unit := spec.Unit
	if unit == "" {
		unit = "ea"
	}
	return &Item{
		id:          uuid.New(),
		quoteID:     quoteID,
		position:    position,
		productName: strings.TrimSpace(spec.ProductName),
		brand:       strings.TrimSpace(spec.Brand),
		catalogNo:   strings.TrimSpace(spec.CatalogNo),
		vendorName:  strings.TrimSpace(spec.VendorName),
		unit:        unit,
		quantity:    spec.Quantity,
		unitPrice:   spec.UnitPrice,
		currency:    strings.ToUpper(spec.Currency),
		note:        spec.Note,
	}, nil
}

func (s ItemSpec) validate() error {
	if strings.TrimSpace(s.ProductName) == "" {
		return ErrEmptyProductName
	}
	if s.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if s.UnitPrice.IsNegative() {
		return ErrNegativePrice
	}
	if len(s.Currency) != 3 {
		return ErrInvalidCurrency
	}
	return nil
}

func ReconstructItem(
	id, quoteID uuid.UUID,
	position int,
	productName, brand, catalogNo, vendorName, unit string,
	quantity int,
	unitPrice decimal.Decimal,
	currency, note string,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		quoteID:     quoteID,
		position:    position,
		productName: productName,
		brand:       brand,
		catalogNo:   catalogNo,
		vendorName:  vendorName,
		unit:        unit,
		quantity:    quantity,
		unitPrice:   unitPrice,
		currency:    currency,
		note:        note,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) ID() uuid.UUID              { return i.id }
func (i *Item) QuoteID() uuid.UUID         { return i.quoteID }
func (i *Item) Position() int              { return i.position }
func (i *Item) ProductName() string        { return i.productName }
func (i *Item) Brand() string              { return i.brand }
func (i *Item) CatalogNo() string          { return i.catalogNo }
func (i *Item) VendorName() string         { return i.vendorName }
func (i *Item) Unit() string               { return i.unit }
func (i *Item) Quantity() int              { return i.quantity }
func (i *Item) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i *Item) Currency() string           { return i.currency }
func (i *Item) Note() string               { return i.note }
func (i *Item) CreatedAt() time.Time       { return i.createdAt }
func (i *Item) UpdatedAt() time.Time       { return i.updatedAt }

// LineTotal is always derived, never stored.
func (i *Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// ItemPatch carries partial edits to a draft line. Nil fields are untouched.
type ItemPatch struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
	Note      *string
}

func (i *Item) Apply(patch ItemPatch) error {
	if patch.Quantity != nil {
		if *patch.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		i.quantity = *patch.Quantity
	}
	if patch.UnitPrice != nil {
		if patch.UnitPrice.IsNegative() {
			return ErrNegativePrice
		}
		i.unitPrice = *patch.UnitPrice
	}
	if patch.Note != nil {
		i.note = *patch.Note
	}
	return nil
}
