package queries

import (
	"context"
	"time"

	"bioinsight-quotes/internal/domain/user"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteNotFound = errs.New("quote not found")
	ErrQuoteAccess   = errs.New("quote access denied")
)

// Read models (DTO for read side)
type QuoteView struct {
	ID        uuid.UUID       `json:"id"`
	OwnerID   uuid.UUID       `json:"owner_id"`
	Title     string          `json:"title"`
	Items     []QuoteItemView `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type QuoteItemView struct {
	ID          uuid.UUID       `json:"id"`
	Position    int             `json:"position"`
	ProductName string          `json:"product_name"`
	Brand       string          `json:"brand,omitempty"`
	CatalogNo   string          `json:"catalog_no,omitempty"`
	VendorName  string          `json:"vendor_name,omitempty"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Currency    string          `json:"currency"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Note        string          `json:"note,omitempty"`
}

type QuoteListItem struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuoteReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*QuoteView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*QuoteListItem, error)
}

type QuoteQueries interface {
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*QuoteView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*QuoteListItem, error)
}

type quoteQueriesImpl struct {
	store QuoteReadStore
}

func NewQuoteQueries(store QuoteReadStore) QuoteQueries {
	return &quoteQueriesImpl{store: store}
}

func (q *quoteQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole user.Role) (*QuoteView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrQuoteNotFound
		}
		return nil, err
	}
	if view.OwnerID != actorID && actorRole != user.RoleAdmin {
		return nil, ErrQuoteAccess
	}
	return view, nil
}

func (q *quoteQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*QuoteListItem, error) {
	return q.store.ListByOwner(ctx, ownerID)
}
