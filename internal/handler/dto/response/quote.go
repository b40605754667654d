package response

import (
	"time"

	"bioinsight-quotes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	ID        uuid.UUID           `json:"id"`
	OwnerID   uuid.UUID           `json:"ownerId"`
	Title     string              `json:"title"`
	Items     []QuoteItemResponse `json:"items"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

type QuoteItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Position    int             `json:"position"`
	ProductName string          `json:"productName"`
	Brand       string          `json:"brand,omitempty"`
	CatalogNo   string          `json:"catalogNo,omitempty"`
	VendorName  string          `json:"vendorName,omitempty"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Currency    string          `json:"currency"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
	Note        string          `json:"note,omitempty"`
}

type QuoteListResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	ItemCount int       `json:"itemCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromQuoteView(view *queries.QuoteView) (*QuoteResponse, error) {
	var resp QuoteResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromQuoteListItems(items []*queries.QuoteListItem) []QuoteListResponse {
	out := make([]QuoteListResponse, 0, len(items))
	for _, item := range items {
		out = append(out, QuoteListResponse{
			ID:        item.ID,
			Title:     item.Title,
			ItemCount: item.ItemCount,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return out
}
