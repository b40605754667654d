package response

import (
	"time"

	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/internal/usecase/commands"
	"bioinsight-quotes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatedVendorRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	VendorEmail string    `json:"vendorEmail"`
	Token       string    `json:"token"`
	Link        string    `json:"link"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func FromCreatedVendorRequests(created []commands.CreatedVendorRequest) []CreatedVendorRequestResponse {
	out := make([]CreatedVendorRequestResponse, 0, len(created))
	for _, c := range created {
		out = append(out, CreatedVendorRequestResponse{
			ID:          c.ID,
			VendorEmail: c.VendorEmail,
			Token:       c.AccessToken,
			Link:        c.Link,
			ExpiresAt:   c.ExpiresAt,
		})
	}
	return out
}

type VendorRequestResponse struct {
	ID              uuid.UUID              `json:"id"`
	QuoteID         uuid.UUID              `json:"quoteId"`
	VendorEmail     string                 `json:"vendorEmail"`
	VendorName      *string                `json:"vendorName,omitempty"`
	Status          string                 `json:"status"`
	EffectiveStatus string                 `json:"effectiveStatus"`
	Link            string                 `json:"link"`
	LineCount       int                    `json:"lineCount"`
	Items           []ResponseItemResponse `json:"items,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	ExpiresAt       time.Time              `json:"expiresAt"`
	RespondedAt     *time.Time             `json:"respondedAt,omitempty"`
}

type ResponseItemResponse struct {
	QuoteItemID  uuid.UUID       `json:"quoteItemId"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	Currency     string          `json:"currency"`
	LeadTimeDays int             `json:"leadTimeDays"`
	MOQ          *int32          `json:"moq,omitempty"`
	Note         *string         `json:"note,omitempty"`
}

// FromVendorRequestView renders the ledger entry for the buyer, including the
// copyable vendor link rebuilt from the stored token.
func FromVendorRequestView(view *queries.VendorRequestView, publicBaseURL string) *VendorRequestResponse {
	items := make([]ResponseItemResponse, 0, len(view.Items))
	for _, it := range view.Items {
		items = append(items, ResponseItemResponse{
			QuoteItemID:  it.QuoteItemID,
			UnitPrice:    it.UnitPrice,
			Currency:     it.Currency,
			LeadTimeDays: it.LeadTimeDays,
			MOQ:          it.MOQ,
			Note:         it.Note,
		})
	}
	return &VendorRequestResponse{
		ID:              view.ID,
		QuoteID:         view.QuoteID,
		VendorEmail:     view.VendorEmail,
		VendorName:      view.VendorName,
		Status:          view.Status,
		EffectiveStatus: view.EffectiveStatus,
		Link:            publicBaseURL + "/vendor/" + view.AccessToken,
		LineCount:       len(view.Snapshot.Lines),
		Items:           items,
		CreatedAt:       view.CreatedAt,
		ExpiresAt:       view.ExpiresAt,
		RespondedAt:     view.RespondedAt,
	}
}

func FromVendorRequestViews(views []*queries.VendorRequestView, publicBaseURL string) []*VendorRequestResponse {
	out := make([]*VendorRequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromVendorRequestView(v, publicBaseURL))
	}
	return out
}

type VendorPortalResponse struct {
	RequestID   uuid.UUID            `json:"requestId"`
	QuoteTitle  string               `json:"quoteTitle"`
	VendorEmail string               `json:"vendorEmail"`
	VendorName  *string              `json:"vendorName,omitempty"`
	ExpiresAt   time.Time            `json:"expiresAt"`
	Lines       []PortalLineResponse `json:"lines"`
}

type PortalLineResponse struct {
	LineID      uuid.UUID `json:"lineId"`
	LineNo      int       `json:"lineNo"`
	ProductName string    `json:"productName"`
	Brand       string    `json:"brand,omitempty"`
	CatalogNo   string    `json:"catalogNo,omitempty"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
}

func FromVendorPortalView(view *queries.VendorPortalView) *VendorPortalResponse {
	lines := make([]PortalLineResponse, 0, len(view.Lines))
	for _, l := range view.Lines {
		lines = append(lines, fromSnapshotLine(l))
	}
	return &VendorPortalResponse{
		RequestID:   view.RequestID,
		QuoteTitle:  view.QuoteTitle,
		VendorEmail: view.VendorEmail,
		VendorName:  view.VendorName,
		ExpiresAt:   view.ExpiresAt,
		Lines:       lines,
	}
}

func fromSnapshotLine(l vendorreq.SnapshotLine) PortalLineResponse {
	return PortalLineResponse{
		LineID:      l.LineID,
		LineNo:      l.LineNo,
		ProductName: l.ProductName,
		Brand:       l.Brand,
		CatalogNo:   l.CatalogNo,
		Quantity:    l.Quantity,
		Unit:        l.Unit,
	}
}

type ComparisonResponse struct {
	QuoteTitle string                     `json:"quoteTitle"`
	Vendors    []ComparisonVendorResponse `json:"vendors"`
	Rows       []ComparisonRowResponse    `json:"rows"`
}

type ComparisonVendorResponse struct {
	RequestID       uuid.UUID `json:"requestId"`
	DisplayName     string    `json:"displayName"`
	VendorEmail     string    `json:"vendorEmail"`
	EffectiveStatus string    `json:"effectiveStatus"`
}

type ComparisonRowResponse struct {
	Line  PortalLineResponse     `json:"line"`
	Cells []ResponseCellResponse `json:"cells"`
}

type ResponseCellResponse struct {
	Kind string                `json:"kind"`
	Item *ResponseItemResponse `json:"item,omitempty"`
}

func FromComparison(cmp *queries.Comparison) *ComparisonResponse {
	vendors := make([]ComparisonVendorResponse, 0, len(cmp.Vendors))
	for _, v := range cmp.Vendors {
		vendors = append(vendors, ComparisonVendorResponse{
			RequestID:       v.RequestID,
			DisplayName:     v.DisplayName,
			VendorEmail:     v.VendorEmail,
			EffectiveStatus: v.EffectiveStatus,
		})
	}

	rows := make([]ComparisonRowResponse, 0, len(cmp.Rows))
	for _, r := range cmp.Rows {
		cells := make([]ResponseCellResponse, 0, len(r.Cells))
		for _, cell := range r.Cells {
			var item *ResponseItemResponse
			if cell.Item != nil {
				item = &ResponseItemResponse{
					QuoteItemID:  cell.Item.QuoteItemID,
					UnitPrice:    cell.Item.UnitPrice,
					Currency:     cell.Item.Currency,
					LeadTimeDays: cell.Item.LeadTimeDays,
					MOQ:          cell.Item.MOQ,
					Note:         cell.Item.Note,
				}
			}
			cells = append(cells, ResponseCellResponse{Kind: cell.Kind, Item: item})
		}
		rows = append(rows, ComparisonRowResponse{Line: fromSnapshotLine(r.Line), Cells: cells})
	}

	return &ComparisonResponse{
		QuoteTitle: cmp.QuoteTitle,
		Vendors:    vendors,
		Rows:       rows,
	}
}
