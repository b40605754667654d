package queries

import (
	"sort"

	"bioinsight-quotes/internal/domain/vendorreq"

	"github.com/google/uuid"
)

// Cell kinds in the comparison grid.
const (
	CellQuoted     = "quoted"
	CellPending    = "pending"
	CellNoResponse = "no_response"
)

// Comparison is the reconciliation grid: one row per snapshot line of the
// earliest request, one column group per vendor request.
type Comparison struct {
	QuoteTitle string             `json:"quote_title"`
	Vendors    []ComparisonVendor `json:"vendors"`
	Rows       []ComparisonRow    `json:"rows"`
}

type ComparisonVendor struct {
	RequestID       uuid.UUID `json:"request_id"`
	DisplayName     string    `json:"display_name"`
	VendorEmail     string    `json:"vendor_email"`
	EffectiveStatus string    `json:"effective_status"`
}

type ComparisonRow struct {
	Line  vendorreq.SnapshotLine `json:"line"`
	Cells []ResponseCell         `json:"cells"`
}

// ResponseCell carries the vendor's offer for one line, or explains why
// there is none.
type ResponseCell struct {
	Kind string            `json:"kind"`
	Item *ResponseItemView `json:"item,omitempty"`
}

// BuildComparison joins each request's response items back to the snapshot
// lines they quote against. The earliest request's snapshot supplies the
// rows; requests sent after the quote was edited may carry extra or missing
// lines, and only the shared ones line up.
func BuildComparison(requests []*VendorRequestView) *Comparison {
	if len(requests) == 0 {
		return &Comparison{Vendors: []ComparisonVendor{}, Rows: []ComparisonRow{}}
	}

	ordered := make([]*VendorRequestView, len(requests))
	copy(ordered, requests)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	basis := ordered[0].Snapshot
	cmp := &Comparison{
		QuoteTitle: basis.QuoteTitle,
		Vendors:    make([]ComparisonVendor, 0, len(ordered)),
		Rows:       make([]ComparisonRow, 0, len(basis.Lines)),
	}

	type vendorIndex struct {
		view  *VendorRequestView
		items map[uuid.UUID]*ResponseItemView
	}
	indexed := make([]vendorIndex, 0, len(ordered))
	for _, req := range ordered {
		cmp.Vendors = append(cmp.Vendors, ComparisonVendor{
			RequestID:       req.ID,
			DisplayName:     req.DisplayName(),
			VendorEmail:     req.VendorEmail,
			EffectiveStatus: req.EffectiveStatus,
		})
		items := make(map[uuid.UUID]*ResponseItemView, len(req.Items))
		for i := range req.Items {
			items[req.Items[i].QuoteItemID] = &req.Items[i]
		}
		indexed = append(indexed, vendorIndex{view: req, items: items})
	}

	for _, line := range basis.Lines {
		row := ComparisonRow{Line: line, Cells: make([]ResponseCell, 0, len(indexed))}
		for _, vi := range indexed {
			row.Cells = append(row.Cells, buildCell(vi.view, vi.items, line.LineID))
		}
		cmp.Rows = append(cmp.Rows, row)
	}
	return cmp
}

func buildCell(req *VendorRequestView, items map[uuid.UUID]*ResponseItemView, lineID uuid.UUID) ResponseCell {
	if item, ok := items[lineID]; ok {
		return ResponseCell{Kind: CellQuoted, Item: item}
	}
	if req.EffectiveStatus == vendorreq.StatusSent.String() {
		return ResponseCell{Kind: CellPending}
	}
	return ResponseCell{Kind: CellNoResponse}
}
