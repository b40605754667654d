package vendorreq

import (
	"errors"

	"bioinsight-quotes/internal/domain/quote"

	"github.com/google/uuid"
)

var ErrEmptyQuote = errors.New("quote has no items to snapshot")

// SnapshotLine is one frozen line of a quote at send time. LineID equals the
// identifier of the quote item it was copied from; that shared identifier is
// the only link between the live item and the frozen line, and it is what
// vendor response items reference.
type SnapshotLine struct {
	LineID      uuid.UUID `json:"lineId"`
	LineNo      int       `json:"lineNo"`
	ProductName string    `json:"productName"`
	Brand       string    `json:"brand,omitempty"`
	CatalogNo   string    `json:"catalogNo,omitempty"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
}

// Snapshot is the immutable point-in-time copy of a quote's items embedded in
// each vendor request. It is serialized as a whole into the request row, so
// every request owns an independent copy.
type Snapshot struct {
	QuoteTitle string         `json:"quoteTitle"`
	Lines      []SnapshotLine `json:"lines"`
}

// BuildSnapshot freezes the current items in their insertion order, numbering
// lines from 1.
func BuildSnapshot(quoteTitle string, items []*quote.Item) (Snapshot, error) {
	if len(items) == 0 {
		return Snapshot{}, ErrEmptyQuote
	}

	lines := make([]SnapshotLine, len(items))
	for i, item := range items {
		lines[i] = SnapshotLine{
			LineID:      item.ID(),
			LineNo:      i + 1,
			ProductName: item.ProductName(),
			Brand:       item.Brand(),
			CatalogNo:   item.CatalogNo(),
			Quantity:    item.Quantity(),
			Unit:        item.Unit(),
		}
	}

	return Snapshot{
		QuoteTitle: quoteTitle,
		Lines:      lines,
	}, nil
}

// Copy returns an independent deep copy, so that one vendor request's
// snapshot can never alias another's.
func (s Snapshot) Copy() Snapshot {
	lines := make([]SnapshotLine, len(s.Lines))
	copy(lines, s.Lines)
	return Snapshot{
		QuoteTitle: s.QuoteTitle,
		Lines:      lines,
	}
}

// HasLine reports whether the snapshot contains the given line identifier.
func (s Snapshot) HasLine(lineID uuid.UUID) bool {
	for _, l := range s.Lines {
		if l.LineID == lineID {
			return true
		}
	}
	return false
}

// Line returns the snapshot line with the given identifier.
func (s Snapshot) Line(lineID uuid.UUID) (SnapshotLine, bool) {
	for _, l := range s.Lines {
		if l.LineID == lineID {
			return l, true
		}
	}
	return SnapshotLine{}, false
}
