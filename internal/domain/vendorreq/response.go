package vendorreq

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyResponse       = errors.New("response must contain at least one item")
	ErrUnknownLine         = errors.New("response references a line not present in the snapshot")
	ErrDuplicateLine       = errors.New("response contains more than one item for the same line")
	ErrNegativeOfferPrice  = errors.New("offered unit price cannot be negative")
	ErrInvalidOfferCode    = errors.New("offer currency must be a 3-letter code")
	ErrInvalidLeadTime     = errors.New("lead time days cannot be negative")
	ErrInvalidMinimumOrder = errors.New("minimum order quantity must be positive")
)

// ResponseItem is a vendor's quoted terms for a single snapshot line.
type ResponseItem struct {
	quoteItemID  uuid.UUID
	unitPrice    decimal.Decimal
	currency     string
	leadTimeDays int
	moq          *int32
	note         *string
}

func NewResponseItem(
	quoteItemID uuid.UUID,
	unitPrice decimal.Decimal,
	currency string,
	leadTimeDays int,
	moq *int32,
	note *string,
) (ResponseItem, error) {
	if unitPrice.IsNegative() {
		return ResponseItem{}, ErrNegativeOfferPrice
	}
	if len(currency) != 3 {
		return ResponseItem{}, ErrInvalidOfferCode
	}
	if leadTimeDays < 0 {
		return ResponseItem{}, ErrInvalidLeadTime
	}
	if moq != nil && *moq <= 0 {
		return ResponseItem{}, ErrInvalidMinimumOrder
	}
	return ResponseItem{
		quoteItemID:  quoteItemID,
		unitPrice:    unitPrice,
		currency:     strings.ToUpper(currency),
		leadTimeDays: leadTimeDays,
		moq:          moq,
		note:         note,
	}, nil
}

func (r ResponseItem) QuoteItemID() uuid.UUID     { return r.quoteItemID }
func (r ResponseItem) UnitPrice() decimal.Decimal { return r.unitPrice }
func (r ResponseItem) Currency() string           { return r.currency }
func (r ResponseItem) LeadTimeDays() int          { return r.leadTimeDays }
func (r ResponseItem) MOQ() *int32                { return r.moq }
func (r ResponseItem) Note() *string              { return r.note }

// validateResponseItems checks referential integrity of a full submission
// against the snapshot: every item must reference a snapshot line, and no
// line may be quoted twice. A submission either passes as a whole or fails as
// a whole; partial persistence is never allowed.
func validateResponseItems(snapshot Snapshot, items []ResponseItem) error {
	if len(items) == 0 {
		return ErrEmptyResponse
	}
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		if !snapshot.HasLine(item.quoteItemID) {
			return ErrUnknownLine
		}
		if _, dup := seen[item.quoteItemID]; dup {
			return ErrDuplicateLine
		}
		seen[item.quoteItemID] = struct{}{}
	}
	return nil
}
