package queries

import (
	"context"
	"strings"
	"time"

	"bioinsight-quotes/internal/domain/user"
	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/pkg/clock"
	"bioinsight-quotes/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrVendorRequestNotFound = errs.New("vendor request not found")

// VendorRequestView is the ledger read model: the stored row plus the
// effective status derived at read time.
type VendorRequestView struct {
	ID              uuid.UUID          `json:"id"`
	QuoteID         uuid.UUID          `json:"quote_id"`
	VendorEmail     string             `json:"vendor_email"`
	VendorName      *string            `json:"vendor_name,omitempty"`
	AccessToken     string             `json:"access_token"`
	Status          string             `json:"status"`
	EffectiveStatus string             `json:"effective_status"`
	Snapshot        vendorreq.Snapshot `json:"snapshot"`
	Items           []ResponseItemView `json:"items,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	ExpiresAt       time.Time          `json:"expires_at"`
	RespondedAt     *time.Time         `json:"responded_at,omitempty"`
}

type ResponseItemView struct {
	QuoteItemID  uuid.UUID       `json:"quote_item_id"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Currency     string          `json:"currency"`
	LeadTimeDays int             `json:"lead_time_days"`
	MOQ          *int32          `json:"moq,omitempty"`
	Note         *string         `json:"note,omitempty"`
}

// DisplayName falls back to the vendor email; it is also the export column
// header for this vendor.
func (v *VendorRequestView) DisplayName() string {
	if v.VendorName != nil && *v.VendorName != "" {
		return *v.VendorName
	}
	return v.VendorEmail
}

// VendorPortalView is what a vendor sees when opening their link: the frozen
// snapshot only, never the live quote.
type VendorPortalView struct {
	RequestID   uuid.UUID                `json:"request_id"`
	QuoteTitle  string                   `json:"quote_title"`
	VendorEmail string                   `json:"vendor_email"`
	VendorName  *string                  `json:"vendor_name,omitempty"`
	ExpiresAt   time.Time                `json:"expires_at"`
	Lines       []vendorreq.SnapshotLine `json:"lines"`
}

// ListFilter narrows the ledger list; Status matches the EFFECTIVE status and
// Vendor is a case-insensitive substring match on email or display name.
type ListFilter struct {
	Status *vendorreq.Status
	Vendor string
}

type VendorRequestReadStore interface {
	// ListByQuote returns requests ordered by creation time ascending, each
	// with its snapshot and any response items.
	ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]*VendorRequestView, error)
	FindByToken(ctx context.Context, token string) (*VendorRequestView, error)
}

type VendorRequestQueries interface {
	ListByQuote(ctx context.Context, quoteID uuid.UUID, actorID uuid.UUID, actorRole user.Role, filter ListFilter) ([]*VendorRequestView, error)
	// GetVendorPortal serves token-authenticated vendor access; it fails with
	// the domain's state errors when the link is no longer open.
	GetVendorPortal(ctx context.Context, token string) (*VendorPortalView, error)
	GetComparison(ctx context.Context, quoteID uuid.UUID, actorID uuid.UUID, actorRole user.Role, filter ListFilter) (*Comparison, error)
}

type vendorRequestQueriesImpl struct {
	store      VendorRequestReadStore
	quoteStore QuoteReadStore
	clock      clock.Clock
}

func NewVendorRequestQueries(store VendorRequestReadStore, quoteStore QuoteReadStore, clk clock.Clock) VendorRequestQueries {
	return &vendorRequestQueriesImpl{store: store, quoteStore: quoteStore, clock: clk}
}

func (q *vendorRequestQueriesImpl) ListByQuote(
	ctx context.Context,
	quoteID uuid.UUID,
	actorID uuid.UUID,
	actorRole user.Role,
	filter ListFilter,
) ([]*VendorRequestView, error) {
	if err := q.checkQuoteAccess(ctx, quoteID, actorID, actorRole); err != nil {
		return nil, err
	}

	views, err := q.store.ListByQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	for _, v := range views {
		applyEffectiveStatus(v, now)
	}
	return filterRequests(views, filter), nil
}

func (q *vendorRequestQueriesImpl) GetVendorPortal(ctx context.Context, token string) (*VendorPortalView, error) {
	view, err := q.store.FindByToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVendorRequestNotFound
		}
		return nil, err
	}

	now := q.clock.Now()
	switch vendorreq.DeriveEffectiveStatus(vendorreq.Status(view.Status), view.ExpiresAt, now) {
	case vendorreq.StatusSent:
	case vendorreq.StatusResponded:
		return nil, vendorreq.ErrAlreadyResponded
	case vendorreq.StatusExpired:
		return nil, vendorreq.ErrRequestExpired
	case vendorreq.StatusCancelled:
		return nil, vendorreq.ErrRequestCancelled
	}

	return &VendorPortalView{
		RequestID:   view.ID,
		QuoteTitle:  view.Snapshot.QuoteTitle,
		VendorEmail: view.VendorEmail,
		VendorName:  view.VendorName,
		ExpiresAt:   view.ExpiresAt,
		Lines:       view.Snapshot.Lines,
	}, nil
}

func (q *vendorRequestQueriesImpl) GetComparison(
	ctx context.Context,
	quoteID uuid.UUID,
	actorID uuid.UUID,
	actorRole user.Role,
	filter ListFilter,
) (*Comparison, error) {
	views, err := q.ListByQuote(ctx, quoteID, actorID, actorRole, filter)
	if err != nil {
		return nil, err
	}
	return BuildComparison(views), nil
}

func (q *vendorRequestQueriesImpl) checkQuoteAccess(ctx context.Context, quoteID, actorID uuid.UUID, actorRole user.Role) error {
	quoteView, err := q.quoteStore.FindByID(ctx, quoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrQuoteNotFound
		}
		return err
	}
	if quoteView.OwnerID != actorID && actorRole != user.RoleAdmin {
		return ErrQuoteAccess
	}
	return nil
}

func applyEffectiveStatus(v *VendorRequestView, now time.Time) {
	v.EffectiveStatus = vendorreq.DeriveEffectiveStatus(vendorreq.Status(v.Status), v.ExpiresAt, now).String()
}

func filterRequests(views []*VendorRequestView, filter ListFilter) []*VendorRequestView {
	if filter.Status == nil && filter.Vendor == "" {
		return views
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Vendor))
	out := make([]*VendorRequestView, 0, len(views))
	for _, v := range views {
		if filter.Status != nil && v.EffectiveStatus != filter.Status.String() {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(v.VendorEmail), needle) &&
			!strings.Contains(strings.ToLower(v.DisplayName()), needle) {
			continue
		}
		out = append(out, v)
	}
	return out
}
