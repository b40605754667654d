package vendorreq

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidExpiry    = errors.New("expiry must be at least one day")
	ErrMissingEmail     = errors.New("vendor email must not be empty")
	ErrAlreadyResponded = errors.New("request has already been responded to")
	ErrRequestExpired   = errors.New("request has expired")
	ErrRequestCancelled = errors.New("request was cancelled")
)

// VendorRequest is one outstanding or resolved request to a single vendor
// for quotes on a snapshot's items. Requests are retained for audit while
// the parent quote exists, regardless of outcome.
type VendorRequest struct {
	id          uuid.UUID
	quoteID     uuid.UUID
	vendorEmail string
	vendorName  string
	accessToken string
	status      Status
	snapshot    Snapshot
	items       []ResponseItem
	createdAt   time.Time
	expiresAt   time.Time
	respondedAt *time.Time
}

func NewVendorRequest(
	quoteID uuid.UUID,
	vendorEmail, vendorName string,
	snapshot Snapshot,
	accessToken string,
	now time.Time,
	expiresInDays int,
) (*VendorRequest, error) {
	if vendorEmail == "" {
		return nil, ErrMissingEmail
	}
	if expiresInDays < 1 {
		return nil, ErrInvalidExpiry
	}
	if len(snapshot.Lines) == 0 {
		return nil, ErrEmptyQuote
	}

	return &VendorRequest{
		id:          uuid.New(),
		quoteID:     quoteID,
		vendorEmail: vendorEmail,
		vendorName:  vendorName,
		accessToken: accessToken,
		status:      StatusSent,
		snapshot:    snapshot.Copy(),
		createdAt:   now,
		expiresAt:   now.AddDate(0, 0, expiresInDays),
	}, nil
}

func ReconstructVendorRequest(
	id, quoteID uuid.UUID,
	vendorEmail, vendorName, accessToken string,
	status Status,
	snapshot Snapshot,
	items []ResponseItem,
	createdAt, expiresAt time.Time,
	respondedAt *time.Time,
) *VendorRequest {
	return &VendorRequest{
		id:          id,
		quoteID:     quoteID,
		vendorEmail: vendorEmail,
		vendorName:  vendorName,
		accessToken: accessToken,
		status:      status,
		snapshot:    snapshot,
		items:       items,
		createdAt:   createdAt,
		expiresAt:   expiresAt,
		respondedAt: respondedAt,
	}
}

func (v *VendorRequest) ID() uuid.UUID           { return v.id }
func (v *VendorRequest) QuoteID() uuid.UUID      { return v.quoteID }
func (v *VendorRequest) VendorEmail() string     { return v.vendorEmail }
func (v *VendorRequest) VendorName() string      { return v.vendorName }
func (v *VendorRequest) AccessToken() string     { return v.accessToken }
func (v *VendorRequest) Status() Status          { return v.status }
func (v *VendorRequest) Snapshot() Snapshot      { return v.snapshot.Copy() }
func (v *VendorRequest) CreatedAt() time.Time    { return v.createdAt }
func (v *VendorRequest) ExpiresAt() time.Time    { return v.expiresAt }
func (v *VendorRequest) RespondedAt() *time.Time { return v.respondedAt }

func (v *VendorRequest) ResponseItems() []ResponseItem {
	items := make([]ResponseItem, len(v.items))
	copy(items, v.items)
	return items
}

// DisplayName falls back to the vendor email when no name was provided.
func (v *VendorRequest) DisplayName() string {
	if v.vendorName != "" {
		return v.vendorName
	}
	return v.vendorEmail
}

// EffectiveStatus is the displayed/acted-upon status; expiry is evaluated
// lazily here rather than by a background sweep.
func (v *VendorRequest) EffectiveStatus(now time.Time) Status {
	return DeriveEffectiveStatus(v.status, v.expiresAt, now)
}

// ensurePending rejects any transition attempt from a non-sent effective
// state with the precise reason the caller can surface.
func (v *VendorRequest) ensurePending(now time.Time) error {
	switch v.EffectiveStatus(now) {
	case StatusSent:
		return nil
	case StatusResponded:
		return ErrAlreadyResponded
	case StatusExpired:
		return ErrRequestExpired
	case StatusCancelled:
		return ErrRequestCancelled
	default:
		return errors.New("unknown request status")
	}
}

// MarkResponded records the vendor's full submission and moves the request
// to its terminal responded state. The submission replaces nothing: a second
// call fails, it never overwrites.
func (v *VendorRequest) MarkResponded(items []ResponseItem, now time.Time) error {
	if err := v.ensurePending(now); err != nil {
		return err
	}
	if err := validateResponseItems(v.snapshot, items); err != nil {
		return err
	}

	v.items = make([]ResponseItem, len(items))
	copy(v.items, items)
	v.status = StatusResponded
	respondedAt := now
	v.respondedAt = &respondedAt
	return nil
}

// Cancel is the buyer-initiated terminal transition.
func (v *VendorRequest) Cancel(now time.Time) error {
	if err := v.ensurePending(now); err != nil {
		return err
	}
	v.status = StatusCancelled
	return nil
}
