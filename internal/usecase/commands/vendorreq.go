package commands

import (
	"context"
	"time"

	"bioinsight-quotes/internal/domain/user"
	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/pkg/clock"
	"bioinsight-quotes/internal/pkg/config"
	"bioinsight-quotes/internal/pkg/errs"
	"bioinsight-quotes/internal/pkg/token"
	"bioinsight-quotes/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrVendorRequestNotFound = errs.New("vendor request not found")
	ErrRequestAlreadyClosed  = errs.New("vendor request already closed")
)

type VendorTarget struct {
	Email string
	Name  string
}

type SendToVendorsInput struct {
	Vendors []VendorTarget
	// ExpiresInDays overrides the configured default when positive.
	ExpiresInDays int
}

// CreatedVendorRequest is returned per target vendor; Link is the portal URL
// the caller hands to the vendor.
type CreatedVendorRequest struct {
	ID          uuid.UUID
	VendorEmail string
	AccessToken string
	ExpiresAt   time.Time
	Link        string
}

type RespondItemInput struct {
	QuoteItemID  uuid.UUID
	UnitPrice    decimal.Decimal
	Currency     string
	LeadTimeDays int
	MOQ          *int32
	Note         *string
}

type VendorRequestCommands interface {
	// SendToVendors freezes the quote into one snapshot and creates one
	// request per vendor from it. Calling it again creates new requests with
	// a fresh snapshot; earlier requests keep theirs.
	SendToVendors(ctx context.Context, quoteID, actorID uuid.UUID, actorRole user.Role, input SendToVendorsInput) ([]CreatedVendorRequest, error)
	// Respond records a vendor's offer against their own snapshot. Exactly one
	// submission wins; any later one fails with the request's closed state.
	Respond(ctx context.Context, accessToken string, items []RespondItemInput) error
	Cancel(ctx context.Context, quoteID, requestID, actorID uuid.UUID, actorRole user.Role) error
}

type vendorRequestCommandsImpl struct {
	uow   shared.UnitOfWork
	cfg   config.QuoteConfig
	clock clock.Clock
}

func NewVendorRequestCommands(uow shared.UnitOfWork, cfg config.QuoteConfig, clk clock.Clock) VendorRequestCommands {
	return &vendorRequestCommandsImpl{uow: uow, cfg: cfg, clock: clk}
}

func (c *vendorRequestCommandsImpl) SendToVendors(
	ctx context.Context,
	quoteID, actorID uuid.UUID,
	actorRole user.Role,
	input SendToVendorsInput,
) ([]CreatedVendorRequest, error) {
	if len(input.Vendors) == 0 {
		return nil, vendorreq.ErrMissingEmail
	}

	expiresInDays := c.cfg.DefaultExpiryDays
	if input.ExpiresInDays > 0 {
		expiresInDays = input.ExpiresInDays
	}

	var created []CreatedVendorRequest
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = created[:0]

		record, err := tx.Reads().QuoteByID(ctx, quoteID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrQuoteNotFound
			}
			return errs.Wrap(err, "failed to load quote")
		}
		if record.OwnerID != actorID && actorRole != user.RoleAdmin {
			return ErrQuoteAccess
		}

		// One read of the items inside the transaction; every request created
		// below shares the state observed here.
		items, err := tx.Reads().QuoteItems(ctx, quoteID)
		if err != nil {
			return errs.Wrap(err, "failed to load quote items")
		}
		snapshot, err := vendorreq.BuildSnapshot(record.Title, items)
		if err != nil {
			return err
		}

		now := c.clock.Now()
		for _, target := range input.Vendors {
			accessToken, err := token.NewAccessToken()
			if err != nil {
				return errs.Wrap(err, "failed to generate access token")
			}

			req, err := vendorreq.NewVendorRequest(quoteID, target.Email, target.Name, snapshot, accessToken, now, expiresInDays)
			if err != nil {
				return err
			}

			id, err := tx.VendorRequests().Create(ctx, tx.DB(), req)
			if err != nil {
				return errs.Wrap(err, "failed to create vendor request")
			}

			created = append(created, CreatedVendorRequest{
				ID:          id,
				VendorEmail: target.Email,
				AccessToken: accessToken,
				ExpiresAt:   req.ExpiresAt(),
				Link:        c.cfg.PublicBaseURL + "/vendor/" + accessToken,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *vendorRequestCommandsImpl) Respond(ctx context.Context, accessToken string, items []RespondItemInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		record, err := tx.VendorRequests().LockByToken(ctx, tx.DB(), accessToken)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVendorRequestNotFound
			}
			return errs.Wrap(err, "failed to lock vendor request")
		}

		req := reconstructFromRecord(record)

		responseItems := make([]vendorreq.ResponseItem, 0, len(items))
		for _, in := range items {
			item, err := vendorreq.NewResponseItem(in.QuoteItemID, in.UnitPrice, in.Currency, in.LeadTimeDays, in.MOQ, in.Note)
			if err != nil {
				return err
			}
			responseItems = append(responseItems, item)
		}

		now := c.clock.Now()
		if err := req.MarkResponded(responseItems, now); err != nil {
			return err
		}

		applied, err := tx.VendorRequests().MarkResponded(ctx, tx.DB(), record.ID, now)
		if err != nil {
			return errs.Wrap(err, "failed to mark vendor request responded")
		}
		if !applied {
			return vendorreq.ErrAlreadyResponded
		}

		if err := tx.VendorRequests().InsertResponseItems(ctx, tx.DB(), record.ID, responseItems); err != nil {
			return errs.Wrap(err, "failed to store response items")
		}
		return nil
	})
}

func (c *vendorRequestCommandsImpl) Cancel(
	ctx context.Context,
	quoteID, requestID, actorID uuid.UUID,
	actorRole user.Role,
) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireQuoteOwnership(ctx, tx.Reads(), quoteID, actorID, actorRole); err != nil {
			return err
		}

		record, err := tx.VendorRequests().LockByID(ctx, tx.DB(), requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVendorRequestNotFound
			}
			return errs.Wrap(err, "failed to lock vendor request")
		}
		if record.QuoteID != quoteID {
			return ErrVendorRequestNotFound
		}

		req := reconstructFromRecord(record)
		if err := req.Cancel(c.clock.Now()); err != nil {
			return err
		}

		applied, err := tx.VendorRequests().Cancel(ctx, tx.DB(), record.ID)
		if err != nil {
			return errs.Wrap(err, "failed to cancel vendor request")
		}
		if !applied {
			return ErrRequestAlreadyClosed
		}
		return nil
	})
}

func reconstructFromRecord(r *shared.VendorRequestRecord) *vendorreq.VendorRequest {
	return vendorreq.ReconstructVendorRequest(
		r.ID, r.QuoteID,
		r.VendorEmail, r.VendorName, r.AccessToken,
		r.Status,
		r.Snapshot,
		nil,
		r.CreatedAt, r.ExpiresAt,
		r.RespondedAt,
	)
}
