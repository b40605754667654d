package repository

import (
	"context"
	"encoding/json"
	"time"

	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/infra/db"
	"bioinsight-quotes/internal/pkg/pgconv"
	"bioinsight-quotes/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VendorRequestRepository struct{}

func NewVendorRequestRepository() *VendorRequestRepository {
	return &VendorRequestRepository{}
}

const createVendorRequestSQL = `
INSERT INTO vendor_requests (
	id, quote_id, vendor_email, vendor_name, access_token, status,
	snapshot, created_at, expires_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

func (r *VendorRequestRepository) Create(ctx context.Context, dbtx db.DBTX, req *vendorreq.VendorRequest) (uuid.UUID, error) {
	snapshotJSON, err := json.Marshal(req.Snapshot())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to serialize snapshot", err)
	}

	var vendorName pgtype.Text
	if req.VendorName() != "" {
		vendorName = pgconv.StringToPgtype(req.VendorName())
	}

	var id uuid.UUID
	err = dbtx.QueryRow(ctx, createVendorRequestSQL,
		req.ID(),
		req.QuoteID(),
		req.VendorEmail(),
		vendorName,
		req.AccessToken(),
		req.Status().String(),
		snapshotJSON,
		req.CreatedAt(),
		req.ExpiresAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create vendor request", err)
	}
	return id, nil
}

const lockVendorRequestByTokenSQL = `
SELECT id, quote_id, vendor_email, vendor_name, access_token, status,
       snapshot, created_at, expires_at, responded_at
FROM vendor_requests
WHERE access_token = $1
FOR UPDATE
`

func (r *VendorRequestRepository) LockByToken(ctx context.Context, dbtx db.DBTX, token string) (*shared.VendorRequestRecord, error) {
	row := dbtx.QueryRow(ctx, lockVendorRequestByTokenSQL, token)
	rec, err := scanVendorRequestRecord(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock vendor request by token", err)
	}
	return rec, nil
}

const lockVendorRequestByIDSQL = `
SELECT id, quote_id, vendor_email, vendor_name, access_token, status,
       snapshot, created_at, expires_at, responded_at
FROM vendor_requests
WHERE id = $1
FOR UPDATE
`

func (r *VendorRequestRepository) LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.VendorRequestRecord, error) {
	row := dbtx.QueryRow(ctx, lockVendorRequestByIDSQL, id)
	rec, err := scanVendorRequestRecord(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock vendor request by id", err)
	}
	return rec, nil
}

// Conditional on the stored status so a lost race can never overwrite a
// terminal state, even without the row lock.
const markRespondedSQL = `
UPDATE vendor_requests
SET status = 'responded', responded_at = $2
WHERE id = $1 AND status = 'sent'
`

func (r *VendorRequestRepository) MarkResponded(ctx context.Context, dbtx db.DBTX, id uuid.UUID, respondedAt time.Time) (bool, error) {
	tag, err := dbtx.Exec(ctx, markRespondedSQL, id, respondedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark vendor request responded", err)
	}
	return tag.RowsAffected() == 1, nil
}

const cancelVendorRequestSQL = `
UPDATE vendor_requests
SET status = 'cancelled'
WHERE id = $1 AND status = 'sent'
`

func (r *VendorRequestRepository) Cancel(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (bool, error) {
	tag, err := dbtx.Exec(ctx, cancelVendorRequestSQL, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to cancel vendor request", err)
	}
	return tag.RowsAffected() == 1, nil
}

const insertResponseItemSQL = `
INSERT INTO response_items (
	id, vendor_request_id, quote_item_id, unit_price, currency,
	lead_time_days, moq, note, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
`

func (r *VendorRequestRepository) InsertResponseItems(ctx context.Context, dbtx db.DBTX, requestID uuid.UUID, items []vendorreq.ResponseItem) error {
	for _, item := range items {
		_, err := dbtx.Exec(ctx, insertResponseItemSQL,
			uuid.New(),
			requestID,
			item.QuoteItemID(),
			pgconv.DecimalToNumeric(item.UnitPrice()),
			item.Currency(),
			item.LeadTimeDays(),
			pgconv.Int32PtrToPgtype(item.MOQ()),
			pgconv.StringPtrToPgtype(item.Note()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert response item", err)
		}
	}
	return nil
}

type vendorRequestRow interface {
	Scan(dest ...any) error
}

func scanVendorRequestRecord(row vendorRequestRow) (*shared.VendorRequestRecord, error) {
	var (
		rec          shared.VendorRequestRecord
		vendorName   pgtype.Text
		status       string
		snapshotJSON []byte
		respondedAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&rec.ID,
		&rec.QuoteID,
		&rec.VendorEmail,
		&vendorName,
		&rec.AccessToken,
		&status,
		&snapshotJSON,
		&rec.CreatedAt,
		&rec.ExpiresAt,
		&respondedAt,
	)
	if err != nil {
		return nil, err
	}

	if vendorName.Valid {
		rec.VendorName = vendorName.String
	}
	rec.Status = vendorreq.Status(status)
	rec.RespondedAt = pgconv.TimePtrFromPgtype(respondedAt)

	if err := json.Unmarshal(snapshotJSON, &rec.Snapshot); err != nil {
		return nil, err
	}
	return &rec, nil
}
