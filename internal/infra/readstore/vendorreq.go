package readstore

import (
	"context"
	"encoding/json"

	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/infra/db"
	"bioinsight-quotes/internal/pkg/pgconv"
	"bioinsight-quotes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const listVendorRequestsByQuoteSQL = `
SELECT id, quote_id, vendor_email, vendor_name, access_token,
       status, snapshot, created_at, expires_at, responded_at
FROM vendor_requests
WHERE quote_id = $1
ORDER BY created_at ASC
`

const findVendorRequestByTokenSQL = `
SELECT id, quote_id, vendor_email, vendor_name, access_token,
       status, snapshot, created_at, expires_at, responded_at
FROM vendor_requests
WHERE access_token = $1
`

const findResponseItemsSQL = `
SELECT vendor_request_id, quote_item_id, unit_price, currency, lead_time_days, moq, note
FROM response_items
WHERE vendor_request_id = ANY($1)
ORDER BY vendor_request_id, created_at
`

type VendorRequestReadStore struct {
	db db.DBTX
}

func NewVendorRequestReadStore(dbtx db.DBTX) *VendorRequestReadStore {
	return &VendorRequestReadStore{db: dbtx}
}

func (r *VendorRequestReadStore) ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]*queries.VendorRequestView, error) {
	rows, err := r.db.Query(ctx, listVendorRequestsByQuoteSQL, quoteID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vendor requests", err)
	}
	defer rows.Close()

	views := make([]*queries.VendorRequestView, 0)
	for rows.Next() {
		view, err := scanVendorRequestView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read vendor requests", err)
	}

	if err := r.attachResponseItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *VendorRequestReadStore) FindByToken(ctx context.Context, token string) (*queries.VendorRequestView, error) {
	row := r.db.QueryRow(ctx, findVendorRequestByTokenSQL, token)
	view, err := scanVendorRequestView(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachResponseItems(ctx, []*queries.VendorRequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanVendorRequestView(row scannable) (*queries.VendorRequestView, error) {
	var (
		view        queries.VendorRequestView
		vendorName  pgtype.Text
		snapshotRaw []byte
		createdAt   pgtype.Timestamptz
		expiresAt   pgtype.Timestamptz
		respondedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.QuoteID, &view.VendorEmail, &vendorName, &view.AccessToken,
		&view.Status, &snapshotRaw, &createdAt, &expiresAt, &respondedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("vendor request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan vendor request", err)
	}

	var snapshot vendorreq.Snapshot
	if err := json.Unmarshal(snapshotRaw, &snapshot); err != nil {
		return nil, infra.WrapRepoErr("failed to decode snapshot", err)
	}

	view.VendorName = pgconv.StringPtrFromPgtype(vendorName)
	view.Snapshot = snapshot
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)
	view.RespondedAt = pgconv.TimePtrFromPgtype(respondedAt)
	return &view, nil
}

func (r *VendorRequestReadStore) attachResponseItems(ctx context.Context, views []*queries.VendorRequestView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	byID := make(map[uuid.UUID]*queries.VendorRequestView, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
		byID[v.ID] = v
	}

	rows, err := r.db.Query(ctx, findResponseItemsSQL, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to query response items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			requestID uuid.UUID
			item      queries.ResponseItemView
			unitPrice pgtype.Numeric
			moq       pgtype.Int4
			note      pgtype.Text
		)
		if err := rows.Scan(&requestID, &item.QuoteItemID, &unitPrice, &item.Currency, &item.LeadTimeDays, &moq, &note); err != nil {
			return infra.WrapRepoErr("failed to scan response item", err)
		}
		price, err := pgconv.DecimalFromNumeric(unitPrice)
		if err != nil {
			return infra.WrapRepoErr("failed to convert offer price", err)
		}
		item.UnitPrice = price
		item.MOQ = pgconv.Int32PtrFromPgtype(moq)
		item.Note = pgconv.StringPtrFromPgtype(note)

		if view, ok := byID[requestID]; ok {
			view.Items = append(view.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read response items", err)
	}
	return nil
}
