package readstore

import (
	"context"

	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/infra/db"
	"bioinsight-quotes/internal/pkg/pgconv"
	"bioinsight-quotes/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

const findQuoteSQL = `
SELECT id, owner_id, title, created_at, updated_at
FROM quotes
WHERE id = $1
`

const findQuoteItemsSQL = `
SELECT id, position, product_name, brand, catalog_no, vendor_name,
       unit, quantity, unit_price, currency, note, created_at, updated_at
FROM quote_items
WHERE quote_id = $1
ORDER BY position, created_at
`

const listQuotesByOwnerSQL = `
SELECT q.id, q.title, COUNT(i.id) AS item_count, q.created_at, q.updated_at
FROM quotes q
LEFT JOIN quote_items i ON i.quote_id = q.id
WHERE q.owner_id = $1
GROUP BY q.id
ORDER BY q.created_at DESC
`

type QuoteReadStore struct {
	db db.DBTX
}

func NewQuoteReadStore(dbtx db.DBTX) *QuoteReadStore {
	return &QuoteReadStore{db: dbtx}
}

func (r *QuoteReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.QuoteView, error) {
	var (
		view      queries.QuoteView
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findQuoteSQL, id).
		Scan(&view.ID, &view.OwnerID, &view.Title, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = items
	return &view, nil
}

func (r *QuoteReadStore) findItems(ctx context.Context, quoteID uuid.UUID) ([]queries.QuoteItemView, error) {
	rows, err := r.db.Query(ctx, findQuoteItemsSQL, quoteID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query quote items", err)
	}
	defer rows.Close()

	items := make([]queries.QuoteItemView, 0)
	for rows.Next() {
		var (
			item       queries.QuoteItemView
			brand      pgtype.Text
			catalogNo  pgtype.Text
			vendorName pgtype.Text
			note       pgtype.Text
			unitPrice  pgtype.Numeric
			createdAt  pgtype.Timestamptz
			updatedAt  pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.Position, &item.ProductName, &brand, &catalogNo, &vendorName,
			&item.Unit, &item.Quantity, &unitPrice, &item.Currency, &note, &createdAt, &updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote item", err)
		}

		price, err := pgconv.DecimalFromNumeric(unitPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert unit price", err)
		}
		item.Brand = brand.String
		item.CatalogNo = catalogNo.String
		item.VendorName = vendorName.String
		item.Note = note.String
		item.UnitPrice = price
		item.LineTotal = price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read quote items", err)
	}
	return items, nil
}

func (r *QuoteReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.QuoteListItem, error) {
	rows, err := r.db.Query(ctx, listQuotesByOwnerSQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quotes", err)
	}
	defer rows.Close()

	out := make([]*queries.QuoteListItem, 0)
	for rows.Next() {
		var (
			item      queries.QuoteListItem
			itemCount int64
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Title, &itemCount, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote list row", err)
		}
		item.ItemCount = int(itemCount)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		item.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
		out = append(out, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read quote list", err)
	}
	return out, nil
}
