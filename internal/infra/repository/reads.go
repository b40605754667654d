package repository

import (
	"context"

	"bioinsight-quotes/internal/domain/quote"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/infra/db"
	"bioinsight-quotes/internal/pkg/pgconv"
	"bioinsight-quotes/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the write side's validation lookups. It runs over
// whatever DBTX it was constructed with, so inside a transaction it sees
// that transaction's view.
type CommandReads struct {
	dbtx db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{dbtx: dbtx}
}

const quoteByIDSQL = `
SELECT id, owner_id, title FROM quotes WHERE id = $1
`

func (r *CommandReads) QuoteByID(ctx context.Context, id uuid.UUID) (*shared.QuoteRecord, error) {
	var rec shared.QuoteRecord
	err := r.dbtx.QueryRow(ctx, quoteByIDSQL, id).Scan(&rec.ID, &rec.OwnerID, &rec.Title)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote by id", err)
	}
	return &rec, nil
}

const quoteItemsSQL = `
SELECT id, quote_id, position, product_name, brand, catalog_no, vendor_name,
       unit, quantity, unit_price, currency, note, created_at, updated_at
FROM quote_items
WHERE quote_id = $1
ORDER BY position, created_at
`

// QuoteItems reads the full item list with a single statement, which is what
// gives the snapshot builder its consistent view under concurrent edits.
func (r *CommandReads) QuoteItems(ctx context.Context, quoteID uuid.UUID) ([]*quote.Item, error) {
	rows, err := r.dbtx.Query(ctx, quoteItemsSQL, quoteID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list quote items", err)
	}
	defer rows.Close()

	var items []*quote.Item
	for rows.Next() {
		item, err := scanQuoteItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan quote item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate quote items", err)
	}
	return items, nil
}

const quoteItemByIDSQL = `
SELECT id, quote_id, position, product_name, brand, catalog_no, vendor_name,
       unit, quantity, unit_price, currency, note, created_at, updated_at
FROM quote_items
WHERE quote_id = $1 AND id = $2
`

func (r *CommandReads) QuoteItemByID(ctx context.Context, quoteID, itemID uuid.UUID) (*quote.Item, error) {
	row := r.dbtx.QueryRow(ctx, quoteItemByIDSQL, quoteID, itemID)
	item, err := scanQuoteItem(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("quote item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find quote item by id", err)
	}
	return item, nil
}

type quoteItemRow interface {
	Scan(dest ...any) error
}

func scanQuoteItem(row quoteItemRow) (*quote.Item, error) {
	var (
		id, quoteID           uuid.UUID
		position, quantity    int
		productName, currency string
		brand, catalogNo      pgtype.Text
		vendorName, note      pgtype.Text
		unit                  string
		unitPrice             pgtype.Numeric
		createdAt, updatedAt  pgtype.Timestamptz
	)
	err := row.Scan(
		&id, &quoteID, &position, &productName, &brand, &catalogNo,
		&vendorName, &unit, &quantity, &unitPrice, &currency, &note,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	price, err := pgconv.DecimalFromNumeric(unitPrice)
	if err != nil {
		return nil, err
	}

	return quote.ReconstructItem(
		id, quoteID, position,
		productName, brand.String, catalogNo.String, vendorName.String, unit,
		quantity, price, currency, note.String,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}
