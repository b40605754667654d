package repository

import (
	"context"

	"bioinsight-quotes/internal/domain/quote"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/infra/db"
	"bioinsight-quotes/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type QuoteRepository struct{}

func NewQuoteRepository() *QuoteRepository {
	return &QuoteRepository{}
}

const createQuoteSQL = `
INSERT INTO quotes (id, owner_id, title, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())
RETURNING id
`

func (r *QuoteRepository) Create(ctx context.Context, dbtx db.DBTX, q *quote.Quote) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createQuoteSQL, q.ID(), q.OwnerID(), q.Title()).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create quote", err)
	}
	return id, nil
}

const addQuoteItemSQL = `
INSERT INTO quote_items (
	id, quote_id, position, product_name, brand, catalog_no, vendor_name,
	unit, quantity, unit_price, currency, note, created_at, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now(), now())
RETURNING id
`

func (r *QuoteRepository) AddItem(ctx context.Context, dbtx db.DBTX, item *quote.Item) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, addQuoteItemSQL,
		item.ID(),
		item.QuoteID(),
		item.Position(),
		item.ProductName(),
		item.Brand(),
		item.CatalogNo(),
		item.VendorName(),
		item.Unit(),
		item.Quantity(),
		pgconv.DecimalToNumeric(item.UnitPrice()),
		item.Currency(),
		item.Note(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to add quote item", err)
	}
	return id, nil
}

const updateQuoteItemSQL = `
UPDATE quote_items
SET quantity = $3, unit_price = $4, note = $5, updated_at = now()
WHERE id = $1 AND quote_id = $2
`

func (r *QuoteRepository) UpdateItem(ctx context.Context, dbtx db.DBTX, item *quote.Item) error {
	tag, err := dbtx.Exec(ctx, updateQuoteItemSQL,
		item.ID(),
		item.QuoteID(),
		item.Quantity(),
		pgconv.DecimalToNumeric(item.UnitPrice()),
		item.Note(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update quote item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quote item not found", nil, infra.KindNotFound)
	}
	return nil
}

const deleteQuoteItemSQL = `
DELETE FROM quote_items WHERE id = $1 AND quote_id = $2
`

func (r *QuoteRepository) DeleteItem(ctx context.Context, dbtx db.DBTX, quoteID, itemID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, deleteQuoteItemSQL, itemID, quoteID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete quote item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("quote item not found", nil, infra.KindNotFound)
	}
	return nil
}
