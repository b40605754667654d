package commands

import (
	"context"

	"bioinsight-quotes/internal/domain/quote"
	"bioinsight-quotes/internal/domain/user"
	"bioinsight-quotes/internal/infra"
	"bioinsight-quotes/internal/pkg/errs"
	"bioinsight-quotes/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrQuoteNotFound     = errs.New("quote not found")
	ErrQuoteItemNotFound = errs.New("quote item not found")
	ErrQuoteAccess       = errs.New("quote access denied")
)

type CreateQuoteInput struct {
	Title string
}

type AddItemInput struct {
	ProductName string
	Brand       string
	CatalogNo   string
	VendorName  string
	Unit        string
	Quantity    int
	UnitPrice   decimal.Decimal
	Currency    string
	Note        string
}

type UpdateItemInput struct {
	Quantity  *int
	UnitPrice *decimal.Decimal
	Note      *string
}

type QuoteCommands interface {
	Create(ctx context.Context, actorID uuid.UUID, input CreateQuoteInput) (uuid.UUID, error)
	AddItem(ctx context.Context, quoteID, actorID uuid.UUID, actorRole user.Role, input AddItemInput) (uuid.UUID, error)
	UpdateItem(ctx context.Context, quoteID, itemID, actorID uuid.UUID, actorRole user.Role, input UpdateItemInput) error
	DeleteItem(ctx context.Context, quoteID, itemID, actorID uuid.UUID, actorRole user.Role) error
}

type quoteCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewQuoteCommands(uow shared.UnitOfWork) QuoteCommands {
	return &quoteCommandsImpl{uow: uow}
}

func (c *quoteCommandsImpl) Create(ctx context.Context, actorID uuid.UUID, input CreateQuoteInput) (uuid.UUID, error) {
	q, err := quote.NewQuote(actorID, input.Title)
	if err != nil {
		return uuid.Nil, err
	}

	var quoteID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Quotes().Create(ctx, tx.DB(), q)
		if err != nil {
			return errs.Wrap(err, "failed to create quote")
		}
		quoteID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return quoteID, nil
}

func (c *quoteCommandsImpl) AddItem(
	ctx context.Context,
	quoteID, actorID uuid.UUID,
	actorRole user.Role,
	input AddItemInput,
) (uuid.UUID, error) {
	var itemID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireQuoteOwnership(ctx, tx.Reads(), quoteID, actorID, actorRole); err != nil {
			return err
		}

		items, err := tx.Reads().QuoteItems(ctx, quoteID)
		if err != nil {
			return errs.Wrap(err, "failed to load quote items")
		}

		item, err := quote.NewItem(quoteID, len(items)+1, quote.ItemSpec{
			ProductName: input.ProductName,
			Brand:       input.Brand,
			CatalogNo:   input.CatalogNo,
			VendorName:  input.VendorName,
			Unit:        input.Unit,
			Quantity:    input.Quantity,
			UnitPrice:   input.UnitPrice,
			Currency:    input.Currency,
			Note:        input.Note,
		})
		if err != nil {
			return err
		}

		id, err := tx.Quotes().AddItem(ctx, tx.DB(), item)
		if err != nil {
			return errs.Wrap(err, "failed to add quote item")
		}
		itemID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return itemID, nil
}

func (c *quoteCommandsImpl) UpdateItem(
	ctx context.Context,
	quoteID, itemID, actorID uuid.UUID,
	actorRole user.Role,
	input UpdateItemInput,
) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireQuoteOwnership(ctx, tx.Reads(), quoteID, actorID, actorRole); err != nil {
			return err
		}

		item, err := tx.Reads().QuoteItemByID(ctx, quoteID, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrQuoteItemNotFound
			}
			return errs.Wrap(err, "failed to load quote item")
		}

		if err := item.Apply(quote.ItemPatch{
			Quantity:  input.Quantity,
			UnitPrice: input.UnitPrice,
			Note:      input.Note,
		}); err != nil {
			return err
		}

		if err := tx.Quotes().UpdateItem(ctx, tx.DB(), item); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrQuoteItemNotFound
			}
			return errs.Wrap(err, "failed to update quote item")
		}
		return nil
	})
}

func (c *quoteCommandsImpl) DeleteItem(
	ctx context.Context,
	quoteID, itemID, actorID uuid.UUID,
	actorRole user.Role,
) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireQuoteOwnership(ctx, tx.Reads(), quoteID, actorID, actorRole); err != nil {
			return err
		}

		if err := tx.Quotes().DeleteItem(ctx, tx.DB(), quoteID, itemID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrQuoteItemNotFound
			}
			return errs.Wrap(err, "failed to delete quote item")
		}
		return nil
	})
}

func requireQuoteOwnership(
	ctx context.Context,
	reads shared.CommandReads,
	quoteID, actorID uuid.UUID,
	actorRole user.Role,
) error {
	record, err := reads.QuoteByID(ctx, quoteID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrQuoteNotFound
		}
		return errs.Wrap(err, "failed to load quote")
	}
	if record.OwnerID != actorID && actorRole != user.RoleAdmin {
		return ErrQuoteAccess
	}
	return nil
}
