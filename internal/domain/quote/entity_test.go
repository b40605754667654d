//go:build unit

package quote_test

import (
	"testing"

	"bioinsight-quotes/internal/domain/quote"
	"bioinsight-quotes/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		q, err := builder.NewQuoteBuilder().BuildDomain()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, q.ID())
		assert.Equal(t, "Q3 Immunology Reagents", q.Title())
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		_, err := builder.NewQuoteBuilder().WithTitle("  ").BuildDomain()
		assert.ErrorIs(t, err, quote.ErrEmptyTitle)
	})

	t.Run("ownership check", func(t *testing.T) {
		q, err := builder.NewQuoteBuilder().BuildDomain()
		require.NoError(t, err)
		assert.True(t, q.IsOwnedBy(q.OwnerID()))
		assert.False(t, q.IsOwnedBy(uuid.New()))
	})
}

func TestNewItem(t *testing.T) {
	type testCase struct {
		name   string
		mutate func(*builder.QuoteItemBuilder)
		errIs  error
	}

	cases := []testCase{
		{
			name:   "valid item",
			mutate: func(*builder.QuoteItemBuilder) {},
		},
		{
			name:   "empty product name",
			mutate: func(b *builder.QuoteItemBuilder) { b.ProductName = "   " },
			errIs:  quote.ErrEmptyProductName,
		},
		{
			name:   "zero quantity",
			mutate: func(b *builder.QuoteItemBuilder) { b.Quantity = 0 },
			errIs:  quote.ErrInvalidQuantity,
		},
		{
			name:   "negative quantity",
			mutate: func(b *builder.QuoteItemBuilder) { b.Quantity = -1 },
			errIs:  quote.ErrInvalidQuantity,
		},
		{
			name:   "negative price",
			mutate: func(b *builder.QuoteItemBuilder) { b.UnitPrice = decimal.NewFromInt(-1) },
			errIs:  quote.ErrNegativePrice,
		},
		{
			name:   "zero price is allowed",
			mutate: func(b *builder.QuoteItemBuilder) { b.UnitPrice = decimal.Zero },
		},
		{
			name:   "invalid currency code",
			mutate: func(b *builder.QuoteItemBuilder) { b.Currency = "WONS" },
			errIs:  quote.ErrInvalidCurrency,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewQuoteItemBuilder()
			tc.mutate(b)
			item, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, item.ID())
		})
	}

	t.Run("unit defaults to ea", func(t *testing.T) {
		b := builder.NewQuoteItemBuilder()
		b.Unit = ""
		item, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "ea", item.Unit())
	})

	t.Run("currency is normalized to upper case", func(t *testing.T) {
		b := builder.NewQuoteItemBuilder()
		b.Currency = "krw"
		item, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "KRW", item.Currency())
	})
}

func TestLineTotal(t *testing.T) {
	item, err := builder.NewQuoteItemBuilder().BuildDomain()
	require.NoError(t, err)
	// 2 kits at 450000
	assert.True(t, item.LineTotal().Equal(decimal.NewFromInt(900000)))
}

func TestItemApply(t *testing.T) {
	t.Run("patches only the provided fields", func(t *testing.T) {
		item, err := builder.NewQuoteItemBuilder().BuildDomain()
		require.NoError(t, err)

		qty := 5
		note := "urgent"
		require.NoError(t, item.Apply(quote.ItemPatch{Quantity: &qty, Note: &note}))

		assert.Equal(t, 5, item.Quantity())
		assert.Equal(t, "urgent", item.Note())
		assert.True(t, item.UnitPrice().Equal(decimal.NewFromInt(450000)))
	})

	t.Run("rejects invalid patch values", func(t *testing.T) {
		item, err := builder.NewQuoteItemBuilder().BuildDomain()
		require.NoError(t, err)

		zero := 0
		assert.ErrorIs(t, item.Apply(quote.ItemPatch{Quantity: &zero}), quote.ErrInvalidQuantity)

		neg := decimal.NewFromInt(-10)
		assert.ErrorIs(t, item.Apply(quote.ItemPatch{UnitPrice: &neg}), quote.ErrNegativePrice)
	})
}
