//go:build unit

package vendorreq_test

import (
	"testing"

	"bioinsight-quotes/internal/domain/quote"
	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot(t *testing.T) {
	t.Run("numbers lines from 1 in item order", func(t *testing.T) {
		quoteID := uuid.New()
		first, err := builder.NewQuoteItemBuilder().WithQuoteID(quoteID).WithPosition(1).BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewQuoteItemBuilder().
			WithQuoteID(quoteID).
			WithPosition(2).
			WithProductName("RNase-free Tips 1000ul").
			BuildDomain()
		require.NoError(t, err)

		snapshot, err := vendorreq.BuildSnapshot("Lab Restock", []*quote.Item{first, second})
		require.NoError(t, err)

		assert.Equal(t, "Lab Restock", snapshot.QuoteTitle)
		require.Len(t, snapshot.Lines, 2)
		assert.Equal(t, 1, snapshot.Lines[0].LineNo)
		assert.Equal(t, 2, snapshot.Lines[1].LineNo)
		assert.Equal(t, first.ID(), snapshot.Lines[0].LineID)
		assert.Equal(t, second.ID(), snapshot.Lines[1].LineID)
	})

	t.Run("empty quote is rejected", func(t *testing.T) {
		_, err := vendorreq.BuildSnapshot("Empty", nil)
		assert.ErrorIs(t, err, vendorreq.ErrEmptyQuote)
	})
}

func TestSnapshotCopy(t *testing.T) {
	item, err := builder.NewQuoteItemBuilder().BuildDomain()
	require.NoError(t, err)

	original, err := vendorreq.BuildSnapshot("Lab Restock", []*quote.Item{item})
	require.NoError(t, err)

	copied := original.Copy()
	assert.Empty(t, cmp.Diff(original, copied))

	copied.Lines[0].ProductName = "mutated"
	copied.Lines[0].Quantity = 999

	assert.Equal(t, "Human IL-6 ELISA Kit", original.Lines[0].ProductName)
	assert.Equal(t, 2, original.Lines[0].Quantity)
}

func TestSnapshotLineLookup(t *testing.T) {
	item, err := builder.NewQuoteItemBuilder().BuildDomain()
	require.NoError(t, err)

	snapshot, err := vendorreq.BuildSnapshot("Lab Restock", []*quote.Item{item})
	require.NoError(t, err)

	assert.True(t, snapshot.HasLine(item.ID()))
	assert.False(t, snapshot.HasLine(uuid.New()))

	line, ok := snapshot.Line(item.ID())
	require.True(t, ok)
	assert.Equal(t, item.ProductName(), line.ProductName)
}
