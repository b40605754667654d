//go:build unit

package queries_test

import (
	"testing"
	"time"

	"bioinsight-quotes/internal/domain/quote"
	"bioinsight-quotes/internal/domain/vendorreq"
	"bioinsight-quotes/internal/usecase/queries"
	"bioinsight-quotes/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingView(t *testing.T, b *builder.VendorRequestBuilder) *queries.VendorRequestView {
	t.Helper()
	view, err := b.BuildView()
	require.NoError(t, err)
	return view
}

func respondedView(t *testing.T, b *builder.VendorRequestBuilder, items ...queries.ResponseItemView) *queries.VendorRequestView {
	t.Helper()
	view := pendingView(t, b)
	view.Status = vendorreq.StatusResponded.String()
	view.EffectiveStatus = view.Status
	respondedAt := view.CreatedAt.AddDate(0, 0, 3)
	view.RespondedAt = &respondedAt
	view.Items = items
	return view
}

func TestBuildComparison(t *testing.T) {
	t.Run("empty input yields empty grid", func(t *testing.T) {
		cmp := queries.BuildComparison(nil)
		assert.Empty(t, cmp.Vendors)
		assert.Empty(t, cmp.Rows)
	})

	t.Run("one responded and one pending vendor", func(t *testing.T) {
		item, err := builder.NewQuoteItemBuilder().BuildDomain()
		require.NoError(t, err)

		base := builder.NewVendorRequestBuilder().WithItems(item)
		offer := builder.NewResponseItemBuilder(item.ID()).BuildView()
		vendorA := respondedView(t, base.WithVendor("sales@vendor-a.example.com", "Vendor A"), offer)

		later := builder.NewVendorRequestBuilder().WithItems(item).
			WithVendor("quotes@vendor-b.example.com", "Vendor B").
			WithNow(vendorA.CreatedAt.Add(time.Hour))
		vendorB := pendingView(t, later)

		cmp := queries.BuildComparison([]*queries.VendorRequestView{vendorB, vendorA})

		require.Len(t, cmp.Vendors, 2)
		// creation order, not argument order
		assert.Equal(t, "Vendor A", cmp.Vendors[0].DisplayName)
		assert.Equal(t, "Vendor B", cmp.Vendors[1].DisplayName)

		require.Len(t, cmp.Rows, 1)
		row := cmp.Rows[0]
		assert.Equal(t, item.ID(), row.Line.LineID)
		require.Len(t, row.Cells, 2)

		quoted := row.Cells[0]
		assert.Equal(t, queries.CellQuoted, quoted.Kind)
		require.NotNil(t, quoted.Item)
		assert.True(t, quoted.Item.UnitPrice.Equal(decimal.NewFromInt(420000)))
		assert.Equal(t, "KRW", quoted.Item.Currency)
		assert.Equal(t, 7, quoted.Item.LeadTimeDays)

		assert.Equal(t, queries.CellPending, row.Cells[1].Kind)
		assert.Nil(t, row.Cells[1].Item)
	})

	t.Run("earliest request's snapshot supplies the rows", func(t *testing.T) {
		quoteID := uuid.New()
		original, err := builder.NewQuoteItemBuilder().WithQuoteID(quoteID).BuildDomain()
		require.NoError(t, err)
		added, err := builder.NewQuoteItemBuilder().
			WithQuoteID(quoteID).
			WithPosition(2).
			WithProductName("Anti-CD3 Antibody").
			BuildDomain()
		require.NoError(t, err)

		now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
		first := pendingView(t, builder.NewVendorRequestBuilder().WithItems(original).WithNow(now))
		// sent after the quote gained a line
		second := pendingView(t, builder.NewVendorRequestBuilder().
			WithItems(original, added).
			WithVendor("quotes@vendor-b.example.com", "Vendor B").
			WithNow(now.Add(2*time.Hour)))

		cmp := queries.BuildComparison([]*queries.VendorRequestView{second, first})

		require.Len(t, cmp.Rows, 1)
		assert.Equal(t, original.ID(), cmp.Rows[0].Line.LineID)
	})

	t.Run("expired vendor shows no_response, responded with missing line too", func(t *testing.T) {
		item, err := builder.NewQuoteItemBuilder().BuildDomain()
		require.NoError(t, err)

		expired := pendingView(t, builder.NewVendorRequestBuilder().WithItems(item))
		expired.EffectiveStatus = vendorreq.StatusExpired.String()

		other, err := builder.NewQuoteItemBuilder().
			WithQuoteID(item.QuoteID()).
			WithProductName("Different Reagent").
			BuildDomain()
		require.NoError(t, err)
		disjoint := respondedView(t,
			builder.NewVendorRequestBuilder().WithItems(other).
				WithVendor("quotes@vendor-b.example.com", "Vendor B").
				WithNow(expired.CreatedAt.Add(time.Hour)),
			builder.NewResponseItemBuilder(other.ID()).BuildView())

		cmp := queries.BuildComparison([]*queries.VendorRequestView{expired, disjoint})

		require.Len(t, cmp.Rows, 1)
		require.Len(t, cmp.Rows[0].Cells, 2)
		assert.Equal(t, queries.CellNoResponse, cmp.Rows[0].Cells[0].Kind)
		assert.Equal(t, queries.CellNoResponse, cmp.Rows[0].Cells[1].Kind)
	})

	t.Run("matcher covers every snapshot line for every vendor", func(t *testing.T) {
		quoteID := uuid.New()
		items := make([]*quote.Item, 0, 3)
		for i, name := range []string{"ELISA Kit A", "ELISA Kit B", "ELISA Kit C"} {
			item, err := builder.NewQuoteItemBuilder().
				WithQuoteID(quoteID).
				WithPosition(i + 1).
				WithProductName(name).
				BuildDomain()
			require.NoError(t, err)
			items = append(items, item)
		}

		offers := make([]queries.ResponseItemView, 0, len(items))
		for _, it := range items {
			offers = append(offers, builder.NewResponseItemBuilder(it.ID()).BuildView())
		}

		vendorA := respondedView(t, builder.NewVendorRequestBuilder().WithItems(items...), offers...)
		vendorB := pendingView(t, builder.NewVendorRequestBuilder().WithItems(items...).
			WithVendor("quotes@vendor-b.example.com", "Vendor B").
			WithNow(vendorA.CreatedAt.Add(time.Minute)))

		cmp := queries.BuildComparison([]*queries.VendorRequestView{vendorA, vendorB})

		require.Len(t, cmp.Rows, 3)
		for _, row := range cmp.Rows {
			require.Len(t, row.Cells, 2)
			assert.Equal(t, queries.CellQuoted, row.Cells[0].Kind)
			assert.Equal(t, queries.CellPending, row.Cells[1].Kind)
		}
	})
}
