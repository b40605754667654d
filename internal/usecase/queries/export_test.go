//go:build unit

package queries_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"bioinsight-quotes/internal/usecase/queries"
	"bioinsight-quotes/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// Walks the full reconciliation path: one ELISA kit line sent to two vendors,
// one offer in and one still pending, exported as CSV.
func TestWriteComparisonCSV(t *testing.T) {
	item, err := builder.NewQuoteItemBuilder().BuildDomain()
	require.NoError(t, err)

	vendorA := respondedView(t,
		builder.NewVendorRequestBuilder().WithItems(item).WithVendor("sales@vendor-a.example.com", "Vendor A"),
		builder.NewResponseItemBuilder(item.ID()).BuildView())
	vendorB := pendingView(t, builder.NewVendorRequestBuilder().WithItems(item).
		WithVendor("quotes@vendor-b.example.com", "Vendor B").
		WithNow(vendorA.CreatedAt.Add(time.Hour)))

	cmp := queries.BuildComparison([]*queries.VendorRequestView{vendorA, vendorB})

	var buf bytes.Buffer
	require.NoError(t, queries.WriteComparisonCSV(&buf, cmp))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	// vendor header, column labels, one data row
	require.Len(t, records, 3)

	vendorRow := records[0]
	assert.Equal(t, "Vendor A", vendorRow[6])
	assert.Equal(t, "Vendor B", vendorRow[9])

	labelRow := records[1]
	assert.Equal(t, []string{"No.", "Product", "Brand", "Catalog No.", "Qty", "Unit"}, labelRow[:6])
	assert.Equal(t, "Unit Price", labelRow[6])
	assert.Equal(t, "Lead Time (days)", labelRow[7])
	assert.Equal(t, "MOQ", labelRow[8])

	dataRow := records[2]
	assert.Equal(t, "1", dataRow[0])
	assert.Equal(t, "Human IL-6 ELISA Kit", dataRow[1])
	assert.Equal(t, "2", dataRow[4])
	assert.Equal(t, "kit", dataRow[5])
	assert.Equal(t, "420000 KRW", dataRow[6])
	assert.Equal(t, "7", dataRow[7])
	assert.Equal(t, "1", dataRow[8])
	assert.Equal(t, "(pending)", dataRow[9])
}

func TestWriteComparisonCSVNothingToExport(t *testing.T) {
	var buf bytes.Buffer
	err := queries.WriteComparisonCSV(&buf, queries.BuildComparison(nil))
	assert.ErrorIs(t, err, queries.ErrNothingToExport)
	assert.Zero(t, buf.Len())
}

func TestWriteComparisonXLSX(t *testing.T) {
	item, err := builder.NewQuoteItemBuilder().BuildDomain()
	require.NoError(t, err)

	vendorA := respondedView(t,
		builder.NewVendorRequestBuilder().WithItems(item),
		builder.NewResponseItemBuilder(item.ID()).BuildView())

	cmp := queries.BuildComparison([]*queries.VendorRequestView{vendorA})

	var buf bytes.Buffer
	require.NoError(t, queries.WriteComparisonXLSX(&buf, cmp))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Comparison")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Vendor A", rows[0][6])
	assert.Equal(t, "Human IL-6 ELISA Kit", rows[2][1])
	assert.Equal(t, "420000 KRW", rows[2][6])
}
