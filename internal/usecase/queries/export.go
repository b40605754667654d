package queries

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"bioinsight-quotes/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

var ErrNothingToExport = errs.New("nothing to export")

var lineHeaders = []string{"No.", "Product", "Brand", "Catalog No.", "Qty", "Unit"}

const vendorColumnCount = 3

// exportRows flattens a comparison into a two-row header plus one row per
// snapshot line. The first header row names each vendor above its column
// group, the second labels the columns.
func exportRows(cmp *Comparison) ([][]string, error) {
	if len(cmp.Vendors) == 0 || len(cmp.Rows) == 0 {
		return nil, ErrNothingToExport
	}

	vendorRow := make([]string, len(lineHeaders), len(lineHeaders)+len(cmp.Vendors)*vendorColumnCount)
	labelRow := append([]string{}, lineHeaders...)
	for _, v := range cmp.Vendors {
		vendorRow = append(vendorRow, v.DisplayName, "", "")
		labelRow = append(labelRow, "Unit Price", "Lead Time (days)", "MOQ")
	}

	rows := make([][]string, 0, len(cmp.Rows)+2)
	rows = append(rows, vendorRow, labelRow)

	for _, row := range cmp.Rows {
		r := make([]string, 0, len(labelRow))
		r = append(r,
			strconv.Itoa(row.Line.LineNo),
			row.Line.ProductName,
			row.Line.Brand,
			row.Line.CatalogNo,
			strconv.Itoa(row.Line.Quantity),
			row.Line.Unit,
		)
		for _, cell := range row.Cells {
			r = append(r, cellColumns(cell)...)
		}
		rows = append(rows, r)
	}
	return rows, nil
}

func cellColumns(cell ResponseCell) []string {
	switch cell.Kind {
	case CellQuoted:
		moq := ""
		if cell.Item.MOQ != nil {
			moq = strconv.FormatInt(int64(*cell.Item.MOQ), 10)
		}
		price := fmt.Sprintf("%s %s", cell.Item.UnitPrice.String(), cell.Item.Currency)
		return []string{price, strconv.Itoa(cell.Item.LeadTimeDays), moq}
	case CellPending:
		return []string{"(pending)", "", ""}
	default:
		return []string{"(no response)", "", ""}
	}
}

// WriteComparisonCSV streams the comparison grid as CSV.
func WriteComparisonCSV(w io.Writer, cmp *Comparison) error {
	rows, err := exportRows(cmp)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return errs.Wrap(err, "failed to write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errs.Wrap(err, "failed to flush csv")
	}
	return nil
}

// WriteComparisonXLSX renders the comparison grid as a single-sheet workbook
// with the vendor header groups merged.
func WriteComparisonXLSX(w io.Writer, cmp *Comparison) error {
	rows, err := exportRows(cmp)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Comparison"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return errs.Wrap(err, "failed to create sheet")
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return errs.Wrap(err, "failed to drop default sheet")
	}

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errs.Wrap(err, "failed to build cell reference")
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cellRef, &values); err != nil {
			return errs.Wrap(err, "failed to write sheet row")
		}
	}

	for i := range cmp.Vendors {
		start := len(lineHeaders) + i*vendorColumnCount + 1
		from, err := excelize.CoordinatesToCellName(start, 1)
		if err != nil {
			return errs.Wrap(err, "failed to build merge start")
		}
		to, err := excelize.CoordinatesToCellName(start+vendorColumnCount-1, 1)
		if err != nil {
			return errs.Wrap(err, "failed to build merge end")
		}
		if err := f.MergeCell(sheet, from, to); err != nil {
			return errs.Wrap(err, "failed to merge vendor header")
		}
	}

	if err := f.Write(w); err != nil {
		return errs.Wrap(err, "failed to write workbook")
	}
	return nil
}
