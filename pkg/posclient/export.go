package posclient

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Export"

// WriteXLSX writes the rows of page as a single-sheet workbook, one column per
// entry of columns, with the column keys as the header row.
func WriteXLSX[T any](w io.Writer, columns []Column[T], page Page[T]) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheet, cell, col.Key); err != nil {
			return err
		}
		if err := f.SetCellStyle(exportSheet, cell, cell, headerStyle); err != nil {
			return err
		}
		colName, _ := excelize.ColumnNumberToName(i + 1)
		_ = f.SetColWidth(exportSheet, colName, colName, 24)
	}

	for r, item := range page.Items {
		for i, col := range columns {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			if err := f.SetCellValue(exportSheet, cell, col.Value(item)); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
