package output

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// IndexWorkbookFile is the workbook rendition of the consolidated index.
const IndexWorkbookFile = "index.xlsx"

func colName(n int) string {
	// 1-indexed: 1 -> A, 26 -> Z, 27 -> AA
	if n <= 0 {
		return ""
	}
	out := ""
	for n > 0 {
		n--
		out = string(rune('A'+(n%26))) + out
		n /= 26
	}
	return out
}

// ExportIndexXLSX writes index.xlsx into reportDir with the same header, row
// order, and 6-decimal probability formatting as index.csv. IDs and roll counts
// are numeric cells; probabilities are written as fixed-format strings matching
// the CSV fields.
func ExportIndexXLSX(reportDir string, rows []Row) (string, error) {
	SortForIndex(rows)

	f := excelize.NewFile()
	sheet := "Sheet1"

	for i, h := range Header {
		f.SetCellValue(sheet, fmt.Sprintf("%s1", colName(i+1)), h)
	}

	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", r), row.AwardID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", r), row.PackID)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", r), row.ItemID)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", r), row.Name)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", r), row.Rolls)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", r), strconv.FormatFloat(row.InPool, 'f', 6, 64))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", r), strconv.FormatFloat(row.Trigger, 'f', 6, 64))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", r), strconv.FormatFloat(row.Final, 'f', 6, 64))
	}

	path := filepath.Join(reportDir, IndexWorkbookFile)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}
