package importer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ExcelReader reads the first sheet of an .xlsx download of the product
// sheet. Blank rows are skipped like blank CSV lines.
type ExcelReader struct{}

func (r *ExcelReader) Read(path string) ([]RawRow, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open excel file %s: %w", path, err)
	}
	defer file.Close()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("excel file has no sheets: %s", path)
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read rows from sheet %s: %w", sheetName, err)
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		cells = append(cells, row)
	}
	return rowsFromCells(cells), nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
