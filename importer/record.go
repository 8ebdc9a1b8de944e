package importer

import (
	"strings"
)

// RawRow is one data line of the sheet keyed by the exact header text.
// Every row carries the full header key set; missing cells are "".
type RawRow struct {
	Row    int
	Values map[string]string
}

// Get returns the cell of column, or "" when the sheet has no such column.
func (r RawRow) Get(column string) string {
	return r.Values[column]
}

// HasName reports whether the row carries a product name under "Name" or
// "name". Rows without one are not products.
func (r RawRow) HasName() bool {
	return r.Get("Name") != "" || r.Get("name") != ""
}

// Rows turns CSV text into RawRows, keeping rows without a name.
func Rows(text string) []RawRow {
	return rowsFromCells(Tokenize(text))
}

// ParseRows turns CSV text into the RawRows that describe products.
func ParseRows(text string) []RawRow {
	return AcceptedRows(Rows(text))
}

// AcceptedRows drops rows without a name.
func AcceptedRows(rows []RawRow) []RawRow {
	out := make([]RawRow, 0, len(rows))
	for _, row := range rows {
		if row.HasName() {
			out = append(out, row)
		}
	}
	return out
}

func rowsFromCells(cells [][]string) []RawRow {
	if len(cells) < 2 {
		return nil
	}

	headers := make([]string, len(cells[0]))
	for i, header := range cells[0] {
		headers[i] = strings.TrimSpace(header)
	}

	rows := make([]RawRow, 0, len(cells)-1)
	for i, values := range cells[1:] {
		row := RawRow{Row: i + 1, Values: make(map[string]string, len(headers))}
		for col, header := range headers {
			if col < len(values) {
				row.Values[header] = strings.TrimSpace(values[col])
			} else {
				row.Values[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
