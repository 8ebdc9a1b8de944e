package output

import (
	"fmt"
	"strings"

	"shopcatalog/catalog"
)

// Writer exports a catalog. lang selects the projection for formats that
// hold a single language; JSON keeps both.
type Writer interface {
	Write(path string, c catalog.Catalog, lang string) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	case "sqlite", "db":
		return &SQLiteWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// Formats lists the accepted format names.
func Formats() []string {
	return []string{"csv", "excel", "json", "sqlite"}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
