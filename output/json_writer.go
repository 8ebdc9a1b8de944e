package output

import (
	"encoding/json"
	"fmt"
	"os"

	"shopcatalog/catalog"
)

// JSONWriter writes the catalog document in both languages, in the shape
// the static fallback tier reads.
type JSONWriter struct{}

func (w *JSONWriter) Write(path string, c catalog.Catalog, _ string) error {
	if c.Divisions == nil {
		c.Divisions = map[string]catalog.DivisionMeta{}
	}
	if c.Products == nil {
		c.Products = []catalog.Product{}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write json output %s: %w", path, err)
	}
	return nil
}
