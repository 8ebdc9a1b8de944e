package importer

import (
	"fmt"
	"os"
)

// CSVReader reads a downloaded sheet export with the same tolerant
// tokenizer used for the live endpoints.
type CSVReader struct{}

func (r *CSVReader) Read(path string) ([]RawRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv file %s: %w", path, err)
	}
	return Rows(string(data)), nil
}
