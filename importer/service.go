package importer

import (
	"shopcatalog/catalog"
	"shopcatalog/vertical"
)

type Result struct {
	FilesProcessed int
	RowsRead       int
	RowsMapped     int
	RowsSkipped    int
	Products       []catalog.Product
}

// Run reads local sheet exports of one vertical and normalizes their rows.
// Product ids continue across files so they stay unique within the result.
func Run(paths []string, format string, v vertical.Config) (*Result, error) {
	result := &Result{Products: make([]catalog.Product, 0, 128)}
	normalizer := NewNormalizer(v)

	for _, path := range paths {
		sourceFormat, err := InferFormat(path, format)
		if err != nil {
			return nil, err
		}
		reader, err := ReaderForFormat(sourceFormat)
		if err != nil {
			return nil, err
		}

		rows, err := reader.Read(path)
		if err != nil {
			return nil, err
		}

		result.FilesProcessed++
		result.RowsRead += len(rows)
		for _, row := range rows {
			if !row.HasName() {
				result.RowsSkipped++
				continue
			}
			result.Products = append(result.Products, normalizer.Normalize(row, result.RowsMapped))
			result.RowsMapped++
		}
	}

	return result, nil
}
