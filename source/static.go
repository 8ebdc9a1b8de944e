package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"shopcatalog/catalog"
)

// StaticSource reads a catalog document from the first candidate path that
// exists.
type StaticSource struct {
	Division string
	Paths    []string
}

// NewStaticSource searches every dir for "<division>-products.json" before
// "products.json". Extra paths are tried first.
func NewStaticSource(division string, dirs []string, extra ...string) *StaticSource {
	paths := make([]string, 0, len(extra)+2*len(dirs))
	for _, path := range extra {
		if path = strings.TrimSpace(path); path != "" {
			paths = append(paths, path)
		}
	}
	for _, dir := range dirs {
		paths = append(paths,
			filepath.Join(dir, division+"-products.json"),
			filepath.Join(dir, "products.json"),
		)
	}
	return &StaticSource{Division: division, Paths: paths}
}

// Load returns the catalog and the path it was read from. A file shared by
// several divisions is narrowed to Division; a file that only holds Division
// is returned as decoded.
func (s *StaticSource) Load() (catalog.Catalog, string, error) {
	for _, path := range s.Paths {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return catalog.Catalog{}, path, fmt.Errorf("read static catalog %s: %w", path, err)
		}

		var doc catalog.Catalog
		if err := json.Unmarshal(data, &doc); err != nil {
			return catalog.Catalog{}, path, fmt.Errorf("decode static catalog %s: %w", path, err)
		}
		doc = s.narrow(doc)
		if len(doc.Products) == 0 {
			return catalog.Catalog{}, path, fmt.Errorf("static catalog %s: %w", path, ErrNoRows)
		}
		return doc, path, nil
	}
	return catalog.Catalog{}, "", ErrNoStaticFile
}

func (s *StaticSource) narrow(doc catalog.Catalog) catalog.Catalog {
	if s.Division == "" {
		return doc
	}

	foreign := false
	for _, product := range doc.Products {
		if product.Division != s.Division {
			foreign = true
			break
		}
	}
	if !foreign {
		return doc
	}

	narrowed := catalog.Catalog{Products: doc.ProductsOf(s.Division)}
	if meta, ok := doc.Divisions[s.Division]; ok {
		narrowed.Divisions = map[string]catalog.DivisionMeta{s.Division: meta}
	}
	return narrowed
}
