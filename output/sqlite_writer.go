package output

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"shopcatalog/catalog"
)

// SQLiteWriter writes a snapshot database. Existing snapshot tables in the
// file are dropped and recreated on every export.
type SQLiteWriter struct {
	now func() time.Time
}

var snapshotSchema = []string{
	`DROP TABLE IF EXISTS products;`,
	`DROP TABLE IF EXISTS categories;`,
	`CREATE TABLE categories (
	division TEXT NOT NULL,
	id TEXT NOT NULL,
	position INTEGER NOT NULL,
	name TEXT NOT NULL,
	PRIMARY KEY (division, id)
);`,
	`CREATE TABLE products (
	id TEXT NOT NULL,
	division TEXT NOT NULL,
	position INTEGER NOT NULL,
	sku TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	category TEXT NOT NULL,
	tag TEXT NOT NULL,
	badge TEXT NOT NULL DEFAULT '',
	price TEXT NOT NULL,
	bestseller INTEGER NOT NULL CHECK(bestseller IN (0, 1)),
	specs TEXT NOT NULL,
	features TEXT NOT NULL,
	images TEXT NOT NULL,
	image_url TEXT NOT NULL,
	language TEXT NOT NULL,
	exported_at TEXT NOT NULL,
	PRIMARY KEY (division, id)
);`,
}

func (w *SQLiteWriter) Write(path string, c catalog.Catalog, lang string) error {
	lang = catalog.NormalizeLanguage(lang)
	now := time.Now
	if w.now != nil {
		now = w.now
	}
	exportedAt := now().UTC().Format(time.RFC3339)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite db: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping sqlite db: %w", err)
	}
	for _, statement := range snapshotSchema {
		if _, err := db.Exec(statement); err != nil {
			return fmt.Errorf("create snapshot schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := insertCategories(tx, c, lang); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
INSERT INTO products (
	id, division, position, sku, name, description, category, tag, badge,
	price, bestseller, specs, features, images, image_url, language, exported_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`)
	if err != nil {
		return fmt.Errorf("prepare product insert: %w", err)
	}
	defer stmt.Close()

	for i, product := range c.Products {
		view := catalog.Project(product, lang)
		specs, features, images, err := encodeLists(view)
		if err != nil {
			return fmt.Errorf("encode product %s: %w", view.ID, err)
		}
		if _, err := stmt.Exec(
			view.ID, view.Division, i, view.SKU, view.Name, view.Description,
			view.Category, view.Tag, view.Badge, view.Price, boolToInt(view.Bestseller),
			specs, features, images, view.ImageURL, lang, exportedAt,
		); err != nil {
			return fmt.Errorf("insert product %s: %w", view.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

func insertCategories(tx *sql.Tx, c catalog.Catalog, lang string) error {
	divisions := make([]string, 0, len(c.Divisions))
	for id := range c.Divisions {
		divisions = append(divisions, id)
	}
	sort.Strings(divisions)

	for _, division := range divisions {
		for position, category := range c.Divisions[division].Categories {
			if _, err := tx.Exec(
				`INSERT INTO categories (division, id, position, name) VALUES (?, ?, ?, ?);`,
				division, category.ID, position, category.Name.In(lang),
			); err != nil {
				return fmt.Errorf("insert category %s/%s: %w", division, category.ID, err)
			}
		}
	}
	return nil
}

func encodeLists(view catalog.ProductView) (string, string, string, error) {
	encoded := make([]string, 0, 3)
	for _, list := range [][]string{view.Specs, view.Features, view.Images} {
		if list == nil {
			list = []string{}
		}
		data, err := json.Marshal(list)
		if err != nil {
			return "", "", "", err
		}
		encoded = append(encoded, string(data))
	}
	return encoded[0], encoded[1], encoded[2], nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
