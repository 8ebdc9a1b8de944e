// Package vertical holds the per-shop configuration that drives the generic
// sheet pipeline. Each vertical is data: endpoints, category taxonomy,
// feature columns and default strings.
package vertical

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"shopcatalog/catalog"
)

// PlaceholderBase prefixes every synthesized placeholder image URL.
const PlaceholderBase = "https://via.placeholder.com/400x400/"

const (
	Tactical = "tactical"
	Care     = "care"
	Merch    = "merch"
	Workwear = "workwear"
)

// CategoryRule maps any of Keywords (matched as lower-case substrings of the
// raw category label) onto a category id.
type CategoryRule struct {
	ID       string
	Keywords []string
}

// Sheet locates the spreadsheet behind a vertical. Each language lives in
// its own tab, addressed by gid.
type Sheet struct {
	PublishedBase string
	SpreadsheetID string
	GIDs          map[string]string
}

type Config struct {
	ID       string
	IDPrefix string
	Name     catalog.LocalizedText

	Categories           []catalog.Category
	CategoryRules        []CategoryRule
	DefaultCategory      string
	DefaultCategoryLabel string

	// FeatureColumns are read in order; empty cells are skipped.
	FeatureColumns     []string
	DefaultFeatures    []string
	DefaultSpec        string
	DefaultDescription catalog.LocalizedText
	PlaceholderColors  [2]string

	Sheet    Sheet
	Fallback []catalog.Product
}

var registry = map[string]Config{
	Tactical: tactical,
	Care:     care,
	Merch:    merch,
	Workwear: workwear,
}

// Lookup returns the built-in vertical with the given id.
func Lookup(id string) (Config, error) {
	cfg, ok := registry[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Config{}, fmt.Errorf("unknown vertical %q (supported: %s)", id, strings.Join(IDs(), ", "))
	}
	return cfg, nil
}

// IDs lists the known vertical ids in alphabetical order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns every built-in vertical, ordered by id.
func All() []Config {
	out := make([]Config, 0, len(registry))
	for _, id := range IDs() {
		out = append(out, registry[id])
	}
	return out
}

func (c Config) gid(lang string) string {
	if gid, ok := c.Sheet.GIDs[catalog.NormalizeLanguage(lang)]; ok {
		return gid
	}
	return "0"
}

// PrimaryURL is the "publish to web" CSV endpoint for lang.
func (c Config) PrimaryURL(lang string) string {
	query := url.Values{}
	query.Set("gid", c.gid(lang))
	query.Set("single", "true")
	query.Set("output", "csv")
	return c.Sheet.PublishedBase + "?" + query.Encode()
}

// FallbackURL is the authenticated export endpoint of the same tab.
func (c Config) FallbackURL(lang string) string {
	query := url.Values{}
	query.Set("format", "csv")
	query.Set("gid", c.gid(lang))
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?%s", c.Sheet.SpreadsheetID, query.Encode())
}

// Meta returns the division metadata of the vertical.
func (c Config) Meta() catalog.DivisionMeta {
	categories := make([]catalog.Category, len(c.Categories))
	copy(categories, c.Categories)
	return catalog.DivisionMeta{Name: c.Name, Categories: categories}
}

// MetaFrom prefers the meta shipped with doc, which a static file may
// carry, over the vertical's own.
func (c Config) MetaFrom(doc catalog.Catalog) catalog.DivisionMeta {
	if meta, ok := doc.Divisions[c.ID]; ok && len(meta.Categories) > 0 {
		return meta
	}
	return c.Meta()
}

// HasCategory reports whether id is part of the vertical's enumeration.
func (c Config) HasCategory(id string) bool {
	for _, category := range c.Categories {
		if category.ID == id {
			return true
		}
	}
	return false
}

// Hardcoded returns the last-resort product set, never empty.
func (c Config) Hardcoded() []catalog.Product {
	out := make([]catalog.Product, len(c.Fallback))
	copy(out, c.Fallback)
	return out
}

// Catalog wraps products into a single-division catalog.
func (c Config) Catalog(products []catalog.Product) catalog.Catalog {
	return catalog.Catalog{
		Divisions: map[string]catalog.DivisionMeta{c.ID: c.Meta()},
		Products:  products,
	}
}

// Placeholder returns the image used when a product has no resolvable image.
func (c Config) Placeholder(name string) string {
	return fmt.Sprintf("%s%s/%s?text=%s", PlaceholderBase,
		c.PlaceholderColors[0], c.PlaceholderColors[1], escapeComponent(name))
}

// componentUnescaper restores the characters a browser's encodeURIComponent
// leaves as is, and encodes spaces as %20 instead of "+".
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(value string) string {
	return componentUnescaper.Replace(url.QueryEscape(value))
}
