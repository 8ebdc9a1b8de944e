package importer

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"shopcatalog/catalog"
	"shopcatalog/vertical"
)

const (
	ColumnName        = "Name"
	ColumnCategory    = "Category"
	ColumnCategory2   = "Category (2)"
	ColumnDescription = "Description"
	ColumnPrice       = "Price"
	ColumnBadge       = "Badge"
	ColumnBadge2      = "Badge (2)"

	badgeSeparator = " · "
	skuMaxLength   = 20
)

// ImageColumns are read in this order; the first resolved image becomes the
// product's cover image.
var ImageColumns = []string{
	"ImageURL (Front)",
	"ImageURL (Back)",
	"ImageURL (Side)",
	"ImageURL 4",
	"ImageURL 5",
	"ImageURL 6",
}

var skuWhitespace = regexp.MustCompile(`[\s\x{000B}\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// Normalizer maps sheet rows of one vertical onto products.
type Normalizer struct {
	Vertical vertical.Config
}

func NewNormalizer(v vertical.Config) *Normalizer {
	return &Normalizer{Vertical: v}
}

// NormalizeAll normalizes rows in order; ids follow the row position.
func (n *Normalizer) NormalizeAll(rows []RawRow) []catalog.Product {
	products := make([]catalog.Product, len(rows))
	for i, row := range rows {
		products[i] = n.Normalize(row, i)
	}
	return products
}

// Normalize maps one row, at 0-based position index among accepted rows,
// onto a product. Missing columns read as empty cells.
func (n *Normalizer) Normalize(row RawRow, index int) catalog.Product {
	v := n.Vertical
	name := firstNonEmpty(row.Get(ColumnName), row.Get("name"))

	label := firstNonEmpty(row.Get(ColumnCategory), v.DefaultCategoryLabel)

	description := v.DefaultDescription
	if text := strings.TrimSpace(row.Get(ColumnDescription)); text != "" {
		description = catalog.Same(text)
	}

	badge := strings.TrimSpace(row.Get(ColumnBadge))
	images := n.images(row, name)

	return catalog.Product{
		ID:          fmt.Sprintf("%s-%d", v.IDPrefix, index+1),
		SKU:         SKU(name),
		Division:    v.ID,
		Name:        catalog.Same(name),
		Description: description,
		Category:    Classify(label, v.CategoryRules, v.DefaultCategory),
		Tags:        catalog.SameList([]string{label}),
		Badge:       composeBadge(badge, row.Get(ColumnBadge2)),
		Specs:       catalog.SameList(n.specs(row.Get(ColumnCategory2))),
		Features:    catalog.SameList(n.features(row)),
		Price:       firstNonEmpty(row.Get(ColumnPrice), catalog.PriceOnRequest),
		Images:      images,
		ImageURL:    images[0],
		Bestseller:  strings.Contains(strings.ToUpper(badge), "BEST"),
	}
}

// SKU derives the article number from a product name: whitespace runs become
// hyphens, letters are upper-cased and the result is cut to 20 characters.
// Long names sharing a prefix collide.
func SKU(name string) string {
	sku := cases.Upper(language.Und).String(skuWhitespace.ReplaceAllString(name, "-"))
	runes := []rune(sku)
	if len(runes) > skuMaxLength {
		runes = runes[:skuMaxLength]
	}
	return string(runes)
}

func composeBadge(badge, badge2 string) *catalog.LocalizedText {
	badge = strings.TrimSpace(badge)
	if badge == "" {
		return nil
	}
	if badge2 = strings.TrimSpace(badge2); badge2 != "" {
		badge = badge + badgeSeparator + badge2
	}
	text := catalog.Same(badge)
	return &text
}

func (n *Normalizer) specs(raw string) []string {
	specs := make([]string, 0, 4)
	for _, piece := range strings.Split(raw, ",") {
		if piece = strings.TrimSpace(piece); piece != "" {
			specs = append(specs, piece)
		}
	}
	if len(specs) == 0 {
		return []string{n.Vertical.DefaultSpec}
	}
	return specs
}

func (n *Normalizer) features(row RawRow) []string {
	features := make([]string, 0, len(n.Vertical.FeatureColumns))
	for _, column := range n.Vertical.FeatureColumns {
		if value := strings.TrimSpace(row.Get(column)); value != "" {
			features = append(features, value)
		}
	}
	if len(features) == 0 {
		return append([]string(nil), n.Vertical.DefaultFeatures...)
	}
	return features
}

func (n *Normalizer) images(row RawRow, name string) []string {
	images := make([]string, 0, len(ImageColumns))
	for _, column := range ImageColumns {
		if resolved := ResolveImageRef(row.Get(column)); resolved != "" {
			images = append(images, resolved)
		}
	}
	if len(images) == 0 {
		images = append(images, n.Vertical.Placeholder(name))
	}
	return images
}
