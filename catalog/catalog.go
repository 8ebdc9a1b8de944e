package catalog

import (
	"strings"

	"golang.org/x/text/language"
)

const (
	LangDE = "de"
	LangEN = "en"

	// PriceOnRequest is shown instead of a price the sheet leaves blank.
	PriceOnRequest = "Auf Anfrage"
)

// LocalizedText carries one user-facing string per supported language.
type LocalizedText struct {
	DE string `json:"de"`
	EN string `json:"en"`
}

// Same returns a LocalizedText holding value for both languages.
func Same(value string) LocalizedText {
	return LocalizedText{DE: value, EN: value}
}

// In returns the text for lang; unknown languages resolve to German.
func (t LocalizedText) In(lang string) string {
	if NormalizeLanguage(lang) == LangEN {
		return t.EN
	}
	return t.DE
}

// LocalizedList is the list form of LocalizedText (tags, specs, features).
type LocalizedList struct {
	DE []string `json:"de"`
	EN []string `json:"en"`
}

// SameList returns a LocalizedList sharing values across both languages.
func SameList(values []string) LocalizedList {
	de := append([]string(nil), values...)
	en := append([]string(nil), values...)
	return LocalizedList{DE: de, EN: en}
}

func (l LocalizedList) In(lang string) []string {
	if NormalizeLanguage(lang) == LangEN {
		return l.EN
	}
	return l.DE
}

// Product is the normalized record consumed by the rendering layer. Records
// coming from the spreadsheet and from the static JSON share this shape.
type Product struct {
	ID          string         `json:"id"`
	SKU         string         `json:"sku"`
	Division    string         `json:"division"`
	Name        LocalizedText  `json:"name"`
	Description LocalizedText  `json:"description"`
	Category    string         `json:"category"`
	Tags        LocalizedList  `json:"tags"`
	Badge       *LocalizedText `json:"badge"`
	Specs       LocalizedList  `json:"specs"`
	Features    LocalizedList  `json:"features"`
	Price       string         `json:"price"`
	Images      []string       `json:"images"`
	ImageURL    string         `json:"imageURL"`
	Bestseller  bool           `json:"bestseller"`
}

type Category struct {
	ID   string        `json:"id"`
	Name LocalizedText `json:"name"`
}

// DivisionMeta describes one vertical: its display name and the fixed,
// ordered category enumeration.
type DivisionMeta struct {
	Name       LocalizedText `json:"name"`
	Categories []Category    `json:"categories"`
}

// CategoryName returns the localized name of the category id, or the id
// itself when the division does not know it.
func (m DivisionMeta) CategoryName(id, lang string) string {
	for _, category := range m.Categories {
		if category.ID == id {
			return category.Name.In(lang)
		}
	}
	return id
}

// Catalog is the document handed to the rendering layer and the shape of
// the static JSON fallback file.
type Catalog struct {
	Divisions map[string]DivisionMeta `json:"divisions"`
	Products  []Product               `json:"products"`
}

// ProductsOf returns the products belonging to division, in source order.
func (c Catalog) ProductsOf(division string) []Product {
	out := make([]Product, 0, len(c.Products))
	for _, product := range c.Products {
		if product.Division == division {
			out = append(out, product)
		}
	}
	return out
}

// FindProduct looks a product up by id.
func FindProduct(products []Product, id string) (Product, bool) {
	for _, product := range products {
		if product.ID == id {
			return product, true
		}
	}
	return Product{}, false
}

// NormalizeLanguage maps a language tag ("en", "en-GB", "de_AT") onto "de"
// or "en". Empty or unrecognized input yields German, the site's primary
// locale.
func NormalizeLanguage(lang string) string {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return LangDE
	}
	if base, _ := tag.Base(); base.String() == LangEN {
		return LangEN
	}
	return LangDE
}
