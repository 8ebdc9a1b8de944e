package catalog

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	CategoryAll = "all"

	SortPopularity = "popularity"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
	SortNewest     = "newest"
)

// ViewOptions selects the active filter and sort order of a view.
type ViewOptions struct {
	Category string
	Sort     string
}

// CategoryCount is one entry of the category sidebar.
type CategoryCount struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ProductView is the single-language projection of a Product.
type ProductView struct {
	ID          string   `json:"id"`
	SKU         string   `json:"sku"`
	Division    string   `json:"division"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tag         string   `json:"tag"`
	Badge       string   `json:"badge,omitempty"`
	Specs       []string `json:"specs"`
	Features    []string `json:"features"`
	Price       string   `json:"price"`
	Images      []string `json:"images"`
	ImageURL    string   `json:"imageURL"`
	Bestseller  bool     `json:"bestseller"`
}

// View is everything the rendering layer needs for one division page.
type View struct {
	Division   string          `json:"division"`
	Language   string          `json:"language"`
	Title      string          `json:"title"`
	Total      int             `json:"total"`
	Shown      int             `json:"shown"`
	CountText  string          `json:"countText"`
	Category   string          `json:"category"`
	Sort       string          `json:"sort"`
	Categories []CategoryCount `json:"categories"`
	Products   []ProductView   `json:"products"`
}

// Assemble builds the view of one division. Only products of divisionID are
// considered; categories without products are left out of the sidebar. It
// does not modify its inputs.
func Assemble(products []Product, meta DivisionMeta, divisionID, lang string, options ViewOptions) View {
	lang = NormalizeLanguage(lang)
	category := strings.TrimSpace(options.Category)
	if category == "" {
		category = CategoryAll
	}
	sortMode := NormalizeSort(options.Sort)

	own := make([]Product, 0, len(products))
	for _, product := range products {
		if product.Division == divisionID {
			own = append(own, product)
		}
	}

	counts := make(map[string]int, len(meta.Categories))
	for _, product := range own {
		counts[product.Category]++
	}

	allName := LocalizedText{DE: "Alle Produkte", EN: "All Products"}
	categories := make([]CategoryCount, 0, len(meta.Categories)+1)
	categories = append(categories, CategoryCount{ID: CategoryAll, Name: allName.In(lang), Count: len(own)})
	for _, c := range meta.Categories {
		if counts[c.ID] == 0 {
			continue
		}
		categories = append(categories, CategoryCount{ID: c.ID, Name: c.Name.In(lang), Count: counts[c.ID]})
	}

	selected := own
	if category != CategoryAll {
		selected = make([]Product, 0, counts[category])
		for _, product := range own {
			if product.Category == category {
				selected = append(selected, product)
			}
		}
	}

	views := make([]ProductView, len(selected))
	for i, product := range selected {
		views[i] = Project(product, lang)
	}
	SortViews(views, sortMode, lang)

	title := meta.Name.In(lang)
	if category != CategoryAll {
		title = meta.CategoryName(category, lang)
	}

	return View{
		Division:   divisionID,
		Language:   lang,
		Title:      title,
		Total:      len(own),
		Shown:      len(views),
		CountText:  countText(len(views), len(own), lang),
		Category:   category,
		Sort:       sortMode,
		Categories: categories,
		Products:   views,
	}
}

// Project returns the lang projection of product. Slices are copied.
func Project(product Product, lang string) ProductView {
	view := ProductView{
		ID:          product.ID,
		SKU:         product.SKU,
		Division:    product.Division,
		Name:        product.Name.In(lang),
		Description: product.Description.In(lang),
		Category:    product.Category,
		Specs:       append([]string(nil), product.Specs.In(lang)...),
		Features:    append([]string(nil), product.Features.In(lang)...),
		Price:       product.Price,
		Images:      append([]string(nil), product.Images...),
		ImageURL:    product.ImageURL,
		Bestseller:  product.Bestseller,
	}
	if tags := product.Tags.In(lang); len(tags) > 0 {
		view.Tag = tags[0]
	}
	if product.Badge != nil {
		view.Badge = product.Badge.In(lang)
	}
	return view
}

// NormalizeSort maps unknown sort modes onto popularity, the default of the
// shop pages.
func NormalizeSort(mode string) string {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case SortNameAsc:
		return SortNameAsc
	case SortNameDesc:
		return SortNameDesc
	case SortNewest:
		return SortNewest
	default:
		return SortPopularity
	}
}

// SortViews orders views in place. Popularity puts products with a badge or
// bestseller flag first and otherwise keeps source order.
func SortViews(views []ProductView, mode, lang string) {
	switch mode {
	case SortNewest:
		return
	case SortNameAsc, SortNameDesc:
		collator := collate.New(languageTag(lang), collate.IgnoreCase)
		sort.SliceStable(views, func(i, j int) bool {
			cmp := collator.CompareString(views[i].Name, views[j].Name)
			if mode == SortNameDesc {
				return cmp > 0
			}
			return cmp < 0
		})
	default:
		sort.SliceStable(views, func(i, j int) bool {
			return featured(views[i]) && !featured(views[j])
		})
	}
}

func featured(view ProductView) bool {
	return view.Bestseller || view.Badge != ""
}

func languageTag(lang string) language.Tag {
	if lang == LangEN {
		return language.English
	}
	return language.German
}

func countText(shown, total int, lang string) string {
	if lang == LangEN {
		return fmt.Sprintf("%d of %d products", shown, total)
	}
	return fmt.Sprintf("%d von %d Produkten", shown, total)
}
