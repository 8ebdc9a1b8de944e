package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"shopcatalog/catalog"
)

// CategorySummary aggregates the products of one category.
type CategorySummary struct {
	Division      string
	Category      string
	Name          string
	Products      int
	Bestsellers   int
	Badged        int
	OnRequest     int
	Placeholders  int
	ImagesPerItem float64
}

// BuildCategorySummaries returns one summary per category of every division,
// in the division's category order. Categories without products are left
// out; products in a category the division does not list get their own row
// after the known ones.
func BuildCategorySummaries(c catalog.Catalog, lang string, placeholderPrefix string) []CategorySummary {
	type key struct{ division, category string }
	byKey := map[key]*CategorySummary{}
	order := make([]key, 0, 16)
	images := map[key]int{}

	for _, product := range c.Products {
		k := key{product.Division, product.Category}
		summary, ok := byKey[k]
		if !ok {
			meta := c.Divisions[product.Division]
			summary = &CategorySummary{
				Division: product.Division,
				Category: product.Category,
				Name:     meta.CategoryName(product.Category, lang),
			}
			byKey[k] = summary
			order = append(order, k)
		}

		summary.Products++
		if product.Bestseller {
			summary.Bestsellers++
		}
		if product.Badge != nil {
			summary.Badged++
		}
		if product.Price == catalog.PriceOnRequest {
			summary.OnRequest++
		}
		if placeholderPrefix != "" && len(product.Images) == 1 && strings.HasPrefix(product.Images[0], placeholderPrefix) {
			summary.Placeholders++
		}
		images[k] += len(product.Images)
	}

	rank := func(k key) int {
		for i, category := range c.Divisions[k.division].Categories {
			if category.ID == k.category {
				return i
			}
		}
		return len(c.Divisions[k.division].Categories)
	}

	sort.SliceStable(order, func(i, j int) bool {
		if order[i].division != order[j].division {
			return order[i].division < order[j].division
		}
		return rank(order[i]) < rank(order[j])
	})

	summaries := make([]CategorySummary, 0, len(order))
	for _, k := range order {
		summary := *byKey[k]
		summary.ImagesPerItem = float64(images[k]) / float64(summary.Products)
		summaries = append(summaries, summary)
	}
	return summaries
}

var summaryHeaders = []string{"Division", "Category", "Name", "Products", "Bestsellers", "Badged", "OnRequest", "Placeholders", "ImagesPerItem"}

func summaryRows(summaries []CategorySummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, []string{
			summary.Division,
			summary.Category,
			summary.Name,
			strconv.Itoa(summary.Products),
			strconv.Itoa(summary.Bestsellers),
			strconv.Itoa(summary.Badged),
			strconv.Itoa(summary.OnRequest),
			strconv.Itoa(summary.Placeholders),
			fmt.Sprintf("%.2f", summary.ImagesPerItem),
		})
	}
	return rows
}

// WriteCategorySummaries writes summaries as CSV or Excel.
func WriteCategorySummaries(path, format string, summaries []CategorySummary) error {
	switch normalizeFormat(format) {
	case "csv":
		return writeCSV(path, summaryHeaders, summaryRows(summaries))
	case "excel", "xlsx":
		return writeExcel(path, "Summary", summaryHeaders, summaryRows(summaries))
	default:
		return fmt.Errorf("unsupported summary format: %s", format)
	}
}
