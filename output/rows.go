package output

import (
	"strconv"
	"strings"

	"shopcatalog/catalog"
)

// productHeaders follow the product sheet layout, so a CSV export can be
// read back by the importer.
var productHeaders = []string{
	"ID",
	"SKU",
	"Division",
	"Name",
	"Category",
	"Category ID",
	"Category (2)",
	"Description",
	"Price",
	"Badge",
	"Bestseller",
	"Features",
	"ImageURL (Front)",
	"ImageURL (Back)",
	"ImageURL (Side)",
	"ImageURL 4",
	"ImageURL 5",
	"ImageURL 6",
}

const imageSlots = 6

func productRow(product catalog.Product, lang string) []string {
	view := catalog.Project(product, lang)
	row := []string{
		view.ID,
		view.SKU,
		view.Division,
		view.Name,
		view.Tag,
		view.Category,
		strings.Join(view.Specs, ", "),
		view.Description,
		view.Price,
		view.Badge,
		strconv.FormatBool(view.Bestseller),
		strings.Join(view.Features, " | "),
	}
	for i := 0; i < imageSlots; i++ {
		if i < len(view.Images) {
			row = append(row, view.Images[i])
		} else {
			row = append(row, "")
		}
	}
	return row
}
