package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopcatalog/catalog"
	"shopcatalog/importer"
	"shopcatalog/source"
	"shopcatalog/vertical"
)

// originFile marks a catalog read from local sheet exports given on the
// command line.
const originFile source.Origin = "file"

var (
	catalogVertical   string
	catalogLang       string
	catalogCategory   string
	catalogSort       string
	catalogFiles      []string
	catalogFileFormat string
	catalogJSON       bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load and print the catalog of one vertical.",
	Long: `Load the product sheet of a vertical and print the assembled catalog view.

The sheet is fetched from the published CSV endpoint first, then from the
export endpoint. When both fail the static JSON catalog is used, and finally
the built-in products. The tier that produced the catalog is printed with it.

With --file the live endpoints are skipped and the given CSV/Excel exports
of the sheet are read instead.`,
	Example: `
  # Workwear catalog in German, bestsellers first
  shopcatalog catalog --vertical workwear

  # English care catalog, only wound care, sorted by name
  shopcatalog catalog --vertical care --lang en --category wound-care --sort name-asc

  # Offline: read a downloaded sheet
  shopcatalog catalog --vertical merch --file ./merch.csv

  # Machine-readable output
  shopcatalog catalog --vertical tactical --json
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.logger.Sync() }()

		v, err := vertical.Lookup(catalogVertical)
		if err != nil {
			return err
		}
		lang := a.language(catalogLang)

		loaded, err := a.loadCatalog(cmd.Context(), v, lang, catalogFiles, catalogFileFormat)
		if err != nil {
			return err
		}

		view := catalog.Assemble(loaded.Catalog.Products, v.MetaFrom(loaded.Catalog), v.ID, lang, catalog.ViewOptions{
			Category: catalogCategory,
			Sort:     catalogSort,
		})
		if catalogJSON {
			return writeViewJSON(cmd.OutOrStdout(), view, loaded.Origin)
		}
		return printView(cmd.OutOrStdout(), view, loaded.Origin)
	},
}

// loadCatalog reads files when given, else resolves the vertical through its
// source tiers.
func (a *app) loadCatalog(ctx context.Context, v vertical.Config, lang string, files []string, format string) (source.Result, error) {
	if len(files) == 0 {
		if ctx == nil {
			ctx = context.Background()
		}
		return a.resolver(v, lang).Resolve(ctx), nil
	}

	result, err := importer.Run(files, format, v)
	if err != nil {
		return source.Result{}, err
	}
	a.logger.Info("sheet files read",
		zap.String("vertical", v.ID),
		zap.Int("files", result.FilesProcessed),
		zap.Int("rows", result.RowsRead),
		zap.Int("mapped", result.RowsMapped),
		zap.Int("skipped", result.RowsSkipped),
	)
	if len(result.Products) == 0 {
		return source.Result{}, fmt.Errorf("no products in %s", strings.Join(files, ", "))
	}
	return source.Result{Catalog: v.Catalog(result.Products), Origin: originFile}, nil
}

func printView(w io.Writer, view catalog.View, origin source.Origin) error {
	fmt.Fprintf(w, "%s (%s) - %s\n", view.Title, view.Language, view.CountText)
	fmt.Fprintf(w, "Source: %s, Category: %s, Sort: %s\n\n", origin, view.Category, view.Sort)

	fmt.Fprintln(w, "Categories:")
	for _, category := range view.Categories {
		fmt.Fprintf(w, "  %-24s %d\n", category.ID, category.Count)
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSKU\tNAME\tCATEGORY\tPRICE\tBADGE")
	for _, product := range view.Products {
		badge := product.Badge
		if product.Bestseller && badge == "" {
			badge = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			product.ID, product.SKU, product.Name, product.Category, product.Price, badge)
	}
	return tw.Flush()
}

func writeViewJSON(w io.Writer, view catalog.View, origin source.Origin) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(struct {
		Source source.Origin `json:"source"`
		catalog.View
	}{Source: origin, View: view})
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVar(&catalogVertical, "vertical", "", "Vertical id: "+strings.Join(vertical.IDs(), "|"))
	catalogCmd.Flags().StringVar(&catalogLang, "lang", "", "Language de|en (default from config)")
	catalogCmd.Flags().StringVar(&catalogCategory, "category", catalog.CategoryAll, "Category id filter")
	catalogCmd.Flags().StringVar(&catalogSort, "sort", catalog.SortPopularity, "Sort: popularity|name-asc|name-desc|newest")
	catalogCmd.Flags().StringArrayVar(&catalogFiles, "file", nil, "Local sheet export (CSV/Excel), repeatable; skips the live endpoints")
	catalogCmd.Flags().StringVar(&catalogFileFormat, "file-format", "", "Format of --file: csv|excel (inferred from extension)")
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "Print the view as JSON")

	_ = catalogCmd.MarkFlagRequired("vertical")
}
