package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"shopcatalog/catalog"
	"shopcatalog/output"
	"shopcatalog/source"
	"shopcatalog/vertical"
)

var (
	exportVertical   string
	exportLang       string
	exportFormat     string
	exportMode       string
	exportOutput     string
	exportFiles      []string
	exportFileFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export resolved catalogs to CSV/Excel/JSON/SQLite",
	Long: `Export the catalog of one vertical, or of all verticals merged.

Modes:
- raw: one row per product (JSON keeps both languages and can be used as a static catalog file)
- summary: one row per category with product, bestseller, badge, on-request and placeholder counts

Output format can be selected explicitly via --format or inferred from --output extension.`,
	Example: `
  # Export the workwear catalog to CSV
  shopcatalog export --vertical workwear --output ./workwear.csv

  # Refresh the static fallback file of every vertical
  shopcatalog export --vertical all --output ./data/products.json

  # SQLite snapshot in English
  shopcatalog export --vertical care --lang en --output ./care.db

  # Category summary as Excel
  shopcatalog export --vertical all --mode summary --output ./summary.xlsx

  # Convert a downloaded sheet without touching the network
  shopcatalog export --vertical merch --file ./merch.xlsx --output ./merch.json
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if strings.TrimSpace(format) == "" {
			format = detectExportFormat(exportOutput)
		}

		selected, err := verticals(exportVertical)
		if err != nil {
			return err
		}
		if len(exportFiles) > 0 && len(selected) != 1 {
			return fmt.Errorf("--file requires a single --vertical")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.logger.Sync() }()
		lang := a.language(exportLang)

		merged, origins, err := a.collect(cmd.Context(), selected, lang, exportFiles, exportFileFormat)
		if err != nil {
			return err
		}
		for _, v := range selected {
			fmt.Printf("Vertical %s: %d products from %s\n", v.ID, len(merged.ProductsOf(v.ID)), origins[v.ID])
		}

		mode := strings.TrimSpace(strings.ToLower(exportMode))
		switch mode {
		case "", "raw":
			writer, writerErr := output.WriterForFormat(format)
			if writerErr != nil {
				return writerErr
			}
			if err := writer.Write(exportOutput, merged, lang); err != nil {
				return err
			}
			fmt.Printf("Export completed. Products: %d, Mode: raw, Format: %s, File: %s\n", len(merged.Products), format, exportOutput)
		case "summary":
			summaries := output.BuildCategorySummaries(merged, lang, vertical.PlaceholderBase)
			if err := output.WriteCategorySummaries(exportOutput, format, summaries); err != nil {
				return err
			}
			fmt.Printf("Export completed. Categories: %d, Mode: summary, Format: %s, File: %s\n", len(summaries), format, exportOutput)
		default:
			return fmt.Errorf("unsupported export mode: %s (supported: raw, summary)", exportMode)
		}
		return nil
	},
}

// collect resolves every vertical and merges the results into one catalog.
func (a *app) collect(ctx context.Context, selected []vertical.Config, lang string, files []string, fileFormat string) (catalog.Catalog, map[string]source.Origin, error) {
	merged := catalog.Catalog{Divisions: make(map[string]catalog.DivisionMeta, len(selected))}
	origins := make(map[string]source.Origin, len(selected))

	for _, v := range selected {
		loaded, err := a.loadCatalog(ctx, v, lang, files, fileFormat)
		if err != nil {
			return catalog.Catalog{}, nil, fmt.Errorf("%s: %w", v.ID, err)
		}
		merged.Divisions[v.ID] = v.MetaFrom(loaded.Catalog)
		merged.Products = append(merged.Products, loaded.Catalog.ProductsOf(v.ID)...)
		origins[v.ID] = loaded.Origin
	}
	return merged, origins, nil
}

func detectExportFormat(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "csv":
		return "csv"
	case "xlsx", "xlsm", "xls":
		return "excel"
	case "json":
		return "json"
	case "db", "sqlite", "sqlite3":
		return "sqlite"
	default:
		return "csv"
	}
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportVertical, "vertical", "all", "Vertical id or all")
	exportCmd.Flags().StringVar(&exportLang, "lang", "", "Language for single-language formats de|en (default from config)")
	exportCmd.Flags().StringVar(&exportMode, "mode", "raw", "Export mode: raw|summary")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: "+strings.Join(output.Formats(), "|")+" (optional, inferred from output extension)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path")
	exportCmd.Flags().StringArrayVar(&exportFiles, "file", nil, "Local sheet export (CSV/Excel), repeatable; requires a single --vertical")
	exportCmd.Flags().StringVar(&exportFileFormat, "file-format", "", "Format of --file: csv|excel (inferred from extension)")

	_ = exportCmd.MarkFlagRequired("output")
}
