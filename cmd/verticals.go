package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"shopcatalog/catalog"
	"shopcatalog/vertical"
)

var verticalsLang string

var verticalsCmd = &cobra.Command{
	Use:   "verticals",
	Short: "List the shop verticals and their sheet endpoints.",
	Long: `List every built-in vertical with its categories and the primary and
fallback sheet URLs for the selected language. Endpoint overrides from the
config file are applied.`,
	Example: `
  # German endpoints
  shopcatalog verticals

  # English tab endpoints
  shopcatalog verticals --lang en
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		printVerticals(cmd.OutOrStdout(), a, a.language(verticalsLang))
		return nil
	},
}

func printVerticals(w io.Writer, a *app, lang string) {
	for _, v := range vertical.All() {
		primary, fallback := a.endpoints(v, lang)
		fmt.Fprintf(w, "%s: %s\n", v.ID, v.Name.In(lang))
		fmt.Fprintf(w, "  id prefix:  %s\n", v.IDPrefix)
		fmt.Fprintf(w, "  categories: %s\n", categoryList(v.Categories, lang))
		fmt.Fprintf(w, "  primary:    %s\n", primary)
		fmt.Fprintf(w, "  fallback:   %s\n", fallback)
	}
}

func categoryList(categories []catalog.Category, lang string) string {
	parts := make([]string, 0, len(categories))
	for _, category := range categories {
		parts = append(parts, fmt.Sprintf("%s (%s)", category.ID, category.Name.In(lang)))
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(verticalsCmd)

	verticalsCmd.Flags().StringVar(&verticalsLang, "lang", "", "Language de|en (default from config)")
}
