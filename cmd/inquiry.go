package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"shopcatalog/inquiry"
	"shopcatalog/vertical"
)

var (
	inquiryVertical string
	inquiryProduct  string
	inquiryLang     string
)

var inquiryCmd = &cobra.Command{
	Use:   "inquiry",
	Short: "Raise a product inquiry and print the dispatched event.",
	Long: `Resolve the catalog of a vertical, look up the product and dispatch an
inquiry event. The event is logged and printed; nothing is sent elsewhere.`,
	Example: `
  shopcatalog inquiry --vertical workwear --product workwear-3 --lang de
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer func() { _ = a.logger.Sync() }()

		v, err := vertical.Lookup(inquiryVertical)
		if err != nil {
			return err
		}
		lang := a.language(inquiryLang)

		loaded, err := a.loadCatalog(cmd.Context(), v, lang, nil, "")
		if err != nil {
			return err
		}

		event, err := inquiry.NewEvent(inquiry.Request{ProductID: inquiryProduct, Language: lang}, loaded.Catalog.Products, time.Now())
		if err != nil {
			return err
		}

		dispatcher := inquiry.NewDispatcher()
		dispatcher.Subscribe(inquiry.LogHandler(a.logger))
		dispatcher.Subscribe(printInquiryHandler(cmd.OutOrStdout()))
		dispatcher.Dispatch(event)
		return nil
	},
}

func printInquiryHandler(w io.Writer) inquiry.Handler {
	return func(event inquiry.Event) {
		fmt.Fprintf(w, "Inquiry %s\n", event.ID)
		fmt.Fprintf(w, "  product:   %s (%s)\n", event.Product.Name.In(event.Language), event.Product.ID)
		fmt.Fprintf(w, "  sku:       %s\n", event.Product.SKU)
		fmt.Fprintf(w, "  division:  %s\n", event.Product.Division)
		fmt.Fprintf(w, "  price:     %s\n", event.Product.Price)
		fmt.Fprintf(w, "  requested: %s\n", event.RequestedAt.Format(time.RFC3339))
	}
}

func init() {
	rootCmd.AddCommand(inquiryCmd)

	inquiryCmd.Flags().StringVar(&inquiryVertical, "vertical", "", "Vertical id")
	inquiryCmd.Flags().StringVar(&inquiryProduct, "product", "", "Product id, e.g. workwear-3")
	inquiryCmd.Flags().StringVar(&inquiryLang, "lang", "", "Language de|en (default from config)")

	_ = inquiryCmd.MarkFlagRequired("vertical")
	_ = inquiryCmd.MarkFlagRequired("product")
}
