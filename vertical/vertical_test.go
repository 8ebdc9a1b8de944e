package vertical

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shopcatalog/catalog"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	cfg, err := Lookup(" Workwear ")
	require.NoError(t, err)
	require.Equal(t, Workwear, cfg.ID)

	_, err = Lookup("garden")
	require.ErrorContains(t, err, "unknown vertical")

	require.Equal(t, []string{Care, Merch, Tactical, Workwear}, IDs())
	require.Len(t, All(), 4)
}

func TestBuiltinsAreConsistent(t *testing.T) {
	t.Parallel()

	for _, cfg := range All() {
		require.True(t, cfg.HasCategory(cfg.DefaultCategory), "%s default category", cfg.ID)
		for _, rule := range cfg.CategoryRules {
			require.True(t, cfg.HasCategory(rule.ID), "%s rule %s", cfg.ID, rule.ID)
			require.NotEmpty(t, rule.Keywords)
		}
		require.NotEmpty(t, cfg.DefaultFeatures, cfg.ID)
		require.NotEmpty(t, cfg.DefaultSpec, cfg.ID)
		require.NotEmpty(t, cfg.DefaultCategoryLabel, cfg.ID)
		require.NotEmpty(t, cfg.DefaultDescription.DE, cfg.ID)
		require.NotEmpty(t, cfg.DefaultDescription.EN, cfg.ID)
	}
}

func TestHardcodedProductsAreValid(t *testing.T) {
	t.Parallel()

	for _, cfg := range All() {
		products := cfg.Hardcoded()
		require.NotEmpty(t, products, cfg.ID)

		seen := map[string]bool{}
		for _, product := range products {
			require.False(t, seen[product.ID], "duplicate id %s", product.ID)
			seen[product.ID] = true

			require.Equal(t, cfg.ID, product.Division)
			require.True(t, cfg.HasCategory(product.Category), "%s: %s", product.ID, product.Category)
			require.NotEmpty(t, product.Images)
			require.Equal(t, product.Images[0], product.ImageURL)
			require.NotEmpty(t, product.Specs.DE)
			require.NotEmpty(t, product.Features.EN)
			require.Equal(t, catalog.PriceOnRequest, product.Price)
		}
	}
}

func TestHardcodedReturnsCopy(t *testing.T) {
	t.Parallel()

	cfg, err := Lookup(Merch)
	require.NoError(t, err)

	products := cfg.Hardcoded()
	products[0].ID = "changed"
	require.Equal(t, "merch-001", cfg.Hardcoded()[0].ID)
}

func TestURLs(t *testing.T) {
	t.Parallel()

	cfg, err := Lookup(Care)
	require.NoError(t, err)

	require.Equal(t, cfg.Sheet.PublishedBase+"?gid=873031282&output=csv&single=true", cfg.PrimaryURL("en"))
	require.Equal(t, cfg.Sheet.PublishedBase+"?gid=0&output=csv&single=true", cfg.PrimaryURL("de"))
	require.Equal(t,
		"https://docs.google.com/spreadsheets/d/1RftTJx43RBUQyOBjLJE-zEarNmVlFSJs7m0FSoDuJNA/export?format=csv&gid=0",
		cfg.FallbackURL("fr"))
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	cfg, err := Lookup(Tactical)
	require.NoError(t, err)

	require.Equal(t, "https://via.placeholder.com/400x400/1a1a1a/ff6b35?text=Plate%20Carrier%20%26%20Co", cfg.Placeholder("Plate Carrier & Co"))
	require.Equal(t, "https://via.placeholder.com/400x400/1a1a1a/ff6b35?text=Hose%20(Pro)%20'X'!*~%2B%2F%25", cfg.Placeholder("Hose (Pro) 'X'!*~+/%"))
}

func TestCatalogWrapsMeta(t *testing.T) {
	t.Parallel()

	cfg, err := Lookup(Workwear)
	require.NoError(t, err)

	c := cfg.Catalog(cfg.Hardcoded())
	require.Contains(t, c.Divisions, Workwear)
	require.Equal(t, "CKP Workwear", c.Divisions[Workwear].Name.EN)
	require.Len(t, c.ProductsOf(Workwear), 3)
}

func TestMetaFromPrefersShippedCategories(t *testing.T) {
	t.Parallel()

	cfg, err := Lookup(Merch)
	require.NoError(t, err)

	require.Equal(t, cfg.Meta(), cfg.MetaFrom(catalog.Catalog{}))

	shipped := catalog.DivisionMeta{
		Name:       catalog.Same("Fan Shop"),
		Categories: []catalog.Category{{ID: "clothing", Name: catalog.Same("Textil")}},
	}
	doc := catalog.Catalog{Divisions: map[string]catalog.DivisionMeta{Merch: shipped}}
	require.Equal(t, shipped, cfg.MetaFrom(doc))

	doc.Divisions[Merch] = catalog.DivisionMeta{Name: catalog.Same("Empty")}
	require.Equal(t, cfg.Meta(), cfg.MetaFrom(doc))
}
