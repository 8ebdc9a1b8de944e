package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shopcatalog/catalog"
	"shopcatalog/vertical"
)

const (
	primaryURL  = "https://sheets.example/pub?gid=0&output=csv&single=true"
	fallbackURL = "https://sheets.example/export?format=csv&gid=0"

	workwearCSV = "Name,Category,Price,Badge\n" +
		"Arbeitsjacke Pro,Jacken,89 €,BESTSELLER\n" +
		"Latzhose,Hosen,,\n"
)

type response struct {
	text string
	err  error
}

// scriptedFetcher answers by URL and counts calls.
type scriptedFetcher struct {
	mu        sync.Mutex
	responses map[string]response
	calls     map[string]int
	gate      chan struct{}
	waiting   atomic.Int32
}

func newScriptedFetcher(responses map[string]response) *scriptedFetcher {
	return &scriptedFetcher{responses: responses, calls: map[string]int{}}
}

func (f *scriptedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.gate != nil {
		f.waiting.Add(1)
		select {
		case <-f.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
	r, ok := f.responses[url]
	if !ok {
		return "", errors.New("unexpected url " + url)
	}
	return r.text, r.err
}

func (f *scriptedFetcher) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

func newTestLoader(t *testing.T, fetcher Fetcher) *Loader {
	t.Helper()

	workwear, err := vertical.Lookup(vertical.Workwear)
	require.NoError(t, err)

	loader, err := NewLoader(LoaderConfig{
		Vertical:    workwear,
		PrimaryURL:  primaryURL,
		FallbackURL: fallbackURL,
		Fetcher:     fetcher,
	})
	require.NoError(t, err)
	return loader
}

func TestLoader_PrimarySuccess(t *testing.T) {
	t.Parallel()

	fetcher := newScriptedFetcher(map[string]response{primaryURL: {text: workwearCSV}})
	loader := newTestLoader(t, fetcher)
	require.Equal(t, StateIdle, loader.State())

	products := loader.Load(context.Background())
	require.Len(t, products, 2)
	require.Equal(t, "workwear-1", products[0].ID)
	require.Equal(t, "jackets", products[0].Category)
	require.Equal(t, catalog.PriceOnRequest, products[1].Price)

	require.Equal(t, StateDone, loader.State())
	require.Equal(t, OriginPrimary, loader.Origin())
	require.NoError(t, loader.LastError())
	require.Zero(t, fetcher.count(fallbackURL))
}

func TestLoader_CachesIdenticalSlice(t *testing.T) {
	t.Parallel()

	fetcher := newScriptedFetcher(map[string]response{primaryURL: {text: workwearCSV}})
	loader := newTestLoader(t, fetcher)

	first := loader.Load(context.Background())
	second := loader.Load(context.Background())

	require.NotEmpty(t, first)
	require.Same(t, &first[0], &second[0])
	require.Equal(t, 1, fetcher.count(primaryURL))
}

func TestLoader_InvalidateRefetches(t *testing.T) {
	t.Parallel()

	fetcher := newScriptedFetcher(map[string]response{primaryURL: {text: workwearCSV}})
	loader := newTestLoader(t, fetcher)

	loader.Load(context.Background())
	loader.Invalidate()
	require.Equal(t, StateIdle, loader.State())
	require.Equal(t, OriginNone, loader.Origin())

	loader.Load(context.Background())
	require.Equal(t, 2, fetcher.count(primaryURL))
}

func TestLoader_FallbackAfterTransportError(t *testing.T) {
	t.Parallel()

	fetcher := newScriptedFetcher(map[string]response{
		primaryURL:  {err: ErrTransport},
		fallbackURL: {text: workwearCSV},
	})
	loader := newTestLoader(t, fetcher)

	products := loader.Load(context.Background())
	require.Len(t, products, 2)
	require.Equal(t, OriginFallback, loader.Origin())
}

func TestLoader_EmptyPrimaryMovesToFallback(t *testing.T) {
	t.Parallel()

	fetcher := newScriptedFetcher(map[string]response{
		primaryURL:  {text: "  \n"},
		fallbackURL: {text: workwearCSV},
	})
	loader := newTestLoader(t, fetcher)

	require.Len(t, loader.Load(context.Background()), 2)
	require.Equal(t, OriginFallback, loader.Origin())
}

func TestLoader_FailuresReturnNil(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		responses map[string]response
		want      error
	}{
		{
			name:      "both endpoints down",
			responses: map[string]response{primaryURL: {err: ErrTransport}, fallbackURL: {err: ErrTransport}},
			want:      ErrTransport,
		},
		{
			name:      "primary serves a login page",
			responses: map[string]response{primaryURL: {text: "<!DOCTYPE html><html><title>Sign in</title></html>"}},
			want:      ErrHTMLDocument,
		},
		{
			name:      "header only",
			responses: map[string]response{primaryURL: {text: "Name,Price\n"}},
			want:      ErrNoRows,
		},
		{
			name:      "rows without names",
			responses: map[string]response{primaryURL: {text: "Name,Price\n,12\n"}},
			want:      ErrNoRows,
		},
		{
			name:      "empty fallback",
			responses: map[string]response{primaryURL: {err: ErrTransport}, fallbackURL: {text: ""}},
			want:      ErrEmptyBody,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loader := newTestLoader(t, newScriptedFetcher(tt.responses))
			require.Nil(t, loader.Load(context.Background()))
			require.ErrorIs(t, loader.LastError(), tt.want)
			require.Equal(t, StateDone, loader.State())
			require.Equal(t, OriginNone, loader.Origin())
		})
	}
}

func TestLoader_FailureIsNotCached(t *testing.T) {
	t.Parallel()

	fetcher := newScriptedFetcher(map[string]response{
		primaryURL:  {err: ErrTransport},
		fallbackURL: {err: ErrTransport},
	})
	loader := newTestLoader(t, fetcher)

	require.Nil(t, loader.Load(context.Background()))

	fetcher.mu.Lock()
	fetcher.responses[primaryURL] = response{text: workwearCSV}
	fetcher.mu.Unlock()

	require.Len(t, loader.Load(context.Background()), 2)
	require.Equal(t, 2, fetcher.count(primaryURL))
	require.NoError(t, loader.LastError())
}

func TestLoader_ConcurrentFirstCallsShareOneFetch(t *testing.T) {
	t.Parallel()

	fetcher := newScriptedFetcher(map[string]response{primaryURL: {text: workwearCSV}})
	fetcher.gate = make(chan struct{})
	loader := newTestLoader(t, fetcher)

	const callers = 8
	var started atomic.Int32
	results := make([][]catalog.Product, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			started.Add(1)
			results[i] = loader.Load(context.Background())
		}(i)
	}

	require.Eventually(t, func() bool { return started.Load() == callers }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(fetcher.gate)
	wg.Wait()

	require.Equal(t, 1, fetcher.count(primaryURL))
	for _, products := range results {
		require.Len(t, products, 2)
		require.Same(t, &results[0][0], &products[0])
	}
}

func TestResolver_FallbackChainEndsInStaticJSON(t *testing.T) {
	t.Parallel()

	fixture := `{
  "divisions": {"workwear": {"name": {"de": "Workwear", "en": "Workwear"}, "categories": [{"id": "jackets", "name": {"de": "Jacken", "en": "Jackets"}}]}},
  "products": [
    {"id": "workwear-101", "sku": "WW-101", "division": "workwear",
     "name": {"de": "Parka", "en": "Parka"}, "description": {"de": "Warm", "en": "Warm"},
     "category": "jackets", "tags": {"de": ["Jacken"], "en": ["Jackets"]}, "badge": null,
     "specs": {"de": ["Wasserdicht"], "en": ["Waterproof"]}, "features": {"de": ["Kapuze"], "en": ["Hood"]},
     "price": "Auf Anfrage", "images": ["https://img.example/parka.jpg"], "imageURL": "https://img.example/parka.jpg",
     "bestseller": false}
  ]
}`
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "workwear-products.json"), []byte(fixture), 0o644))

	fetcher := newScriptedFetcher(map[string]response{
		primaryURL:  {err: errors.New("network down")},
		fallbackURL: {text: "<!DOCTYPE html><html><head><title>Error 404</title></head></html>"},
	})
	loader := newTestLoader(t, fetcher)
	resolver := NewResolver(loader.vertical, loader, NewStaticSource(vertical.Workwear, []string{dir}), nil)

	result := resolver.Resolve(context.Background())

	require.Equal(t, OriginStatic, result.Origin)
	require.Equal(t, filepath.Join(dir, "workwear-products.json"), result.Path)
	require.ErrorIs(t, loader.LastError(), ErrHTMLDocument)

	require.Len(t, result.Catalog.Products, 1)
	product := result.Catalog.Products[0]
	require.Equal(t, "workwear-101", product.ID)
	require.Equal(t, "WW-101", product.SKU)
	require.Nil(t, product.Badge)
	require.Equal(t, []string{"Waterproof"}, product.Specs.EN)
	require.Equal(t, "Jacken", result.Catalog.Divisions[vertical.Workwear].Categories[0].Name.DE)
}

func TestResolver_HardcodedWhenEverythingFails(t *testing.T) {
	t.Parallel()

	fetcher := newScriptedFetcher(map[string]response{
		primaryURL:  {err: ErrTransport},
		fallbackURL: {err: ErrTransport},
	})
	loader := newTestLoader(t, fetcher)
	resolver := NewResolver(loader.vertical, loader, NewStaticSource(vertical.Workwear, []string{t.TempDir()}), nil)

	result := resolver.Resolve(context.Background())
	require.Equal(t, OriginHardcoded, result.Origin)
	require.Equal(t, loader.vertical.Hardcoded(), result.Catalog.Products)
	require.Contains(t, result.Catalog.Divisions, vertical.Workwear)
}

func TestResolver_SheetProductsCarryDivisionMeta(t *testing.T) {
	t.Parallel()

	loader := newTestLoader(t, newScriptedFetcher(map[string]response{primaryURL: {text: workwearCSV}}))
	resolver := NewResolver(loader.vertical, loader, nil, nil)

	result := resolver.Resolve(context.Background())
	require.Equal(t, OriginPrimary, result.Origin)
	require.Len(t, result.Catalog.Products, 2)
	require.Equal(t, loader.vertical.Meta(), result.Catalog.Divisions[vertical.Workwear])
}

func TestStaticSource_NarrowsSharedFile(t *testing.T) {
	t.Parallel()

	shared := `{"divisions": {}, "products": [
  {"id": "care-1", "division": "care", "images": ["x"], "imageURL": "x"},
  {"id": "merch-1", "division": "merch", "images": ["y"], "imageURL": "y"}
]}`
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte(shared), 0o644))

	doc, path, err := NewStaticSource(vertical.Merch, []string{dir}).Load()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "products.json"), path)
	require.Len(t, doc.Products, 1)
	require.Equal(t, "merch-1", doc.Products[0].ID)

	_, _, err = NewStaticSource(vertical.Tactical, []string{dir}).Load()
	require.ErrorIs(t, err, ErrNoRows)

	_, _, err = NewStaticSource(vertical.Tactical, []string{filepath.Join(dir, "missing")}).Load()
	require.ErrorIs(t, err, ErrNoStaticFile)
}

func TestStaticSource_RejectsBrokenJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "care.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, _, err := NewStaticSource(vertical.Care, nil, path).Load()
	require.ErrorContains(t, err, "decode static catalog")
}

func TestLoader_CallerCancelDoesNotFailSharedLoad(t *testing.T) {
	t.Parallel()

	fetcher := newScriptedFetcher(map[string]response{
		primaryURL:  {text: workwearCSV},
		fallbackURL: {text: workwearCSV},
	})
	fetcher.gate = make(chan struct{})
	loader := newTestLoader(t, fetcher)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan []catalog.Product, 1)
	go func() { first <- loader.Load(ctx) }()
	require.Eventually(t, func() bool { return fetcher.waiting.Load() == 1 }, time.Second, time.Millisecond)

	second := make(chan []catalog.Product, 1)
	go func() { second <- loader.Load(context.Background()) }()
	time.Sleep(20 * time.Millisecond)

	cancel()
	require.Nil(t, <-first)

	close(fetcher.gate)
	products := <-second
	require.Len(t, products, 2)
	require.NoError(t, loader.LastError())
	require.Equal(t, OriginPrimary, loader.Origin())
	require.Equal(t, 1, fetcher.count(primaryURL))
	require.Zero(t, fetcher.count(fallbackURL))
}

func TestLoader_InvalidateDuringLoadForcesRefetch(t *testing.T) {
	t.Parallel()

	fetcher := newScriptedFetcher(map[string]response{primaryURL: {text: workwearCSV}})
	fetcher.gate = make(chan struct{})
	loader := newTestLoader(t, fetcher)

	stale := make(chan []catalog.Product, 1)
	go func() { stale <- loader.Load(context.Background()) }()
	require.Eventually(t, func() bool { return fetcher.waiting.Load() == 1 }, time.Second, time.Millisecond)

	loader.Invalidate()
	require.Equal(t, StateIdle, loader.State())

	close(fetcher.gate)
	require.Len(t, <-stale, 2)
	require.Equal(t, StateIdle, loader.State())
	require.Equal(t, OriginNone, loader.Origin())

	products := loader.Load(context.Background())
	require.Len(t, products, 2)
	require.Equal(t, 2, fetcher.count(primaryURL))
	require.Equal(t, StateDone, loader.State())
	require.Equal(t, OriginPrimary, loader.Origin())
}
