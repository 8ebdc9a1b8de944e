package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"shopcatalog/catalog"
	"shopcatalog/inquiry"
	"shopcatalog/source"
	"shopcatalog/vertical"
)

const merchCSV = "Name,Category,Price,Badge\n" +
	"CKP Hoodie,Hoodie,49 €,BESTSELLER\n" +
	"Aufkleber Set,Sticker,,\n" +
	"Kugelschreiber,Stift,3 €,\n"

// countingFetcher serves text for every URL, or fails when text is empty.
type countingFetcher struct {
	mu    sync.Mutex
	text  string
	calls int
}

func (f *countingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.text == "" {
		return "", source.ErrTransport
	}
	return f.text, nil
}

func (f *countingFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestServer(t *testing.T, fetcher source.Fetcher, dispatcher *inquiry.Dispatcher) *httptest.Server {
	t.Helper()

	factory := func(v vertical.Config, lang string) *source.Resolver {
		loader, err := source.NewLoader(source.LoaderConfig{Vertical: v, Language: lang, Fetcher: fetcher})
		require.NoError(t, err)
		return source.NewResolver(v, loader, nil, nil)
	}

	ts := httptest.NewServer(NewServer(Options{Resolvers: factory, Dispatcher: dispatcher}))
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func postJSON(t *testing.T, url, body string, out any) int {
	t.Helper()

	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestServer_ListsVerticals(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, &countingFetcher{}, nil)

	var verticals []verticalResponse
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/verticals?lang=en", &verticals))
	require.Len(t, verticals, 4)
	require.Equal(t, vertical.Care, verticals[0].ID)
	require.Equal(t, "CKP Care", verticals[0].Name)
	require.Contains(t, verticals[0].PrimaryURL, "gid=873031282")
}

func TestServer_CatalogFromSheetIsLoadedOnce(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{text: merchCSV}
	ts := newTestServer(t, fetcher, nil)

	var view catalogResponse
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/verticals/merch/catalog?lang=de", &view))
	require.Equal(t, source.OriginPrimary, view.Source)
	require.Equal(t, 3, view.Total)
	require.Equal(t, "3 von 3 Produkten", view.CountText)
	require.Equal(t, "merch-1", view.Products[0].ID)
	require.True(t, view.Products[0].Bestseller)

	var filtered catalogResponse
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/verticals/merch/catalog?lang=de&category=stickers&sort=name-asc", &filtered))
	require.Equal(t, 1, filtered.Shown)
	require.Equal(t, "Aufkleber", filtered.Title)
	require.Equal(t, catalog.PriceOnRequest, filtered.Products[0].Price)

	require.Equal(t, 1, fetcher.count())
}

func TestServer_CatalogFallsBackToBuiltinProducts(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, &countingFetcher{}, nil)

	var view catalogResponse
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/verticals/workwear/catalog?lang=en", &view))
	require.Equal(t, source.OriginHardcoded, view.Source)
	require.Equal(t, 3, view.Total)
	require.Equal(t, "Work Trousers X-Pro Stretch", view.Products[0].Name)
}

func TestServer_Product(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, &countingFetcher{text: merchCSV}, nil)

	var product productResponse
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/verticals/merch/products/merch-3?lang=en", &product))
	require.Equal(t, "Kugelschreiber", product.Product.Name)
	require.Equal(t, "stationery", product.Product.Category)

	var failure errorResponse
	require.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/verticals/merch/products/merch-99", &failure))
	require.Equal(t, "unknown_product", failure.Error)

	require.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/api/verticals/garden/products/merch-1", &failure))
	require.Equal(t, "unknown_vertical", failure.Error)
}

func TestServer_InquiryDispatchesEvent(t *testing.T) {
	t.Parallel()

	dispatcher := inquiry.NewDispatcher()
	var mu sync.Mutex
	var events []inquiry.Event
	dispatcher.Subscribe(func(e inquiry.Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, e)
	})

	ts := newTestServer(t, &countingFetcher{text: merchCSV}, dispatcher)

	var accepted inquiryResponse
	status := postJSON(t, ts.URL+"/api/verticals/merch/inquiries", `{"productId":"merch-1","language":"en"}`, &accepted)
	require.Equal(t, http.StatusAccepted, status)
	require.Equal(t, "merch-1", accepted.ProductID)
	require.Equal(t, 1, accepted.Delivered)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, events, 1)
	require.Equal(t, accepted.ID, events[0].ID.String())
	require.Equal(t, "CKP Hoodie", events[0].Product.Name.EN)
	require.Equal(t, "en", events[0].Language)
}

func TestServer_InquiryRejectsBadInput(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, &countingFetcher{text: merchCSV}, nil)
	url := ts.URL + "/api/verticals/merch/inquiries"

	var failure errorResponse
	require.Equal(t, http.StatusBadRequest, postJSON(t, url, `{"productId":"merch-1","language":"fr"}`, &failure))
	require.Equal(t, "invalid_inquiry", failure.Error)

	require.Equal(t, http.StatusBadRequest, postJSON(t, url, `{"productId":"merch-1","language":"de","extra":1}`, &failure))
	require.Equal(t, "invalid_json", failure.Error)

	require.Equal(t, http.StatusNotFound, postJSON(t, url, `{"productId":"merch-42","language":"de"}`, &failure))
	require.Equal(t, "unknown_product", failure.Error)
}

func TestServer_RefreshInvalidatesLoadedCatalogs(t *testing.T) {
	t.Parallel()

	fetcher := &countingFetcher{text: merchCSV}
	ts := newTestServer(t, fetcher, nil)

	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/verticals/merch/catalog?lang=de", nil))
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/verticals/merch/catalog?lang=en", nil))
	require.Equal(t, 2, fetcher.count())

	var refreshed refreshResponse
	require.Equal(t, http.StatusOK, postJSON(t, ts.URL+"/api/verticals/merch/refresh", "", &refreshed))
	require.Equal(t, 2, refreshed.Invalidated)

	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/verticals/merch/catalog?lang=de", nil))
	require.Equal(t, 3, fetcher.count())
}

func TestServer_UnknownRoute(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, &countingFetcher{}, nil)

	var failure errorResponse
	require.Equal(t, http.StatusNotFound, getJSON(t, ts.URL+"/nope", &failure))
	require.Equal(t, "not_found", failure.Error)
}

func TestDecodeJSON_RejectsTrailingData(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"productId":"a"} {}`))
	var body inquiryRequest
	require.ErrorContains(t, decodeJSON(req, &body), "single JSON object")
}
