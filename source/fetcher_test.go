package source

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeDoer struct {
	fn func(*http.Request) (*http.Response, error)
}

func (d fakeDoer) Do(req *http.Request) (*http.Response, error) {
	return d.fn(req)
}

func textResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"text/csv"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestHTTPFetcher_SendsUncachedGET(t *testing.T) {
	t.Parallel()

	fetcher := NewHTTPFetcher(FetcherConfig{
		UserAgent: "catalog-test",
		HTTPClient: fakeDoer{fn: func(r *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "no-cache", r.Header.Get("Cache-Control"))
			require.Equal(t, "catalog-test", r.Header.Get("User-Agent"))
			require.Contains(t, r.Header.Get("Accept"), "text/csv")
			return textResponse(http.StatusOK, "Name\nA\n"), nil
		}},
	})

	text, err := fetcher.Fetch(context.Background(), "https://sheets.example/pub?output=csv")
	require.NoError(t, err)
	require.Equal(t, "Name\nA\n", text)
}

func TestHTTPFetcher_StatusIsTransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTTPFetcher(FetcherConfig{}).Fetch(context.Background(), server.URL)
	require.ErrorIs(t, err, ErrTransport)
	require.ErrorContains(t, err, "HTTP 404")
}

func TestHTTPFetcher_NetworkErrorIsTransportError(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection refused")
	fetcher := NewHTTPFetcher(FetcherConfig{HTTPClient: fakeDoer{fn: func(*http.Request) (*http.Response, error) {
		return nil, boom
	}}})

	_, err := fetcher.Fetch(context.Background(), "https://sheets.example/pub")
	require.ErrorIs(t, err, ErrTransport)
	require.ErrorIs(t, err, boom)
}

func TestLooksLikeHTMLDocument(t *testing.T) {
	t.Parallel()

	require.True(t, LooksLikeHTMLDocument("<!DOCTYPE html><html></html>"))
	require.True(t, LooksLikeHTMLDocument("  \n<!doctype html>"))
	require.True(t, LooksLikeHTMLDocument("<HTML><body>login</body></HTML>"))
	require.False(t, LooksLikeHTMLDocument("Name,Price\n<b>bold</b>,1\n"))
	require.False(t, LooksLikeHTMLDocument(""))
}

func TestHTMLTitle(t *testing.T) {
	t.Parallel()

	page := "<!DOCTYPE html><html><head><title>\n  Google Sheets -\n Sign in </title></head><body></body></html>"
	require.Equal(t, "Google Sheets - Sign in", HTMLTitle(page))
	require.Equal(t, "", HTMLTitle("<!DOCTYPE html><html><body>x</body></html>"))
}

func TestHTTPFetcher_OversizedBodyIsTransportError(t *testing.T) {
	t.Parallel()

	fetcher := NewHTTPFetcher(FetcherConfig{HTTPClient: fakeDoer{fn: func(*http.Request) (*http.Response, error) {
		return textResponse(http.StatusOK, "Name\nAAAA\n"), nil
	}}})

	fetcher.maxBody = int64(len("Name\nAAAA\n"))
	text, err := fetcher.Fetch(context.Background(), "https://sheets.example/pub")
	require.NoError(t, err)
	require.Equal(t, "Name\nAAAA\n", text)

	fetcher.maxBody--
	_, err = fetcher.Fetch(context.Background(), "https://sheets.example/pub")
	require.ErrorIs(t, err, ErrTransport)
	require.ErrorContains(t, err, "exceeds")
}
