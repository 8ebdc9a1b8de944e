package source

import "errors"

// Failure classes of a load attempt. The loader never returns them; the most
// recent one is kept for diagnostics (see Loader.LastError).
var (
	ErrTransport    = errors.New("transport failure")
	ErrEmptyBody    = errors.New("empty response body")
	ErrHTMLDocument = errors.New("received an HTML document instead of CSV")
	ErrNoRows       = errors.New("no product rows")
	ErrNoStaticFile = errors.New("no static catalog file found")
)
