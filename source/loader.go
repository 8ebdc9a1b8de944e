// Package source loads a vertical's products from its remote sheet, with a
// static JSON file and built-in products as the outer fallbacks.
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"shopcatalog/catalog"
	"shopcatalog/importer"
	"shopcatalog/internal/logging"
	"shopcatalog/vertical"
)

var tracer = otel.Tracer("shopcatalog/source")

const loadKey = "load"

type State string

const (
	StateIdle             State = "idle"
	StateFetchingPrimary  State = "fetching-primary"
	StateFetchingFallback State = "fetching-fallback"
	StateValidating       State = "validating"
	StateDone             State = "done"
)

// Origin names the tier a catalog was taken from.
type Origin string

const (
	OriginNone      Origin = "none"
	OriginPrimary   Origin = "primary"
	OriginFallback  Origin = "fallback"
	OriginStatic    Origin = "static"
	OriginHardcoded Origin = "hardcoded"
)

type LoaderConfig struct {
	Vertical vertical.Config
	// Language selects the sheet tab. Empty means German.
	Language string
	// PrimaryURL and FallbackURL override the vertical's endpoints.
	PrimaryURL  string
	FallbackURL string
	Fetcher     Fetcher
	Logger      *zap.Logger
}

// Loader fetches and normalizes the sheet of one vertical. The first
// successful result is cached and returned by every later call until
// Invalidate. Failed attempts are not cached. A load that was in flight
// when Invalidate ran does not touch the cache or state afterwards.
type Loader struct {
	vertical    vertical.Config
	primaryURL  string
	fallbackURL string
	fetcher     Fetcher
	logger      *zap.Logger
	group       singleflight.Group

	mu         sync.Mutex
	generation uint64
	state      State
	origin     Origin
	cache      []catalog.Product
	lastErr    error
}

func NewLoader(cfg LoaderConfig) (*Loader, error) {
	if strings.TrimSpace(cfg.Vertical.ID) == "" {
		return nil, errors.New("loader requires a vertical")
	}

	primaryURL := strings.TrimSpace(cfg.PrimaryURL)
	if primaryURL == "" {
		primaryURL = cfg.Vertical.PrimaryURL(cfg.Language)
	}
	fallbackURL := strings.TrimSpace(cfg.FallbackURL)
	if fallbackURL == "" {
		fallbackURL = cfg.Vertical.FallbackURL(cfg.Language)
	}

	fetcher := cfg.Fetcher
	if fetcher == nil {
		fetcher = NewHTTPFetcher(FetcherConfig{})
	}

	return &Loader{
		vertical:    cfg.Vertical,
		primaryURL:  primaryURL,
		fallbackURL: fallbackURL,
		fetcher:     fetcher,
		logger:      logging.OrNop(cfg.Logger).With(zap.String("vertical", cfg.Vertical.ID)),
		state:       StateIdle,
		origin:      OriginNone,
	}, nil
}

// Load returns the vertical's products, or nil when neither sheet endpoint
// produced usable data or ctx ended first. Concurrent calls share one fetch,
// which is not cancelled when a single caller gives up.
func (l *Loader) Load(ctx context.Context) []catalog.Product {
	if products := l.cached(); products != nil {
		return products
	}

	shared := context.WithoutCancel(ctx)
	ch := l.group.DoChan(loadKey, func() (any, error) {
		return l.load(shared), nil
	})

	select {
	case <-ctx.Done():
		return nil
	case result := <-ch:
		products, _ := result.Val.([]catalog.Product)
		return products
	}
}

// Invalidate drops the cached products; the next Load fetches again.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	l.generation++
	l.cache = nil
	l.origin = OriginNone
	l.state = StateIdle
	l.mu.Unlock()

	l.group.Forget(loadKey)
}

func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Origin reports which endpoint the cached products came from.
func (l *Loader) Origin() Origin {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.origin
}

// LastError returns the failure of the most recent attempt, nil after a
// success.
func (l *Loader) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

func (l *Loader) URLs() (primary, fallback string) {
	return l.primaryURL, l.fallbackURL
}

func (l *Loader) cached() []catalog.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache
}

// begin returns the current generation and the cached products, if any.
func (l *Loader) begin() (uint64, []catalog.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation, l.cache
}

// setState applies state only while generation is current.
func (l *Loader) setState(generation uint64, state State) {
	l.mu.Lock()
	if l.generation == generation {
		l.state = state
	}
	l.mu.Unlock()
}

func (l *Loader) load(ctx context.Context) []catalog.Product {
	generation, cached := l.begin()
	// A call that lost the race against a finished load sees its result here.
	if cached != nil {
		return cached
	}

	l.setState(generation, StateFetchingPrimary)
	origin := OriginPrimary
	text, err := l.fetch(ctx, OriginPrimary, l.primaryURL)
	if err != nil {
		l.setState(generation, StateFetchingFallback)
		origin = OriginFallback
		text, err = l.fetch(ctx, OriginFallback, l.fallbackURL)
		if err != nil {
			return l.fail(generation, err)
		}
	}

	l.setState(generation, StateValidating)
	products, err := l.parse(text)
	if err != nil {
		l.logger.Warn("sheet data rejected", zap.String("tier", string(origin)), zap.Error(err))
		return l.fail(generation, err)
	}

	l.mu.Lock()
	if l.generation != generation {
		l.mu.Unlock()
		l.logger.Info("sheet load superseded by invalidate", zap.String("tier", string(origin)))
		return products
	}
	l.cache = products
	l.origin = origin
	l.state = StateDone
	l.lastErr = nil
	l.mu.Unlock()

	l.logger.Info("sheet loaded", zap.String("tier", string(origin)), zap.Int("products", len(products)))
	return products
}

func (l *Loader) fetch(ctx context.Context, tier Origin, url string) (string, error) {
	ctx, span := tracer.Start(ctx, "source.fetch."+string(tier), trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("vertical", l.vertical.ID),
		attribute.String("tier", string(tier)),
		attribute.String("url.full", url),
	)

	text, err := l.fetcher.Fetch(ctx, url)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyBody
	}
	if err != nil {
		err = fmt.Errorf("%s sheet: %w", tier, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		l.logger.Warn("sheet fetch failed", zap.String("tier", string(tier)), zap.String("url", url), zap.Error(err))
		return "", err
	}
	return text, nil
}

func (l *Loader) parse(text string) ([]catalog.Product, error) {
	if LooksLikeHTMLDocument(text) {
		if title := HTMLTitle(text); title != "" {
			return nil, fmt.Errorf("%w (page title %q)", ErrHTMLDocument, title)
		}
		return nil, ErrHTMLDocument
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyBody
	}

	rows := importer.ParseRows(text)
	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return importer.NewNormalizer(l.vertical).NormalizeAll(rows), nil
}

func (l *Loader) fail(generation uint64, err error) []catalog.Product {
	l.mu.Lock()
	if l.generation == generation {
		l.state = StateDone
		l.origin = OriginNone
		l.lastErr = err
	}
	l.mu.Unlock()
	return nil
}
