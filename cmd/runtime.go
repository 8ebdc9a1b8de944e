package cmd

import (
	"strings"

	"go.uber.org/zap"

	"shopcatalog/catalog"
	"shopcatalog/config"
	"shopcatalog/internal/logging"
	"shopcatalog/source"
	"shopcatalog/vertical"
)

// app bundles what every catalog command needs once the config is loaded.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	fetcher source.Fetcher
}

func newApp() (*app, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return newAppFromConfig(cfg, logger), nil
}

func newAppFromConfig(cfg *config.Config, logger *zap.Logger) *app {
	return &app{
		cfg:    cfg,
		logger: logging.OrNop(logger),
		fetcher: source.NewHTTPFetcher(source.FetcherConfig{
			Timeout:   cfg.HTTP.Timeout,
			UserAgent: cfg.HTTP.UserAgent,
		}),
	}
}

// language returns flag when set, else the configured default.
func (a *app) language(flag string) string {
	if strings.TrimSpace(flag) != "" {
		return catalog.NormalizeLanguage(flag)
	}
	return catalog.NormalizeLanguage(a.cfg.Catalog.Language)
}

// endpoints applies the configured overrides to the vertical's own URLs.
func (a *app) endpoints(v vertical.Config, lang string) (primary, fallback string) {
	primary, fallback = v.PrimaryURL(lang), v.FallbackURL(lang)
	if override, ok := a.cfg.Source(v.ID); ok {
		if strings.TrimSpace(override.PrimaryURL) != "" {
			primary = override.PrimaryURL
		}
		if strings.TrimSpace(override.FallbackURL) != "" {
			fallback = override.FallbackURL
		}
	}
	return primary, fallback
}

func (a *app) resolver(v vertical.Config, lang string) *source.Resolver {
	primary, fallback := a.endpoints(v, lang)
	loader, err := source.NewLoader(source.LoaderConfig{
		Vertical:    v,
		Language:    lang,
		PrimaryURL:  primary,
		FallbackURL: fallback,
		Fetcher:     a.fetcher,
		Logger:      a.logger,
	})
	if err != nil {
		// Only an unnamed vertical is rejected; the resolver then serves the
		// static and built-in tiers.
		a.logger.Error("sheet loader unavailable", zap.Error(err))
		loader = nil
	}

	var staticJSON []string
	if override, ok := a.cfg.Source(v.ID); ok {
		staticJSON = override.StaticJSON
	}
	static := source.NewStaticSource(v.ID, a.cfg.Catalog.StaticDirs, staticJSON...)
	return source.NewResolver(v, loader, static, a.logger)
}

// verticals resolves "all" or a single id.
func verticals(id string) ([]vertical.Config, error) {
	if strings.EqualFold(strings.TrimSpace(id), "all") {
		return vertical.All(), nil
	}
	v, err := vertical.Lookup(id)
	if err != nil {
		return nil, err
	}
	return []vertical.Config{v}, nil
}
