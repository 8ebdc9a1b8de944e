package source

import (
	"context"

	"go.uber.org/zap"

	"shopcatalog/catalog"
	"shopcatalog/internal/logging"
	"shopcatalog/vertical"
)

// Result is a catalog together with the tier that produced it.
type Result struct {
	Catalog catalog.Catalog
	Origin  Origin
	// Path is the static file used, when Origin is OriginStatic.
	Path string
}

// Resolver always yields a catalog: the sheet loader first, then the static
// JSON file, then the vertical's built-in products.
type Resolver struct {
	vertical vertical.Config
	loader   *Loader
	static   *StaticSource
	logger   *zap.Logger
}

// NewResolver wires the tiers. static may be nil to skip the file tier.
func NewResolver(v vertical.Config, loader *Loader, static *StaticSource, logger *zap.Logger) *Resolver {
	return &Resolver{
		vertical: v,
		loader:   loader,
		static:   static,
		logger:   logging.OrNop(logger).With(zap.String("vertical", v.ID)),
	}
}

func (r *Resolver) Resolve(ctx context.Context) Result {
	if r.loader != nil {
		if products := r.loader.Load(ctx); products != nil {
			return Result{Catalog: r.vertical.Catalog(products), Origin: r.loader.Origin()}
		}
	}

	if r.static != nil {
		doc, path, err := r.static.Load()
		if err == nil {
			r.logger.Info("using static catalog", zap.String("path", path), zap.Int("products", len(doc.Products)))
			return Result{Catalog: doc, Origin: OriginStatic, Path: path}
		}
		r.logger.Warn("static catalog unavailable", zap.Error(err))
	}

	r.logger.Warn("using built-in products")
	return Result{Catalog: r.vertical.Catalog(r.vertical.Hardcoded()), Origin: OriginHardcoded}
}

// Invalidate forgets the cached sheet products.
func (r *Resolver) Invalidate() {
	if r.loader != nil {
		r.loader.Invalidate()
	}
}

func (r *Resolver) Loader() *Loader {
	return r.loader
}

func (r *Resolver) Vertical() vertical.Config {
	return r.vertical
}
