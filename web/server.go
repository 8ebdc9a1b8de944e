// Package web serves a local read-only JSON API over the vertical catalogs.
// Inquiries are the only write and are handed to subscribers in-process.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"shopcatalog/catalog"
	"shopcatalog/inquiry"
	"shopcatalog/internal/logging"
	"shopcatalog/source"
	"shopcatalog/vertical"
)

const maxBodyBytes = 1 << 16

// ResolverFactory builds the resolver serving one vertical in one language.
type ResolverFactory func(v vertical.Config, lang string) *source.Resolver

type Options struct {
	Resolvers       ResolverFactory
	Dispatcher      *inquiry.Dispatcher
	Logger          *zap.Logger
	DefaultLanguage string
}

type Server struct {
	factory     ResolverFactory
	dispatcher  *inquiry.Dispatcher
	logger      *zap.Logger
	defaultLang string
	now         func() time.Time
	router      chi.Router

	mu        sync.Mutex
	resolvers map[string]*source.Resolver
}

// NewServer returns the API handler. Resolvers are created on first use and
// kept for the server's lifetime, so each (vertical, language) pair loads its
// sheet at most once until refreshed.
func NewServer(opts Options) http.Handler {
	dispatcher := opts.Dispatcher
	if dispatcher == nil {
		dispatcher = inquiry.NewDispatcher()
	}

	server := &Server{
		factory:     opts.Resolvers,
		dispatcher:  dispatcher,
		logger:      logging.OrNop(opts.Logger),
		defaultLang: catalog.NormalizeLanguage(opts.DefaultLanguage),
		now:         time.Now,
		resolvers:   make(map[string]*source.Resolver),
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(server.logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", server.handleHealth)
	router.Route("/api/verticals", func(r chi.Router) {
		r.Get("/", server.handleVerticals)
		r.Route("/{vertical}", func(r chi.Router) {
			r.Get("/catalog", server.handleCatalog)
			r.Get("/products/{id}", server.handleProduct)
			r.Post("/inquiries", server.handleInquiry)
			r.Post("/refresh", server.handleRefresh)
		})
	})
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "no route for "+r.URL.Path)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" is not allowed on "+r.URL.Path)
	})
	server.router = router

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVerticals(w http.ResponseWriter, r *http.Request) {
	lang := s.language(r)
	verticals := vertical.All()
	out := make([]verticalResponse, 0, len(verticals))
	for _, v := range verticals {
		out = append(out, buildVerticalResponse(v, lang))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vertical(w, r)
	if !ok {
		return
	}
	lang := s.language(r)
	result := s.resolver(v, lang).Resolve(r.Context())

	query := r.URL.Query()
	view := catalog.Assemble(result.Catalog.Products, v.MetaFrom(result.Catalog), v.ID, lang, catalog.ViewOptions{
		Category: query.Get("category"),
		Sort:     query.Get("sort"),
	})
	writeJSON(w, http.StatusOK, catalogResponse{Source: result.Origin, View: view})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vertical(w, r)
	if !ok {
		return
	}
	lang := s.language(r)
	result := s.resolver(v, lang).Resolve(r.Context())

	id := chi.URLParam(r, "id")
	product, found := catalog.FindProduct(result.Catalog.ProductsOf(v.ID), id)
	if !found {
		writeError(w, http.StatusNotFound, "unknown_product", fmt.Sprintf("product %q not found in %s", id, v.ID))
		return
	}
	writeJSON(w, http.StatusOK, productResponse{Source: result.Origin, Product: catalog.Project(product, lang)})
}

func (s *Server) handleInquiry(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vertical(w, r)
	if !ok {
		return
	}

	var body inquiryRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	req := inquiry.Request{ProductID: body.ProductID, Language: body.Language}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_inquiry", err.Error())
		return
	}

	result := s.resolver(v, req.Language).Resolve(r.Context())
	event, err := inquiry.NewEvent(req, result.Catalog.ProductsOf(v.ID), s.now())
	if errors.Is(err, inquiry.ErrUnknownProduct) {
		writeError(w, http.StatusNotFound, "unknown_product", err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_inquiry", err.Error())
		return
	}

	delivered := s.dispatcher.Dispatch(event)
	writeJSON(w, http.StatusAccepted, inquiryResponse{
		ID:        event.ID.String(),
		ProductID: event.Product.ID,
		SKU:       event.Product.SKU,
		Language:  event.Language,
		Delivered: delivered,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	v, ok := s.vertical(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	invalidated := 0
	for key, resolver := range s.resolvers {
		if strings.HasPrefix(key, v.ID+"|") {
			resolver.Invalidate()
			invalidated++
		}
	}
	s.mu.Unlock()

	s.logger.Info("catalog cache invalidated", zap.String("vertical", v.ID), zap.Int("resolvers", invalidated))
	writeJSON(w, http.StatusOK, refreshResponse{Vertical: v.ID, Invalidated: invalidated})
}

func (s *Server) vertical(w http.ResponseWriter, r *http.Request) (vertical.Config, bool) {
	v, err := vertical.Lookup(chi.URLParam(r, "vertical"))
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_vertical", err.Error())
		return vertical.Config{}, false
	}
	return v, true
}

func (s *Server) language(r *http.Request) string {
	if lang := strings.TrimSpace(r.URL.Query().Get("lang")); lang != "" {
		return catalog.NormalizeLanguage(lang)
	}
	return s.defaultLang
}

func (s *Server) resolver(v vertical.Config, lang string) *source.Resolver {
	key := v.ID + "|" + lang

	s.mu.Lock()
	defer s.mu.Unlock()
	if resolver, ok := s.resolvers[key]; ok {
		return resolver
	}

	var resolver *source.Resolver
	if s.factory != nil {
		resolver = s.factory(v, lang)
	}
	if resolver == nil {
		resolver = source.NewResolver(v, nil, nil, s.logger)
	}
	s.resolvers[key] = resolver
	return resolver
}

func decodeJSON(r *http.Request, out any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return err
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("request body must contain a single JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: code, Message: message})
}
