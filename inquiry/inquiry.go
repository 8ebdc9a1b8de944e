// Package inquiry carries the "more information" request a shopper raises
// for a product to whoever handles it.
package inquiry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopcatalog/catalog"
	"shopcatalog/internal/logging"
)

var ErrUnknownProduct = errors.New("unknown product")

// Request is the incoming inquiry as posted by a client.
type Request struct {
	ProductID string `json:"productId" validate:"required"`
	Language  string `json:"language" validate:"required,oneof=de en"`
}

// Event is the notification handed to subscribers.
type Event struct {
	ID          uuid.UUID       `json:"id"`
	Product     catalog.Product `json:"product"`
	Language    string          `json:"language"`
	RequestedAt time.Time       `json:"requestedAt"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate normalizes whitespace and language case before checking req.
func (r *Request) Validate() error {
	r.ProductID = strings.TrimSpace(r.ProductID)
	r.Language = strings.ToLower(strings.TrimSpace(r.Language))
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid inquiry: %w", err)
	}
	return nil
}

// NewEvent resolves req against products.
func NewEvent(req Request, products []catalog.Product, now time.Time) (Event, error) {
	if err := req.Validate(); err != nil {
		return Event{}, err
	}
	product, ok := catalog.FindProduct(products, req.ProductID)
	if !ok {
		return Event{}, fmt.Errorf("%w: %s", ErrUnknownProduct, req.ProductID)
	}
	return Event{
		ID:          uuid.New(),
		Product:     product,
		Language:    req.Language,
		RequestedAt: now.UTC(),
	}, nil
}

type Handler func(Event)

// Dispatcher fans events out to subscribers synchronously, in subscription
// order.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Subscribe(handler Handler) {
	if handler == nil {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handler)
}

// Dispatch delivers event and returns the number of handlers reached.
func (d *Dispatcher) Dispatch(event Event) int {
	d.mu.RLock()
	handlers := append([]Handler(nil), d.handlers...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
	return len(handlers)
}

// LogHandler records every inquiry on logger.
func LogHandler(logger *zap.Logger) Handler {
	logger = logging.OrNop(logger)
	return func(event Event) {
		logger.Info("product inquiry",
			zap.String("inquiry_id", event.ID.String()),
			zap.String("product_id", event.Product.ID),
			zap.String("sku", event.Product.SKU),
			zap.String("division", event.Product.Division),
			zap.String("language", event.Language),
			zap.Time("requested_at", event.RequestedAt),
		)
	}
}
