// Package server implements the food-ordering HTTP API.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"foodorders/pkg/meal"
	"foodorders/pkg/metrics"
	"foodorders/pkg/order"
)

// Config carries the server's collaborators. Log and Orders and Meals are
// required; Tracer defaults to the global provider and Metrics and
// PublicDir may be left empty to disable instrumentation and static files.
type Config struct {
	Log       *zap.Logger
	Orders    order.Store
	Meals     *meal.Catalog
	Tracer    trace.Tracer
	Metrics   *metrics.HTTP
	PublicDir string
}

// Server routes API requests to the order store and meal catalog.
type Server struct {
	log       *zap.Logger
	orders    order.Store
	meals     *meal.Catalog
	tracer    trace.Tracer
	metrics   *metrics.HTTP
	publicDir string
}

// New creates a Server from the given configuration.
func New(cfg Config) *Server {
	if cfg.Tracer == nil {
		cfg.Tracer = otel.Tracer("foodorders")
	}
	return &Server{
		log:       cfg.Log,
		orders:    cfg.Orders,
		meals:     cfg.Meals,
		tracer:    cfg.Tracer,
		metrics:   cfg.Metrics,
		publicDir: cfg.PublicDir,
	}
}

// Handler returns the fully composed HTTP handler: CORS (answering
// preflights) around request metrics around the router.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router()
	if s.metrics != nil {
		h = s.metrics.Middleware(h)
	}
	return corsMiddleware(h)
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/meals", s.listMealsHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders", s.createOrderHandler).Methods(http.MethodPost)
	r.HandleFunc("/orders", s.listOrdersHandler).Methods(http.MethodGet)
	r.HandleFunc("/orders", s.deleteOrdersHandler).Methods(http.MethodDelete)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler()).Methods(http.MethodGet)
	}
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Anything unmatched falls through to the static-or-404 handler.
	// Middleware registered on the router does not run for these, so the
	// fallback relies on Handler()'s outer wrappers for CORS.
	fallback := s.fallbackHandler()
	r.NotFoundHandler = fallback
	r.MethodNotAllowedHandler = fallback
	return r
}

// listMealsHandler returns the meal catalog.
// @Summary List available meals
// @Produce json
// @Success 200 {array} meal.Meal
// @Failure 500 {object} server.messageResponse
// @Router /meals [get]
func (s *Server) listMealsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "listMealsHandler")
	defer span.End()

	meals, err := s.meals.List(ctx)
	if err != nil {
		s.log.Error("list meals", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Could not retrieve meals.")
		return
	}
	respondJSON(w, http.StatusOK, meals)
}

// createOrderRequest is the POST /orders body envelope.
type createOrderRequest struct {
	Order *order.Order `json:"order"`
}

// createOrderHandler validates and persists a new order.
// @Summary Create order
// @Accept json
// @Produce json
// @Param order body server.createOrderRequest true "Order"
// @Success 201 {object} server.messageResponse
// @Failure 400 {object} server.messageResponse
// @Failure 500 {object} server.messageResponse
// @Router /orders [post]
func (s *Server) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "createOrderHandler")
	defer span.End()

	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// An unreadable body is indistinguishable from an absent payload.
		respondMessage(w, http.StatusBadRequest, order.ErrMissingItems.Error())
		return
	}
	o := req.Order
	if err := o.Validate(); err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	o.ID = uuid.NewString()
	if err := s.orders.Append(ctx, *o); err != nil {
		s.log.Error("save order", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Could not save the order.")
		return
	}
	respondMessage(w, http.StatusCreated, "Order created!")
}

// listOrdersHandler returns every stored order.
// @Summary List orders
// @Produce json
// @Success 200 {array} order.Order
// @Failure 500 {object} server.messageResponse
// @Router /orders [get]
func (s *Server) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "listOrdersHandler")
	defer span.End()

	orders, err := s.orders.LoadAll(ctx)
	if err != nil {
		s.log.Error("list orders", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Could not retrieve orders.")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

// deleteOrdersHandler clears the order store.
// @Summary Delete all orders
// @Produce json
// @Success 200 {object} server.messageResponse
// @Failure 500 {object} server.messageResponse
// @Router /orders [delete]
func (s *Server) deleteOrdersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "deleteOrdersHandler")
	defer span.End()

	if err := s.orders.Clear(ctx); err != nil {
		s.log.Error("delete orders", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Could not delete orders.")
		return
	}
	respondMessage(w, http.StatusOK, "All orders deleted.")
}
