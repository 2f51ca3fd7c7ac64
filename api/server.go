package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"checkout/core/pricing"
	"checkout/core/purchase"
	"checkout/core/types"
	"checkout/gateways"
	"checkout/internal/config"
	"checkout/internal/errors"
	"checkout/internal/logging"
)

// Server is the API server
type Server struct {
	calculator *pricing.Calculator
	purchases  *purchase.Service
	registry   *gateways.Registry
	mux        *http.ServeMux
	version    string
}

// NewServer creates a new API server
func NewServer(version string, calculator *pricing.Calculator, purchases *purchase.Service, registry *gateways.Registry) *Server {
	s := &Server{
		calculator: calculator,
		purchases:  purchases,
		registry:   registry,
		mux:        http.NewServeMux(),
		version:    version,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /calculate-price", instrument("calculate-price", s.handleCalculatePrice))
	s.mux.HandleFunc("POST /purchase", instrument("purchase", s.handlePurchase))

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.HandleFunc("GET /backends", s.handleBackends)

	if config.Get().Server.EnableMetrics {
		s.mux.Handle("GET /metrics", metricsHandler())
	}
}

// handleCalculatePrice handles POST /calculate-price
func (s *Server) handleCalculatePrice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := generateRequestID()
	w.Header().Set("X-Request-ID", requestID)

	var req CalculatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", "Request payload malformed", http.StatusBadRequest)
		return
	}

	if err := validateCalculatePriceRequest(&req); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := s.calculator.CalculatePrice(ctx, req.Product, req.TaxNumber, req.CouponCode)
	if err != nil {
		s.writeDomainError(w, requestID, err)
		return
	}

	logging.Debug("price calculated",
		zap.String("request_id", requestID),
		zap.Int64("product_id", req.Product),
		zap.String("price", types.FormatMoney(quote.Price)))

	s.writeJSON(w, DataEnvelope{Data: PriceResponse{Price: types.FormatMoney(quote.Price)}}, http.StatusOK)
}

// handlePurchase handles POST /purchase
func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := generateRequestID()
	w.Header().Set("X-Request-ID", requestID)

	var req PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", "Request payload malformed", http.StatusBadRequest)
		return
	}

	if err := validatePurchaseRequest(&req); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	processed, err := s.purchases.Execute(ctx, req.PaymentProcessor, req.Product, req.TaxNumber, req.CouponCode)
	if err != nil {
		s.writeDomainError(w, requestID, err)
		return
	}

	s.writeJSON(w, DataEnvelope{Data: PurchaseResponse{PaymentProcessed: processed}}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "checkout",
		"api_version": "v1",
	}, http.StatusOK)
}

// handleBackends handles GET /backends
func (s *Server) handleBackends(w http.ResponseWriter, r *http.Request) {
	names := s.registry.Names()
	s.writeJSON(w, map[string]interface{}{
		"backends": names,
		"count":    len(names),
	}, http.StatusOK)
}

// writeDomainError maps a core error to an HTTP response. Every error
// in the core taxonomy is client-correctable and maps to 400; anything
// else is an internal failure.
func (s *Server) writeDomainError(w http.ResponseWriter, requestID string, err error) {
	if errors.IsClientError(err) {
		e := err.(*errors.Error)
		s.writeError(w, string(e.Type), e.Message, http.StatusBadRequest)
		return
	}
	logging.Error("request failed", zap.String("request_id", requestID), zap.Error(err))
	s.writeError(w, "INTERNAL_ERROR", "internal error", http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorEnvelope{Error: ErrorBody{Code: code, Message: message}}, status)
}

func generateRequestID() string {
	return uuid.New().String()
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server with timeouts from configuration
func (s *Server) ListenAndServe(cfg config.ServerConfig) error {
	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      s,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	}
	return server.ListenAndServe()
}
