// Package api exposes the pricer over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"

	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/scenario"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Server serves quotes for ad hoc contracts and for a fixed scenario list.
type Server struct {
	scenarios []scenario.Scenario
	decoder   *schema.Decoder
	router    *mux.Router
}

// NewServer builds the router. scenarios backs GET /scenarios.
func NewServer(scenarios []scenario.Scenario) *Server {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	s := &Server{
		scenarios: scenarios,
		decoder:   decoder,
		router:    mux.NewRouter(),
	}

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/price", s.handlePrice).Methods(http.MethodGet)
	s.router.HandleFunc("/scenarios", s.handleScenarios).Methods(http.MethodGet)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("starting HTTP server on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Infof("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handlePrice prices the contract described by the query string. Missing
// parameters take the default contract's values.
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	sc := scenario.Default()
	sc.Name = "query"
	if err := s.decoder.Decode(&sc, r.URL.Query()); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	q, err := scenario.Price(sc)
	if err != nil {
		logger.Debugf("rejected /price request: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleScenarios(w http.ResponseWriter, r *http.Request) {
	quotes, err := scenario.PriceAll(r.Context(), s.scenarios)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("failed to encode response: %v", err)
	}
}
