// Package server exposes the KPI calculator as a stateless HTTP JSON API.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Jeppcode/KPIVisualization/internal/kpi"
	"github.com/Jeppcode/KPIVisualization/internal/model"
)

// maxBodyBytes caps request bodies; a KPI payload is a few hundred bytes.
const maxBodyBytes = 1 << 20

// Config controls the server runtime behavior.
type Config struct {
	Addr     string
	Base     model.BaseKPIs
	Currency string
}

// DefaultsResponse is served at /v1/defaults.
type DefaultsResponse struct {
	Base     model.BaseKPIs `json:"base"`
	Currency string         `json:"currency"`
	Bounds   kpi.Bounds     `json:"bounds"`
}

// CompareRequest is the body of /v1/compare.
type CompareRequest struct {
	Base  model.BaseKPIs      `json:"base"`
	Delta model.ScenarioDelta `json:"delta"`
}

// CompareResponse is served at /v1/compare.
type CompareResponse struct {
	Base     model.DerivedMetrics `json:"base"`
	Adjusted model.DerivedMetrics `json:"adjusted"`
	Diff     model.DerivedMetrics `json:"diff"`
	Rows     []kpi.Row            `json:"rows"`
	Insight  kpi.Insight          `json:"insight"`
	Notes    []string             `json:"notes,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Service provides the HTTP API. It holds no per-request state.
type Service struct {
	cfg     Config
	log     *zap.Logger
	metrics *metrics
}

// New returns a new service with the provided config.
func New(cfg Config, log *zap.Logger) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		cfg:     cfg,
		log:     log,
		metrics: newMetrics(),
	}
}

// Handler returns the routed HTTP handler.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)
	r.Get("/v1/defaults", s.handleDefaults)
	r.Post("/v1/metrics", s.handleMetrics)
	r.Post("/v1/compare", s.handleCompare)
	r.Method(http.MethodGet, "/metrics", s.metrics.handler())

	return r
}

// Run serves HTTP until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.log.Info("listening", zap.String("addr", s.cfg.Addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, DefaultsResponse{
		Base:     s.cfg.Base,
		Currency: s.cfg.Currency,
		Bounds:   kpi.DefaultBounds(),
	})
}

func (s *Service) handleMetrics(w http.ResponseWriter, r *http.Request) {
	var k model.BaseKPIs
	if err := decodeJSON(w, r, &k); err != nil {
		s.badRequest(w, r, err)
		return
	}
	s.metrics.evaluations.WithLabelValues("metrics").Inc()
	s.writeResult(w, r, kpi.ComputeMetrics(k))
}

func (s *Service) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.badRequest(w, r, err)
		return
	}

	notes := kpi.ClampNotes(req.Base, req.Delta)
	for _, n := range notes {
		s.log.Debug("input clamped", zap.String("rid", RequestIDFrom(r.Context())), zap.String("note", n))
	}

	c := kpi.Compare(req.Base, req.Delta)
	s.metrics.evaluations.WithLabelValues("compare").Inc()
	if len(notes) > 0 {
		s.metrics.clamped.Inc()
	}

	s.writeResult(w, r, CompareResponse{
		Base:     c.Base,
		Adjusted: c.Adjusted,
		Diff:     c.Diff,
		Rows:     c.Rows(),
		Insight:  kpi.NewInsight(c),
		Notes:    notes,
	})
}

func (s *Service) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Warn("bad request",
		zap.String("rid", RequestIDFrom(r.Context())),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	if dec.More() {
		return errors.New("decoding request body: trailing data")
	}
	return nil
}

// writeResult encodes v before committing a status. Totals that overflow
// float64 have no JSON form, so they become a 422 instead of an empty 200.
func (s *Service) writeResult(w http.ResponseWriter, r *http.Request, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.log.Warn("unencodable result",
			zap.String("rid", RequestIDFrom(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: fmt.Sprintf("result out of range: %v", err),
		})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
