// Package server exposes the generation engine over HTTP for a renderer or
// other presentation-layer client. Rendering, animation pacing, and panel
// layout are entirely the client's concern; the server hands over ranked
// layouts and violation lists and nothing more.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ParixJ/Site-generator/pkg/layout"
	"github.com/ParixJ/Site-generator/pkg/selector"
	"github.com/ParixJ/Site-generator/pkg/spec"
)

// Server holds the site spec and the most recent generation result. Results
// never outlive the process; a new generation run replaces the pool.
type Server struct {
	spec *spec.SiteSpec
	port int
	log  *zap.Logger
	rng  *rand.Rand

	mu      sync.Mutex
	busy    bool
	layouts []selector.RankedLayout
}

// New creates a server for the given site spec.
func New(s *spec.SiteSpec, port int, log *zap.Logger) *Server {
	return &Server{
		spec:    s,
		port:    port,
		log:     log,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		layouts: []selector.RankedLayout{},
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.handleHealth)
	r.Get("/api/status", s.handleStatus)
	r.Get("/api/spec", s.handleSpec)
	r.Post("/api/generate", s.handleGenerate)
	r.Get("/api/layouts", s.handleLayouts)
	r.Get("/api/layouts/{rank}", s.handleLayout)

	return r
}

// Start launches the HTTP server and shuts it down when ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.log.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	s.log.Info("siteplanner server starting",
		zap.Int("port", s.port),
		zap.Int("max_buildings", s.spec.MaxBuildings()),
	)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	busy := s.busy
	count := len(s.layouts)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"busy":         busy,
		"layout_count": count,
	})
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"spec":          s.spec,
		"max_buildings": s.spec.MaxBuildings(),
	})
}

type generateRequest struct {
	Strategy    layout.Strategy `json:"strategy"`
	TargetCount int             `json:"target_count"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Strategy == "" {
		req.Strategy = layout.StrategyRandom
	}
	if req.Strategy != layout.StrategyRandom && req.Strategy != layout.StrategyColumns {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown strategy %q", req.Strategy))
		return
	}
	min, max := s.spec.Search.MinTargetCount, s.spec.MaxBuildings()
	if req.TargetCount < min || req.TargetCount > max {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("target_count %d outside [%d, %d]", req.TargetCount, min, max))
		return
	}

	// Generation runs are not re-entrant: one run at a time.
	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		writeError(w, http.StatusConflict, "generation already in progress")
		return
	}
	s.busy = true
	s.mu.Unlock()

	start := time.Now()
	layouts, err := selector.Generate(s.spec, selector.Config{
		Strategy:    req.Strategy,
		TargetCount: req.TargetCount,
	}, s.rng)

	s.mu.Lock()
	s.busy = false
	if err == nil {
		s.layouts = layouts
	}
	s.mu.Unlock()

	if err != nil {
		s.log.Error("generation failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.log.Info("generation complete",
		zap.String("strategy", string(req.Strategy)),
		zap.Int("target_count", req.TargetCount),
		zap.Int("layouts", len(layouts)),
		zap.Duration("elapsed", time.Since(start)),
	)
	writeJSON(w, http.StatusOK, layouts)
}

func (s *Server) handleLayouts(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	layouts := s.layouts
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, layouts)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	rank, err := strconv.Atoi(chi.URLParam(r, "rank"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "rank must be an integer")
		return
	}

	s.mu.Lock()
	layouts := s.layouts
	s.mu.Unlock()

	// Display ranks are 1-based.
	selected, err := selector.Select(layouts, rank-1)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, selected)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
