// Package http serves the browser node editor. Each installed module
// gets an editor page at /node-edit/{module} that loads LiteGraph from
// a CDN together with the module's generated nodes.js.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/graft"
	"github.com/aretw0/graft/internal/logging"
	"github.com/go-chi/chi/v5"
)

// Server holds the handlers behind the editor routes.
type Server struct {
	engine  *graft.Engine
	logger  *slog.Logger
	metrics *metrics
	title   string
}

// Option configures the handler.
type Option func(*Server)

// WithLogger replaces the default no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithTitle sets the editor page title.
func WithTitle(title string) Option {
	return func(s *Server) { s.title = title }
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine *graft.Engine, opts ...Option) http.Handler {
	s := &Server{
		engine:  engine,
		logger:  logging.NewNop(),
		metrics: newMetrics(),
		title:   "graft editor",
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.getHealth)
	r.Get("/info", s.getInfo)
	r.Get("/modules", s.listModules)
	r.Get("/node-edit/{module}", s.getEditor)
	r.Get("/node-edit/{module}/nodes.js", s.getScript)
	r.Handle("/metrics", s.metrics.handler())

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// getEditor handles the GET /node-edit/{module} request.
func (s *Server) getEditor(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "module")
	if _, ok := s.engine.Module(name); !ok {
		http.Error(w, fmt.Sprintf("unknown module: %s", name), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := map[string]string{"Module": name, "Title": s.title}
	if err := editorPage.Execute(w, data); err != nil {
		s.logger.Error("editor page render failed", "module", name, "error", err)
	}
}

// getScript handles the GET /node-edit/{module}/nodes.js request.
func (s *Server) getScript(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "module")

	start := time.Now()
	script, err := s.engine.GenerateScript(name)
	if err != nil {
		if errors.Is(err, graft.ErrUnknownModule) {
			s.metrics.scriptRequests.WithLabelValues(name, "not_found").Inc()
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		s.metrics.scriptRequests.WithLabelValues(name, "error").Inc()
		http.Error(w, fmt.Sprintf("generate error: %v", err), http.StatusInternalServerError)
		s.logger.Error("script generation failed", "module", name, "error", err)
		return
	}
	s.metrics.scriptRequests.WithLabelValues(name, "ok").Inc()
	s.metrics.buildSeconds.WithLabelValues(name).Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	if _, err := w.Write([]byte(script)); err != nil {
		s.logger.Error("script write failed", "module", name, "error", err)
	}
}

// listModules handles the GET /modules request.
func (s *Server) listModules(w http.ResponseWriter, r *http.Request) {
	type moduleInfo struct {
		Name  string `json:"name"`
		Title string `json:"title"`
		Types int    `json:"types"`
	}

	mods := s.engine.Modules()
	resp := make([]moduleInfo, 0, len(mods))
	for _, m := range mods {
		info := moduleInfo{Name: m.Name(), Title: m.Title()}
		if cat, err := s.engine.Catalog(m.Name()); err == nil {
			info.Types = cat.Len()
		}
		resp = append(resp, info)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("modules response encode failed", "error", err)
	}
}

// getHealth handles the GET /health request.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// getInfo handles the GET /info request.
func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"app":     "graft-http",
		"version": strings.TrimSpace(graft.Version),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
