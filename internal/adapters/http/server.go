// Package http exposes decoration as a small JSON API.
package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	blurtext "github.com/Kornerupin/blur-text"
	"github.com/Kornerupin/blur-text/internal/logging"
	"github.com/Kornerupin/blur-text/internal/metrics"
	htmlhost "github.com/Kornerupin/blur-text/pkg/adapters/html"
	redisadapter "github.com/Kornerupin/blur-text/pkg/adapters/redis"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DecorateRequest is the body of POST /v1/decorate.
type DecorateRequest struct {
	HTML     string         `json:"html"`
	Selector string         `json:"selector"`
	Options  map[string]any `json:"options,omitempty"`
}

// DecorateResponse reports the decorated document and what was done to it.
type DecorateResponse struct {
	HTML     string `json:"html"`
	Elements int    `json:"elements"`
	Letters  int    `json:"letters"`
	Cached   bool   `json:"cached,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server handles decoration requests.
type Server struct {
	logger  *slog.Logger
	cache   *redisadapter.Cache
	metrics *metrics.Metrics
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithCache enables the decorated-document cache.
func WithCache(cache *redisadapter.Cache) Option {
	return func(s *Server) {
		s.cache = cache
	}
}

// NewHandler builds the HTTP handler. Prometheus counters are registered on
// reg and served on /metrics.
func NewHandler(reg *prometheus.Registry, opts ...Option) http.Handler {
	s := &Server{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = metrics.New(reg)

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Post("/v1/decorate", s.handleDecorate)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleDecorate(w http.ResponseWriter, r *http.Request) {
	var req DecorateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Selector == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "selector is required"})
		return
	}

	if s.cache != nil {
		key := redisadapter.Key(req.HTML, req.Selector, req.Options)
		if cached, found, err := s.cache.Get(r.Context(), key); err != nil {
			s.logger.Warn("cache lookup failed", "error", err)
		} else if found {
			s.metrics.CacheHits.Inc()
			writeJSON(w, http.StatusOK, DecorateResponse{HTML: cached, Cached: true})
			return
		} else {
			s.metrics.CacheMisses.Inc()
		}
	}

	resp, err := s.decorate(req)
	if err != nil {
		// Only unparsable documents end up here; bad selectors and empty
		// matches degrade to a no-op by design.
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if s.cache != nil {
		key := redisadapter.Key(req.HTML, req.Selector, req.Options)
		if err := s.cache.Set(r.Context(), key, resp.HTML); err != nil {
			s.logger.Warn("cache store failed", "error", err)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) decorate(req DecorateRequest) (DecorateResponse, error) {
	doc, err := htmlhost.ParseDocument(strings.NewReader(req.HTML))
	if err != nil {
		return DecorateResponse{}, err
	}
	host := htmlhost.New(doc)

	opts, err := blurtext.OptionsFromMap(req.Options)
	if err != nil {
		// Malformed options are advisory; decoration proceeds with defaults.
		s.logger.Warn("ignoring malformed options", "error", err)
		opts = nil
	}

	var resp DecorateResponse
	mh := s.metrics.Hooks()
	opts = append(opts,
		blurtext.WithLogger(s.logger),
		blurtext.WithHooks(blurtext.Hooks{
			OnElement: func() {
				resp.Elements++
				mh.OnElement()
			},
			OnLetter: func(category string) {
				resp.Letters++
				mh.OnLetter(category)
			},
			OnCoverageGap: mh.OnCoverageGap,
		}),
	)

	if err := blurtext.Decorate(host, req.Selector, opts...); err != nil {
		return DecorateResponse{}, err
	}

	var buf bytes.Buffer
	if err := host.Render(&buf); err != nil {
		return DecorateResponse{}, err
	}
	resp.HTML = buf.String()
	return resp, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
