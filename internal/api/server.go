// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the docking service.
package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	"gopkg.in/yaml.v3"

	"plasmodocking/internal/api/handler/v1handler"
	"plasmodocking/internal/config"
	"plasmodocking/pkg/controller"
	"plasmodocking/pkg/metrics"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"code":"TIMEOUT","detail":"request timed out"}`

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	Handler v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8000".
	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler.
	RequestTimeout time.Duration
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string

	AllowedOrigins []string
	SSLRedirect    bool
	HSTSMaxAge     time.Duration
}

// NewOptions maps the HTTP settings of cfg to server Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Handler: v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
		SSLRedirect:       cfg.HTTP.SSLRedirect,
		HSTSMaxAge:        cfg.HTTP.HSTSMaxAge,
	}
}

type Deps struct {
	v1handler.Deps

	// Registry receives the HTTP metrics. Nil uses the Prometheus default registry.
	Registry *prometheus.Registry
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) fed by OpenTelemetry
// - Embedded OpenAPI v1 spec (YAML and JSON) and Swagger UI
// - /api routes and a /healthz probe
// - pprof endpoints for profiling
// It wraps the mux with metrics, CORS, HTTPS and logging middlewares and applies a request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	var (
		reg      prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		reg, gatherer = deps.Registry, deps.Registry
	}

	// prometheus metrics server
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	mux.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// otel
	mp, err := metrics.NewMeterProvider(reg)
	if err != nil {
		return nil, err
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// v1 specs file
	specJSON, err := specToJSON(v1Spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /api/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	mux.HandleFunc("GET /api/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(specJSON)
	})
	// swagger playground
	mux.Handle("/api/docs/", v5emb.New(
		"PlasmoDocking API",
		"/api/openapi.yaml",
		"/api/docs/",
	))

	// v1 api
	v1handler.New(deps.Deps, opts.Handler).Register(mux, "/api")

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux())

	handler := controller.WithMetrics(mp)(mux)
	handler = controller.WithCORS(opts.AllowedOrigins)(handler)
	handler = controller.WithSecure(controller.SecureOptions{
		SSLRedirect: opts.SSLRedirect,
		HSTSMaxAge:  opts.HSTSMaxAge,
		ExemptPaths: []string{"/healthz", metricsPath},
	})(handler)
	handler = controller.WithLogger(handler)
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func specToJSON(spec []byte) ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(spec, &doc); err != nil {
		return nil, fmt.Errorf("could not parse openapi spec: %w", err)
	}

	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("could not convert openapi spec: %w", err)
	}

	return out, nil
}
