// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the travel package catalog.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"travelcatalog/internal/api/handler/cataloghandler"
	"travelcatalog/internal/config"
	"travelcatalog/pkg/controller"
	"travelcatalog/pkg/logger"
	"travelcatalog/pkg/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
)

// v1Spec contains the embedded OpenAPI specification of the catalog API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

const (
	specPath  = "/api/specs/v1.yaml"
	docsPath  = "/api/docs/"
	pprofPath = "/debug/pprof"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// Zero durations fall back to the net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":7000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds the context of every request. Expired requests
	// still get the endpoint's regular status 200 message payload.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// DisableDocs hides the OpenAPI document and the Swagger UI.
	DisableDocs bool
	// PprofEnabled exposes the net/http/pprof handlers.
	PprofEnabled bool
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		DisableDocs:       cfg.HTTP.DisableDocs,
		PprofEnabled:      cfg.HTTP.PprofEnabled,
	}
}

type Deps struct {
	cataloghandler.Deps
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath) backed by a dedicated registry
// - OpenTelemetry request metrics exported into that registry
// - Embedded OpenAPI spec and Swagger UI, unless disabled
// - catalog routes under /api and the /health probe
// - pprof endpoints when enabled
// It also wraps the router with request deadline, CORS and logging middlewares.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	reg := metrics.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	httpMetrics, err := controller.NewMetrics(mp)
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(httpMetrics.Middleware)

	// prometheus metrics
	r.Handle(opts.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	// api specs and swagger playground
	if !opts.DisableDocs {
		r.Get(specPath, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write(v1Spec)
		})
		r.Handle(docsPath+"*", v5emb.New(
			"Travel Package Catalog",
			specPath,
			docsPath,
		))
	}

	// catalog api
	h := cataloghandler.New(deps.Deps)
	r.Get("/health", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/packages", h.ListPackages)
		r.Post("/addPackage", h.AddPackage)
		r.Post("/deletePackage", h.DeletePackage)
	})

	// pprof
	if opts.PprofEnabled {
		r.Handle(pprofPath+"/*", controller.PprofMux(pprofPath))
	}

	// request deadline, reported by the handlers themselves
	handler := controller.WithTimeout(r, opts.RequestTimeout)

	// cors
	handler = controller.WithCORS(handler)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(logger.Slog(context.Background()).Handler(), slog.LevelError),
	}, nil
}
