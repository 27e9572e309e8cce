package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"librarium/internal/config"
	"librarium/internal/library"
	"librarium/internal/logger"
	"librarium/internal/middleware"
	"librarium/internal/ui"
)

func main() {
	cfg := config.Get()
	logger.Init(cfg.Logging.Level, cfg.Logging.Path)
	ui.EnableColor(cfg.UI.Color)

	lib := library.New()
	if err := library.Seed(lib, cfg.Catalog.Path); err != nil {
		fmt.Fprintf(os.Stderr, "librarium: %v\n", err)
		os.Exit(1)
	}
	logger.L().WithField("size", lib.Len()).Info("collection ready")

	if cfg.Metrics.Enabled {
		go serveMetrics(cfg.Metrics.Port)
	}

	if err := ui.New(lib).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "librarium: %v\n", err)
		os.Exit(1)
	}
}

// serveMetrics exposes /metrics on localhost only. It is best-effort
// observability plumbing: a bind failure is logged, never fatal.
func serveMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	handler := middleware.RequestLogger(logger.L())(
		middleware.RateLimit(2, 4)(mux),
	)

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	logger.L().WithField("addr", addr).Info("metrics listener started")
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.L().WithError(err).Warn("metrics listener stopped")
	}
}
