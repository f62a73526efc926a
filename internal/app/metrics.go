package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registerRuntimeCollectorsOnce sync.Once

// metricsServer builds the HTTP server exposing /metrics and /healthz, or
// (nil, nil, nil) when no metrics address is configured.
func (a *App) metricsServer() (*http.Server, net.Listener, error) {
	if a.config.MetricsAddr == "" {
		return nil, nil, nil
	}

	if err := registerRuntimeCollectors(); err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return newHTTPServer(a.config.MetricsAddr, "metrics", mux)
}

func registerRuntimeCollectors() error {
	var regErr error
	registerRuntimeCollectorsOnce.Do(func() {
		for name, c := range map[string]prometheus.Collector{
			"go":      collectors.NewGoCollector(),
			"process": collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		} {
			if err := prometheus.DefaultRegisterer.Register(c); err != nil {
				if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
					regErr = fmt.Errorf("metrics register %s collector: %w", name, err)
					return
				}
			}
		}
	})
	return regErr
}

func newHTTPServer(addr, name string, mux *http.ServeMux) (*http.Server, net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("listen %s %s: %w", name, addr, err)
	}
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv, lis, nil
}

func shutdownHTTPServer(srv *http.Server, logger Logger, name string) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Warn(name+" shutdown failed", "error", err)
	}
}
