// Package telemetry exports simulation counters to Prometheus.
package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cgol/internal/core"
)

const namespace = "cgol"

// Metrics implements core.Observer.
type Metrics struct {
	registry *prometheus.Registry

	generations prometheus.Counter
	reloads     prometheus.Counter
	liveCells   prometheus.Gauge
	generation  prometheus.Gauge
	cells       prometheus.Gauge
	stepSeconds prometheus.Histogram
}

// New registers the simulation metrics on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generations computed since start.",
		}),
		reloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reloads_total",
			Help:      "Times the grid was replaced from its source.",
		}),
		liveCells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_cells",
			Help:      "Live cells in the current generation.",
		}),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation",
			Help:      "Current generation number since the last load.",
		}),
		cells: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "grid_cells",
			Help:      "Total cells in the grid.",
		}),
		stepSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Time taken to compute one generation.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	m.registry.MustRegister(m.generations, m.reloads, m.liveCells, m.generation, m.cells, m.stepSeconds)
	return m
}

// Stepped implements core.Observer.
func (m *Metrics) Stepped(s core.Snapshot, took time.Duration) {
	m.generations.Inc()
	m.stepSeconds.Observe(took.Seconds())
	m.observe(s)
}

// Replaced implements core.Observer.
func (m *Metrics) Replaced(s core.Snapshot) {
	m.reloads.Inc()
	m.observe(s)
}

// Observe records the gauges for s without counting a step.
func (m *Metrics) Observe(s core.Snapshot) { m.observe(s) }

func (m *Metrics) observe(s core.Snapshot) {
	m.liveCells.Set(float64(s.Grid.LiveCells()))
	m.generation.Set(float64(s.Generation))
	m.cells.Set(float64(s.Grid.Width() * s.Grid.Height()))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	logger.Info("metrics listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
