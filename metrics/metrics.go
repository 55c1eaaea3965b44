// Package metrics exposes frame loop instrumentation in Prometheus format.
// A nil *Recorder is valid and records nothing.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder holds the frame loop collectors on a private registry
type Recorder struct {
	registry *prometheus.Registry

	frames        prometheus.Counter
	frameDuration prometheus.Histogram
	speed         prometheus.Gauge
	focus         *prometheus.CounterVec
}

// NewRecorder creates and registers all collectors
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orbits_frames_total",
			Help: "Frames rendered",
		}),
		frameDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "orbits_frame_duration_seconds",
			Help:    "Time spent updating and drawing one frame",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 8),
		}),
		speed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orbits_control_value",
			Help: "Current simulation speed control value",
		}),
		focus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orbits_focus_transitions_total",
			Help: "Focus view transitions by target",
		}, []string{"target"}),
	}

	r.registry.MustRegister(r.frames, r.frameDuration, r.speed, r.focus)
	return r
}

// ObserveFrame records one completed frame
func (r *Recorder) ObserveFrame(d time.Duration, speed float64) {
	if r == nil {
		return
	}
	r.frames.Inc()
	r.frameDuration.Observe(d.Seconds())
	r.speed.Set(speed)
}

// FocusChanged counts a transition into a planet view, or "system" on return
func (r *Recorder) FocusChanged(target string) {
	if r == nil {
		return
	}
	r.focus.WithLabelValues(target).Inc()
}

// Handler serves the recorder's registry
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled
func Serve(ctx context.Context, addr string, r *Recorder) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", r.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("metrics: shutdown: %v", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server on %s: %w", addr, err)
	}
	return nil
}
