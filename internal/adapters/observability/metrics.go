package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog/log"
)

var (
	RowsGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aurora", Name: "rows_generated_total", Help: "Rows generated per table."},
		[]string{"table"},
	)
	StageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aurora", Name: "stage_duration_seconds",
			Help:    "Generation stage duration seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		},
		[]string{"stage"},
	)
	WeightFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aurora", Name: "weight_fallbacks_total", Help: "Distributions that degraded to uniform sampling."},
		[]string{"distribution"},
	)
	FilesWritten = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aurora", Name: "files_written_total", Help: "Export files written."},
		[]string{"format"},
	)
	RowsLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aurora", Name: "rows_loaded_total", Help: "Rows bulk-loaded into the database."},
		[]string{"table"},
	)
	LoadBatchLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aurora", Name: "load_batch_duration_seconds",
			Help:    "Bulk-load batch duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"table"},
	)
	ManifestEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "aurora", Name: "manifest_events_total", Help: "Run manifest hits/misses/puts and reproducibility checks."},
		[]string{"event"}, // event: hit|miss|put|match|drift
	)
)

// Serve exposes reg on addr/metrics in the background. Empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(RowsGenerated, StageDuration, WeightFallbacks, FilesWritten, RowsLoaded, LoadBatchLatency, ManifestEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Push sends the registry to a Pushgateway; batch runs end before any
// scrape could reach them.
func Push(url, job string, reg *prometheus.Registry) error {
	if url == "" {
		return nil
	}
	return push.New(url, job).Gatherer(reg).Push()
}

func ObserveRows(table string, n int) {
	RowsGenerated.WithLabelValues(table).Add(float64(n))
}

func ObserveStage(stage string, dur time.Duration) {
	StageDuration.WithLabelValues(stage).Observe(dur.Seconds())
}

func ObserveWeightFallback(distribution string) {
	WeightFallbacks.WithLabelValues(distribution).Inc()
}

func ObserveFile(format string) {
	FilesWritten.WithLabelValues(format).Inc()
}

func ObserveLoad(table string, rows int, dur time.Duration) {
	RowsLoaded.WithLabelValues(table).Add(float64(rows))
	LoadBatchLatency.WithLabelValues(table).Observe(dur.Seconds())
}

func ObserveManifest(event string) { // event: hit|miss|put|match|drift
	ManifestEvents.WithLabelValues(event).Inc()
}
