package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "impact_sim"

// energyBuckets spans Chelyabinsk-scale airbursts to Chicxulub in kilotons.
var energyBuckets = prometheus.ExponentialBuckets(1, 10, 10)

// Metrics holds the Prometheus counters, histograms, and gauges for the service.
type Metrics struct {
	ScenariosConsumed prometheus.Counter
	ReportsProduced   prometheus.Counter
	AnalysisErrors    prometheus.Counter
	PipelineRunning   prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// ImpactEnergy records the kinetic energy of every analyzed scenario.
	ImpactEnergy prometheus.Histogram

	HTTPAnalyses *prometheus.CounterVec // labels: route, outcome={success,invalid,not_found,upstream_error,unavailable}

	// NeoWs client metrics.
	NEORequests    *prometheus.CounterVec   // labels: method={feed,lookup}, outcome={success,error}
	NEOCache       *prometheus.CounterVec   // labels: result={hit,miss}
	NEOAPIDuration *prometheus.HistogramVec // labels: method={feed,lookup}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics(true)

	prometheus.MustRegister(
		m.ScenariosConsumed,
		m.ReportsProduced,
		m.AnalysisErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.ImpactEnergy,
		m.HTTPAnalyses,
		m.NEORequests,
		m.NEOCache,
		m.NEOAPIDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}

// NewUnregisteredMetrics creates Metrics that no registry collects, for
// one-shot commands that reuse instrumented clients.
func NewUnregisteredMetrics() *Metrics {
	return newMetrics(true)
}

func newMetrics(withHelp bool) *Metrics {
	help := func(s string) string {
		if withHelp {
			return s
		}
		return ""
	}

	return &Metrics{
		ScenariosConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scenarios_consumed_total",
			Help:      help("Total scenario messages read from the source topic."),
		}),
		ReportsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_produced_total",
			Help:      help("Total impact reports written to the sink topic."),
		}),
		AnalysisErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analysis_errors_total",
			Help:      help("Total scenarios skipped because they failed to parse or validate."),
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      help("1 when the pipeline is active, 0 when shut down."),
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      help("Number of scenarios per batch extracted from Kafka."),
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      help("Duration of a complete batch extract-analyze-load cycle."),
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		ImpactEnergy: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "impact_energy_kilotons",
			Help:      help("Kinetic energy of analyzed impacts in kilotons of TNT."),
			Buckets:   energyBuckets,
		}),
		HTTPAnalyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_analyses_total",
			Help:      help("Analysis API requests by route and outcome."),
		}, []string{"route", "outcome"}),
		NEORequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "neo_requests_total",
			Help:      help("NeoWs API requests by method and outcome."),
		}, []string{"method", "outcome"}),
		NEOCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "neo_cache_total",
			Help:      help("NEO lookup cache results."),
		}, []string{"result"}),
		NEOAPIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "neo_api_duration_seconds",
			Help:      help("NeoWs API request duration in seconds."),
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method"}),
	}
}
