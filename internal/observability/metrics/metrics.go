// Package metrics expõe os contadores Prometheus do adaptador
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "export_sales_"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once
	registry     = prometheus.NewRegistry()

	jobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "jobs_total",
			Help: "Total job runs by result",
		},
		[]string{"result"},
	)
	jobLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    metricPrefix + "job_latency_seconds",
			Help:    "Job run latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"result"},
	)
	fetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metricPrefix + "fetch_total",
			Help: "Total upstream fetches by commodity and result",
		},
		[]string{"commodity", "result"},
	)
	fetchAttempts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: metricPrefix + "fetch_attempts_total",
			Help: "Total upstream HTTP attempts, retries included",
		},
	)
)

// Init registra os coletores; chamadas repetidas não têm efeito
func Init() {
	registerOnce.Do(func() {
		registry.MustRegister(
			jobsTotal,
			jobLatency,
			fetchTotal,
			fetchAttempts,
			prometheus.NewGoCollector(),
			prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		)
	})
}

// Handler devolve o handler HTTP de exposição das métricas
func Handler() http.Handler {
	Init()
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

func ObserveJob(result string, duration time.Duration) {
	jobsTotal.WithLabelValues(result).Inc()
	jobLatency.WithLabelValues(result).Observe(duration.Seconds())
}

func ObserveFetch(commodity string, result string) {
	fetchTotal.WithLabelValues(commodity, result).Inc()
}

func ObserveFetchAttempt() {
	fetchAttempts.Inc()
}
