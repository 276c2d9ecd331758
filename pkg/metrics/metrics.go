package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestCounter conta o total de requisições HTTP.
	HTTPRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskmatrix_http_requests_total",
			Help: "Total number of HTTP requests processed.",
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestDuration observa a duração das requisições HTTP.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "riskmatrix_http_request_duration_seconds",
			Help:    "Histogram of HTTP request latencies.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// AppInfo expõe informações sobre a aplicação.
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "riskmatrix_app_info",
			Help: "Information about the risk matrix application.",
		},
		[]string{"version"},
	)

	// AssessmentsTotal conta avaliações calculadas, por categoria resultante.
	AssessmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "riskmatrix_assessments_total",
			Help: "Total number of risk assessments computed, by resulting category.",
		},
		[]string{"category"},
	)

	// RejectedSelectionsTotal conta seleções rejeitadas por conter controles desconhecidos.
	RejectedSelectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "riskmatrix_rejected_selections_total",
			Help: "Total number of selections rejected because of unknown controls.",
		},
	)
)

// SetAppInfo publica a versão da aplicação.
func SetAppInfo(version string) {
	if version == "" {
		version = "unknown"
	}
	AppInfo.With(prometheus.Labels{"version": version}).Set(1)
}
