// Package metrics содержит метрики Prometheus: HTTP запросы и размер графа.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/company-sales-api/internal/graph"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "company_sales"

var (
	// Registry хранит коллекторы приложения
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"method", "route"},
	)

	graphEntities = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "graph",
			Name:      "entities",
			Help:      "Number of entities held in the in-memory graph.",
		},
		[]string{"kind"},
	)
)

func init() {
	Registry.MustRegister(httpRequests, httpDuration, graphEntities)
}

// Handler отдаёт метрики в формате Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveGraph обновляет счётчики сущностей графа
func ObserveGraph(s graph.Stats) {
	graphEntities.WithLabelValues("company").Set(float64(s.Companies))
	graphEntities.WithLabelValues("department").Set(float64(s.Departments))
	graphEntities.WithLabelValues("employee").Set(float64(s.Employees))
	graphEntities.WithLabelValues("sale").Set(float64(s.Sales))
}

// UnmatchedRoute - метка запросов, не попавших ни в один маршрут
const UnmatchedRoute = "unmatched"

// ObserveRequest учитывает завершённый HTTP запрос. route - шаблон маршрута
// (/employees/:id); пустой шаблон учитывается как UnmatchedRoute.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = UnmatchedRoute
	}
	method = knownMethod(method)

	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func knownMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return method
	default:
		return "OTHER"
	}
}
