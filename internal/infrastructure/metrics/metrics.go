package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "juancho_front"

// Metrics colectores Prometheus del cliente. Todos los métodos aceptan receptor nil
// para que los servicios funcionen sin métricas en pruebas.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests   *prometheus.CounterVec
	apiDuration   *prometheus.HistogramVec
	forcedLogouts *prometheus.CounterVec
	loadFailures  *prometheus.CounterVec
	cartItems     prometheus.Gauge
	httpRequests  *prometheus.CounterVec
	refreshRuns   *prometheus.CounterVec
}

// New crea un registro propio (no el global) con los colectores de la aplicación.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		apiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Llamadas al backend por endpoint, método y resultado.",
		}, []string{"endpoint", "method", "status"}),
		apiDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Duración de las llamadas al backend.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}, []string{"endpoint", "method"}),
		forcedLogouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "session",
			Name:      "forced_logouts_total",
			Help:      "Cierres de sesión forzados por motivo.",
		}, []string{"reason"}),
		loadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "load_failures_total",
			Help:      "Colecciones que no pudieron cargarse.",
		}, []string{"collection"}),
		cartItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "cart",
			Name:      "items",
			Help:      "Unidades en el carrito actual.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Peticiones atendidas por el adaptador local.",
		}, []string{"method", "route", "status"}),
		refreshRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scheduler",
			Name:      "refresh_runs_total",
			Help:      "Ejecuciones de la recarga periódica.",
		}, []string{"success"}),
	}

	m.registry.MustRegister(
		m.apiRequests,
		m.apiDuration,
		m.forcedLogouts,
		m.loadFailures,
		m.cartItems,
		m.httpRequests,
		m.refreshRuns,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry expone el registro (para pruebas con testutil).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler handler HTTP para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveAPI registra una llamada al backend. status 0 = error de red.
func (m *Metrics) ObserveAPI(endpoint, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	label := "network_error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.apiRequests.WithLabelValues(endpoint, method, label).Inc()
	m.apiDuration.WithLabelValues(endpoint, method).Observe(d.Seconds())
}

func (m *Metrics) ForcedLogout(reason string) {
	if m == nil {
		return
	}
	m.forcedLogouts.WithLabelValues(reason).Inc()
}

func (m *Metrics) LoadFailed(collection string) {
	if m == nil {
		return
	}
	m.loadFailures.WithLabelValues(collection).Inc()
}

func (m *Metrics) SetCartItems(n int) {
	if m == nil {
		return
	}
	m.cartItems.Set(float64(n))
}

func (m *Metrics) ObserveHTTP(method, route string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) RefreshRun(ok bool) {
	if m == nil {
		return
	}
	m.refreshRuns.WithLabelValues(strconv.FormatBool(ok)).Inc()
}
