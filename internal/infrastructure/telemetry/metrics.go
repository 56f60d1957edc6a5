package telemetry

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"

	"github.com/NotSleepp/possbien/internal/application/ports"
)

var _ ports.SalesRecorder = (*Metrics)(nil)

// Metrics colectores HTTP y de negocio registrados en un registro propio.
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	sales        *prometheus.CounterVec
	salesAmount  *prometheus.CounterVec
	voided       prometheus.Counter
}

// NewMetrics crea el registro con los colectores del runtime de Go y del proceso.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Peticiones HTTP procesadas.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Latencia de las peticiones HTTP.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		sales: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_sales_total",
			Help: "Ventas completadas por método de pago.",
		}, []string{"payment_method"}),
		salesAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pos_sales_amount_total",
			Help: "Monto vendido por método de pago.",
		}, []string{"payment_method"}),
		voided: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pos_sales_voided_total",
			Help: "Ventas anuladas.",
		}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests, m.httpDuration, m.sales, m.salesAmount, m.voided,
	} {
		if err := m.Registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveHTTP registra una petición terminada. path es el patrón de la ruta, no la URL.
func (m *Metrics) ObserveHTTP(method, path string, status int, seconds float64) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(seconds)
}

func (m *Metrics) SaleCompleted(paymentMethod string, total decimal.Decimal) {
	m.sales.WithLabelValues(paymentMethod).Inc()
	m.salesAmount.WithLabelValues(paymentMethod).Add(total.InexactFloat64())
}

func (m *Metrics) SaleVoided() {
	m.voided.Inc()
}
