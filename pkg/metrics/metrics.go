package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contadores de negocio expuestos en /metrics. Se registran en el
// Registry recibido (en main: prometheus.DefaultRegisterer) para no depender
// de estado global en los tests.
type Metrics struct {
	LoginsTotal       *prometheus.CounterVec
	TransactionsTotal *prometheus.CounterVec
	StockRejections   prometheus.Counter
}

// New crea y registra los contadores.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LoginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estoque",
			Name:      "logins_total",
			Help:      "Intentos de login, por resultado (ok/denied).",
		}, []string{"result"}),
		TransactionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estoque",
			Name:      "transactions_total",
			Help:      "Movimientos de stock registrados, por tipo (in/out).",
		}, []string{"type"}),
		StockRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "estoque",
			Name:      "stock_rejections_total",
			Help:      "Salidas rechazadas por stock insuficiente.",
		}),
	}
	reg.MustRegister(m.LoginsTotal, m.TransactionsTotal, m.StockRejections)
	return m
}
