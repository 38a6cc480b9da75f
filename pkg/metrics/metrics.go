package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados possíveis de uma propagação para a API de registros.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// PropagationTotal conta as propagações de registros para a API de
	// registros, por recurso e resultado. Falhas de propagação não chegam
	// ao chamador da operação; este contador é a única forma de
	// observá-las além dos logs.
	PropagationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "panisul",
		Name:      "record_propagation_total",
		Help:      "Total de propagações de registros para a API de registros, por recurso e resultado.",
	}, []string{"resource", "result"})

	// RecordsAppended conta os registros aceitos pela API de registros.
	RecordsAppended = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "panisul",
		Name:      "records_appended_total",
		Help:      "Total de registros aceitos pela API de registros, por recurso.",
	}, []string{"resource"})
)

// Handler expõe as métricas no formato Prometheus
func Handler() http.Handler {
	return promhttp.Handler()
}
