// Package metrics exports receipt pipeline counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/wcpos/woocommerce-pos-receipts/internal/application/service"
)

const namespace = "wcpos_receipts"

// Recorder counts render, transform and fiscal fallback events.
type Recorder struct {
	renders    *prometheus.CounterVec
	transforms *prometheus.CounterVec
	fallbacks  *prometheus.CounterVec
}

var _ service.Recorder = (*Recorder)(nil)

// NewRecorder creates the counters and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Receipt template renders by engine and outcome.",
		}, []string{"engine", "outcome"}),
		transforms: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transforms_total",
			Help:      "Receipt payload transforms by output format.",
		}, []string{"format"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fiscal_fallbacks_total",
			Help:      "Fiscal receipts rebuilt from live order data.",
		}, []string{"reason"}),
	}

	for _, c := range []prometheus.Collector{r.renders, r.transforms, r.fallbacks} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Recorder) RenderCompleted(engine string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.renders.WithLabelValues(engine, outcome).Inc()
}

func (r *Recorder) TransformCompleted(format string) {
	r.transforms.WithLabelValues(format).Inc()
}

func (r *Recorder) FiscalFallback(reason string) {
	r.fallbacks.WithLabelValues(reason).Inc()
}
