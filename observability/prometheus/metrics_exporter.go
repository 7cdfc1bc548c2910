// Package prometheus adapts taskpool.MetricsPolicy to Prometheus
// collectors, so pool activity shows up in an existing registry.
package prometheus

import (
	"errors"
	"fmt"

	"github.com/Andrej220/go-utils/taskpool"
	prom "github.com/prometheus/client_golang/prometheus"
)

// MetricsExporter implements taskpool.MetricsPolicy on top of
// Prometheus collectors.
type MetricsExporter struct {
	tasksExecutedTotal prom.Counter
	tasksFailedTotal   prom.Counter
	tasksQueuedTotal   prom.Counter
	queueDepth         prom.Gauge
}

var _ taskpool.MetricsPolicy = (*MetricsExporter)(nil)

// NewMetricsExporter creates and registers the pool collectors.
// A nil reg falls back to the default registerer; collectors already
// registered under the same namespace are reused.
func NewMetricsExporter(namespace string, reg prom.Registerer) (*MetricsExporter, error) {
	if namespace == "" {
		namespace = "taskpool"
	}
	if reg == nil {
		reg = prom.DefaultRegisterer
	}

	executed := prom.NewCounter(prom.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_executed_total",
		Help:      "Total number of tasks executed by the pool.",
	})
	failed := prom.NewCounter(prom.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_failed_total",
		Help:      "Total number of tasks whose final attempt failed.",
	})
	queuedTotal := prom.NewCounter(prom.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_queued_total",
		Help:      "Total number of tasks accepted into the queue.",
	})
	depth := prom.NewGauge(prom.GaugeOpts{
		Namespace: namespace,
		Name:      "queue_depth",
		Help:      "Current number of tasks waiting for a worker.",
	})

	var err error
	if executed, err = registerCollector(reg, executed); err != nil {
		return nil, err
	}
	if failed, err = registerCollector(reg, failed); err != nil {
		return nil, err
	}
	if queuedTotal, err = registerCollector(reg, queuedTotal); err != nil {
		return nil, err
	}
	if depth, err = registerCollector(reg, depth); err != nil {
		return nil, err
	}

	return &MetricsExporter{
		tasksExecutedTotal: executed,
		tasksFailedTotal:   failed,
		tasksQueuedTotal:   queuedTotal,
		queueDepth:         depth,
	}, nil
}

func (m *MetricsExporter) IncExecuted() {
	if m == nil {
		return
	}
	m.tasksExecutedTotal.Inc()
}

func (m *MetricsExporter) IncFailed() {
	if m == nil {
		return
	}
	m.tasksFailedTotal.Inc()
}

func (m *MetricsExporter) IncQueued() {
	if m == nil {
		return
	}
	m.tasksQueuedTotal.Inc()
	m.queueDepth.Inc()
}

func (m *MetricsExporter) BatchDecQueued(n int64) {
	if m == nil {
		return
	}
	m.queueDepth.Sub(float64(n))
}

func registerCollector[T prom.Collector](reg prom.Registerer, collector T) (T, error) {
	err := reg.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegisteredErr prom.AlreadyRegisteredError
	if errors.As(err, &alreadyRegisteredErr) {
		existing, ok := alreadyRegisteredErr.ExistingCollector.(T)
		if !ok {
			return collector, fmt.Errorf("collector type mismatch for %T", collector)
		}
		return existing, nil
	}

	return collector, err
}
