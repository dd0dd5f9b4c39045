package geodex

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// engineMetrics holds the prometheus collectors for engine operations.
type engineMetrics struct {
	operations        *prometheus.CounterVec
	duration          *prometheus.HistogramVec
	medianEvaluations prometheus.Counter
}

func newEngineMetrics(reg prometheus.Registerer) (*engineMetrics, error) {
	m := &engineMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "geodex",
			Subsystem: "engine",
			Name:      "operations_total",
			Help:      "Total engine operations by type.",
		}, []string{"operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "geodex",
			Subsystem: "engine",
			Name:      "operation_duration_seconds",
			Help:      "Engine operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		medianEvaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "geodex",
			Subsystem: "engine",
			Name:      "median_evaluations_total",
			Help:      "Total candidate evaluations spent by the minimum-distance search.",
		}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.medianEvaluations); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or reuses the already registered one.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	if err := reg.Register(*c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			existing, ok := are.ExistingCollector.(T)
			if !ok {
				return fmt.Errorf("geodex: metric already registered with incompatible type: %T", are.ExistingCollector)
			}
			*c = existing
			return nil
		}
		return fmt.Errorf("geodex: register metric: %w", err)
	}
	return nil
}

// observer provides logging and metrics for engine operations. The compound
// operations report through it; scalar primitives such as Distance stay off
// the observer to keep their hot path free of bookkeeping.
type observer struct {
	logger  *zap.Logger
	metrics *engineMetrics
}

func newObserver(logger *zap.Logger, reg prometheus.Registerer) (*observer, error) {
	var m *engineMetrics
	if reg != nil {
		var err error
		m, err = newEngineMetrics(reg)
		if err != nil {
			return nil, err
		}
	}
	return &observer{logger: logger, metrics: m}, nil
}

// observe records one completed operation.
func (o *observer) observe(op string, start time.Time, fields ...zap.Field) {
	dur := time.Since(start)

	if o.metrics != nil {
		o.metrics.operations.WithLabelValues(op).Inc()
		o.metrics.duration.WithLabelValues(op).Observe(dur.Seconds())
	}

	if ce := o.logger.Check(zap.DebugLevel, "operation completed"); ce != nil {
		ce.Write(append(fields, zap.String("op", op), zap.Duration("duration", dur))...)
	}
}

// searchEvaluations adds one search run's candidate evaluation count.
func (o *observer) searchEvaluations(n int) {
	if o.metrics != nil {
		o.metrics.medianEvaluations.Add(float64(n))
	}
}
