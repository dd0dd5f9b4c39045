package geodex

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures the Engine.
type Option func(*engineConfig)

type engineConfig struct {
	units      UnitSystem
	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithUnits fixes the engine's unit system. Defaults to Miles. Combine with
// ParseUnitSystem to construct an engine from a free-form unit indicator:
//
//	engine, err := geodex.New(geodex.WithUnits(geodex.ParseUnitSystem("km")))
func WithUnits(u UnitSystem) Option {
	return func(c *engineConfig) {
		c.units = u
	}
}

// WithLogger enables structured logging of engine operations at Debug
// level. Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithPrometheus registers engine metrics (operation counts, durations and
// search evaluation totals) on the given registerer. Pass nil to disable
// (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return func(c *engineConfig) {
		c.metricsReg = reg
	}
}
