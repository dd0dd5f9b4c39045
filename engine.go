package geodex

import (
	"fmt"

	"go.uber.org/zap"
)

// Engine computes geographic relationships between points on a sphere
// approximating Earth. The unit system, fixed at construction, selects the
// sphere radius used by every distance the instance computes. Engines are
// immutable and safe for concurrent use.
type Engine struct {
	units  UnitSystem
	radius float64
	obs    *observer
}

// New creates an Engine. Without options the engine measures in Miles.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{units: Miles}
	for _, o := range opts {
		o(cfg)
	}

	if !cfg.units.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUnits, cfg.units)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	return &Engine{
		units:  cfg.units,
		radius: cfg.units.EarthRadius(),
		obs:    obs,
	}, nil
}

// Units returns the engine's unit system.
func (e *Engine) Units() UnitSystem { return e.units }

// EarthRadius returns the sphere radius in the engine's units.
func (e *Engine) EarthRadius() float64 { return e.radius }
