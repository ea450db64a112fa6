package estimate

import "go.uber.org/zap"

// Options are the optional constraints of an estimate. Zero values mean
// "unset".
type Options struct {
	// MaxFactories caps the number of factory copies per magic-state type.
	MaxFactories uint64

	// LogicalDepthFactor stretches the logical depth; must be ≥ 1 when set.
	LogicalDepthFactor float64

	// MaxDuration bounds the runtime in ns.
	MaxDuration uint64

	// MaxPhysicalQubits bounds the total footprint.
	MaxPhysicalQubits uint64

	// Strategy of the error budget.
	Strategy ErrorBudgetStrategy

	// Logger receives progress at debug level and the result at info level.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions is an unconstrained static estimate.
func DefaultOptions() Options {
	return Options{Strategy: Static, Logger: zap.NewNop()}
}

// WithMaxFactories caps factory copies per magic-state type.
func WithMaxFactories(n uint64) Option {
	return func(o *Options) { o.MaxFactories = n }
}

// WithLogicalDepthFactor stretches the logical depth by f.
func WithLogicalDepthFactor(f float64) Option {
	return func(o *Options) { o.LogicalDepthFactor = f }
}

// WithMaxDuration bounds the runtime in ns.
func WithMaxDuration(ns uint64) Option {
	return func(o *Options) { o.MaxDuration = ns }
}

// WithMaxPhysicalQubits bounds the total footprint.
func WithMaxPhysicalQubits(n uint64) Option {
	return func(o *Options) { o.MaxPhysicalQubits = n }
}

// WithErrorBudgetStrategy selects the budget strategy.
func WithErrorBudgetStrategy(s ErrorBudgetStrategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
