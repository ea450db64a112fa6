package factory

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Sentinel errors reported by pipeline construction. They arrive wrapped in
// a *BuildError naming the failing round.
var (
	// ErrLowFailureProbability indicates a round whose failure probability
	// is not positive. Growing the code distance only lowers it further.
	ErrLowFailureProbability = errors.New("factory: failure probability not positive")

	// ErrHighFailureProbability indicates a round that fails with
	// probability ≥ 1.
	ErrHighFailureProbability = errors.New("factory: failure probability not below 1")

	// ErrOutputErrorRateHigherThanInput indicates a round that makes states
	// worse.
	ErrOutputErrorRateHigherThanInput = errors.New("factory: output error rate higher than input error rate")

	// ErrTooManyUnits indicates a round needing an unreasonable number of
	// units.
	ErrTooManyUnits = errors.New("factory: unreasonably high number of units required")

	// ErrNoRounds indicates a pipeline without units.
	ErrNoRounds = errors.New("factory: pipeline needs at least one round")

	// ErrMissingUnit indicates a nil unit in the round list.
	ErrMissingUnit = errors.New("factory: missing distillation unit")

	// ErrUnknownQubitCalculation indicates a qubit calculation name other
	// than "max" or "sum".
	ErrUnknownQubitCalculation = errors.New("factory: unknown qubit calculation")

	// ErrInvalidFailureProbability indicates a failure probability
	// requirement outside (0, 1).
	ErrInvalidFailureProbability = errors.New("factory: failure probability requirement must be in (0, 1)")
)

// BuildError reports the round at which a pipeline could not be built.
type BuildError struct {
	Round int
	Err   error
}

// Error implements error.
func (e *BuildError) Error() string {
	return fmt.Sprintf("factory: round %d: %v", e.Round, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *BuildError) Unwrap() error { return e.Err }

// QubitCalculation selects how round footprints combine.
type QubitCalculation int

const (
	// QubitCalculationMax shares qubits between rounds.
	QubitCalculationMax QubitCalculation = iota

	// QubitCalculationSum gives every round its own qubits.
	QubitCalculationSum
)

// String returns "max" or "sum".
func (c QubitCalculation) String() string {
	if c == QubitCalculationSum {
		return "sum"
	}

	return "max"
}

// ParseQubitCalculation maps "max" and "sum" to a QubitCalculation; the
// empty name selects QubitCalculationMax.
func ParseQubitCalculation(name string) (QubitCalculation, error) {
	switch name {
	case "", "max":
		return QubitCalculationMax, nil
	case "sum":
		return QubitCalculationSum, nil
	default:
		return 0, errors.Wrapf(ErrUnknownQubitCalculation, "%q", name)
	}
}

const (
	// DefaultMaxRounds is the number of rounds always searched.
	DefaultMaxRounds = 3

	// DefaultMaxExtraRounds is the number of rounds searched when nothing
	// was found with up to MaxRounds.
	DefaultMaxExtraRounds = 5

	// DefaultFailureProbabilityRequirement is the probability that a
	// factory run does not deliver its states.
	DefaultFailureProbabilityRequirement = 0.01

	// DefaultCacheSize bounds the number of memoized searches.
	DefaultCacheSize = 256

	// maxUnitsPerRound caps round sizing.
	maxUnitsPerRound uint64 = 1_000_000_000_000_000
)

// Options configures a Builder.
type Options struct {
	// MaxRounds is the largest number of rounds always explored.
	MaxRounds int

	// MaxExtraRounds is explored only when up to MaxRounds yields no
	// factory.
	MaxExtraRounds int

	// FailureProbabilityRequirement is passed to Build for every candidate.
	FailureProbabilityRequirement float64

	// QubitCalculation is applied to every built pipeline.
	QubitCalculation QubitCalculation

	// CacheSize bounds memoized FindFactories results; 0 disables the cache.
	CacheSize int

	// Logger receives search statistics at debug level.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the search defaults.
func DefaultOptions() Options {
	return Options{
		MaxRounds:                     DefaultMaxRounds,
		MaxExtraRounds:                DefaultMaxExtraRounds,
		FailureProbabilityRequirement: DefaultFailureProbabilityRequirement,
		QubitCalculation:              QubitCalculationMax,
		CacheSize:                     DefaultCacheSize,
		Logger:                        zap.NewNop(),
	}
}

// WithMaxRounds sets the number of rounds always explored.
func WithMaxRounds(n int) Option {
	return func(o *Options) { o.MaxRounds = n }
}

// WithMaxExtraRounds sets the fallback round limit.
func WithMaxExtraRounds(n int) Option {
	return func(o *Options) { o.MaxExtraRounds = n }
}

// WithFailureProbabilityRequirement sets the per-run failure budget.
func WithFailureProbabilityRequirement(p float64) Option {
	return func(o *Options) { o.FailureProbabilityRequirement = p }
}

// WithQubitCalculation selects max or sum footprints.
func WithQubitCalculation(c QubitCalculation) Option {
	return func(o *Options) { o.QubitCalculation = c }
}

// WithCacheSize bounds the memoization cache.
func WithCacheSize(n int) Option {
	return func(o *Options) { o.CacheSize = n }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
