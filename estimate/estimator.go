package estimate

import (
	"context"
	"math"
	"math/bits"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

// Estimator computes physical estimates for one algorithm on one qubit and
// error correction protocol. It is safe for concurrent use if its builder
// and overhead are.
type Estimator struct {
	ec       qec.ErrorCorrection
	qubit    *qubit.PhysicalQubit
	builder  FactoryBuilder
	overhead Overhead
	opts     Options
}

// New wires an estimator and validates opts.
func New(
	ec qec.ErrorCorrection,
	q *qubit.PhysicalQubit,
	builder FactoryBuilder,
	overhead Overhead,
	opts ...Option,
) (*Estimator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.LogicalDepthFactor != 0 && o.LogicalDepthFactor < 1 {
		return nil, errors.Wrapf(ErrInvalidLogicalDepthFactor, "got %g", o.LogicalDepthFactor)
	}

	return &Estimator{ec: ec, qubit: q, builder: builder, overhead: overhead, opts: o}, nil
}

// Options returns the effective options.
func (e *Estimator) Options() Options { return e.opts }

// Estimate dispatches on the configured constraints: none, a duration bound
// or a qubit bound. Both bounds at once are rejected.
func (e *Estimator) Estimate(ctx context.Context, budget ErrorBudget) (*Result, error) {
	var (
		mode string
		run  func(context.Context, ErrorBudget) (*Result, error)
	)
	switch {
	case e.opts.MaxDuration > 0 && e.opts.MaxPhysicalQubits > 0:
		return nil, ErrBothConstraints
	case e.opts.MaxDuration > 0:
		mode, run = "max_duration", e.estimateWithMaxDuration
	case e.opts.MaxPhysicalQubits > 0:
		mode, run = "max_qubits", e.estimateWithMaxQubits
	default:
		mode, run = "unrestricted", e.estimateUnrestricted
	}

	start := time.Now()
	result, err := run(ctx, budget)
	estimateDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	if err != nil {
		estimatesTotal.WithLabelValues(mode, "error").Inc()

		return nil, err
	}
	estimatesTotal.WithLabelValues(mode, "success").Inc()

	e.opts.Logger.Info("estimate converged",
		zap.String("mode", mode),
		zap.Uint64("code_distance", result.LogicalPatch.CodeDistance),
		zap.Uint64("num_cycles", result.NumCycles),
		zap.Uint64("physical_qubits", result.PhysicalQubits),
		zap.Uint64("runtime_ns", result.Runtime),
		zap.Duration("elapsed", time.Since(start)),
	)

	return result, nil
}

// computeNumCycles is the logical depth, stretched by the depth factor.
func (e *Estimator) computeNumCycles(budget *ErrorBudget) (uint64, error) {
	numCycles := e.overhead.LogicalDepth(budget)
	if f := e.opts.LogicalDepthFactor; f > 0 {
		numCycles = floatToUint(math.Ceil(float64(numCycles) * f))
	}

	if numCycles == 0 {
		for i, n := 0, e.builder.NumMagicStateTypes(); i < n; i++ {
			if e.overhead.NumMagicStates(budget, i) > 0 {
				return 0, nil
			}
		}

		return 0, ErrAlgorithmHasNoResources
	}

	return numCycles, nil
}

// volume is the number of logical qubit-cycles.
func (e *Estimator) volume(numCycles uint64) float64 {
	return float64(e.overhead.LogicalQubits()) * float64(numCycles)
}

func (e *Estimator) requiredLogicalErrorRate(logicalBudget float64, numCycles uint64) float64 {
	return logicalBudget / e.volume(numCycles)
}

func (e *Estimator) codeDistance(required float64) (uint64, error) {
	d, err := e.ec.ComputeCodeDistance(e.qubit, required)
	if err != nil {
		return 0, &CannotComputeMagicStatesError{Rate: required, Err: err}
	}

	return d, nil
}

// logicalCyclesFor is the largest cycle count the patch sustains within the
// logical budget.
func (e *Estimator) logicalCyclesFor(logicalBudget float64, patch *qec.LogicalPatch) uint64 {
	return floatToUint(math.Floor(logicalBudget / (float64(e.overhead.LogicalQubits()) * patch.LogicalErrorRate)))
}

// numFactories is the number of copies of f needed to produce numStates
// within numCycles logical cycles.
func numFactories(patch *qec.LogicalPatch, numStates uint64, f Factory, numCycles uint64) uint64 {
	total := mulSat(numCycles, patch.LogicalCycleTime)
	if f.Duration() == 0 {
		return 1
	}
	perCopy := mulSat(total/f.Duration(), f.NumOutputStates())
	if perCopy == 0 {
		return math.MaxUint64
	}

	return ceilDiv(numStates, perCopy)
}

// numRuns is the number of sequential runs copies of f need for numStates.
func numRuns(numStates, copies uint64, f Factory) uint64 {
	perRun := mulSat(copies, f.NumOutputStates())
	if perRun == 0 {
		return math.MaxUint64
	}

	return ceilDiv(numStates, perRun)
}

// cyclesForRuns is the number of logical cycles spanning runs factory runs.
func cyclesForRuns(patch *qec.LogicalPatch, runs uint64, f Factory) uint64 {
	return ceilDiv(mulSat(runs, f.Duration()), patch.LogicalCycleTime)
}

func ceilDiv(a, b uint64) uint64 {
	if a == 0 {
		return 0
	}

	return (a-1)/b + 1
}

// mulSat multiplies and saturates at math.MaxUint64.
func mulSat(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}

	return lo
}

// floatToUint truncates x and saturates at the uint64 range.
func floatToUint(x float64) uint64 {
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(x)
	}
}
