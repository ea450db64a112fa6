package estimate

import (
	"context"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/qre/qec"
)

// baseline collects what both constrained estimates derive before scanning
// code distances.
type baseline struct {
	budget       ErrorBudget
	numCycles    uint64
	numStates    uint64
	requiredRate float64 // per magic state
	required     float64 // per logical qubit and cycle
	distances    []uint64
}

func (e *Estimator) newBaseline(budget ErrorBudget) (*baseline, error) {
	if e.builder.NumMagicStateTypes() != 1 {
		return nil, ErrMultipleMagicStatesNotSupported
	}

	// Constrained scans use the budget unpruned.
	b := budget
	numCycles, err := e.computeNumCycles(&b)
	if err != nil {
		return nil, err
	}
	numStates := e.overhead.NumMagicStates(&b, 0)
	required := e.requiredLogicalErrorRate(b.Logical, numCycles)
	minDistance, err := e.codeDistance(required)
	if err != nil {
		return nil, err
	}

	distances := lo.Filter(e.ec.CodeDistances(e.ec.MaxCodeDistance()), func(d uint64, _ int) bool { return d >= minDistance })
	slices.Reverse(distances)

	return &baseline{
		budget:       b,
		numCycles:    numCycles,
		numStates:    numStates,
		requiredRate: b.MagicStates / float64(numStates),
		required:     required,
		distances:    distances,
	}, nil
}

// factoryCache re-queries the builder only when the distance drops below
// the largest code distance the previous factories use.
type factoryCache struct {
	factories []Factory
	maxDist   uint64
	valid     bool
}

func (c *factoryCache) get(ctx context.Context, e *Estimator, rate float64, d uint64) ([]Factory, error) {
	if c.valid && c.maxDist <= d {
		return c.factories, nil
	}

	factories, err := e.builder.FindFactories(ctx, e.ec, e.qubit, 0, rate, d)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		return nil, &CannotComputeMagicStatesError{Rate: rate, Err: err}
	}
	c.factories = factories
	c.valid = len(factories) > 0
	c.maxDist = 0
	for _, f := range factories {
		c.maxDist = max(c.maxDist, f.MaxCodeDistance())
	}

	return factories, nil
}

// withoutFactories is the result of an algorithm that needs no magic states.
func (e *Estimator) withoutFactories(base *baseline) (*Result, error) {
	patch, err := qec.NewLogicalPatch(e.ec, e.qubit, base.distances[len(base.distances)-1])
	if err != nil {
		return nil, err
	}

	return e.newResult(patch, base.numCycles, []*FactoryPart{nil}, base.required, base.budget), nil
}

func (e *Estimator) estimateWithMaxDuration(ctx context.Context, budget ErrorBudget) (*Result, error) {
	base, err := e.newBaseline(budget)
	if err != nil {
		return nil, err
	}

	if base.numStates == 0 {
		result, err := e.withoutFactories(base)
		if err != nil {
			return nil, err
		}
		if result.Runtime > e.opts.MaxDuration {
			return nil, ErrMaxDurationTooSmall
		}

		return result, nil
	}

	var (
		best  *Result
		cache factoryCache
	)
	for _, d := range base.distances {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		patch, err := qec.NewLogicalPatch(e.ec, e.qubit, d)
		if err != nil {
			return nil, err
		}
		byDuration := e.opts.MaxDuration / patch.LogicalCycleTime
		if byDuration < base.numCycles {
			continue
		}
		byError := e.logicalCyclesFor(base.budget.Logical, patch)
		if byError < base.numCycles {
			continue
		}
		allowed := min(byDuration, byError)

		factories, err := cache.get(ctx, e, base.requiredRate, d)
		if err != nil {
			return nil, err
		}

		for _, f := range factories {
			if ceilDiv(f.Duration(), patch.LogicalCycleTime) > allowed {
				continue
			}
			copies := numFactories(patch, base.numStates, f, allowed)
			if e.opts.MaxFactories > 0 && copies > e.opts.MaxFactories {
				continue
			}
			runs := numRuns(base.numStates, copies, f)
			cycles := max(cyclesForRuns(patch, runs, f), base.numCycles)

			result := e.newResult(patch, cycles, []*FactoryPart{{
				Factory:                 f,
				Copies:                  copies,
				Runs:                    runs,
				NumMagicStates:          base.numStates,
				RequiredOutputErrorRate: base.requiredRate,
			}}, base.required, base.budget)
			if best == nil || result.PhysicalQubits < best.PhysicalQubits {
				best = result
			}
		}
	}

	if best == nil {
		return nil, ErrMaxDurationTooSmall
	}

	return best, nil
}

func (e *Estimator) estimateWithMaxQubits(ctx context.Context, budget ErrorBudget) (*Result, error) {
	base, err := e.newBaseline(budget)
	if err != nil {
		return nil, err
	}

	if base.numStates == 0 {
		result, err := e.withoutFactories(base)
		if err != nil {
			return nil, err
		}
		if result.PhysicalQubits > e.opts.MaxPhysicalQubits {
			return nil, ErrMaxPhysicalQubitsTooSmall
		}

		return result, nil
	}

	var (
		best  *Result
		cache factoryCache
	)
	for _, d := range base.distances {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		patch, err := qec.NewLogicalPatch(e.ec, e.qubit, d)
		if err != nil {
			return nil, err
		}
		algorithmQubits := mulSat(e.overhead.LogicalQubits(), patch.PhysicalQubits)
		if e.opts.MaxPhysicalQubits <= algorithmQubits {
			continue
		}
		allowedQubits := e.opts.MaxPhysicalQubits - algorithmQubits
		byError := e.logicalCyclesFor(base.budget.Logical, patch)
		if byError < base.numCycles {
			continue
		}

		factories, err := cache.get(ctx, e, base.requiredRate, d)
		if err != nil {
			return nil, err
		}
		fitting := lo.Filter(factories, func(f Factory, _ int) bool {
			return f.PhysicalQubits() > 0 && f.PhysicalQubits() <= allowedQubits
		})
		if len(fitting) == 0 {
			continue
		}
		f := lo.MinBy(fitting, func(a, b Factory) bool { return a.NormalizedVolume() < b.NormalizedVolume() })

		// as many copies as fit, but no more than finish within the layout
		copies := min(allowedQubits/f.PhysicalQubits(), max(numFactories(patch, base.numStates, f, base.numCycles), 1))
		if e.opts.MaxFactories > 0 {
			copies = min(copies, e.opts.MaxFactories)
		}
		runs := numRuns(base.numStates, copies, f)
		cycles := max(cyclesForRuns(patch, runs, f), base.numCycles)
		if cycles > byError {
			continue
		}

		result := e.newResult(patch, cycles, []*FactoryPart{{
			Factory:                 f,
			Copies:                  copies,
			Runs:                    runs,
			NumMagicStates:          base.numStates,
			RequiredOutputErrorRate: base.requiredRate,
		}}, base.required, base.budget)
		if best == nil || result.Runtime < best.Runtime {
			best = result
		}
	}

	if best == nil {
		return nil, ErrMaxPhysicalQubitsTooSmall
	}

	return best, nil
}
