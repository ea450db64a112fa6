package estimate

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qre/qec"
)

// typeSearch holds the factory candidates of one magic-state type.
type typeSearch struct {
	numStates    uint64
	requiredRate float64
	factories    []Factory
}

// choice is an accepted factory together with the cycle count it implies.
type choice struct {
	factory   Factory
	numCycles uint64
}

func (e *Estimator) estimateUnrestricted(ctx context.Context, budget ErrorBudget) (*Result, error) {
	numCycles, err := e.computeNumCycles(&budget)
	if err != nil {
		return nil, err
	}

	// a factory cap conflicts with redistributing the budget
	strategy := e.opts.Strategy
	if e.opts.MaxFactories > 0 {
		strategy = Static
	}

	var failedDistance uint64
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iterationsTotal.Inc()

		b := budget
		if pruner, ok := e.overhead.(BudgetPruner); ok {
			pruner.PruneErrorBudget(&b, e.opts.Strategy)
		}

		required := e.requiredLogicalErrorRate(b.Logical, numCycles)
		d, err := e.codeDistance(required)
		if err != nil {
			return nil, err
		}
		// a static budget must move to a larger distance after a failure
		if strategy == Static && d <= failedDistance {
			if d, err = e.nextDistance(failedDistance, required); err != nil {
				return nil, err
			}
		}
		patch, err := qec.NewLogicalPatch(e.ec, e.qubit, d)
		if err != nil {
			return nil, err
		}

		var maxCycles uint64
		switch strategy {
		case PruneLogicalAndRotations:
			logical := patch.LogicalErrorRate * e.volume(numCycles)
			b.MagicStates += b.Logical - logical
			b.Logical = logical
			maxCycles = numCycles
		default:
			maxCycles = e.logicalCyclesFor(b.Logical, patch)
		}

		e.opts.Logger.Debug("estimate iteration",
			zap.Uint64("num_cycles", numCycles),
			zap.Uint64("max_cycles", maxCycles),
			zap.Uint64("code_distance", d),
			zap.Float64("required_logical_error_rate", required),
		)

		searches, err := e.searchFactories(ctx, &b, d)
		if err != nil {
			return nil, err
		}

		parts, cycles, ok := e.selectFactories(patch, searches, numCycles, maxCycles)
		if ok {
			return e.newResult(patch, cycles, parts, required, b), nil
		}

		if maxCycles == math.MaxUint64 {
			return nil, &CannotComputeMagicStatesError{Rate: required}
		}
		failedDistance = d
		numCycles = maxCycles + 1
	}
}

// nextDistance is the smallest admissible code distance above d.
func (e *Estimator) nextDistance(d uint64, required float64) (uint64, error) {
	for _, next := range e.ec.CodeDistances(e.ec.MaxCodeDistance()) {
		if next > d {
			return next, nil
		}
	}

	return 0, &CannotComputeMagicStatesError{
		Rate: required,
		Err:  errors.Wrapf(qec.ErrNoCodeDistance, "no distance above %d", d),
	}
}

// searchFactories queries the builder for every magic-state type
// concurrently. Types without states are left with zero numStates.
func (e *Estimator) searchFactories(ctx context.Context, b *ErrorBudget, d uint64) ([]typeSearch, error) {
	numTypes := e.builder.NumMagicStateTypes()
	searches := make([]typeSearch, numTypes)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < numTypes; i++ {
		i := i
		numStates := e.overhead.NumMagicStates(b, i)
		if numStates == 0 {
			continue
		}
		rate := b.MagicStates / float64(numTypes) / float64(numStates)
		searches[i] = typeSearch{numStates: numStates, requiredRate: rate}

		g.Go(func() error {
			factories, err := e.builder.FindFactories(gctx, e.ec, e.qubit, i, rate, d)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				return &CannotComputeMagicStatesError{Rate: rate, Err: err}
			}
			searches[i].factories = factories

			e.opts.Logger.Debug("factories found",
				zap.Int("magic_state_type", i),
				zap.Float64("required_output_error_rate", rate),
				zap.Int("factories", len(factories)),
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return searches, nil
}

// selectFactories picks one factory per type in order. Every accepted type
// may raise the cycle count the next type sees. ok is false when some type
// has no factory fitting into maxCycles.
func (e *Estimator) selectFactories(
	patch *qec.LogicalPatch,
	searches []typeSearch,
	numCycles, maxCycles uint64,
) ([]*FactoryPart, uint64, bool) {
	parts := make([]*FactoryPart, len(searches))
	for i, s := range searches {
		if s.numStates == 0 {
			continue
		}
		if len(s.factories) == 0 {
			return nil, 0, false
		}

		c, ok := e.findFactory(patch, s, numCycles, maxCycles)
		if !ok {
			return nil, 0, false
		}
		numCycles = c.numCycles

		copies := numFactories(patch, s.numStates, c.factory, numCycles)
		parts[i] = &FactoryPart{
			Factory:                 c.factory,
			Copies:                  copies,
			Runs:                    numRuns(s.numStates, copies, c.factory),
			NumMagicStates:          s.numStates,
			RequiredOutputErrorRate: s.requiredRate,
		}
	}

	return parts, numCycles, true
}

// findFactory prefers the smallest normalized volume among factories that
// fit into minCycles; otherwise it extends the runtime up to maxCycles,
// minimizing normalized volume and then the cycle count.
func (e *Estimator) findFactory(patch *qec.LogicalPatch, s typeSearch, minCycles, maxCycles uint64) (choice, bool) {
	algorithmDuration := mulSat(minCycles, patch.LogicalCycleTime)

	fitting := lo.Filter(s.factories, func(f Factory, _ int) bool {
		return f.Duration() <= algorithmDuration && e.withinMaxFactories(patch, s.numStates, f, minCycles)
	})
	if len(fitting) > 0 {
		best := lo.MinBy(fitting, func(a, b Factory) bool { return a.NormalizedVolume() < b.NormalizedVolume() })

		return choice{factory: best, numCycles: minCycles}, true
	}

	extended := lo.FilterMap(s.factories, func(f Factory, _ int) (choice, bool) {
		var cycles uint64
		if e.opts.MaxFactories > 0 {
			runs := numRuns(s.numStates, e.opts.MaxFactories, f)
			cycles = cyclesForRuns(patch, runs, f)
		} else {
			cycles = ceilDiv(f.Duration(), patch.LogicalCycleTime)
		}

		return choice{factory: f, numCycles: cycles}, cycles <= maxCycles
	})
	if len(extended) == 0 {
		return choice{}, false
	}

	return lo.MinBy(extended, func(a, b choice) bool {
		if a.factory.NormalizedVolume() != b.factory.NormalizedVolume() {
			return a.factory.NormalizedVolume() < b.factory.NormalizedVolume()
		}

		return a.numCycles < b.numCycles
	}), true
}

func (e *Estimator) withinMaxFactories(patch *qec.LogicalPatch, numStates uint64, f Factory, numCycles uint64) bool {
	return e.opts.MaxFactories == 0 || numFactories(patch, numStates, f, numCycles) <= e.opts.MaxFactories
}
