package factory

import (
	"context"

	"github.com/pkg/errors"

	"github.com/katalvlaran/qre/distill"
	"github.com/katalvlaran/qre/lattice"
	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

// SearchStats counts what a search built.
type SearchStats struct {
	// Combinations is the number of pipelines the search tried to build.
	Combinations int
	// Valid is the number of pipelines built without error.
	Valid int
	// Candidates is the number of built pipelines meeting the target.
	Candidates int
}

// Searcher explores unit and code-distance combinations of one catalog for
// one target output error rate.
type Searcher struct {
	catalog  *distill.Catalog
	target   float64
	opts     Options
	frontier Frontier
	stats    SearchStats
}

// NewSearcher prepares a search for pipelines whose output error rate does
// not exceed target.
func NewSearcher(catalog *distill.Catalog, target float64, opts Options) *Searcher {
	return &Searcher{catalog: catalog, target: target, opts: opts}
}

// Frontier returns the pipelines found so far.
func (s *Searcher) Frontier() *Frontier { return &s.frontier }

// Stats returns the counters accumulated so far.
func (s *Searcher) Stats() SearchStats { return s.stats }

// canImprove is the lattice predicate for a fixed unit tuple. It reports
// true while growing code distances may still pay off: the pipeline misses
// the target without being dominated, or it cannot be built for a reason a
// larger distance can fix.
func (s *Searcher) canImprove(unitIndexes []int) lattice.Predicate {
	return func(distanceIndexes []int) bool {
		s.stats.Combinations++
		searchProbesTotal.Inc()

		units, ok := s.catalog.GetMany(distanceIndexes, unitIndexes)
		if !ok {
			return true
		}
		p, err := Build(units, units[0].QubitTErrorRate, s.opts.FailureProbabilityRequirement)
		if err != nil {
			return !errors.Is(err, ErrLowFailureProbability)
		}
		p.SetQubitCalculation(s.opts.QubitCalculation)
		s.stats.Valid++

		meetsTarget := p.OutputTErrorRate() <= s.target
		if meetsTarget {
			s.stats.Candidates++
			candidatesTotal.Inc()
		}
		notDominated := !s.frontier.Dominates(p)
		if notDominated && meetsTarget {
			s.frontier.Push(p)
		}

		return notDominated && !meetsTarget
	}
}

// ProcessCombination searches the distance box of one unit tuple: a
// monotone search finds the cheapest feasible corner, then the walk from
// there visits the non-dominated points beyond it.
func (s *Searcher) ProcessCombination(unitIndexes []int) {
	n := len(unitIndexes)
	left := s.catalog.MinDistanceIndexes(unitIndexes)
	right := s.catalog.MaxDistanceIndexes(unitIndexes)
	pred := s.canImprove(unitIndexes)

	start, ok := lattice.Search(n, left, right, pred)
	if !ok {
		return
	}
	lattice.Iterate(n, left, right, start, pred)
}

// ProcessRounds searches every unit tuple of the given length.
func (s *Searcher) ProcessRounds(ctx context.Context, numRounds int) error {
	var err error
	s.catalog.IterateAll(numRounds, func(unitIndexes []int) {
		if err != nil {
			return
		}
		if err = ctx.Err(); err != nil {
			return
		}
		s.ProcessCombination(unitIndexes)
	})

	return err
}

// FindFactories returns the Pareto frontier of pipelines reaching
// outputErrorRate with code distances up to maxCodeDistance, sorted by
// normalized qubits.
//
// When the raw T error rate already meets the target a single trivial
// pipeline at maxCodeDistance is returned. Up to opts.MaxRounds rounds are
// always searched; up to opts.MaxExtraRounds only if that finds nothing.
func FindFactories(
	ctx context.Context,
	ec qec.ErrorCorrection,
	q *qubit.PhysicalQubit,
	templates []*distill.Template,
	outputErrorRate float64,
	maxCodeDistance uint64,
	opts Options,
) ([]*Pipeline, SearchStats, error) {
	if outputErrorRate > q.TGateErrorRate {
		patch, err := qec.NewLogicalPatch(ec, q, maxCodeDistance)
		if err != nil {
			return nil, SearchStats{}, nil
		}

		return []*Pipeline{DefaultPipeline(patch)}, SearchStats{}, nil
	}

	distances := ec.CodeDistances(maxCodeDistance)
	patches := make([]*qec.LogicalPatch, len(distances))
	for i, d := range distances {
		// Distances the protocol cannot realize are left out.
		patches[i], _ = qec.NewLogicalPatch(ec, q, d)
	}
	catalog, err := distill.NewCatalog(q, patches, distances, templates)
	if err != nil {
		return nil, SearchStats{}, err
	}

	s := NewSearcher(catalog, outputErrorRate, opts)
	for rounds := 1; rounds <= opts.MaxRounds; rounds++ {
		if err = s.ProcessRounds(ctx, rounds); err != nil {
			return nil, s.Stats(), err
		}
	}
	if s.Frontier().Len() == 0 {
		for rounds := opts.MaxRounds + 1; rounds <= opts.MaxExtraRounds; rounds++ {
			if err = s.ProcessRounds(ctx, rounds); err != nil {
				return nil, s.Stats(), err
			}
		}
	}

	return s.Frontier().Items(), s.Stats(), nil
}
