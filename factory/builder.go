package factory

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/katalvlaran/qre/distill"
	"github.com/katalvlaran/qre/estimate"
	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

// ErrNoFactory indicates that no pipeline reaches the target.
var ErrNoFactory = errors.New("factory: no pipeline reaches the target error rate")

// searchKey identifies a memoized search. Qubits are keyed by identity and
// must not change after they were searched.
type searchKey struct {
	ec              qec.ErrorCorrection
	qubit           *qubit.PhysicalQubit
	outputErrorRate float64
	maxCodeDistance uint64
}

// Builder searches T factories from a fixed template set. It is safe for
// concurrent use.
type Builder struct {
	templates []*distill.Template
	opts      Options
	cache     *lru.Cache[searchKey, []*Pipeline]
}

var _ estimate.FactoryBuilder = (*Builder)(nil)

// NewBuilder validates templates and applies opts. An empty template list
// selects distill.DefaultTemplates.
func NewBuilder(templates []*distill.Template, opts ...Option) (*Builder, error) {
	if len(templates) == 0 {
		templates = distill.DefaultTemplates()
	}
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if p := o.FailureProbabilityRequirement; !(p > 0 && p < 1) {
		return nil, errors.Wrapf(ErrInvalidFailureProbability, "got %g", p)
	}

	b := &Builder{templates: templates, opts: o}
	if o.CacheSize > 0 {
		cache, err := lru.New[searchKey, []*Pipeline](o.CacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "factory: cache")
		}
		b.cache = cache
	}

	return b, nil
}

// Options returns the effective search options.
func (b *Builder) Options() Options { return b.opts }

// Templates returns the templates the builder searches.
func (b *Builder) Templates() []*distill.Template { return b.templates }

// NumMagicStateTypes implements estimate.FactoryBuilder; the builder only
// produces T states.
func (b *Builder) NumMagicStateTypes() int { return 1 }

// FindFactories implements estimate.FactoryBuilder.
func (b *Builder) FindFactories(
	ctx context.Context,
	ec qec.ErrorCorrection,
	q *qubit.PhysicalQubit,
	_ int,
	outputErrorRate float64,
	maxCodeDistance uint64,
) ([]estimate.Factory, error) {
	pipelines, err := b.Pipelines(ctx, ec, q, outputErrorRate, maxCodeDistance)
	if err != nil {
		return nil, err
	}

	return lo.Map(pipelines, func(p *Pipeline, _ int) estimate.Factory { return p }), nil
}

// Pipelines returns the Pareto frontier for the target, from the cache when
// possible.
func (b *Builder) Pipelines(
	ctx context.Context,
	ec qec.ErrorCorrection,
	q *qubit.PhysicalQubit,
	outputErrorRate float64,
	maxCodeDistance uint64,
) ([]*Pipeline, error) {
	key := searchKey{ec: ec, qubit: q, outputErrorRate: outputErrorRate, maxCodeDistance: maxCodeDistance}
	if b.cache != nil {
		if pipelines, ok := b.cache.Get(key); ok {
			cacheLookupsTotal.WithLabelValues("hit").Inc()

			return pipelines, nil
		}
		cacheLookupsTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	pipelines, stats, err := FindFactories(ctx, ec, q, b.templates, outputErrorRate, maxCodeDistance, b.opts)
	if err != nil {
		return nil, err
	}
	searchDuration.Observe(time.Since(start).Seconds())

	b.opts.Logger.Debug("factory search finished",
		zap.Float64("output_error_rate", outputErrorRate),
		zap.Uint64("max_code_distance", maxCodeDistance),
		zap.Int("probes", stats.Combinations),
		zap.Int("valid", stats.Valid),
		zap.Int("candidates", stats.Candidates),
		zap.Int("factories", len(pipelines)),
		zap.Duration("elapsed", time.Since(start)),
	)

	if b.cache != nil {
		b.cache.Add(key, pipelines)
	}

	return pipelines, nil
}

// FindBest returns the pipeline with the smallest normalized volume; ties go
// to fewer rounds, then fewer physical qubits.
func (b *Builder) FindBest(
	ctx context.Context,
	ec qec.ErrorCorrection,
	q *qubit.PhysicalQubit,
	outputErrorRate float64,
	maxCodeDistance uint64,
) (*Pipeline, error) {
	pipelines, err := b.Pipelines(ctx, ec, q, outputErrorRate, maxCodeDistance)
	if err != nil {
		return nil, err
	}
	if len(pipelines) == 0 {
		return nil, errors.Wrapf(ErrNoFactory, "target %g", outputErrorRate)
	}

	return lo.MinBy(pipelines, better), nil
}

// better orders pipelines by normalized volume, rounds and qubits.
func better(a, b *Pipeline) bool {
	switch {
	case a.NormalizedVolume() != b.NormalizedVolume():
		return a.NormalizedVolume() < b.NormalizedVolume()
	case a.NumRounds() != b.NumRounds():
		return a.NumRounds() < b.NumRounds()
	default:
		return a.PhysicalQubits() < b.PhysicalQubits()
	}
}
