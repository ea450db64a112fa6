package job

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/qre/distill"
	"github.com/katalvlaran/qre/estimate"
	"github.com/katalvlaran/qre/factory"
	"github.com/katalvlaran/qre/layout"
	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
	"github.com/katalvlaran/qre/report"
)

// Job is a validated, wired estimation job.
type Job struct {
	Qubit       *qubit.PhysicalQubit
	Protocol    *qec.Protocol
	Layout      *layout.PSSPC
	Builder     *factory.Builder
	Estimator   *estimate.Estimator
	Budget      estimate.ErrorBudget
	TotalBudget float64
}

// Build resolves and validates p. The logger is handed to the factory
// builder and the estimator; nil disables logging.
func (p *Params) Build(logger *zap.Logger) (*Job, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	q, err := p.qubit()
	if err != nil {
		return nil, err
	}
	protocol, err := p.protocol(q)
	if err != nil {
		return nil, err
	}

	templates, err := p.templates()
	if err != nil {
		return nil, err
	}
	factoryOpts, err := p.factoryOptions(logger)
	if err != nil {
		return nil, err
	}
	builder, err := factory.NewBuilder(templates, factoryOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "job: distillation")
	}

	psspc, err := layout.NewPSSPC(p.LogicalCounts)
	if err != nil {
		return nil, err
	}
	budget, total, err := p.budget(psspc)
	if err != nil {
		return nil, err
	}

	opts, err := p.estimateOptions(logger)
	if err != nil {
		return nil, err
	}
	estimator, err := estimate.New(protocol, q, builder, psspc, opts...)
	if err != nil {
		return nil, err
	}

	return &Job{
		Qubit:       q,
		Protocol:    protocol,
		Layout:      psspc,
		Builder:     builder,
		Estimator:   estimator,
		Budget:      budget,
		TotalBudget: total,
	}, nil
}

// Run estimates the job and renders the report.
func (j *Job) Run(ctx context.Context) (*report.Report, error) {
	result, err := j.Estimator.Estimate(ctx, j.Budget)
	if err != nil {
		return nil, err
	}

	return report.New(report.Input{
		Result:      result,
		Layout:      j.Layout,
		Options:     j.Estimator.Options(),
		TotalBudget: j.TotalBudget,
		QECScheme:   j.Protocol.Name,
	}), nil
}

// qubit starts from an unset model of the resolved instruction set, applies
// the job's fields and fills the rest from the named model.
func (p *Params) qubit() (*qubit.PhysicalQubit, error) {
	if p.QubitParams.Kind == 0 {
		q := qubit.Default()

		return &q, nil
	}

	var header qubitHeader
	if err := p.QubitParams.Decode(&header); err != nil {
		return nil, errors.Wrap(err, "job: qubitParams")
	}

	set := qubit.GateBased
	switch {
	case header.InstructionSet != "":
		parsed, err := qubit.ParseInstructionSet(header.InstructionSet)
		if err != nil {
			return nil, errors.Wrapf(err, "job: qubitParams %q", header.InstructionSet)
		}
		set = parsed
	case header.Name != "":
		base, err := qubit.ByName(header.Name)
		if err != nil {
			return nil, errors.Wrap(err, "job: qubitParams")
		}
		set = base.InstructionSet
	}

	q := qubit.Unset(set)
	if err := p.QubitParams.Decode(&q); err != nil {
		return nil, errors.Wrap(err, "job: qubitParams")
	}
	if err := q.Normalize(); err != nil {
		return nil, errors.Wrap(err, "job: qubitParams")
	}
	if err := q.Validate(); err != nil {
		return nil, errors.Wrap(err, "job: qubitParams")
	}

	return &q, nil
}

func (p *Params) protocol(q *qubit.PhysicalQubit) (*qec.Protocol, error) {
	s := p.QECScheme
	name := s.Name
	if name == "" {
		name = "surface_code"
	}

	protocol, err := qec.ProtocolByName(name, q.InstructionSet)
	if err != nil {
		return nil, errors.Wrap(err, "job: qecScheme")
	}
	if s.ErrorCorrectionThreshold > 0 {
		protocol.ErrorCorrectionThreshold = s.ErrorCorrectionThreshold
	}
	if s.CrossingPrefactor > 0 {
		protocol.CrossingPrefactor = s.CrossingPrefactor
	}
	if s.MaxCodeDistance > 0 {
		protocol.MaxDistance = s.MaxCodeDistance
	}
	if err := protocol.Validate(q); err != nil {
		return nil, errors.Wrap(err, "job: qecScheme")
	}

	return protocol, nil
}

func (p *Params) templates() ([]*distill.Template, error) {
	templates := make([]*distill.Template, 0, len(p.DistillationUnits))
	for _, name := range p.DistillationUnits {
		t, err := distill.TemplateByName(name)
		if err != nil {
			return nil, errors.Wrap(err, "job: distillationUnits")
		}
		templates = append(templates, t)
	}

	return templates, nil
}

func (p *Params) factoryOptions(logger *zap.Logger) ([]factory.Option, error) {
	calculation, err := factory.ParseQubitCalculation(p.QubitCalculation)
	if err != nil {
		return nil, errors.Wrap(err, "job: qubitCalculation")
	}

	opts := []factory.Option{
		factory.WithLogger(logger),
		factory.WithQubitCalculation(calculation),
	}
	if p.MaxDistillationRounds > 0 {
		opts = append(opts, factory.WithMaxRounds(p.MaxDistillationRounds))
	}
	if p.FailureProbabilityRequirement != 0 {
		opts = append(opts, factory.WithFailureProbabilityRequirement(p.FailureProbabilityRequirement))
	}

	return opts, nil
}

// budget returns the split budget and its total.
func (p *Params) budget(psspc *layout.PSSPC) (estimate.ErrorBudget, float64, error) {
	var budget estimate.ErrorBudget
	if split := p.ErrorBudget.Split; split != nil {
		budget = *split
		if budget.Logical <= 0 || budget.MagicStates < 0 || budget.Rotations < 0 || budget.Total() >= 1 {
			return budget, 0, errors.Wrapf(ErrInvalidBudget, "%+v", budget)
		}
	} else {
		total := p.ErrorBudget.Total
		if total == 0 {
			total = DefaultErrorBudget
		}
		var err error
		if budget, err = psspc.PartitionTotal(total); err != nil {
			return budget, 0, errors.Wrap(err, "job: errorBudget")
		}
	}

	if err := psspc.CheckBudget(budget); err != nil {
		return budget, 0, err
	}

	return budget, budget.Total(), nil
}

func (p *Params) estimateOptions(logger *zap.Logger) ([]estimate.Option, error) {
	c := p.Constraints
	opts := []estimate.Option{
		estimate.WithLogger(logger),
		estimate.WithMaxFactories(c.MaxTFactories),
		estimate.WithMaxPhysicalQubits(c.MaxPhysicalQubits),
		estimate.WithLogicalDepthFactor(c.LogicalDepthFactor),
	}

	if c.MaxDuration != "" {
		d, err := time.ParseDuration(c.MaxDuration)
		if err != nil || d <= 0 {
			return nil, errors.Wrapf(ErrInvalidDuration, "maxDuration %q", c.MaxDuration)
		}
		opts = append(opts, estimate.WithMaxDuration(uint64(d.Nanoseconds())))
	}

	switch p.ErrorBudgetStrategy {
	case "", "static":
		opts = append(opts, estimate.WithErrorBudgetStrategy(estimate.Static))
	case "pruneLogicalAndRotations", "prune":
		opts = append(opts, estimate.WithErrorBudgetStrategy(estimate.PruneLogicalAndRotations))
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", p.ErrorBudgetStrategy)
	}

	return opts, nil
}
