package factory

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/qre/distill"
	"github.com/katalvlaran/qre/qec"
)

// Pipeline is a magic-state factory: a sequence of distillation rounds.
type Pipeline struct {
	rounds      []*Round
	requirement float64

	// inputErrorRates[i] feeds round i; the last entry is the output.
	inputErrorRates []float64
	// failureProbabilities[i] is the unit failure probability of round i.
	failureProbabilities []float64

	numOutputStates  uint64
	qubitCalculation QubitCalculation
}

// Build chains units into a pipeline and sizes every round.
//
// The first round consumes states with initialInputErrorRate; the whole run
// may fail with at most failureProbabilityRequirement, split evenly over the
// rounds. Build errors are *BuildError values wrapping one of the package
// sentinels.
func Build(units []*distill.Unit, initialInputErrorRate, failureProbabilityRequirement float64) (*Pipeline, error) {
	if len(units) == 0 {
		return nil, ErrNoRounds
	}

	p := &Pipeline{
		rounds:               make([]*Round, 0, len(units)),
		requirement:          failureProbabilityRequirement,
		inputErrorRates:      make([]float64, 1, len(units)+1),
		failureProbabilities: make([]float64, len(units)),
	}
	p.inputErrorRates[0] = initialInputErrorRate

	perRound := failureProbabilityRequirement / float64(len(units))
	for i, u := range units {
		if u == nil {
			return nil, &BuildError{Round: i, Err: ErrMissingUnit}
		}
		in := p.inputErrorRates[i]
		out := u.OutputErrorRate(in)
		if out > in {
			return nil, &BuildError{Round: i, Err: ErrOutputErrorRateHigherThanInput}
		}
		p.rounds = append(p.rounds, newRound(u, perRound, i))
		p.inputErrorRates = append(p.inputErrorRates, out)
	}

	statesNeeded := p.rounds[len(p.rounds)-1].NumOutputStates
	for i := len(units) - 1; i >= 0; i-- {
		q := units[i].FailureProbability(p.inputErrorRates[i])
		switch {
		case q <= 0:
			return nil, &BuildError{Round: i, Err: ErrLowFailureProbability}
		case q >= 1:
			return nil, &BuildError{Round: i, Err: ErrHighFailureProbability}
		}
		p.failureProbabilities[i] = q

		r := p.rounds[i]
		if err := r.AdjustNumUnitsTo(statesNeeded, q); err != nil {
			return nil, &BuildError{Round: i, Err: err}
		}
		statesNeeded = r.NumInputStates * r.NumUnits
	}

	last := len(p.rounds) - 1
	p.numOutputStates = p.rounds[last].ComputeNumOutputStates(p.failureProbabilities[last])

	return p, nil
}

// DefaultPipeline passes logical states of the patch through a single
// trivial round. It serves targets the raw T error rate already meets.
func DefaultPipeline(patch *qec.LogicalPatch) *Pipeline {
	unit := distill.NewUnit(distill.Trivial1To1(), distill.LogicalView(patch))
	round := newRound(unit, 0, 0)
	rate := patch.LogicalErrorRate

	return &Pipeline{
		rounds:               []*Round{round},
		inputErrorRates:      []float64{rate, rate},
		failureProbabilities: []float64{0},
		numOutputStates:      round.ComputeNumOutputStates(0),
	}
}

// SetQubitCalculation selects how round footprints combine.
func (p *Pipeline) SetQubitCalculation(c QubitCalculation) { p.qubitCalculation = c }

// Rounds returns the rounds in order. The slice must not be modified.
func (p *Pipeline) Rounds() []*Round { return p.rounds }

// NumRounds is the number of distillation rounds.
func (p *Pipeline) NumRounds() int { return len(p.rounds) }

// PhysicalQubits is the footprint of one factory.
func (p *Pipeline) PhysicalQubits() uint64 {
	var total uint64
	for _, r := range p.rounds {
		if p.qubitCalculation == QubitCalculationSum {
			total += r.PhysicalQubits()
		} else {
			total = max(total, r.PhysicalQubits())
		}
	}

	return total
}

// Duration of one factory run in ns.
func (p *Pipeline) Duration() uint64 {
	var total uint64
	for _, r := range p.rounds {
		total += r.Duration
	}

	return total
}

// InputTErrorRate is the error rate of the states consumed by round one.
func (p *Pipeline) InputTErrorRate() float64 { return p.inputErrorRates[0] }

// OutputTErrorRate is the error rate of the delivered states.
func (p *Pipeline) OutputTErrorRate() float64 { return p.inputErrorRates[len(p.inputErrorRates)-1] }

// InputTCount is the number of raw states one run consumes.
func (p *Pipeline) InputTCount() uint64 {
	first := p.rounds[0]

	return first.NumInputStates * first.NumUnits
}

// NumOutputStates delivered by one run.
func (p *Pipeline) NumOutputStates() uint64 { return p.numOutputStates }

// FailureProbabilityRequirement the pipeline was sized for.
func (p *Pipeline) FailureProbabilityRequirement() float64 { return p.requirement }

// NumUnitsPerRound lists the unit counts.
func (p *Pipeline) NumUnitsPerRound() []uint64 {
	return lo.Map(p.rounds, func(r *Round, _ int) uint64 { return r.NumUnits })
}

// CodeDistancePerRound lists the code distances.
func (p *Pipeline) CodeDistancePerRound() []uint64 {
	return lo.Map(p.rounds, func(r *Round, _ int) uint64 { return r.CodeDistance })
}

// PhysicalQubitsPerRound lists the round footprints.
func (p *Pipeline) PhysicalQubitsPerRound() []uint64 {
	return lo.Map(p.rounds, func(r *Round, _ int) uint64 { return r.PhysicalQubits() })
}

// DurationPerRound lists the round durations in ns.
func (p *Pipeline) DurationPerRound() []uint64 {
	return lo.Map(p.rounds, func(r *Round, _ int) uint64 { return r.Duration })
}

// UnitNames lists the unit template names.
func (p *Pipeline) UnitNames() []string {
	return lo.Map(p.rounds, func(r *Round, _ int) string { return r.UnitName })
}

// MaxCodeDistance is the code distance of the last round.
func (p *Pipeline) MaxCodeDistance() uint64 { return p.rounds[len(p.rounds)-1].CodeDistance }

// NormalizedQubits is the footprint per delivered state.
func (p *Pipeline) NormalizedQubits() float64 {
	return float64(p.PhysicalQubits()) / float64(p.NumOutputStates())
}

// NormalizedVolume is the space-time volume per delivered state.
func (p *Pipeline) NormalizedVolume() float64 {
	return float64(p.PhysicalQubits()) * float64(p.Duration()) / float64(p.NumOutputStates())
}
