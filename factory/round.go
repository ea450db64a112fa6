package factory

import (
	"math"

	"github.com/katalvlaran/qre/distill"
)

// Round is one distillation round; all of its units are identical.
type Round struct {
	UnitName     string
	CodeDistance uint64
	NumUnits     uint64

	// Per-unit figures.
	NumInputStates  uint64
	NumOutputStates uint64
	UnitQubits      uint64

	// Duration of the round in ns.
	Duration uint64

	// FailureProbabilityRequirement is this round's share of the pipeline's
	// failure budget.
	FailureProbabilityRequirement float64
}

func newRound(u *distill.Unit, requirement float64, position int) *Round {
	return &Round{
		UnitName:                      u.Name,
		CodeDistance:                  u.CodeDistance,
		NumUnits:                      1,
		NumInputStates:                u.NumInputStates,
		NumOutputStates:               u.NumOutputStates,
		UnitQubits:                    u.PhysicalQubits(position),
		Duration:                      u.Duration(position),
		FailureProbabilityRequirement: requirement,
	}
}

// PhysicalQubits of all units of the round.
func (r *Round) PhysicalQubits() uint64 {
	return r.NumUnits * r.UnitQubits
}

// ComputeNumOutputStates returns the states the round delivers with
// probability 1 - FailureProbabilityRequirement when each unit fails with
// failureProbability.
func (r *Round) ComputeNumOutputStates(failureProbability float64) uint64 {
	if failureProbability == 0 && r.FailureProbabilityRequirement == 0 {
		return r.NumUnits * r.NumOutputStates
	}

	return successQuantile(r.NumUnits, failureProbability, r.FailureProbabilityRequirement) * r.NumOutputStates
}

func (r *Round) delivers(statesNeeded uint64, failureProbability float64) bool {
	if failureProbability == 0 && r.FailureProbabilityRequirement == 0 {
		return r.NumUnits*r.NumOutputStates >= statesNeeded
	}
	successes := (statesNeeded + r.NumOutputStates - 1) / r.NumOutputStates

	return quantileAtLeast(r.NumUnits, failureProbability, r.FailureProbabilityRequirement, successes)
}

// AdjustNumUnitsTo sets NumUnits to the smallest count delivering
// statesNeeded: doubling from the failure-free estimate, then bisecting.
func (r *Round) AdjustNumUnitsTo(statesNeeded uint64, failureProbability float64) error {
	r.NumUnits = uint64(math.Ceil(float64(statesNeeded) / float64(r.NumOutputStates)))
	if r.NumUnits == 0 {
		r.NumUnits = 1
	}

	for !r.delivers(statesNeeded, failureProbability) {
		r.NumUnits *= 2
		if r.NumUnits >= maxUnitsPerRound {
			return ErrTooManyUnits
		}
	}

	lower, upper := r.NumUnits/2, r.NumUnits
	for lower < upper {
		r.NumUnits = lower + (upper-lower)/2
		if r.delivers(statesNeeded, failureProbability) {
			upper = r.NumUnits
		} else {
			lower = r.NumUnits + 1
		}
	}
	r.NumUnits = upper

	return nil
}
