package layout

import (
	"math"

	"github.com/pkg/errors"

	"github.com/katalvlaran/qre/estimate"
)

// PSSPC is the PSSPC layout of an algorithm.
type PSSPC struct {
	counts LogicalCounts
}

var (
	_ estimate.Overhead     = (*PSSPC)(nil)
	_ estimate.BudgetPruner = (*PSSPC)(nil)
)

// NewPSSPC validates counts.
func NewPSSPC(counts LogicalCounts) (*PSSPC, error) {
	if err := counts.Validate(); err != nil {
		return nil, errors.Wrapf(err, "logical counts %+v", counts)
	}

	return &PSSPC{counts: counts}, nil
}

// Counts returns the logical counts.
func (p *PSSPC) Counts() LogicalCounts { return p.counts }

// LogicalQubits implements estimate.Overhead.
func (p *PSSPC) LogicalQubits() uint64 {
	q := p.counts.NumQubits

	return 2*q + uint64(math.Ceil(math.Sqrt(8*float64(q)))) + 1
}

// LogicalDepth implements estimate.Overhead.
func (p *PSSPC) LogicalDepth(budget *estimate.ErrorBudget) uint64 {
	c := p.counts

	return c.MeasurementCount + c.RotationCount + c.TCount +
		3*(c.CCZCount+c.CCIXCount) +
		p.TStatesPerRotation(budget.Rotations)*c.RotationDepth
}

// NumMagicStates implements estimate.Overhead. Only T states (type 0) are
// consumed.
func (p *PSSPC) NumMagicStates(budget *estimate.ErrorBudget, typeIndex int) uint64 {
	if typeIndex != 0 {
		return 0
	}
	c := p.counts

	return c.TCount + 4*(c.CCZCount+c.CCIXCount) + p.TStatesPerRotation(budget.Rotations)*c.RotationCount
}

// TStatesPerRotation is the number of T states synthesizing one rotation
// within the rotation budget; zero without rotations.
func (p *PSSPC) TStatesPerRotation(rotationBudget float64) uint64 {
	if p.counts.RotationCount == 0 {
		return 0
	}

	return tStatesPerRotation(float64(p.counts.RotationCount) / rotationBudget)
}

func tStatesPerRotation(rotationsPerBudget float64) uint64 {
	return uint64(math.Ceil(0.53*math.Log2(rotationsPerBudget) + 5.3))
}

// PruneErrorBudget implements estimate.BudgetPruner. Under
// PruneLogicalAndRotations the rotation budget shrinks to the smallest value
// needing the same number of T states per rotation, and the remainder goes
// to the magic states.
func (p *PSSPC) PruneErrorBudget(budget *estimate.ErrorBudget, strategy estimate.ErrorBudgetStrategy) {
	if strategy != estimate.PruneLogicalAndRotations || p.counts.RotationCount == 0 || budget.Rotations <= 0 {
		return
	}

	r := float64(p.counts.RotationCount)
	perRotation := p.TStatesPerRotation(budget.Rotations)
	// nudged up so the boundary does not round to another T state
	pruned := r / math.Exp2((float64(perRotation)-5.3)/0.53) * (1 + 1e-9)
	if pruned >= budget.Rotations || tStatesPerRotation(r/pruned) != perRotation {
		return
	}

	budget.MagicStates += budget.Rotations - pruned
	budget.Rotations = pruned
}

// CheckBudget rejects budgets that leave rotations without allowance.
func (p *PSSPC) CheckBudget(budget estimate.ErrorBudget) error {
	if p.counts.RotationCount > 0 && budget.Rotations <= 0 {
		return ErrMissingRotationBudget
	}

	return nil
}

// PartitionTotal splits a total budget uniformly: into thirds with
// rotations, halves between logical and magic states with T states only,
// and entirely to logical qubits otherwise.
func (p *PSSPC) PartitionTotal(total float64) (estimate.ErrorBudget, error) {
	if total <= 0 || total >= 1 {
		return estimate.ErrorBudget{}, errors.Wrapf(ErrInvalidBudget, "got %g", total)
	}

	c := p.counts
	switch {
	case c.RotationCount > 0:
		return estimate.ErrorBudget{Logical: total / 3, MagicStates: total / 3, Rotations: total / 3}, nil
	case c.TCount+c.CCZCount+c.CCIXCount > 0:
		return estimate.ErrorBudget{Logical: total / 2, MagicStates: total / 2}, nil
	default:
		return estimate.ErrorBudget{Logical: total}, nil
	}
}
