package estimate_test

import (
	"context"
	"sync/atomic"

	"github.com/katalvlaran/qre/estimate"
	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

// overhead is a fixed logical overhead.
type overhead struct {
	qubits uint64
	depth  uint64
	states []uint64
}

func (o *overhead) LogicalQubits() uint64                                { return o.qubits }
func (o *overhead) LogicalDepth(*estimate.ErrorBudget) uint64            { return o.depth }
func (o *overhead) NumMagicStates(_ *estimate.ErrorBudget, i int) uint64 { return o.states[i] }

// fixedFactory is a factory with fixed figures.
type fixedFactory struct {
	qubits, duration, out, maxDistance uint64
}

func (f *fixedFactory) PhysicalQubits() uint64  { return f.qubits }
func (f *fixedFactory) Duration() uint64        { return f.duration }
func (f *fixedFactory) NumOutputStates() uint64 { return f.out }
func (f *fixedFactory) MaxCodeDistance() uint64 { return f.maxDistance }
func (f *fixedFactory) NormalizedVolume() float64 {
	return float64(f.qubits) * float64(f.duration) / float64(f.out)
}

// builder returns the same factories for every query.
type builder struct {
	types     int
	factories []estimate.Factory
	err       error
	calls     atomic.Int32
}

func (b *builder) NumMagicStateTypes() int { return b.types }

func (b *builder) FindFactories(
	context.Context, qec.ErrorCorrection, *qubit.PhysicalQubit, int, float64, uint64,
) ([]estimate.Factory, error) {
	b.calls.Add(1)

	return b.factories, b.err
}

var (
	// 1e7 ns·qubits per state
	small = &fixedFactory{qubits: 1000, duration: 10_000, out: 1, maxDistance: 5}
	// 2.5e7 ns·qubits per state
	slim = &fixedFactory{qubits: 500, duration: 50_000, out: 1, maxDistance: 5}
	// longer than 1000 cycles at distance 7
	slow = &fixedFactory{qubits: 100, duration: 5_000_000, out: 1, maxDistance: 5}
	// longer than 3333 cycles at distance 7
	slower = &fixedFactory{qubits: 100, duration: 20_000_000, out: 1, maxDistance: 5}
)

// pruningOverhead hands the rotation budget to magic states when pruning.
type pruningOverhead struct {
	*overhead
	calls int
}

func (o *pruningOverhead) PruneErrorBudget(b *estimate.ErrorBudget, s estimate.ErrorBudgetStrategy) {
	o.calls++
	if s == estimate.PruneLogicalAndRotations {
		b.MagicStates += b.Rotations
		b.Rotations = 0
	}
}
