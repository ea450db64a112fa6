package estimate

import "github.com/katalvlaran/qre/qec"

// FactoryPart is the factory serving one magic-state type.
type FactoryPart struct {
	Factory Factory

	// Copies of the factory running in parallel.
	Copies uint64

	// Runs each copy performs.
	Runs uint64

	// NumMagicStates consumed by the algorithm.
	NumMagicStates uint64

	// RequiredOutputErrorRate per magic state.
	RequiredOutputErrorRate float64
}

// PhysicalQubits of all copies.
func (p *FactoryPart) PhysicalQubits() uint64 {
	return mulSat(p.Copies, p.Factory.PhysicalQubits())
}

// Result is a physical estimate. FactoryParts is indexed by magic-state type
// and holds nil for types the algorithm does not consume.
type Result struct {
	LogicalPatch             *qec.LogicalPatch
	NumCycles                uint64
	FactoryParts             []*FactoryPart
	RequiredLogicalErrorRate float64

	// ErrorBudget after pruning.
	ErrorBudget ErrorBudget

	LogicalQubits              uint64
	PhysicalQubitsForAlgorithm uint64
	PhysicalQubitsForFactories uint64
	PhysicalQubits             uint64

	// Runtime in ns.
	Runtime uint64

	// RQOPS is the number of reliable logical operations per second.
	RQOPS uint64
}

// NumFactories is the total number of factory copies.
func (r *Result) NumFactories() uint64 {
	var n uint64
	for _, p := range r.FactoryParts {
		if p != nil {
			n += p.Copies
		}
	}

	return n
}

func (e *Estimator) newResult(
	patch *qec.LogicalPatch,
	numCycles uint64,
	parts []*FactoryPart,
	required float64,
	budget ErrorBudget,
) *Result {
	logicalQubits := e.overhead.LogicalQubits()
	algorithmQubits := mulSat(logicalQubits, patch.PhysicalQubits)

	var factoryQubits uint64
	for _, p := range parts {
		if p != nil {
			factoryQubits += p.PhysicalQubits()
		}
	}

	return &Result{
		LogicalPatch:               patch,
		NumCycles:                  numCycles,
		FactoryParts:               parts,
		RequiredLogicalErrorRate:   required,
		ErrorBudget:                budget,
		LogicalQubits:              logicalQubits,
		PhysicalQubitsForAlgorithm: algorithmQubits,
		PhysicalQubitsForFactories: factoryQubits,
		PhysicalQubits:             algorithmQubits + factoryQubits,
		Runtime:                    mulSat(patch.LogicalCycleTime, numCycles),
		RQOPS:                      ceilDiv(mulSat(logicalQubits, 1_000_000_000), patch.LogicalCycleTime),
	}
}
