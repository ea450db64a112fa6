package estimate_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/qre/estimate"
	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

// ExampleEstimator_Estimate estimates 10 logical qubits running 1000 cycles
// and consuming 100 T states from a single fixed factory.
func ExampleEstimator_Estimate() {
	q := qubit.GateNsE3()
	factories := &builder{types: 1, factories: []estimate.Factory{
		&fixedFactory{qubits: 1000, duration: 10_000, out: 1, maxDistance: 5},
	}}
	e, err := estimate.New(qec.SurfaceCodeGateBased(), &q, factories,
		&overhead{qubits: 10, depth: 1000, states: []uint64{100}})
	if err != nil {
		panic(err)
	}

	r, err := e.Estimate(context.Background(), estimate.ErrorBudget{Logical: 0.1, MagicStates: 0.1})
	if err != nil {
		panic(err)
	}
	fmt.Println("code distance:", r.LogicalPatch.CodeDistance)
	fmt.Println("cycles:", r.NumCycles)
	fmt.Println("physical qubits:", r.PhysicalQubits)
	fmt.Println("runtime (ns):", r.Runtime)
	// Output:
	// code distance: 7
	// cycles: 1000
	// physical qubits: 1980
	// runtime (ns): 2800000
}
