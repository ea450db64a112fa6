package qec_test

import (
	"fmt"

	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

// ExampleProtocol_ComputeCodeDistance selects the surface code distance for
// a logical error budget of 1e-5 per cycle.
func ExampleProtocol_ComputeCodeDistance() {
	q := qubit.GateNsE3()
	p := qec.SurfaceCodeGateBased()

	d, err := p.ComputeCodeDistance(&q, 1e-5)
	if err != nil {
		panic(err)
	}
	patch, _ := qec.NewLogicalPatch(p, &q, d)
	fmt.Println(d, patch.PhysicalQubits, patch.LogicalCycleTime)
	// Output: 7 98 2800
}
