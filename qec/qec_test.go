// Package qec_test validates the threshold protocols, code distance
// selection and logical patch construction.
// Focus:
//  1. Formula values of the pre-defined protocols.
//  2. Smallest odd distance reaching a required rate, ErrNoCodeDistance above it.
//  3. Validation sentinels.
package qec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

func TestProtocolByName(t *testing.T) {
	p, err := qec.ProtocolByName("surface_code", qubit.GateBased)
	require.NoError(t, err)
	require.Equal(t, 0.01, p.ErrorCorrectionThreshold)

	p, err = qec.ProtocolByName("surfaceCode", qubit.Majorana)
	require.NoError(t, err)
	require.Equal(t, 0.0015, p.ErrorCorrectionThreshold)

	p, err = qec.ProtocolByName("floquet_code", qubit.Majorana)
	require.NoError(t, err)
	require.Equal(t, 0.07, p.CrossingPrefactor)

	_, err = qec.ProtocolByName("floquet_code", qubit.GateBased)
	require.ErrorIs(t, err, qec.ErrUnsupportedInstructionSet)

	_, err = qec.ProtocolByName("color_code", qubit.GateBased)
	require.ErrorIs(t, err, qec.ErrUnknownProtocol)
}

func TestSurfaceCodeGateBased_Formulas(t *testing.T) {
	q := qubit.GateNsE3()
	p := qec.SurfaceCodeGateBased()

	rate, err := p.LogicalErrorRate(&q, 1)
	require.NoError(t, err)
	require.InDelta(t, 3e-3, rate, 1e-15)

	rate, err = p.LogicalErrorRate(&q, 5)
	require.NoError(t, err)
	require.InDelta(t, 3e-5, rate, 1e-17)

	cycle, err := p.LogicalCycleTime(&q, 7)
	require.NoError(t, err)
	require.Equal(t, uint64(2800), cycle)

	n, err := p.PhysicalQubitsPerLogicalQubit(7)
	require.NoError(t, err)
	require.Equal(t, uint64(98), n)
}

func TestFloquetCode_Formulas(t *testing.T) {
	q := qubit.MajNsE4()
	patch, err := qec.NewLogicalPatch(qec.FloquetCode(), &q, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(52), patch.PhysicalQubits)
	require.Equal(t, uint64(900), patch.LogicalCycleTime)
	require.InDelta(t, 7e-6, patch.LogicalErrorRate, 1e-18)
	require.Equal(t, uint64(3), patch.CodeDistance)
}

func TestComputeCodeDistance(t *testing.T) {
	q := qubit.GateNsE3()
	p := qec.SurfaceCodeGateBased()

	cases := []struct {
		required float64
		want     uint64
	}{
		{1e-2, 1},
		{3e-3, 1},
		{1e-3, 3},
		{1e-5, 7},
		{1e-9, 15},
	}
	for _, tc := range cases {
		d, err := p.ComputeCodeDistance(&q, tc.required)
		require.NoError(t, err)
		require.Equal(t, tc.want, d, "required %g", tc.required)
	}

	_, err := p.ComputeCodeDistance(&q, 1e-200)
	require.ErrorIs(t, err, qec.ErrNoCodeDistance)
}

func TestCodeDistances(t *testing.T) {
	p := qec.SurfaceCodeGateBased()
	require.Equal(t, []uint64{1, 3, 5, 7}, p.CodeDistances(7))
	require.Equal(t, []uint64{1, 3, 5, 7}, p.CodeDistances(8))

	all := p.CodeDistances(1000)
	require.Len(t, all, 25)
	require.Equal(t, uint64(49), all[len(all)-1])
}

func TestValidate(t *testing.T) {
	q := qubit.GateNsE3()
	require.NoError(t, qec.SurfaceCodeGateBased().Validate(&q))

	p := qec.SurfaceCodeGateBased()
	p.CrossingPrefactor = 0.6
	require.ErrorIs(t, p.Validate(&q), qec.ErrCrossingPrefactor)

	noisy := qubit.GateNsE3()
	noisy.TwoQubitGateErrorRate = 0.02
	require.ErrorIs(t, qec.SurfaceCodeGateBased().Validate(&noisy), qec.ErrAboveThreshold)

	broken := qubit.GateNsE3()
	broken.TwoQubitGateTime = 0
	broken.OneQubitMeasurementTime = 0
	require.ErrorIs(t, qec.SurfaceCodeGateBased().Validate(&broken), qec.ErrNonPositiveFormula)
}

func TestNewLogicalPatches(t *testing.T) {
	q := qubit.GateNsE4()
	p := qec.SurfaceCodeGateBased()
	patches, err := qec.NewLogicalPatches(p, &q, p.CodeDistances(5))
	require.NoError(t, err)
	require.Len(t, patches, 3)
	for i, patch := range patches {
		require.Equal(t, uint64(2*i+1), patch.CodeDistance)
		require.Same(t, &q, patch.Qubit)
	}
	require.Greater(t, patches[0].LogicalErrorRate, patches[2].LogicalErrorRate)
}
