package distill_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qre/distill"
	"github.com/katalvlaran/qre/qec"
	"github.com/katalvlaran/qre/qubit"
)

func TestTemplateByName_Aliases(t *testing.T) {
	for _, name := range []string{"15-1 RM", "15-1 RM prep", "15-to-1 RM", "15-to-1 RM prep"} {
		tpl, err := distill.TemplateByName(name)
		require.NoError(t, err)
		require.Equal(t, "15-to-1 RM prep", tpl.Name)
	}
	for _, name := range []string{"15-1 space-efficient", "15-1 space efficient", "15-to-1 space-efficient", "15-to-1 space efficient"} {
		tpl, err := distill.TemplateByName(name)
		require.NoError(t, err)
		require.Equal(t, "15-to-1 space efficient", tpl.Name)
	}

	_, err := distill.TemplateByName("20-to-4")
	require.ErrorIs(t, err, distill.ErrUnknownTemplate)
}

func TestTemplate_Formulas(t *testing.T) {
	tpl := distill.RM15Prep()
	require.InDelta(t, 15*1e-3+356*1e-4, tpl.FailureProbability(1e-3, 1e-4, 0), 1e-15)
	require.InDelta(t, 35*1e-9+7.1*1e-4, tpl.OutputErrorRate(1e-3, 1e-4, 0), 1e-15)

	trivial := distill.Trivial1To1()
	require.Equal(t, 0.0, trivial.FailureProbability(0.3, 0.1, 0.1))
	require.Equal(t, 0.3, trivial.OutputErrorRate(0.3, 0.1, 0.1))
}

func TestTemplate_Validate(t *testing.T) {
	for _, tpl := range append(distill.DefaultTemplates(), distill.Trivial1To1()) {
		require.NoError(t, tpl.Validate(), tpl.Name)
	}

	missing := distill.RM15Prep()
	missing.LogicalSpec = nil
	require.ErrorIs(t, missing.Validate(), distill.ErrInvalidTemplate)

	physical := distill.RM15Prep()
	physical.Type = distill.Physical
	require.ErrorIs(t, physical.Validate(), distill.ErrInvalidTemplate)

	noStates := distill.Trivial1To1()
	noStates.NumOutputStates = 0
	require.ErrorIs(t, noStates.Validate(), distill.ErrInvalidTemplate)
}

func TestNewUnit_PhysicalBinding(t *testing.T) {
	q := qubit.MajNsE4()
	u := distill.NewUnit(distill.RM15SpaceEfficient(), distill.PhysicalView(&q))

	require.Equal(t, uint64(1), u.CodeDistance)
	require.Equal(t, uint64(12), u.PhysicalQubits(0))
	require.Equal(t, uint64(45*100), u.Duration(0))
	require.Equal(t, uint64(20), u.PhysicalQubits(1))
	require.Equal(t, uint64(13*100), u.Duration(1))
	require.Equal(t, 1e-4, u.CliffordErrorRate)
	require.Equal(t, 1e-4, u.ReadoutErrorRate)
	require.Equal(t, 0.05, u.QubitTErrorRate)
	require.True(t, u.IsValid())
}

func TestNewUnit_LogicalBinding(t *testing.T) {
	q := qubit.GateNsE3()
	patch, err := qec.NewLogicalPatch(qec.SurfaceCodeGateBased(), &q, 5)
	require.NoError(t, err)

	u := distill.NewUnit(distill.RM15Prep(), distill.LogicalView(patch))
	require.Equal(t, uint64(5), u.CodeDistance)
	require.Equal(t, 31*patch.PhysicalQubits, u.PhysicalQubits(0))
	require.Equal(t, 11*patch.LogicalCycleTime, u.Duration(0))
	require.Equal(t, u.PhysicalQubits(0), u.PhysicalQubits(1))
	require.Equal(t, 0.0, u.ReadoutErrorRate)
	require.Equal(t, patch.LogicalErrorRate, u.CliffordErrorRate)
	require.Equal(t, 1e-3, u.QubitTErrorRate)
	require.True(t, u.IsValid())
}

func TestNewUnit_FirstRoundOverride(t *testing.T) {
	q := qubit.GateNsE3()
	patch, err := qec.NewLogicalPatch(qec.SurfaceCodeGateBased(), &q, 3)
	require.NoError(t, err)

	tpl := distill.RM15Prep()
	tpl.LogicalFirstRoundSpec = &distill.Resources{NumUnitQubits: 40, DurationInQubitCycleTime: 9}
	u := distill.NewUnit(tpl, distill.LogicalView(patch))
	require.Equal(t, 40*patch.PhysicalQubits, u.PhysicalQubits(0))
	require.Equal(t, 9*patch.LogicalCycleTime, u.Duration(0))
	require.Equal(t, 31*patch.PhysicalQubits, u.PhysicalQubits(1))
}

func TestUnit_InvalidWhenNotImproving(t *testing.T) {
	q := qubit.GateNsE3()
	u := distill.NewUnit(distill.RM15Prep(), distill.PhysicalView(&q))
	require.False(t, u.IsValid(), "7.1·1e-3 exceeds the raw T error rate 1e-3")

	patch, err := qec.NewLogicalPatch(qec.SurfaceCodeGateBased(), &q, 3)
	require.NoError(t, err)
	trivial := distill.NewUnit(distill.Trivial1To1(), distill.LogicalView(patch))
	require.False(t, trivial.IsValid())
	require.Equal(t, patch.PhysicalQubits, trivial.PhysicalQubits(0))
	require.Equal(t, patch.LogicalCycleTime, trivial.Duration(3))
}
