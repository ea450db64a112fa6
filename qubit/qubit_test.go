// Package qubit_test validates pre-defined physical qubit models and the
// normalization of partially specified models.
// Focus:
//  1. Derived Clifford/readout error rates per instruction set.
//  2. Normalize fills from the named base model and from sibling fields.
//  3. Validate/ByName return the package sentinels.
package qubit_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/qre/qubit"
)

func TestByName_PredefinedModels(t *testing.T) {
	cases := []struct {
		name     string
		set      qubit.InstructionSet
		clifford float64
		readout  float64
		tRate    float64
		measure  uint64
	}{
		{"qubit_gate_ns_e3", qubit.GateBased, 1e-3, 1e-3, 1e-3, 100},
		{"qubit_gate_ns_e4", qubit.GateBased, 1e-4, 1e-4, 1e-4, 100},
		{"qubit_gate_us_e3", qubit.GateBased, 1e-3, 1e-3, 1e-6, 100_000},
		{"qubit_gate_us_e4", qubit.GateBased, 1e-4, 1e-4, 1e-6, 100_000},
		{"qubit_maj_ns_e4", qubit.Majorana, 1e-4, 1e-4, 0.05, 100},
		{"qubit_maj_ns_e6", qubit.Majorana, 1e-6, 1e-6, 0.01, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := qubit.ByName(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.set, q.InstructionSet)
			require.Equal(t, tc.clifford, q.CliffordErrorRate())
			require.Equal(t, tc.readout, q.ReadoutErrorRate())
			require.Equal(t, tc.tRate, q.TGateErrorRate)
			require.Equal(t, tc.measure, q.OneQubitMeasurementTime)
			require.NoError(t, q.Validate())
			require.NoError(t, q.Normalize())
		})
	}
}

func TestByName_Unknown(t *testing.T) {
	_, err := qubit.ByName("qubit_unknown")
	require.ErrorIs(t, err, qubit.ErrUnknownModel)
}

func TestDefault_IsGateNsE3(t *testing.T) {
	q := qubit.Default()
	require.Equal(t, "qubit_gate_ns_e3", q.Name)
}

func TestNormalize_OverridesOnNamedBase(t *testing.T) {
	q := qubit.Unset(qubit.GateBased)
	q.Name = "qubit_gate_ns_e3"
	q.TGateErrorRate = 1e-5

	require.NoError(t, q.Normalize())
	require.Equal(t, 1e-5, q.TGateErrorRate, "explicit override is kept")
	require.Equal(t, uint64(100), q.OneQubitMeasurementTime)
	require.Equal(t, 1e-3, q.CliffordErrorRate())
	require.NoError(t, q.Validate())
}

func TestNormalize_GateBasedDerivesSiblings(t *testing.T) {
	q := qubit.Unset(qubit.GateBased)
	q.Name = "custom"
	q.OneQubitMeasurementTime = 200
	q.OneQubitGateTime = 30
	q.OneQubitGateErrorRate = 2e-4
	q.OneQubitMeasurementErrorRate.Readout = 5e-4
	q.TGateErrorRate = 1e-4

	require.NoError(t, q.Normalize())
	require.Equal(t, uint64(30), q.TwoQubitGateTime)
	require.Equal(t, uint64(30), q.TGateTime)
	require.Equal(t, 2e-4, q.TwoQubitGateErrorRate)
	require.Equal(t, 5e-4, q.IdleErrorRate)
	require.Equal(t, 5e-4, q.CliffordErrorRate())
	require.Equal(t, 5e-4, q.ReadoutErrorRate())
}

func TestNormalize_MajoranaDerivesSiblings(t *testing.T) {
	q := qubit.Unset(qubit.Majorana)
	q.Name = "custom"
	q.OneQubitMeasurementTime = 50
	q.OneQubitMeasurementErrorRate.Process = 1e-5
	q.TGateErrorRate = 0.02

	require.NoError(t, q.Normalize())
	require.Equal(t, 1e-5, q.OneQubitMeasurementErrorRate.Readout)
	require.Equal(t, uint64(50), q.TwoQubitJointMeasurementTime)
	require.Equal(t, 1e-5, q.TwoQubitJointMeasurementErrorRate.Readout)
	require.Equal(t, 1e-5, q.IdleErrorRate)
	require.NoError(t, q.Validate())
}

func TestNormalize_MissingFields(t *testing.T) {
	q := qubit.Unset(qubit.GateBased)
	q.Name = "custom"
	q.OneQubitMeasurementTime = 100

	err := q.Normalize()
	require.ErrorIs(t, err, qubit.ErrMissingField)
	require.Contains(t, err.Error(), "tGateErrorRate")
	require.Contains(t, err.Error(), "oneQubitGateTime")
}

func TestValidate_RateOutOfRange(t *testing.T) {
	q := qubit.GateNsE3()
	q.TGateErrorRate = 1.5
	require.True(t, errors.Is(q.Validate(), qubit.ErrErrorRateOutOfRange))

	q = qubit.GateNsE3()
	q.IdleErrorRate = math.NaN()
	require.ErrorIs(t, q.Validate(), qubit.ErrErrorRateOutOfRange)
}

func TestParseInstructionSet(t *testing.T) {
	set, err := qubit.ParseInstructionSet("gate_based")
	require.NoError(t, err)
	require.Equal(t, qubit.GateBased, set)

	set, err = qubit.ParseInstructionSet("Majorana")
	require.NoError(t, err)
	require.Equal(t, qubit.Majorana, set)
	require.Equal(t, "Majorana", set.String())

	_, err = qubit.ParseInstructionSet("photonic")
	require.ErrorIs(t, err, qubit.ErrUnknownInstructionSet)
}

func TestMeasurementErrorRateYAML(t *testing.T) {
	q := qubit.Unset(qubit.Majorana)
	require.NoError(t, yaml.Unmarshal([]byte(`
oneQubitMeasurementErrorRate: 1e-4
twoQubitJointMeasurementErrorRate:
  readout: 2e-4
`), &q))
	require.Equal(t, qubit.MeasurementErrorRate{Process: 1e-4, Readout: 1e-4}, q.OneQubitMeasurementErrorRate)
	require.Equal(t, 2e-4, q.TwoQubitJointMeasurementErrorRate.Readout)
	require.True(t, math.IsNaN(q.TwoQubitJointMeasurementErrorRate.Process))
}
