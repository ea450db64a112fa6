package qubit

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by model normalization and lookup.
var (
	// ErrUnknownModel indicates that a pre-defined model name is not known.
	ErrUnknownModel = errors.New("qubit: unknown pre-defined model")

	// ErrUnknownInstructionSet indicates an instruction set other than
	// gate-based or Majorana.
	ErrUnknownInstructionSet = errors.New("qubit: unknown instruction set")

	// ErrMissingField indicates that a required field is unset after
	// normalization.
	ErrMissingField = errors.New("qubit: required field missing")

	// ErrErrorRateOutOfRange indicates an error rate outside the open
	// interval (0, 1).
	ErrErrorRateOutOfRange = errors.New("qubit: error rate must be in (0, 1)")
)

// InstructionSet classifies the physical operations a qubit offers.
type InstructionSet int

const (
	// GateBased qubits are driven by one- and two-qubit gates.
	GateBased InstructionSet = iota

	// Majorana qubits are driven by single- and two-qubit joint measurements.
	Majorana
)

// String returns the serialized name of the instruction set.
func (s InstructionSet) String() string {
	switch s {
	case GateBased:
		return "GateBased"
	case Majorana:
		return "Majorana"
	default:
		return "Unknown"
	}
}

// ParseInstructionSet accepts the spellings used in job files.
func ParseInstructionSet(name string) (InstructionSet, error) {
	switch name {
	case "gate_based", "gateBased", "gate-based", "GateBased":
		return GateBased, nil
	case "Majorana", "majorana":
		return Majorana, nil
	default:
		return 0, ErrUnknownInstructionSet
	}
}

// MeasurementErrorRate splits a measurement error into its process part
// (disturbance of the state) and its readout part (wrong classical outcome).
type MeasurementErrorRate struct {
	Process float64 `yaml:"process"`
	Readout float64 `yaml:"readout"`
}

// UnmarshalYAML accepts either a single rate, used for both parts, or a
// mapping with process and readout keys. Keys left out keep their value.
func (m *MeasurementErrorRate) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var rate float64
		if err := node.Decode(&rate); err != nil {
			return err
		}
		m.Process, m.Readout = rate, rate

		return nil
	}

	type plain MeasurementErrorRate

	return node.Decode((*plain)(m))
}

// PhysicalQubit is a physical qubit model.
//
// Gate-based fields: OneQubitGateTime, TwoQubitGateTime, OneQubitGateErrorRate,
// TwoQubitGateErrorRate, OneQubitMeasurementErrorRate.Readout (used as the
// single measurement error rate).
// Majorana fields: TwoQubitJointMeasurementTime and the process/readout
// split of both measurement error rates.
type PhysicalQubit struct {
	Name           string         `yaml:"name"`
	InstructionSet InstructionSet `yaml:"-"`

	OneQubitMeasurementTime      uint64 `yaml:"oneQubitMeasurementTime"`
	OneQubitGateTime             uint64 `yaml:"oneQubitGateTime"`
	TwoQubitGateTime             uint64 `yaml:"twoQubitGateTime"`
	TwoQubitJointMeasurementTime uint64 `yaml:"twoQubitJointMeasurementTime"`
	TGateTime                    uint64 `yaml:"tGateTime"`

	OneQubitMeasurementErrorRate      MeasurementErrorRate `yaml:"oneQubitMeasurementErrorRate"`
	TwoQubitJointMeasurementErrorRate MeasurementErrorRate `yaml:"twoQubitJointMeasurementErrorRate"`
	OneQubitGateErrorRate             float64              `yaml:"oneQubitGateErrorRate"`
	TwoQubitGateErrorRate             float64              `yaml:"twoQubitGateErrorRate"`
	TGateErrorRate                    float64              `yaml:"tGateErrorRate"`
	IdleErrorRate                     float64              `yaml:"idleErrorRate"`
}
