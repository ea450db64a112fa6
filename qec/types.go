package qec

import (
	"errors"

	"github.com/katalvlaran/qre/qubit"
)

// Sentinel errors returned by protocol lookup, validation and distance
// computation.
var (
	// ErrUnknownProtocol indicates that a protocol name is not known.
	ErrUnknownProtocol = errors.New("qec: unknown protocol")

	// ErrUnsupportedInstructionSet indicates a protocol that cannot encode
	// qubits of the given instruction set.
	ErrUnsupportedInstructionSet = errors.New("qec: protocol does not support instruction set")

	// ErrCrossingPrefactor indicates a crossing prefactor above 0.5.
	ErrCrossingPrefactor = errors.New("qec: crossing prefactor must be in (0, 0.5]")

	// ErrAboveThreshold indicates a physical Clifford error rate at or above
	// the error correction threshold.
	ErrAboveThreshold = errors.New("qec: physical error rate is not below threshold")

	// ErrNonPositiveFormula indicates a cycle time or qubit count formula that
	// evaluates to zero for some code distance.
	ErrNonPositiveFormula = errors.New("qec: formula must be positive for every code distance")

	// ErrNoCodeDistance indicates that no code distance up to the maximum
	// reaches the required logical error rate.
	ErrNoCodeDistance = errors.New("qec: required logical error rate not reachable")
)

// MaxCodeDistance is the default largest code distance a protocol considers.
const MaxCodeDistance uint64 = 50

// ErrorCorrection encodes physical qubits into logical qubits.
type ErrorCorrection interface {
	// PhysicalQubitsPerLogicalQubit is the footprint of one logical qubit.
	PhysicalQubitsPerLogicalQubit(codeDistance uint64) (uint64, error)

	// LogicalCycleTime is the duration of one logical cycle in ns.
	LogicalCycleTime(q *qubit.PhysicalQubit, codeDistance uint64) (uint64, error)

	// LogicalErrorRate is the failure probability of a logical qubit per
	// logical cycle.
	LogicalErrorRate(q *qubit.PhysicalQubit, codeDistance uint64) (float64, error)

	// ComputeCodeDistance returns the smallest code distance whose logical
	// error rate does not exceed requiredLogicalErrorRate.
	ComputeCodeDistance(q *qubit.PhysicalQubit, requiredLogicalErrorRate float64) (uint64, error)

	// MaxCodeDistance is the largest admissible code distance.
	MaxCodeDistance() uint64

	// CodeDistances lists admissible code distances up to upTo in ascending
	// order.
	CodeDistances(upTo uint64) []uint64
}

// LogicalPatch is a logical qubit obtained by encoding a physical qubit at a
// fixed code distance.
type LogicalPatch struct {
	Qubit            *qubit.PhysicalQubit
	CodeDistance     uint64
	PhysicalQubits   uint64
	LogicalCycleTime uint64
	LogicalErrorRate float64
}
