package qec

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/qre/qubit"
)

// NewLogicalPatch encodes q with ec at the given code distance.
func NewLogicalPatch(ec ErrorCorrection, q *qubit.PhysicalQubit, codeDistance uint64) (*LogicalPatch, error) {
	physicalQubits, err := ec.PhysicalQubitsPerLogicalQubit(codeDistance)
	if err != nil {
		return nil, errors.Wrap(err, "logical patch")
	}
	cycleTime, err := ec.LogicalCycleTime(q, codeDistance)
	if err != nil {
		return nil, errors.Wrap(err, "logical patch")
	}
	rate, err := ec.LogicalErrorRate(q, codeDistance)
	if err != nil {
		return nil, errors.Wrap(err, "logical patch")
	}

	return &LogicalPatch{
		Qubit:            q,
		CodeDistance:     codeDistance,
		PhysicalQubits:   physicalQubits,
		LogicalCycleTime: cycleTime,
		LogicalErrorRate: rate,
	}, nil
}

// NewLogicalPatches builds one patch per code distance, in the given order.
func NewLogicalPatches(ec ErrorCorrection, q *qubit.PhysicalQubit, distances []uint64) ([]*LogicalPatch, error) {
	patches := make([]*LogicalPatch, len(distances))
	for i, d := range distances {
		patch, err := NewLogicalPatch(ec, q, d)
		if err != nil {
			return nil, err
		}
		patches[i] = patch
	}

	return patches, nil
}
