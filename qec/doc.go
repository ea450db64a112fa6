// Package qec provides quantum error correction protocols and the logical
// patches they produce.
//
// A Protocol is a threshold code: encoding a physical qubit with Clifford
// error rate p at code distance d yields a logical qubit with error rate
//
//	a · (p / p*)^((d+1)/2)
//
// where p* is the error correction threshold and a the crossing prefactor.
// Code distances are odd, from 1 up to the protocol's maximum.
//
// Pre-defined protocols:
//
//   - SurfaceCodeGateBased:        p* = 0.01,   a = 0.03, cycle (4·t2q + 2·tmeas)·d, 2d² qubits
//   - SurfaceCodeMeasurementBased: p* = 0.0015, a = 0.08, cycle 20·tmeas·d,          2d² qubits
//   - FloquetCode:                 p* = 0.01,   a = 0.07, cycle 3·tmeas·d,           4d²+8(d−1) qubits
//
// ProtocolByName resolves "surface_code" to the gate-based or
// measurement-based variant depending on the qubit's instruction set;
// "floquet_code" requires Majorana qubits.
//
// Complexity:
//
//   - LogicalErrorRate: O(1).
//   - ComputeCodeDistance: O(log D) on the odd distances up to D.
//   - Validate: O(D) formula evaluations.
package qec
