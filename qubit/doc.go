// Package qubit models physical qubits consumed by the resource estimator.
//
// Two instruction sets are supported:
//
//   - GateBased — single-qubit measurement, single-qubit gates (incl. T) and
//     two-qubit gates.
//   - Majorana  — physical T gate, single-qubit measurement and two-qubit
//     joint measurement.
//
// Pre-defined models can be loaded by name (see ByName):
//
//	qubit_gate_ns_e3, qubit_gate_ns_e4, qubit_gate_us_e3, qubit_gate_us_e4,
//	qubit_maj_ns_e4, qubit_maj_ns_e6
//
// A model loaded from configuration may leave fields unset (zero times, NaN
// rates); Normalize fills them from the named base model and from sibling
// fields, Validate rejects anything still missing.
//
// All times are in nanoseconds.
package qubit
