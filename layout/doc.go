// Package layout derives the logical overhead of an algorithm from its
// logical gate counts under Parallel Synthesis Sequential Pauli Computation
// (PSSPC).
//
// For an algorithm on Q qubits with T gates, R arbitrary-angle rotations in
// D_R rotation layers, CCZ and CCiX Toffoli-like gates and M single-qubit
// measurements:
//
//	logical qubits       2·Q + ⌈√(8·Q)⌉ + 1
//	T states / rotation  ⌈0.53·log2(R/ε_rot) + 5.3⌉
//	logical depth        M + R + T + 3·(CCZ+CCiX) + tPerRotation·D_R
//	T states             T + 4·(CCZ+CCiX) + tPerRotation·R
//
// PSSPC implements estimate.Overhead with a single magic-state type (T) and
// estimate.BudgetPruner, which returns unused rotation budget to the magic
// states when the budget is pruned.
package layout
