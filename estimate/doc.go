// Package estimate turns a logical resource overhead into a physical one:
// it picks the code distance of the algorithm's logical qubits, the magic
// state factories that feed them, and the number of logical cycles the
// algorithm runs for.
//
// The unrestricted estimate is a fixed-point search over the cycle count C:
//
//  1. The logical error budget is spread over Q·C logical operations, which
//     fixes the required logical error rate and hence the smallest code
//     distance d reaching it.
//  2. d tolerates at most C_max cycles before a larger distance is needed.
//  3. For every magic-state type, the factory builder proposes factories
//     meeting the per-state error budget at distance d. A factory is
//     accepted if it fits into C cycles (minimizing normalized volume) or,
//     failing that, into some C' ≤ C_max cycles (minimizing normalized
//     volume, then C').
//  4. If every type was served the estimate converges; otherwise C becomes
//     C_max + 1 and the loop restarts.
//
// With WithMaxDuration or WithMaxPhysicalQubits the estimator instead scans
// code distances from the largest down, keeping the estimate with the fewest
// qubits (duration bound) or the shortest runtime (qubit bound). These
// variants support a single magic-state type.
//
// Factory searches for different magic-state types are independent and run
// concurrently; selection is sequential because each accepted type may raise
// the cycle count seen by the next.
package estimate
