// Package factory builds magic-state factories: pipelines of distillation
// rounds, and the search that finds the cheapest pipelines for a target
// output error rate.
//
// A Pipeline is built from one distillation unit per round. Rounds are
// chained forward on error rates (each round's output error rate is the next
// round's input) and sized backward on state counts: the last round must
// emit at least one unit's worth of states with probability 1 - ε/R, where ε
// is the failure probability requirement and R the number of rounds; every
// earlier round must then feed the inputs of the round after it. Round sizes
// are binomial quantiles: with n units failing independently with
// probability q, the round is credited with the smallest k such that
// P(successes ≤ k) ≥ ε/R.
//
// The physical footprint of a pipeline is the largest round (rounds reuse
// qubits) or, with QubitCalculationSum, the sum of all rounds. Its duration
// is the sum of the round durations.
//
// A Searcher explores, for 1..MaxRounds rounds and every tuple of units from
// a distill.Catalog, the lattice of code-distance indexes with lattice.Search
// and lattice.Iterate, keeping a Pareto frontier over (normalized qubits,
// duration) of the pipelines meeting the target. Builder wraps the search
// behind an LRU cache and implements estimate.FactoryBuilder.
//
// Complexity (U units, R rounds, D distances):
//
//   - Build: O(R · log²(states)) binomial evaluations.
//   - Search: O(U^R · R · log D) builds for the monotone searches plus the
//     frontier walk of each tuple.
package factory
