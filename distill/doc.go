// Package distill describes magic-state distillation units and the catalog
// of unit instances a factory search draws from.
//
// A Template is the hardware-independent description of a distillation
// protocol: how many input states it consumes, how many it emits, how its
// failure probability and output error rate depend on the input error rate
// and on the Clifford/readout error rates of the qubits running it, and how
// many qubits and qubit cycles it needs on physical or logical qubits.
//
// A Unit binds a template to one concrete Qubit view: either a physical
// qubit (code distance 1) or a logical patch at some code distance. A unit is
// valid when distilling the qubit's raw T error rate strictly improves it.
//
// A Catalog instantiates a set of templates against one physical qubit and
// one logical patch per candidate code distance, and answers the questions a
// lattice search over code-distance indexes asks:
//
//   - Get(position, distanceIndex, unitIndex): which unit runs a round.
//   - MinDistanceIndexes / MaxDistanceIndexes: the per-round search box.
//   - IterateAll: every tuple of unit indexes, for a fixed number of rounds.
//
// Unit indexes are laid out as combined templates first, then purely logical
// templates, then the valid purely physical instances. Purely physical units
// are only offered in the first round at distance 1.
//
// Complexity:
//
//   - NewCatalog: O(T·D) unit instantiations for T templates and D distances.
//   - Get, Min/MaxDistanceIndexes: O(1) per round.
//   - IterateAll: O(U^R) for U units and R rounds.
package distill
