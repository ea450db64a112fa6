// Package job loads estimation jobs from YAML and wires them into an
// estimator.
//
// A job names a physical qubit model and a QEC scheme (pre-defined names
// with optional field overrides), the distillation unit templates the
// factory search may use, the error budget (a total or an explicit split),
// optional constraints and the logical counts of the algorithm:
//
//	qubitParams:
//	  name: qubit_gate_ns_e3
//	qecScheme:
//	  name: surface_code
//	errorBudget: 0.001
//	constraints:
//	  maxDuration: 1s
//	logicalCounts:
//	  numQubits: 100
//	  tCount: 1000000
//
// Load only parses; Build resolves names, normalizes and validates the
// qubit, the scheme, the templates and the counts, and returns a Job ready
// to Run.
package job
