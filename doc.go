// Package qre is a physical resource estimator for fault-tolerant quantum
// algorithms: given the logical gate counts of a program, a physical qubit
// model, an error correction scheme and an error budget, it finds the code
// distance, the magic state factories and the runtime that realize the
// program most cheaply.
//
// 🚀 What is in the box?
//
//	• Qubit models: six pre-defined gate-based and Majorana qubits, or your own
//	• QEC schemes: surface code (gate based, measurement based), Floquet code
//	• Distillation: 15-to-1 units, per-round sizing, Pareto-optimal pipelines
//	• Estimation: unrestricted, duration-bounded or qubit-bounded
//	• Jobs & reports: YAML in, JSON out, `qre` CLI on top
//
// Under the hood, everything is organized by concern:
//
//	lattice/  — monotone search over integer boxes (code distances per round)
//	qubit/    — physical qubit models and their normalization
//	qec/      — error correction protocols and logical patches
//	distill/  — distillation unit templates and the per-distance unit catalog
//	factory/  — distillation pipelines, factory search, cached builder
//	estimate/ — the physical estimation loop and its constrained variants
//	layout/   — PSSPC logical overhead from logical counts
//	job/      — YAML job files wired into an estimator
//	report/   — JSON reports with human readable figures
//	cmd/qre/  — command line interface
//
// Quick pipeline:
//
//	logical counts ─► layout ─► estimate ◄─ factory ◄─ distill ◄─ qec ◄─ qubit
//	                               │
//	                               ▼
//	                             report
//
//	go install github.com/katalvlaran/qre/cmd/qre@latest
package qre
