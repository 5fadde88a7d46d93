// Package qroute encodes Capacitated Vehicle Routing Problems (CVRP) into
// QUBO form for annealing-style samplers and decodes sampled bit assignments
// back into concrete vehicle routes.
//
// 🚚 What is qroute?
//
//	A small, deterministic library that brings together:
//		• Data model: immutable CVRP problems & decoded solutions
//		• Distance matrices: dense symmetric Euclidean / Haversine builders
//		• QUBO encoders: routing objective, capacity penalty, one-hot constraints
//		• Combiner: additive merge of objective and constraint coefficient maps
//		• Decoder: feasibility-checked route reconstruction with recomputed
//		  cost and per-vehicle load
//		• Reference sampler: seeded simulated annealing over a QUBO map
//
// ✨ Why choose qroute?
//
//   - Deterministic – fixed seeds, no time-based randomness, 1e-9 stable costs
//   - Rock-solid guarantees – strict sentinel errors, validation before work
//   - Pure encode/decode core – the sampler is a pluggable boundary
//
// Under the hood, everything is organized under five subpackages:
//
//	cvrp/   — Problem & Solution types, validation, JSON instance loading
//	matrix/ — dense matrices + pairwise distance builders
//	qubo/   — variable space, objective & constraint encoders, combiner
//	solver/ — sampler boundary, solve orchestration, solution decoding
//	anneal/ — reference simulated-annealing sampler
//
// Data flow:
//
//	Problem ─→ Distances ─→ Objective ─┐
//	                                   ├─→ QUBO ─→ sampler ─→ bits ─→ Solution
//	            Constraints ───────────┘
//
// Dive into README.md for full examples and the cmd/ directory for the
// instance generator and the command-line solver.
//
//	go get github.com/katalvlaran/qroute
package qroute
