// SPDX-License-Identifier: MIT

// Package builder provides deterministic labeled-graph fixtures for path
// queries: chains, cycles, the two-cycles benchmark family, explicit edge
// lists and seeded random graphs.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates a core.Graph,
// resolves the builder configuration and applies constructors in order.
// Constructors validate their parameters and return sentinel errors; option
// constructors panic on meaningless input (programmer error).
//
// Determinism: the same constructors, options and seed always yield the
// same graph, edge for edge.
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.TwoCycles(3, 2, "a", "b"),
//		builder.RandomLabeled(10, 25, "a", "b"),
//	)
package builder
