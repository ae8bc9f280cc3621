// SPDX-License-Identifier: MIT

// Package cfpq answers context-free path queries over edge-labeled directed
// graphs: given a graph and a grammar, find every pair of nodes (u, v) such
// that some u → v path spells a word of the grammar's language.
//
// Grammars are recursive state machines (rsm): one finite automaton per
// nonterminal ("box") whose transitions are terminals or calls to boxes.
//
// Solvers:
//
//	tensor      Kronecker product of the flattened grammar and the graph,
//	            closed by squaring, saturated until no new facts appear
//	gll         worklist over a graph-structured stack of call nodes
//	wcnf        Hellings and boolean-matrix baselines over weak CNF grammars
//	bfs         product BFS for regular queries, with witness paths
//
// Supporting packages:
//
//	core        labeled multigraph with int node ids
//	matrix      bit-packed boolean matrices, product, Kronecker, closure
//	automaton   boolean-decomposed automata, intersection, acceptance
//	reach       answer sets, node filters, shared solver options
//	builder     graph fixtures: chains, cycles, two-cycles, random graphs
//	loader      YAML query documents
//	query       algorithm registry, dispatch and cross-checking
//	cmd/cfpq    command line driver
//
// Every solver takes a context.Context, honors start/final node filters and
// returns a reach.Set; for the same input all solvers agree.
package cfpq
