// SPDX-License-Identifier: MIT

// Package loader reads query documents written in YAML and turns them into
// the inputs of the solvers: a core.Graph, an rsm.RSM or a wcnf.Grammar,
// and a reach.Filter.
//
// Document layout:
//
//	graph:
//	  nodes: [6]                 # optional isolated nodes
//	  edges:
//	    - [1, 2, a]              # from, to, label
//	grammar:                     # recursive state machine
//	  start: S
//	  boxes:
//	    S:
//	      start: "0"
//	      finals: ["0", "3"]
//	      terminals: [["0", a, "1"], ["2", b, "3"]]   # from, label, to
//	      calls: [["1", S, "2"]]                      # from, box, to
//	cfg:                         # weak Chomsky normal form
//	  start: S
//	  productions: ["S -> A B | eps", "A -> a", "B -> b"]
//	filter:
//	  start: [1]
//	  final: [2, 5]
//	algorithm: gll
//
// At least one of grammar and cfg must be present. Unknown keys are
// rejected.
package loader
