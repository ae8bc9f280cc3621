// SPDX-License-Identifier: MIT

package automaton

import "errors"

var (
	// ErrUnknownState indicates a start, final or transition endpoint that
	// is not among the declared states.
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrStateIndex indicates a state index outside [0, NumberOfStates).
	ErrStateIndex = errors.New("automaton: state index out of range")

	// ErrShapeMismatch indicates a matrix whose shape differs from n×n.
	ErrShapeMismatch = errors.New("automaton: matrix shape mismatch")

	// ErrNilAutomaton indicates a nil *Automaton operand.
	ErrNilAutomaton = errors.New("automaton: nil automaton")
)
