// SPDX-License-Identifier: MIT

package rsm

import "errors"

var (
	// ErrUnknownStartBox indicates the start box was never defined.
	ErrUnknownStartBox = errors.New("rsm: unknown start box")

	// ErrUndefinedBox indicates a call to a box that was never defined.
	ErrUndefinedBox = errors.New("rsm: undefined box")

	// ErrEmptyBoxName indicates a box declared or called with an empty name.
	ErrEmptyBoxName = errors.New("rsm: empty box name")

	// ErrEmptyLabel indicates a terminal transition with an empty label or
	// a transition with an empty sub-state.
	ErrEmptyLabel = errors.New("rsm: empty label")

	// ErrConflictingTransition indicates two transitions from one sub-state
	// on the same symbol with different targets, or a box redeclared with a
	// different start sub-state.
	ErrConflictingTransition = errors.New("rsm: conflicting transition")
)
