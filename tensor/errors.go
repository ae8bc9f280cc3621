// SPDX-License-Identifier: MIT

package tensor

import "errors"

var (
	// ErrBoxMismatch indicates a closure pair whose grammar components
	// belong to different boxes.
	ErrBoxMismatch = errors.New("tensor: start and final sub-states belong to different boxes")

	// ErrIterationBound indicates saturation did not converge within the
	// iteration cap.
	ErrIterationBound = errors.New("tensor: iteration bound exceeded")

	// ErrNilInput indicates a nil graph, grammar or query automaton.
	ErrNilInput = errors.New("tensor: nil graph or grammar")
)
