// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package relations defines the relation descriptors of the demo and their
// flattening into rank-1 constraints.
//
// A descriptor comes in two states: a shape (structural parameters only, for
// setup) and an instance (shape plus concrete secret values, for proving).
// Both synthesize the exact same sequence of allocations and constraints, so
// wire indices match between setup and proving runs.
package relations

import "github.com/consensys/r1cs-relations/constraint"

// Relation is the synthesis entry point the proof backend drives; it is
// invoked exactly once per setup or proving call.
type Relation interface {
	// Synthesize flattens the relation into sys, appending variables and
	// constraints. On error sys is left partially synthesized and must be
	// discarded by the caller.
	Synthesize(sys *constraint.System) error
}
