// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package constraint

import "errors"

var (
	// ErrAssignmentMissing is returned when a value provider runs in Prove
	// mode but the relation descriptor carries no concrete value; it signals
	// a shape-only descriptor handed to a proving synthesis call.
	ErrAssignmentMissing = errors.New("assignment missing: no concrete value for allocated variable")

	// ErrAllocation is returned when an allocation request is invalid, e.g.
	// padding parameters below the relation's minimum.
	ErrAllocation = errors.New("invalid allocation request")

	// ErrUnallocatedVariable is returned when a linear combination references
	// a variable this system did not allocate.
	ErrUnallocatedVariable = errors.New("variable was not allocated by this system")

	// ErrSetupMode is returned by operations that need concrete values when
	// the system holds none.
	ErrSetupMode = errors.New("system is in setup mode, no assignment available")
)
