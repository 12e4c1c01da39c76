// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package gadgets provides the dual-mode evaluation layer: each relation has
// a native evaluator over plain field elements and a circuit gadget over
// allocated variables, performing the identical algebraic sequence. For any
// concrete assignment the gadget's boolean result equals the native verdict.
package gadgets

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/r1cs-relations/constraint"
)

// Evaluator is the native side of a relation: a plain-arithmetic check of a
// claimed public value.
type Evaluator interface {
	Verify(public fr.Element) bool
}

// AllocationMode selects how a native value is lifted into the circuit.
type AllocationMode uint8

const (
	// Constant bakes the value into coefficients; no wire is allocated.
	Constant AllocationMode = iota

	// PublicInput allocates a verifier-visible wire.
	PublicInput

	// Witness allocates a prover-only wire.
	Witness
)

// Var is a circuit-side field value, represented as a linear combination over
// an underlying system. Additions compose combinations without allocating.
type Var struct {
	lc constraint.LinearCombination
}

// Alloc lifts a value into a circuit variable under the given mode. The
// provider's failure (e.g. a missing assignment in prove mode) aborts the
// allocation. In Constant mode the provider is always invoked: the value is
// part of the circuit's shape.
func Alloc(sys *constraint.System, mode AllocationMode, value constraint.ValueFunc) (Var, error) {
	switch mode {
	case Constant:
		v, err := value()
		if err != nil {
			return Var{}, err
		}
		return Var{lc: constraint.LinearCombination{}.Append(sys.One(), v)}, nil
	case PublicInput:
		h, err := sys.AllocatePublicInput(value)
		if err != nil {
			return Var{}, err
		}
		return Var{lc: constraint.LinearCombinationOf(h)}, nil
	case Witness:
		h, err := sys.AllocateWitness(value)
		if err != nil {
			return Var{}, err
		}
		return Var{lc: constraint.LinearCombinationOf(h)}, nil
	default:
		return Var{}, constraint.ErrAllocation
	}
}

// Value returns the concrete value of v under sys's assignment; it fails in
// setup mode.
func (v Var) Value(sys *constraint.System) (fr.Element, error) {
	return sys.Evaluate(v.lc)
}

// IsTrue reports whether a boolean-valued Var is worth 1.
func (v Var) IsTrue(sys *constraint.System) (bool, error) {
	val, err := sys.Evaluate(v.lc)
	if err != nil {
		return false, err
	}
	return val.IsOne(), nil
}
