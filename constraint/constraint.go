// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package constraint implements an append-only rank-1 constraint system over
// the BN254 scalar field.
//
// A System allocates variables (witness or public input) and accepts
// constraints of the form L · R = O, where L, R and O are linear combinations
// of allocated variables. In Setup mode only the shape of the system is
// recorded; in Prove mode every allocation also records a concrete value, and
// the resulting assignment can be checked for satisfiability.
package constraint

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Visibility qualifies a variable with respect to the prover / verifier split.
type Visibility uint8

const (
	// Unset is the zero value; variables carrying it were never allocated.
	Unset Visibility = iota

	// Witness variables are known to the prover only.
	Witness

	// PublicInput variables are shared with the verifier; their values are
	// supplied, in allocation order, at verification time.
	PublicInput
)

func (v Visibility) String() string {
	switch v {
	case Witness:
		return "witness"
	case PublicInput:
		return "public"
	default:
		return "unset"
	}
}

// Variable is an opaque handle to a wire of the System that allocated it.
// The zero value is not a valid variable.
type Variable struct {
	wID        int
	visibility Visibility
}

// Visibility returns the role the variable was allocated with.
func (v Variable) Visibility() Visibility {
	return v.visibility
}

// Term is a coefficient-weighted variable.
type Term struct {
	Variable Variable
	Coeff    fr.Element
}

// LinearCombination is a sum of terms. A duplicated variable contributes the
// sum of its coefficients; constants ride on the system's one wire. The empty
// combination evaluates to zero.
type LinearCombination []Term

// LinearCombinationOf returns the sum of the given variables, each with
// coefficient one.
func LinearCombinationOf(vs ...Variable) LinearCombination {
	lc := make(LinearCombination, len(vs))
	var one fr.Element
	one.SetOne()
	for i, v := range vs {
		lc[i] = Term{Variable: v, Coeff: one}
	}
	return lc
}

// Append returns lc extended with the term coeff·v.
func (lc LinearCombination) Append(v Variable, coeff fr.Element) LinearCombination {
	return append(lc, Term{Variable: v, Coeff: coeff})
}

// R1C is a rank-1 constraint; it is satisfied by an assignment iff
// L · R = O in the field.
type R1C struct {
	L, R, O LinearCombination
}
