// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package gadgets

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/r1cs-relations/constraint"
)

// ProductEvaluator checks a·b = c with plain field arithmetic.
type ProductEvaluator struct {
	A, B fr.Element
}

var _ Evaluator = ProductEvaluator{}

// Verify reports whether a·b equals c.
func (e ProductEvaluator) Verify(c fr.Element) bool {
	var out fr.Element
	out.Mul(&e.A, &e.B)
	return out.Equal(&c)
}

// ProductGadget checks the same identity over circuit variables.
type ProductGadget struct {
	A, B Var
}

// Verify returns a boolean variable worth 1 iff a·b equals c.
func (g ProductGadget) Verify(sys *constraint.System, c Var) (Var, error) {
	ab, err := Mul(sys, g.A, g.B)
	if err != nil {
		return Var{}, err
	}
	return IsEq(sys, ab, c)
}
