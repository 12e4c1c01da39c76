// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package gadgets

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/r1cs-relations/constraint"
)

// CubicEvaluator checks x³ + x + 5 = y with plain field arithmetic.
type CubicEvaluator struct {
	X fr.Element
}

var _ Evaluator = CubicEvaluator{}

// Verify reports whether x³ + x + 5 equals y exactly in the field.
func (e CubicEvaluator) Verify(y fr.Element) bool {
	var out fr.Element
	out.Square(&e.X)
	out.Mul(&out, &e.X)
	out.Add(&out, &e.X)
	var five fr.Element
	five.SetUint64(5)
	out.Add(&out, &five)
	return out.Equal(&y)
}

// CubicGadget checks the same identity over circuit variables. The operator
// order matches CubicEvaluator, so for any assignment the gadget's boolean
// equals the native verdict.
type CubicGadget struct {
	X Var
}

// Verify returns a boolean variable worth 1 iff x³ + x + 5 equals y. The
// gadget reports; it does not enforce equality.
func (g CubicGadget) Verify(sys *constraint.System, y Var) (Var, error) {
	t1, err := Mul(sys, g.X, g.X)
	if err != nil {
		return Var{}, err
	}
	t2, err := Mul(sys, t1, g.X)
	if err != nil {
		return Var{}, err
	}
	var five fr.Element
	five.SetUint64(5)
	eval := AddConstant(sys, Add(t2, g.X), five)
	return IsEq(sys, eval, y)
}
