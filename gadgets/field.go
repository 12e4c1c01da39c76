// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package gadgets

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/r1cs-relations/constraint"
)

// Add returns a + b. Additions are free: the linear combinations are merged
// without allocating a wire or emitting a constraint.
func Add(a, b Var) Var {
	lc := make(constraint.LinearCombination, 0, len(a.lc)+len(b.lc))
	lc = append(lc, a.lc...)
	lc = append(lc, b.lc...)
	return Var{lc: lc}
}

// AddConstant returns a + k, with k riding on the one wire.
func AddConstant(sys *constraint.System, a Var, k fr.Element) Var {
	lc := make(constraint.LinearCombination, 0, len(a.lc)+1)
	lc = append(lc, a.lc...)
	return Var{lc: lc.Append(sys.One(), k)}
}

// Neg returns -a.
func Neg(a Var) Var {
	lc := make(constraint.LinearCombination, len(a.lc))
	copy(lc, a.lc)
	for i := range lc {
		lc[i].Coeff.Neg(&lc[i].Coeff)
	}
	return Var{lc: lc}
}

// Sub returns a - b.
func Sub(a, b Var) Var {
	return Add(a, Neg(b))
}

// Mul returns a·b, allocating a product wire and emitting one constraint.
func Mul(sys *constraint.System, a, b Var) (Var, error) {
	w, err := sys.AllocateWitness(func() (fr.Element, error) {
		av, err := sys.Evaluate(a.lc)
		if err != nil {
			return fr.Element{}, err
		}
		bv, err := sys.Evaluate(b.lc)
		if err != nil {
			return fr.Element{}, err
		}
		av.Mul(&av, &bv)
		return av, nil
	})
	if err != nil {
		return Var{}, err
	}
	if err := sys.Enforce(a.lc, b.lc, constraint.LinearCombinationOf(w)); err != nil {
		return Var{}, err
	}
	return Var{lc: constraint.LinearCombinationOf(w)}, nil
}

// IsEq returns a boolean variable worth 1 iff a == b, following the classic
// IsZero construction on d = a - b:
//
//	d · m = 0
//	m · m = m
//	(d + m) · inv = 1
//
// where the prover supplies m = 1 iff d == 0, and inv = (d + m)⁻¹. Distinct
// values yield m = 0; equality checking is exact in the field.
func IsEq(sys *constraint.System, a, b Var) (Var, error) {
	d := Sub(a, b)

	m, err := sys.AllocateWitness(func() (fr.Element, error) {
		dv, err := sys.Evaluate(d.lc)
		if err != nil {
			return fr.Element{}, err
		}
		var res fr.Element
		if dv.IsZero() {
			res.SetOne()
		}
		return res, nil
	})
	if err != nil {
		return Var{}, err
	}

	inv, err := sys.AllocateWitness(func() (fr.Element, error) {
		dv, err := sys.Evaluate(d.lc)
		if err != nil {
			return fr.Element{}, err
		}
		mv, err := sys.Evaluate(constraint.LinearCombinationOf(m))
		if err != nil {
			return fr.Element{}, err
		}
		dv.Add(&dv, &mv)
		dv.Inverse(&dv)
		return dv, nil
	})
	if err != nil {
		return Var{}, err
	}

	mLC := constraint.LinearCombinationOf(m)
	if err := sys.Enforce(d.lc, mLC, constraint.LinearCombination{}); err != nil {
		return Var{}, err
	}
	if err := sys.Enforce(mLC, mLC, mLC); err != nil {
		return Var{}, err
	}
	dPlusM := make(constraint.LinearCombination, 0, len(d.lc)+1)
	dPlusM = append(dPlusM, d.lc...)
	dPlusM = append(dPlusM, mLC...)
	if err := sys.Enforce(
		dPlusM,
		constraint.LinearCombinationOf(inv),
		constraint.LinearCombinationOf(sys.One()),
	); err != nil {
		return Var{}, err
	}
	return Var{lc: mLC}, nil
}
