// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package relations

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/consensys/r1cs-relations/constraint"
)

// Cubic describes knowledge of a secret x such that x³ + x + 5 = y for a
// public y.
//
// With two intermediate variables the identity flattens into
//
//	x  · x = t1
//	t1 · x = t2
//	(t2 + x + 5) · 1 = out
//
// so the witness vector is [one, x, t1, t2, out].
type Cubic struct {
	x        fr.Element
	assigned bool
}

// NewCubicShape returns a shape-only descriptor, suitable for setup.
func NewCubicShape() *Cubic {
	return &Cubic{}
}

// NewCubic returns an instance descriptor carrying the secret x.
func NewCubic(x fr.Element) *Cubic {
	return &Cubic{x: x, assigned: true}
}

func (c *Cubic) value() (fr.Element, error) {
	if !c.assigned {
		return fr.Element{}, constraint.ErrAssignmentMissing
	}
	return c.x, nil
}

// Synthesize allocates x, t1, t2 as witnesses and out as the sole public
// input, in that order, and enforces the three flattened constraints.
// Verifiers supply the public-input vector positionally, so the allocation
// order is part of the relation's contract.
func (c *Cubic) Synthesize(sys *constraint.System) error {
	x, err := sys.AllocateWitness(c.value)
	if err != nil {
		return err
	}

	// x · x = t1
	t1, err := sys.AllocateWitness(func() (fr.Element, error) {
		v, err := c.value()
		if err != nil {
			return fr.Element{}, err
		}
		v.Square(&v)
		return v, nil
	})
	if err != nil {
		return err
	}
	if err := sys.Enforce(
		constraint.LinearCombinationOf(x),
		constraint.LinearCombinationOf(x),
		constraint.LinearCombinationOf(t1),
	); err != nil {
		return err
	}

	// t1 · x = t2
	t2, err := sys.AllocateWitness(func() (fr.Element, error) {
		v, err := c.value()
		if err != nil {
			return fr.Element{}, err
		}
		var cube fr.Element
		cube.Square(&v).Mul(&cube, &v)
		return cube, nil
	})
	if err != nil {
		return err
	}
	if err := sys.Enforce(
		constraint.LinearCombinationOf(t1),
		constraint.LinearCombinationOf(x),
		constraint.LinearCombinationOf(t2),
	); err != nil {
		return err
	}

	// (t2 + x + 5) · 1 = out
	out, err := sys.AllocatePublicInput(c.Output)
	if err != nil {
		return err
	}
	var five fr.Element
	five.SetUint64(5)
	return sys.Enforce(
		constraint.LinearCombinationOf(t2, x).Append(sys.One(), five),
		constraint.LinearCombinationOf(sys.One()),
		constraint.LinearCombinationOf(out),
	)
}

// Verify reports whether x³ + x + 5 equals y, using plain field arithmetic.
// It fails on a shape-only descriptor.
func (c *Cubic) Verify(y fr.Element) (bool, error) {
	out, err := c.Output()
	if err != nil {
		return false, err
	}
	return out.Equal(&y), nil
}

// Output returns x³ + x + 5, the expected public input.
func (c *Cubic) Output() (fr.Element, error) {
	x, err := c.value()
	if err != nil {
		return fr.Element{}, err
	}
	var out fr.Element
	out.Square(&x).Mul(&out, &x)
	out.Add(&out, &x)
	var five fr.Element
	five.SetUint64(5)
	out.Add(&out, &five)
	return out, nil
}

// CubicCircuit is the gnark form of the relation.
type CubicCircuit struct {
	X frontend.Variable
	Y frontend.Variable `gnark:",public"`
}

// Define declares the circuit constraints, in the same operator order as the
// low-level flattening.
func (circuit *CubicCircuit) Define(api frontend.API) error {
	t1 := api.Mul(circuit.X, circuit.X)
	t2 := api.Mul(t1, circuit.X)
	api.AssertIsEqual(api.Add(t2, circuit.X, 5), circuit.Y)
	return nil
}

// Circuit returns the gnark form of the relation, for compilation.
func (c *Cubic) Circuit() frontend.Circuit {
	return &CubicCircuit{}
}

// Assignment returns a full witness assignment for proving. It fails on a
// shape-only descriptor.
func (c *Cubic) Assignment() (frontend.Circuit, error) {
	out, err := c.Output()
	if err != nil {
		return nil, err
	}
	return &CubicCircuit{X: c.x, Y: out}, nil
}
