// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package gadgets

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/r1cs-relations/constraint"
)

func TestMulAllocatesOneWire(t *testing.T) {
	sys := constraint.NewSystem(constraint.Prove)
	a, err := Alloc(sys, Witness, valueOf(6))
	require.NoError(t, err)
	b, err := Alloc(sys, Witness, valueOf(7))
	require.NoError(t, err)

	ab, err := Mul(sys, a, b)
	require.NoError(t, err)
	require.Equal(t, 3, sys.NbVariables())
	require.Equal(t, 1, sys.NbConstraints())

	v, err := ab.Value(sys)
	require.NoError(t, err)
	want := frOf(42)
	require.True(t, v.Equal(&want))

	satisfied, err := sys.IsSatisfied()
	require.NoError(t, err)
	require.True(t, satisfied)
}

func TestAddIsFree(t *testing.T) {
	sys := constraint.NewSystem(constraint.Prove)
	a, err := Alloc(sys, Witness, valueOf(6))
	require.NoError(t, err)
	b, err := Alloc(sys, Witness, valueOf(7))
	require.NoError(t, err)

	sum := Add(a, b)
	require.Equal(t, 2, sys.NbVariables())
	require.Equal(t, 0, sys.NbConstraints())

	v, err := sum.Value(sys)
	require.NoError(t, err)
	want := frOf(13)
	require.True(t, v.Equal(&want))

	diff := Sub(a, b)
	v, err = diff.Value(sys)
	require.NoError(t, err)
	var minusOne fr.Element
	minusOne.SetOne().Neg(&minusOne)
	require.True(t, v.Equal(&minusOne))
}

func TestIsEqParity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	isEq := func(av, bv uint64) (bool, bool) {
		sys := constraint.NewSystem(constraint.Prove)
		a, err := Alloc(sys, Witness, valueOf(av))
		if err != nil {
			return false, false
		}
		b, err := Alloc(sys, Witness, valueOf(bv))
		if err != nil {
			return false, false
		}
		eq, err := IsEq(sys, a, b)
		if err != nil {
			return false, false
		}
		isTrue, err := eq.IsTrue(sys)
		if err != nil {
			return false, false
		}
		satisfied, err := sys.IsSatisfied()
		if err != nil {
			return false, false
		}
		return isTrue, satisfied
	}

	properties.Property("IsEq matches field equality", prop.ForAll(
		func(av, bv uint64) bool {
			isTrue, satisfied := isEq(av, bv)
			return satisfied && isTrue == (av == bv)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("IsEq is reflexive", prop.ForAll(
		func(av uint64) bool {
			isTrue, satisfied := isEq(av, av)
			return satisfied && isTrue
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// every native evaluator is usable through the Evaluator interface
func TestEvaluators(t *testing.T) {
	cases := []struct {
		evaluator Evaluator
		public    fr.Element
		want      bool
	}{
		{CubicEvaluator{X: frOf(3)}, frOf(35), true},
		{CubicEvaluator{X: frOf(3)}, frOf(30), false},
		{ProductEvaluator{A: frOf(6), B: frOf(7)}, frOf(42), true},
		{ProductEvaluator{A: frOf(6), B: frOf(7)}, frOf(41), false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.evaluator.Verify(tc.public))
	}
}

func TestProductGadgetParity(t *testing.T) {
	sys := constraint.NewSystem(constraint.Prove)
	a, err := Alloc(sys, Witness, valueOf(6))
	require.NoError(t, err)
	b, err := Alloc(sys, Witness, valueOf(7))
	require.NoError(t, err)
	c, err := Alloc(sys, PublicInput, valueOf(42))
	require.NoError(t, err)

	require.True(t, ProductEvaluator{A: frOf(6), B: frOf(7)}.Verify(frOf(42)))

	ok, err := ProductGadget{A: a, B: b}.Verify(sys, c)
	require.NoError(t, err)
	isTrue, err := ok.IsTrue(sys)
	require.NoError(t, err)
	require.True(t, isTrue)

	satisfied, err := sys.IsSatisfied()
	require.NoError(t, err)
	require.True(t, satisfied)
}
