// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package constraint

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func value(v uint64) ValueFunc {
	return func() (fr.Element, error) {
		var e fr.Element
		e.SetUint64(v)
		return e, nil
	}
}

func TestOneWire(t *testing.T) {
	sys := NewSystem(Prove)

	got, err := sys.Evaluate(LinearCombinationOf(sys.One()))
	require.NoError(t, err)
	require.True(t, got.IsOne())

	// the one wire does not count as an allocation
	require.Equal(t, 0, sys.NbVariables())
	require.Equal(t, 0, sys.NbPublic())
}

func TestAllocationOrder(t *testing.T) {
	sys := NewSystem(Prove)
	_, err := sys.AllocateWitness(value(1))
	require.NoError(t, err)
	_, err = sys.AllocatePublicInput(value(2))
	require.NoError(t, err)
	_, err = sys.AllocateWitness(value(3))
	require.NoError(t, err)

	want := []Visibility{Witness, PublicInput, Witness}
	if diff := cmp.Diff(want, sys.Roles()); diff != "" {
		t.Fatalf("roles mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 3, sys.NbVariables())
	require.Equal(t, 1, sys.NbPublic())
	require.Equal(t, 2, sys.NbWitness())

	publics, err := sys.PublicInputs()
	require.NoError(t, err)
	require.Len(t, publics, 1)
	var two fr.Element
	two.SetUint64(2)
	require.True(t, publics[0].Equal(&two))
}

func TestSetupModeSkipsProviders(t *testing.T) {
	sys := NewSystem(Setup)
	calls := 0
	_, err := sys.AllocateWitness(func() (fr.Element, error) {
		calls++
		return fr.Element{}, nil
	})
	require.NoError(t, err)
	require.Zero(t, calls)

	// nil providers are fine in setup mode
	_, err = sys.AllocatePublicInput(nil)
	require.NoError(t, err)
	require.True(t, sys.IsSetupMode())
}

func TestProveModeRequiresValues(t *testing.T) {
	sys := NewSystem(Prove)
	_, err := sys.AllocateWitness(nil)
	require.ErrorIs(t, err, ErrAssignmentMissing)

	_, err = sys.AllocateWitness(func() (fr.Element, error) {
		return fr.Element{}, ErrAssignmentMissing
	})
	require.ErrorIs(t, err, ErrAssignmentMissing)
}

func TestEnforceRejectsForeignVariable(t *testing.T) {
	sys := NewSystem(Prove)
	a, err := sys.AllocateWitness(value(2))
	require.NoError(t, err)

	other := NewSystem(Prove)
	for i := 0; i < 4; i++ {
		_, err := other.AllocateWitness(value(1))
		require.NoError(t, err)
	}
	foreign, err := other.AllocateWitness(value(1))
	require.NoError(t, err)

	err = sys.Enforce(
		LinearCombinationOf(a),
		LinearCombinationOf(foreign),
		LinearCombinationOf(a),
	)
	require.ErrorIs(t, err, ErrUnallocatedVariable)

	var zero Variable
	err = sys.Enforce(LinearCombinationOf(zero), LinearCombinationOf(a), LinearCombinationOf(a))
	require.ErrorIs(t, err, ErrUnallocatedVariable)
}

func TestIsSatisfied(t *testing.T) {
	sys := NewSystem(Prove)
	a, err := sys.AllocateWitness(value(6))
	require.NoError(t, err)
	b, err := sys.AllocateWitness(value(7))
	require.NoError(t, err)
	c, err := sys.AllocatePublicInput(value(42))
	require.NoError(t, err)

	require.NoError(t, sys.Enforce(
		LinearCombinationOf(a),
		LinearCombinationOf(b),
		LinearCombinationOf(c),
	))
	ok, err := sys.IsSatisfied()
	require.NoError(t, err)
	require.True(t, ok)

	// a + b = 13 = c does not hold
	require.NoError(t, sys.Enforce(
		LinearCombinationOf(a, b),
		LinearCombinationOf(sys.One()),
		LinearCombinationOf(c),
	))
	ok, err = sys.IsSatisfied()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDuplicateTermsSum(t *testing.T) {
	sys := NewSystem(Prove)
	a, err := sys.AllocateWitness(value(3))
	require.NoError(t, err)

	// a + a evaluates to 6
	got, err := sys.Evaluate(LinearCombinationOf(a, a))
	require.NoError(t, err)
	var six fr.Element
	six.SetUint64(6)
	require.True(t, got.Equal(&six))
}

func TestSetupModeHasNoAssignment(t *testing.T) {
	sys := NewSystem(Setup)
	a, err := sys.AllocateWitness(nil)
	require.NoError(t, err)

	_, err = sys.Evaluate(LinearCombinationOf(a))
	require.ErrorIs(t, err, ErrSetupMode)
	_, err = sys.IsSatisfied()
	require.ErrorIs(t, err, ErrSetupMode)
	_, err = sys.PublicInputs()
	require.ErrorIs(t, err, ErrSetupMode)
}
