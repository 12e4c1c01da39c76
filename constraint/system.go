// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package constraint

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Mode selects whether a System records the shape of a circuit only (Setup)
// or a full concrete assignment alongside it (Prove).
type Mode uint8

const (
	// Setup records variables and constraints without values; value providers
	// are not invoked.
	Setup Mode = iota

	// Prove additionally records the value of every allocated variable.
	Prove
)

// ValueFunc supplies the concrete value of a variable at allocation time.
// It is invoked only when the system is in Prove mode.
type ValueFunc func() (fr.Element, error)

// System is an append-only rank-1 constraint system. Variables and constraints
// are only ever appended, never removed or reordered, so wire indices are
// stable across identical synthesis runs.
//
// A System is exclusively owned by the caller driving synthesis; it is not
// safe for concurrent use. On any error the system is left partially
// synthesized and must be discarded.
type System struct {
	mode Mode

	// wire 0 is the constant one; allocations start at wire 1.
	values   []fr.Element
	assigned *bitset.BitSet
	roles    []Visibility

	constraints []R1C
}

// NewSystem returns an empty system holding only the constant one wire.
func NewSystem(mode Mode) *System {
	s := &System{
		mode:     mode,
		assigned: bitset.New(64),
	}
	var one fr.Element
	one.SetOne()
	s.values = append(s.values, one)
	s.assigned.Set(0)
	return s
}

// One returns the handle of the constant wire; its value is always 1.
func (s *System) One() Variable {
	return Variable{wID: 0, visibility: PublicInput}
}

// IsSetupMode reports whether value providers are skipped.
func (s *System) IsSetupMode() bool {
	return s.mode == Setup
}

// AllocateWitness appends a prover-only variable. In Prove mode the provider
// is invoked immediately and its failure aborts the allocation.
func (s *System) AllocateWitness(value ValueFunc) (Variable, error) {
	return s.allocate(Witness, value)
}

// AllocatePublicInput appends a variable shared with the verifier. Public
// inputs are consumed positionally at verification, in allocation order.
func (s *System) AllocatePublicInput(value ValueFunc) (Variable, error) {
	return s.allocate(PublicInput, value)
}

func (s *System) allocate(visibility Visibility, value ValueFunc) (Variable, error) {
	var v fr.Element
	if s.mode == Prove {
		if value == nil {
			return Variable{}, ErrAssignmentMissing
		}
		var err error
		if v, err = value(); err != nil {
			return Variable{}, err
		}
	}
	wID := len(s.values)
	s.values = append(s.values, v)
	s.roles = append(s.roles, visibility)
	if s.mode == Prove {
		s.assigned.Set(uint(wID))
	}
	return Variable{wID: wID, visibility: visibility}, nil
}

// Enforce appends the constraint a · b = c. The combinations may only
// reference variables allocated by this system.
func (s *System) Enforce(a, b, c LinearCombination) error {
	for _, lc := range []LinearCombination{a, b, c} {
		if err := s.check(lc); err != nil {
			return err
		}
	}
	s.constraints = append(s.constraints, R1C{L: a, R: b, O: c})
	return nil
}

func (s *System) check(lc LinearCombination) error {
	for _, t := range lc {
		if t.Variable.visibility == Unset || t.Variable.wID >= len(s.values) {
			return fmt.Errorf("%w: wire %d", ErrUnallocatedVariable, t.Variable.wID)
		}
	}
	return nil
}

// Evaluate returns the value of lc under the current assignment.
// It fails in Setup mode.
func (s *System) Evaluate(lc LinearCombination) (fr.Element, error) {
	var res fr.Element
	if s.mode == Setup {
		return res, ErrSetupMode
	}
	if err := s.check(lc); err != nil {
		return res, err
	}
	var tmp fr.Element
	for _, t := range lc {
		if !s.assigned.Test(uint(t.Variable.wID)) {
			return fr.Element{}, fmt.Errorf("%w: wire %d", ErrAssignmentMissing, t.Variable.wID)
		}
		tmp.Mul(&t.Coeff, &s.values[t.Variable.wID])
		res.Add(&res, &tmp)
	}
	return res, nil
}

// IsSatisfied reports whether every constraint holds under the recorded
// assignment. It fails in Setup mode.
func (s *System) IsSatisfied() (bool, error) {
	if s.mode == Setup {
		return false, ErrSetupMode
	}
	for i, c := range s.constraints {
		l, err := s.Evaluate(c.L)
		if err != nil {
			return false, fmt.Errorf("constraint %d: %w", i, err)
		}
		r, err := s.Evaluate(c.R)
		if err != nil {
			return false, fmt.Errorf("constraint %d: %w", i, err)
		}
		o, err := s.Evaluate(c.O)
		if err != nil {
			return false, fmt.Errorf("constraint %d: %w", i, err)
		}
		l.Mul(&l, &r)
		if !l.Equal(&o) {
			return false, nil
		}
	}
	return true, nil
}

// PublicInputs returns the values of the public-input variables in allocation
// order, excluding the one wire. This is the vector a verifier consumes.
// It fails in Setup mode.
func (s *System) PublicInputs() ([]fr.Element, error) {
	if s.mode == Setup {
		return nil, ErrSetupMode
	}
	var res []fr.Element
	for i, role := range s.roles {
		if role == PublicInput {
			res = append(res, s.values[i+1])
		}
	}
	return res, nil
}

// Roles returns the visibility of every allocated variable in allocation
// order, excluding the one wire.
func (s *System) Roles() []Visibility {
	res := make([]Visibility, len(s.roles))
	copy(res, s.roles)
	return res
}

// NbConstraints returns the number of constraints appended so far.
func (s *System) NbConstraints() int {
	return len(s.constraints)
}

// NbVariables returns the number of allocated variables, excluding the one wire.
func (s *System) NbVariables() int {
	return len(s.roles)
}

// NbPublic returns the number of public-input variables, excluding the one wire.
func (s *System) NbPublic() int {
	n := 0
	for _, role := range s.roles {
		if role == PublicInput {
			n++
		}
	}
	return n
}

// NbWitness returns the number of witness variables.
func (s *System) NbWitness() int {
	return len(s.roles) - s.NbPublic()
}
