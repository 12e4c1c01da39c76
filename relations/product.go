// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package relations

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/frontend"

	"github.com/consensys/r1cs-relations/constraint"
)

// Product describes knowledge of secret factors a, b of a public c = a·b.
//
// The relation itself is a single constraint; nbVariables and nbConstraints
// pad the circuit with inert allocations and with re-emissions of the same
// a·b=c constraint, so a proof backend can be exercised at a declared circuit
// size independent of the relation's actual complexity. The re-emitted
// constraints are deliberately identical: redundant constraints do not change
// satisfiability, only the declared size.
type Product struct {
	a, b     fr.Element
	assigned bool

	nbConstraints int
	nbVariables   int
}

// NewProductShape returns a shape-only descriptor. nbVariables must be ≥ 3
// (a, b, c) and nbConstraints ≥ 1; violations surface at synthesis.
func NewProductShape(nbConstraints, nbVariables int) *Product {
	return &Product{nbConstraints: nbConstraints, nbVariables: nbVariables}
}

// NewProduct returns an instance descriptor carrying the secret factors.
func NewProduct(a, b fr.Element, nbConstraints, nbVariables int) *Product {
	return &Product{a: a, b: b, assigned: true, nbConstraints: nbConstraints, nbVariables: nbVariables}
}

func (p *Product) valueA() (fr.Element, error) {
	if !p.assigned {
		return fr.Element{}, constraint.ErrAssignmentMissing
	}
	return p.a, nil
}

func (p *Product) valueB() (fr.Element, error) {
	if !p.assigned {
		return fr.Element{}, constraint.ErrAssignmentMissing
	}
	return p.b, nil
}

// Synthesize allocates witnesses a and b, the public input c, then
// nbVariables−3 inert witnesses (value copied from a), and emits a·b=c
// nbConstraints times in total.
func (p *Product) Synthesize(sys *constraint.System) error {
	if p.nbVariables < 3 {
		return fmt.Errorf("%w: product relation needs at least 3 variables, got %d", constraint.ErrAllocation, p.nbVariables)
	}
	if p.nbConstraints < 1 {
		return fmt.Errorf("%w: product relation needs at least 1 constraint, got %d", constraint.ErrAllocation, p.nbConstraints)
	}

	a, err := sys.AllocateWitness(p.valueA)
	if err != nil {
		return err
	}
	b, err := sys.AllocateWitness(p.valueB)
	if err != nil {
		return err
	}
	c, err := sys.AllocatePublicInput(p.Output)
	if err != nil {
		return err
	}

	for i := 0; i < p.nbVariables-3; i++ {
		if _, err := sys.AllocateWitness(p.valueA); err != nil {
			return err
		}
	}

	for i := 0; i < p.nbConstraints; i++ {
		if err := sys.Enforce(
			constraint.LinearCombinationOf(a),
			constraint.LinearCombinationOf(b),
			constraint.LinearCombinationOf(c),
		); err != nil {
			return err
		}
	}
	return nil
}

// Verify reports whether a·b equals c, using plain field arithmetic. It fails
// on a shape-only descriptor.
func (p *Product) Verify(c fr.Element) (bool, error) {
	out, err := p.Output()
	if err != nil {
		return false, err
	}
	return out.Equal(&c), nil
}

// Output returns a·b, the expected public input.
func (p *Product) Output() (fr.Element, error) {
	a, err := p.valueA()
	if err != nil {
		return fr.Element{}, err
	}
	b, err := p.valueB()
	if err != nil {
		return fr.Element{}, err
	}
	a.Mul(&a, &b)
	return a, nil
}

// ProductCircuit is the gnark form of the relation. Pad carries the inert
// extra witnesses; NbConstraints re-asserts the product accordingly.
type ProductCircuit struct {
	A frontend.Variable
	B frontend.Variable
	C frontend.Variable `gnark:",public"`

	// Pad inflates the witness to the declared variable count; its entries
	// are unconstrained, so the circuit must be compiled with
	// frontend.IgnoreUnconstrainedInputs.
	Pad []frontend.Variable

	NbConstraints int
}

// Define declares the circuit constraints.
func (circuit *ProductCircuit) Define(api frontend.API) error {
	if circuit.NbConstraints < 1 {
		return errors.New("product circuit needs at least 1 constraint")
	}
	c := api.Mul(circuit.A, circuit.B)
	for i := 0; i < circuit.NbConstraints; i++ {
		api.AssertIsEqual(c, circuit.C)
	}
	return nil
}

// Circuit returns the gnark form of the relation, for compilation.
func (p *Product) Circuit() frontend.Circuit {
	nbPad := p.nbVariables - 3
	if nbPad < 0 {
		nbPad = 0
	}
	return &ProductCircuit{
		Pad:           make([]frontend.Variable, nbPad),
		NbConstraints: p.nbConstraints,
	}
}

// Assignment returns a full witness assignment for proving. It fails on a
// shape-only descriptor.
func (p *Product) Assignment() (frontend.Circuit, error) {
	out, err := p.Output()
	if err != nil {
		return nil, err
	}
	circuit := p.Circuit().(*ProductCircuit)
	circuit.A = p.a
	circuit.B = p.b
	circuit.C = out
	for i := range circuit.Pad {
		circuit.Pad[i] = p.a
	}
	return circuit, nil
}
