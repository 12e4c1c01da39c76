// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package snark drives gnark proving backends over the relation circuits:
// setup (compilation + key generation), proving, and verification against a
// positional public-input vector.
//
// Groth16 runs a circuit-specific setup; PLONK builds its structured
// reference string from the compiled circuit's declared size, which is what
// the product relation's padding parameters are for.
package snark

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/plonk"
	"github.com/consensys/gnark/backend/witness"
	cs "github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	"github.com/consensys/gnark/frontend/cs/scs"
	"github.com/consensys/gnark/test/unsafekzg"

	"github.com/consensys/r1cs-relations/logger"
)

// the demo is pinned to BN254; the relations' field element type follows.
const curveID = ecc.BN254

// Proof is an opaque, byte-serializable backend artifact.
type Proof interface {
	io.WriterTo
	io.ReaderFrom
}

type config struct {
	backendID   backend.ID
	compileOpts []frontend.CompileOption
}

// Option configures Setup.
type Option func(*config) error

// WithBackend selects the proving scheme. Supported: backend.GROTH16
// (default) and backend.PLONK.
func WithBackend(id backend.ID) Option {
	return func(cfg *config) error {
		switch id {
		case backend.GROTH16, backend.PLONK:
			cfg.backendID = id
			return nil
		default:
			return fmt.Errorf("unsupported backend %s", id)
		}
	}
}

// WithCompileOptions forwards options to the frontend compiler, e.g.
// frontend.IgnoreUnconstrainedInputs for padded circuits.
func WithCompileOptions(opts ...frontend.CompileOption) Option {
	return func(cfg *config) error {
		cfg.compileOpts = append(cfg.compileOpts, opts...)
		return nil
	}
}

// SNARK bundles a compiled circuit with its proving and verifying keys.
type SNARK struct {
	backendID backend.ID
	ccs       cs.ConstraintSystem

	g16pk groth16.ProvingKey
	g16vk groth16.VerifyingKey

	plonkPK plonk.ProvingKey
	plonkVK plonk.VerifyingKey
}

// Setup compiles the circuit and generates the proving and verifying keys.
// The circuit is a shape: its variables carry no values.
func Setup(circuit frontend.Circuit, opts ...Option) (*SNARK, error) {
	cfg := config{backendID: backend.GROTH16}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	log := logger.Logger().With().
		Str("backend", cfg.backendID.String()).
		Str("curve", curveID.String()).
		Logger()

	s := &SNARK{backendID: cfg.backendID}

	switch cfg.backendID {
	case backend.GROTH16:
		ccs, err := frontend.Compile(curveID.ScalarField(), r1cs.NewBuilder, circuit, cfg.compileOpts...)
		if err != nil {
			return nil, fmt.Errorf("compile: %w", err)
		}
		s.ccs = ccs
		if s.g16pk, s.g16vk, err = groth16.Setup(ccs); err != nil {
			return nil, fmt.Errorf("groth16 setup: %w", err)
		}
	case backend.PLONK:
		ccs, err := frontend.Compile(curveID.ScalarField(), scs.NewBuilder, circuit, cfg.compileOpts...)
		if err != nil {
			return nil, fmt.Errorf("compile: %w", err)
		}
		s.ccs = ccs
		// test-only SRS; a deployment would load the output of a ceremony.
		srs, srsLagrange, err := unsafekzg.NewSRS(ccs)
		if err != nil {
			return nil, fmt.Errorf("kzg srs: %w", err)
		}
		if s.plonkPK, s.plonkVK, err = plonk.Setup(ccs, srs, srsLagrange); err != nil {
			return nil, fmt.Errorf("plonk setup: %w", err)
		}
	}

	log.Debug().Int("nbConstraints", s.ccs.GetNbConstraints()).Msg("setup done")
	return s, nil
}

// Prove generates a proof for the given full assignment.
func (s *SNARK) Prove(assignment frontend.Circuit) (Proof, error) {
	w, err := frontend.NewWitness(assignment, curveID.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness: %w", err)
	}
	switch s.backendID {
	case backend.PLONK:
		return plonk.Prove(s.ccs, s.plonkPK, w)
	default:
		return groth16.Prove(s.ccs, s.g16pk, w)
	}
}

// Verify checks the proof against the public inputs, supplied positionally in
// the relations' public-input allocation order.
func (s *SNARK) Verify(proof Proof, publicInputs []fr.Element) error {
	pw, err := publicWitness(publicInputs)
	if err != nil {
		return err
	}
	switch s.backendID {
	case backend.PLONK:
		p, ok := proof.(plonk.Proof)
		if !ok {
			return fmt.Errorf("proof type %T does not match backend %s", proof, s.backendID)
		}
		return plonk.Verify(p, s.plonkVK, pw)
	default:
		p, ok := proof.(groth16.Proof)
		if !ok {
			return fmt.Errorf("proof type %T does not match backend %s", proof, s.backendID)
		}
		return groth16.Verify(p, s.g16vk, pw)
	}
}

// NewProof returns an empty proof of the backend's concrete type, ready for
// ReadFrom.
func (s *SNARK) NewProof() Proof {
	if s.backendID == backend.PLONK {
		return plonk.NewProof(curveID)
	}
	return groth16.NewProof(curveID)
}

// NbConstraints returns the compiled circuit's constraint count.
func (s *SNARK) NbConstraints() int {
	return s.ccs.GetNbConstraints()
}

func publicWitness(publicInputs []fr.Element) (witness.Witness, error) {
	w, err := witness.New(curveID.ScalarField())
	if err != nil {
		return nil, err
	}
	values := make(chan any, len(publicInputs))
	for _, v := range publicInputs {
		values <- v
	}
	close(values)
	if err := w.Fill(len(publicInputs), 0, values); err != nil {
		return nil, err
	}
	return w, nil
}
