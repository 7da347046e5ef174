package hhcompiler

import (
	"errors"
	"fmt"

	"github.com/chamberlandlab/heavyhex/internal/circuitir"
	"github.com/chamberlandlab/heavyhex/internal/lattice"
)

var (
	// ErrInvalidDistance mirrors internal/lattice: the code distance
	// must be an odd integer >= 3.
	ErrInvalidDistance = lattice.ErrInvalidDistance
	// ErrInvalidRounds is returned when the requested round count is
	// less than 1.
	ErrInvalidRounds = errors.New("invalid round count")
	// ErrInvalidBasis is returned when the requested basis is neither
	// BasisX nor BasisZ.
	ErrInvalidBasis = errors.New("invalid basis")
	// ErrInvalidResetBasis mirrors internal/circuitir: a reset was
	// requested in a basis other than X or Z.
	ErrInvalidResetBasis = circuitir.ErrInvalidResetBasis
	// ErrInvalidProbability is returned when a noise channel's
	// probability falls outside [0, 1].
	ErrInvalidProbability = errors.New("invalid probability")
	// ErrInvalidParityFactor is returned by the detector-wiring dispatch
	// when asked for anything other than 1 or 2 latest measurements.
	ErrInvalidParityFactor = errors.New("invalid parity factor")
)

// CompileError wraps a sentinel with the compiler stage that detected
// it, so callers can both errors.Is against the sentinel and log which
// stage failed.
type CompileError struct {
	Op  string
	Err error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("hhcompiler: %s: %v", e.Op, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }
