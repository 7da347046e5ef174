// Package hhcompiler assembles a full heavy-hex subsystem code circuit
// from a Request: it drives internal/lattice and internal/schedule to
// classify qubits and schedule gauge-extraction CNOTs, emits the
// instruction stream through internal/circuitir, and wires detectors
// and the logical observable onto the resulting measurement history.
package hhcompiler

// Basis selects the logical eigenbasis the code block is prepared,
// stabilized, and measured in.
type Basis byte

const (
	BasisZ Basis = 'Z'
	BasisX Basis = 'X'
)

func (b Basis) String() string {
	switch b {
	case BasisZ:
		return "Z"
	case BasisX:
		return "X"
	default:
		return "invalid"
	}
}

// Request configures one compiler run. Field names spell out the noise
// channel they gate, matching the parameter names of the reference
// heavy-hex construction.
type Request struct {
	Distance int
	Rounds   int
	Basis    Basis

	AfterCliffordDepolarization  float64
	AfterResetFlipProbability    float64
	BeforeMeasureFlipProbability float64
	BeforeRoundDataDepolarization float64
}

// Validate checks every field in isolation, before any lattice or
// schedule construction is attempted, so that an invalid Request never
// produces a partial circuit.
func (r Request) Validate() error {
	if r.Distance < 3 || r.Distance%2 == 0 {
		return &CompileError{Op: "distance", Err: ErrInvalidDistance}
	}
	if r.Rounds < 1 {
		return &CompileError{Op: "rounds", Err: ErrInvalidRounds}
	}
	if r.Basis != BasisX && r.Basis != BasisZ {
		return &CompileError{Op: "basis", Err: ErrInvalidBasis}
	}
	for _, p := range []float64{
		r.AfterCliffordDepolarization,
		r.AfterResetFlipProbability,
		r.BeforeMeasureFlipProbability,
		r.BeforeRoundDataDepolarization,
	} {
		if p < 0 || p > 1 {
			return &CompileError{Op: "probability", Err: ErrInvalidProbability}
		}
	}
	return nil
}

// Stats summarizes the qubit and instruction counts of a compiled
// circuit, letting callers sanity-check a run without re-parsing the
// emitted text.
type Stats struct {
	NumData         int
	NumXGauge       int
	NumZGauge       int
	NumFlag         int
	NumDetectors    int
	NumMeasurements int
}
