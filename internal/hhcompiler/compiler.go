package hhcompiler

import (
	"github.com/chamberlandlab/heavyhex/internal/circuitir"
	"github.com/chamberlandlab/heavyhex/internal/lattice"
	"github.com/chamberlandlab/heavyhex/internal/schedule"
)

// parityFactor picks how many of a qubit's most recent measurements a
// detector folds in: 1 for a fresh check with no prior partner, 2 for a
// check that XORs against the measurement one round back. It replaces
// the list-identity dispatch of the reference construction with an
// explicit, validated enum.
type parityFactor int

const (
	parity1 parityFactor = 1
	parity2 parityFactor = 2
)

func (p parityFactor) validate() error {
	if p != parity1 && p != parity2 {
		return &CompileError{Op: "detector", Err: ErrInvalidParityFactor}
	}
	return nil
}

// build holds everything one Compile run threads through its steps: the
// lattice and schedule are fixed at construction, the builder
// accumulates the emitted circuit and its measurement history as each
// step runs. Steps are ordered methods in the spirit of a
// multi-step protocol run top to bottom by Compile, each free to fail
// independently.
type build struct {
	req    Request
	lat    *lattice.Lattice
	sched  *schedule.Schedule
	ir     *circuitir.Builder
	numDet int
}

// Compile runs the full heavy-hex circuit construction for req and
// returns the emitted instruction text plus summary statistics. No
// partial circuit is ever returned: req is validated in full before any
// qubit is declared. No decoder is included; decoding the detectors and
// observable of the returned circuit happens outside this package.
func Compile(req Request) (string, Stats, error) {
	if err := req.Validate(); err != nil {
		return "", Stats{}, err
	}

	lat, err := lattice.New(req.Distance)
	if err != nil {
		return "", Stats{}, &CompileError{Op: "lattice", Err: err}
	}

	b := &build{
		req:   req,
		lat:   lat,
		sched: schedule.Build(lat),
		ir:    circuitir.NewBuilder(),
	}

	if err := b.run(); err != nil {
		return "", Stats{}, err
	}

	stats := Stats{
		NumData:         len(lat.Data),
		NumXGauge:       len(lat.XGauge),
		NumZGauge:       len(lat.ZGauge),
		NumFlag:         len(lat.Flag),
		NumDetectors:    b.numDet,
		NumMeasurements: b.ir.Counter(),
	}
	return b.ir.String(), stats, nil
}

func (b *build) run() error {
	b.defineQubits()

	if err := b.ir.Reset(b.lat.Data, resetBasisOf(b.req.Basis)); err != nil {
		return &CompileError{Op: "reset-data", Err: err}
	}
	if b.req.AfterResetFlipProbability > 0 {
		b.flip(b.req.Basis, b.lat.Data, b.req.AfterResetFlipProbability)
	}

	if err := b.ir.Reset(b.lat.XGauge, circuitir.ResetZ); err != nil {
		return &CompileError{Op: "reset-x-gauge", Err: err}
	}
	if b.req.AfterResetFlipProbability > 0 {
		b.flip(BasisZ, b.lat.XGauge, b.req.AfterResetFlipProbability)
	}

	if err := b.ir.Reset(b.lat.ZGauge, circuitir.ResetZ); err != nil {
		return &CompileError{Op: "reset-z-gauge", Err: err}
	}
	if b.req.AfterResetFlipProbability > 0 {
		b.flip(BasisZ, b.lat.ZGauge, b.req.AfterResetFlipProbability)
	}

	b.ir.Tick()

	if err := b.firstRound(); err != nil {
		return err
	}

	if b.req.Rounds > 1 {
		var repeatErr error
		b.ir.Repeat(b.req.Rounds-1, func(*circuitir.Builder) {
			if err := b.subsequentRound(); err != nil {
				repeatErr = err
			}
		})
		if repeatErr != nil {
			return repeatErr
		}
	}

	if b.req.BeforeMeasureFlipProbability > 0 {
		b.flip(b.req.Basis, b.lat.Data, b.req.BeforeMeasureFlipProbability)
	}

	switch b.req.Basis {
	case BasisX:
		b.ir.MX(b.lat.Data)
	case BasisZ:
		b.ir.M(b.lat.Data)
	}

	if err := b.dataMeasurementDetectors(); err != nil {
		return err
	}
	b.observableInclude()

	return nil
}

// firstRound runs the initial stabilizer projection: both bases are
// measured once up front so that the code starts from a definite
// simultaneous eigenstate of every gauge operator, not just the ones
// matching the memory basis.
func (b *build) firstRound() error {
	if b.req.BeforeRoundDataDepolarization > 0 {
		b.ir.Depolarize1(b.req.BeforeRoundDataDepolarization, b.lat.Data)
	}

	switch b.req.Basis {
	case BasisZ:
		b.xChecks()
		if err := b.flagDetectors(); err != nil {
			return err
		}
		b.zChecks()
		if err := b.zGaugeDetectors(parity1); err != nil {
			return err
		}
		b.xChecks()
		if err := b.xGaugeDetectors(parity2); err != nil {
			return err
		}
		if err := b.flagDetectors(); err != nil {
			return err
		}
	case BasisX:
		b.zChecks()
		b.xChecks()
		if err := b.xGaugeDetectors(parity1); err != nil {
			return err
		}
		if err := b.flagDetectors(); err != nil {
			return err
		}
		b.zChecks()
		if err := b.zGaugeDetectors(parity2); err != nil {
			return err
		}
	default:
		return &CompileError{Op: "basis", Err: ErrInvalidBasis}
	}
	return nil
}

// subsequentRound runs inside the REPEAT block: every later round
// compares both gauge types against the round before, so every gauge
// detector here uses parity2; flag detectors stay weight 1.
func (b *build) subsequentRound() error {
	b.ir.Tick()
	if b.req.BeforeRoundDataDepolarization > 0 {
		b.ir.Depolarize1(b.req.BeforeRoundDataDepolarization, b.lat.Data)
	}

	switch b.req.Basis {
	case BasisZ:
		b.zChecks()
		if err := b.zGaugeDetectors(parity2); err != nil {
			return err
		}
		b.xChecks()
		if err := b.xGaugeDetectors(parity2); err != nil {
			return err
		}
		if err := b.flagDetectors(); err != nil {
			return err
		}
	case BasisX:
		b.xChecks()
		if err := b.xGaugeDetectors(parity2); err != nil {
			return err
		}
		if err := b.flagDetectors(); err != nil {
			return err
		}
		b.zChecks()
		if err := b.zGaugeDetectors(parity2); err != nil {
			return err
		}
	default:
		return &CompileError{Op: "basis", Err: ErrInvalidBasis}
	}
	return nil
}

func (b *build) defineQubits() {
	for _, q := range b.lat.Data {
		row, col := b.lat.Coords(q)
		b.ir.QubitCoords(q, row, col)
	}
	for _, q := range b.lat.XGauge {
		row, col := b.lat.Coords(q)
		b.ir.QubitCoords(q, row, col)
	}
	for _, q := range b.lat.ZGauge {
		row, col := b.lat.Coords(q)
		b.ir.QubitCoords(q, row, col)
	}
}

// xChecks runs one round of X-gauge extraction: cycles 2-6 bridge every
// X-gauge ancilla to its neighbouring data and Z-gauge qubits, conjugated
// by Hadamards so the ancilla measures in the X eigenbasis.
func (b *build) xChecks() {
	acd := b.req.AfterCliffordDepolarization

	b.ir.H(b.lat.XGauge)
	if acd > 0 {
		b.ir.Depolarize1(acd, b.lat.XGauge)
	}

	b.ir.CNOT(b.sched.Cycle2)
	if acd > 0 {
		b.ir.Depolarize2(acd, b.sched.Cycle2)
	}
	b.ir.Tick()

	b.ir.CNOT(b.sched.Cycle3)
	if acd > 0 {
		b.ir.Depolarize2(acd, b.sched.Cycle3)
	}
	b.ir.Tick()

	b.ir.CNOT(b.sched.Cycle4)
	if acd > 0 {
		b.ir.Depolarize2(acd, b.sched.Cycle4)
	}
	b.ir.Tick()

	b.ir.CNOT(b.sched.Cycle5)
	if acd > 0 {
		b.ir.Depolarize2(acd, b.sched.Cycle5)
	}
	b.ir.Tick()

	b.ir.CNOT(b.sched.Cycle6)
	if acd > 0 {
		b.ir.Depolarize2(acd, b.sched.Cycle6)
	}
	b.ir.Tick()

	b.ir.H(b.lat.XGauge)
	if acd > 0 {
		b.ir.Depolarize1(acd, b.lat.XGauge)
	}
	b.ir.Tick()

	flagAndXGauge := append(append([]int{}, b.lat.Flag...), b.lat.XGauge...)
	if b.req.BeforeMeasureFlipProbability > 0 {
		b.ir.XError(b.req.BeforeMeasureFlipProbability, flagAndXGauge)
	}
	b.ir.MR(flagAndXGauge)
	if b.req.AfterResetFlipProbability > 0 {
		b.ir.XError(b.req.AfterResetFlipProbability, flagAndXGauge)
	}
}

// zChecks runs one round of Z-gauge extraction: cycles 8-10 bridge
// every Z-gauge ancilla to its neighbouring data qubits directly, with
// no Hadamard conjugation, since the ancilla measures in the Z
// eigenbasis that the CNOT direction already prepares.
func (b *build) zChecks() {
	acd := b.req.AfterCliffordDepolarization

	b.ir.CNOT(b.sched.Cycle8)
	if acd > 0 {
		b.ir.Depolarize2(acd, b.sched.Cycle8)
	}
	b.ir.Tick()

	b.ir.CNOT(b.sched.Cycle9)
	if acd > 0 {
		b.ir.Depolarize2(acd, b.sched.Cycle9)
	}
	b.ir.Tick()

	b.ir.CNOT(b.sched.Cycle10)
	if acd > 0 {
		b.ir.Depolarize2(acd, b.sched.Cycle10)
	}
	b.ir.Tick()

	if b.req.BeforeMeasureFlipProbability > 0 {
		b.ir.XError(b.req.BeforeMeasureFlipProbability, b.lat.ZGauge)
	}
	b.ir.MR(b.lat.ZGauge)
	if b.req.AfterResetFlipProbability > 0 {
		b.ir.XError(b.req.AfterResetFlipProbability, b.lat.ZGauge)
	}
}

// flip inserts the noise channel that flips qubits prepared or measured
// in basis: an X basis state is disturbed by a phase flip (Z_ERROR) and
// a Z basis state by a bit flip (X_ERROR).
func (b *build) flip(basis Basis, qubits []int, p float64) {
	switch basis {
	case BasisX:
		b.ir.ZError(p, qubits)
	case BasisZ:
		b.ir.XError(p, qubits)
	}
}

func resetBasisOf(basis Basis) circuitir.ResetBasis {
	if basis == BasisX {
		return circuitir.ResetX
	}
	return circuitir.ResetZ
}
