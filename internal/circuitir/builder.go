// Package circuitir emits the target stabilizer-simulator instruction
// language: one statement per line, append-only, with a running
// measurement counter and per-qubit measurement history so that
// detector wiring can compute rec[] offsets lazily.
package circuitir

import (
	"fmt"
	"strings"

	"github.com/chamberlandlab/heavyhex/internal/schedule"
)

// ResetBasis selects which eigenbasis a Reset call prepares qubits in.
type ResetBasis byte

const (
	ResetZ ResetBasis = 'Z'
	ResetX ResetBasis = 'X'
)

// Builder accumulates IR statements into a single growing text buffer.
// It is stateful only in the measurement counter and per-qubit history;
// every other method is a pure formatting helper over that state. A
// Builder is meant to be used for exactly one circuit and then
// discarded, mirroring the single-use compiler lifecycle of spec
// section 3.
type Builder struct {
	buf     strings.Builder
	counter int
	history map[int][]int
}

// NewBuilder returns an empty Builder ready to emit a circuit.
func NewBuilder() *Builder {
	return &Builder{history: make(map[int][]int)}
}

// Counter returns the number of measurements emitted so far.
func (b *Builder) Counter() int { return b.counter }

// String returns the circuit text emitted so far.
func (b *Builder) String() string { return b.buf.String() }

// QubitCoords declares a qubit's 2-D visualisation coordinate.
func (b *Builder) QubitCoords(id, row, col int) {
	fmt.Fprintf(&b.buf, "QUBIT_COORDS(%d, %d) %d\n", row, col, id)
}

// Reset emits R (Z basis) or RX (X basis) for the given qubits.
// ErrInvalidResetBasis is returned for any basis other than ResetZ or
// ResetX, matching spec section 7.
func (b *Builder) Reset(qubits []int, basis ResetBasis) error {
	var mnemonic string
	switch basis {
	case ResetZ:
		mnemonic = "R"
	case ResetX:
		mnemonic = "RX"
	default:
		return fmt.Errorf("circuitir: %w: %q", ErrInvalidResetBasis, byte(basis))
	}
	b.writeLine(mnemonic, qubits)
	return nil
}

// H emits a Hadamard on every qubit listed.
func (b *Builder) H(qubits []int) {
	b.writeLine("H", qubits)
}

// CNOT emits one CNOT line covering every pair, in order.
func (b *Builder) CNOT(pairs []schedule.Pair) {
	if len(pairs) == 0 {
		return
	}
	b.buf.WriteString("CNOT")
	for _, p := range pairs {
		fmt.Fprintf(&b.buf, " %d %d", p.Control, p.Target)
	}
	b.buf.WriteString("\n")
}

// MR measures and resets every qubit listed, in Z basis, recording each
// in measurement history.
func (b *Builder) MR(qubits []int) {
	b.measure("MR", qubits)
}

// M destructively measures every qubit listed in Z basis.
func (b *Builder) M(qubits []int) {
	b.measure("M", qubits)
}

// MX destructively measures every qubit listed in X basis.
func (b *Builder) MX(qubits []int) {
	b.measure("MX", qubits)
}

func (b *Builder) measure(mnemonic string, qubits []int) {
	if len(qubits) == 0 {
		return
	}
	b.buf.WriteString(mnemonic)
	for _, q := range qubits {
		fmt.Fprintf(&b.buf, " %d", q)
		b.history[q] = append(b.history[q], b.counter)
		b.counter++
	}
	b.buf.WriteString("\n")
}

// XError emits an X_ERROR(p) channel over the given qubits. Callers are
// expected to skip this call entirely when p == 0, per spec section 4
// ("noise channels are emitted only if their probability is strictly
// positive").
func (b *Builder) XError(p float64, qubits []int) {
	b.writeNoise("X_ERROR", p, qubits)
}

// ZError emits a Z_ERROR(p) channel over the given qubits.
func (b *Builder) ZError(p float64, qubits []int) {
	b.writeNoise("Z_ERROR", p, qubits)
}

// Depolarize1 emits a DEPOLARIZE1(p) channel over the given qubits.
func (b *Builder) Depolarize1(p float64, qubits []int) {
	b.writeNoise("DEPOLARIZE1", p, qubits)
}

func (b *Builder) writeNoise(op string, p float64, qubits []int) {
	if len(qubits) == 0 {
		return
	}
	fmt.Fprintf(&b.buf, "%s(%v)", op, p)
	for _, q := range qubits {
		fmt.Fprintf(&b.buf, " %d", q)
	}
	b.buf.WriteString("\n")
}

// Depolarize2 emits a DEPOLARIZE2(p) channel over the given pairs.
func (b *Builder) Depolarize2(p float64, pairs []schedule.Pair) {
	if len(pairs) == 0 {
		return
	}
	fmt.Fprintf(&b.buf, "DEPOLARIZE2(%v)", p)
	for _, pair := range pairs {
		fmt.Fprintf(&b.buf, " %d %d", pair.Control, pair.Target)
	}
	b.buf.WriteString("\n")
}

// Tick emits a time-step barrier.
func (b *Builder) Tick() {
	b.buf.WriteString("TICK\n")
}

// Detector emits one DETECTOR declaration at visualisation coordinate
// (row, col) for the given round, listing rec[] offsets verbatim
// (already computed relative to the current counter by the caller, see
// HistoryBack).
func (b *Builder) Detector(row, col, round int, deltas []int) {
	fmt.Fprintf(&b.buf, "DETECTOR(%d, %d, %d)", row, col, round)
	for _, d := range deltas {
		fmt.Fprintf(&b.buf, " rec[%d]", d)
	}
	b.buf.WriteString("\n")
}

// ObservableInclude emits the OBSERVABLE_INCLUDE declaration for the
// given observable index, listing rec[] offsets verbatim.
func (b *Builder) ObservableInclude(index int, deltas []int) {
	fmt.Fprintf(&b.buf, "OBSERVABLE_INCLUDE(%d)", index)
	for _, d := range deltas {
		fmt.Fprintf(&b.buf, " rec[%d]", d)
	}
	b.buf.WriteString("\n")
}

// Repeat captures everything body emits — using this same Builder, so
// the measurement counter and history keep advancing exactly as if the
// calls were inline — and wraps it as a REPEAT n { ... } block with
// every captured line prefixed by one tab, per spec section 6.
func (b *Builder) Repeat(n int, body func(*Builder)) {
	outer := b.buf
	b.buf = strings.Builder{}
	body(b)
	inner := b.buf.String()
	b.buf = outer
	fmt.Fprintf(&b.buf, "REPEAT %d {\n%s}\n", n, indentBlock(inner))
}

func indentBlock(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = "\t" + line
	}
	return strings.Join(lines, "\n") + "\n"
}

func (b *Builder) writeLine(mnemonic string, qubits []int) {
	if len(qubits) == 0 {
		return
	}
	b.buf.WriteString(mnemonic)
	for _, q := range qubits {
		fmt.Fprintf(&b.buf, " %d", q)
	}
	b.buf.WriteString("\n")
}

// HistoryBack returns the rec[] offset for the back-th most recent
// measurement of qubit q (back=1 is the latest measurement, back=2 the
// one before that, and so on), relative to the current counter. This
// is always negative at the point of emission, since the measurement
// it refers to has already advanced the counter.
func (b *Builder) HistoryBack(q, back int) int {
	h := b.history[q]
	return h[len(h)-back] - b.counter
}

// HistoryLen returns how many times q has been measured so far.
func (b *Builder) HistoryLen(q int) int {
	return len(b.history[q])
}
