package hhcompiler

import (
	"errors"
	"strings"
	"testing"
)

func baseRequest() Request {
	return Request{
		Distance: 3,
		Rounds:   1,
		Basis:    BasisZ,
	}
}

func TestValidateRejectsBadDistance(t *testing.T) {
	req := baseRequest()
	req.Distance = 4
	if _, _, err := Compile(req); !errors.Is(err, ErrInvalidDistance) {
		t.Errorf("expected ErrInvalidDistance, got %v", err)
	}
}

func TestValidateRejectsBadBasis(t *testing.T) {
	req := baseRequest()
	req.Basis = Basis('Y')
	if _, _, err := Compile(req); !errors.Is(err, ErrInvalidBasis) {
		t.Errorf("expected ErrInvalidBasis, got %v", err)
	}
}

func TestValidateRejectsBadRounds(t *testing.T) {
	req := baseRequest()
	req.Rounds = 0
	if _, _, err := Compile(req); !errors.Is(err, ErrInvalidRounds) {
		t.Errorf("expected ErrInvalidRounds, got %v", err)
	}
}

func TestValidateRejectsBadProbability(t *testing.T) {
	req := baseRequest()
	req.AfterCliffordDepolarization = 1.5
	if _, _, err := Compile(req); !errors.Is(err, ErrInvalidProbability) {
		t.Errorf("expected ErrInvalidProbability, got %v", err)
	}

	req = baseRequest()
	req.BeforeMeasureFlipProbability = -0.1
	if _, _, err := Compile(req); !errors.Is(err, ErrInvalidProbability) {
		t.Errorf("expected ErrInvalidProbability, got %v", err)
	}
}

// TestScenarioS1 checks d=3, R=1, Z basis, zero noise: the first line is
// QUBIT_COORDS(0, 0) 0, role counts are 9/4/8, and the circuit carries
// no noise-channel lines at all.
func TestScenarioS1(t *testing.T) {
	circuit, stats, err := Compile(baseRequest())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	lines := strings.Split(circuit, "\n")
	if len(lines) == 0 || lines[0] != "QUBIT_COORDS(0, 0) 0" {
		t.Errorf("expected first line %q, got %q", "QUBIT_COORDS(0, 0) 0", lines[0])
	}

	if stats.NumData != 9 || stats.NumXGauge != 4 || stats.NumZGauge != 8 {
		t.Errorf("unexpected role counts: %+v", stats)
	}

	for _, noisy := range []string{"X_ERROR", "Z_ERROR", "DEPOLARIZE1", "DEPOLARIZE2"} {
		if strings.Contains(circuit, noisy) {
			t.Errorf("expected no %s lines under zero noise", noisy)
		}
	}
}

// TestScenarioS1ObservableQubits checks that the Z-basis observable for
// d=3 lists exactly three rec[] entries, one per first-row data qubit.
func TestScenarioS1ObservableQubits(t *testing.T) {
	circuit, _, err := Compile(baseRequest())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	var observableLine string
	for _, line := range strings.Split(circuit, "\n") {
		if strings.HasPrefix(line, "OBSERVABLE_INCLUDE") {
			observableLine = line
		}
	}
	if observableLine == "" {
		t.Fatal("no OBSERVABLE_INCLUDE line found")
	}
	if strings.Count(observableLine, "rec[") != 3 {
		t.Errorf("expected observable over exactly 3 data qubits, got line %q", observableLine)
	}
}

// TestNoRepeatWhenSingleRound checks that R=1 never emits a REPEAT block.
func TestNoRepeatWhenSingleRound(t *testing.T) {
	circuit, _, err := Compile(baseRequest())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if strings.Contains(circuit, "REPEAT") {
		t.Error("expected no REPEAT block for R=1")
	}
}

// TestRepeatBlockAppearsOnceForMultipleRounds checks the REPEAT count
// matches R-1 and appears exactly once regardless of how large R is.
func TestRepeatBlockAppearsOnceForMultipleRounds(t *testing.T) {
	req := baseRequest()
	req.Rounds = 4
	circuit, _, err := Compile(req)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if got := strings.Count(circuit, "REPEAT"); got != 1 {
		t.Errorf("expected exactly one REPEAT block, got %d", got)
	}
	if !strings.Contains(circuit, "REPEAT 3 {") {
		t.Errorf("expected REPEAT 3 {, circuit:\n%s", circuit)
	}
}

// TestMeasurementCountStableAcrossRoundsAboveOne checks the invariant
// that, because the REPEAT body is emitted once textually regardless of
// how many times it executes at runtime, the measurement count (and
// hence every rec[] offset) is identical for any R > 1.
func TestMeasurementCountStableAcrossRoundsAboveOne(t *testing.T) {
	req2 := baseRequest()
	req2.Rounds = 2
	_, stats2, err := Compile(req2)
	if err != nil {
		t.Fatalf("Compile(R=2) failed: %v", err)
	}

	req5 := baseRequest()
	req5.Rounds = 5
	_, stats5, err := Compile(req5)
	if err != nil {
		t.Fatalf("Compile(R=5) failed: %v", err)
	}

	if stats2.NumMeasurements != stats5.NumMeasurements {
		t.Errorf("expected identical measurement counts for R=2 and R=5, got %d vs %d",
			stats2.NumMeasurements, stats5.NumMeasurements)
	}

	req1 := baseRequest()
	_, stats1, err := Compile(req1)
	if err != nil {
		t.Fatalf("Compile(R=1) failed: %v", err)
	}
	if stats1.NumMeasurements == stats2.NumMeasurements {
		t.Error("expected R=1 measurement count to differ from R>1")
	}
}

// TestDeterministicUnderZeroNoise checks that two independent compiles
// of the same request produce byte-identical circuits.
func TestDeterministicUnderZeroNoise(t *testing.T) {
	c1, _, err := Compile(baseRequest())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	c2, _, err := Compile(baseRequest())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if c1 != c2 {
		t.Error("expected identical circuits from identical requests")
	}
}

// TestIdempotentRebuild checks that compiling twice at a larger distance
// and with noise still produces identical output (determinism doesn't
// depend on zero noise, just on fixed probabilities).
func TestIdempotentRebuild(t *testing.T) {
	req := Request{
		Distance:                     5,
		Rounds:                       3,
		Basis:                        BasisX,
		AfterCliffordDepolarization:  0.001,
		AfterResetFlipProbability:    0.001,
		BeforeMeasureFlipProbability: 0.001,
		BeforeRoundDataDepolarization: 0.001,
	}
	c1, s1, err := Compile(req)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	c2, s2, err := Compile(req)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if c1 != c2 {
		t.Error("expected identical circuits across repeated compiles")
	}
	if s1 != s2 {
		t.Errorf("expected identical stats across repeated compiles, got %+v and %+v", s1, s2)
	}
}

// TestNoiseChannelsOnlyWhenPositive checks that setting exactly one
// probability nonzero introduces only the matching channel.
func TestNoiseChannelsOnlyWhenPositive(t *testing.T) {
	req := baseRequest()
	req.AfterCliffordDepolarization = 0.01
	circuit, _, err := Compile(req)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if !strings.Contains(circuit, "DEPOLARIZE1(0.01)") || !strings.Contains(circuit, "DEPOLARIZE2(0.01)") {
		t.Error("expected DEPOLARIZE1/DEPOLARIZE2 lines when after-Clifford depolarization is set")
	}
	if strings.Contains(circuit, "X_ERROR") || strings.Contains(circuit, "Z_ERROR") {
		t.Error("expected no flip-error lines when only Clifford depolarization is set")
	}
}

// TestSingleObservableLine checks that exactly one OBSERVABLE_INCLUDE
// line is ever emitted.
func TestSingleObservableLine(t *testing.T) {
	circuit, _, err := Compile(baseRequest())
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if got := strings.Count(circuit, "OBSERVABLE_INCLUDE"); got != 1 {
		t.Errorf("expected exactly one OBSERVABLE_INCLUDE line, got %d", got)
	}
}

// TestXBasisCompiles exercises the X-basis branch end to end for a
// larger distance.
func TestXBasisCompiles(t *testing.T) {
	req := Request{Distance: 5, Rounds: 2, Basis: BasisX}
	circuit, stats, err := Compile(req)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if stats.NumDetectors == 0 {
		t.Error("expected at least one detector")
	}
	if !strings.Contains(circuit, "RX") {
		t.Error("expected an RX reset line for X-basis data preparation")
	}
}
