package lattice

import (
	"errors"
	"testing"
)

// TestNewInvalidDistance tests that even or too-small distances are rejected.
func TestNewInvalidDistance(t *testing.T) {
	tests := []struct {
		name string
		d    int
	}{
		{"even distance", 4},
		{"too small", 1},
		{"negative", -3},
		{"zero", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.d)
			if !errors.Is(err, ErrInvalidDistance) {
				t.Errorf("expected ErrInvalidDistance for d=%d, got %v", tt.d, err)
			}
		})
	}
}

// TestD3RoleCounts checks the concrete d=3 scenario from the spec: 9 data,
// 4 X-gauge, 8 Z-gauge (2 of them non-flag boundary qubits).
func TestD3RoleCounts(t *testing.T) {
	l, err := New(3)
	if err != nil {
		t.Fatalf("New(3) failed: %v", err)
	}

	if got := len(l.Data); got != 9 {
		t.Errorf("expected 9 data qubits, got %d", got)
	}
	if got := len(l.XGauge); got != 4 {
		t.Errorf("expected 4 x-gauge qubits, got %d", got)
	}
	if got := len(l.ZGauge); got != 8 {
		t.Errorf("expected 8 z-gauge qubits, got %d", got)
	}
	nonFlag := len(l.ZGauge) - len(l.Flag)
	if nonFlag != 2 {
		t.Errorf("expected 2 non-flag boundary z-gauge qubits, got %d", nonFlag)
	}
}

// TestRolesDisjoint checks that every used position belongs to exactly
// one role and that flag is a subset of z-gauge, for several distances.
func TestRolesDisjoint(t *testing.T) {
	for _, d := range []int{3, 5, 7} {
		l, err := New(d)
		if err != nil {
			t.Fatalf("New(%d) failed: %v", d, err)
		}

		seen := make(map[int]Role)
		for _, id := range l.Data {
			seen[id] = RoleData
		}
		for _, id := range l.XGauge {
			if _, dup := seen[id]; dup {
				t.Errorf("d=%d: qubit %d classified twice", d, id)
			}
			seen[id] = RoleXGauge
		}
		for _, id := range l.ZGauge {
			if _, dup := seen[id]; dup {
				t.Errorf("d=%d: qubit %d classified twice", d, id)
			}
			seen[id] = RoleZGauge
		}

		flagSet := make(map[int]bool, len(l.Flag))
		for _, id := range l.Flag {
			flagSet[id] = true
			if !l.IsFlag(id) {
				t.Errorf("d=%d: qubit %d in Flag list but IsFlag() false", d, id)
			}
		}
		for _, id := range l.ZGauge {
			if flagSet[id] {
				continue
			}
			if l.IsFlag(id) {
				t.Errorf("d=%d: qubit %d not in Flag list but IsFlag() true", d, id)
			}
		}
	}
}

// TestCoordsRoundTrip checks Coords against the classified Row/Col.
func TestCoordsRoundTrip(t *testing.T) {
	l, err := New(5)
	if err != nil {
		t.Fatalf("New(5) failed: %v", err)
	}

	for _, id := range append(append(append([]int{}, l.Data...), l.XGauge...), l.ZGauge...) {
		q, ok := l.Lookup(id)
		if !ok {
			t.Fatalf("qubit %d not found", id)
		}
		row, col := l.Coords(id)
		if row != q.Row || col != q.Col {
			t.Errorf("qubit %d: Coords()=(%d,%d) but classified (%d,%d)", id, row, col, q.Row, q.Col)
		}
	}
}

// TestFirstQubitIsOrigin checks the S1/S2 scenario precondition: qubit 0
// is a data qubit at (0, 0).
func TestFirstQubitIsOrigin(t *testing.T) {
	l, err := New(3)
	if err != nil {
		t.Fatalf("New(3) failed: %v", err)
	}
	if !l.IsData(0) {
		t.Fatalf("expected qubit 0 to be a data qubit")
	}
	row, col := l.Coords(0)
	if row != 0 || col != 0 {
		t.Errorf("expected qubit 0 at (0,0), got (%d,%d)", row, col)
	}
}
