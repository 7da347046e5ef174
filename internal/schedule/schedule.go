// Package schedule builds the CNOT tick-schedule for heavy-hex gauge
// extraction: the eight ordered pair lists (cycles 2-6 for the X-gauge
// extraction, cycles 8-10 for the Z-gauge extraction) described in
// Fig. 2 of Chamberland et al., arXiv:1907.09528.
package schedule

import "github.com/chamberlandlab/heavyhex/internal/lattice"

// Pair is one CNOT application; Control and Target encode which qubit
// drives the gate, matching the direction conventions of spec section 3
// (H-conjugated X-stabilizer extraction vs. direct Z-stabilizer
// extraction).
type Pair struct {
	Control int
	Target  int
}

// Schedule holds the eight tick-indexed CNOT pair lists. Within any one
// list no qubit appears twice: each list is one parallel layer of gates.
type Schedule struct {
	Cycle2 []Pair
	Cycle3 []Pair
	Cycle4 []Pair
	Cycle5 []Pair
	Cycle6 []Pair

	Cycle8  []Pair
	Cycle9  []Pair
	Cycle10 []Pair
}

// Build derives the eight cycle lists from the lattice's X-gauge and
// data qubit classification, following the bulk Z-gauge bridging rule
// and the bacon-strip edge rule of spec section 4.B.
func Build(l *lattice.Lattice) *Schedule {
	n := l.Side
	s := &Schedule{}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			q := n*i + j

			switch {
			case j%2 == 0 && i%2 == 1:
				buildZGaugeBridge(s, l, q, i, j, n)
			case i == 0 && j%4 == 2:
				if l.IsXGauge(q - 1) {
					s.Cycle4 = append(s.Cycle4, Pair{q - 1, q})
				}
			case i == 0 && j%4 == 0:
				if l.IsXGauge(q + 1) {
					s.Cycle5 = append(s.Cycle5, Pair{q + 1, q})
				}
			case i == n-1 && j%4 == 2:
				if l.IsXGauge(q + 1) {
					s.Cycle6 = append(s.Cycle6, Pair{q + 1, q})
				}
			case i == n-1 && j%4 == 0:
				if l.IsXGauge(q - 1) {
					s.Cycle5 = append(s.Cycle5, Pair{q - 1, q})
				}
			}
		}
	}

	return s
}

// buildZGaugeBridge handles one Z-gauge-position cell (j even, i odd):
// the ancilla at q bridges to whichever horizontal neighbour is an
// X-gauge qubit, or to both vertical data neighbours directly at the
// lattice boundary if neither horizontal neighbour is an X-gauge.
func buildZGaugeBridge(s *Schedule, l *lattice.Lattice, q, i, j, n int) {
	left := l.IsXGauge(q - 1)
	right := l.IsXGauge(q + 1)

	if left {
		s.Cycle2 = append(s.Cycle2, Pair{q - 1, q})
		s.Cycle5 = append(s.Cycle5, Pair{q - 1, q})
		if l.IsData(q - n) {
			s.Cycle3 = append(s.Cycle3, Pair{q, q - n})
			s.Cycle8 = append(s.Cycle8, Pair{q - n, q})
		}
		if l.IsData(q + n) {
			s.Cycle4 = append(s.Cycle4, Pair{q, q + n})
			s.Cycle9 = append(s.Cycle9, Pair{q + n, q})
		}
	}
	if right {
		s.Cycle3 = append(s.Cycle3, Pair{q + 1, q})
		s.Cycle6 = append(s.Cycle6, Pair{q + 1, q})
		if l.IsData(q + n) {
			s.Cycle4 = append(s.Cycle4, Pair{q, q + n})
			s.Cycle9 = append(s.Cycle9, Pair{q + n, q})
		}
		if l.IsData(q - n) {
			s.Cycle5 = append(s.Cycle5, Pair{q, q - n})
			s.Cycle10 = append(s.Cycle10, Pair{q - n, q})
		}
	}

	if !left && !right {
		switch {
		case j == 0:
			if l.IsData(q - n) {
				s.Cycle8 = append(s.Cycle8, Pair{q - n, q})
			}
			if l.IsData(q + n) {
				s.Cycle9 = append(s.Cycle9, Pair{q + n, q})
			}
		case j == n-1:
			if l.IsData(q - n) {
				s.Cycle10 = append(s.Cycle10, Pair{q - n, q})
			}
			if l.IsData(q + n) {
				s.Cycle9 = append(s.Cycle9, Pair{q + n, q})
			}
		}
	}
}
