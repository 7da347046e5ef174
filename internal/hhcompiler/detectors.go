package hhcompiler

// roundNum is the value every in-round detector declares as its third
// coordinate. The reference construction never advances this past 0;
// only the terminal data-measurement detectors use the true round
// count (see DESIGN.md). Detector coordinates are informational only,
// used by decoders for visualisation, not for parity computation, so
// this wrinkle is preserved rather than "fixed".
const roundNum = 0

// flagDetectors declares one weight-1 detector per flag qubit: flag
// qubits measure deterministically in the reference state, so a single
// recent measurement is enough to catch a hook error.
func (b *build) flagDetectors() error {
	if err := parity1.validate(); err != nil {
		return err
	}
	for _, el := range b.lat.Flag {
		row, col := b.lat.Coords(el)
		b.ir.Detector(row, col, roundNum, []int{b.ir.HistoryBack(el, 1)})
		b.numDet++
	}
	return nil
}

// zGaugeDetectors declares the Z-gauge detectors: the boundary ones are
// weight 1 (or weight 2 under parity2, XORing against a round back),
// the bulk ones XOR a pair of adjacent Z-gauge ancillas into a single
// weight-2 (or weight-4) check. Dispatch follows the explicit Role/IsFlag
// predicates rather than the list-identity comparison of the reference
// implementation.
func (b *build) zGaugeDetectors(pf parityFactor) error {
	if err := pf.validate(); err != nil {
		return err
	}
	n := b.lat.Side

	for _, el := range b.lat.ZGauge {
		row, col := b.lat.Coords(el)
		i, j := row, col

		switch {
		case (j == 0 && i%4 == 3) || (j == n-1 && i%4 == 1):
			deltas := b.zBoundaryDeltas(el, pf)
			b.ir.Detector(row, col, roundNum, deltas)
			b.numDet++
		case j == 0 && i%4 == 1:
			deltas := b.zLeftBridgeDeltas(el, pf)
			b.ir.Detector(row, col, roundNum, deltas)
			b.numDet++
		case j == n-1 && i%4 == 3:
			// covered by the left-bridge partner above
		case !b.lat.IsXGauge(el + 1):
			deltas := b.zInteriorDeltas(el, pf)
			b.ir.Detector(row, col+1, roundNum, deltas)
			b.numDet++
		}
	}
	return nil
}

func (b *build) zBoundaryDeltas(el int, pf parityFactor) []int {
	if pf == parity1 {
		return []int{b.ir.HistoryBack(el, 1)}
	}
	if b.lat.IsFlag(el) {
		return []int{b.ir.HistoryBack(el, 1), b.ir.HistoryBack(el, 3)}
	}
	return []int{b.ir.HistoryBack(el, 1), b.ir.HistoryBack(el, 2)}
}

// zLeftBridgeDeltas handles the (j==0, i%4==1) boundary XOR. The second
// operand's flag-ness shifts its second measurement back one extra
// slot, exactly as zInteriorDeltas does, but the first operand (el)
// never does: el at this position is never a flag qubit.
func (b *build) zLeftBridgeDeltas(el int, pf parityFactor) []int {
	if pf == parity1 {
		return []int{b.ir.HistoryBack(el, 1), b.ir.HistoryBack(el+2, 1)}
	}
	second := 2
	if b.lat.IsFlag(el + 2) {
		second = 3
	}
	return []int{
		b.ir.HistoryBack(el, 1),
		b.ir.HistoryBack(el, 2),
		b.ir.HistoryBack(el+2, 1),
		b.ir.HistoryBack(el+2, second),
	}
}

func (b *build) zInteriorDeltas(el int, pf parityFactor) []int {
	if pf == parity1 {
		return []int{b.ir.HistoryBack(el, 1), b.ir.HistoryBack(el+2, 1)}
	}
	firstSecond := 2
	if b.lat.IsFlag(el) {
		firstSecond = 3
	}
	secondSecond := 2
	if b.lat.IsFlag(el + 2) {
		secondSecond = 3
	}
	return []int{
		b.ir.HistoryBack(el, 1),
		b.ir.HistoryBack(el+2, 1),
		b.ir.HistoryBack(el, firstSecond),
		b.ir.HistoryBack(el+2, secondSecond),
	}
}

// xGaugeDetectors declares one detector per X-gauge column: each column
// of the lattice carries several X-gauge ancillas stacked vertically,
// and a single strip check XORs all of them together. Only the
// topmost ancilla in each column (row 0 or row 1, depending on which of
// the two column parities it belongs to) triggers the walk, so each
// column contributes exactly one DETECTOR line.
func (b *build) xGaugeDetectors(pf parityFactor) error {
	if err := pf.validate(); err != nil {
		return err
	}
	n := b.lat.Side

	for _, el := range b.lat.XGauge {
		row, col := b.lat.Coords(el)
		if row != 0 && row != 1 {
			continue
		}

		var deltas []int
		for q := el; q < n*n; q += n {
			if !b.lat.IsXGauge(q) {
				continue
			}
			deltas = append(deltas, b.ir.HistoryBack(q, 1))
			if pf == parity2 {
				deltas = append(deltas, b.ir.HistoryBack(q, 2))
			}
		}
		b.ir.Detector(row, col, roundNum, deltas)
		b.numDet++
	}
	return nil
}

// dataMeasurementDetectors closes out every stabilizer against the
// final data qubit measurement, once the data qubits have been
// destructively measured in the memory basis.
func (b *build) dataMeasurementDetectors() error {
	switch b.req.Basis {
	case BasisZ:
		b.dataDetectorsZ()
	case BasisX:
		b.dataDetectorsX()
	default:
		return &CompileError{Op: "basis", Err: ErrInvalidBasis}
	}
	return nil
}

func (b *build) dataDetectorsZ() {
	n := b.lat.Side
	round := b.req.Rounds

	for _, el := range b.lat.ZGauge {
		row, col := b.lat.Coords(el)
		i, j := row, col

		switch {
		case (j == 0 && i%4 == 3) || (j == n-1 && i%4 == 1):
			gaugeRec := b.ir.HistoryBack(el, 1)
			if b.lat.IsFlag(el) {
				gaugeRec = b.ir.HistoryBack(el, 2)
			}
			deltas := []int{gaugeRec}
			for _, dq := range []int{el - n, el, el + n} {
				deltas = append(deltas, b.ir.HistoryBack(dq, 1))
			}
			b.ir.Detector(row, col, round, deltas)
			b.numDet++
		case j == n-1 && i%4 == 3:
			// boundary condition, covered by its partner
		case !b.lat.IsXGauge(el + 1):
			firstRec := b.ir.HistoryBack(el, 1)
			if b.lat.IsFlag(el) {
				firstRec = b.ir.HistoryBack(el, 2)
			}
			secondRec := b.ir.HistoryBack(el+2, 1)
			if b.lat.IsFlag(el + 2) {
				secondRec = b.ir.HistoryBack(el+2, 2)
			}
			deltas := []int{firstRec, secondRec}
			for _, dq := range []int{el - n, el + n, el - n + 2, el + n + 2} {
				deltas = append(deltas, b.ir.HistoryBack(dq, 1))
			}
			b.ir.Detector(row, col, round, deltas)
			b.numDet++
		}
	}
}

func (b *build) dataDetectorsX() {
	n := b.lat.Side
	round := b.req.Rounds

	for _, el := range b.lat.XGauge {
		row, col := b.lat.Coords(el)
		if row != 0 && row != 1 {
			continue
		}

		var deltas []int
		for q := el; q < n*n; q += n {
			if !b.lat.IsXGauge(q) {
				continue
			}
			deltas = append(deltas, b.ir.HistoryBack(q, 1))

			qRow, _ := b.lat.Coords(q)
			var neighbors []int
			if qRow == 0 || qRow == n-1 {
				neighbors = []int{q - 1, q + 1}
			} else {
				neighbors = []int{q - n - 1, q - n + 1, q + n - 1, q + n + 1}
			}
			for _, dq := range neighbors {
				deltas = append(deltas, b.ir.HistoryBack(dq, 1))
			}
		}
		b.ir.Detector(row, col, round, deltas)
		b.numDet++
	}
}

// observableInclude declares the single logical observable: the X
// observable is the vertical operator threading the first column of
// data qubits, the Z observable the horizontal operator threading the
// first row, per Fig. 2 of Chamberland et al.
func (b *build) observableInclude() {
	n := b.lat.Side
	var deltas []int

	switch b.req.Basis {
	case BasisX:
		for _, el := range b.lat.Data {
			if el%n == 0 {
				deltas = append(deltas, b.ir.HistoryBack(el, 1))
			}
		}
	case BasisZ:
		for _, el := range b.lat.Data {
			if el/n == 0 {
				deltas = append(deltas, b.ir.HistoryBack(el, 1))
			}
		}
	}
	b.ir.ObservableInclude(0, deltas)
}
