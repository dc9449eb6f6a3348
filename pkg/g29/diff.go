package g29

// stateStore owns the last-known rig snapshot plus the raw bytes of the
// previous report, so the detector can skip byte indices that did not
// move at all.
type stateStore struct {
	state  RigState
	prev   [ReportLength]byte
	primed bool
}

// apply diffs a report against the stored snapshot, mutates the
// snapshot for every field that moved, and returns the minimal changed
// set. A report byte-for-byte equal to the previous one yields nil and
// touches nothing.
func (s *stateStore) apply(raw []byte) []Change {
	var touched [ReportLength]bool
	for i := 0; i < ReportLength && i < len(raw); i++ {
		touched[i] = !s.primed || raw[i] != s.prev[i]
	}

	var changes []Change
	record := func(f Field, v any) {
		changes = append(changes, Change{Field: f, Value: v})
	}
	setInt := func(f Field, dst *int, v int) {
		if *dst != v {
			*dst = v
			record(f, v)
		}
	}
	setFloat := func(f Field, dst *float64, v float64) {
		if *dst != v {
			*dst = v
			record(f, v)
		}
	}

	w := &s.state.Wheel
	if touched[idxDpadFace] {
		b := raw[idxDpadFace]
		setInt(FieldWheelDpad, &w.Dpad, decodeDpad(b))
		setInt(FieldWheelButtonX, &w.ButtonX, bit(b, 16))
		setInt(FieldWheelButtonSquare, &w.ButtonSquare, bit(b, 32))
		setInt(FieldWheelButtonCircle, &w.ButtonCircle, bit(b, 64))
		setInt(FieldWheelButtonTriangle, &w.ButtonTriangle, bit(b, 128))
	}
	if touched[idxRim] {
		b := raw[idxRim]
		setInt(FieldWheelShiftRight, &w.ShiftRight, bit(b, 1))
		setInt(FieldWheelShiftLeft, &w.ShiftLeft, bit(b, 2))
		setInt(FieldWheelButtonR2, &w.ButtonR2, bit(b, 4))
		setInt(FieldWheelButtonL2, &w.ButtonL2, bit(b, 8))
		setInt(FieldWheelButtonShare, &w.ButtonShare, bit(b, 16))
		setInt(FieldWheelButtonOption, &w.ButtonOption, bit(b, 32))
		setInt(FieldWheelButtonR3, &w.ButtonR3, bit(b, 64))
		setInt(FieldWheelButtonL3, &w.ButtonL3, bit(b, 128))
	}
	if touched[idxGear] || touched[idxGearVernier] {
		// the detent byte only forces a re-derive; gear always comes
		// from byte 2
		setInt(FieldShifterGear, &s.state.Shifter.Gear, decodeGear(raw[idxGear]))
	}
	if touched[idxGear] {
		setInt(FieldWheelButtonPlus, &w.ButtonPlus, bit(raw[idxGear], 128))
	}
	if touched[idxCenter] {
		b := raw[idxCenter]
		setInt(FieldWheelButtonMinus, &w.ButtonMinus, bit(b, 1))
		setInt(FieldWheelSpinner, &w.Spinner, decodeSpinner(b))
		setInt(FieldWheelButtonSpinner, &w.ButtonSpinner, bit(b, 8))
		setInt(FieldWheelButtonPlaystation, &w.ButtonPlaystation, bit(b, 16))
	}
	if touched[idxTurnFine] || touched[idxTurnCoarse] {
		// the two angle bytes are only meaningful together
		setFloat(FieldWheelTurn, &w.Turn, decodeTurn(raw[idxTurnFine], raw[idxTurnCoarse]))
	}
	if touched[idxGas] {
		setFloat(FieldPedalsGas, &s.state.Pedals.Gas, decodePedal(raw[idxGas]))
	}
	if touched[idxBrake] {
		setFloat(FieldPedalsBrake, &s.state.Pedals.Brake, decodePedal(raw[idxBrake]))
	}
	if touched[idxClutch] {
		setFloat(FieldPedalsClutch, &s.state.Pedals.Clutch, decodePedal(raw[idxClutch]))
	}

	copy(s.prev[:], raw)
	s.primed = true
	return changes
}

// snapshot returns an independent copy of the current state.
func (s *stateStore) snapshot() RigState {
	return s.state
}
