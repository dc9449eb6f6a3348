package g29

// Frame is one outbound command: an opcode byte followed by six
// parameter bytes, zero-padded. A platform that requires a report-ID
// prefix gets it at write time, not here.
type Frame [CommandLength]byte

func frame(b ...byte) Frame {
	var f Frame
	copy(f[:], b)
	return f
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
