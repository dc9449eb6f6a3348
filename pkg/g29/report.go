package g29

import "math"

// Input report layout. Each byte index carries a fixed set of fields;
// decoding is per index, so only the bytes that changed need another
// look. Two couplings break that independence: bytes 4 and 5 together
// form the wheel angle, and byte 11 (the reverse detent) forces gear to
// be re-derived from byte 2.
const (
	idxDpadFace    = 0
	idxRim         = 1
	idxGear        = 2
	idxCenter      = 3
	idxTurnFine    = 4
	idxTurnCoarse  = 5
	idxGas         = 6
	idxBrake       = 7
	idxClutch      = 8
	idxGearVernier = 11
)

// recoverCode extracts a small integer code from a byte that may have
// unrelated flag bits OR'd in above the code's range. Largest powers of
// two are peeled off until the residue fits under twice the threshold;
// the code is not at a fixed bit position, so a plain mask won't do.
func recoverCode(raw byte, threshold int) int {
	n := int(raw)
	for p := 128; p > 1; p /= 2 {
		if n < 2*threshold {
			break
		}
		if n-p >= 0 {
			n -= p
		}
	}
	return n
}

var dpadByCode = map[int]int{
	8: 0, // neutral
	0: 1, // up
	1: 2,
	2: 3,
	3: 4,
	4: 5, // down
	5: 6,
	6: 7,
	7: 8,
}

// decodeDpad recovers the 9-position hat value from byte 0.
func decodeDpad(b byte) int {
	return dpadByCode[recoverCode(b, 8)] // unknown codes map to 0
}

var gearByCode = map[int]int{
	0:  0, // neutral
	1:  1,
	2:  2,
	4:  3,
	8:  4,
	16: 5,
	32: 6,
	64: -1, // reverse
}

// decodeGear recovers the shifter position from byte 2.
func decodeGear(b byte) int {
	return gearByCode[recoverCode(b, 64)]
}

func bit(b, mask byte) int {
	if b&mask != 0 {
		return 1
	}
	return 0
}

// decodeSpinner reads the rotary encoder tick from byte 3: right before
// left, neither means at rest.
func decodeSpinner(b byte) int {
	switch {
	case b&0x02 != 0:
		return 1
	case b&0x04 != 0:
		return -1
	default:
		return 0
	}
}

// decodeTurn combines the fine (byte 4) and coarse (byte 5) wheel-angle
// bytes into a 0.00-100.00 position. The coarse byte spans the full
// range and the fine byte adds sub-steps of one coarse increment, so
// the sum can poke just past 100 and is clamped.
func decodeTurn(fine, coarse byte) float64 {
	f := float64(fine) / 255 * (100.0 / 256.0)
	c := float64(coarse) / 255 * 100
	t := round2(c + f)
	if t < 0 {
		return 0
	}
	if t > 100 {
		return 100
	}
	return t
}

// decodePedal converts a raw pedal byte to a pressed fraction. The
// wheel reports pedals inverted: raw 255 is released, raw 0 is floored.
func decodePedal(b byte) float64 {
	return round2(math.Abs(float64(b)-255) / 255)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
