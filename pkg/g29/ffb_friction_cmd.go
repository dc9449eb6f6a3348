package g29

import "math"

const ffbFrictionOpcode = 0x21 // effect slot 2, friction

// ForceFriction encodes rotation resistance, 0 (none) to 1 (maximum).
// Zero is the slot-2 off command; anything else scales to the wheel's
// eight friction steps, applied to both rotation directions.
func ForceFriction(level float64) Frame {
	level = clamp01(level)
	if level == 0 {
		return ForceOff(2)
	}
	step := byte(math.Round(level * 7))
	return frame(ffbFrictionOpcode, 0x02, step, 0x00, step)
}
