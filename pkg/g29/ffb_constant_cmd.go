package g29

import "math"

const ffbConstantOpcode = 0x11 // effect slot 1, constant force

// ForceConstant encodes a constant turning force. The level runs from
// 0 (full left) through 0.5 (no force) to 1 (full right); the neutral
// level is literally the slot-1 off command.
func ForceConstant(level float64) Frame {
	level = clamp01(level)
	if level == 0.5 {
		return ForceOff(1)
	}
	magnitude := byte(math.Round(math.Abs(level-1) * 255))
	return frame(ffbConstantOpcode, 0x00, magnitude)
}
