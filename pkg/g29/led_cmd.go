package g29

const (
	ledOpcode    = 0xF8
	ledSubOpcode = 0x12

	// LEDMaskMax covers all five rev lights.
	LEDMaskMax = 31
)

// Rev-light bits, innermost pair outward.
const (
	LEDGreen1 = 1 << iota
	LEDGreen2
	LEDOrange1
	LEDOrange2
	LEDRed
)

// LEDs encodes a raw 5-bit rev-light mask, clamped to 0-31.
func LEDs(mask int) Frame {
	return frame(ledOpcode, ledSubOpcode, byte(clampInt(mask, 0, LEDMaskMax)), 0x00, 0x00, 0x00, 0x01)
}

var ledLevelMasks = [6]int{0, 1, 3, 7, 15, 31}

// LEDLevelMask maps an ordinal severity 0-5 onto the cumulative mask
// that lights that many lamps from the inside out.
func LEDLevelMask(level int) int {
	return ledLevelMasks[clampInt(level, 0, 5)]
}
