package g29

import "math"

const (
	autocenterOnOpcode     = 0xF4
	autocenterOffOpcode    = 0xF5
	autocenterCustomOpcode = 0xFE
	autocenterCustomSub    = 0x0D
)

// AutocenterOn encodes the default-strength centering spring.
func AutocenterOn() Frame {
	return frame(autocenterOnOpcode)
}

// AutocenterOff disables the centering spring.
func AutocenterOff() Frame {
	return frame(autocenterOffOpcode)
}

// AutocenterCustom encodes a centering spring with explicit strength
// and rise rate, both 0-1. Strength scales to the wheel's sixteen
// steps and applies to both rotation directions; rise rate is how fast
// the force ramps as the wheel leaves center.
func AutocenterCustom(strength, rise float64) Frame {
	s := byte(math.Round(clamp01(strength) * 15))
	r := byte(math.Round(clamp01(rise) * 255))
	return frame(autocenterCustomOpcode, autocenterCustomSub, s, s, r)
}
