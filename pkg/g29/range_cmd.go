package g29

const (
	rangeOpcode    = 0xF8
	rangeSubOpcode = 0x81

	// RangeMin and RangeMax bound the wheel's rotation range in
	// degrees lock to lock.
	RangeMin = 40
	RangeMax = 900
)

// SetRange encodes the rotation range, clamped to 40-900 degrees, as a
// little-endian 16-bit field.
func SetRange(degrees int) Frame {
	degrees = clampInt(degrees, RangeMin, RangeMax)
	return frame(rangeOpcode, rangeSubOpcode, byte(degrees&0xFF), byte(degrees>>8))
}
