package g29

const ffbOffAllOpcode = 0xF3

// ForceOff encodes the off command for one of the four force-feedback
// effect slots; slot 0 addresses every slot at once.
func ForceOff(slot int) Frame {
	slot = clampInt(slot, 0, 4)
	if slot == 0 {
		return frame(ffbOffAllOpcode)
	}
	return frame(byte(slot << 4))
}
