package g29

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForceConstant(t *testing.T) {
	// neutral level is the slot-1 off command
	assert.Equal(t, ForceOff(1), ForceConstant(0.5))

	assert.Equal(t, Frame{0x11, 0x00, 0xFF}, ForceConstant(0))
	assert.Equal(t, Frame{0x11, 0x00, 0x00}, ForceConstant(1))
	assert.Equal(t, Frame{0x11, 0x00, 64}, ForceConstant(0.75))

	// out-of-range levels clamp
	assert.Equal(t, ForceConstant(1), ForceConstant(3))
	assert.Equal(t, ForceConstant(0), ForceConstant(-1))
}

func TestForceFriction(t *testing.T) {
	assert.Equal(t, ForceOff(2), ForceFriction(0))
	assert.Equal(t, Frame{0x21, 0x02, 7, 0x00, 7}, ForceFriction(1))
	assert.Equal(t, Frame{0x21, 0x02, 4, 0x00, 4}, ForceFriction(0.5))
}

func TestForceOff(t *testing.T) {
	assert.Equal(t, Frame{0xF3}, ForceOff(0))
	assert.Equal(t, Frame{0x10}, ForceOff(1))
	assert.Equal(t, Frame{0x20}, ForceOff(2))
	assert.Equal(t, Frame{0x30}, ForceOff(3))
	assert.Equal(t, Frame{0x40}, ForceOff(4))
	// out-of-range slots clamp
	assert.Equal(t, ForceOff(4), ForceOff(9))
}

func TestLEDs(t *testing.T) {
	assert.Equal(t, Frame{0xF8, 0x12, 7, 0x00, 0x00, 0x00, 0x01}, LEDs(7))
	assert.Equal(t, LEDs(31), LEDs(50))
	assert.Equal(t, LEDs(0), LEDs(-3))
}

func TestLEDLevelMask(t *testing.T) {
	want := []int{0, 1, 3, 7, 15, 31}
	for level, mask := range want {
		assert.Equal(t, mask, LEDLevelMask(level), "level %d", level)
	}
	assert.Equal(t, 31, LEDLevelMask(12))
}

func TestAutocenter(t *testing.T) {
	assert.Equal(t, Frame{0xF4}, AutocenterOn())
	assert.Equal(t, Frame{0xF5}, AutocenterOff())
	assert.Equal(t, Frame{0xFE, 0x0D, 15, 15, 255}, AutocenterCustom(1, 1))
	assert.Equal(t, Frame{0xFE, 0x0D, 8, 8, 128}, AutocenterCustom(0.5, 0.5))
}

func TestSetRange(t *testing.T) {
	assert.Equal(t, Frame{0xF8, 0x81, 0x84, 0x03}, SetRange(900))
	assert.Equal(t, Frame{0xF8, 0x81, 40, 0x00}, SetRange(40))
	assert.Equal(t, Frame{0xF8, 0x81, 0x0E, 0x02}, SetRange(526))

	// out-of-range requests clamp to the hardware limits
	assert.Equal(t, SetRange(900), SetRange(2000))
	assert.Equal(t, SetRange(40), SetRange(5))
}
