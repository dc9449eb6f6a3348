package g29

// Field identifies one semantic field of the rig state. The set is
// closed: subscriptions take a Field constant, so a misspelled channel
// is a compile error instead of a silently dead subscription.
type Field int

const (
	FieldWheelDpad Field = iota
	FieldWheelButtonX
	FieldWheelButtonSquare
	FieldWheelButtonCircle
	FieldWheelButtonTriangle
	FieldWheelShiftRight
	FieldWheelShiftLeft
	FieldWheelButtonR2
	FieldWheelButtonL2
	FieldWheelButtonShare
	FieldWheelButtonOption
	FieldWheelButtonR3
	FieldWheelButtonL3
	FieldWheelButtonPlus
	FieldWheelButtonMinus
	FieldWheelSpinner
	FieldWheelButtonSpinner
	FieldWheelButtonPlaystation
	FieldWheelTurn
	FieldShifterGear
	FieldPedalsGas
	FieldPedalsBrake
	FieldPedalsClutch

	numFields
)

var fieldNames = [numFields]string{
	FieldWheelDpad:              "wheel-dpad",
	FieldWheelButtonX:           "wheel-button_x",
	FieldWheelButtonSquare:      "wheel-button_square",
	FieldWheelButtonCircle:      "wheel-button_circle",
	FieldWheelButtonTriangle:    "wheel-button_triangle",
	FieldWheelShiftRight:        "wheel-shift_right",
	FieldWheelShiftLeft:         "wheel-shift_left",
	FieldWheelButtonR2:          "wheel-button_r2",
	FieldWheelButtonL2:          "wheel-button_l2",
	FieldWheelButtonShare:       "wheel-button_share",
	FieldWheelButtonOption:      "wheel-button_option",
	FieldWheelButtonR3:          "wheel-button_r3",
	FieldWheelButtonL3:          "wheel-button_l3",
	FieldWheelButtonPlus:        "wheel-button_plus",
	FieldWheelButtonMinus:       "wheel-button_minus",
	FieldWheelSpinner:           "wheel-spinner",
	FieldWheelButtonSpinner:     "wheel-button_spinner",
	FieldWheelButtonPlaystation: "wheel-button_playstation",
	FieldWheelTurn:              "wheel-turn",
	FieldShifterGear:            "shifter-gear",
	FieldPedalsGas:              "pedals-gas",
	FieldPedalsBrake:            "pedals-brake",
	FieldPedalsClutch:           "pedals-clutch",
}

// String returns the "<group>-<field>" channel name.
func (f Field) String() string {
	if f < 0 || f >= numFields {
		return "unknown"
	}
	return fieldNames[f]
}

// WheelState holds the wheel rim controls. Button and shifter-paddle
// flags are 0 or 1; Spinner is -1, 0 or 1 for a left tick, rest, or
// right tick; Turn is 0.00 (full left) to 100.00 (full right) at 0.01
// resolution.
type WheelState struct {
	Dpad              int
	ButtonX           int
	ButtonSquare      int
	ButtonCircle      int
	ButtonTriangle    int
	ShiftRight        int
	ShiftLeft         int
	ButtonR2          int
	ButtonL2          int
	ButtonShare       int
	ButtonOption      int
	ButtonR3          int
	ButtonL3          int
	ButtonPlus        int
	ButtonMinus       int
	Spinner           int
	ButtonSpinner     int
	ButtonPlaystation int
	Turn              float64
}

// ShifterState holds the H-pattern shifter: 0 neutral, 1-6 forward,
// -1 reverse.
type ShifterState struct {
	Gear int
}

// PedalsState holds the pedal set as pressed fractions, 0.00 released
// to 1.00 fully pressed, at 0.01 resolution.
type PedalsState struct {
	Gas    float64
	Brake  float64
	Clutch float64
}

// RigState is the full last-known snapshot. It is owned by the pipeline
// and mutated only by its change detector; subscribers receive copies.
type RigState struct {
	Wheel   WheelState
	Shifter ShifterState
	Pedals  PedalsState
}

// Change is one (field, new value) pair produced by the change
// detector. Value is int for everything except Turn and the pedals,
// which are float64.
type Change struct {
	Field Field
	Value any
}
