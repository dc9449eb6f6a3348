// Package g29 drives the Logitech G29 Driving Force racing wheel over
// USB HID: it decodes the wheel's 12-byte input reports into a
// change-tracked rig state and encodes force-feedback, LED, autocenter
// and rotation-range commands into the 7-byte frames the wheel expects.
package g29

import (
	"log/slog"
	"time"
)

const (
	// LogitechVID and G29PID identify the wheel on the bus.
	LogitechVID uint16 = 0x046D
	G29PID      uint16 = 0xC24F

	// ProductString matches wheels that report the right name under a
	// different product ID (the PS3/PS4 mode switch changes the PID).
	ProductString = "G29 Driving Force Racing Wheel"

	// ReportLength is the size of one high-resolution input report.
	ReportLength = 12

	// CommandLength is the size of one outbound command frame before
	// any platform report-ID prefix.
	CommandLength = 7
)

// DefaultSettleDelay is how long the wheel is given to recalibrate after
// the mode-switch command sequence before reports are accepted.
const DefaultSettleDelay = 8 * time.Second

// DeviceInfo is the subset of transport metadata the match predicate
// needs. It mirrors internal/hid.Info without importing it, so custom
// transports can reuse Match.
type DeviceInfo struct {
	VendorID  uint16
	ProductID uint16
	Product   string
	UsagePage uint16
	Interface int
}

// Match reports whether a HID device is the G29. The interface/usage
// test skips the extra interfaces some hosts expose for the same
// physical device.
func Match(info DeviceInfo) bool {
	if info.VendorID != LogitechVID {
		return false
	}
	if info.ProductID != G29PID && info.Product != ProductString {
		return false
	}
	return info.Interface == 0 || info.UsagePage == 1
}

// Options configure a Wheel.
type Options struct {
	// Autocenter enables the centering spring after calibration.
	Autocenter bool

	// Range is the wheel rotation range in degrees, clamped to 40-900.
	// Zero means 900.
	Range int

	// SettleDelay overrides DefaultSettleDelay. Zero keeps the default.
	SettleDelay time.Duration

	// Logger receives pipeline diagnostics. Nil discards them.
	Logger *slog.Logger
}

func (o Options) settleDelay() time.Duration {
	if o.SettleDelay > 0 {
		return o.SettleDelay
	}
	return DefaultSettleDelay
}

func (o Options) rotationRange() int {
	if o.Range == 0 {
		return RangeMax
	}
	return o.Range
}
