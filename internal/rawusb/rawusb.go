// Package rawusb lists devices through the raw USB stack. It exists for
// diagnostics: when HID discovery comes up empty, comparing against what
// the OS-level bus actually reports usually points at a driver problem.
package rawusb

import (
	"fmt"

	"github.com/karalabe/usb"
)

// Info describes one raw USB device.
type Info struct {
	Path      string
	VendorID  uint16
	ProductID uint16
	Product   string
	Interface int
}

// List enumerates every raw USB device visible to the host.
func List() ([]Info, error) {
	devs, err := usb.EnumerateRaw(0, 0)
	if err != nil {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:      d.Path,
			VendorID:  d.VendorID,
			ProductID: d.ProductID,
			Product:   d.Product,
			Interface: d.Interface,
		})
	}
	return out, nil
}

// Present reports whether a device with the given vendor/product pair is
// on the bus at all, regardless of whether HID can open it.
func Present(vendorID, productID uint16) (bool, error) {
	devs, err := usb.EnumerateRaw(vendorID, productID)
	if err != nil {
		return false, fmt.Errorf("usb enumerate: %w", err)
	}
	return len(devs) > 0, nil
}
