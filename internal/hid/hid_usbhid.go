//go:build purego

package hid

import (
	usbhid "rafaelmartins.com/p/usbhid"
)

// Pure-Go backend. usbhid does not expose the usage page or interface
// number, so Info carries zeroes for both; the G29 match predicate
// accepts interface 0, which is what this backend opens.

type usbManager struct{}

func newManager() (Manager, error) { return &usbManager{}, nil }

func (m *usbManager) List() ([]Info, error) {
	devs, err := usbhid.Enumerate(nil)
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}
	return out, nil
}

type usbDevice struct{ d *usbhid.Device }

func (m *usbManager) Open(info Info) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.Path() == info.Path
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbDevice{d}, nil
}

func (m *usbManager) OpenMatch(match func(Info) bool) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return match(Info{
			Path:         dev.Path(),
			VendorID:     dev.VendorId(),
			ProductID:    dev.ProductId(),
			Product:      dev.Product(),
			Manufacturer: dev.Manufacturer(),
		})
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbDevice{d}, nil
}

func (d *usbDevice) Write(p []byte) (int, error) {
	// The wheel uses unnumbered reports; usbhid wants an explicit ID.
	if len(p) == 0 {
		return 0, nil
	}
	if err := d.d.SetOutputReport(0, p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (d *usbDevice) Read(p []byte) (int, error) {
	_, buf, err := d.d.GetInputReport()
	if err != nil {
		return 0, err
	}
	return copy(p, buf), nil
}

func (d *usbDevice) Close() error { return d.d.Close() }
