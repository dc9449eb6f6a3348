//go:build !purego

package hid

import (
	"errors"

	gohid "github.com/sstallion/go-hid"
)

type gohidManager struct{}

func newManager() (Manager, error) {
	if err := gohid.Init(); err != nil {
		return nil, err
	}
	return &gohidManager{}, nil
}

func (m *gohidManager) List() ([]Info, error) {
	var out []Info
	err := gohid.Enumerate(gohid.VendorIDAny, gohid.ProductIDAny, func(d *gohid.DeviceInfo) error {
		out = append(out, Info{
			Path:         d.Path,
			VendorID:     d.VendorID,
			ProductID:    d.ProductID,
			Product:      d.ProductStr,
			Manufacturer: d.MfrStr,
			UsagePage:    d.UsagePage,
			Interface:    d.InterfaceNbr,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type gohidDevice struct{ d *gohid.Device }

func (m *gohidManager) Open(info Info) (Device, error) {
	d, err := gohid.OpenPath(info.Path)
	if err != nil {
		return nil, err
	}
	return &gohidDevice{d}, nil
}

func (m *gohidManager) OpenMatch(match func(Info) bool) (Device, error) {
	infos, err := m.List()
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		if match(info) {
			return m.Open(info)
		}
	}
	return nil, errors.New("no matching HID device")
}

func (d *gohidDevice) Write(p []byte) (int, error) { return d.d.Write(p) }
func (d *gohidDevice) Read(p []byte) (int, error)  { return d.d.Read(p) }
func (d *gohidDevice) Close() error                { return d.d.Close() }
