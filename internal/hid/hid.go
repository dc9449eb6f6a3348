package hid

// Device represents an opened HID device capable of report I/O.
type Device interface {
	Write([]byte) (int, error) // send output report
	Read([]byte) (int, error)  // read input report, blocking
	Close() error
}

// Info represents a HID device descriptor. UsagePage and Interface are
// left zero by backends that cannot report them.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
	UsagePage    uint16
	Interface    int
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List() ([]Info, error)
	Open(info Info) (Device, error)
	OpenMatch(match func(Info) bool) (Device, error)
}

// NewManager returns the backend selected at build time.
func NewManager() (Manager, error) {
	return newManager()
}
