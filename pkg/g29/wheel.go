package g29

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/seagrayinc/g29/internal/hid"
)

// ErrDeviceNotFound means discovery finished without a transport
// matching the G29 predicate. It is fatal: the pipeline never started.
var ErrDeviceNotFound = errors.New("g29: no matching wheel found")

// ErrClosed is returned by operations attempted after Close.
var ErrClosed = errors.New("g29: wheel closed")

// Wheel is one wheel pipeline: it owns the rig state, reads reports
// from its transport on a single goroutine, and processes each one to
// completion (decode, diff, dispatch) before reading the next.
// Subscribe through the embedded Dispatcher before calling Start.
type Wheel struct {
	*Dispatcher

	dev  hid.Device
	log  *slog.Logger
	opts Options

	// report-ID quirk, resolved once at construction
	prependZero bool

	mu    sync.Mutex
	store stateStore

	ledMu   sync.Mutex
	lastLED int

	closed    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Open discovers the wheel over the host HID subsystem, opens it, and
// runs the connection sequence. It returns ErrDeviceNotFound (wrapped)
// when nothing on the bus matches.
func Open(ctx context.Context, opts Options) (*Wheel, error) {
	mgr, err := hid.NewManager()
	if err != nil {
		return nil, fmt.Errorf("hid manager: %w", err)
	}
	dev, err := mgr.OpenMatch(func(info hid.Info) bool {
		return Match(DeviceInfo{
			VendorID:  info.VendorID,
			ProductID: info.ProductID,
			Product:   info.Product,
			UsagePage: info.UsagePage,
			Interface: info.Interface,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceNotFound, err)
	}

	w := NewWheel(dev, opts)
	if err := w.Start(ctx); err != nil {
		_ = dev.Close()
		return nil, err
	}
	return w, nil
}

// NewWheel wraps an already-open transport. The caller keeps ownership
// of discovery; the wheel takes ownership of the device and closes it.
func NewWheel(dev hid.Device, opts Options) *Wheel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Wheel{
		Dispatcher:  newDispatcher(),
		dev:         dev,
		log:         logger,
		opts:        opts,
		prependZero: runtime.GOOS == "windows",
		lastLED:     -1,
		closed:      make(chan struct{}),
	}
}

// Start runs the connection sequence and begins listening. The wheel
// powers up in a low-resolution compatibility mode; a first report of
// the wrong length triggers the calibration command sequence followed
// by a settle wait, during which no reports are processed. Closing the
// wheel (or cancelling ctx) during the wait abandons the deferred
// ready notification.
func (w *Wheel) Start(ctx context.Context) error {
	buf := make([]byte, 64)
	n, err := w.dev.Read(buf)
	if err != nil {
		return fmt.Errorf("first report: %w", err)
	}

	if n != ReportLength {
		w.log.Info("wheel in compatibility mode, calibrating",
			slog.Int("report_len", n),
			slog.Duration("settle", w.opts.settleDelay()))
		w.calibrate()
		select {
		case <-time.After(w.opts.settleDelay()):
		case <-w.closed:
			return ErrClosed
		case <-ctx.Done():
			return ctx.Err()
		}
		n = 0
	}

	w.dispatchReady()
	if n == ReportLength {
		w.process(buf[:n])
	}

	w.wg.Add(1)
	go w.pump()
	return nil
}

// calibrate issues the one-time setup sequence: all effects off, the
// configured rotation range and autocenter profile, rev lights dark.
// Writes are fire-and-forget; failures are logged and skipped.
func (w *Wheel) calibrate() {
	frames := []Frame{
		ForceOff(0),
		SetRange(w.opts.rotationRange()),
		LEDs(0),
	}
	if w.opts.Autocenter {
		frames = append(frames, AutocenterOn())
	} else {
		frames = append(frames, AutocenterOff())
	}
	for _, f := range frames {
		if err := w.relay(f); err != nil {
			w.log.Warn("calibration write failed", slog.Any("error", err))
		}
	}
}

// pump is the single reader goroutine. A read error is forwarded on
// the error channel and reading continues; only Close stops the pump.
func (w *Wheel) pump() {
	defer w.wg.Done()
	buf := make([]byte, 64)
	for {
		n, err := w.dev.Read(buf)
		select {
		case <-w.closed:
			return
		default:
		}
		if err != nil {
			w.log.Warn("transport read failed", slog.Any("error", err))
			w.dispatchError(err)
			continue
		}
		if n != ReportLength {
			w.log.Debug("ignoring report of unexpected length", slog.Int("len", n))
			continue
		}
		w.process(buf[:n])
	}
}

func (w *Wheel) process(raw []byte) {
	w.mu.Lock()
	changes := w.store.apply(raw)
	snapshot := w.store.snapshot()
	w.mu.Unlock()

	w.dispatchReport(changes, snapshot, append([]byte(nil), raw...))
}

// State returns an independent copy of the last-known snapshot.
func (w *Wheel) State() RigState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.snapshot()
}

// relay writes one command frame, applying the report-ID prefix on
// platforms that need it. Fire-and-forget: no acknowledgment, no retry.
func (w *Wheel) relay(f Frame) error {
	select {
	case <-w.closed:
		return ErrClosed
	default:
	}
	buf := f[:]
	if w.prependZero {
		buf = append([]byte{0x00}, f[:]...)
	}
	w.log.Debug("command", slog.String("frame", fmt.Sprintf("% x", buf)))
	if _, err := w.dev.Write(buf); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	return nil
}

// SetForceConstant applies a constant turning force, 0 full left to 1
// full right; 0.5 releases it.
func (w *Wheel) SetForceConstant(level float64) error {
	return w.relay(ForceConstant(level))
}

// SetForceFriction applies rotation resistance, 0 none to 1 maximum.
func (w *Wheel) SetForceFriction(level float64) error {
	return w.relay(ForceFriction(level))
}

// SetForceOff clears one force-feedback effect slot, or all of them
// for slot 0.
func (w *Wheel) SetForceOff(slot int) error {
	return w.relay(ForceOff(slot))
}

// SetLEDs writes a 5-bit rev-light mask. Writing the mask already on
// the wheel is suppressed: no frame goes out.
func (w *Wheel) SetLEDs(mask int) error {
	mask = clampInt(mask, 0, LEDMaskMax)
	w.ledMu.Lock()
	defer w.ledMu.Unlock()
	if mask == w.lastLED {
		return nil
	}
	if err := w.relay(LEDs(mask)); err != nil {
		return err
	}
	w.lastLED = mask
	return nil
}

// SetLEDLevel lights 0-5 rev lamps from the inside out.
func (w *Wheel) SetLEDLevel(level int) error {
	return w.SetLEDs(LEDLevelMask(level))
}

// SetAutocenter switches the default centering spring on or off.
func (w *Wheel) SetAutocenter(on bool) error {
	if on {
		return w.relay(AutocenterOn())
	}
	return w.relay(AutocenterOff())
}

// SetAutocenterProfile enables the centering spring with an explicit
// strength and rise rate, both 0-1.
func (w *Wheel) SetAutocenterProfile(strength, rise float64) error {
	return w.relay(AutocenterCustom(strength, rise))
}

// SetWheelRange sets the rotation range in degrees, clamped to 40-900.
func (w *Wheel) SetWheelRange(degrees int) error {
	return w.relay(SetRange(degrees))
}

// Close stops the pipeline and releases the transport. Reports already
// in flight are dropped, not processed.
func (w *Wheel) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closed)
		err = w.dev.Close()
	})
	return err
}
