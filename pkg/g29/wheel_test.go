package g29_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seagrayinc/g29/internal/hid"
	"github.com/seagrayinc/g29/pkg/g29"
)

func waitFor[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		panic("unreachable")
	}
}

func restReport() []byte {
	// dpad neutral, no buttons, pedals released
	return []byte{8, 0, 0, 0, 0, 0, 255, 255, 255, 0, 0, 0}
}

func TestStartHighResolutionMode(t *testing.T) {
	dev := hid.NewMockDevice()
	w := g29.NewWheel(dev, g29.Options{})

	ready := make(chan struct{}, 1)
	states := make(chan g29.RigState, 4)
	w.OnReady(func() { ready <- struct{}{} })
	w.OnState(func(s g29.RigState) { states <- s })

	dev.Emit(restReport())
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	waitFor(t, ready)

	// the first report is processed, not just swallowed
	snap := waitFor(t, states)
	assert.Equal(t, 0, snap.Wheel.Dpad)
	assert.Equal(t, 0.0, snap.Pedals.Gas)

	report := restReport()
	report[6] = 128 // half throttle
	dev.Emit(report)

	snap = waitFor(t, states)
	assert.Equal(t, 0.5, snap.Pedals.Gas)
}

func TestChangesFireOnlyWhenSomethingMoved(t *testing.T) {
	dev := hid.NewMockDevice()
	w := g29.NewWheel(dev, g29.Options{})

	changes := make(chan []g29.Change, 4)
	raws := make(chan []byte, 4)
	w.OnChanges(func(cs []g29.Change) { changes <- cs })
	w.OnData(func(b []byte) { raws <- b })

	report := restReport()
	report[5] = 128 // wheel off center so priming produces a change
	dev.Emit(report)
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	waitFor(t, changes)
	waitFor(t, raws)

	// identical report: raw data still arrives, changes stay silent
	dev.Emit(report)
	waitFor(t, raws)
	select {
	case cs := <-changes:
		t.Fatalf("unexpected changes for identical report: %v", cs)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCalibrationAfterCompatibilityModeReport(t *testing.T) {
	dev := hid.NewMockDevice()
	w := g29.NewWheel(dev, g29.Options{
		Range:       400,
		SettleDelay: 20 * time.Millisecond,
	})

	ready := make(chan struct{}, 1)
	w.OnReady(func() { ready <- struct{}{} })

	dev.Emit(make([]byte, 10)) // compatibility-mode report length
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	waitFor(t, ready)

	want := [][]byte{
		frameBytes(g29.ForceOff(0)),
		frameBytes(g29.SetRange(400)),
		frameBytes(g29.LEDs(0)),
		frameBytes(g29.AutocenterOff()),
	}
	assert.Equal(t, want, dev.Writes())
}

func TestCloseDuringSettleSuppressesReady(t *testing.T) {
	dev := hid.NewMockDevice()
	w := g29.NewWheel(dev, g29.Options{SettleDelay: 500 * time.Millisecond})

	ready := make(chan struct{}, 1)
	w.OnReady(func() { ready <- struct{}{} })

	dev.Emit(make([]byte, 10))
	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(context.Background()) }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Close())

	require.ErrorIs(t, waitFor(t, errCh), g29.ErrClosed)
	select {
	case <-ready:
		t.Fatal("ready fired after close")
	case <-time.After(600 * time.Millisecond):
	}
}

func TestLEDWriteSuppression(t *testing.T) {
	dev := hid.NewMockDevice()
	w := g29.NewWheel(dev, g29.Options{})
	defer w.Close()

	require.NoError(t, w.SetLEDs(7))
	require.NoError(t, w.SetLEDs(7))
	assert.Len(t, dev.Writes(), 1, "redundant mask must not be re-sent")

	// the cumulative level for 3 lamps is the same mask
	require.NoError(t, w.SetLEDLevel(3))
	assert.Len(t, dev.Writes(), 1)

	require.NoError(t, w.SetLEDs(8))
	assert.Len(t, dev.Writes(), 2)
}

func TestReadErrorKeepsPipelineRunning(t *testing.T) {
	dev := hid.NewMockDevice()
	w := g29.NewWheel(dev, g29.Options{})

	errs := make(chan error, 1)
	states := make(chan g29.RigState, 4)
	w.OnError(func(err error) { errs <- err })
	w.OnState(func(s g29.RigState) { states <- s })

	dev.Emit(restReport())
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()
	waitFor(t, states)

	readErr := errors.New("endpoint stall")
	dev.EmitError(readErr)
	assert.Equal(t, readErr, waitFor(t, errs))

	report := restReport()
	report[7] = 0 // brake floored
	dev.Emit(report)
	snap := waitFor(t, states)
	assert.Equal(t, 1.0, snap.Pedals.Brake)
}

func TestNoReportProcessedAfterClose(t *testing.T) {
	dev := hid.NewMockDevice()
	w := g29.NewWheel(dev, g29.Options{})

	states := make(chan g29.RigState, 4)
	w.OnState(func(s g29.RigState) { states <- s })

	dev.Emit(restReport())
	require.NoError(t, w.Start(context.Background()))
	waitFor(t, states)

	require.NoError(t, w.Close())
	report := restReport()
	report[6] = 0
	dev.Emit(report)

	select {
	case <-states:
		t.Fatal("report processed after close")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestControlAfterCloseFails(t *testing.T) {
	dev := hid.NewMockDevice()
	w := g29.NewWheel(dev, g29.Options{})
	require.NoError(t, w.Close())

	assert.ErrorIs(t, w.SetWheelRange(540), g29.ErrClosed)
	assert.ErrorIs(t, w.SetForceConstant(0.7), g29.ErrClosed)
}

func frameBytes(f g29.Frame) []byte {
	return append([]byte(nil), f[:]...)
}
