package g29

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchReportRouting(t *testing.T) {
	d := newDispatcher()

	var turn []Change
	var gear []Change
	var sets [][]Change
	var snaps []RigState
	var raws [][]byte

	d.OnField(FieldWheelTurn, func(c Change) { turn = append(turn, c) })
	d.OnField(FieldShifterGear, func(c Change) { gear = append(gear, c) })
	d.OnChanges(func(cs []Change) { sets = append(sets, cs) })
	d.OnState(func(s RigState) { snaps = append(snaps, s) })
	d.OnData(func(b []byte) { raws = append(raws, b) })

	changes := []Change{{Field: FieldWheelTurn, Value: 50.2}}
	d.dispatchReport(changes, RigState{}, []byte{1, 2, 3})

	assert.Equal(t, changes, turn)
	assert.Empty(t, gear, "gear channel must not fire for a turn change")
	assert.Len(t, sets, 1)
	assert.Len(t, snaps, 1)
	assert.Equal(t, [][]byte{{1, 2, 3}}, raws)

	// a report with no changes still feeds the snapshot and raw
	// channels, but not the changes channel
	d.dispatchReport(nil, RigState{}, []byte{4})
	assert.Len(t, sets, 1)
	assert.Len(t, snaps, 2)
	assert.Len(t, raws, 2)
	assert.Len(t, turn, 1)
}

func TestDispatchMultipleSubscribersPerField(t *testing.T) {
	d := newDispatcher()
	var a, b int
	d.OnField(FieldPedalsGas, func(Change) { a++ })
	d.OnField(FieldPedalsGas, func(Change) { b++ })

	d.dispatchReport([]Change{{Field: FieldPedalsGas, Value: 1.0}}, RigState{}, nil)
	assert.Equal(t, 1, a)
	assert.Equal(t, 1, b)
}

func TestDispatchLifecycle(t *testing.T) {
	d := newDispatcher()
	ready := 0
	var got error
	d.OnReady(func() { ready++ })
	d.OnError(func(err error) { got = err })

	d.dispatchReady()
	assert.Equal(t, 1, ready)

	want := errors.New("read failed")
	d.dispatchError(want)
	assert.Equal(t, want, got)
}
