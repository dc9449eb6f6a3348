package g29

import "sync"

// Dispatcher fans change notifications out to subscribers. Channels are
// the closed Field set plus four aggregates: the changed-field set, the
// full snapshot, the raw report, and the ready/error lifecycle pair.
// Handlers run synchronously inside report processing, so a slow
// handler delays the next report.
type Dispatcher struct {
	mu      sync.RWMutex
	fields  map[Field][]func(Change)
	changes []func([]Change)
	all     []func(RigState)
	data    []func([]byte)
	ready   []func()
	errs    []func(error)
}

func newDispatcher() *Dispatcher {
	return &Dispatcher{fields: make(map[Field][]func(Change))}
}

// OnField subscribes to one field; the handler fires only when that
// field is present in a report's changed set.
func (d *Dispatcher) OnField(f Field, fn func(Change)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.fields[f] = append(d.fields[f], fn)
}

// OnChanges subscribes to the whole changed-field set; it does not fire
// for reports that changed nothing.
func (d *Dispatcher) OnChanges(fn func([]Change)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.changes = append(d.changes, fn)
}

// OnState subscribes to a full snapshot copy delivered for every
// report, changed or not.
func (d *Dispatcher) OnState(fn func(RigState)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.all = append(d.all, fn)
}

// OnData subscribes to the raw report bytes, delivered verbatim for
// every report.
func (d *Dispatcher) OnData(fn func([]byte)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data = append(d.data, fn)
}

// OnReady subscribes to the one-shot ready notification fired when the
// wheel starts listening.
func (d *Dispatcher) OnReady(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ready = append(d.ready, fn)
}

// OnError subscribes to mid-stream transport errors. The pipeline keeps
// running after dispatching one.
func (d *Dispatcher) OnError(fn func(error)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errs = append(d.errs, fn)
}

func (d *Dispatcher) dispatchReport(changes []Change, snapshot RigState, raw []byte) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range changes {
		for _, fn := range d.fields[c.Field] {
			fn(c)
		}
	}
	if len(changes) > 0 {
		for _, fn := range d.changes {
			fn(changes)
		}
	}
	for _, fn := range d.all {
		fn(snapshot)
	}
	for _, fn := range d.data {
		fn(raw)
	}
}

func (d *Dispatcher) dispatchReady() {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, fn := range d.ready {
		fn()
	}
}

func (d *Dispatcher) dispatchError(err error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, fn := range d.errs {
		fn(err)
	}
}
