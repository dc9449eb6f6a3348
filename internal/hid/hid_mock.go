package hid

import (
	"errors"
	"sync"
)

// ErrMockClosed is returned by MockDevice.Read after Close.
var ErrMockClosed = errors.New("mock device closed")

// MockDevice is a scripted Device for tests. Reads block until a report
// (or error) is emitted; writes are recorded.
type MockDevice struct {
	mu     sync.Mutex
	writes [][]byte

	reports chan mockRead
	done    chan struct{}
	once    sync.Once
}

type mockRead struct {
	data []byte
	err  error
}

func NewMockDevice() *MockDevice {
	return &MockDevice{
		reports: make(chan mockRead, 16),
		done:    make(chan struct{}),
	}
}

// Emit queues one input report for the next Read.
func (m *MockDevice) Emit(data []byte) {
	m.reports <- mockRead{data: append([]byte(nil), data...)}
}

// EmitError queues a read error.
func (m *MockDevice) EmitError(err error) {
	m.reports <- mockRead{err: err}
}

func (m *MockDevice) Read(p []byte) (int, error) {
	select {
	case r := <-m.reports:
		if r.err != nil {
			return 0, r.err
		}
		return copy(p, r.data), nil
	case <-m.done:
		return 0, ErrMockClosed
	}
}

func (m *MockDevice) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, append([]byte(nil), p...))
	return len(p), nil
}

// Writes returns a copy of every frame written so far.
func (m *MockDevice) Writes() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.writes))
	for i, w := range m.writes {
		out[i] = append([]byte(nil), w...)
	}
	return out
}

func (m *MockDevice) Close() error {
	m.once.Do(func() { close(m.done) })
	return nil
}
