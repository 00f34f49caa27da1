// Package hostapi maps opaque integer handles handed to a native or
// JavaScript host onto filter instances.
//
// The host never sees a Go pointer. A handle is valid from the create call
// until Release; operations on unknown or released handles are ignored.
// The table itself is safe for concurrent use, but each filter must still be
// driven by one caller at a time.
package hostapi

import (
	"sync"

	"github.com/cwbudde/algo-biquad/dsp/filter"
)

// Handle identifies one filter owned by the host. Zero is never issued.
type Handle uintptr

// Table holds the live filters keyed by handle.
type Table struct {
	mu      sync.RWMutex
	filters map[Handle]*filter.Filter
	hooks   map[Handle][]func()
	nextID  Handle
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		filters: make(map[Handle]*filter.Filter),
		hooks:   make(map[Handle][]func()),
		nextID:  1,
	}
}

// Default is the table used by the exported host entry points.
var Default = NewTable()

// CreateLowpassFilter builds a lowpass filter and transfers it to the host.
func (t *Table) CreateLowpassFilter(sampleRate, cutoff float64) Handle {
	f := filter.NewLowpass(sampleRate, cutoff)

	t.mu.Lock()
	defer t.mu.Unlock()

	h := t.nextID
	t.nextID++
	t.filters[h] = f
	return h
}

// Lookup returns the filter behind h.
func (t *Table) Lookup(h Handle) (*filter.Filter, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	f, ok := t.filters[h]
	return f, ok
}

// Process runs one sample through the filter behind h. Unknown handles
// pass the sample through unchanged.
func (t *Table) Process(h Handle, x float32) float32 {
	f, ok := t.Lookup(h)
	if !ok {
		return x
	}
	return f.Process(x)
}

// SetCutoff changes the cutoff of the filter behind h.
func (t *Table) SetCutoff(h Handle, cutoff float64) {
	if f, ok := t.Lookup(h); ok {
		f.SetCutoff(cutoff)
	}
}

// ChangeToLowpass switches the filter behind h to lowpass.
func (t *Table) ChangeToLowpass(h Handle) {
	if f, ok := t.Lookup(h); ok {
		f.ChangeToLowpass()
	}
}

// ChangeToHighpass switches the filter behind h to highpass.
func (t *Table) ChangeToHighpass(h Handle) {
	if f, ok := t.Lookup(h); ok {
		f.ChangeToHighpass()
	}
}

// OnRelease registers fn to run once when h is released. It reports false,
// without registering, if h is not live.
func (t *Table) OnRelease(h Handle, fn func()) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.filters[h]; !ok {
		return false
	}
	t.hooks[h] = append(t.hooks[h], fn)
	return true
}

// Release drops the filter behind h and runs its release hooks.
// Releasing twice is harmless.
func (t *Table) Release(h Handle) {
	t.mu.Lock()
	hooks := t.hooks[h]
	delete(t.filters, h)
	delete(t.hooks, h)
	t.mu.Unlock()

	// Hooks run unlocked so they may call back into the table.
	for _, fn := range hooks {
		fn()
	}
}

// Len returns the number of live handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.filters)
}
