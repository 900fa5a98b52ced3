package model

import (
	"math/rand"
	"sync/atomic"
)

// Dataver is the change counter for one cluster instance. It advances on
// any semantic change to the cluster's exposed data, enabling
// read-skip-if-unchanged, and carries a single-slot edge-triggered change
// signal: a burst of increments between two consumptions collapses into
// one notification.
//
// External mutators may increment concurrently with reads; all operations
// are atomic.
type Dataver struct {
	value   atomic.Uint32
	changed atomic.Bool
}

// NewDataver creates a change counter with a random initial value, so that
// stale readers from a previous process lifetime never match by accident.
func NewDataver() *Dataver {
	return NewDataverWith(rand.Uint32())
}

// NewDataverWith creates a change counter starting at the given value.
// Used when restoring a persisted version and in deterministic tests.
func NewDataverWith(initial uint32) *Dataver {
	dv := &Dataver{}
	dv.value.Store(initial)
	return dv
}

// Get returns the current counter value.
func (d *Dataver) Get() uint32 {
	return d.value.Load()
}

// Increment advances the counter and arms the change signal.
// It returns the new value.
func (d *Dataver) Increment() uint32 {
	v := d.value.Add(1)
	d.changed.Store(true)
	return v
}

// ConsumeChange clears a pending change signal and reports whether one was
// pending. Compare-and-clear: exactly one caller observes true per burst.
func (d *Dataver) ConsumeChange() bool {
	return d.changed.CompareAndSwap(true, false)
}
