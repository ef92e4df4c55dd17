// Package driverstore keeps each driver's timing state independent of which
// display mode is active, so a clock survives a mode switch.
package driverstore

import (
	"time"

	"laptimer/internal/core/clock"
	"laptimer/internal/core/timing"
)

// Slots is the number of driver slots (A through D).
const Slots = 4

// Slot is the persisted timing state of one driver.
type Slot struct {
	Running       bool
	StartedAt     time.Time
	Elapsed       time.Duration
	LapNumber     int
	LastLap       timing.Span
	BestLap       timing.Span
	BestLapNumber int
	BestSplit     timing.Span
}

// LapClose carries the fields mirrored when a lap completes.
type LapClose struct {
	LastLap       timing.Span
	BestLap       timing.Span
	BestLapNumber int
	LapNumber     int
	BestSplit     timing.Span
}

// Store holds exactly four driver slots for the lifetime of a session. It is not
// safe for concurrent use; the session serializes access.
type Store struct {
	clock clock.Clock
	slots [Slots]Slot
}

// New creates a store with every slot at its defaults.
func New(source clock.Clock) *Store {
	if source == nil {
		source = clock.System()
	}
	store := &Store{clock: source}
	store.ResetAll()
	return store
}

// Label returns the driver letter for a slot index.
func Label(slot int) string {
	if !valid(slot) {
		return "?"
	}
	return string(rune('A' + slot))
}

// MirrorRunningStart marks the slot running and derives its start instant so the
// prior elapsed duration is resumed rather than restarted.
func (store *Store) MirrorRunningStart(slot int, priorElapsed time.Duration) {
	if !valid(slot) {
		return
	}
	if priorElapsed < 0 {
		priorElapsed = 0
	}
	state := &store.slots[slot]
	state.Running = true
	state.Elapsed = priorElapsed
	state.StartedAt = store.clock.Now().Add(-priorElapsed)
}

// MirrorStop marks the slot stopped with its final elapsed duration.
func (store *Store) MirrorStop(slot int, finalElapsed time.Duration) {
	if !valid(slot) {
		return
	}
	state := &store.slots[slot]
	state.Running = false
	state.StartedAt = time.Time{}
	state.Elapsed = finalElapsed
}

// MirrorTick refreshes the elapsed duration of a running slot. The running flag
// is left untouched.
func (store *Store) MirrorTick(slot int, liveElapsed time.Duration) {
	if !valid(slot) {
		return
	}
	state := &store.slots[slot]
	state.Elapsed = liveElapsed
	if state.Running {
		state.StartedAt = store.clock.Now().Add(-liveElapsed)
	}
}

// MirrorLapClose records a completed lap. The live lap clock restarts at zero.
func (store *Store) MirrorLapClose(slot int, closed LapClose) {
	if !valid(slot) {
		return
	}
	state := &store.slots[slot]
	state.LastLap = closed.LastLap
	state.BestLap = closed.BestLap
	state.BestLapNumber = closed.BestLapNumber
	if closed.LapNumber >= 1 {
		state.LapNumber = closed.LapNumber
	}
	if closed.BestSplit.IsSet() {
		state.BestSplit = closed.BestSplit
	}
	state.Elapsed = 0
	if state.Running {
		state.StartedAt = store.clock.Now()
	}
}

// MirrorSplit records a new best split and the live elapsed duration.
func (store *Store) MirrorSplit(slot int, bestSplit timing.Span, liveElapsed time.Duration) {
	if !valid(slot) {
		return
	}
	store.slots[slot].BestSplit = bestSplit
	store.MirrorTick(slot, liveElapsed)
}

// ResetSlot restores one slot to its defaults.
func (store *Store) ResetSlot(slot int) {
	if !valid(slot) {
		return
	}
	store.slots[slot] = Slot{LapNumber: 1}
}

// ResetAll restores every slot to its defaults.
func (store *Store) ResetAll() {
	for slot := range store.slots {
		store.ResetSlot(slot)
	}
}

// Slot returns a copy of a slot. Out-of-range indexes return the defaults.
func (store *Store) Slot(slot int) Slot {
	if !valid(slot) {
		return Slot{LapNumber: 1}
	}
	return store.slots[slot]
}

// Elapsed returns the live elapsed duration of a slot: for a running slot this
// is measured from its derived start instant, so it keeps advancing even while
// no Timer is bound to the slot.
func (store *Store) Elapsed(slot int) time.Duration {
	if !valid(slot) {
		return 0
	}
	state := store.slots[slot]
	if !state.Running {
		return state.Elapsed
	}
	return clock.Since(store.clock, state.StartedAt)
}

func valid(slot int) bool {
	return slot >= 0 && slot < Slots
}
