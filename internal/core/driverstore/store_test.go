package driverstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"laptimer/internal/core/clock"
	"laptimer/internal/core/timing"
)

func newTestStore() (*Store, *clock.Manual) {
	manual := clock.NewManual(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	return New(manual), manual
}

func defaultSlot() Slot {
	return Slot{LapNumber: 1}
}

func TestNewStoreDefaults(t *testing.T) {
	store, _ := newTestStore()
	for slot := 0; slot < Slots; slot++ {
		assert.Equal(t, defaultSlot(), store.Slot(slot))
	}
}

func TestMirrorRunningStartResumes(t *testing.T) {
	store, manual := newTestStore()

	store.MirrorRunningStart(0, 2000*time.Millisecond)
	state := store.Slot(0)
	assert.True(t, state.Running)
	assert.Equal(t, manual.Now().Add(-2000*time.Millisecond), state.StartedAt)
	assert.Equal(t, 2000*time.Millisecond, store.Elapsed(0))

	manual.Advance(300 * time.Millisecond)
	assert.Equal(t, 2300*time.Millisecond, store.Elapsed(0), "a running slot keeps advancing without ticks")
}

func TestStopThenRestartNeverResetsToZero(t *testing.T) {
	store, manual := newTestStore()
	store.MirrorRunningStart(1, 0)
	manual.Advance(2 * time.Second)
	store.MirrorStop(1, store.Elapsed(1))

	assert.False(t, store.Slot(1).Running)
	assert.Equal(t, 2*time.Second, store.Elapsed(1))

	manual.Advance(10 * time.Second)
	store.MirrorRunningStart(1, store.Elapsed(1))
	assert.GreaterOrEqual(t, store.Elapsed(1), 2*time.Second)
}

func TestMirrorTickKeepsRunningFlag(t *testing.T) {
	store, manual := newTestStore()
	store.MirrorRunningStart(2, 0)
	manual.Advance(500 * time.Millisecond)

	store.MirrorTick(2, 500*time.Millisecond)
	state := store.Slot(2)
	assert.True(t, state.Running)
	assert.Equal(t, 500*time.Millisecond, state.Elapsed)
	assert.Equal(t, manual.Now().Add(-500*time.Millisecond), state.StartedAt)
}

func TestMirrorLapClose(t *testing.T) {
	store, manual := newTestStore()
	store.MirrorRunningStart(0, 0)
	manual.Advance(41 * time.Second)

	store.MirrorLapClose(0, LapClose{
		LastLap:       timing.SpanOf(41 * time.Second),
		BestLap:       timing.SpanOf(41 * time.Second),
		BestLapNumber: 1,
		LapNumber:     2,
	})
	state := store.Slot(0)
	assert.Equal(t, 2, state.LapNumber)
	assert.Equal(t, 1, state.BestLapNumber)
	assert.Equal(t, timing.SpanOf(41*time.Second), state.LastLap)
	assert.Equal(t, time.Duration(0), store.Elapsed(0), "the next lap starts from zero")
	assert.False(t, state.BestSplit.IsSet(), "an unset best split is not mirrored")

	store.MirrorSplit(0, timing.SpanOf(9*time.Second), 9*time.Second)
	store.MirrorLapClose(0, LapClose{LapNumber: 3})
	assert.Equal(t, timing.SpanOf(9*time.Second), store.Slot(0).BestSplit, "best split survives a lap close")
}

func TestResetAll(t *testing.T) {
	store, manual := newTestStore()
	for slot := 0; slot < Slots; slot++ {
		store.MirrorRunningStart(slot, time.Duration(slot)*time.Second)
		store.MirrorSplit(slot, timing.SpanOf(time.Second), time.Second)
	}
	manual.Advance(time.Second)

	store.ResetAll()
	for slot := 0; slot < Slots; slot++ {
		assert.Equal(t, defaultSlot(), store.Slot(slot))
		assert.Equal(t, time.Duration(0), store.Elapsed(slot))
	}
}

func TestOutOfRangeSlotsAreIgnored(t *testing.T) {
	store, _ := newTestStore()
	store.MirrorRunningStart(-1, time.Second)
	store.MirrorStop(Slots, time.Second)
	store.MirrorTick(9, time.Second)
	store.ResetSlot(7)

	assert.Equal(t, defaultSlot(), store.Slot(Slots))
	assert.Equal(t, time.Duration(0), store.Elapsed(-1))
	for slot := 0; slot < Slots; slot++ {
		assert.Equal(t, defaultSlot(), store.Slot(slot))
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "A", Label(0))
	assert.Equal(t, "D", Label(3))
	assert.Equal(t, "?", Label(4))
}
