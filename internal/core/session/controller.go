// Package session owns the timing session: the active display mode, the Timers
// bound to it, the mode-independent driver store and the global-best leaders.
package session

import (
	"log/slog"
	"sync"

	"laptimer/internal/core/clock"
	"laptimer/internal/core/driverstore"
	"laptimer/internal/core/leaderboard"
	"laptimer/internal/core/model"
	"laptimer/internal/core/stopwatch"
	"laptimer/internal/core/timing"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger configures the logger used by the controller.
func WithLogger(logger *slog.Logger) Option {
	return func(controller *Controller) {
		if logger != nil {
			controller.logger = logger
		}
	}
}

// WithClock injects the clock shared by the Timers and the driver store.
func WithClock(source clock.Clock) Option {
	return func(controller *Controller) {
		if source != nil {
			controller.clock = source
		}
	}
}

// Controller is the mode controller. Commands, ticks and queries are serialized
// by a single lock, so they interleave only at call boundaries.
type Controller struct {
	mu      sync.Mutex
	config  model.SessionConfig
	clock   clock.Clock
	logger  *slog.Logger
	mode    Mode
	timers  []*stopwatch.Timer
	store   *driverstore.Store
	leaders leaderboard.Leaders
	refresh *refresher
	events  []chan Event
	closed  bool
}

// New creates a session in config.StartMode with every driver idle.
func New(config model.SessionConfig, opts ...Option) *Controller {
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = model.DefaultRefreshInterval
	}
	mode, err := ParseMode(config.StartMode)
	if err != nil {
		mode = ModeOne
	}

	controller := &Controller{
		config:  config,
		clock:   clock.System(),
		logger:  slog.Default(),
		mode:    mode,
		leaders: leaderboard.Empty(),
	}
	for _, opt := range opts {
		opt(controller)
	}
	controller.store = driverstore.New(controller.clock)
	controller.timers = controller.hydrateLocked(mode)
	controller.refresh = newRefresher(config.RefreshInterval, controller.Tick)
	return controller
}

// Subscribe registers a new observer channel. Sends never block; a full channel
// drops the event.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	if controller.closed {
		close(ch)
	} else {
		controller.events = append(controller.events, ch)
	}
	controller.mu.Unlock()
	return ch
}

// Close stops the refresh driver and closes every observer channel.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.refresh.disarm()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// UpdateConfig applies new display settings. The start mode only matters to New
// and is ignored here.
func (controller *Controller) UpdateConfig(config model.SessionConfig) {
	if config.RefreshInterval <= 0 {
		config.RefreshInterval = model.DefaultRefreshInterval
	}
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	controller.config = config
	controller.refresh.setInterval(config.RefreshInterval)
	controller.logger.Debug("session config updated", "refresh", config.RefreshInterval, "highlight", config.HighlightLeaders, "show_diff", config.ShowDiff)
}

// Mode returns the active mode.
func (controller *Controller) Mode() Mode {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.mode
}

// Refreshing reports whether the periodic refresh is armed.
func (controller *Controller) Refreshing() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.refresh.active()
}

// DriverState returns a copy of a driver store slot.
func (controller *Controller) DriverState(slot int) driverstore.Slot {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.store.Slot(slot)
}

// Leaders returns the current global bests.
func (controller *Controller) Leaders() leaderboard.Leaders {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.leaders
}

// TapLap handles the lap button of slot. A slot the active mode does not expose
// promotes the mode first and then replays the tap against the new Timer.
func (controller *Controller) TapLap(slot int) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed || slot < 0 || slot >= driverstore.Slots {
		return
	}

	promoted := false
	if need := RequiredMode(slot); controller.mode < need {
		controller.logger.Debug("promoting mode for lap", "slot", driverstore.Label(slot), "from", int(controller.mode), "to", int(need))
		controller.switchModeLocked(need, true)
		promoted = true
	}

	timer := controller.timers[slot]
	event := timer.Lap()
	switch event.Kind {
	case stopwatch.LapArmed:
		controller.store.ResetSlot(slot)
		controller.store.MirrorRunningStart(slot, 0)
		controller.refresh.arm()
	case stopwatch.LapClosed:
		controller.store.MirrorLapClose(slot, driverstore.LapClose{
			LastLap:       timing.SpanOf(event.Lap.Duration),
			BestLap:       event.BestLap,
			BestLapNumber: event.BestLapNumber,
			LapNumber:     event.NextLap,
			BestSplit:     event.BestSplit,
		})
	}
	controller.recomputeLocked()

	eventType := EventLap
	if event.Kind == stopwatch.LapArmed {
		eventType = EventLapStart
	}
	controller.emitLocked(Event{
		Type:     eventType,
		Mode:     controller.mode,
		Promoted: promoted,
		Slot:     slot,
		Lap:      event,
		At:       event.At,
	})
}

// TapSplit records a split for slot. Slots outside the active mode are ignored.
func (controller *Controller) TapSplit(slot int) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed || !controller.mode.Exposes(slot) {
		return
	}

	event, ok := controller.timers[slot].Split()
	if !ok {
		return
	}
	controller.store.MirrorSplit(slot, event.BestSplit, event.Elapsed)
	controller.leaders.RecomputeSplit(controller.sourcesLocked())
	controller.emitLocked(Event{
		Type:  EventSplit,
		Mode:  controller.mode,
		Slot:  slot,
		Split: event,
		At:    event.At,
	})
}

// SwitchMode changes the active mode, flushing the outgoing Timers to the driver
// store before hydrating the incoming ones. Invalid modes are ignored.
func (controller *Controller) SwitchMode(next Mode) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed || !next.Valid() {
		return
	}
	controller.switchModeLocked(next, false)
}

// CycleMode advances to the next mode in the cycle 1, 2, 4, 1.
func (controller *Controller) CycleMode() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}
	controller.switchModeLocked(controller.mode.Next(), false)
}

// StopAllInMode stops every running clock of the active mode.
func (controller *Controller) StopAllInMode() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}

	for slot, timer := range controller.timers {
		if !timer.Running() {
			continue
		}
		timer.Stop()
		controller.store.MirrorStop(slot, timer.Elapsed())
	}
	controller.refresh.disarm()
	controller.logger.Info("timing stopped", "mode", int(controller.mode))
	controller.emitLocked(Event{Type: EventStop, Mode: controller.mode, At: controller.clock.Now()})
}

// ResetEverything stops all clocks and clears every Timer, the driver store and
// the leaders.
func (controller *Controller) ResetEverything() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}

	controller.refresh.disarm()
	for _, timer := range controller.timers {
		timer.Stop()
		timer.Reset()
	}
	controller.store.ResetAll()
	controller.leaders = leaderboard.Empty()
	controller.logger.Info("timing reset", "mode", int(controller.mode))
	controller.emitLocked(Event{Type: EventReset, Mode: controller.mode, At: controller.clock.Now()})
}

// Tick runs one refresh: running clocks are mirrored into the driver store and
// observers are told to re-render. The refresh disarms itself once every clock
// of the active mode has stopped.
func (controller *Controller) Tick() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return
	}

	running := false
	for slot, timer := range controller.timers {
		if !timer.Running() {
			continue
		}
		running = true
		controller.store.MirrorTick(slot, timer.Elapsed())
	}
	if !running {
		controller.refresh.disarm()
		return
	}

	if controller.mode == ModeFour {
		controller.leaders.RecomputeSplit(controller.sourcesLocked())
	}
	controller.emitLocked(Event{Type: EventTick, Mode: controller.mode, At: controller.clock.Now()})
}

func (controller *Controller) switchModeLocked(next Mode, promoted bool) {
	if next == controller.mode {
		return
	}
	previous := controller.mode

	for slot, timer := range controller.timers {
		if !timer.Running() {
			continue
		}
		// The store keeps running=true: the driver's race clock is still going.
		controller.store.MirrorTick(slot, timer.Elapsed())
		timer.Stop()
	}
	controller.refresh.disarm()

	controller.mode = next
	controller.timers = controller.hydrateLocked(next)
	controller.recomputeLocked()
	controller.syncRefreshLocked()

	controller.logger.Info("mode switched", "from", int(previous), "to", int(next), "promoted", promoted)
	controller.emitLocked(Event{
		Type:     EventModeChange,
		Mode:     next,
		Previous: previous,
		Promoted: promoted,
		Slot:     -1,
		At:       controller.clock.Now(),
	})
}

func (controller *Controller) hydrateLocked(mode Mode) []*stopwatch.Timer {
	timers := make([]*stopwatch.Timer, mode.Drivers())
	for slot := range timers {
		state := controller.store.Slot(slot)
		timer := stopwatch.New(controller.clock)
		timer.Seed(stopwatch.Seed{
			Elapsed:       controller.store.Elapsed(slot),
			LapNumber:     state.LapNumber,
			LastLap:       state.LastLap,
			BestLap:       state.BestLap,
			BestLapNumber: state.BestLapNumber,
			BestSplit:     state.BestSplit,
		})
		if state.Running {
			timer.Start()
		}
		timers[slot] = timer
	}
	return timers
}

func (controller *Controller) syncRefreshLocked() {
	for _, timer := range controller.timers {
		if timer.Running() {
			controller.refresh.arm()
			return
		}
	}
	controller.refresh.disarm()
}

func (controller *Controller) recomputeLocked() {
	sources := controller.sourcesLocked()
	controller.leaders.RecomputeLap(sources)
	controller.leaders.RecomputeSplit(sources)
}

func (controller *Controller) sourcesLocked() []leaderboard.Source {
	sources := make([]leaderboard.Source, len(controller.timers))
	for index, timer := range controller.timers {
		sources[index] = timer
	}
	return sources
}

func (controller *Controller) emitLocked(event Event) {
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
