package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains flash timing values.
type Config struct {
	Flashes     int
	OnDuration  Range
	OffDuration Range
}

// Engine blinks a driver's last-lap readout after a lap closes. Each slot runs at
// most one flash at a time; a new flash replaces the running one.
type Engine struct {
	mu      sync.Mutex
	config  Config
	apply   func(slot int, lit bool)
	cancels map[int]context.CancelFunc
	rng     *rand.Rand
}

// New creates a new flash engine. apply is called from the engine goroutines.
func New(config Config, apply func(slot int, lit bool)) *Engine {
	if config.Flashes <= 0 {
		config.Flashes = 1
	}
	return &Engine{
		config:  config,
		apply:   apply,
		cancels: make(map[int]context.CancelFunc),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Flash starts a flash sequence for slot. The readout always ends lit.
func (engine *Engine) Flash(ctx context.Context, slot int) {
	engine.mu.Lock()
	if cancel, ok := engine.cancels[slot]; ok {
		cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancels[slot] = cancel
	engine.mu.Unlock()

	go engine.run(runCtx, slot)
}

// Stop terminates every active flash.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	for slot, cancel := range engine.cancels {
		cancel()
		delete(engine.cancels, slot)
	}
}

func (engine *Engine) run(ctx context.Context, slot int) {
	defer engine.apply(slot, true)
	for flash := 0; flash < engine.config.Flashes; flash++ {
		engine.apply(slot, false)
		if !sleepWithContext(ctx, engine.sample(engine.config.OffDuration)) {
			return
		}
		engine.apply(slot, true)
		if !sleepWithContext(ctx, engine.sample(engine.config.OnDuration)) {
			return
		}
	}
}

func (engine *Engine) sample(value Range) time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return value.Random(engine.rng)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
