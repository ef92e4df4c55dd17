package session

import "time"

// refresher drives periodic ticks while at least one clock runs. arm and disarm
// are called with the controller lock held and never block.
type refresher struct {
	interval time.Duration
	tick     func()
	stopCh   chan struct{}
}

func newRefresher(interval time.Duration, tick func()) *refresher {
	return &refresher{interval: interval, tick: tick}
}

func (refresh *refresher) arm() {
	if refresh.stopCh != nil {
		return
	}
	refresh.stopCh = make(chan struct{})
	go refresh.run(refresh.stopCh, refresh.interval)
}

func (refresh *refresher) disarm() {
	if refresh.stopCh == nil {
		return
	}
	close(refresh.stopCh)
	refresh.stopCh = nil
}

func (refresh *refresher) active() bool {
	return refresh.stopCh != nil
}

// setInterval takes effect immediately when the refresher is armed.
func (refresh *refresher) setInterval(interval time.Duration) {
	if interval == refresh.interval {
		return
	}
	refresh.interval = interval
	if refresh.active() {
		refresh.disarm()
		refresh.arm()
	}
}

func (refresh *refresher) run(stopCh <-chan struct{}, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			select {
			case <-stopCh:
				return
			default:
			}
			refresh.tick()
		}
	}
}
