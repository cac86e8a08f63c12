// clock.go - master oscillator for the IBM-XT core
//
// Grounded on original_source/src/clock.rs (Count{current,max,signal},
// thread::spawn busy-metered loop) and on the teacher's time.Now()-delta
// accounting in cpu_x86_runner.go's Execute() perf loop.
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"context"
	"time"
)

// DefaultBasePeriod is 4.77 MHz expressed as the base tick period - the
// same value original_source/src/motherboards/ibm_xt.rs passes to
// clock::init.
const DefaultBasePeriod = 210 * time.Nanosecond

type clockSubscriber struct {
	current int
	max     int
	signal  chan struct{}
}

// Clock is the single master oscillator. Every component that needs to
// advance in lockstep with simulated time calls Subscribe once at boot and
// then receives one pulse on the returned channel every max base ticks.
type Clock struct {
	basePeriod time.Duration
	subscribe  chan *clockSubscriber
}

// NewClock creates a Clock with the given base period. It does not start
// ticking until Run is called.
func NewClock(basePeriod time.Duration) *Clock {
	return &Clock{
		basePeriod: basePeriod,
		subscribe:  make(chan *clockSubscriber),
	}
}

// Subscribe registers a new tick stream that fires once every
// cyclesPerTick base periods. Safe to call before Run: the returned channel
// is created here and handed to the Run loop by a helper goroutine, so
// Subscribe returns at once and pulses begin once Run has taken it in.
func (c *Clock) Subscribe(cyclesPerTick int) <-chan struct{} {
	if cyclesPerTick <= 0 {
		cyclesPerTick = 1
	}
	sub := &clockSubscriber{current: cyclesPerTick, max: cyclesPerTick, signal: make(chan struct{}, 1)}
	go func() { c.subscribe <- sub }()
	return sub.signal
}

// Run drives the oscillator until ctx is cancelled. On each base tick it
// decrements every subscriber's counter; when one reaches zero it fires a
// pulse and reloads. Pulses are never coalesced - per spec.md §4.3 a slow
// consumer backpressures the oscillator: the loop waits on a full channel,
// which delays the pulses of every subscriber until that one drains.
func (c *Clock) Run(ctx context.Context) error {
	var subs []*clockSubscriber
	ticker := time.NewTicker(c.basePeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sub := <-c.subscribe:
			subs = append(subs, sub)
		case <-ticker.C:
			for _, sub := range subs {
				sub.current--
				if sub.current == 0 {
					sub.current = sub.max
					select {
					case sub.signal <- struct{}{}:
					case <-ctx.Done():
						return ctx.Err()
					}
				}
			}
		}
	}
}
