package arcade

import (
	"math"
	"sort"
)

// TimerID names a scheduled callback so its owner can tell timers apart.
type TimerID int

// TimerFunc is invoked when a timer comes due.
type TimerFunc func(id TimerID)

type timer struct {
	id  TimerID
	due int64 // microseconds
	seq int
	fn  TimerFunc
}

// Clock is a simulated millisecond clock with one-shot delayed callbacks.
// Time is kept in whole microseconds; a stepped clock derives it from the
// step count so no rounding accumulates across steps.
// Timers keep running while the physics world is paused.
type Clock struct {
	rate   int64 // steps per second, 0 for a clock that only advances manually
	steps  int64
	offset int64 // microseconds added through Advance
	seq    int
	timers []timer
}

// NewClock creates a clock starting at zero that moves only through Advance.
func NewClock() *Clock {
	return &Clock{}
}

// NewStepClock creates a clock that moves 1/tickRate seconds per Tick.
func NewStepClock(tickRate int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Clock{rate: int64(tickRate)}
}

func (c *Clock) micros() int64 {
	t := c.offset
	if c.rate > 0 {
		t += c.steps * 1_000_000 / c.rate
	}
	return t
}

func toMicros(ms float64) int64 {
	return int64(math.Round(ms * 1000))
}

// Now returns the current simulated time in milliseconds.
func (c *Clock) Now() float64 {
	return float64(c.micros()) / 1000
}

// StepMs returns the length of one Tick in milliseconds, or 0 for a manual clock.
func (c *Clock) StepMs() float64 {
	if c.rate == 0 {
		return 0
	}
	return 1000 / float64(c.rate)
}

// After schedules fn to run once, delayMs from now.
func (c *Clock) After(delayMs float64, id TimerID, fn TimerFunc) {
	c.seq++
	c.timers = append(c.timers, timer{id: id, due: c.micros() + toMicros(delayMs), seq: c.seq, fn: fn})
}

// Pending returns the number of timers that have not fired yet.
func (c *Clock) Pending() int {
	return len(c.timers)
}

// Tick moves a stepped clock forward by one step and fires due timers.
func (c *Clock) Tick() {
	if c.rate == 0 {
		return
	}
	c.steps++
	c.fire()
}

// Advance moves time forward by dtMs and fires every timer that came due,
// earliest first. Timers scheduled by a callback fire in the same call if
// they are already due.
func (c *Clock) Advance(dtMs float64) {
	c.offset += toMicros(dtMs)
	c.fire()
}

func (c *Clock) fire() {
	for {
		idx := c.nextDue()
		if idx < 0 {
			return
		}
		t := c.timers[idx]
		c.timers = append(c.timers[:idx], c.timers[idx+1:]...)
		t.fn(t.id)
	}
}

func (c *Clock) nextDue() int {
	if len(c.timers) == 0 {
		return -1
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].due != c.timers[j].due {
			return c.timers[i].due < c.timers[j].due
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	if c.timers[0].due > c.micros() {
		return -1
	}
	return 0
}
