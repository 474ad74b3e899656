package velocity

import "math"

// SmoothingRate is the default exponential smoothing rate, per second.
const SmoothingRate = 10.0

// Tracker estimates the velocity of a dragging pointer along the scroll
// axis, smoothing out the noise of individual frames.
type Tracker struct {
	rate     float64 // Smoothing rate, per second.
	previous float64 // Position seen at the last sample.
	velocity float64 // Smoothed estimate.
}

// New creates a tracker using the given smoothing rate.
func New(rate float64) *Tracker {
	return &Tracker{
		rate: rate,
	}
}

// Begin starts tracking a new drag from the given position.
func (t *Tracker) Begin(position float64) {
	t.previous = position
	t.velocity = 0
}

// Sample feeds the pointer position observed after dt seconds since the
// previous sample. Frames with a non-positive dt are ignored.
func (t *Tracker) Sample(position, dt float64) {
	if dt <= 0 {
		return
	}
	instant := (position - t.previous) / dt
	t.velocity += (instant - t.velocity) * math.Min(1, dt*t.rate)
	t.previous = position
}

// Velocity returns the current smoothed estimate.
func (t *Tracker) Velocity() float64 {
	return t.velocity
}
