// Copyright 2017 Canonical Ltd.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package loopscroll

import (
	"github.com/CanonicalLtd/loopscroll/internal/gesture"
	"github.com/CanonicalLtd/loopscroll/internal/trace"
)

// Move the content to the given base position, wrapping items around as
// needed to keep the viewport covered, then commit the result to the
// container.
//
// While dragging, the base position is the one implied by the pointer,
// which knows nothing about wraps: corrections are accumulated in the
// drag offset instead of being folded into the base.
func (c *Controller[T]) setContentPosition(base float64) {
	viewport := c.layout.ViewportSize().Component(c.axis)
	period := c.period()

	if c.loopable(viewport, period) {
		offset := c.reconcile(viewport, period, base+c.dragOffset)
		if c.gesture.Is(gesture.Dragging) {
			c.dragOffset += offset
		} else {
			base += offset
		}
	} else {
		c.metrics.skipped.Inc()
	}

	c.position = base + c.dragOffset
	c.container.SetPosition(AxisVector(c.axis, c.position))

	if period > 0 {
		c.loopPosition = (c.ledger.Sum() - c.position) / period
	}
}

// Return the length of one full content cycle along the axis, that is the
// content size plus the spacing that would follow the last item.
func (c *Controller[T]) period() float64 {
	return c.layout.ContentSize().Component(c.axis) + c.layout.Spacing()
}

// Return the room taken by an item along the axis, spacing included.
func (c *Controller[T]) extent(item T) float64 {
	return c.layout.ItemSize(item).Component(c.axis) + c.layout.Spacing()
}

// Check whether there's enough content to loop: even with its largest item
// wrapped to the other edge, the content must still exceed the viewport.
// Otherwise wrapping would oscillate, so looping is skipped altogether.
func (c *Controller[T]) loopable(viewport, period float64) bool {
	if c.items.Len() == 0 {
		return false
	}
	largest := 0.0
	for _, item := range c.items.Slice() {
		largest = max(largest, c.extent(item))
	}
	return period-largest > viewport
}

// Rotate items until content displaced at the given position covers the
// viewport, returning the positional correction to apply.
//
// A single overflow check visits each item at most once, so large jumps
// may need more than one pass. Passes stop as soon as one makes no
// progress, which happens when no item has been measured yet.
func (c *Controller[T]) reconcile(viewport, period, position float64) float64 {
	total := 0.0
	for {
		steps, covered := c.overflow(viewport, period, position+total)
		if steps == 0 {
			break
		}
		offset := c.rearrange(steps)
		total += offset
		if covered || offset == 0 {
			break
		}
	}
	return total
}

// Return how many wrap steps are needed for content displaced at the given
// position to cover the viewport, and whether those steps are enough.
//
// A positive count means that the leading edge of the content is inside
// the viewport, and items must wrap from the tail to the head. A negative
// count means the same for the trailing edge, with items wrapping from the
// head to the tail. The leading edge is checked first: since the content
// is longer than the viewport, both edges can't be exposed at once.
//
// Items that have not been measured yet don't cover anything, so a walk
// over them alone yields no steps at all.
func (c *Controller[T]) overflow(viewport, period, position float64) (int, bool) {
	n := c.items.Len()

	if lead := position; lead > 0 {
		steps := 0
		for ; lead > 0 && steps < n; steps++ {
			lead -= c.extent(c.items.Get(-1 - steps))
		}
		if lead == position {
			return 0, false
		}
		return steps, lead <= 0
	}

	if trail := position + period; trail < viewport {
		steps := 0
		for ; trail < viewport && steps < n; steps++ {
			trail += c.extent(c.items.Get(steps))
		}
		if trail == position+period {
			return 0, false
		}
		return -steps, trail >= viewport
	}

	return 0, true
}

// Wrap items from one edge of the content to the other, as many as the
// absolute value of steps, returning the positional correction that keeps
// the remaining items in place on screen.
//
// Each step is recorded in the ledger. A step in the opposite direction of
// the outstanding drift cancels the last recorded one.
func (c *Controller[T]) rearrange(steps int) float64 {
	offset := 0.0

	for i := 0; i < abs(steps); i++ {
		if steps < 0 {
			extent := c.extent(c.items.Get(0))
			c.items.Rotate(1)
			offset += extent
			c.ledger.Record(extent)
		} else {
			extent := c.extent(c.items.Get(-1))
			c.items.Rotate(-1)
			offset -= extent
			c.ledger.Record(-extent)
		}
	}

	c.container.Reorder(c.items.Slice())

	c.metrics.wrapped(steps)
	c.metrics.depth.Set(float64(c.ledger.Len()))
	if c.tracer != nil {
		c.tracer.Record(trace.Entry{
			Steps:  steps,
			Offset: offset,
			Start:  c.items.Start(),
			Sum:    c.ledger.Sum(),
			Depth:  c.ledger.Len(),
		})
	}

	return offset
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
