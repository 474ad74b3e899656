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
	"math"

	"github.com/CanonicalLtd/loopscroll/internal/gesture"
	"github.com/CanonicalLtd/loopscroll/internal/velocity"
)

// Inertial motion stops below this speed, in units per second.
const restingVelocity = 1

// HandlePointer feeds a pointer event to the controller.
//
// Only the primary button is honoured, and only the pointer pressed while
// no other one was down drives the content. A PointerCancel event from any
// pointer aborts the gesture.
func (c *Controller[T]) HandlePointer(event PointerEvent) {
	if event.Kind == PointerCancel {
		c.Disable()
		return
	}
	if event.Button != ButtonPrimary {
		return
	}

	position := event.Position.Component(c.axis)

	switch event.Kind {
	case PointerDown:
		if c.pointers.Press(event.Pointer, event.Position) {
			c.beginDrag(position)
		}
	case PointerMove:
		if c.pointers.Move(event.Pointer, event.Position) && c.gesture.Is(gesture.Dragging) {
			c.pointer = position
			c.setContentPosition(c.dragStart + position - c.pointerStart)
		}
	case PointerUp:
		if c.pointers.Release(event.Pointer) && c.gesture.Is(gesture.Dragging) {
			c.endDrag()
		}
	}
}

// Update advances the controller by dt seconds. It must be called once per
// frame, after the pointer events of that frame have been handled.
//
// While dragging, it refreshes the velocity estimate. While moving by
// inertia, it decelerates the content and moves it accordingly.
func (c *Controller[T]) Update(dt float64) {
	if dt <= 0 {
		return
	}

	switch c.gesture.State() {
	case gesture.Dragging:
		if !c.options.inertia {
			return
		}
		c.tracker.Sample(c.pointer, dt)
		c.velocity = c.tracker.Velocity()
	case gesture.Inertia:
		c.velocity *= math.Pow(c.options.decelerationRate, dt)
		if math.Abs(c.velocity) < restingVelocity {
			c.velocity = 0
			c.gesture.Settle()
			return
		}
		c.setContentPosition(c.position + c.velocity*dt)
	}
}

// ScrollBy displaces the content by the given amount, for example in
// response to a mouse wheel. It's ignored while dragging.
func (c *Controller[T]) ScrollBy(delta float64) {
	if c.gesture.Is(gesture.Dragging) {
		return
	}
	c.setContentPosition(c.position + delta)
}

// Disable aborts any ongoing gesture, for example because the host lost
// the pointer focus. The content stays where it is.
func (c *Controller[T]) Disable() {
	if !c.gesture.Is(gesture.Idle) {
		c.logger.Debugf("%s gesture cancelled", c.gesture)
	}
	c.cancel()
}

func (c *Controller[T]) beginDrag(position float64) {
	c.gesture.Begin()

	c.dragOffset = 0
	c.velocity = 0
	c.dragStart = c.position
	c.pointerStart = position
	c.pointer = position

	c.tracker = velocity.New(c.options.smoothingRate)
	c.tracker.Begin(position)
}

func (c *Controller[T]) endDrag() {
	c.dragOffset = 0
	c.tracker = nil

	moving := c.options.inertia && math.Abs(c.velocity) >= restingVelocity
	if !moving {
		c.velocity = 0
	}
	c.gesture.Release(moving)
}

// Drop back to rest, forgetting any pressed pointer.
func (c *Controller[T]) cancel() {
	c.pointers.Reset()
	c.dragOffset = 0
	c.velocity = 0
	c.tracker = nil
	c.gesture.Cancel()
}
