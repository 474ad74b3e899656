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

// Package loopscroll makes a small, fixed set of host items scroll forever
// along one axis, by wrapping items that leave the viewport around to the
// opposite edge of the content.
package loopscroll

import (
	"math"

	"github.com/CanonicalLtd/loopscroll/internal/gesture"
	"github.com/CanonicalLtd/loopscroll/internal/ledger"
	"github.com/CanonicalLtd/loopscroll/internal/log"
	"github.com/CanonicalLtd/loopscroll/internal/trace"
	"github.com/CanonicalLtd/loopscroll/internal/velocity"
	"github.com/CanonicalLtd/loopscroll/loop"
	"github.com/pkg/errors"
)

// GestureState is the state of the drag gesture of a Controller.
type GestureState string

// Possible gesture states.
const (
	Idle     = GestureState(gesture.Idle)
	Dragging = GestureState(gesture.Dragging)
	Inertia  = GestureState(gesture.Inertia)
)

// Controller reconciles the position of the host content with drag input
// and inertia, rotating its items so that the viewport is always covered.
//
// All methods must be called from the host update loop: a Controller is not
// concurrency-safe.
type Controller[T any] struct {
	layout    Layout[T]
	container Container[T]
	options   *options
	logger    *log.Logger
	metrics   *metrics
	tracer    *trace.Tracer // Nil if tracing is disabled.

	axis     Axis
	items    *loop.List[T]
	ledger   *ledger.Ledger
	gesture  *gesture.Gesture
	pointers *pointers
	tracker  *velocity.Tracker // Only set while dragging.

	position     float64 // Committed content position along the axis.
	dragOffset   float64 // Wrap corrections accumulated during the current drag.
	velocity     float64 // Along the axis, in units per second.
	loopPosition float64

	dragStart    float64 // Content position when the drag began.
	pointerStart float64 // Pointer position when the drag began.
	pointer      float64 // Latest pointer position of the drag.
}

// New creates a controller for the given host layout and content
// container, and takes over the items currently in the container.
func New[T any](layout Layout[T], container Container[T], options ...Option) (*Controller[T], error) {
	if layout == nil {
		return nil, errors.Wrap(ErrMissingCollaborator, "no layout")
	}
	if container == nil {
		return nil, errors.Wrap(ErrMissingCollaborator, "no content container")
	}

	o := newOptions()
	for _, option := range options {
		option(o)
	}
	level, err := o.validate()
	if err != nil {
		return nil, err
	}

	metrics, err := newMetrics(o.registerer)
	if err != nil {
		return nil, err
	}

	c := &Controller[T]{
		layout:    layout,
		container: container,
		options:   o,
		logger:    log.New(o.logFunc, level).Augment("loopscroll"),
		metrics:   metrics,
		axis:      o.axis,
		ledger:    ledger.New(),
		gesture:   gesture.New(),
		pointers:  newPointers(),
	}

	if o.traceRetain > 0 {
		c.tracer = trace.New(o.traceRetain)
		c.tracer.Forward(func(entry trace.Entry) {
			c.logger.Tracef("wrap: %s", entry)
		})
	}

	c.Refresh()

	return c, nil
}

// Refresh rebuilds the looping items from the ones currently in the
// container, drops any outstanding correction and moves the content back
// to its origin. Call it whenever the host changes the set of items.
func (c *Controller[T]) Refresh() {
	c.cancel()
	c.items = loop.New(c.container.Items(), 0)
	c.ledger.Clear()
	if c.tracer != nil {
		c.tracer.Reset()
	}
	c.metrics.refreshes.Inc()
	c.metrics.depth.Set(0)

	c.logger.Debugf("refreshed %d items along %s axis", c.items.Len(), c.axis)

	c.setContentPosition(0)
}

// Axis returns the scroll axis.
func (c *Controller[T]) Axis() Axis {
	return c.axis
}

// SetAxis changes the scroll axis. Since positions along the old axis are
// meaningless on the new one, the items are rebuilt from scratch.
func (c *Controller[T]) SetAxis(axis Axis) error {
	if axis != Horizontal && axis != Vertical {
		return errors.Wrapf(ErrInvalidOption, "unknown axis %d", int(axis))
	}
	c.axis = axis
	c.Refresh()
	return nil
}

// LoopPosition returns how far around the loop the viewport currently is,
// in units of whole content cycles. It is not clamped to [0, 1): each full
// cycle scrolled forward adds one.
func (c *Controller[T]) LoopPosition() float64 {
	return c.loopPosition
}

// SetLoopPosition jumps to the given fraction of the content cycle. Only
// the fractional part of the value matters. Any ongoing gesture is
// cancelled and the content stops.
func (c *Controller[T]) SetLoopPosition(value float64) {
	c.cancel()
	position := -c.period() * math.Mod(value, 1)
	c.setContentPosition(position + c.ledger.Sum())
}

// State returns the state of the drag gesture.
func (c *Controller[T]) State() GestureState {
	return GestureState(c.gesture.State())
}

// Velocity returns the current content velocity along the axis.
func (c *Controller[T]) Velocity() float64 {
	return c.velocity
}

// Position returns the committed content position along the axis.
func (c *Controller[T]) Position() float64 {
	return c.position
}

// DragOffset returns the wrap corrections accumulated since the current
// drag began.
func (c *Controller[T]) DragOffset() float64 {
	return c.dragOffset
}

// OffsetSum returns the net positional correction introduced by all wrap
// steps since the last refresh.
func (c *Controller[T]) OffsetSum() float64 {
	return c.ledger.Sum()
}

// LedgerDepth returns the number of outstanding wrap corrections.
func (c *Controller[T]) LedgerDepth() int {
	return c.ledger.Len()
}

// Start returns the storage index of the item currently at the head of
// the content.
func (c *Controller[T]) Start() int {
	return c.items.Start()
}

// Items returns the items in layout order, head first.
func (c *Controller[T]) Items() []T {
	return c.items.Slice()
}

// RawItems returns the items in the order they had at the last refresh.
func (c *Controller[T]) RawItems() []T {
	return c.items.Raw()
}

// Iterate returns an iterator over the items in layout order. The iterator
// fails with loop.ErrStale if the items get rearranged before it's done.
func (c *Controller[T]) Iterate() *loop.Iterator[T] {
	return c.items.Iter()
}

// Trace returns the most recent rearrangements, one per line.
func (c *Controller[T]) Trace() string {
	if c.tracer == nil {
		return ""
	}
	return c.tracer.String()
}
