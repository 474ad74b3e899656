// Package strip implements an in-memory host for a loopscroll.Controller,
// laying out items one after the other along a single axis.
package strip

import (
	"fmt"

	"github.com/CanonicalLtd/loopscroll"
)

// Item is a single slot of a Strip.
type Item struct {
	Label string
	Size  loopscroll.Vector
}

func (i *Item) String() string {
	return i.Label
}

// Placement tells where an item ends up relative to the viewport origin.
type Placement struct {
	Item   *Item
	Offset float64 // Position of the item leading edge along the axis.
	Extent float64 // Size of the item along the axis.
}

// Strip lays out its items in order along an axis, separated by a fixed
// spacing, and displaces them all by the content position.
//
// It implements both loopscroll.Layout and loopscroll.Container.
type Strip struct {
	axis     loopscroll.Axis
	viewport loopscroll.Vector
	spacing  float64
	items    []*Item           // Layout order.
	position loopscroll.Vector // Content position.
	reorders int               // Number of Reorder calls.
}

// New creates a strip with the given viewport and items.
func New(axis loopscroll.Axis, viewport loopscroll.Vector, spacing float64, items ...*Item) *Strip {
	return &Strip{
		axis:     axis,
		viewport: viewport,
		spacing:  spacing,
		items:    items,
	}
}

// Uniform creates a strip of n items labelled with their index, all with
// the same extent along the axis.
func Uniform(axis loopscroll.Axis, n int, extent, viewport, spacing float64) *Strip {
	items := make([]*Item, n)
	for i := range items {
		items[i] = &Item{
			Label: fmt.Sprintf("%d", i),
			Size:  loopscroll.AxisVector(axis, extent),
		}
	}
	return New(axis, loopscroll.AxisVector(axis, viewport), spacing, items...)
}

// ViewportSize implements loopscroll.Layout.
func (s *Strip) ViewportSize() loopscroll.Vector {
	return s.viewport
}

// ContentSize implements loopscroll.Layout. Along the axis it's the sum of
// all item sizes and of the spacing between them, across the axis it's the
// size of the largest item.
func (s *Strip) ContentSize() loopscroll.Vector {
	size := loopscroll.Vector{}
	for i, item := range s.items {
		if i > 0 {
			size = s.grow(size, s.spacing, 0)
		}
		size = s.grow(size, item.Size.Component(s.axis), s.cross(item.Size))
	}
	return size
}

// Spacing implements loopscroll.Layout.
func (s *Strip) Spacing() float64 {
	return s.spacing
}

// ItemSize implements loopscroll.Layout.
func (s *Strip) ItemSize(item *Item) loopscroll.Vector {
	return item.Size
}

// Items implements loopscroll.Container.
func (s *Strip) Items() []*Item {
	items := make([]*Item, len(s.items))
	copy(items, s.items)
	return items
}

// SetPosition implements loopscroll.Container.
func (s *Strip) SetPosition(position loopscroll.Vector) {
	s.position = position
}

// Reorder implements loopscroll.Container.
func (s *Strip) Reorder(items []*Item) {
	s.items = make([]*Item, len(items))
	copy(s.items, items)
	s.reorders++
}

// Position returns the last content position set by the controller.
func (s *Strip) Position() loopscroll.Vector {
	return s.position
}

// Reorders returns how many times the items were reordered.
func (s *Strip) Reorders() int {
	return s.reorders
}

// SetViewport changes the viewport size, as a host reflow would.
func (s *Strip) SetViewport(viewport loopscroll.Vector) {
	s.viewport = viewport
}

// Add appends an item to the layout.
func (s *Strip) Add(item *Item) {
	s.items = append(s.items, item)
}

// Remove drops the item with the given label, returning false if there's
// no such item.
func (s *Strip) Remove(label string) bool {
	for i, item := range s.items {
		if item.Label == label {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Labels returns the item labels in layout order.
func (s *Strip) Labels() []string {
	labels := make([]string, len(s.items))
	for i, item := range s.items {
		labels[i] = item.Label
	}
	return labels
}

// Placements returns where every item currently is, in layout order.
func (s *Strip) Placements() []Placement {
	placements := make([]Placement, len(s.items))
	offset := s.position.Component(s.axis)
	for i, item := range s.items {
		extent := item.Size.Component(s.axis)
		placements[i] = Placement{Item: item, Offset: offset, Extent: extent}
		offset += extent + s.spacing
	}
	return placements
}

// Visible returns the placements of the items overlapping the viewport.
func (s *Strip) Visible() []Placement {
	viewport := s.viewport.Component(s.axis)
	visible := make([]Placement, 0)
	for _, placement := range s.Placements() {
		if placement.Offset+placement.Extent > 0 && placement.Offset < viewport {
			visible = append(visible, placement)
		}
	}
	return visible
}

// Covered returns true if the items span the whole viewport.
func (s *Strip) Covered() bool {
	placements := s.Placements()
	if len(placements) == 0 {
		return false
	}
	first := placements[0]
	last := placements[len(placements)-1]
	return first.Offset <= 0 && last.Offset+last.Extent+s.spacing >= s.viewport.Component(s.axis)
}

// Add the given amounts to a vector, along and across the axis.
func (s *Strip) grow(v loopscroll.Vector, along, across float64) loopscroll.Vector {
	if s.axis == loopscroll.Vertical {
		return loopscroll.Vector{X: max(v.X, across), Y: v.Y + along}
	}
	return loopscroll.Vector{X: v.X + along, Y: max(v.Y, across)}
}

// Return the component of v across the axis.
func (s *Strip) cross(v loopscroll.Vector) float64 {
	if s.axis == loopscroll.Vertical {
		return v.X
	}
	return v.Y
}
