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

// Layout measures the host widgets. Values are queried fresh every time
// they are needed, since the host may reflow at any moment.
type Layout[T any] interface {
	// ViewportSize returns the size of the visible area.
	ViewportSize() Vector

	// ContentSize returns the size of the content laid out by the host,
	// without any trailing spacing.
	ContentSize() Vector

	// Spacing returns the gap the host leaves between adjacent items.
	Spacing() float64

	// ItemSize returns the size of the given item, or a zero vector if the
	// item has not been measured yet.
	ItemSize(item T) Vector
}

// Container is the host content holding the items. Items are laid out from
// the content origin in the order given to Reorder, and the whole content
// is displaced by the position given to SetPosition, relative to the
// viewport origin.
type Container[T any] interface {
	// Items returns the currently active items, in layout order.
	Items() []T

	// SetPosition moves the content relative to the viewport.
	SetPosition(position Vector)

	// Reorder changes the layout order of the items.
	Reorder(items []T)
}
