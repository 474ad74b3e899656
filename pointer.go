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
	"github.com/elliotchance/orderedmap/v2"
)

// Track the pointers currently pressed, in press order. Only the pointer
// pressed while no other one was down captures the drag: any pointer
// pressed afterwards is a secondary one and never drives the content, even
// after the capturing pointer is released.
type pointers struct {
	pressed  *orderedmap.OrderedMap[int, Vector] // Last known positions by pointer ID.
	primary  int                                 // ID of the capturing pointer.
	captured bool                                // Whether the primary pointer is still down.
}

func newPointers() *pointers {
	return &pointers{
		pressed: orderedmap.NewOrderedMap[int, Vector](),
	}
}

// Register a pressed pointer, returning true if it captures the drag.
func (p *pointers) Press(id int, position Vector) bool {
	p.pressed.Set(id, position)
	if p.captured {
		return false
	}
	if front := p.pressed.Front(); front == nil || front.Key != id {
		return false
	}
	p.primary = id
	p.captured = true
	return true
}

// Update the position of a pressed pointer, returning true if it's the
// capturing one.
func (p *pointers) Move(id int, position Vector) bool {
	if _, ok := p.pressed.Get(id); !ok {
		return false
	}
	p.pressed.Set(id, position)
	return p.captured && id == p.primary
}

// Forget a released pointer, returning true if it was the capturing one.
func (p *pointers) Release(id int) bool {
	if !p.pressed.Delete(id) {
		return false
	}
	if p.captured && id == p.primary {
		p.captured = false
		return true
	}
	return false
}

// Len returns the number of pressed pointers.
func (p *pointers) Len() int {
	return p.pressed.Len()
}

// Reset forgets all pointers.
func (p *pointers) Reset() {
	p.pressed = orderedmap.NewOrderedMap[int, Vector]()
	p.captured = false
}
