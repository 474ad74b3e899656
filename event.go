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

import "fmt"

// EventKind tells apart the pointer events fed to a Controller.
type EventKind int

// Possible pointer event kinds.
const (
	PointerDown   EventKind = iota // Pointer pressed.
	PointerMove                    // Pointer moved while pressed.
	PointerUp                      // Pointer released.
	PointerCancel                  // Host lost the pointer, e.g. focus change.
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Button identifies the pointer button, or touch, that generated an event.
type Button int

// Possible buttons. Only ButtonPrimary drives the content.
const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a single pointer event, in viewport coordinates.
type PointerEvent struct {
	Kind     EventKind
	Pointer  int // Identifies the pointer across events, e.g. a touch ID.
	Button   Button
	Position Vector
}
