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

package trace

import "github.com/CanonicalLtd/loopscroll/loop"

// A slot points at an entry of the tracer ring.
type slot struct {
	index int
	size  int // Number of entries in the ring.
}

// Return the slot delta entries away from this one, wrapping around the
// ring in both directions.
func (s slot) at(delta int) slot {
	return slot{index: loop.Wrap(s.index+delta, 0, s.size), size: s.size}
}
