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

package loop

// Wrap reduces value into the half-open range [min, max) using floored
// modulo, so negative values wrap around from the top of the range.
//
// Ranges holding at most one value always yield min, which makes index
// arithmetic on empty and single-element lists safe.
func Wrap(value, min, max int) int {
	n := max - min
	if n <= 1 {
		return min
	}
	value = (value - min) % n
	if value < 0 {
		value += n
	}
	return value + min
}
