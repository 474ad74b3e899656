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
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Axis selects the dimension along which the content scrolls and loops.
type Axis int

// Possible scroll axes.
const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		panic(fmt.Sprintf("unknown axis: %d", a))
	}
}

// ParseAxis returns the axis with the given name.
func ParseAxis(name string) (Axis, error) {
	switch strings.ToLower(name) {
	case "horizontal", "h", "x":
		return Horizontal, nil
	case "vertical", "v", "y":
		return Vertical, nil
	}
	return Horizontal, errors.Wrapf(ErrInvalidOption, "unknown axis '%s'", name)
}

// Vector is a two-dimensional size or position, as measured by the host.
type Vector struct {
	X float64
	Y float64
}

// AxisVector returns a vector whose component along the given axis is v,
// and zero along the other one.
func AxisVector(axis Axis, v float64) Vector {
	if axis == Vertical {
		return Vector{Y: v}
	}
	return Vector{X: v}
}

// Component returns the component of the vector along the given axis.
func (v Vector) Component(axis Axis) float64 {
	if axis == Vertical {
		return v.Y
	}
	return v.X
}
