package loopscroll_test

import (
	"testing"

	"github.com/CanonicalLtd/loopscroll"
	"github.com/mpvl/subtest"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAxis(t *testing.T) {
	cases := []struct {
		name string
		axis loopscroll.Axis
	}{
		{"horizontal", loopscroll.Horizontal},
		{"H", loopscroll.Horizontal},
		{"x", loopscroll.Horizontal},
		{"Vertical", loopscroll.Vertical},
		{"v", loopscroll.Vertical},
		{"y", loopscroll.Vertical},
	}
	for _, c := range cases {
		subtest.Run(t, c.name, func(t *testing.T) {
			axis, err := loopscroll.ParseAxis(c.name)
			require.NoError(t, err)
			assert.Equal(t, c.axis, axis)
		})
	}
}

func TestParseAxis_Unknown(t *testing.T) {
	_, err := loopscroll.ParseAxis("diagonal")
	assert.EqualError(t, err, "unknown axis 'diagonal': invalid option")
	assert.Equal(t, loopscroll.ErrInvalidOption, errors.Cause(err))
}

func TestAxis_String(t *testing.T) {
	assert.Equal(t, "horizontal", loopscroll.Horizontal.String())
	assert.Equal(t, "vertical", loopscroll.Vertical.String())
	assert.PanicsWithValue(t, "unknown axis: 2", func() { _ = loopscroll.Axis(2).String() })
}

func TestVector(t *testing.T) {
	v := loopscroll.Vector{X: 3, Y: 4}
	assert.Equal(t, 3.0, v.Component(loopscroll.Horizontal))
	assert.Equal(t, 4.0, v.Component(loopscroll.Vertical))
	assert.Equal(t, loopscroll.Vector{X: 5}, loopscroll.AxisVector(loopscroll.Horizontal, 5))
	assert.Equal(t, loopscroll.Vector{Y: 5}, loopscroll.AxisVector(loopscroll.Vertical, 5))
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "down", loopscroll.PointerDown.String())
	assert.Equal(t, "cancel", loopscroll.PointerCancel.String())
	assert.Equal(t, "kind(9)", loopscroll.EventKind(9).String())
}
