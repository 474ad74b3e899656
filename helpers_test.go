package loopscroll_test

import (
	"fmt"
	"testing"

	"github.com/CanonicalLtd/loopscroll"
	"github.com/CanonicalLtd/loopscroll/internal/strip"
	"github.com/stretchr/testify/require"
)

// Create a new controller for the given strip, logging to the test output.
func newController(t *testing.T, s *strip.Strip, options ...loopscroll.Option) *loopscroll.Controller[*strip.Item] {
	logFunc := func(level, message string) {
		t.Logf("%s: %s", level, message)
	}
	options = append([]loopscroll.Option{
		loopscroll.LogFunc(logFunc),
		loopscroll.LogLevel("TRACE"),
	}, options...)

	c, err := loopscroll.New[*strip.Item](s, s, options...)
	require.NoError(t, err)

	return c
}

// Drive the primary pointer along the horizontal axis.
func press(c *loopscroll.Controller[*strip.Item], x float64) {
	c.HandlePointer(pointerEvent(loopscroll.PointerDown, 1, x))
}

func move(c *loopscroll.Controller[*strip.Item], x float64) {
	c.HandlePointer(pointerEvent(loopscroll.PointerMove, 1, x))
}

func release(c *loopscroll.Controller[*strip.Item], x float64) {
	c.HandlePointer(pointerEvent(loopscroll.PointerUp, 1, x))
}

func pointerEvent(kind loopscroll.EventKind, pointer int, x float64) loopscroll.PointerEvent {
	return loopscroll.PointerEvent{
		Kind:     kind,
		Pointer:  pointer,
		Button:   loopscroll.ButtonPrimary,
		Position: loopscroll.Vector{X: x},
	}
}

// Return the offsets of all items, by label.
func offsets(s *strip.Strip) map[string]float64 {
	offsets := make(map[string]float64)
	for _, placement := range s.Placements() {
		offsets[placement.Item.Label] = placement.Offset
	}
	return offsets
}

func itemLabels(items []*strip.Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return labels
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
