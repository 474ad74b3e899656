package gesture

import (
	"fmt"

	"github.com/ryanfaerman/fsm"
)

// Possible gesture states.
const (
	Idle     = fsm.State("idle")     // Content at rest.
	Dragging = fsm.State("dragging") // The primary pointer is dragging the content.
	Inertia  = fsm.State("inertia")  // Released with residual velocity.
)

// Gesture tracks the lifecycle of a drag gesture, from the pointer going
// down to the content coming to rest.
type Gesture struct {
	state   *state
	machine *fsm.Machine
}

// New creates a new gesture in the Idle state.
func New() *Gesture {
	state := &state{state: Idle}
	return &Gesture{
		state: state,
		machine: &fsm.Machine{
			Subject: state,
			Rules:   newRules(),
		},
	}
}

func (g *Gesture) String() string {
	return string(g.state.CurrentState())
}

// State returns the current state.
func (g *Gesture) State() fsm.State {
	return g.state.CurrentState()
}

// Is returns true if the gesture is in the given state.
func (g *Gesture) Is(state fsm.State) bool {
	return g.state.CurrentState() == state
}

// Begin starts dragging, either from rest or interrupting inertia.
func (g *Gesture) Begin() {
	g.transition(Dragging)
}

// Release ends the drag. The gesture keeps moving by inertia if the
// content still has velocity, otherwise it goes back to rest.
func (g *Gesture) Release(moving bool) {
	if moving {
		g.transition(Inertia)
		return
	}
	g.transition(Idle)
}

// Settle marks the end of inertial motion. It's a no-op if the gesture is
// already at rest.
func (g *Gesture) Settle() {
	if g.Is(Idle) {
		return
	}
	g.transition(Idle)
}

// Cancel drops back to rest from whatever state.
func (g *Gesture) Cancel() {
	if g.Is(Idle) {
		return
	}
	g.transition(Idle)
}

// Try to transition to the given state. If the transition is invalid,
// panic out.
func (g *Gesture) transition(state fsm.State) {
	if err := g.machine.Transition(state); err != nil {
		panic(fmt.Sprintf("invalid %s -> %s transition", g.state.CurrentState(), state))
	}
}

// Map of all valid state transitions.
var transitions = map[fsm.State][]fsm.State{
	Idle:     {Dragging},
	Dragging: {Idle, Inertia},
	Inertia:  {Dragging, Idle},
}

// Capture valid state transitions within a gesture.
func newRules() *fsm.Ruleset {
	rules := &fsm.Ruleset{}

	for o, states := range transitions {
		for _, e := range states {
			rules.AddTransition(fsm.T{O: o, E: e})
		}
	}

	return rules
}

// Track the state of a gesture. Implements the fsm.Stater interface.
type state struct {
	state fsm.State
}

// CurrentState returns the current state, implementing fsm.Stater.
func (s *state) CurrentState() fsm.State {
	return s.state
}

// SetState switches the current state, implementing fsm.Stater.
func (s *state) SetState(state fsm.State) {
	s.state = state
}
