package cmd

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/CanonicalLtd/loopscroll"
	"github.com/CanonicalLtd/loopscroll/internal/strip"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Return a new simulate command.
func newSimulate() *cobra.Command {
	var drags []float64
	s := &simulation{}

	simulate := &cobra.Command{
		Use:   "simulate",
		Short: "Drag a looping list of uniform items and print its state after each drag.",
		Long: `Create a looping list of uniform items and drag it by the given amounts,
one drag after the other, printing the state of the list after each one.

For example, to drag 5 items of size 100 back and forth in a viewport of
size 250:

  loopscroll simulate --drag=-450 --drag=260`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.Run(cmd.OutOrStdout(), cmd.ErrOrStderr(), drags)
		},
	}

	flags := simulate.Flags()
	flags.Float64SliceVarP(&drags, "drag", "d", nil, "drag the content by the given amount (repeatable)")
	flags.IntVarP(&s.items, "items", "n", 5, "number of items")
	flags.Float64Var(&s.extent, "extent", 100, "size of each item along the axis")
	flags.Float64Var(&s.viewport, "viewport", 250, "size of the viewport along the axis")
	flags.Float64Var(&s.spacing, "spacing", 0, "gap between adjacent items")
	flags.StringVarP(&s.axis, "axis", "a", "horizontal", "scroll axis, either horizontal or vertical")
	flags.IntVarP(&s.moves, "moves", "m", 10, "number of pointer moves per drag")
	flags.BoolVar(&s.inertia, "inertia", false, "keep moving after each drag is released")
	flags.IntVar(&s.fps, "fps", 60, "simulated frames per second")
	flags.BoolVarP(&s.trace, "trace", "t", false, "print the most recent rearrangements at the end")
	flags.StringVar(&s.logLevel, "log-level", "INFO", "log level: TRACE, DEBUG, INFO, ERROR or PANIC")
	flags.StringVar(&s.logFormat, "log-format", "stdlib", "log backend, either stdlib or zap")
	flags.StringSliceVar(&s.logOrigins, "log-origin", nil, "only log messages from the given origin (repeatable, stdlib backend only)")

	return simulate
}

// Inertial motion is cut short after this many simulated seconds.
const maxFlingSeconds = 60

// Parameters of a headless simulation.
type simulation struct {
	items      int
	extent     float64
	viewport   float64
	spacing    float64
	axis       string
	moves      int
	inertia    bool
	fps        int
	trace      bool
	logLevel   string
	logFormat  string
	logOrigins []string
}

// Run the simulation, printing states to out and logs to errOut.
func (s *simulation) Run(out, errOut io.Writer, drags []float64) error {
	if s.items < 0 {
		return errors.Errorf("negative number of items %d", s.items)
	}
	if s.moves < 1 {
		return errors.New("at least one move per drag is needed")
	}
	if s.fps < 1 {
		return errors.New("at least one frame per second is needed")
	}

	axis, err := loopscroll.ParseAxis(s.axis)
	if err != nil {
		return err
	}

	options, err := logOptions(errOut, s.logFormat, s.logLevel, log.LstdFlags, s.logOrigins)
	if err != nil {
		return err
	}
	options = append(options, loopscroll.Direction(axis), loopscroll.InertiaEnabled(s.inertia))

	host := strip.Uniform(axis, s.items, s.extent, s.viewport, s.spacing)
	c, err := loopscroll.New[*strip.Item](host, host, options...)
	if err != nil {
		return errors.Wrap(err, "failed to create controller")
	}

	s.report(out, "start", c, host)

	dt := 1 / float64(s.fps)
	for _, drag := range drags {
		c.HandlePointer(pointerEvent(loopscroll.PointerDown, axis, 0))
		for i := 1; i <= s.moves; i++ {
			c.HandlePointer(pointerEvent(loopscroll.PointerMove, axis, drag*float64(i)/float64(s.moves)))
			c.Update(dt)
		}
		c.HandlePointer(pointerEvent(loopscroll.PointerUp, axis, drag))

		for frame := 0; c.State() == loopscroll.Inertia && frame < maxFlingSeconds*s.fps; frame++ {
			c.Update(dt)
		}

		s.report(out, fmt.Sprintf("drag %g", drag), c, host)
	}

	if s.trace {
		fmt.Fprint(out, c.Trace())
	}

	return nil
}

func (s *simulation) report(out io.Writer, label string, c *loopscroll.Controller[*strip.Item], host *strip.Strip) {
	fmt.Fprintf(
		out, "%s: position=%g start=%d sum=%g depth=%d loop=%.3f order=%s\n",
		label, c.Position(), c.Start(), c.OffsetSum(), c.LedgerDepth(), c.LoopPosition(),
		strings.Join(host.Labels(), " "))
}

// Return an event for the primary pointer at the given position along the
// axis.
func pointerEvent(kind loopscroll.EventKind, axis loopscroll.Axis, position float64) loopscroll.PointerEvent {
	return loopscroll.PointerEvent{
		Kind:     kind,
		Button:   loopscroll.ButtonPrimary,
		Position: loopscroll.AxisVector(axis, position),
	}
}
