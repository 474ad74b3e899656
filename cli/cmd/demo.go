package cmd

import (
	"fmt"
	"log"
	"math"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/CanonicalLtd/loopscroll"
	"github.com/CanonicalLtd/loopscroll/internal/strip"
	"github.com/elliotchance/orderedmap/v2"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rivo/uniseg"
	"github.com/spf13/cobra"
)

// Return a new demo command.
func newDemo() *cobra.Command {
	d := &demo{}

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Drag a looping carousel of labels in the terminal.",
		Long: `Show a looping carousel of labels in the terminal. Drag it with the left
mouse button, scroll it with the wheel or the arrow keys. Press r to
refresh it, q or Esc to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := tcell.NewScreen()
			if err != nil {
				return errors.Wrap(err, "failed to create screen")
			}
			return d.Run(screen)
		},
	}

	flags := demo.Flags()
	flags.IntVarP(&d.items, "items", "n", 8, "number of labels in the carousel")
	flags.StringVarP(&d.axis, "axis", "a", "horizontal", "scroll axis, either horizontal or vertical")
	flags.BoolVar(&d.inertia, "inertia", true, "keep moving after a drag is released")
	flags.IntVar(&d.fps, "fps", 60, "frames per second")
	flags.StringVar(&d.metricsAddr, "metrics-addr", "", "serve prometheus metrics on the given address")
	flags.StringVar(&d.logFile, "log-file", "", "write log messages to the given file")
	flags.StringVar(&d.logLevel, "log-level", "INFO", "log level: TRACE, DEBUG, INFO, ERROR or PANIC")
	flags.StringSliceVar(&d.logOrigins, "log-origin", nil, "only log messages from the given origin (repeatable)")

	return demo
}

// Parameters of the terminal demo.
type demo struct {
	items       int
	axis        string
	inertia     bool
	fps         int
	metricsAddr string
	logFile     string
	logLevel    string
	logOrigins  []string
}

// Run the demo on the given screen until the user quits.
func (d *demo) Run(screen tcell.Screen) error {
	if d.fps < 1 {
		return errors.New("at least one frame per second is needed")
	}

	axis, err := loopscroll.ParseAxis(d.axis)
	if err != nil {
		return err
	}

	options := []loopscroll.Option{
		loopscroll.Direction(axis),
		loopscroll.InertiaEnabled(d.inertia),
		discardLog(),
	}

	if d.logFile != "" {
		file, err := os.Create(d.logFile)
		if err != nil {
			return errors.Wrap(err, "failed to create log file")
		}
		defer file.Close()

		logging, err := logOptions(file, "stdlib", d.logLevel, log.LstdFlags, d.logOrigins)
		if err != nil {
			return err
		}
		options = append(options, logging...)
	}

	var frames prometheus.Counter
	var server *http.Server
	var listener net.Listener
	if d.metricsAddr != "" {
		registry := prometheus.NewRegistry()
		options = append(options, loopscroll.Metrics(registry))
		frames = promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "loopscroll_demo_frames_total",
			Help: "The total number of frames drawn by the terminal demo",
		})

		listener, err = net.Listen("tcp", d.metricsAddr)
		if err != nil {
			return errors.Wrap(err, "failed to listen for metrics requests")
		}
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server = &http.Server{Handler: mux}
		defer server.Close()
	}

	if err := screen.Init(); err != nil {
		if listener != nil {
			listener.Close()
		}
		return errors.Wrap(err, "failed to initialize screen")
	}
	defer screen.Fini()
	screen.EnableMouse()

	if server != nil {
		go serve(screen, server, listener)
	}

	carousel, err := newCarousel(screen, axis, d.items, options...)
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	defer close(stop)
	go tick(screen, time.Second/time.Duration(d.fps), stop)

	last := time.Now()
	for {
		event := screen.PollEvent()
		if event == nil {
			return nil
		}
		if interrupt, ok := event.(*tcell.EventInterrupt); ok {
			now := interrupt.When()
			carousel.Update(now.Sub(last).Seconds())
			last = now
			if frames != nil {
				frames.Inc()
			}
			continue
		}
		if failure, ok := event.(*tcell.EventError); ok {
			return errors.Wrap(failure, "metrics server failed")
		}
		if carousel.Handle(event) {
			return nil
		}
	}
}

// Serve metrics requests until the server is closed, posting any other
// failure to the screen as an error event.
func serve(screen tcell.Screen, server *http.Server, listener net.Listener) {
	err := server.Serve(listener)
	if err != nil && err != http.ErrServerClosed {
		screen.PostEvent(tcell.NewEventError(err))
	}
}

// Post an interrupt event to the screen at every tick, until stopped.
//
// The controller is only ever touched by the event loop.
func tick(screen tcell.Screen, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// Catalogue of labels with their background colors, in display order.
func catalogue() *orderedmap.OrderedMap[string, tcell.Color] {
	labels := orderedmap.NewOrderedMap[string, tcell.Color]()
	labels.Set("apple", tcell.ColorRed)
	labels.Set("banana", tcell.ColorYellow)
	labels.Set("cherry", tcell.ColorFuchsia)
	labels.Set("date", tcell.ColorOlive)
	labels.Set("elderberry", tcell.ColorPurple)
	labels.Set("fig", tcell.ColorTeal)
	labels.Set("grape", tcell.ColorGreen)
	labels.Set("honeydew", tcell.ColorLime)
	labels.Set("kiwi", tcell.ColorAqua)
	labels.Set("lime", tcell.ColorSilver)
	labels.Set("りんご", tcell.ColorMaroon)
	labels.Set("🍊 orange", tcell.ColorNavy)
	return labels
}

// Tiles are padded by this many cells on each side of their label.
const tilePadding = 2

// Horizontal tiles are this many rows tall.
const tileHeight = 3

// A strip of labelled tiles drawn on a terminal screen.
type carousel struct {
	screen     tcell.Screen
	axis       loopscroll.Axis
	colors     *orderedmap.OrderedMap[string, tcell.Color]
	host       *strip.Strip
	controller *loopscroll.Controller[*strip.Item]
	pressed    bool // Whether the left button is down.
}

// Create a carousel with the first n labels of the catalogue, filling the
// screen along the given axis.
func newCarousel(screen tcell.Screen, axis loopscroll.Axis, n int, options ...loopscroll.Option) (*carousel, error) {
	colors := catalogue()

	items := make([]*strip.Item, 0, n)
	for el := colors.Front(); el != nil && len(items) < n; el = el.Next() {
		width := float64(uniseg.StringWidth(el.Key) + 2*tilePadding)
		size := loopscroll.Vector{X: width, Y: tileHeight}
		if axis == loopscroll.Vertical {
			size.Y = 1
		}
		items = append(items, &strip.Item{Label: el.Key, Size: size})
	}

	c := &carousel{
		screen: screen,
		axis:   axis,
		colors: colors,
		host:   strip.New(axis, viewport(screen), 1, items...),
	}

	controller, err := loopscroll.New[*strip.Item](c.host, c.host, options...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create controller")
	}
	c.controller = controller

	return c, nil
}

// Handle a screen event, returning true if the user asked to quit.
func (c *carousel) Handle(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventResize:
		c.host.SetViewport(viewport(c.screen))
		c.controller.ScrollBy(0)
		c.screen.Sync()
	case *tcell.EventKey:
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyLeft, tcell.KeyUp:
			c.controller.ScrollBy(1)
		case tcell.KeyRight, tcell.KeyDown:
			c.controller.ScrollBy(-1)
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q':
				return true
			case 'r':
				c.controller.Refresh()
			}
		}
	case *tcell.EventMouse:
		c.mouse(event)
	case *tcell.EventFocus:
		if !event.Focused {
			c.pressed = false
			c.controller.Disable()
		}
	}
	return false
}

// Translate a mouse event into pointer events for the controller.
func (c *carousel) mouse(event *tcell.EventMouse) {
	x, y := event.Position()
	position := loopscroll.Vector{X: float64(x), Y: float64(y)}
	buttons := event.Buttons()

	switch {
	case buttons&(tcell.WheelUp|tcell.WheelLeft) != 0:
		c.controller.ScrollBy(2)
	case buttons&(tcell.WheelDown|tcell.WheelRight) != 0:
		c.controller.ScrollBy(-2)
	case buttons&tcell.Button1 != 0:
		kind := loopscroll.PointerMove
		if !c.pressed {
			kind = loopscroll.PointerDown
			c.pressed = true
		}
		c.pointer(kind, loopscroll.ButtonPrimary, position)
	case buttons&tcell.Button2 != 0:
		c.pointer(loopscroll.PointerDown, loopscroll.ButtonSecondary, position)
	case buttons&tcell.Button3 != 0:
		c.pointer(loopscroll.PointerDown, loopscroll.ButtonMiddle, position)
	case c.pressed:
		c.pressed = false
		c.pointer(loopscroll.PointerUp, loopscroll.ButtonPrimary, position)
	}
}

func (c *carousel) pointer(kind loopscroll.EventKind, button loopscroll.Button, position loopscroll.Vector) {
	c.controller.HandlePointer(loopscroll.PointerEvent{
		Kind:     kind,
		Button:   button,
		Position: position,
	})
}

// Update advances the controller by dt seconds and redraws the screen.
func (c *carousel) Update(dt float64) {
	c.controller.Update(dt)
	c.Draw()
}

// Draw the visible tiles and a status line.
func (c *carousel) Draw() {
	c.screen.Clear()
	width, height := c.screen.Size()

	for _, placement := range c.host.Visible() {
		color, _ := c.colors.Get(placement.Item.Label)
		style := tcell.StyleDefault.Background(color).Foreground(tcell.ColorBlack)

		offset := int(math.Round(placement.Offset))
		extent := int(math.Round(placement.Extent))

		if c.axis == loopscroll.Vertical {
			if offset < 0 || offset >= height-1 {
				continue
			}
			fill(c.screen, 0, offset, width, 1, style)
			text(c.screen, tilePadding, offset, placement.Item.Label, style)
			continue
		}
		fill(c.screen, offset, 0, extent, tileHeight, style)
		text(c.screen, offset+tilePadding, tileHeight/2, placement.Item.Label, style)
	}

	status := fmt.Sprintf(
		"loop %.3f  start %d  sum %g  %s",
		c.controller.LoopPosition(), c.controller.Start(), c.controller.OffsetSum(), c.controller.State())
	text(c.screen, 0, height-1, status, tcell.StyleDefault)

	c.screen.Show()
}

// Return the size of the area available to tiles, leaving the bottom row
// to the status line.
func viewport(screen tcell.Screen) loopscroll.Vector {
	width, height := screen.Size()
	return loopscroll.Vector{X: float64(width), Y: float64(height - 1)}
}

// Fill a rectangle of cells with blanks of the given style.
func fill(screen tcell.Screen, x, y, width, height int, style tcell.Style) {
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// Draw the given text starting at the given cell, returning the column
// following the last drawn rune.
func text(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
