package loopscroll_test

import (
	"strings"
	"testing"

	"github.com/CanonicalLtd/loopscroll"
	"github.com/CanonicalLtd/loopscroll/internal/strip"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Wraps(t *testing.T) {
	registry := prometheus.NewPedanticRegistry()
	s := strip.Uniform(loopscroll.Horizontal, 5, 100, 250, 0)
	c := newController(t, s, loopscroll.Metrics(registry))

	c.ScrollBy(-450)
	c.ScrollBy(200)
	c.ScrollBy(100)

	expected := `
# HELP loopscroll_ledger_depth The number of outstanding wrap corrections
# TYPE loopscroll_ledger_depth gauge
loopscroll_ledger_depth 1
# HELP loopscroll_refreshes_total The total number of times the looping items were rebuilt
# TYPE loopscroll_refreshes_total counter
loopscroll_refreshes_total 1
# HELP loopscroll_unloopable_updates_total The total number of position updates applied without looping, for lack of content
# TYPE loopscroll_unloopable_updates_total counter
loopscroll_unloopable_updates_total 0
# HELP loopscroll_wrap_steps_total The total number of items wrapped from one edge of the content to the other
# TYPE loopscroll_wrap_steps_total counter
loopscroll_wrap_steps_total{direction="backward"} 1
loopscroll_wrap_steps_total{direction="forward"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected)))
}

func TestMetrics_Unloopable(t *testing.T) {
	registry := prometheus.NewRegistry()
	s := strip.Uniform(loopscroll.Horizontal, 2, 100, 250, 0)
	c := newController(t, s, loopscroll.Metrics(registry))

	c.ScrollBy(-450)
	c.Refresh()

	expected := `
# HELP loopscroll_refreshes_total The total number of times the looping items were rebuilt
# TYPE loopscroll_refreshes_total counter
loopscroll_refreshes_total 2
# HELP loopscroll_unloopable_updates_total The total number of position updates applied without looping, for lack of content
# TYPE loopscroll_unloopable_updates_total counter
loopscroll_unloopable_updates_total 3
`
	names := []string{"loopscroll_refreshes_total", "loopscroll_unloopable_updates_total"}
	assert.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), names...))
}

// Two controllers can't share a registerer.
func TestMetrics_AlreadyRegistered(t *testing.T) {
	registry := prometheus.NewRegistry()
	s := strip.Uniform(loopscroll.Horizontal, 5, 100, 250, 0)

	_, err := loopscroll.New[*strip.Item](s, s, loopscroll.Metrics(registry))
	require.NoError(t, err)

	_, err = loopscroll.New[*strip.Item](s, s, loopscroll.Metrics(registry))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register metrics")
}
