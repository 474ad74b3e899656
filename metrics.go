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
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Possible values of the direction label of the wrap steps counter.
const (
	directionForward  = "forward"  // The head item wrapped to the tail.
	directionBackward = "backward" // The tail item wrapped to the head.
)

// Collectors exposed by a controller.
type metrics struct {
	steps     *prometheus.CounterVec // Wrap steps, by direction.
	refreshes prometheus.Counter     // Rebuilds of the item list.
	skipped   prometheus.Counter     // Position updates without enough content to loop.
	depth     prometheus.Gauge       // Outstanding ledger entries.
}

// Create the controller collectors and register them against the given
// registerer, if not nil.
func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "loopscroll_wrap_steps_total",
			Help: "The total number of items wrapped from one edge of the content to the other",
		}, []string{"direction"}),
		refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loopscroll_refreshes_total",
			Help: "The total number of times the looping items were rebuilt",
		}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "loopscroll_unloopable_updates_total",
			Help: "The total number of position updates applied without looping, for lack of content",
		}),
		depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "loopscroll_ledger_depth",
			Help: "The number of outstanding wrap corrections",
		}),
	}
	if registerer == nil {
		return m, nil
	}
	for _, collector := range []prometheus.Collector{m.steps, m.refreshes, m.skipped, m.depth} {
		if err := registerer.Register(collector); err != nil {
			return nil, errors.Wrap(err, "failed to register metrics")
		}
	}
	return m, nil
}

// Account for a wrap of the given number of steps.
func (m *metrics) wrapped(steps int) {
	if steps < 0 {
		m.steps.WithLabelValues(directionForward).Add(float64(-steps))
	} else {
		m.steps.WithLabelValues(directionBackward).Add(float64(steps))
	}
}
