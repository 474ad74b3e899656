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

package ledger_test

import (
	"testing"

	"github.com/CanonicalLtd/loopscroll/internal/ledger"
	"github.com/mpvl/subtest"
	"github.com/stretchr/testify/assert"
)

func TestLedger_PushPop(t *testing.T) {
	l := ledger.New()
	l.Push(100)
	l.Push(50)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 150.0, l.Sum())

	delta, ok := l.Peek()
	assert.True(t, ok)
	assert.Equal(t, 50.0, delta)

	delta, ok = l.Pop()
	assert.True(t, ok)
	assert.Equal(t, 50.0, delta)
	assert.Equal(t, 100.0, l.Sum())
	assert.Equal(t, []float64{100}, l.Entries())
}

// Popping an empty ledger is a no-op.
func TestLedger_PopEmpty(t *testing.T) {
	l := ledger.New()
	_, ok := l.Pop()
	assert.False(t, ok)
	_, ok = l.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0.0, l.Sum())
}

// Popping restores the sum observed before the matching push, bit for bit.
func TestLedger_CancellationIsExact(t *testing.T) {
	l := ledger.New()
	for _, delta := range []float64{0.1, 0.2, 1e-9, 3.3} {
		l.Push(delta)
	}
	before := l.Sum()
	l.Push(0.7)
	l.Pop()
	assert.Equal(t, before, l.Sum())
}

func TestLedger_Record(t *testing.T) {
	cases := []struct {
		title   string
		deltas  []float64
		pops    []bool
		entries []float64
		sum     float64
	}{
		{
			`same direction grows`,
			[]float64{100, 100},
			[]bool{false, false},
			[]float64{100, 100},
			200,
		},
		{
			`reversal cancels`,
			[]float64{100, 100, -100},
			[]bool{false, false, true},
			[]float64{100},
			100,
		},
		{
			`full reversal overshoots`,
			[]float64{-50, 50, 50},
			[]bool{false, true, false},
			[]float64{50},
			50,
		},
		{
			`jitter stays bounded`,
			[]float64{80, -80, 80, -80, 80, -80},
			[]bool{false, true, false, true, false, true},
			[]float64{},
			0,
		},
		{
			`null corrections are dropped`,
			[]float64{0, 0, 100, 0, 0},
			[]bool{false, false, false, false, false},
			[]float64{100},
			100,
		},
	}
	for _, c := range cases {
		subtest.Run(t, c.title, func(t *testing.T) {
			l := ledger.New()
			for i, delta := range c.deltas {
				assert.Equal(t, c.pops[i], l.Record(delta), "step %d", i)
			}
			assert.Equal(t, c.entries, l.Entries())
			assert.Equal(t, c.sum, l.Sum())
		})
	}
}

func TestLedger_Clear(t *testing.T) {
	l := ledger.New()
	l.Push(1)
	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0.0, l.Sum())
}
