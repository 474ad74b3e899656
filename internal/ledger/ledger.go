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

package ledger

// Ledger is a stack of positional corrections, one per wrap step, along
// with their running sum.
//
// The sum is recomputed from scratch after every change, so popping an
// entry restores exactly the sum observed before it was pushed.
type Ledger struct {
	entries []float64
	sum     float64
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		entries: make([]float64, 0),
	}
}

// Push appends a new correction.
func (l *Ledger) Push(delta float64) {
	l.entries = append(l.entries, delta)
	l.refresh()
}

// Pop removes the most recent correction and returns it. It returns false
// if the ledger is empty.
func (l *Ledger) Pop() (float64, bool) {
	n := len(l.entries)
	if n == 0 {
		return 0, false
	}
	delta := l.entries[n-1]
	l.entries = l.entries[:n-1]
	l.refresh()
	return delta, true
}

// Peek returns the most recent correction without removing it.
func (l *Ledger) Peek() (float64, bool) {
	n := len(l.entries)
	if n == 0 {
		return 0, false
	}
	return l.entries[n-1], true
}

// Record registers the correction of a single wrap step. If the step goes
// against the outstanding drift it cancels the most recent entry instead
// of growing the stack, and true is returned. Null corrections are not
// recorded.
func (l *Ledger) Record(delta float64) bool {
	if delta == 0 {
		return false
	}
	if len(l.entries) > 0 && l.sum*delta < 0 {
		l.Pop()
		return true
	}
	l.Push(delta)
	return false
}

// Sum returns the total of all corrections.
func (l *Ledger) Sum() float64 {
	return l.sum
}

// Len returns the number of outstanding corrections.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the corrections, oldest first.
func (l *Ledger) Entries() []float64 {
	entries := make([]float64, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Clear drops all corrections.
func (l *Ledger) Clear() {
	l.entries = l.entries[:0]
	l.sum = 0
}

func (l *Ledger) refresh() {
	l.sum = 0
	for _, delta := range l.entries {
		l.sum += delta
	}
}
