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

package trace

import (
	"strings"
	"time"
)

// Tracer retains the most recent rearrangement entries in a fixed size
// circular buffer. Older entries are progressively discarded.
//
// A Tracer is not concurrency-safe.
type Tracer struct {
	next    slot // Where the next entry goes.
	entries []Entry
	count   int
	now     func() time.Time
	forward func(Entry)
}

// New creates a tracer retaining at most the given number of entries,
// which must be positive.
func New(retain int) *Tracer {
	if retain < 1 {
		panic("a tracer must retain at least one entry")
	}
	return &Tracer{
		next:    slot{size: retain},
		entries: make([]Entry, retain),
		now:     time.Now,
	}
}

// Forward sets a function that will be called with every new entry.
func (t *Tracer) Forward(f func(Entry)) {
	t.forward = f
}

// Record adds a new entry, stamping it with the current time.
func (t *Tracer) Record(entry Entry) {
	entry.Timestamp = t.now()

	t.entries[t.next.index] = entry
	t.next = t.next.at(1)
	if t.count < len(t.entries) {
		t.count++
	}

	if t.forward != nil {
		t.forward(entry)
	}
}

// Len returns the number of retained entries.
func (t *Tracer) Len() int {
	return t.count
}

// Entries returns the retained entries, oldest first.
func (t *Tracer) Entries() []Entry {
	entries := make([]Entry, t.count)
	oldest := t.next.at(-t.count)
	for i := range entries {
		entries[i] = t.entries[oldest.at(i).index]
	}
	return entries
}

// Reset drops all retained entries.
func (t *Tracer) Reset() {
	t.next = slot{size: len(t.entries)}
	t.count = 0
}

// String returns all retained entries, one per line, oldest first.
func (t *Tracer) String() string {
	var b strings.Builder
	for _, entry := range t.Entries() {
		b.WriteString(entry.String())
		b.WriteString("\n")
	}
	return b.String()
}
