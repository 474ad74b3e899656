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

// Package loop implements an ordered list whose logical start can be
// rotated in constant time, without moving any element.
package loop

import "slices"

// List is an ordered sequence of values laid out in a flat storage slice,
// plus a start index. Logical index i maps to storage index
// (start+i) mod Len().
//
// Every structural change bumps the list version, so iterators created
// before the change can detect that they went stale.
//
// A List is not concurrency-safe.
type List[T any] struct {
	items   []T    // Storage, in insertion order.
	start   int    // Storage index of the logical head.
	version uint64 // Bumped on every mutation.
}

// New creates a list holding a copy of the given items, whose logical head
// is the item at the given storage index (reduced modulo the length).
func New[T any](items []T, start int) *List[T] {
	list := &List[T]{
		items: slices.Clone(items),
	}
	list.start = list.wrap(start)
	return list
}

// Len returns the number of items in the list.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Start returns the storage index of the logical head.
func (l *List[T]) Start() int {
	return l.start
}

// Version returns the current mutation counter.
func (l *List[T]) Version() uint64 {
	return l.version
}

// Get returns the item at logical index i. Out of range indexes wrap
// around; an empty list yields the zero value.
func (l *List[T]) Get(i int) T {
	if len(l.items) == 0 {
		var zero T
		return zero
	}
	return l.items[l.storage(i)]
}

// Set replaces the item at logical index i. It's a no-op on an empty list.
func (l *List[T]) Set(i int, value T) {
	if len(l.items) == 0 {
		return
	}
	l.items[l.storage(i)] = value
	l.version++
}

// Rotate moves the logical head by delta positions. Positive values make
// the current head the tail, negative values do the opposite.
//
// Rotations that leave the head where it was, like a zero delta or a full
// cycle, don't bump the version.
func (l *List[T]) Rotate(delta int) {
	l.SetStart(l.start + delta)
}

// SetStart makes the item at the given storage index the logical head.
func (l *List[T]) SetStart(index int) {
	index = l.wrap(index)
	if index == l.start {
		return
	}
	l.start = index
	l.version++
}

// Append adds an item at the logical end of the list.
func (l *List[T]) Append(value T) {
	l.items = slices.Insert(l.items, l.start, value)
	l.start = l.wrap(l.start + 1)
	l.version++
}

// Insert adds an item so that it ends up at logical index i, shifting the
// following items by one. An index equal to Len() appends.
func (l *List[T]) Insert(i int, value T) {
	if i == len(l.items) {
		l.Append(value)
		return
	}
	index := l.storage(i)
	l.items = slices.Insert(l.items, index, value)
	if index < l.start {
		l.start++
	}
	l.version++
}

// RemoveAt removes and returns the item at logical index i. The relative
// order of all other items is preserved.
func (l *List[T]) RemoveAt(i int) T {
	var zero T
	if len(l.items) == 0 {
		return zero
	}
	index := l.storage(i)
	value := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	if index < l.start {
		l.start--
	}
	l.start = l.wrap(l.start)
	l.version++
	return value
}

// IndexFunc returns the logical index of the first item satisfying f, or -1.
func (l *List[T]) IndexFunc(f func(T) bool) int {
	index := slices.IndexFunc(l.items, f)
	if index < 0 {
		return index
	}
	return l.wrap(index - l.start)
}

// Clear removes all items.
func (l *List[T]) Clear() {
	l.items = l.items[:0]
	l.start = 0
	l.version++
}

// Slice returns a copy of the items in logical order.
func (l *List[T]) Slice() []T {
	items := make([]T, 0, len(l.items))
	items = append(items, l.items[l.start:]...)
	return append(items, l.items[:l.start]...)
}

// Raw returns a copy of the items in storage order.
func (l *List[T]) Raw() []T {
	return slices.Clone(l.items)
}

// Iter returns an iterator over the items in logical order, bound to the
// current version of the list.
func (l *List[T]) Iter() *Iterator[T] {
	return newIterator(l)
}

// Translate a logical index into a storage index.
func (l *List[T]) storage(i int) int {
	return l.wrap(l.start + i)
}

func (l *List[T]) wrap(i int) int {
	return Wrap(i, 0, len(l.items))
}
