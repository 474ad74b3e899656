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

package loop

import "github.com/pkg/errors"

// ErrStale is returned by Iterator.Err when the list was modified while
// the iteration was in progress.
var ErrStale = errors.New("list was modified during iteration")

// Iterator walks a List in logical order. It holds a snapshot of the list
// version taken at creation time, and stops with ErrStale as soon as it
// notices that the list changed.
//
// Typical usage:
//
//	it := list.Iter()
//	for it.Next() {
//		use(it.Value())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator[T any] struct {
	list    *List[T]
	version uint64
	index   int
	err     error
}

func newIterator[T any](list *List[T]) *Iterator[T] {
	return &Iterator[T]{
		list:    list,
		version: list.version,
		index:   -1,
	}
}

// Next advances to the following item, returning false when the items are
// exhausted or the list went stale.
func (it *Iterator[T]) Next() bool {
	if !it.check() {
		return false
	}
	if it.index < it.list.Len() {
		it.index++
	}
	return it.index < it.list.Len()
}

// Index returns the logical index of the current item.
func (it *Iterator[T]) Index() int {
	return it.index
}

// Value returns the current item.
func (it *Iterator[T]) Value() T {
	return it.list.Get(it.index)
}

// Err returns ErrStale (wrapped with the versions involved) if the list was
// modified during the iteration, nil otherwise.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Reset rewinds the iterator to before the first item. A stale iterator
// stays stale.
func (it *Iterator[T]) Reset() {
	if !it.check() {
		return
	}
	it.index = -1
}

func (it *Iterator[T]) check() bool {
	if it.err != nil {
		return false
	}
	if it.list.version != it.version {
		it.err = errors.Wrapf(ErrStale, "iterator at version %d, list at %d", it.version, it.list.version)
		return false
	}
	return true
}
