/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package lazyid

import (
	"errors"
	"strconv"
	"sync/atomic"

	"dirpx.dev/lazyid/apis"
)

// ErrReservedValue is returned when a caller tries to construct an ID from
// the value 0, which is reserved to mark unresolved identifiers.
var ErrReservedValue = errors.New("lazyid: value 0 is reserved for unresolved identifiers")

// ID is a process-unique 64-bit identifier that resolves to a concrete
// value on first observation.
//
// The zero value is a valid, unresolved ID. Declaring an ID field, a
// package-level ID variable, or an array of IDs performs no work and
// touches no shared state; the value is drawn from the package counter the
// first time the instance is observed.
//
// ID contains an atomic cell and must not be copied after first use.
// Embed it by value in the owning struct and hand it around as *ID; use
// Clone for a resolved copy.
//
// All methods are safe for concurrent use on the same instance, and all
// of them resolve the value as a side effect if it is not yet fixed.
type ID struct {
	v atomic.Uint64
}

// An ID exposes its own instance identity.
var _ apis.Identified = (*ID)(nil)

// New returns an eagerly resolved ID.
//
// Prefer New when the instance is built at runtime anyway: it skips the
// unresolved state entirely, so later observations never take the
// resolution path. The zero value remains the right choice for package-level
// variables and composite literals.
func New() *ID {
	id := &ID{}
	id.v.Store(nextValue())
	return id
}

// FromValue constructs an ID carrying the given fixed value.
//
// This is an escape hatch for rehydrating an id that was previously
// obtained from Value. It compromises the uniqueness contract: the result
// may collide with an id this process has already handed out or will hand
// out later. Returns ErrReservedValue if v is 0.
func FromValue(v uint64) (*ID, error) {
	if v == 0 {
		return nil, ErrReservedValue
	}
	id := &ID{}
	id.v.Store(v)
	return id, nil
}

// Value returns the identifier's value, resolving it first if needed.
//
// Once any call on any goroutine has returned, every subsequent call
// returns that same value. The resolved value is never 0.
func (id *ID) Value() uint64 {
	// Fast path: already resolved. A single atomic load.
	if v := id.v.Load(); v != 0 {
		return v
	}
	return id.resolve()
}

// resolve is the first-observation slow path, kept out of Value so the
// fast path stays inlinable.
func (id *ID) resolve() uint64 {
	v := nextValue()
	if id.v.CompareAndSwap(0, v) {
		return v
	}
	// Another goroutine committed first; its value is already in the cell,
	// so no retry is needed. The candidate drawn above goes unused: ids
	// are unique, not dense.
	return id.v.Load()
}

// InstanceID returns the resolved value. It exists so owner types that
// embed ID satisfy apis.Identified through method promotion.
func (id *ID) InstanceID() uint64 {
	return id.Value()
}

// Clone returns a new resolved ID carrying the same value as id.
//
// ID is not copyable, so Clone is the way to duplicate one. The copy
// behaves as if it had been resolved eagerly to id's value; cloning an
// unresolved ID resolves it first.
func (id *ID) Clone() *ID {
	c := &ID{}
	c.v.Store(id.Value())
	return c
}

// Sequence returns the allocation sequence number of the resolved value:
// 1 for the first id drawn in this process, 2 for the second, and so on.
// Useful in debug output, where the mixed value itself is unreadable.
func (id *ID) Sequence() uint64 {
	return SequenceOf(id.Value())
}

// Equal reports whether id and o resolve to the same value.
func (id *ID) Equal(o *ID) bool {
	return id.Value() == o.Value()
}

// EqualValue reports whether id resolves to v.
func (id *ID) EqualValue(v uint64) bool {
	return id.Value() == v
}

// Compare three-way compares the resolved values of id and o, returning
// -1, 0 or +1. The order is stable but carries no meaning beyond identity;
// ids are not allocated in ascending value order.
func (id *ID) Compare(o *ID) int {
	a, b := id.Value(), o.Value()
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}

// String renders the resolved value in decimal.
func (id *ID) String() string {
	return strconv.FormatUint(id.Value(), 10)
}

// GoString renders the resolved value with its allocation sequence number,
// e.g. "lazyid.ID(0x9943d5bc34a9eeab; seq=7)". fmt uses it for %#v.
func (id *ID) GoString() string {
	v := id.Value()
	return "lazyid.ID(0x" + strconv.FormatUint(v, 16) +
		"; seq=" + strconv.FormatUint(SequenceOf(v), 10) + ")"
}
