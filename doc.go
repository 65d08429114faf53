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

// Package lazyid provides a process-wide unique 64-bit identifier that
// assigns itself a value on first use rather than on construction.
//
// The usual way to give a type a per-instance id is a global counter that
// every constructor increments. That works until you want instances of the
// type in package-level variables: now the constructor has to run at init
// time, or the field has to hide behind sync.Once or a lazy-cell wrapper,
// and every read of the id pays for that wrapper's synchronization.
//
// lazyid removes the constructor from the picture entirely. The zero value
// of ID is a valid, unresolved identifier:
//
//	type Thing struct {
//	    id lazyid.ID
//	    // other fields ...
//	}
//
//	var wellKnown Thing // no constructor, no init cost
//
// The instance commits to a concrete value the first time anything observes
// it (a Value call, an Equal, a String), and from then on every observer,
// on every goroutine, sees that same value.
//
// # Design
//
// Two pieces, both small:
//
//   - A process-wide sequence counter. A single atomic fetch-and-increment
//     hands out sequence numbers 1, 2, 3, ... Emitted id values are the
//     sequence number mixed through an odd multiplicative constant, which
//     keeps them unique, non-zero, and non-sequential (see below).
//
//   - The ID cell. Storage is one atomic uint64 where 0 is reserved to
//     mean "not resolved yet". Resolution loads the cell; a non-zero value
//     is the answer. On zero, the caller draws a fresh value from the
//     counter and tries to install it with a single compare-and-swap
//     against 0. If the swap fails another goroutine has already resolved
//     this instance, so the caller re-reads and returns the winner's
//     value; the drawn candidate is simply discarded, never reused. Ids
//     are unique, not dense.
//
// There is no generic lazy-cell here on purpose. A reusable "run this
// closure once" cell has to block latecomers while the closure runs, and
// that lock is exactly what this package exists to avoid. Fetching one
// integer and committing it needs no such window: a loser of the race can
// return immediately, because the winner's value is already in the cell.
//
// # Why mixed values
//
// Raw sequence numbers would tempt callers into using ids as array indexes
// or reading meaning into adjacency. Multiplying by an odd constant is a
// bijection on the 64-bit integers, so uniqueness is preserved exactly,
// while consecutive allocations land far apart. The only input that maps
// to 0 is 0 itself, which makes the reserved unresolved marker unreachable
// from any real sequence number. The inverse constant converts an id back
// to its allocation sequence number; GoString prints both, and Sequence
// exposes the conversion.
//
// # Concurrency model
//
// Every operation is lock-free and non-blocking:
//
//   - The read of an already-resolved ID is one atomic load.
//   - First resolution is one counter increment plus one compare-and-swap;
//     a failed swap means another goroutine succeeded, so progress is
//     system-wide, not merely per-goroutine.
//   - The counter is mutated only by its fetch-and-increment; nothing else
//     writes it.
//
// No mutexes, condition variables, or goroutine parking anywhere, and no
// heap allocation on any observation path.
//
// Observing an ID fixes its value as a side effect. Equal, Compare,
// String, GoString and Sequence all resolve first; two never-observed
// instances do not have values until something looks.
//
// # Counter exhaustion
//
// The sequence counter wraps after 2^64 draws. At one allocation per
// nanosecond that takes on the order of three centuries of uninterrupted
// allocation in a single process, so the hot path carries no overflow
// check. The draw loop does skip the single post-wrap candidate that would
// mix to the reserved zero marker, so even a wrapped counter never emits
// the unresolved sentinel.
//
// # Scope
//
// lazyid is intentionally small. It only solves one job:
//
//	"Give this instance a process-unique 64-bit id, without making its
//	 construction pay for it."
//
// Ids are not unique across processes or runs, not unguessable, not
// persisted, and not recycled. Cross-process identity, random ids, and
// distributed id schemes belong to other layers.
package lazyid
