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
	"sync/atomic"

	"dirpx.dev/lazyid/apis"
)

// Mixing constants between sequence numbers and emitted id values.
// seqToID is odd, so multiplication by it is a bijection mod 2^64 whose
// only zero preimage is 0; idToSeq is its multiplicative inverse, so
// s * seqToID * idToSeq == s for every uint64 s.
const (
	seqToID = 6848199123282258749
	idToSeq = 0x1337_fe4415
)

// seq is the process-wide allocation counter. It starts at 0 and is
// advanced only by nextValue's fetch-and-increment; nothing else writes
// it. The first sequence number handed out is 1, keeping 0 (which mixes
// to the reserved unresolved marker) out of the domain.
var seq atomic.Uint64

// nextValue draws a fresh id value: the next sequence number, mixed.
// Every call consumes exactly one increment of seq; concurrent callers
// never receive the same value. The result is never 0.
func nextValue() uint64 {
	v := seq.Add(1) * seqToID
	for v == 0 {
		// seq wrapped to 0, which takes 2^64 draws. 0 is reserved, skip it.
		v = seq.Add(1) * seqToID
	}
	return v
}

// SequenceOf converts an id value back to its allocation sequence number.
// It is the inverse of the mixing applied by the counter: for an id drawn
// n-th in this process, SequenceOf(id.Value()) == n.
func SequenceOf(v uint64) uint64 {
	return v * idToSeq
}

// Source returns the process-wide id source as an apis.Source.
//
// Each Next call draws from the same counter that resolves IDs, so values
// obtained here never collide with resolved IDs (or with each other).
// Use it when a fresh unique value is needed without an ID cell to keep
// it in.
func Source() apis.Source {
	return counterSource{}
}

// counterSource adapts the package counter to the apis.Source contract.
type counterSource struct{}

var _ apis.Source = counterSource{}

func (counterSource) Next() uint64 {
	return nextValue()
}
