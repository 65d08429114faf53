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

package apis

// Identified is implemented by types that carry a per-instance numeric
// identity.
//
// # Overview
//
// Identified lets logging, tracing, and bookkeeping layers distinguish
// *which* instance of a type participated in an event without knowing
// anything about the type itself. A typical implementation embeds a
// lazily assigned id and returns its resolved value.
//
// # Contract
//
//   - InstanceID MUST return the same value for a given instance over its
//     entire lifetime (no spontaneous changes).
//   - InstanceID MUST be safe for concurrent calls from multiple
//     goroutines.
//   - InstanceID MUST NOT block or perform I/O, and SHOULD avoid heap
//     allocation; if the identity is expensive to derive it SHOULD be
//     computed once and cached.
//   - The returned value SHOULD be non-zero; callers MAY treat 0 as
//     "this instance has no identity".
//   - Callers MUST NOT assume instance ids are unique across processes or
//     across runs, only within the process that assigned them.
//
// # Usage in infrastructure
//
// Infrastructure MAY use InstanceID as a correlation key for events that
// involve the same instance, e.g. as an "instance_id" log field or a
// span attribute. It MUST NOT derive ordering or allocation-time meaning
// from the numeric value.
type Identified interface {
	// InstanceID returns a stable identifier for this instance.
	InstanceID() uint64
}
