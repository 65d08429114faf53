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

// Source hands out fresh unique 64-bit values on demand.
//
// Implementations MUST guarantee that no two calls, concurrent or not,
// return the same value within the lifetime of the source, and MUST never
// return 0 (reserved by consumers as an "unassigned" marker). Values need
// not be dense or ascending.
//
// Next MUST be safe for concurrent use and SHOULD be non-blocking; the
// canonical implementation is a single atomic fetch-and-increment.
type Source interface {
	// Next returns a fresh value, distinct from every value this source
	// has returned before.
	Next() uint64
}
