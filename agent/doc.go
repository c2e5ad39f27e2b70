// Copyright 2025 Poiesic Systems
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


// Package agent implements the iterative question-answering loop.
//
// A query runs as an explicit state machine: an LLM-backed decision step
// picks the next move from a closed set (search internally, search the web,
// refine the query, or answer), bounded by a per-query iteration budget.
// Results accumulate across rounds with exact-text deduplication, and a
// final synthesis step generates the answer strictly from the accumulated
// evidence.
//
// The agent depends only on the retrieval and ai interfaces, so backends
// can be swapped or mocked without touching the loop logic.
package agent
