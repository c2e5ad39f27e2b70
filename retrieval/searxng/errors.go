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


package searxng

import "errors"

var (
	// ErrBaseURLRequired is returned when the SearXNG base URL is empty.
	ErrBaseURLRequired = errors.New("searxng base URL required")

	// ErrSearchFailed is returned when the search request or its payload fails.
	ErrSearchFailed = errors.New("searxng search failed")

	// ErrUnhealthy is returned when the health endpoint reports a non-OK status.
	ErrUnhealthy = errors.New("searxng instance unhealthy")
)
