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


package core

import "errors"

// Domain validation errors
var (
	// ErrEmptyQuestion indicates the question text is empty or blank.
	ErrEmptyQuestion = errors.New("question cannot be empty")

	// ErrInvalidMaxIterations indicates max_iterations is outside the accepted range.
	ErrInvalidMaxIterations = errors.New("max iterations must be between 1 and 10")

	// ErrInvalidTopK indicates top_k is outside the accepted range.
	ErrInvalidTopK = errors.New("top k must be between 1 and 20")

	// ErrInvalidSourceType indicates an invalid SourceType value.
	ErrInvalidSourceType = errors.New("invalid source type")

	// ErrInvalidWebResultKind indicates an invalid WebResultKind value.
	ErrInvalidWebResultKind = errors.New("invalid web result kind")

	// ErrEmptyContent indicates a result has no text content.
	ErrEmptyContent = errors.New("content cannot be empty")
)
