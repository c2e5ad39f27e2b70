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


// Package ai provides abstractions for the AI services used in lexquery.
//
// The package defines the Generator interface for text generation. It
// follows the dependency inversion principle: the agent and the engine
// depend on this abstraction rather than on a concrete LLM client, so
// backends can be swapped and business logic tested without a model.
//
// # Implementation Packages
//
//   - ai/ollama: Production implementation backed by an Ollama server
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (ollama.NewGenerator) return INTERFACE types to
// enforce abstraction and prevent accidental coupling to a concrete
// implementation.
//
//	gen, err := ollama.NewGenerator(config)  // returns ai.Generator
//
// Test utility constructors (mock.NewMockGenerator) return CONCRETE types
// to enable assertions and behavior injection via the mock's public
// fields and methods (GenerateFunc, CallCount, Reset).
package ai
