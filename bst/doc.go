// Copyright 2025 Naren Yellavula
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

// Package bst - a plain binary search tree with parent pointers.
//
// The tree does no balancing of its own. It provides the search, placement,
// unlinking and node swapping primitives that balancing trees (see package
// avl) build upon, plus iteration in key order and an ASCII printer.
//
// Note: a tree is not safe for concurrent use; access it from a single
// goroutine or guard it with a mutex.
package bst
