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

// Package avl - an AVL balanced tree built on the parent-linked binary
// search tree of package bst.
//
// Every node stores a balance factor, height(right) - height(left), which
// stays within -1..+1 between calls. Insert and Remove place or unlink the
// node with the plain tree primitives and then walk the parent links upwards
// fixing balance factors, rotating where a factor reaches ±2. An insert does
// at most one single or double rotation; a remove may rotate at every level
// on the way to the root.
//
// Inserting an existing key overwrites its value in place. Removing a node
// with two children first swaps it with its in-order predecessor so the node
// actually unlinked has at most one child.
//
// Note: a tree is not thread safe, so either access it only in a single
// goroutine or use a mutex/rwmutex to restrict access.
package avl
