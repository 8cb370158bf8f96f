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

package commands

import "fmt"

// InsertHandler adds a key or overwrites its value
type InsertHandler struct{ aliases }

func NewInsertHandler() *InsertHandler {
	return &InsertHandler{aliases{"insert", "put"}}
}

func (h *InsertHandler) Usage() string { return "insert <key> <value>" }

func (h *InsertHandler) Help() string {
	return `# insert

Add a key with its value. An existing key keeps its node and only the
value changes.

    insert <key> <value>
    put <key> <value>

Quote keys or values that contain spaces: ` + "`insert \"new york\" 8.3M`" + `
`
}

func (h *InsertHandler) Run(s *Session, cmd *Command) (string, error) {
	if err := cmd.expectArgs(2, 2, h.Usage()); err != nil {
		return "", err
	}
	key, value := cmd.Arg(0), cmd.Arg(1)
	if s.Insert(key, value) {
		return fmt.Sprintf("inserted %s", key), nil
	}
	return fmt.Sprintf("updated %s", key), nil
}

// RemoveHandler deletes a key; a missing key is not an error
type RemoveHandler struct{ aliases }

func NewRemoveHandler() *RemoveHandler {
	return &RemoveHandler{aliases{"remove", "delete", "del"}}
}

func (h *RemoveHandler) Usage() string { return "remove <key>" }

func (h *RemoveHandler) Help() string {
	return `# remove

Delete a key. Removing a key that is not present leaves the tree untouched.

    remove <key>
    delete <key>
    del <key>
`
}

func (h *RemoveHandler) Run(s *Session, cmd *Command) (string, error) {
	if err := cmd.expectArgs(1, 1, h.Usage()); err != nil {
		return "", err
	}
	key := cmd.Arg(0)
	if v, ok := s.Remove(key); ok {
		return fmt.Sprintf("removed %s (%s)", key, v), nil
	}
	return fmt.Sprintf("%s not present", key), nil
}

// ClearHandler empties the tree
type ClearHandler struct{ aliases }

func NewClearHandler() *ClearHandler {
	return &ClearHandler{aliases{"clear"}}
}

func (h *ClearHandler) Usage() string { return "clear" }

func (h *ClearHandler) Help() string {
	return `# clear

Drop every key and start over with an empty tree.
`
}

func (h *ClearHandler) Run(s *Session, cmd *Command) (string, error) {
	if err := cmd.expectArgs(0, 0, h.Usage()); err != nil {
		return "", err
	}
	n := s.Tree().Len()
	s.Clear()
	return fmt.Sprintf("cleared %d keys", n), nil
}
