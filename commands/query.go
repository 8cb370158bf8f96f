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

import (
	"fmt"
	"strconv"
	"strings"
)

// FindHandler prints the value of a key
type FindHandler struct{ aliases }

func NewFindHandler() *FindHandler {
	return &FindHandler{aliases{"find", "get"}}
}

func (h *FindHandler) Usage() string { return "find <key>" }

func (h *FindHandler) Help() string {
	return `# find

Print the value stored under a key.

    find <key>
    get <key>
`
}

func (h *FindHandler) Run(s *Session, cmd *Command) (string, error) {
	if err := cmd.expectArgs(1, 1, h.Usage()); err != nil {
		return "", err
	}
	key := cmd.Arg(0)
	if v, ok := s.Find(key); ok {
		return v, nil
	}
	return fmt.Sprintf("%s not found", key), nil
}

// ContainsHandler reports whether a key is present
type ContainsHandler struct{ aliases }

func NewContainsHandler() *ContainsHandler {
	return &ContainsHandler{aliases{"contains", "has"}}
}

func (h *ContainsHandler) Usage() string { return "contains <key>" }

func (h *ContainsHandler) Help() string {
	return `# contains

Print ` + "`true`" + ` if the key is present, ` + "`false`" + ` otherwise.
`
}

func (h *ContainsHandler) Run(s *Session, cmd *Command) (string, error) {
	if err := cmd.expectArgs(1, 1, h.Usage()); err != nil {
		return "", err
	}
	_, ok := s.Find(cmd.Arg(0))
	return strconv.FormatBool(ok), nil
}

// KeysHandler lists the keys in order
type KeysHandler struct{ aliases }

func NewKeysHandler() *KeysHandler {
	return &KeysHandler{aliases{"keys", "ls"}}
}

func (h *KeysHandler) Usage() string { return "keys" }

func (h *KeysHandler) Help() string {
	return `# keys

List every key in ascending order, one per line.
`
}

func (h *KeysHandler) Run(s *Session, cmd *Command) (string, error) {
	if err := cmd.expectArgs(0, 0, h.Usage()); err != nil {
		return "", err
	}
	return strings.Join(s.Tree().Keys(), "\n"), nil
}

// PrintHandler draws the tree sideways
type PrintHandler struct{ aliases }

func NewPrintHandler() *PrintHandler {
	return &PrintHandler{aliases{"print", "show"}}
}

func (h *PrintHandler) Usage() string { return "print" }

func (h *PrintHandler) Help() string {
	return `# print

Draw the tree on its side: the root is at the left edge and right
sub-trees are above their parent. Each node may show its value and its
balance factor (right height minus left height).
`
}

func (h *PrintHandler) Run(s *Session, cmd *Command) (string, error) {
	if err := cmd.expectArgs(0, 0, h.Usage()); err != nil {
		return "", err
	}
	if s.Tree().IsEmpty() {
		return "(empty)", nil
	}
	var sb strings.Builder
	if s.Render(&sb) {
		sb.WriteString("\n[OUTPUT TRUNCATED - Size limit exceeded]")
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// StatsHandler prints the size and shape of the tree
type StatsHandler struct{ aliases }

func NewStatsHandler() *StatsHandler {
	return &StatsHandler{aliases{"stats"}}
}

func (h *StatsHandler) Usage() string { return "stats" }

func (h *StatsHandler) Help() string {
	return `# stats

Show the number of keys, the height against the AVL bound
1.44·log2(n+2), and operation counters including lookups the bloom
filter answered without touching the tree.
`
}

func (h *StatsHandler) Run(s *Session, cmd *Command) (string, error) {
	if err := cmd.expectArgs(0, 0, h.Usage()); err != nil {
		return "", err
	}
	return FormatStats(s.Stats()), nil
}

// FormatStats renders st as aligned lines.
func FormatStats(st Stats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "size:         %d\n", st.Size)
	fmt.Fprintf(&sb, "height:       %d (bound %.2f)\n", st.Height, st.MaxHeight)
	fmt.Fprintf(&sb, "inserts:      %d\n", st.Inserts)
	fmt.Fprintf(&sb, "updates:      %d\n", st.Updates)
	fmt.Fprintf(&sb, "removes:      %d\n", st.Removes)
	fmt.Fprintf(&sb, "lookups:      %d\n", st.Lookups)
	fmt.Fprintf(&sb, "filter skips: %d", st.FilterSkips)
	return sb.String()
}

// CheckHandler verifies the tree invariants
type CheckHandler struct{ aliases }

func NewCheckHandler() *CheckHandler {
	return &CheckHandler{aliases{"check"}}
}

func (h *CheckHandler) Usage() string { return "check" }

func (h *CheckHandler) Help() string {
	return `# check

Walk the whole tree and verify key order, parent links and that every
stored balance factor matches the real height difference and is between
-1 and +1.
`
}

func (h *CheckHandler) Run(s *Session, cmd *Command) (string, error) {
	if err := cmd.expectArgs(0, 0, h.Usage()); err != nil {
		return "", err
	}
	if err := s.Tree().Check(); err != nil {
		return "", err
	}
	return fmt.Sprintf("ok (%d keys)", s.Tree().Len()), nil
}
