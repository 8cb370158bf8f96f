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
	"strings"
)

// Manager dispatches commands to the registered handlers
type Manager struct {
	handlers []Handler
}

// NewManager creates a manager with every built-in command registered
func NewManager() *Manager {
	m := &Manager{}

	m.Register(NewInsertHandler())
	m.Register(NewRemoveHandler())
	m.Register(NewFindHandler())
	m.Register(NewContainsHandler())
	m.Register(NewKeysHandler())
	m.Register(NewPrintHandler())
	m.Register(NewStatsHandler())
	m.Register(NewCheckHandler())
	m.Register(NewClearHandler())
	m.Register(&HelpHandler{aliases: aliases{"help", "?"}, manager: m})

	return m
}

// Register adds a handler. Earlier registrations win on name clashes.
func (m *Manager) Register(h Handler) {
	m.handlers = append(m.handlers, h)
}

// Handlers returns the registered handlers in registration order.
func (m *Manager) Handlers() []Handler {
	return m.handlers
}

// Lookup finds the handler for a command name.
func (m *Manager) Lookup(name string) (Handler, error) {
	name = strings.ToLower(name)
	for _, h := range m.handlers {
		if h.SupportsCommand(name) {
			return h, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Execute parses line and runs it against s. Blank and comment lines do
// nothing.
func (m *Manager) Execute(s *Session, line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil || cmd == nil {
		return "", err
	}
	return m.Run(s, cmd)
}

// Run dispatches an already parsed command.
func (m *Manager) Run(s *Session, cmd *Command) (string, error) {
	h, err := m.Lookup(cmd.Name)
	if err != nil {
		return "", err
	}
	out, err := h.Run(s, cmd)
	if err != nil {
		return "", fmt.Errorf("%s: %w", h.Name(), err)
	}
	return out, nil
}

// GetHelp returns the markdown help page for a command line such as
// "insert a 1"; only the command name is looked at.
func (m *Manager) GetHelp(line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	if cmd == nil {
		return "", fmt.Errorf("no command provided")
	}
	h, err := m.Lookup(cmd.Name)
	if err != nil {
		return "", err
	}
	return h.Help(), nil
}

// HelpHandler lists the commands or shows the usage of one
type HelpHandler struct {
	aliases
	manager *Manager
}

func (h *HelpHandler) Usage() string { return "help [command]" }

func (h *HelpHandler) Help() string {
	return `# help

Without arguments list every command. With a command name show how to
use it.
`
}

func (h *HelpHandler) Run(s *Session, cmd *Command) (string, error) {
	if err := cmd.expectArgs(0, 1, h.Usage()); err != nil {
		return "", err
	}
	if cmd.HasArgs(1) {
		target, err := h.manager.Lookup(cmd.Arg(0))
		if err != nil {
			return "", err
		}
		return "usage: " + target.Usage(), nil
	}
	var sb strings.Builder
	sb.WriteString("commands:")
	for _, handler := range h.manager.handlers {
		sb.WriteString("\n  " + handler.Usage())
	}
	return sb.String(), nil
}
