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

package main

import (
	"fmt"
	"strings"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlkit/commands"
)

const noCommandHelp = `# avlkit

Type a command and press enter. Press **f1** for help on the command
being typed.
`

// commandHelp returns the markdown help page for the command in line. An
// unknown command gets the list of known ones.
func commandHelp(m *commands.Manager, line string) (string, error) {
	cmd, err := commands.Parse(line)
	if err != nil {
		return "", err
	}
	if cmd == nil {
		return noCommandHelp, nil
	}
	page, err := m.GetHelp(line)
	if err == nil {
		return page, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Unknown command `%s`\n\nKnown commands:\n\n", cmd.Name)
	for _, h := range m.Handlers() {
		fmt.Fprintf(&sb, "* `%s`\n", h.Usage())
	}
	return sb.String(), err
}

// GetOrFillCache returns the rendered help for the command in line, using
// render (nil for raw markdown) on a cache miss. Pages are cached under the
// command name so every line using the same command shares one page.
func GetOrFillCache(c *cache.Cache, m *commands.Manager, line string, render func(string) (string, error)) string {
	cmd, err := commands.Parse(line)
	if err != nil {
		return fmt.Sprintf("Relax and take a deep breath.\n%s", err.Error())
	}
	key := ""
	if cmd != nil {
		key = cmd.Name
		if h, lerr := m.Lookup(cmd.Name); lerr == nil {
			key = h.Name()
		}
	}
	if page := GetHelpPage(c, key); page != "" {
		return page
	}

	helpTxt, _ := commandHelp(m, line)
	if render != nil {
		if rendered, rerr := render(helpTxt); rerr == nil {
			helpTxt = rendered
		} else {
			logger.Debug().Err(rerr).Msg("markdown render failed, showing raw help")
		}
	}
	CacheHelpPage(c, key, helpTxt)
	return helpTxt
}
