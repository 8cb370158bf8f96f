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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlkit/commands"
)

func TestCommandHelp(t *testing.T) {
	m := commands.NewManager()

	page, err := commandHelp(m, "")
	require.NoError(t, err)
	assert.Equal(t, noCommandHelp, page)

	page, err = commandHelp(m, "DEL somekey")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(page, "# remove"))

	page, err = commandHelp(m, "nonexistent_command")
	assert.ErrorIs(t, err, commands.ErrUnknownCommand)
	assert.Contains(t, page, "insert <key> <value>")

	_, err = commandHelp(m, `find "open`)
	assert.Error(t, err)
}

func TestGetOrFillCache(t *testing.T) {
	m := commands.NewManager()
	c := NewHelpCache()

	renders := 0
	render := func(s string) (string, error) {
		renders++
		return strings.ToUpper(s), nil
	}

	first := GetOrFillCache(c, m, "insert a 1", render)
	assert.True(t, strings.HasPrefix(first, "# INSERT"))
	// a different line for the same command hits the cache
	second := GetOrFillCache(c, m, "put b 2", render)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, renders)

	assert.Equal(t, first, GetHelpPage(c, "insert"))
	assert.Empty(t, GetHelpPage(c, "put"))

	// every alias of remove shares the page cached under its name
	removePage := GetOrFillCache(c, m, "del a", render)
	assert.Equal(t, removePage, GetOrFillCache(c, m, "delete b", render))
	assert.Equal(t, removePage, GetOrFillCache(c, m, "remove c", render))
	assert.Equal(t, 2, renders)
	assert.Equal(t, removePage, GetHelpPage(c, "remove"))

	unknown := GetOrFillCache(c, m, "explode now", nil)
	assert.Equal(t, unknown, GetHelpPage(c, "explode"))

	raw := GetOrFillCache(c, m, "keys", nil)
	assert.True(t, strings.HasPrefix(raw, "# keys"))

	broken := GetOrFillCache(c, m, `get "x`, nil)
	assert.True(t, strings.HasPrefix(broken, "Relax and take a deep breath."))
}
