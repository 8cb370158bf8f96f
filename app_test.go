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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlkit/commands"
)

func TestColorBalance(t *testing.T) {
	testCases := []struct {
		row      string
		expected string
	}{
		{"|------+ 2 → v2 +0", "|------+ 2 → v2 [+0](fg:green)"},
		{"       /------+ 3 -1", "       /------+ 3 [-1](fg:yellow)"},
		{"|------+ 7 +2", "|------+ 7 [+2](fg:red)"},
		{"|------+ 7 → seven", "|------+ 7 → seven"},
		{"nospace", "nospace"},
		{"trailing ", "trailing "},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, colorBalance(tc.row), tc.row)
	}
}

func TestTreeRows(t *testing.T) {
	s := commands.NewSession(commands.DefaultOptions())
	assert.Equal(t, []string{"(empty tree)"}, treeRows(s))

	s.Insert("b", "2")
	s.Insert("a", "1")
	rows := treeRows(s)
	assert.Equal(t, []string{
		"|------+ b → 2 [-1](fg:yellow)",
		"       \\------+ a → 1 [+0](fg:green)",
	}, rows)

	plain := commands.NewSession(commands.Options{ShowValues: false, ShowBalance: false})
	plain.Insert("x", "1")
	assert.Equal(t, []string{"|------+ x"}, treeRows(plain))
}

func TestClipboardRowIsUnstyled(t *testing.T) {
	s := commands.NewSession(commands.DefaultOptions())
	s.Insert("b", "2")
	s.Insert("a", "1")

	styled := treeRows(s)
	plain := plainTreeRows(s)
	require.Len(t, plain, len(styled))

	row, ok := clipboardRow(plain, 1)
	require.True(t, ok)
	assert.Equal(t, "       \\------+ a → 1 +0", row)
	assert.NotContains(t, row, "(fg:")
	assert.Contains(t, styled[1], "(fg:green)")

	_, ok = clipboardRow(plain, 2)
	assert.False(t, ok)
	_, ok = clipboardRow(plain, -1)
	assert.False(t, ok)
}

func TestHistogramData(t *testing.T) {
	data, labels := histogramData([]int{1, 2, 3})
	assert.Equal(t, []float64{1, 2, 3}, data)
	assert.Equal(t, []string{"d0", "d1", "d2"}, labels)

	data, labels = histogramData(nil)
	assert.Empty(t, data)
	assert.Empty(t, labels)
}

func TestStatsText(t *testing.T) {
	s := commands.NewSession(commands.DefaultOptions())
	s.Insert("k", "v")

	text := statsText(s, ScriptResult{Executed: 3, Failed: 1}, nil)
	assert.Contains(t, text, "size:         1")
	assert.Contains(t, text, "3 run, 1 failed")
	assert.Contains(t, text, "[ok](fg:green)")

	text = statsText(s, ScriptResult{}, errors.New("boom"))
	assert.Contains(t, text, "[boom](fg:red)")
}

func TestComputeHeaderRatio(t *testing.T) {
	assert.Equal(t, 0.3, computeHeaderRatio(0))
	assert.Equal(t, 0.5, computeHeaderRatio(10))
	assert.Equal(t, 0.2, computeHeaderRatio(200))
	assert.InDelta(t, 11.0/40.0, computeHeaderRatio(40), 1e-9)
}
