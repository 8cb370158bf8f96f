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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avlkit/commands"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestExecCommand(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "ops.avl")
	require.NoError(t, os.WriteFile(script, []byte(sampleScript), 0644))

	out, err := execute(t, "exec", "--print", script)
	require.NoError(t, err)
	assert.Contains(t, out, "removed 4 (four)")
	assert.Contains(t, out, "|------+ 2 → two")

	out, err = execute(t, "exec", "--quiet", script)
	require.NoError(t, err)
	assert.Empty(t, out)

	bad := filepath.Join(dir, "bad.avl")
	require.NoError(t, os.WriteFile(bad, []byte("insert a 1\nexplode\n"), 0644))
	_, err = execute(t, "exec", bad)
	require.ErrorIs(t, err, commands.ErrUnknownCommand)
	assert.Contains(t, err.Error(), "line 2")

	_, err = execute(t, "exec", filepath.Join(dir, "missing.avl"))
	assert.Error(t, err)
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--n", "500", "--order", "random")
	require.NoError(t, err)
	assert.Contains(t, out, "500")
	assert.Equal(t, 3, strings.Count(out, "\n"))

	_, err = execute(t, "bench", "--order", "zigzag")
	assert.Error(t, err)
}

func TestPathsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key: 2\nleft: {key: 1}\nright: {key: 3}\n"), 0644))

	out, err := execute(t, "paths", path)
	require.NoError(t, err)
	assert.Contains(t, out, "equal paths")
	assert.Contains(t, out, "leaf depths: [1 1]")
}

func TestSettingsCommand(t *testing.T) {
	out, err := execute(t, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "Created default configuration")
}

func TestUsageCommand(t *testing.T) {
	out, err := execute(t, "usage")
	require.NoError(t, err)
	assert.Contains(t, out, "xclip")
}
