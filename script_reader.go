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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avlkit/commands"
)

// ScriptLine holds one command of a script and where it came from
type ScriptLine struct {
	Number  int
	Command string
}

// ScriptResult summarises a script run
type ScriptResult struct {
	Executed int
	Failed   int
}

// ScriptOptions control how a script runs
type ScriptOptions struct {
	StopOnError  bool
	ShowProgress bool
	Echo         bool      // write each command's output to Out
	Out          io.Writer // command output
	Progress     io.Writer // progress bar, stderr when nil
}

// readScript reads commands from r, one per line. Blank lines and comments
// are skipped.
func readScript(r io.Reader) ([]ScriptLine, error) {
	var lines []ScriptLine

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	number := 0
	for scanner.Scan() {
		number++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commands.CommentPrefix) {
			continue
		}
		lines = append(lines, ScriptLine{Number: number, Command: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// readScriptFile reads a script from path.
func readScriptFile(path string) ([]ScriptLine, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("script file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	return readScript(file)
}

func newScriptProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	if w == nil {
		w = os.Stderr
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("🌳 Running script..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintf(w, "\n✅ Script completed!\n")
		}),
	)
}

// runScript executes lines against s. With StopOnError the first failing
// command aborts the run and its error is returned, annotated with the line
// number; otherwise failures are logged and counted.
func runScript(m *commands.Manager, s *commands.Session, lines []ScriptLine, opts ScriptOptions) (ScriptResult, error) {
	var result ScriptResult

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		bar = newScriptProgressBar(opts.Progress, len(lines))
	}

	for _, line := range lines {
		out, err := m.Execute(s, line.Command)
		result.Executed++
		if err != nil {
			result.Failed++
			if opts.StopOnError {
				return result, fmt.Errorf("line %d: %w", line.Number, err)
			}
			logger.Warn().Int("line", line.Number).Err(err).Msg("command failed")
		} else if opts.Echo && opts.Out != nil && out != "" {
			fmt.Fprintln(opts.Out, out)
		}
		logger.Debug().Int("line", line.Number).Str("command", line.Command).Msg("executed")

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return result, nil
}
