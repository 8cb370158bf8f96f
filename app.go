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
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"

	"github.com/cybrota/avlkit/commands"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// treeRows renders the session tree as list rows. Balance factors are
// colored with termui's inline style markup.
func treeRows(s *commands.Session) []string {
	rows := plainTreeRows(s)
	if s.Tree().IsEmpty() || !s.Options().ShowBalance {
		return rows
	}
	styled := make([]string, len(rows))
	for i, row := range rows {
		styled[i] = colorBalance(row)
	}
	return styled
}

// plainTreeRows is the session rendering split into lines without markup.
func plainTreeRows(s *commands.Session) []string {
	if s.Tree().IsEmpty() {
		return []string{"(empty tree)"}
	}
	var sb strings.Builder
	truncated := s.Render(&sb)
	rows := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if truncated {
		rows = append(rows, "[OUTPUT TRUNCATED - Size limit exceeded]")
	}
	return rows
}

// clipboardRow returns the unstyled text of list row i.
func clipboardRow(plain []string, i int) (string, bool) {
	if i < 0 || i >= len(plain) {
		return "", false
	}
	return plain[i], true
}

// colorBalance wraps the trailing "+N" balance of a rendered row in a
// termui color tag.
func colorBalance(row string) string {
	cut := strings.LastIndexByte(row, ' ')
	if cut < 0 {
		return row
	}
	b, err := strconv.ParseInt(row[cut+1:], 10, 8)
	if err != nil || !strings.ContainsAny(row[cut+1:cut+2], "+-") {
		return row
	}
	return fmt.Sprintf("%s [%s](fg:%s)", row[:cut], row[cut+1:], BalanceColorName(int8(b)))
}

// histogramData converts per-depth node counts to bar chart input.
func histogramData(hist []int) ([]float64, []string) {
	data := make([]float64, len(hist))
	labels := make([]string, len(hist))
	for depth, count := range hist {
		data[depth] = float64(count)
		labels[depth] = fmt.Sprintf("d%d", depth)
	}
	return data, labels
}

func statsText(s *commands.Session, result ScriptResult, checkErr error) string {
	var sb strings.Builder
	sb.WriteString(commands.FormatStats(s.Stats()))
	fmt.Fprintf(&sb, "\nscript:       %d run, %d failed", result.Executed, result.Failed)
	if checkErr != nil {
		fmt.Fprintf(&sb, "\ncheck:        [%s](fg:red)", checkErr)
	} else {
		sb.WriteString("\ncheck:        [ok](fg:green)")
	}
	return sb.String()
}

// computeHeaderRatio determines the share of vertical space for the stats
// row: at least eleven lines, at most half the screen.
func computeHeaderRatio(termHeight int) float64 {
	if termHeight <= 0 {
		return 0.3
	}
	ratio := 11.0 / float64(termHeight)
	if ratio < 0.2 {
		ratio = 0.2
	}
	if ratio > 0.5 {
		ratio = 0.5
	}
	return ratio
}

// toggleBorders toggles focus between two widgets
func toggleBorders(w1 *widgets.List, w2 *widgets.Paragraph, focusFirst bool) {
	w1.BorderStyle = StyleBorder(focusFirst)
	w2.BorderStyle = StyleBorder(!focusFirst)
}

func layoutDashboard(grid *ui.Grid, statsPara *widgets.Paragraph, chart *widgets.BarChart, treeList *widgets.List, keysPara *widgets.Paragraph, headerRatio float64) {
	grid.Set(
		ui.NewRow(headerRatio,
			ui.NewCol(0.4, statsPara),
			ui.NewCol(0.6, chart),
		),
		ui.NewRow(1-headerRatio,
			ui.NewCol(0.75, treeList),
			ui.NewCol(0.25, keysPara),
		),
	)
}

// runDashboard shows the session tree with its statistics until the user
// quits.
func runDashboard(s *commands.Session, result ScriptResult) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	DisableMouseInput()
	defer ui.Close()

	scheme := GetColorScheme()

	statsPara := widgets.NewParagraph()
	statsPara.Title = " Stats "
	statsPara.Text = statsText(s, result, s.Tree().Check())
	statsPara.TextStyle = ui.NewStyle(scheme.Text)
	statsPara.BorderStyle = StyleBorder(false)

	chart := widgets.NewBarChart()
	chart.Title = " Nodes per depth "
	chart.Data, chart.Labels = histogramData(s.DepthHistogram())
	chart.BarWidth = 4
	chart.BarColors = []ui.Color{scheme.Bar}
	chart.LabelStyles = []ui.Style{ui.NewStyle(scheme.BarLabel)}
	chart.NumStyles = []ui.Style{ui.NewStyle(scheme.TextMuted)}
	chart.BorderStyle = StyleBorder(false)

	treeList := widgets.NewList()
	treeList.Title = " Tree "
	treeList.Rows = treeRows(s)
	plainRows := plainTreeRows(s)
	treeList.SelectedRow = 0
	treeList.SelectedRowStyle = ui.NewStyle(ui.ColorBlack, scheme.BorderFocus)
	treeList.TextStyle = ui.NewStyle(scheme.Text)

	keysPara := widgets.NewParagraph()
	keysPara.Title = " Keyboard Shortcuts "
	keysPara.Text = `[<up>/<down>](fg:green) -> Scroll the tree
[<ctrl> + k/j](fg:green) -> First / last row
[<tab>](fg:green) -> Switch focus
[<ctrl> + y](fg:green) -> Copy row to clipboard
[<esc>](fg:green) or [q](fg:green) -> Quit`
	keysPara.WrapText = true

	focusOnTree := true
	toggleBorders(treeList, keysPara, focusOnTree)

	termWidth, termHeight := ui.TerminalDimensions()
	headerRatio := computeHeaderRatio(termHeight)
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)
	layoutDashboard(grid, statsPara, chart, treeList, keysPara, headerRatio)
	ui.Render(grid)

	uiEvents := ui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "<C-c>", "<Escape>", "q":
			return nil
		case "<Tab>":
			focusOnTree = !focusOnTree
			toggleBorders(treeList, keysPara, focusOnTree)
		case "<Up>", "k":
			if focusOnTree {
				treeList.ScrollUp()
			}
		case "<Down>", "j":
			if focusOnTree {
				treeList.ScrollDown()
			}
		case "<C-k>":
			treeList.ScrollTop()
		case "<C-j>":
			treeList.ScrollBottom()
		case "<C-y>":
			if row, ok := clipboardRow(plainRows, treeList.SelectedRow); ok {
				if err := clipboard.WriteAll(row); err != nil {
					logger.Warn().Err(err).Msg("failed to copy row")
				}
			}
		case "<Resize>":
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
				headerRatio = computeHeaderRatio(payload.Height)
			}
			layoutDashboard(grid, statsPara, chart, treeList, keysPara, headerRatio)
			ui.Clear()
		}
		ui.Render(grid)
	}
}
