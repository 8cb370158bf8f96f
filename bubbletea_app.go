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

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avlkit/commands"
)

// PaneMode is what the right hand pane shows
type PaneMode int

const (
	PaneTree PaneMode = iota
	PaneHelp
)

const maxLogLines = 500

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput    textinput.Model
	logViewport  viewport.Model
	paneViewport viewport.Model

	// Data
	session   *commands.Session
	manager   *commands.Manager
	helpCache *cache.Cache

	// State
	pane        PaneMode
	focusOnPane bool
	logLines    []string
	history     []string // executed commands, oldest first
	historyPos  int      // len(history) when not browsing
	status      string

	// Styling
	styles   *Styles
	renderer *glamour.TermRenderer // nil shows raw markdown

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	Prompt         lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// InitialModel creates the REPL model. renderer may be nil.
func InitialModel(s *commands.Session, m *commands.Manager, hc *cache.Cache, renderer *glamour.TermRenderer) Model {
	ti := textinput.New()
	ti.Placeholder = "insert <key> <value>, remove <key>, help ..."
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	logViewport := viewport.New(0, 0)
	paneViewport := viewport.New(0, 0)

	model := Model{
		textInput:    ti,
		logViewport:  logViewport,
		paneViewport: paneViewport,
		session:      s,
		manager:      m,
		helpCache:    hc,
		styles:       NewStyles(),
		renderer:     renderer,
	}
	model.refreshPane()
	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	case clipboardMsg:
		if msg.err != nil {
			m.status = m.styles.ErrorMessage.Render("copy failed: " + msg.err.Error())
		} else {
			m.status = m.styles.SuccessMessage.Render("📋 tree copied to clipboard")
		}
	}
	return m, nil
}

type clipboardMsg struct{ err error }

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.focusOnPane = !m.focusOnPane
		if m.focusOnPane {
			m.textInput.Blur()
		} else {
			m.textInput.Focus()
		}
		return m, nil
	case "f1":
		m.showHelp(m.textInput.Value())
		return m, nil
	case "f2":
		m.pane = PaneTree
		m.refreshPane()
		return m, nil
	case "ctrl+y":
		var sb strings.Builder
		m.session.Render(&sb)
		text := sb.String()
		return m, func() tea.Msg {
			return clipboardMsg{err: clipboard.WriteAll(text)}
		}
	case "enter":
		if !m.focusOnPane {
			m.execute(m.textInput.Value())
			m.textInput.Reset()
		}
		return m, nil
	case "up":
		if m.focusOnPane {
			m.paneViewport.LineUp(1)
		} else {
			m.browseHistory(-1)
		}
		return m, nil
	case "down":
		if m.focusOnPane {
			m.paneViewport.LineDown(1)
		} else {
			m.browseHistory(1)
		}
		return m, nil
	case "pgup":
		m.paneViewport.LineUp(m.paneViewport.Height)
		return m, nil
	case "pgdown":
		m.paneViewport.LineDown(m.paneViewport.Height)
		return m, nil
	}

	if !m.focusOnPane {
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

// execute runs one command line and records its output in the log.
func (m *Model) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyPos = len(m.history)

	m.appendLog(m.styles.Prompt.Render("> " + line))
	out, err := m.manager.Execute(m.session, line)
	if err != nil {
		m.appendLog(m.styles.ErrorMessage.Render("error: " + err.Error()))
		logger.Debug().Err(err).Str("command", line).Msg("command failed")
	} else if out != "" {
		m.appendLog(out)
	}

	if cmd, _ := commands.Parse(line); cmd != nil && cmd.Name == "help" && cmd.HasArgs(1) {
		m.showHelp(cmd.Arg(0))
		return
	}
	m.pane = PaneTree
	m.refreshPane()
}

func (m *Model) appendLog(text string) {
	m.logLines = append(m.logLines, strings.Split(text, "\n")...)
	if over := len(m.logLines) - maxLogLines; over > 0 {
		m.logLines = m.logLines[over:]
	}
	m.logViewport.SetContent(strings.Join(m.logLines, "\n"))
	m.logViewport.GotoBottom()
}

// browseHistory moves through executed commands, dir -1 being older.
func (m *Model) browseHistory(dir int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.historyPos + dir
	if pos < 0 {
		pos = 0
	}
	if pos >= len(m.history) {
		m.historyPos = len(m.history)
		m.textInput.Reset()
		return
	}
	m.historyPos = pos
	m.textInput.SetValue(m.history[pos])
	m.textInput.CursorEnd()
}

func (m *Model) showHelp(line string) {
	var render func(string) (string, error)
	if m.renderer != nil {
		render = m.renderer.Render
	}
	m.paneViewport.SetContent(GetOrFillCache(m.helpCache, m.manager, line, render))
	m.paneViewport.GotoTop()
	m.pane = PaneHelp
}

func (m *Model) refreshPane() {
	if m.pane != PaneTree {
		return
	}
	if m.session.Tree().IsEmpty() {
		m.paneViewport.SetContent("(empty tree)")
		return
	}
	var sb strings.Builder
	if m.session.Render(&sb) {
		sb.WriteString("\n[OUTPUT TRUNCATED - Size limit exceeded]")
	}
	m.paneViewport.SetContent(sb.String())
}

func (m *Model) updateLayout() {
	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4 - len(m.textInput.Prompt)
	m.logViewport.Width = leftWidth - 2
	m.logViewport.Height = max(logHeight, 1)
	m.paneViewport.Width = rightWidth - 2
	m.paneViewport.Height = max(logHeight+inputHeight+1, 1)
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	logHeight := m.height - inputHeight - 8
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputStyle, logStyle, paneStyle := m.styles.BorderFocused, m.styles.BorderBlurred, m.styles.BorderBlurred
	if m.focusOnPane {
		inputStyle, paneStyle = m.styles.BorderBlurred, m.styles.BorderFocused
	}

	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" ⌨️  Command"),
			m.textInput.View(),
		))

	logBox := logStyle.
		Width(leftWidth).
		Height(logHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 📜 Output"),
			m.logViewport.View(),
		))

	st := m.session.Stats()
	paneTitle := fmt.Sprintf(" 🌳 Tree: %d keys, height %d (bound %.2f)", st.Size, st.Height, st.MaxHeight)
	if m.pane == PaneHelp {
		paneTitle = " 📖 Help"
	}
	paneBox := paneStyle.
		Width(rightWidth).
		Height(logHeight + inputHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(paneTitle),
			m.paneViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, logBox),
		paneBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderKeyHelp(),
	)
}

func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "↑/↓", "tab", "f1", "f2", "ctrl+y", "esc"}
	descs := []string{"run", "history / scroll", "switch focus", "help", "tree", "copy tree", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	footer := strings.Join(helpEntries, " • ")
	if m.status != "" {
		footer += "   " + m.status
	}
	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(footer)
}

// runBubbleTeaApp starts the interactive session
func runBubbleTeaApp(s *commands.Session, m *commands.Manager, hc *cache.Cache) error {
	InitializeColors()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		logger.Debug().Err(err).Msg("markdown renderer unavailable")
		renderer = nil
	}

	program := tea.NewProgram(
		InitialModel(s, m, hc, renderer),
		tea.WithAltScreen(),
	)

	_, err = program.Run()
	return err
}
