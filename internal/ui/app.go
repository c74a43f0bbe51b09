package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colorhymn/hymnless/internal/config"
	"github.com/colorhymn/hymnless/internal/hymn"
	"github.com/colorhymn/hymnless/internal/palette"
	"github.com/colorhymn/hymnless/internal/render"
	"github.com/colorhymn/hymnless/internal/view"
)

// viewer state machine: loading until the classifier returns, then ready,
// or a terminal error state that still renders and only exits on quit
type state int

const (
	stateLoading state = iota
	stateReady
	stateError
)

type docLoadedMsg struct {
	doc *hymn.Document
}

type loadFailedMsg struct {
	err error
}

// Model is the main application model
type Model struct {
	classifier hymn.Classifier
	filepath   string

	viewport *view.Viewport
	backend  render.Backend
	resolver *palette.Resolver
	keys     KeyMap
	spinner  spinner.Model

	state state
	doc   *hymn.Document

	// one-shot notice shown in the status bar until the next key event
	notice string

	width       int
	height      int
	showHelpBar bool

	statusStyle lipgloss.Style
	helpStyle   lipgloss.Style
}

// NewModel creates the viewer model. The document is fetched asynchronously
// after the program starts; until then the model is in the loading state.
func NewModel(filepath string, cfg *config.Config, classifier hymn.Classifier, backend render.Backend) *Model {
	resolver := palette.NewResolver(&cfg.Palette)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &Model{
		classifier:  classifier,
		filepath:    filepath,
		viewport:    view.NewViewport(80, 24, backend),
		backend:     backend,
		resolver:    resolver,
		keys:        NewKeyMap(&cfg.Keybindings),
		spinner:     sp,
		state:       stateLoading,
		showHelpBar: cfg.Display.ShowHelpBar,
		statusStyle: lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")),
		helpStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// loadCmd fetches the document off the update loop
func (m *Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		doc, err := m.classifier.Fetch(context.Background(), m.filepath)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return docLoadedMsg{doc: doc}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetSize(msg.Width, m.contentHeight())
		return m, nil

	case docLoadedMsg:
		m.state = stateReady
		m.doc = msg.doc
		m.viewport.SetProvider(msg.doc)
		m.viewport.SetSize(m.width, m.contentHeight())
		return m, nil

	case loadFailedMsg:
		m.state = stateError
		m.notice = fmt.Sprintf("Error: %v", msg.err)
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// contentHeight is the terminal height minus the chrome rows
func (m *Model) contentHeight() int {
	h := m.height - 2 // info bar + status bar
	if m.showHelpBar {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Quit works in every state, including after a failed load
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.state != stateReady {
		return m, nil
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Search):
		// extension point: classification-aware search is not built yet
		m.notice = "Search not yet implemented"
	}

	return m, nil
}

// Notice returns the current status notice, if any
func (m *Model) Notice() string {
	return m.notice
}

// View implements tea.Model
func (m *Model) View() string {
	switch m.state {
	case stateLoading:
		return fmt.Sprintf("\n %s classifying %s...\n", m.spinner.View(), m.filepath)

	case stateError:
		var builder strings.Builder
		builder.WriteString("\n " + m.notice + "\n\n")
		builder.WriteString(m.helpStyle.Render(" q:quit"))
		return builder.String()
	}

	var builder strings.Builder

	// Info bar: same coloring rule as the static banner
	builder.WriteString(render.InfoBar(m.doc.Metadata, m.backend, m.resolver))
	builder.WriteString("\n")

	builder.WriteString(m.viewport.Render())
	builder.WriteString("\n")

	builder.WriteString(m.statusStyle.Width(m.width).Render(m.statusLine()))

	if m.showHelpBar {
		builder.WriteString("\n")
		help := "j/k:scroll  ctrl+d/u:page  g/G:top/bottom  /:search  q:quit"
		builder.WriteString(m.helpStyle.Render(help))
	}

	return builder.String()
}

func (m *Model) statusLine() string {
	if m.notice != "" {
		return " " + m.notice
	}

	lineInfo := fmt.Sprintf("L%d/%d", m.viewport.CurrentLine()+1, m.doc.Len())
	percent := fmt.Sprintf("%.0f%%", m.viewport.PercentScrolled())
	return fmt.Sprintf(" %s  %s  %s", m.doc.Metadata.Filename, lineInfo, percent)
}
