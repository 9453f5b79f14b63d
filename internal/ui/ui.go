// Package ui provides the terminal user interface using Bubble Tea:
// a split-pane sky view with the player's attitude on the left and
// the target on the right.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skymatch/internal/game"
	"github.com/litescript/ls-skymatch/internal/logging"
	"github.com/litescript/ls-skymatch/internal/version"
)

// TickMsg triggers the periodic redraw.
type TickMsg time.Time

// redrawInterval is the render cadence; the game itself is
// time-unaware.
const redrawInterval = 50 * time.Millisecond

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("37"))
	helpStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 2)
)

// Model is the root Bubble Tea model. It owns the session; rendering
// works from read-only snapshots.
type Model struct {
	session *game.Session
	keys    KeyMap
	help    help.Model

	width  int
	height int
	ready  bool

	// Last sky-rebuild failure, shown in the status line.
	lastErr string
}

// New creates the root model around a session.
func New(session *game.Session) Model {
	return Model{
		session: session,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

	case TickMsg:
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		// Bank the round in progress so the epilogue counts it.
		m.rebuild(m.session.Restart())
		return m, tea.Quit

	case key.Matches(msg, keys.PitchUp):
		m.session.Rotate(1, 0, 0)
	case key.Matches(msg, keys.PitchDown):
		m.session.Rotate(-1, 0, 0)
	case key.Matches(msg, keys.YawUp):
		m.session.Rotate(0, 1, 0)
	case key.Matches(msg, keys.YawDown):
		m.session.Rotate(0, -1, 0)
	case key.Matches(msg, keys.RollUp):
		m.session.Rotate(0, 0, 1)
	case key.Matches(msg, keys.RollDown):
		m.session.Rotate(0, 0, -1)

	case key.Matches(msg, keys.StepUp):
		m.session.AdjustStep(true)
	case key.Matches(msg, keys.StepDown):
		m.session.AdjustStep(false)
	case key.Matches(msg, keys.ZoomOut):
		m.session.AdjustZoom(true)
	case key.Matches(msg, keys.ZoomIn):
		m.session.AdjustZoom(false)

	case key.Matches(msg, keys.StarsUp):
		m.rebuild(m.session.AdjustStarCount(true))
	case key.Matches(msg, keys.StarsDown):
		m.rebuild(m.session.AdjustStarCount(false))
	case key.Matches(msg, keys.Catalog):
		m.rebuild(m.session.ToggleCatalog())

	case key.Matches(msg, keys.Names):
		m.session.ToggleStarNames()
	case key.Matches(msg, keys.Distance):
		m.session.ToggleDistance()
	case key.Matches(msg, keys.Pane):
		m.session.ToggleSinglePane()
	case key.Matches(msg, keys.Help):
		m.session.ToggleHelp()

	case key.Matches(msg, keys.Restart):
		m.rebuild(m.session.Restart())
	}
	return m, nil
}

// rebuild records a sky-rebuild failure for the status line; the
// session keeps playing on its previous sky.
func (m *Model) rebuild(err error) {
	if err != nil {
		m.lastErr = err.Error()
		logging.L().Warnw("sky rebuild failed", "error", err)
		return
	}
	m.lastErr = ""
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	snap := m.session.Snapshot()

	header := m.renderHeader(snap)
	headerLines := strings.Count(header, "\n") + 1
	footer := m.help.ShortHelpView(m.keys.ShortHelp())

	paneHeight := m.height - headerLines - 1
	if paneHeight < 1 {
		paneHeight = 1
	}

	var body string
	if snap.Options.SinglePane {
		body = renderPane(snap, snap.Target, m.width, paneHeight)
	} else {
		body = m.renderSplit(snap, paneHeight)
	}

	if snap.Options.ShowHelp {
		body = m.overlayHelp(body)
	}

	return header + "\n" + body + "\n" + footer
}

func (m Model) renderSplit(snap game.Snapshot, paneHeight int) string {
	paneWidth := (m.width - 1) / 2
	left := renderPane(snap, snap.Real, paneWidth, paneHeight)
	right := renderPane(snap, snap.Target, paneWidth, paneHeight)

	border := strings.TrimSuffix(strings.Repeat(borderStyle.Render("│")+"\n", paneHeight), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, left, border, right)
}

func (m Model) renderHeader(snap game.Snapshot) string {
	source := snap.Options.CatalogSource
	if source == "" {
		source = "random"
	}

	status := fmt.Sprintf(
		"Stars: %d, catalog: %s. Step: %.4f, zoom: %.3f, moves: %d, games: %d, score: %.6f",
		snap.Options.StarCount, source, snap.Step, snap.FoV.Zoom(),
		snap.Moves, snap.Games, snap.Score,
	)

	lines := []string{
		statusStyle.Render(status),
		dimStyle.Render("State : " + game.QuatString(snap.Real)),
	}
	if snap.Options.ShowDistance {
		lines = append(lines, dimStyle.Render(fmt.Sprintf(
			"Target: %s,  distance: %.6f", game.QuatString(snap.Target), snap.Distance)))
	}
	if m.lastErr != "" {
		lines = append(lines, dimStyle.Render("! "+m.lastErr))
	}
	return strings.Join(lines, "\n")
}

// overlayHelp renders the full key table in place of the top of the
// body.
func (m Model) overlayHelp(body string) string {
	title := fmt.Sprintf("ls-skymatch v%s", version.Version)
	table := m.help.FullHelpView(m.keys.FullHelp())
	box := helpStyle.Render(title + "\n\n" + table)

	bodyLines := strings.Split(body, "\n")
	boxLines := strings.Split(box, "\n")
	for i, line := range boxLines {
		if i < len(bodyLines) {
			bodyLines[i] = line
		}
	}
	return strings.Join(bodyLines, "\n")
}
