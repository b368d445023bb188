// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/session"
	statsPkg "github.com/verte-zerg/typesprint/internal/stats"
)

const (
	promptLines = 3
	contentPct  = 70
	maxBarWidth = 60
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	hintStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	clockStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	resultsStyle     = lipgloss.NewStyle().
				Padding(0, 2).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	resultLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	resultValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

type keyMap struct {
	Retry key.Binding
	Again key.Binding
	Quit  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Retry: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "retry")),
		Again: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new test")),
		Quit:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// tickMsg is one countdown tick for the timer handle id.
type tickMsg struct {
	id uint64
}

func tickCmd(id uint64) tea.Cmd {
	return tea.Tick(session.TickInterval, func(time.Time) tea.Msg {
		return tickMsg{id: id}
	})
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	sess      *session.Session
	log       zerolog.Logger
	autoStart bool

	keys keyMap
	help help.Model
	bar  progress.Model

	width  int
	height int

	// scheduled is the timer handle with a tick chain in flight.
	scheduled uint64
	rounds    []model.Round
	quitting  bool
}

// NewModel constructs a typing TUI model around sess.
func NewModel(sess *session.Session, log zerolog.Logger) *Model {
	bar := progress.New(progress.WithSolidFill("#F0F0F0"), progress.WithoutPercentage())
	bar.Width = maxBarWidth
	return &Model{
		sess:      sess,
		log:       log,
		autoStart: sess.Config().AutoStart,
		keys:      newKeyMap(),
		help:      help.New(),
		bar:       bar,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.autoStart {
		m.sess.Ready()
	}
	return m.scheduleTick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(maxBarWidth, m.contentWidth())
		return m, nil
	case tickMsg:
		return m, m.handleTick(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.sess.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Retry):
		return m, m.restart()
	case key.Matches(msg, m.keys.Again) && m.sess.Phase() == model.PhaseEnded:
		return m, m.restart()
	}
	if m.sess.InterceptKey(msg.String()) {
		return m, nil
	}
	switch msg.Type {
	case tea.KeySpace:
		m.sess.Type(' ')
	case tea.KeyRunes:
		m.sess.Type(msg.Runes...)
	default:
		return m, nil
	}
	return m, m.scheduleTick()
}

func (m *Model) handleTick(msg tickMsg) tea.Cmd {
	if !m.sess.Tick(msg.id) {
		m.log.Debug().Uint64("timer_id", msg.id).Msg("stale tick dropped")
		return nil
	}
	if m.sess.Phase() == model.PhaseEnded {
		if round, ok := m.sess.Round(); ok {
			m.rounds = append(m.rounds, round)
		}
		return nil
	}
	return tickCmd(msg.id)
}

func (m *Model) restart() tea.Cmd {
	m.sess.Start()
	if m.autoStart {
		m.sess.Ready()
	}
	return m.scheduleTick()
}

// scheduleTick starts a tick chain for the live timer handle unless one is
// already running for it.
func (m *Model) scheduleTick() tea.Cmd {
	id, live := m.sess.Timer()
	if !live || id == m.scheduled {
		return nil
	}
	m.scheduled = id
	return tickCmd(id)
}

// Rounds returns the sessions finished while the program ran.
func (m *Model) Rounds() []model.Round {
	return append([]model.Round(nil), m.rounds...)
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.sess.Snapshot()
	sections := []string{titleStyle.Render("Typing speed test")}
	if snap.Phase == model.PhaseNotStarted {
		sections = append(sections, hintStyle.Render("Start typing to begin"))
	}
	sections = append(sections, m.renderPrompt(snap), m.renderClock(snap))
	if snap.Phase == model.PhaseEnded {
		sections = append(sections, renderResults(snap.Results))
	}
	sections = append(sections, m.renderFooter(snap), m.renderHelp(snap))
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) contentWidth() int {
	w := m.width * contentPct / 100
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) renderPrompt(snap model.Snapshot) string {
	target := []rune(snap.Prompt)
	input := []rune(snap.Input)
	cursorIndex := -1
	if snap.Phase != model.PhaseEnded && len(input) < len(target) {
		cursorIndex = len(input)
	}
	styled := buildStyledRunes(target, input, cursorIndex)
	if m.width == 0 {
		return renderStyledRunes(styled)
	}
	width := m.contentWidth()
	lines := wrapLines(styled, width)
	lines = visibleLines(lines, cursorLine(lines, len(input)), promptLines)
	return lipgloss.NewStyle().Width(width).Render(renderLines(lines))
}

func (m *Model) renderClock(snap model.Snapshot) string {
	secs := int(snap.Remaining / time.Second)
	clock := clockStyle.Render(fmt.Sprintf("%ds", secs))
	return lipgloss.JoinHorizontal(lipgloss.Center, clock, "  ", m.bar.ViewAs(snap.Elapsed()))
}

func renderResults(res model.Results) string {
	body := fmt.Sprintf("%s %s   %s %s",
		resultLabelStyle.Render("WPM"),
		resultValueStyle.Render(fmt.Sprintf("%d", res.WPM)),
		resultLabelStyle.Render("Accuracy"),
		resultValueStyle.Render(fmt.Sprintf("%d%%", res.Accuracy)),
	)
	return resultsStyle.Render(body)
}

func (m *Model) renderFooter(snap model.Snapshot) string {
	typed := []rune(snap.Input)
	correct := statsPkg.CorrectCount([]rune(snap.Prompt), typed)
	elapsed := snap.Duration - snap.Remaining
	wpm, _, acc := statsPkg.SessionMetrics(correct, len(typed), elapsed.Milliseconds())

	segments := []string{
		fmt.Sprintf("Typed %d", len(typed)),
		fmt.Sprintf("Live %.1f WPM · %.1f%%", wpm, acc*100),
	}
	if n := len(m.rounds); n > 0 {
		last := m.rounds[n-1].Results
		segments = append(segments, fmt.Sprintf("Last %d WPM · %d%%", last.WPM, last.Accuracy))
		segments = append(segments, fmt.Sprintf("Rounds %d", n))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) renderHelp(snap model.Snapshot) string {
	bindings := []key.Binding{m.keys.Retry, m.keys.Quit}
	if snap.Phase == model.PhaseEnded {
		bindings = []key.Binding{m.keys.Again, m.keys.Retry, m.keys.Quit}
	}
	return m.help.ShortHelpView(bindings)
}
