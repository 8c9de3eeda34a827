package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/session"
)

const (
	defaultRows = 16
	minSpeed    = 0.125
	maxSpeed    = 16
)

// stepMsg asks the model to advance the run started in generation gen.
type stepMsg struct{ gen int }

// Model renders one container of a session controller.
type Model struct {
	ctrl      *session.Controller
	id        string
	sortTypes []string
	typeIdx   int
	run       *session.Run
	gen       int
	speed     float64
	pacing    player.Pacing
	theme     Theme
	rows      int
	status    string
	notice    string
	lastStep  string
	result    *player.Result
	keys      keyMap
	help      help.Model
}

type Option func(*Model)

func WithTheme(name string) Option {
	return func(m *Model) { m.theme = GetTheme(name) }
}

func WithSpeed(s float64) Option {
	return func(m *Model) { m.speed = clampSpeed(s) }
}

func WithRows(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.rows = n
		}
	}
}

// NewModel builds a TUI for the container id, or for the first registered
// container when id is empty. The container's sort type is selected first.
func NewModel(ctrl *session.Controller, id string, opts ...Option) Model {
	if ids := ctrl.IDs(); id == "" && len(ids) > 0 {
		id = ids[0]
	}
	m := Model{
		ctrl:      ctrl,
		id:        id,
		sortTypes: algo.Names(),
		speed:     1,
		pacing:    ctrl.Pacing(),
		theme:     ThemeCyberpunk,
		rows:      defaultRows,
		status:    "IDLE",
		keys:      defaultKeys(),
		help:      help.New(),
	}
	if ct, err := ctrl.Container(id); err == nil {
		for i, name := range m.sortTypes {
			if name == ct.SortType {
				m.typeIdx = i
			}
		}
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SortType() string { return m.sortTypes[m.typeIdx] }

func (m Model) Sorting() bool { return m.run != nil }

// Update handles key presses and advances a running sort.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if msg.Height > 12 {
			m.rows = min(msg.Height-10, 32)
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	case stepMsg:
		if msg.gen != m.gen || m.run == nil {
			return m, nil
		}
		return m.advance()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.release()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Randomize):
		m.notice = ""
		if err := m.ctrl.Randomize(m.id); err != nil {
			m.notice = describe(err)
			return m, nil
		}
		m.result = nil
		m.status = "IDLE"
	case key.Matches(msg, m.keys.Start):
		return m.start()
	case key.Matches(msg, m.keys.Stop):
		if err := m.ctrl.Stop(m.id); err != nil {
			m.notice = describe(err)
		}
	case key.Matches(msg, m.keys.Cycle):
		if m.run != nil {
			m.notice = "cannot change sort type while sorting"
			return m, nil
		}
		m.typeIdx = (m.typeIdx + 1) % len(m.sortTypes)
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme.Name)
	case key.Matches(msg, m.keys.Faster):
		m.setSpeed(m.speed * 2)
	case key.Matches(msg, m.keys.Slower):
		m.setSpeed(m.speed / 2)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) start() (Model, tea.Cmd) {
	m.notice = ""
	run, err := m.ctrl.Begin(m.id, m.SortType())
	if err != nil {
		m.notice = describe(err)
		return m, nil
	}
	run.SetPacing(m.pacing.Scale(1 / m.speed))
	m.run = run
	m.gen++
	m.result = nil
	m.status = "SORTING"
	return m, m.tick(0)
}

// advance applies steps until one asks for a delay, then schedules the next
// tick after that delay.
func (m Model) advance() (Model, tea.Cmd) {
	for {
		s, delay, err := m.run.Step()
		if errors.Is(err, player.ErrFinished) {
			m.result = m.run.Result()
			m.release()
			m.status = "DONE"
			return m, nil
		}
		if err != nil {
			m.notice = err.Error()
			m.release()
			m.status = "FAILED"
			return m, nil
		}
		m.lastStep = s.String()
		if delay > 0 {
			return m, m.tick(delay)
		}
	}
}

func (m Model) tick(d time.Duration) tea.Cmd {
	gen := m.gen
	if d <= 0 {
		return func() tea.Msg { return stepMsg{gen: gen} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return stepMsg{gen: gen} })
}

func (m *Model) release() {
	if m.run == nil {
		return
	}
	m.run.Release()
	m.run = nil
}

func (m *Model) setSpeed(s float64) {
	m.speed = clampSpeed(s)
	if m.run != nil {
		m.run.SetPacing(m.pacing.Scale(1 / m.speed))
	}
}

func clampSpeed(s float64) float64 {
	if s < minSpeed {
		return minSpeed
	}
	if s > maxSpeed {
		return maxSpeed
	}
	return s
}

func describe(err error) string {
	switch {
	case errors.Is(err, session.ErrBusy):
		return "currently being sorted"
	case errors.Is(err, session.ErrStopUnsupported):
		return "stop is not supported: the sort runs to completion"
	case errors.Is(err, session.ErrUnknownSortType):
		return "this sorting type either does not exist or is not yet implemented"
	default:
		return err.Error()
	}
}

// View renders the chart with a stats panel and key help.
func (m Model) View() string {
	ct, err := m.ctrl.Container(m.id)
	if err != nil {
		return StatusError.Render(err.Error()) + "\n"
	}
	col := ct.Bars()

	title := GradientText(strings.ToUpper(m.SortType()), m.theme.Primary, m.theme.Secondary)
	chart := chartStyle.Render(RenderChart(col, m.rows, m.theme))

	var s strings.Builder
	s.WriteString(m.statusLine() + "\n\n")
	s.WriteString(labelStyle.Render("Container") + valueStyle.Render(m.id) + "\n")
	s.WriteString(labelStyle.Render("Bars") + valueStyle.Render(fmt.Sprintf("%d", col.Len())) + "\n")
	s.WriteString(labelStyle.Render("Speed") + valueStyle.Render(fmt.Sprintf("%gx", m.speed)) + "\n")
	s.WriteString(labelStyle.Render("Theme") + valueStyle.Render(m.theme.Name) + "\n\n")

	result := m.result
	if m.run != nil {
		result = m.run.Result()
	}
	for _, name := range metrics.Names() {
		v := 0.0
		if result != nil {
			v = result.Metrics[name]
		}
		s.WriteString(labelStyle.Render(name) + valueStyle.Render(fmt.Sprintf("%.0f", v)) + "\n")
	}
	s.WriteString("\n" + labelStyle.Render("Sorted") + ProgressBar(Sortedness(col), 16) + "\n")
	if m.lastStep != "" && m.run != nil {
		s.WriteString(labelStyle.Render("Step") + Subtle.Render(m.lastStep) + "\n")
	}
	if m.notice != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Warning).Render(m.notice) + "\n")
	}
	stats := statsStyle.Render(s.String())

	body := lipgloss.JoinHorizontal(lipgloss.Top, chart, stats)
	return title + "\n" + body + "\n" + Separator(40) + "\n" + m.help.View(m.keys) + "\n"
}

func (m Model) statusLine() string {
	switch m.status {
	case "SORTING":
		return StatusRunning.Render("● SORTING")
	case "FAILED":
		return StatusError.Render("✗ FAILED")
	case "DONE":
		return StatusRunning.Render("✓ DONE")
	default:
		return StatusIdle.Render("○ IDLE")
	}
}

// Run starts the TUI for container id on the alternate screen.
func Run(ctrl *session.Controller, id string, opts ...Option) error {
	p := tea.NewProgram(NewModel(ctrl, id, opts...), tea.WithAltScreen())
	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.release()
	}
	return err
}
