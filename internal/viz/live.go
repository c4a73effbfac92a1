package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/tweeny/internal/config"
	"github.com/san-kum/tweeny/internal/tween"
)

const (
	canvasWidth     = 60
	canvasHeight    = 8
	barWidth        = 40
	historyCapacity = 240
	refreshRate     = 60
)

type TickMsg time.Time

// Model shows one session: a bar per property and the trajectory of the
// first animated property.
type Model struct {
	engine  *tween.Engine
	cfg     *config.Config
	session *tween.Session
	keys    []string
	bar     progress.Model
	history map[string][]float64
	canvas  *Canvas
	theme   Theme
	styles  styles
	ticks   int
}

// NewModel prepares a live view; the session starts in Init.
func NewModel(engine *tween.Engine, cfg *config.Config) Model {
	theme := GetTheme("")
	return Model{
		engine:  engine,
		cfg:     cfg,
		keys:    animatedKeys(cfg.From, cfg.To),
		bar:     newBar(theme),
		history: make(map[string][]float64),
		canvas:  NewCanvas(canvasWidth, canvasHeight),
		theme:   theme,
		styles:  newStyles(theme),
	}
}

func newBar(t Theme) progress.Model {
	return progress.New(
		progress.WithScaledGradient(string(t.Secondary), string(t.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)
}

// animatedKeys lists the properties a session interpolates on ticks.
func animatedKeys(from, to tween.Props) []string {
	keys := make([]string, 0, len(from))
	for _, k := range from.Keys() {
		if _, ok := to[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/refreshRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick()
}

// Start begins a fresh session from the configured start values.
func (m *Model) Start() {
	if m.session != nil {
		m.session.Stop(false)
	}
	m.history = make(map[string][]float64)
	m.session = m.engine.TweenWithOptions(tween.Options{
		Subject:  m.cfg.From.Clone(),
		Target:   m.cfg.To,
		Duration: m.cfg.Duration(),
		Easing:   m.cfg.Easing,
	})
}

func (m Model) Session() *tween.Session {
	return m.session
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.session != nil {
				m.session.Stop(false)
			}
			return m, tea.Quit
		case " ":
			if m.session != nil {
				m.session.Stop(false)
			}
		case "enter":
			if m.session != nil {
				m.session.Stop(true)
			}
		case "r":
			m.Start()
		case "t":
			m.theme = NextTheme(m.theme)
			m.styles = newStyles(m.theme)
			m.bar = newBar(m.theme)
		}
	case TickMsg:
		if m.session == nil {
			m.Start()
		}
		m.observe()
		return m, tick()
	}
	return m, nil
}

func (m *Model) observe() {
	m.ticks++
	snap := m.session.Snapshot()
	for _, k := range m.keys {
		h := append(m.history[k], snap[k])
		if len(h) > historyCapacity {
			h = h[len(h)-historyCapacity:]
		}
		m.history[k] = h
	}
}

// fraction maps v onto [0, 1] between the start and target of key.
// fraction is how far key has travelled. Keys without a target never move
// and count as done.
func (m Model) fraction(key string, v float64) float64 {
	to, ok := m.cfg.To[key]
	from := m.cfg.From[key]
	if !ok || from == to {
		return 1
	}
	return math.Max(0, math.Min(1, (v-from)/(to-from)))
}

func (m Model) View() string {
	if m.session == nil {
		return "starting...\n"
	}

	var b strings.Builder

	status := m.styles.running.Render("RUNNING")
	if m.session.State() == tween.Stopped {
		status = m.styles.stopped.Render("STOPPED")
	}
	b.WriteString(m.styles.header.Render(fmt.Sprintf("tweeny  %s  %v  %d fps", m.cfg.Easing, m.cfg.Duration(), m.cfg.FPS)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %3.0f%%\n\n", status, m.session.Progress()*100))

	snap := m.session.Snapshot()
	for _, k := range m.keys {
		v := snap[k]
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.label.Render(k),
			m.bar.ViewAs(m.fraction(k, v)),
			"  ",
			m.styles.value.Render(fmt.Sprintf("%10.3f", v)),
		))
		b.WriteString("\n")
	}

	if len(m.keys) > 0 {
		k := m.keys[0]
		lo, hi := m.cfg.From[k], m.cfg.To[k]
		if lo > hi {
			lo, hi = hi, lo
		}
		for _, v := range m.history[k] {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
		m.canvas.Clear()
		m.canvas.PlotSeries(m.history[k], lo, hi, m.expectedSamples())
		b.WriteString(m.styles.graph.Render(m.canvas.String()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.help.Render("space stop  enter finish  r restart  t theme  q quit"))
	return b.String()
}

// expectedSamples is how many view ticks the whole tween spans.
func (m Model) expectedSamples() int {
	n := int(m.cfg.Duration().Seconds()*refreshRate) + 1
	if n > historyCapacity {
		return historyCapacity
	}
	return n
}

// Run shows the live view until the user quits.
func Run(engine *tween.Engine, cfg *config.Config) error {
	_, err := tea.NewProgram(NewModel(engine, cfg), tea.WithAltScreen()).Run()
	return err
}
