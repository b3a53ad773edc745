// Package player plays a workspace's light animation in the terminal.
package player

import (
	"context"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hashicorp/go-hclog"

	"github.com/agleyzer/lightseq/internal/side"
	"github.com/agleyzer/lightseq/internal/timeline"
)

const (
	frameInterval = time.Second / 30
	seekStep      = 100.0 // ms
	minSpeed      = 0.125
	maxSpeed      = 8.0
	progressWidth = 40
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	labelStyle  = lipgloss.NewStyle().Width(7)
)

// Options configures a player.
type Options struct {
	// Speed is the initial playback speed factor
	Speed float64

	// Autoplay starts playback immediately
	Autoplay bool

	// DebugLog receives diagnostics; nil disables them
	DebugLog io.Writer
}

type tickMsg time.Time

// Model is the bubbletea model driving the shared clock.
type Model struct {
	ws        *side.Workspace
	clock     *timeline.Clock
	lastFrame time.Time
	quitting  bool
	logger    hclog.Logger
}

// NewModel creates a player over ws.
func NewModel(ws *side.Workspace, o Options) Model {
	clock := timeline.NewClock(ws.TotalDuration())
	if o.Speed > 0 {
		clock.SetSpeed(o.Speed)
	}
	if o.Autoplay {
		clock.Play()
	}

	m := Model{
		ws:     ws,
		clock:  clock,
		logger: newDebugLogger(o.DebugLog),
	}
	m.logger.Debug("player created",
		"total_ms", clock.Total(),
		"slots", ws.Slots(),
		"speed", clock.Speed(),
	)
	return m
}

// Clock exposes the playback clock.
func (m Model) Clock() *timeline.Clock {
	return m.clock
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.logger.Debug("quit", "time_ms", m.clock.Time())
			return m, tea.Quit

		case " ", "p":
			m.clock.Toggle()
			m.lastFrame = time.Time{}
			m.logger.Debug("toggle", "playing", m.clock.Playing(), "time_ms", m.clock.Time())

		case "s":
			m.clock.Stop()
			m.logger.Debug("stop")

		case "left", "h":
			m.seek(m.clock.Time() - seekStep)

		case "right", "l":
			m.seek(m.clock.Time() + seekStep)

		case "home", "0":
			m.seek(0)

		case "+", "=":
			m.clock.SetSpeed(math.Min(m.clock.Speed()*2, maxSpeed))
			m.logger.Debug("speed", "factor", m.clock.Speed())

		case "-", "_":
			m.clock.SetSpeed(math.Max(m.clock.Speed()/2, minSpeed))
			m.logger.Debug("speed", "factor", m.clock.Speed())
		}

	case tickMsg:
		now := time.Time(msg)
		if m.clock.Playing() && !m.lastFrame.IsZero() {
			if !m.clock.Advance(now.Sub(m.lastFrame)) {
				m.logger.Debug("reached end", "time_ms", m.clock.Time())
			}
		}
		m.lastFrame = now
		return m, tick()
	}

	return m, nil
}

// seek jumps the clock and restarts frame timing so the jump is not
// counted as elapsed playback.
func (m *Model) seek(t float64) {
	m.clock.Seek(t)
	m.lastFrame = time.Time{}
	m.logger.Debug("seek", "time_ms", m.clock.Time())
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := "STOP"
	if m.clock.Playing() {
		state = "PLAY"
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(headerStyle.Render(fmt.Sprintf("lightseq  %s  %d / %d ms  x%.2f",
		state, int(m.clock.Time()), int(m.clock.Total()), m.clock.Speed())))
	out.WriteString("\n")
	out.WriteString(progressBar(m.clock.Time(), m.clock.Total(), progressWidth))
	out.WriteString("\n\n")

	for _, n := range side.Names {
		out.WriteString(labelStyle.Render(n.Title()))
		for i := range m.ws.Sequences(n) {
			bri := m.ws.BrightnessAt(n, i, m.clock.Time())
			out.WriteString(lightCell(bri))
			out.WriteString(" ")
		}
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(dimStyle.Render("space:play/pause  s:stop  ←/→:seek  +/-:speed  q:quit"))
	out.WriteString("\n")

	return out.String()
}

// lightCell draws one light shaded by its brightness.
func lightCell(brightness float64) string {
	val := int(math.Round(brightness / 100 * 255))
	fg := "#ffffff"
	if val > 127 {
		fg = "#000000"
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", val, val, val))).
		Foreground(lipgloss.Color(fg)).
		Width(5).
		Align(lipgloss.Center)
	return style.Render(fmt.Sprintf("%3d", int(math.Round(brightness))))
}

func progressBar(t, total float64, width int) string {
	filled := 0
	if total > 0 {
		filled = int(math.Round(t / total * float64(width)))
	}
	filled = max(0, min(filled, width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

// Run plays ws until the user quits or ctx is cancelled.
func Run(ctx context.Context, ws *side.Workspace, o Options) error {
	p := tea.NewProgram(NewModel(ws, o), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run player: %w", err)
	}
	return nil
}
