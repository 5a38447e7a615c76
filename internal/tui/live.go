package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kws/galaxy/internal/body"
	"github.com/kws/galaxy/internal/physics"
	"github.com/kws/galaxy/internal/viz"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

const rotateStep = 0.1

// Model is the live terminal view: it owns the render cadence and drives
// the integrator between frames, several steps per frame so the collision
// unfolds at a watchable speed.
type Model struct {
	integ    *physics.Integrator
	galaxies []*body.Galaxy
	regen    func() []*body.Galaxy

	canvas  *viz.Canvas
	proj    *viz.Projector
	palette *viz.Palette

	paused        bool
	step          int
	stepsPerFrame int
	frameRate     int
	width, height int
}

func New(integ *physics.Integrator, galaxies []*body.Galaxy, regen func() []*body.Galaxy, frameRate int) *Model {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &Model{
		integ:         integ,
		galaxies:      galaxies,
		regen:         regen,
		canvas:        viz.NewCanvas(78, 20),
		proj:          viz.NewProjector(14),
		palette:       viz.NewPalette(),
		stepsPerFrame: 4,
		frameRate:     frameRate,
		width:         80,
		height:        24,
	}
}

type tickMsg time.Time

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd { return m.tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			if m.regen != nil {
				m.galaxies = m.regen()
				m.step = 0
			}
		case "up":
			m.proj.Rotate(-rotateStep, 0)
		case "down":
			m.proj.Rotate(rotateStep, 0)
		case "left":
			m.proj.Rotate(0, -rotateStep)
		case "right":
			m.proj.Rotate(0, rotateStep)
		case "+", "=":
			m.proj.Zoom(1.2)
		case "-":
			m.proj.Zoom(1 / 1.2)
		case "0":
			m.proj.ResetView()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 2
		h := msg.Height - 4
		if w < 10 {
			w = 10
		}
		if h < 5 {
			h = 5
		}
		m.canvas = viz.NewCanvas(w, h)
		return m, nil

	case tickMsg:
		if !m.paused {
			for i := 0; i < m.stepsPerFrame; i++ {
				m.integ.UpdateGalaxies(m.galaxies)
				m.step++
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) View() string {
	m.canvas.Clear()
	body.AllStars(m.galaxies, func(s *body.Star, _ *body.Galaxy, _ int) {
		if x, y, ok := m.proj.Project(s.Position, m.canvas); ok {
			m.canvas.Set(x, y)
		}
	})

	var sb strings.Builder

	sb.WriteString(titleStyle.Render("galaxy"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  step %d  t=%.2f", m.step, float64(m.step)*m.integ.Dt)))
	if m.paused {
		sb.WriteString("  " + pausedStyle.Render("paused"))
	}
	sb.WriteByte('\n')

	for i, g := range m.galaxies {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.palette.Hex(i)))
		sb.WriteString(swatch.Render(fmt.Sprintf("● %d stars", len(g.Stars))))
		sb.WriteString("  ")
	}
	sb.WriteByte('\n')

	sb.WriteString(m.canvas.String())
	sb.WriteString(dimStyle.Render("space pause · r regenerate · arrows rotate · +/- zoom · 0 reset · q quit"))

	return sb.String()
}
