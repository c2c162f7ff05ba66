package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/session"
	"github.com/san-kum/orrery/internal/viz"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

var presetInfo = map[string]string{
	"solar":      "sun and eight planets",
	"inner":      "rocky planets, close up",
	"binary":     "two stars and a wanderer",
	"frozen":     "time stopped",
	"retrograde": "everything runs backwards",
}

const (
	rotateStep   = 0.1
	zoomFactor   = 1.2
	historyLen   = 60
	frameSeconds = 16 * time.Millisecond
)

type state int

const (
	stateMenu state = iota
	stateView
)

// Options configures the viewer. With Config set the menu is skipped.
type Options struct {
	Config  *config.Config
	Watcher *config.Watcher
}

type model struct {
	state   state
	cursor  int
	presets []string

	cfg      *config.Config
	sess     *session.Session
	renderer *viz.CanvasRenderer
	watcher  *config.Watcher
	theme    viz.Theme

	paused  bool
	history []float64
	status  string
	lastErr error

	width  int
	height int
}

func newModel(opts Options) model {
	m := model{
		state:   stateMenu,
		presets: config.ListPresets(),
		watcher: opts.Watcher,
		theme:   viz.Themes[0],
		width:   80,
		height:  24,
	}
	if opts.Config != nil {
		_ = m.start(opts.Config)
	}
	return m
}

type tickMsg time.Time

type reloadMsg struct{ cfg *config.Config }

type reloadErrMsg struct{ err error }

func tick() tea.Cmd {
	return tea.Tick(frameSeconds, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// waitForReload blocks on the watcher for the next reload. A nil command is
// returned once the watcher is gone.
func waitForReload(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case cfg, ok := <-w.Events:
			if !ok {
				return nil
			}
			return reloadMsg{cfg: cfg}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return reloadErrMsg{err: err}
		}
	}
}

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForReload(m.watcher)}
	if m.state == stateView {
		cmds = append(cmds, tick())
	}
	return tea.Batch(cmds...)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case tickMsg:
		if m.state != stateView {
			return m, nil
		}
		if !m.paused {
			m.step()
		}
		return m, tick()
	case reloadMsg:
		wasMenu := m.state == stateMenu
		if err := m.start(msg.cfg); err != nil {
			m.status = ""
			return m, waitForReload(m.watcher)
		}
		m.status = "reloaded"
		if m.watcher != nil {
			m.status += " " + m.watcher.Path()
		}
		if wasMenu {
			return m, tea.Batch(waitForReload(m.watcher), tick())
		}
		return m, waitForReload(m.watcher)
	case reloadErrMsg:
		m.lastErr = msg.err
		return m, waitForReload(m.watcher)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateView:
		return m.viewKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case "enter", " ":
		cfg, err := config.GetPreset(m.presets[m.cursor])
		if err != nil {
			m.lastErr = err
			return m, nil
		}
		if err := m.start(cfg); err != nil {
			return m, nil
		}
		return m, tea.Batch(tea.ClearScreen, tick())
	}
	return m, nil
}

func (m model) viewKey(msg tea.KeyMsg) (model, tea.Cmd) {
	cam := m.sess.Camera()
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc", "m":
		m.state = stateMenu
		m.sess = nil
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "r":
		m.sess.Reset()
		m.history = m.history[:0]
	case "left", "h":
		m.sess.SetCameraAngles(cam.AngleX, cam.AngleY-rotateStep)
	case "right", "l":
		m.sess.SetCameraAngles(cam.AngleX, cam.AngleY+rotateStep)
	case "up", "k":
		m.sess.SetCameraAngles(cam.AngleX-rotateStep, cam.AngleY)
	case "down", "j":
		m.sess.SetCameraAngles(cam.AngleX+rotateStep, cam.AngleY)
	case "+", "=":
		m.sess.SetCameraDistance(cam.Distance / zoomFactor)
	case "-", "_":
		m.sess.SetCameraDistance(cam.Distance * zoomFactor)
	case "[":
		m.sess.SetTimeScale(m.sess.System().TimeScale() / 2)
	case "]":
		m.sess.SetTimeScale(m.sess.System().TimeScale() * 2)
	case "\\":
		m.sess.SetTimeScale(-m.sess.System().TimeScale())
	case "n":
		cam.Unfollow()
		m.history = m.history[:0]
	case "w":
		m.sess.SetWireframe(!m.sess.Scene().Wireframe)
	case "t":
		m.theme = viz.NextTheme(m.theme.Name)
		m.sess.SetBackground(m.theme.SceneBackground())
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			if i := int(key[0] - '0'); i < m.sess.BodyCount() {
				m.sess.Follow(i)
				m.history = m.history[:0]
			}
		}
	}
	return m, nil
}

// start replaces the running scene. On failure the current scene stays and
// the error is kept for the status line.
func (m *model) start(cfg *config.Config) error {
	sess, err := session.FromConfig(cfg)
	if err != nil {
		m.lastErr = err
		return err
	}
	m.cfg = cfg
	m.sess = sess
	m.state = stateView
	m.paused = false
	m.history = make([]float64, 0, historyLen)
	m.lastErr = nil
	m.resize()
	return nil
}

func (m *model) resize() {
	cw, ch := m.canvasSize()
	if m.renderer == nil {
		m.renderer = viz.NewCanvasRenderer(cw, ch)
	} else {
		m.renderer.Resize(cw, ch)
	}
	if m.sess != nil {
		m.sess.Resize(float64(m.renderer.Canvas.PixelWidth()), float64(m.renderer.Canvas.PixelHeight()))
	}
}

func (m model) canvasSize() (int, int) {
	return max(m.width-4, 20), max(m.height-9, 8)
}

func (m *model) step() {
	m.sess.Update(m.cfg.Dt)

	center := m.sess.Camera().Center()
	m.history = append(m.history, math.Hypot(center.X, center.Z))
	if len(m.history) > historyLen {
		m.history = m.history[1:]
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateView:
		return m.viewScene()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + viz.GradientText("o r r e r y", string(m.theme.Primary), string(m.theme.Secondary)) + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.presets {
		desc := presetInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	if m.lastErr != nil {
		b.WriteString("\n      " + viz.StatusError.Render(m.lastErr.Error()) + "\n")
	}

	b.WriteString("\n      " + viz.Separator(30) + "\n")
	b.WriteString(viz.KeyHint.Render("      ↑↓ select   enter start   q quit") + "\n")

	return b.String()
}

func (m model) viewScene() string {
	var b strings.Builder

	statusIcon := viz.StatusRunning.Render("●")
	statusText := viz.StatusRunning.Render("running")
	if m.paused {
		statusIcon = viz.StatusPaused.Render("○")
		statusText = viz.StatusPaused.Render("paused")
	}

	follow := "origin"
	if i, ok := m.sess.Camera().Followed(); ok {
		if name, ok := m.sess.BodyName(i); ok {
			follow = name
		}
	}

	b.WriteString(fmt.Sprintf("\n  %s %s  %s  %s %s  %s %s\n",
		statusIcon, lipgloss.NewStyle().Foreground(m.theme.Primary).Render(m.cfg.Preset), statusText,
		viz.MetricLabel.Render("t"), viz.MetricValue.Render(fmt.Sprintf("%.1f", m.sess.Time())),
		viz.MetricLabel.Render("×"), viz.MetricValue.Render(fmt.Sprintf("%g", m.sess.System().TimeScale()))))

	renderErr := m.sess.Render(m.renderer)
	b.WriteString(viz.Panel.BorderForeground(m.theme.Muted).Render(strings.TrimSuffix(m.renderer.Styled(), "\n")) + "\n")

	cam := m.sess.Camera()
	b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s %s\n",
		viz.MetricLabel.Render("follow"), viz.MetricValue.Render(follow),
		viz.MetricLabel.Render("ease"), viz.ProgressBar(cam.Progress(), 12),
		viz.MetricLabel.Render("zoom"), viz.MetricValue.Render(fmt.Sprintf("%.2f", cam.Distance))))
	b.WriteString(fmt.Sprintf("  %s %s\n", viz.MetricLabel.Render("center r"), viz.SparklineChart(m.history, 24)))

	if renderErr != nil {
		b.WriteString("  " + viz.StatusError.Render(renderErr.Error()) + "\n")
	} else if m.lastErr != nil {
		b.WriteString("  " + viz.StatusError.Render(m.lastErr.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString("  " + viz.Subtle.Render(m.status) + "\n")
	}

	b.WriteString("  " + viz.Separator(m.renderer.Canvas.Width) + "\n")
	b.WriteString(viz.KeyHint.Render("  ←→↑↓ rotate  ± zoom  0-9 follow  n none  [ ] speed  \\ reverse  w wire  t theme  space pause  r reset  m menu  q quit") + "\n")

	return b.String()
}

// Run starts the viewer on the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
