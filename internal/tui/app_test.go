package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/orbit"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/session"
	"github.com/san-kum/orrery/internal/sim"
)

func press(m model, keys ...string) model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func TestMenuStartsPreset(t *testing.T) {
	m := newModel(Options{})
	if m.state != stateMenu {
		t.Fatal("expected menu state")
	}
	if !strings.Contains(m.View(), "solar") {
		t.Error("expected presets in menu")
	}

	// presets are sorted: binary, frozen, inner, ...
	m = press(m, "down", "enter")
	if m.state != stateView {
		t.Fatal("expected view state")
	}
	if m.cfg.Preset != "frozen" {
		t.Errorf("expected frozen, got %s", m.cfg.Preset)
	}
}

func TestViewKeys(t *testing.T) {
	m := newModel(Options{Config: config.DefaultConfig()})
	if m.state != stateView {
		t.Fatal("expected view state with a config")
	}

	d := m.sess.Camera().Distance
	m = press(m, "+")
	if got := m.sess.Camera().Distance; got >= d {
		t.Errorf("expected zoom in, distance %v -> %v", d, got)
	}

	m = press(m, "3")
	if i, ok := m.sess.Camera().Followed(); !ok || i != 3 {
		t.Errorf("expected follow 3, got %d %v", i, ok)
	}
	m = press(m, "n")
	if _, ok := m.sess.Camera().Followed(); ok {
		t.Error("expected follow cleared")
	}

	// index past the body count is ignored
	m = press(m, "3", "9")
	if i, _ := m.sess.Camera().Followed(); i != 3 {
		t.Errorf("expected follow to stay on 3, got %d", i)
	}

	m = press(m, "]")
	if m.sess.System().TimeScale() != 2 {
		t.Errorf("expected time scale 2, got %v", m.sess.System().TimeScale())
	}
	m = press(m, "\\")
	if m.sess.System().TimeScale() != -2 {
		t.Errorf("expected reversed time scale, got %v", m.sess.System().TimeScale())
	}

	m = press(m, "w")
	if !m.sess.Scene().Wireframe {
		t.Error("expected wireframe on")
	}

	m = press(m, "left")
	if m.sess.Camera().AngleY >= 0 {
		t.Errorf("expected negative yaw, got %v", m.sess.Camera().AngleY)
	}

	m = press(m, " ")
	if !m.paused {
		t.Error("expected paused")
	}
}

func TestTickAdvancesUnlessPaused(t *testing.T) {
	m := newModel(Options{Config: config.DefaultConfig()})

	next, cmd := m.Update(tickMsg{})
	m = next.(model)
	if cmd == nil {
		t.Error("expected another tick")
	}
	if m.sess.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", m.sess.Frames())
	}

	m = press(m, "p")
	next, _ = m.Update(tickMsg{})
	m = next.(model)
	if m.sess.Frames() != 1 {
		t.Errorf("expected paused session to hold, got %d frames", m.sess.Frames())
	}

	if !strings.Contains(m.View(), "paused") {
		t.Error("expected paused status in view")
	}
}

func TestReloadReplacesSession(t *testing.T) {
	m := newModel(Options{Config: config.DefaultConfig()})
	old := m.sess

	cfg, _ := config.GetPreset("binary")
	m.watcher = nil
	next, _ := m.Update(reloadMsg{cfg: cfg})
	m = next.(model)
	if m.sess == old || m.sess.BodyCount() != 3 {
		t.Errorf("expected binary session, got %d bodies", m.sess.BodyCount())
	}
}

func TestReloadInvalidKeepsSession(t *testing.T) {
	m := newModel(Options{Config: config.DefaultConfig()})
	old := m.sess

	bad := config.DefaultConfig()
	bad.Dt = 0
	next, _ := m.Update(reloadMsg{cfg: bad})
	m = next.(model)

	if m.sess != old {
		t.Error("expected the running session to stay")
	}
	if !errors.Is(m.lastErr, orrery.ErrInvalidConfig) {
		t.Errorf("expected invalid config error, got %v", m.lastErr)
	}
	if strings.Contains(m.status, "reloaded") {
		t.Errorf("status claims a reload: %q", m.status)
	}
	if !strings.Contains(m.View(), "dt must be positive") {
		t.Error("expected the validation error in the view")
	}
}

func TestLiveRenderer(t *testing.T) {
	sess := session.New(orbit.SolarSystem())
	var buf bytes.Buffer
	live := NewLiveRenderer(sess, &buf, 20, 8, 1000)

	r := sim.New(sess)
	r.AddObserver(live)
	if _, err := r.Run(context.Background(), sim.Config{Dt: 0.1, Duration: 0.1}); err != nil {
		t.Fatal(err)
	}
	live.Close()

	out := buf.String()
	if !strings.Contains(out, clearScreen) || !strings.HasSuffix(out, showCursor) {
		t.Errorf("unexpected live output %q", out)
	}
}
