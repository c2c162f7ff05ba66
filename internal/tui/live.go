package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/san-kum/orrery/internal/session"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer is a sim.Observer that redraws the session to out at most
// frameRate times per second while a headless run progresses.
type LiveRenderer struct {
	sess      *session.Session
	out       io.Writer
	frameRate int
	lastFrame time.Time
	canvas    *viz.CanvasRenderer
	started   bool
}

func NewLiveRenderer(sess *session.Session, out io.Writer, width, height, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	r := &LiveRenderer{
		sess:      sess,
		out:       out,
		frameRate: frameRate,
		canvas:    viz.NewCanvasRenderer(width, height),
	}
	sess.Resize(float64(r.canvas.Canvas.PixelWidth()), float64(r.canvas.Canvas.PixelHeight()))
	return r
}

func (r *LiveRenderer) OnFrame(f sim.Frame) {
	if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		return
	}
	r.lastFrame = time.Now()

	if !r.started {
		fmt.Fprint(r.out, hideCursor)
		r.started = true
	}

	err := r.sess.Render(r.canvas)
	fmt.Fprint(r.out, clearScreen)
	fmt.Fprint(r.out, r.canvas.Styled())
	fmt.Fprintf(r.out, "%s %s  %s %d\n",
		viz.MetricLabel.Render("t"), viz.MetricValue.Render(fmt.Sprintf("%.2f", f.Time)),
		viz.MetricLabel.Render("step"), f.Step)
	if err != nil {
		fmt.Fprintln(r.out, viz.StatusError.Render(err.Error()))
	}
}

// Close restores the cursor.
func (r *LiveRenderer) Close() {
	if r.started {
		fmt.Fprint(r.out, showCursor)
	}
}
