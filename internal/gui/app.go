// Package gui opens a raylib window on a session. Input maps onto the
// session's control surface; the scene is drawn through WindowRenderer.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/session"
)

var (
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColError   = rl.NewColor(255, 80, 80, 255)
)

const (
	rotateSpeed = 1.5 // radians per second of key hold
	dragSpeed   = 0.01
	zoomFactor  = 1.1
	maxFrameDt  = 0.1
)

type Options struct {
	Config  *config.Config
	Watcher *config.Watcher
	Width   int32
	Height  int32
}

type App struct {
	cfg      *config.Config
	sess     *session.Session
	renderer *WindowRenderer
	watcher  *config.Watcher
	paused   bool
	status   string
	lastErr  error
}

func initWindow(w, h int32) {
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 720
	}
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w, h, "orrery")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	sess, err := session.FromConfig(cfg)
	if err != nil {
		return err
	}

	initWindow(opts.Width, opts.Height)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return fmt.Errorf("gui: window init failed")
	}

	a := &App{
		cfg:      cfg,
		sess:     sess,
		renderer: NewWindowRenderer(),
		watcher:  opts.Watcher,
	}
	a.resize()
	a.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) resize() {
	a.renderer.Sync()
	a.sess.Resize(float64(a.renderer.Width), float64(a.renderer.Height))
}

func (a *App) pollReload() {
	if a.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-a.watcher.Events:
		if !ok {
			a.watcher = nil
			return
		}
		sess, err := session.FromConfig(cfg)
		if err != nil {
			a.lastErr = err
			return
		}
		a.cfg, a.sess = cfg, sess
		a.resize()
		a.status = "reloaded " + a.watcher.Path()
		a.lastErr = nil
	case err, ok := <-a.watcher.Errors:
		if ok {
			a.lastErr = err
		}
	default:
	}
}

func (a *App) Update() {
	a.pollReload()

	if rl.IsWindowResized() {
		a.resize()
	}

	dt := float64(rl.GetFrameTime())
	if dt > maxFrameDt {
		dt = maxFrameDt
	}

	a.handleInput(dt)

	if !a.paused {
		a.sess.Update(dt)
	}
}

func (a *App) handleInput(dt float64) {
	cam := a.sess.Camera()
	ax, ay := cam.AngleX, cam.AngleY

	step := rotateSpeed * dt
	if rl.IsKeyDown(rl.KeyLeft) {
		ay -= step
	}
	if rl.IsKeyDown(rl.KeyRight) {
		ay += step
	}
	if rl.IsKeyDown(rl.KeyUp) {
		ax -= step
	}
	if rl.IsKeyDown(rl.KeyDown) {
		ax += step
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		d := rl.GetMouseDelta()
		ay += float64(d.X) * dragSpeed
		ax += float64(d.Y) * dragSpeed
	}
	a.sess.SetCameraAngles(ax, ay)

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		if wheel > 0 {
			a.sess.SetCameraDistance(cam.Distance / zoomFactor)
		} else {
			a.sess.SetCameraDistance(cam.Distance * zoomFactor)
		}
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.sess.SetCameraDistance(cam.Distance / zoomFactor)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.sess.SetCameraDistance(cam.Distance * zoomFactor)
	}

	if rl.IsKeyPressed(rl.KeyLeftBracket) {
		a.sess.SetTimeScale(a.sess.System().TimeScale() / 2)
	}
	if rl.IsKeyPressed(rl.KeyRightBracket) {
		a.sess.SetTimeScale(a.sess.System().TimeScale() * 2)
	}
	if rl.IsKeyPressed(rl.KeyBackSlash) {
		a.sess.SetTimeScale(-a.sess.System().TimeScale())
	}

	for i := int32(0); i <= 9; i++ {
		if rl.IsKeyPressed(rl.KeyZero+i) && int(i) < a.sess.BodyCount() {
			a.sess.Follow(int(i))
		}
	}
	if rl.IsKeyPressed(rl.KeyN) {
		a.sess.Follow(-1)
	}
	if rl.IsKeyPressed(rl.KeyW) {
		a.sess.SetWireframe(!a.sess.Scene().Wireframe)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.paused = !a.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.sess.Reset()
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()

	if err := a.sess.Render(a.renderer); err != nil {
		a.lastErr = err
	}
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	rl.DrawText("orrery", 30, 30, 24, ColSelect)
	rl.DrawText(fmt.Sprintf(":: %s", a.cfg.Preset), 130, 34, 16, ColText)

	status := "RUNNING"
	col := ColSelect
	if a.paused {
		status = "PAUSED"
		col = ColTextDim
	}
	rl.DrawText(status, a.renderer.Width-130, 30, 16, col)

	follow := "origin"
	if i, ok := a.sess.Camera().Followed(); ok {
		if name, ok := a.sess.BodyName(i); ok {
			follow = name
		}
	}
	rl.DrawText(fmt.Sprintf("t %.1f   x%g   follow %s   zoom %.2f",
		a.sess.Time(), a.sess.System().TimeScale(), follow, a.sess.Camera().Distance),
		30, 64, 14, ColAccent)

	y := a.renderer.Height - 40
	if a.lastErr != nil {
		rl.DrawText(a.lastErr.Error(), 30, y-24, 14, ColError)
	} else if a.status != "" {
		rl.DrawText(a.status, 30, y-24, 14, ColTextDim)
	}
	rl.DrawText("[ARROWS/DRAG] ROTATE  [WHEEL/+-] ZOOM  [0-9] FOLLOW  [N] NONE  [ ] SPEED  [W] WIRE  [SPACE] PAUSE  [R] RESET  [Q] QUIT",
		30, y, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), a.renderer.Width-90, y, 14, ColTextDim)
}
