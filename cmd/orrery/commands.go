package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orrery/internal/analysis"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/export"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/orrery"
	"github.com/san-kum/orrery/internal/session"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/storage"
	"github.com/san-kum/orrery/internal/tui"
	"github.com/san-kum/orrery/internal/viz"
	"github.com/spf13/cobra"
)

// loadScene resolves --config or --preset (solar by default) and applies
// any scene flags the user set explicitly.
func loadScene(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case configFile != "":
		cfg, err = config.Load(configFile)
	case preset != "":
		cfg, err = config.GetPreset(preset)
	default:
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("time-scale") {
		cfg.TimeScale = timeScale
	}
	if flags.Changed("follow") {
		cfg.Camera.Follow = follow
	}
	if flags.Changed("wireframe") {
		cfg.Wireframe = wireframe
	}
	return cfg, cfg.Validate()
}

func openOutput(cmd *cobra.Command) (io.Writer, func() error, error) {
	if outFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}
	sess, err := session.FromConfig(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := sim.New(sess)
	if live {
		lr := tui.NewLiveRenderer(sess, cmd.OutOrStdout(), 72, 24, frameRate)
		defer lr.Close()
		runner.AddObserver(lr)
	}

	result, err := runner.Run(ctx, sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil && result == nil {
		return err
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "interrupted after %d steps, saving partial run\n", result.StepsTaken)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	meta := storage.RunMetadata{
		Preset:    cfg.Preset,
		Dt:        cfg.Dt,
		Duration:  cfg.Duration,
		TimeScale: cfg.TimeScale,
		Follow:    cfg.Camera.Follow,
		Stats:     periodStats(cfg, result),
	}
	runID, err := st.Save(meta, result)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", runID)
	fmt.Fprintf(out, "steps: %d  bodies: %d  errors: %d\n", result.StepsTaken, len(result.Names), len(result.Errors))
	return nil
}

// periodStats records the expected orbital period of every orbiting body so
// analyze can compare it with the measured one.
func periodStats(cfg *config.Config, result *sim.Result) map[string]float64 {
	stats := make(map[string]float64)
	for _, b := range cfg.Bodies {
		if b.Central {
			continue
		}
		p := analysis.ExpectedPeriod(b.OrbitSpeed, cfg.TimeScale)
		if !math.IsInf(p, 0) {
			stats[b.Name+".period"] = p
		}
	}
	stats["steps"] = float64(result.StepsTaken)
	return stats
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tDURATION\tDT\tSCALE\tBODIES\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\t%g\t%d\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.TimeScale,
			len(run.Bodies),
			run.Steps,
		)
	}

	return w.Flush()
}

// pickBody returns the named body, or the first orbiting body of the run.
func pickBody(meta *storage.RunMetadata, name string) (string, error) {
	if name != "" {
		for _, b := range meta.Bodies {
			if b == name {
				return name, nil
			}
		}
		return "", fmt.Errorf("%w: %q", orrery.ErrUnknownColumn, name)
	}
	for _, b := range meta.Bodies {
		if _, ok := meta.Stats[b+".period"]; ok {
			return b, nil
		}
	}
	if len(meta.Bodies) == 0 {
		return "", orrery.ErrEmptyTrace
	}
	return meta.Bodies[0], nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	tr, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if tr.Len() < 2 {
		return fmt.Errorf("%w: %s", orrery.ErrEmptyTrace, runID)
	}

	body, err := pickBody(meta, bodyName)
	if err != nil {
		return err
	}
	xs, err := tr.Column(body + ".x")
	if err != nil {
		return err
	}
	zs, err := tr.Column(body + ".z")
	if err != nil {
		return err
	}
	angles, err := tr.Column(body + ".angle")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "preset: %s\n", meta.Preset)
	fmt.Fprintf(out, "samples: %d\n\n", tr.Len())

	fmt.Fprintln(out, asciigraph.PlotMany([][]float64{xs, zs},
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Cyan, asciigraph.Magenta),
		asciigraph.Caption(body+" x (cyan), z (magenta)"),
	))
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(angles,
		asciigraph.Height(8),
		asciigraph.Width(80),
		asciigraph.Caption(body+" angle"),
	))
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	tr, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "orbit analysis: %s\n", meta.ID)
	fmt.Fprintf(out, "preset: %s  dt: %g  time scale: %g\n\n", meta.Preset, meta.Dt, meta.TimeScale)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tRADIUS\tDEVIATION\tPERIOD\tEXPECTED")
	for _, name := range meta.Bodies {
		track, err := tr.Track(name)
		if err != nil {
			return err
		}
		mean, dev, err := analysis.Circularity(track)
		if err != nil {
			return err
		}

		measured := "-"
		xs, _ := tr.Column(name + ".x")
		if p, err := analysis.DominantPeriod(xs, meta.Dt); err == nil && !math.IsInf(p, 0) && mean > 0 {
			measured = fmt.Sprintf("%.3f", p)
		}
		expected := "-"
		if p, ok := meta.Stats[name+".period"]; ok {
			expected = fmt.Sprintf("%.3f", p)
		}
		fmt.Fprintf(w, "%s\t%.3f\t%.2e\t%s\t%s\n", name, mean, dev, measured, expected)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	body, err := pickBody(meta, bodyName)
	if err != nil {
		return err
	}
	xs, err := tr.Column(body + ".x")
	if err != nil {
		return err
	}
	if len(xs) < 4 {
		return nil
	}

	ps := analysis.PowerSpectrum(xs)
	if len(ps) > 4 {
		ps = ps[:len(ps)/4+1]
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(ps,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum ("+body+".x)"),
	))

	track, _ := tr.Track(body)
	fmt.Fprintln(out)
	fmt.Fprint(out, analysis.TrackToASCII(track, 60, 20))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if tr.Len() == 0 {
		return fmt.Errorf("%w: %s", orrery.ErrEmptyTrace, args[0])
	}

	w, closeFn, err := openOutput(cmd)
	if err != nil {
		return err
	}
	if err := tr.WriteCSV(w); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	w, closeFn, err := openOutput(cmd)
	if err != nil {
		return err
	}
	if err := storage.ExportJSON(w, meta, tr); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func renderSVG(cmd *cobra.Command, args []string) error {
	var doc string

	if trackRun != "" {
		st := storage.New(dataDir)
		meta, err := st.Load(trackRun)
		if err != nil {
			return err
		}
		tr, err := st.LoadTrace(trackRun)
		if err != nil {
			return err
		}
		body, err := pickBody(meta, bodyName)
		if err != nil {
			return err
		}
		track, err := tr.Track(body)
		if err != nil {
			return err
		}
		doc = export.TrajectoryToSVG(track, svgWidth, svgHeight, "#00ccff")
		if doc == "" {
			return fmt.Errorf("%w: %s", orrery.ErrEmptyTrace, trackRun)
		}
	} else {
		cfg, err := loadScene(cmd)
		if err != nil {
			return err
		}
		sess, err := session.FromConfig(cfg)
		if err != nil {
			return err
		}
		for i := 0; i < frames; i++ {
			sess.Update(cfg.Dt)
		}

		if dots {
			r := viz.NewCanvasRenderer(max(svgWidth/8, 1), max(svgHeight/16, 1))
			sess.Resize(float64(r.Canvas.PixelWidth()), float64(r.Canvas.PixelHeight()))
			if err := sess.Render(r); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			doc = export.CanvasToSVG(r.Canvas, 4, r.Background)
		} else {
			r := export.NewSVGRenderer(svgWidth, svgHeight)
			sess.Resize(float64(svgWidth), float64(svgHeight))
			if err := sess.Render(r); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			doc = r.String()
		}
	}

	if err := os.WriteFile(svgOut, []byte(doc), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", svgOut)
	return nil
}

func watcherFor(cmd *cobra.Command) (*config.Watcher, error) {
	if !watch {
		return nil, nil
	}
	if configFile == "" {
		return nil, fmt.Errorf("%w: --watch needs --config", orrery.ErrInvalidConfig)
	}
	return config.NewWatcher(configFile)
}

func runViewer(cmd *cobra.Command, args []string) error {
	var opts tui.Options
	if configFile != "" || preset != "" {
		cfg, err := loadScene(cmd)
		if err != nil {
			return err
		}
		opts.Config = cfg
	}

	w, err := watcherFor(cmd)
	if err != nil {
		return err
	}
	if w != nil {
		defer w.Close()
		opts.Watcher = w
	}
	return tui.Run(opts)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}

	w, err := watcherFor(cmd)
	if err != nil {
		return err
	}
	if w != nil {
		defer w.Close()
	}
	return gui.Run(gui.Options{Config: cfg, Watcher: w, Width: int32(winWidth), Height: int32(winHeight)})
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if outFile != "" {
		name := preset
		if name == "" {
			name = "solar"
		}
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		if err := config.Save(outFile, cfg); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s (%s)\n", outFile, name)
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBODIES\tSCALE\tDISTANCE")
	for _, name := range config.ListPresets() {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%g\t%g\n", name, len(cfg.Bodies), cfg.TimeScale, cfg.Camera.Distance)
	}
	return w.Flush()
}

func listBodies(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tRADIUS\tORBIT\tSPEED\tCOLOR")
	for i, b := range cfg.OrbitBodies() {
		orbitStr := fmt.Sprintf("%g", b.OrbitRadius)
		if b.Central {
			orbitStr = "central"
		}
		fmt.Fprintf(w, "%d\t%s\t%g\t%s\t%g\t%s\n", i, b.Name, b.Radius, orbitStr, b.OrbitSpeed, b.Color.Hex())
	}
	return w.Flush()
}
