package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	dt         float64
	duration   float64
	timeScale  float64
	follow     int
	wireframe  bool
	frameRate  int
	live       bool
	watch      bool
	outFile    string
	bodyName   string
	svgOut     string
	svgWidth   int
	svgHeight  int
	winWidth   int
	winHeight  int
	frames     int
	dots       bool
	trackRun   string
)

// main registers the orrery commands. With no subcommand the terminal
// viewer opens on the preset menu, or straight on --config/--preset.
func main() {
	rootCmd := &cobra.Command{
		Use:          "orrery",
		Short:        "orbiting bodies, camera and projection playground",
		SilenceUsage: true,
		RunE:         runViewer,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".orrery", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scene file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "scene preset")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scene headlessly and store the trace",
		Args:  cobra.NoArgs,
		RunE:  runScene,
	}
	sceneFlags(runCmd)
	runCmd.Flags().BoolVar(&live, "live", false, "draw frames to the terminal while running")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate for --live")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a body's coordinates over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&bodyName, "body", "", "body name (default: first orbiting body)")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "orbital period and circularity per body",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().StringVar(&bodyName, "body", "", "body to plot the spectrum and track of")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run trace to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render one frame, or a stored body track, to SVG",
		Args:  cobra.NoArgs,
		RunE:  renderSVG,
	}
	sceneFlags(svgCmd)
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "orrery.svg", "output file")
	svgCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	svgCmd.Flags().IntVar(&frames, "frames", 0, "updates to run before rendering")
	svgCmd.Flags().BoolVar(&dots, "dots", false, "render through the braille canvas")
	svgCmd.Flags().StringVar(&trackRun, "track", "", "stored run id; draws --body's path instead of a frame")
	svgCmd.Flags().StringVar(&bodyName, "body", "", "body for --track")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "open the terminal viewer on a scene",
		Args:  cobra.NoArgs,
		RunE:  runViewer,
	}
	liveCmd.Flags().BoolVar(&watch, "watch", false, "reload when --config changes")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open a window on a scene",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&watch, "watch", false, "reload when --config changes")
	guiCmd.Flags().IntVar(&winWidth, "width", 1280, "window width")
	guiCmd.Flags().IntVar(&winHeight, "height", 720, "window height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scene presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}
	presetsCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the --preset scene to this yaml file")

	bodiesCmd := &cobra.Command{
		Use:   "bodies",
		Short: "list the bodies of a scene",
		Args:  cobra.NoArgs,
		RunE:  listBodies,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, analyzeCmd, exportCSVCmd, exportJSONCmd, svgCmd, liveCmd, guiCmd, presetsCmd, bodiesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func sceneFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", 0.016, "timestep")
	cmd.Flags().Float64Var(&duration, "time", 60, "duration")
	cmd.Flags().Float64Var(&timeScale, "time-scale", 1, "simulation speed multiplier")
	cmd.Flags().IntVar(&follow, "follow", -1, "body index to follow (-1 for none)")
	cmd.Flags().BoolVar(&wireframe, "wireframe", false, "draw wireframe spheres")
}
