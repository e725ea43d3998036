package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/GerhardMe/spacetime/internal/config"
	"github.com/GerhardMe/spacetime/internal/diagram"
	"github.com/GerhardMe/spacetime/internal/export"
	"github.com/GerhardMe/spacetime/internal/relativity"
	"github.com/GerhardMe/spacetime/internal/scene"
	"github.com/GerhardMe/spacetime/internal/storage"
	"github.com/GerhardMe/spacetime/internal/tui"
	"github.com/GerhardMe/spacetime/internal/viz"
)

var (
	dataDir    string
	themeName  string
	sceneID    string
	configFile string
	preset     string
	// one-shot render dimensions (terminal cells)
	termWidth  int
	termHeight int
	// export dimensions (pixels) and target
	imgWidth  int
	imgHeight int
	outPath   string
	format    string
	// render toggle overrides
	showGrid    bool
	showCones   bool
	showSimul   bool
	showPresent bool
	showTicks   bool
	// table
	asCSV bool
	// boost probe
	eventX  float64
	eventT  float64
	probeV  float64
	probeX0 float64
	probeU  float64
	// plot resolution
	points int
	maxV   float64
	// sweep target
	objName string
)

// main registers the command tree and runs it; with no subcommand the
// interactive diagram starts. Execution errors exit with status 1.
func main() {
	rootCmd := &cobra.Command{
		Use:   "spacetime",
		Short: "interactive Minkowski diagrams in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSource()
			if err != nil {
				return err
			}
			return tui.Run(cfg, dataDir)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".spacetime", "data directory")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "color theme")
	rootCmd.PersistentFlags().StringVar(&sceneID, "scene", "", "saved scene id")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scene file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "built-in preset")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the diagram once to stdout",
		RunE:  renderScene,
	}
	renderCmd.Flags().IntVar(&termWidth, "width", 80, "canvas width (cells)")
	renderCmd.Flags().IntVar(&termHeight, "height", 24, "canvas height (cells)")
	renderCmd.Flags().BoolVar(&showGrid, "grid", true, "coordinate grid")
	renderCmd.Flags().BoolVar(&showCones, "cones", false, "lightcones")
	renderCmd.Flags().BoolVar(&showSimul, "simul", false, "simultaneity lines")
	renderCmd.Flags().BoolVar(&showPresent, "present", true, "present line")
	renderCmd.Flags().BoolVar(&showTicks, "ticks", false, "proper-time ticks")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the diagram to svg or png",
		RunE:  exportScene,
	}
	exportCmd.Flags().StringVar(&outPath, "out", "", "output path (default diagram.<format>)")
	exportCmd.Flags().StringVar(&format, "format", "svg", "svg or png")
	exportCmd.Flags().IntVar(&imgWidth, "width", 960, "image width (px)")
	exportCmd.Flags().IntVar(&imgHeight, "height", 720, "image height (px)")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "per-object frame table",
		RunE:  objectTable,
	}
	tableCmd.Flags().BoolVar(&asCSV, "csv", false, "emit csv instead of a table")

	boostCmd := &cobra.Command{
		Use:   "boost",
		Short: "transform one event into a moving frame",
		RunE:  boostEvent,
	}
	boostCmd.Flags().Float64Var(&eventX, "x", 0, "event position (lab)")
	boostCmd.Flags().Float64Var(&eventT, "t", 0, "event time (lab)")
	boostCmd.Flags().Float64Var(&probeV, "v", 0.5, "frame velocity")
	boostCmd.Flags().Float64Var(&probeX0, "x0", 0, "frame offset at t=0")
	boostCmd.Flags().Float64Var(&probeU, "u", 0, "object velocity to compose")

	gammaCmd := &cobra.Command{
		Use:   "gamma",
		Short: "plot the Lorentz factor over a velocity range",
		RunE:  gammaPlot,
	}
	gammaCmd.Flags().IntVar(&points, "points", 81, "sample count")
	gammaCmd.Flags().Float64Var(&maxV, "max", 0.99, "velocity range bound")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "plot an object's frame velocity as the observer sweeps",
		RunE:  sweepObject,
	}
	sweepCmd.Flags().StringVar(&objName, "object", "", "object name (default first)")
	sweepCmd.Flags().IntVar(&points, "points", 81, "sample count")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("built-in presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s %s (%d objects)\n", name, p.Title, len(p.Objects))
			}
			return nil
		},
	}

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list saved scenes",
		RunE:  listScenes,
	}

	saveCmd := &cobra.Command{
		Use:   "save [title]",
		Short: "save the selected scene to the store",
		Args:  cobra.MaximumNArgs(1),
		RunE:  saveScene,
	}

	rootCmd.AddCommand(renderCmd, exportCmd, tableCmd, boostCmd, gammaCmd, sweepCmd, presetsCmd, scenesCmd, saveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSource resolves the scene source: a saved scene beats a config
// file beats a named preset beats the default preset. The result is
// always a private copy, so a theme override never leaks into the
// preset table.
func loadSource() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case sceneID != "":
		loaded, err := storage.New(dataDir).LoadConfig(sceneID)
		if err != nil {
			return nil, fmt.Errorf("load scene %s: %w", sceneID, err)
		}
		cfg = loaded
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	default:
		cfg = config.GetPreset(config.DefaultPreset)
	}

	c := *cfg
	if themeName != "" {
		c.Appearance.Theme = themeName
	}
	return &c, nil
}

func renderScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadSource()
	if err != nil {
		return err
	}
	s, err := cfg.BuildScene()
	if err != nil {
		return err
	}

	opts := cfg.BuildOptions()
	grid := cfg.Appearance.Grid
	if cmd.Flags().Changed("grid") {
		grid = showGrid
	}
	if cmd.Flags().Changed("cones") {
		opts.LightCones = showCones
	}
	if cmd.Flags().Changed("simul") {
		opts.Simultaneity = showSimul
	}
	if cmd.Flags().Changed("present") {
		opts.Present = showPresent
	}
	if cmd.Flags().Changed("ticks") {
		opts.Ticks = showTicks
	}

	vp := viz.NewViewport(termWidth, termHeight)
	vp.FitWindow(cfg.BuildWindow())
	d := diagram.Build(s, vp.Window(), opts)

	c := viz.NewCanvas(termWidth, termHeight)
	viz.Render(c, d, vp, grid)

	th := viz.GetTheme(cfg.Appearance.Theme)
	fmt.Println(c.Styled(viz.Palette(th, d)))
	return nil
}

func exportScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadSource()
	if err != nil {
		return err
	}
	s, err := cfg.BuildScene()
	if err != nil {
		return err
	}
	th := viz.GetTheme(cfg.Appearance.Theme)

	path := outPath
	if path == "" {
		path = "diagram." + format
	}

	switch format {
	case "svg":
		d := diagram.Build(s, cfg.BuildWindow(), cfg.BuildOptions())
		svg := export.DiagramToSVG(d, imgWidth, imgHeight, th, cfg.Appearance.Grid)
		if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
			return err
		}
	case "png":
		// The raster goes through the cell canvas, 8x16 px per cell.
		cw, ch := imgWidth/8, imgHeight/16
		if cw < 20 {
			cw = 20
		}
		if ch < 10 {
			ch = 10
		}
		vp := viz.NewViewport(cw, ch)
		vp.FitWindow(cfg.BuildWindow())
		d := diagram.Build(s, vp.Window(), cfg.BuildOptions())

		c := viz.NewCanvas(cw, ch)
		viz.Render(c, d, vp, cfg.Appearance.Grid)
		img := export.CanvasToImage(c, th, viz.ClassColors(th, d))
		if err := export.WritePNG(path, img); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s (want svg or png)", format)
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

func objectTable(cmd *cobra.Command, args []string) error {
	cfg, err := loadSource()
	if err != nil {
		return err
	}
	s, err := cfg.BuildScene()
	if err != nil {
		return err
	}
	d := diagram.Build(s, cfg.BuildWindow(), cfg.BuildOptions())

	if asCSV {
		w := csv.NewWriter(os.Stdout)
		defer w.Flush()

		if err := w.Write([]string{"name", "x0", "v", "v_prime", "gamma_prime", "x_prime", "status"}); err != nil {
			return err
		}
		for _, tr := range d.Objects {
			xp, ok := d.Frame.Locate(tr.Object.X0, tr.Object.V)
			row := []string{
				tr.Object.Name,
				strconv.FormatFloat(tr.Object.X0, 'f', 6, 64),
				strconv.FormatFloat(tr.Object.V, 'f', 6, 64),
				strconv.FormatFloat(tr.VPrime, 'f', 6, 64),
				strconv.FormatFloat(tr.Gamma, 'f', 6, 64),
				strconv.FormatFloat(xp, 'f', 6, 64),
				traceStatus(tr.AtInfinity || !ok),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	fmt.Printf("frame: %s  v=%+.3f  x0=%+.2f\n\n", d.Mode, d.Frame.V, d.Frame.X0)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tX0\tV\tV'\tGAMMA'\tX'(t'=0)\tSTATUS")
	for _, tr := range d.Objects {
		xp, ok := d.Frame.Locate(tr.Object.X0, tr.Object.V)
		fmt.Fprintf(w, "%s\t%+.3f\t%+.3f\t%+.3f\t%s\t%s\t%s\n",
			tr.Object.Name,
			tr.Object.X0,
			tr.Object.V,
			tr.VPrime,
			fmtFinite(tr.Gamma),
			fmtLocation(xp, ok),
			traceStatus(tr.AtInfinity || !ok),
		)
	}
	return w.Flush()
}

func traceStatus(atInfinity bool) string {
	if atInfinity {
		return "at-infinity"
	}
	return "ok"
}

func fmtFinite(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return "inf"
	}
	return fmt.Sprintf("%.3f", v)
}

func fmtLocation(x float64, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%+.3f", x)
}

func boostEvent(cmd *cobra.Command, args []string) error {
	v := scene.ClampVelocity(probeV)
	u := scene.ClampVelocity(probeU)
	f := relativity.Frame{V: v, X0: probeX0}

	e := relativity.Event{X: eventX, T: eventT}
	p := f.ToFrame(e)
	origin := relativity.Event{}

	fmt.Printf("lab frame:     x=%+.6f  t=%+.6f\n", e.X, e.T)
	fmt.Printf("moving frame:  x'=%+.6f  t'=%+.6f  (v=%+.3f, x0=%+.2f)\n", p.X, p.T, v, f.X0)
	fmt.Printf("gamma:         %s\n", fmtFinite(relativity.Gamma(v)))
	fmt.Printf("u=%+.3f composes to u'=%+.6f\n", u, f.VelocityOf(u))
	fmt.Printf("interval to origin: %+.6f (%s)\n", relativity.Interval(origin, e), relativity.Classify(origin, e))
	return nil
}

func gammaPlot(cmd *cobra.Command, args []string) error {
	if points < 2 {
		points = 2
	}
	if maxV <= 0 || maxV >= 1 {
		return fmt.Errorf("max must be in (0, 1), got %v", maxV)
	}

	data := make([]float64, points)
	for i := range data {
		v := -maxV + 2*maxV*float64(i)/float64(points-1)
		data[i] = relativity.Gamma(v)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("gamma(v), v from %+.3f to %+.3f", -maxV, maxV)),
	)
	fmt.Println(graph)
	fmt.Printf("\ngamma(%.3f) = %.3f\n", maxV, relativity.Gamma(maxV))
	return nil
}

func sweepObject(cmd *cobra.Command, args []string) error {
	cfg, err := loadSource()
	if err != nil {
		return err
	}
	s, err := cfg.BuildScene()
	if err != nil {
		return err
	}
	objs := s.Objects()
	if len(objs) == 0 {
		return fmt.Errorf("scene has no objects")
	}

	obj := objs[0]
	if objName != "" {
		found := false
		for _, o := range objs {
			if o.Name == objName {
				obj, found = o, true
				break
			}
		}
		if !found {
			return fmt.Errorf("no object named %q", objName)
		}
	}

	if points < 2 {
		points = 2
	}
	data := make([]float64, points)
	peak := 1.0
	for i := range data {
		v := -scene.MaxSpeed + 2*scene.MaxSpeed*float64(i)/float64(points-1)
		f := relativity.Frame{V: v}
		data[i] = f.VelocityOf(obj.V)
		if g := relativity.Gamma(data[i]); g > peak && !math.IsInf(g, 1) {
			peak = g
		}
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("v' of %s (v=%+.3f), observer V sweeping ±%.3f", obj.Name, obj.V, scene.MaxSpeed)),
	)
	fmt.Println(graph)
	fmt.Printf("\npeak gamma' over the sweep: %.2f\n", peak)
	return nil
}

func listScenes(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	scenes, err := st.List()
	if err != nil {
		return err
	}
	if len(scenes) == 0 {
		fmt.Println("no saved scenes")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSAVED\tOBJECTS\tFRAME\tV")
	for _, sc := range scenes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%+.3f\n",
			sc.ID,
			sc.Title,
			sc.Timestamp.Format("2006-01-02 15:04:05"),
			sc.Objects,
			sc.FrameMode,
			sc.FrameV,
		)
	}
	return w.Flush()
}

func saveScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadSource()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Title = args[0]
	}
	s, err := cfg.BuildScene()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	d := diagram.Build(s, cfg.BuildWindow(), cfg.BuildOptions())
	id, err := st.Save(cfg.Title, cfg, d)
	if err != nil {
		return err
	}
	fmt.Printf("saved scene: %s\n", id)
	return nil
}
