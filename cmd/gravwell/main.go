package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/gravwell/internal/config"
	"github.com/san-kum/gravwell/internal/export"
	"github.com/san-kum/gravwell/internal/relativity"
	"github.com/san-kum/gravwell/internal/storage"
	"github.com/san-kum/gravwell/internal/survey"
	"github.com/san-kum/gravwell/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	massSolar  float64
	numOrbits  int
	numPoints  int
	startRs    float64
	heightM    float64
	hours      float64
	speed      float64
	plotWidth  int
	plotHeight int
	masses     []float64
	configFile string
	preset     string
	watch      bool
	svgOut     string
	svgWidth   int
	svgHeight  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravwell",
		Short: "black hole physics calculator and visualizer",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive menu when no command given
			return viz.RunInteractive()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravwell", "data directory")

	basicCmd := &cobra.Command{
		Use:   "basic",
		Short: "size and escape velocity for representative masses",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(viz.BasicReport())
			return nil
		},
	}

	dilationCmd := &cobra.Command{
		Use:   "dilation",
		Short: "time dilation by distance from the horizon",
		RunE:  runDilation,
	}
	addMassFlags(dilationCmd)

	orbitsCmd := &cobra.Command{
		Use:   "orbits",
		Short: "stable orbit survey",
		RunE:  runOrbits,
	}
	addMassFlags(orbitsCmd)
	orbitsCmd.Flags().IntVar(&numOrbits, "orbits", 4, "number of orbits")

	extremeCmd := &cobra.Command{
		Use:   "extreme",
		Short: "tidal forces and spaghettification",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(viz.ExtremeReport(heightM))
			return nil
		},
	}
	extremeCmd.Flags().Float64Var(&heightM, "height", 2.0, "object height (m)")

	redshiftCmd := &cobra.Command{
		Use:   "redshift",
		Short: "gravitational redshift by distance",
		RunE:  runRedshift,
	}
	addMassFlags(redshiftCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "known black holes side by side",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(viz.CompareReport())
			return nil
		},
	}

	fallCmd := &cobra.Command{
		Use:   "fall",
		Short: "fall from a given distance toward the horizon",
		RunE:  runFall,
	}
	addMassFlags(fallCmd)
	fallCmd.Flags().Float64Var(&startRs, "from", 10.0, "starting distance (Schwarzschild radii)")
	fallCmd.Flags().IntVar(&numPoints, "points", 20, "trajectory checkpoints")

	horizonCmd := &cobra.Command{
		Use:   "horizon",
		Short: "event horizon properties",
		RunE:  runHorizon,
	}
	addMassFlags(horizonCmd)
	horizonCmd.Flags().Float64Var(&heightM, "height", 2.0, "object height (m)")
	horizonCmd.Flags().Float64Var(&hours, "hours", 1.0, "observer time span (hours)")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "raw data table at fixed checkpoints",
		RunE:  runTable,
	}
	addMassFlags(tableCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [dilation|slowdown|redshift|fall]",
		Short: "terminal plot of a curve",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}
	addMassFlags(plotCmd)
	plotCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "plot-height", 16, "plot height")
	plotCmd.Flags().Float64Var(&startRs, "from", 10.0, "fall start (Schwarzschild radii)")

	massesCmd := &cobra.Command{
		Use:   "masses",
		Short: "dilation curves for several masses",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(viz.MultiMassPlot(masses, plotWidth, plotHeight))
			return nil
		},
	}
	massesCmd.Flags().Float64SliceVar(&masses, "mass", []float64{3, 10, 100, 4.3e6}, "solar masses (repeatable)")
	massesCmd.Flags().IntVar(&plotWidth, "width", 70, "plot width")
	massesCmd.Flags().IntVar(&plotHeight, "plot-height", 16, "plot height")

	sceneCmd := &cobra.Command{
		Use:   "scene",
		Short: "interactive 3d orbit scene",
		RunE:  runScene,
	}
	addMassFlags(sceneCmd)
	sceneCmd.Flags().IntVar(&numOrbits, "orbits", 4, "number of orbits")
	sceneCmd.Flags().Float64Var(&speed, "speed", 1.0, "animation speed")
	sceneCmd.Flags().BoolVar(&watch, "watch", false, "reload the config file on change")

	surveyCmd := &cobra.Command{
		Use:   "survey [orbits|fall]",
		Short: "compute a survey and persist it",
		Args:  cobra.ExactArgs(1),
		RunE:  runSurvey,
	}
	addMassFlags(surveyCmd)
	surveyCmd.Flags().IntVar(&numOrbits, "orbits", 8, "number of orbits")
	surveyCmd.Flags().Float64Var(&startRs, "from", 10.0, "fall start (Schwarzschild radii)")
	surveyCmd.Flags().IntVar(&numPoints, "points", 100, "trajectory checkpoints")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved surveys",
		RunE:  listSurveys,
	}

	exportCmd := &cobra.Command{
		Use:   "export [survey_id]",
		Short: "export survey data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSurvey,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [survey_id]",
		Short: "export survey data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSurveyCSV,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [dilation|slowdown|redshift|fall|scene]",
		Short: "render a curve or scene snapshot to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSVG,
	}
	addMassFlags(svgCmd)
	svgCmd.Flags().StringVar(&svgOut, "out", "", "output file (defaults to stdout)")
	svgCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	svgCmd.Flags().IntVar(&svgHeight, "height", 400, "image height")
	svgCmd.Flags().Float64Var(&startRs, "from", 10.0, "fall start (Schwarzschild radii)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list known black holes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME\tMASS (MSUN)\tRS\tDESCRIPTION")
			for _, slug := range config.ListPresets() {
				p := config.Presets[slug]
				fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%s\n",
					slug, p.Name, p.MassSolar,
					survey.FormatDistance(relativity.SchwarzschildRadius(p.MassSolar)),
					p.Description,
				)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(basicCmd, dilationCmd, orbitsCmd, extremeCmd, redshiftCmd,
		compareCmd, fallCmd, horizonCmd, tableCmd, plotCmd, massesCmd, sceneCmd,
		surveyCmd, listCmd, exportCmd, exportCSVCmd, svgCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addMassFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&massSolar, "mass", 10.0, "black hole mass (solar masses)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a known black hole preset")
}

// resolveConfig merges preset, config file, and flags. The preset sets the
// mass; yaml fills everything a flag did not override; flags win.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.MassSolar = p.MassSolar
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset == "" && (configFile == "" || cmd.Flags().Changed("mass")) {
		cfg.MassSolar = massSolar
	}
	if f := cmd.Flags().Lookup("orbits"); f != nil && (configFile == "" || cmd.Flags().Changed("orbits")) {
		cfg.NumOrbits = numOrbits
	}
	if f := cmd.Flags().Lookup("points"); f != nil && (configFile == "" || cmd.Flags().Changed("points")) {
		cfg.NumPoints = numPoints
	}
	if f := cmd.Flags().Lookup("height"); f != nil && (configFile == "" || cmd.Flags().Changed("height")) {
		cfg.ObjectHeightM = heightM
	}
	if f := cmd.Flags().Lookup("hours"); f != nil && (configFile == "" || cmd.Flags().Changed("hours")) {
		cfg.ObserverHours = hours
	}
	if f := cmd.Flags().Lookup("speed"); f != nil && (configFile == "" || cmd.Flags().Changed("speed")) {
		cfg.Speed = speed
	}

	return cfg, nil
}

func runDilation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Print(viz.DilationReport(cfg.MassSolar, cfg.DistancesRs))
	return nil
}

func runOrbits(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out, err := viz.OrbitReport(cfg.MassSolar, cfg.NumOrbits)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runRedshift(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Print(viz.RedshiftReport(cfg.MassSolar))
	return nil
}

func runFall(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Print(viz.FallReport(cfg.MassSolar, startRs, numPoints))
	return nil
}

func runHorizon(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out, err := viz.HorizonReport(cfg.MassSolar, cfg.ObjectHeightM, cfg.ObserverHours)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	fmt.Print(survey.DataTable(cfg.MassSolar, cfg.DistancesRs))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	kind := "dilation"
	if len(args) > 0 {
		kind = args[0]
	}

	switch kind {
	case "dilation":
		fmt.Println(viz.DilationPlot(cfg.MassSolar, plotWidth, plotHeight))
	case "slowdown":
		fmt.Println(viz.SlowdownPlot(cfg.MassSolar, plotWidth, plotHeight))
	case "redshift":
		fmt.Println(viz.RedshiftPlot(cfg.MassSolar, plotWidth, plotHeight))
	case "fall":
		fmt.Println(viz.FallPlot(cfg.MassSolar, startRs, plotWidth, plotHeight))
	default:
		return fmt.Errorf("unknown plot kind: %s", kind)
	}
	return nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var watcher *config.Watcher
	if watch {
		if configFile == "" {
			return fmt.Errorf("--watch requires --config")
		}
		watcher, err = config.NewWatcher(configFile)
		if err != nil {
			return err
		}
		if err := watcher.Start(); err != nil {
			return err
		}
	}

	return viz.RunScene(cfg, watcher)
}

func renderSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	rs := relativity.SchwarzschildRadius(cfg.MassSolar)
	samples := 1000

	var doc string
	switch args[0] {
	case "dilation":
		radii := survey.Linspace(1.01*rs, 10*rs, samples)
		values := make([]float64, len(radii))
		for i, r := range radii {
			values[i] = relativity.TimeDilation(r, rs)
		}
		doc = export.CurveToSVG(values, svgWidth, svgHeight, "#2ecc71")
	case "slowdown":
		radii := survey.Linspace(1.01*rs, 10*rs, samples)
		values := make([]float64, len(radii))
		for i, r := range radii {
			values[i] = math.Log10(1/relativity.TimeDilation(r, rs) - 1)
		}
		doc = export.CurveToSVG(values, svgWidth, svgHeight, "#e67e22")
	case "redshift":
		radii := survey.Linspace(1.1*rs, 10*rs, samples)
		values := make([]float64, len(radii))
		for i, r := range radii {
			values[i] = relativity.GravitationalRedshift(r, rs)
		}
		doc = export.CurveToSVG(values, svgWidth, svgHeight, "#e74c3c")
	case "fall":
		traj := survey.FallingTrajectory(startRs*rs, rs, samples)
		if len(traj) == 0 {
			return fmt.Errorf("starting point %.2f Rs is at or inside the horizon", startRs)
		}
		values := make([]float64, len(traj))
		for i, p := range traj {
			values[i] = p.FallVelocityC
		}
		doc = export.CurveToSVG(values, svgWidth, svgHeight, "#3498db")
	case "scene":
		canvas := viz.Snapshot(cfg, 100, 50)
		doc = export.CanvasToSVG(canvas, 4)
	default:
		return fmt.Errorf("unknown svg kind: %s", args[0])
	}

	if svgOut == "" {
		fmt.Println(doc)
		return nil
	}
	return os.WriteFile(svgOut, []byte(doc), 0o644)
}

func runSurvey(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	rs := relativity.SchwarzschildRadius(cfg.MassSolar)
	derived := map[string]float64{
		"schwarzschild_km": rs,
		"photon_sphere_km": relativity.PhotonSphereRadius(cfg.MassSolar),
		"stable_orbit_km":  relativity.InnermostStableOrbit(cfg.MassSolar),
	}

	var (
		columns []string
		samples [][]float64
	)
	switch args[0] {
	case "orbits":
		orbits, err := survey.OrbitData(cfg.MassSolar, cfg.NumOrbits)
		if err != nil {
			return err
		}
		columns = []string{"radius_km", "radius_rs", "dilation", "velocity_ms", "velocity_c", "period_s"}
		for _, o := range orbits {
			samples = append(samples, []float64{
				o.RadiusKm, o.RadiusRs, o.TimeDilation,
				o.OrbitalVelocityMS, o.OrbitalVelocityC, o.OrbitalPeriodS,
			})
		}
	case "fall":
		traj := survey.FallingTrajectory(startRs*rs, rs, cfg.NumPoints)
		if len(traj) == 0 {
			return fmt.Errorf("starting point %.2f Rs is at or inside the horizon", startRs)
		}
		columns = []string{"step", "radius_km", "radius_rs", "dilation", "fall_ms", "fall_c"}
		for _, p := range traj {
			samples = append(samples, []float64{
				float64(p.Step), p.RadiusKm, p.RadiusRs,
				p.TimeDilation, p.FallVelocityMS, p.FallVelocityC,
			})
		}
	default:
		return fmt.Errorf("unknown survey kind: %s", args[0])
	}

	id, err := st.Save(args[0], cfg.MassSolar, columns, samples, derived)
	if err != nil {
		return err
	}

	fmt.Printf("saved %s (%d samples)\n", id, len(samples))
	return nil
}

func listSurveys(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	surveys, err := st.List()
	if err != nil {
		return err
	}

	if len(surveys) == 0 {
		fmt.Println("no surveys found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tMASS (MSUN)\tTIME\tSAMPLES")

	for _, s := range surveys {
		fmt.Fprintf(w, "%s\t%s\t%g\t%s\t%d\n",
			s.ID,
			s.Kind,
			s.MassSolar,
			s.Timestamp.Format("2006-01-02 15:04:05"),
			s.Samples,
		)
	}

	return w.Flush()
}

func exportSurvey(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	columns, samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, columns, samples)
}

func exportSurveyCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	columns, samples, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(columns); err != nil {
		return err
	}
	for _, row := range samples {
		rec := make([]string, len(row))
		for i, val := range row {
			rec[i] = strconv.FormatFloat(val, 'f', 6, 64)
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return nil
}
