package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/kws/galaxy/internal/body"
	"github.com/kws/galaxy/internal/config"
	"github.com/kws/galaxy/internal/export"
	"github.com/kws/galaxy/internal/gen"
	"github.com/kws/galaxy/internal/metrics"
	"github.com/kws/galaxy/internal/sim"
	"github.com/kws/galaxy/internal/storage"
	"github.com/kws/galaxy/internal/tui"
	"github.com/kws/galaxy/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	galaxies   int
	steps      int
	resetEvery int
	dt         float64
	gconst     float64
	minStars   int
	maxStars   int
	minRadius  float64
	maxRadius  float64
	// plot
	metricName string
	// snapshot
	warmSteps int
	svgWidth  int
	svgHeight int
	// live
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "galaxy",
		Short: "colliding-galaxies gravity sandbox",
		Run: func(cmd *cobra.Command, args []string) {
			if err := runLive(cmd, args); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".galaxy", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a batch simulation and store the results",
		RunE:  runBatch,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")
	runCmd.Flags().IntVar(&resetEvery, "reset-every", 0, "regenerate galaxies every N steps (0 = never)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run's metric series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&metricName, "metric", "spread", "metric column to plot")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the simulation in the terminal",
		RunE:  runLive,
	}
	addSceneFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frames per second")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [file.svg]",
		Short: "render a scene to SVG after a warm-up",
		Args:  cobra.ExactArgs(1),
		RunE:  writeSnapshot,
	}
	addSceneFlags(snapshotCmd)
	snapshotCmd.Flags().IntVar(&warmSteps, "steps", 500, "steps to run before the snapshot")
	snapshotCmd.Flags().IntVar(&svgWidth, "width", 1280, "image width")
	snapshotCmd.Flags().IntVar(&svgHeight, "height", 960, "image height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scene presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("%-10s %d galaxies, %d+ stars each\n", name, p.Galaxies, p.Generator.MinStars)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, liveCmd, snapshotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "scene preset")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = from clock)")
	cmd.Flags().IntVar(&galaxies, "galaxies", 0, "number of galaxies")
	cmd.Flags().IntVar(&minStars, "min-stars", 0, "minimum stars per galaxy")
	cmd.Flags().IntVar(&maxStars, "max-stars", 0, "maximum stars per galaxy")
	cmd.Flags().Float64Var(&minRadius, "min-radius", 0, "minimum galaxy radius")
	cmd.Flags().Float64Var(&maxRadius, "max-radius", 0, "maximum galaxy radius")
	cmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	cmd.Flags().Float64Var(&gconst, "g", 0, "gravitational constant override")
}

// sceneConfig merges preset, config file and flags, flags winning.
func sceneConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("galaxies") {
		cfg.Galaxies = galaxies
	}
	if cmd.Flags().Changed("min-stars") {
		cfg.Generator.MinStars = minStars
	}
	if cmd.Flags().Changed("max-stars") {
		cfg.Generator.MaxStars = maxStars
	}
	if cmd.Flags().Changed("min-radius") {
		cfg.Generator.MinRadius = minRadius
	}
	if cmd.Flags().Changed("max-radius") {
		cfg.Generator.MaxRadius = maxRadius
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("g") {
		cfg.G = gconst
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return cfg, nil
}

func makeScene(cfg *config.Config, rng *rand.Rand) []*body.Galaxy {
	scene := make([]*body.Galaxy, cfg.Galaxies)
	for i := range scene {
		scene[i] = gen.RandomGalaxy(cfg.GenOptions(rng))
	}
	return scene
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := sceneConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("reset-every") {
		cfg.ResetEvery = resetEvery
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	runner := sim.New(cfg.Integrator(), makeScene(cfg, rng))
	runner.SetReset(func() []*body.Galaxy { return makeScene(cfg, rng) })
	runner.AddMetric(metrics.NewKineticEnergy())
	runner.AddMetric(metrics.NewMomentum())
	runner.AddMetric(metrics.NewSpread())

	fmt.Printf("simulating %d galaxies, %d stars, %d steps...\n",
		cfg.Galaxies, body.TotalStars(runner.Galaxies()), cfg.Steps)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{
		Steps:      cfg.Steps,
		ResetEvery: cfg.ResetEvery,
	})
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg.Seed, cfg.Dt, cfg.G, result, runner.Galaxies())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	if result.Resets > 0 {
		fmt.Printf("resets: %d\n", result.Resets)
	}
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tGALAXIES\tSTARS\tSTEPS\tSEED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID, run.Timestamp.Format("2006-01-02 15:04"),
			run.Galaxies, run.Stars, run.Steps, run.Seed)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	names, _, series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	data, ok := series[metricName]
	if !ok {
		return fmt.Errorf("run has no metric %q (available: %v)", metricName, names)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s over %d steps", metricName, len(data))),
	)
	fmt.Println(graph)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := sceneConfig(cmd)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	regen := func() []*body.Galaxy { return makeScene(cfg, rng) }

	m := tui.New(cfg.Integrator(), regen(), regen, frameRate)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func writeSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := sceneConfig(cmd)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	runner := sim.New(cfg.Integrator(), makeScene(cfg, rng))

	for i := 0; i < warmSteps; i++ {
		runner.Step()
	}

	svg := export.SnapshotSVG(runner.Galaxies(), viz.NewPalette(), svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("nothing to render: scene has no stars")
	}

	if err := os.WriteFile(args[0], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d galaxies, %d stars, %d steps)\n",
		args[0], cfg.Galaxies, body.TotalStars(runner.Galaxies()), warmSteps)
	return nil
}
