package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/devang-m/graphlay/internal/config"
	"github.com/devang-m/graphlay/internal/export"
	"github.com/devang-m/graphlay/internal/graph"
	"github.com/devang-m/graphlay/internal/layout"
	"github.com/devang-m/graphlay/internal/metrics"
	"github.com/devang-m/graphlay/internal/scenario"
	"github.com/devang-m/graphlay/internal/sim"
	"github.com/devang-m/graphlay/internal/store"
	"github.com/devang-m/graphlay/internal/tui"
	"github.com/devang-m/graphlay/internal/viz"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	dataDir      string
	configFile   string
	presetName   string
	scenarioName string
	numNodes     int
	seed         int64
	frameRate    int
	maxFrames    int
	outFile      string
	plain        bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "graphlay",
		Short: "force-directed layout for dependency graphs",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".graphlay", "data directory")

	settleCmd := &cobra.Command{
		Use:   "settle [graph.yaml]",
		Short: "settle a graph to rest and save the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSettle,
	}
	addGraphFlags(settleCmd)

	liveCmd := &cobra.Command{
		Use:   "live [graph.yaml]",
		Short: "watch a layout settle interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addGraphFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate")
	liveCmd.Flags().BoolVar(&plain, "plain", false, "plain ANSI renderer instead of the full TUI")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run's cooling and energy curves",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [graph.yaml]",
		Short: "settle a graph and emit an SVG rendering",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	addGraphFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's settled positions to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	scenariosCmd := &cobra.Command{
		Use:   "scenarios",
		Short: "list built-in demo graphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range scenario.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench [scenario]",
		Short: "benchmark settle times across graph sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchScenario,
	}
	benchCmd.Flags().StringVar(&presetName, "preset", "", "parameter preset")

	rootCmd.AddCommand(settleCmd, liveCmd, listCmd, plotCmd, exportSVGCmd, exportCSVCmd, presetsCmd, scenariosCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGraphFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&presetName, "preset", "", "parameter preset")
	cmd.Flags().StringVar(&scenarioName, "scenario", "", "built-in demo graph instead of a file")
	cmd.Flags().IntVar(&numNodes, "nodes", 20, "node count for --scenario")
	cmd.Flags().Int64Var(&seed, "seed", 0, "scatter seed (overrides file and config)")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 0, "frame budget")
}

// loadConfig merges preset, config file, and flags, in that order of
// increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
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

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("max-frames") {
		cfg.MaxFrames = maxFrames
	}
	if cmd.Flags().Changed("fps") {
		cfg.FrameRate = frameRate
	}
	return cfg, nil
}

// loadModel builds the graph either from a scenario or a YAML file.
func loadModel(cmd *cobra.Command, args []string, cfg *config.Config) (*graph.Model, string, error) {
	if scenarioName != "" {
		m, err := scenario.Build(scenarioName, numNodes, cfg.Seed)
		if err != nil {
			return nil, "", err
		}
		return m, scenarioName, nil
	}

	if len(args) == 0 {
		return nil, "", fmt.Errorf("either a graph file or --scenario is required")
	}

	m, file, err := graph.LoadFile(args[0])
	if err != nil {
		return nil, "", err
	}
	if file.Seed != 0 && !cmd.Flags().Changed("seed") {
		cfg.Seed = file.Seed
	}
	name := file.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
	}
	return m, name, nil
}

func newRunner(m *graph.Model, cfg *config.Config) *sim.Runner {
	engine := layout.NewEngine(m, layout.Anchors(m.ComponentCount, cfg.AnchorSpacing))
	runner := sim.New(engine, m)
	for _, metric := range metrics.Defaults() {
		runner.AddMetric(metric)
	}
	return runner
}

func simConfig(cfg *config.Config) sim.Config {
	return sim.Config{
		Dt:         cfg.Dt,
		ViewWidth:  cfg.ViewWidth,
		ViewHeight: cfg.ViewHeight,
		MaxFrames:  cfg.MaxFrames,
		Params:     cfg.Params,
	}
}

func runSettle(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, name, err := loadModel(cmd, args, cfg)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runner := newRunner(m, cfg)

	fmt.Printf("settling %s (%d nodes, %d edges, %d components)...\n",
		name, len(m.Nodes), len(m.Edges), m.ComponentCount)
	start := time.Now()

	result, err := runner.Run(context.Background(), simConfig(cfg))
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(name, presetName, cfg.Seed, m, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.Frames)
	fmt.Printf("settled: %v\n", result.Slept)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, name, err := loadModel(cmd, args, cfg)
	if err != nil {
		return err
	}

	if plain {
		runner := newRunner(m, cfg)
		renderer := tui.NewLiveRenderer(name, cfg.FrameRate, cfg.ViewWidth, cfg.ViewHeight)
		runner.AddObserver(renderer)
		renderer.Start()
		defer renderer.Stop()
		_, err := runner.Run(context.Background(), simConfig(cfg))
		return err
	}

	p := tea.NewProgram(viz.NewModel(m, *cfg, name))
	_, err = p.Run()
	return err
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGRAPH\tTIME\tNODES\tEDGES\tFRAMES\tSETTLED\tPRESET")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%v\t%s\n",
			run.ID,
			run.Graph,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Nodes,
			run.Edges,
			run.Frames,
			run.Slept,
			run.Preset,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	alphas, energies, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	if len(alphas) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("graph: %s\n", meta.Graph)
	fmt.Printf("frames: %d\n\n", len(alphas))

	fmt.Println(asciigraph.Plot(alphas,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("alpha (cooling)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(energies,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("kinetic energy"),
	))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	m, _, err := loadModel(cmd, args, cfg)
	if err != nil {
		return err
	}

	runner := newRunner(m, cfg)
	if _, err := runner.Run(context.Background(), simConfig(cfg)); err != nil {
		return err
	}

	svg := export.LayoutSVG(m, cfg.ViewWidth, cfg.ViewHeight)
	if outFile == "" {
		fmt.Print(svg)
		return nil
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	positions, err := st.LoadPositions(args[0])
	if err != nil {
		return err
	}
	if len(positions) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"id", "name", "type", "component", "x", "y", "radius"}); err != nil {
		return err
	}
	for _, p := range positions {
		row := []string{
			p.ID, p.Name, p.Type,
			strconv.Itoa(p.Component),
			strconv.FormatFloat(p.X, 'f', 4, 64),
			strconv.FormatFloat(p.Y, 'f', 4, 64),
			strconv.FormatFloat(p.Radius, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func benchScenario(cmd *cobra.Command, args []string) error {
	name := "clusters"
	if len(args) > 0 {
		name = args[0]
	}

	cfg := config.DefaultConfig()
	if presetName != "" {
		p := config.GetPreset(presetName)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		cfg = p
	}

	sizes := []int{25, 50, 100}

	fmt.Printf("benchmarking %s\n\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NODES\tEDGES\tFRAMES\tSETTLED\tTIME\tFRAMES/SEC")

	for _, n := range sizes {
		m, err := scenario.Build(name, n, cfg.Seed)
		if err != nil {
			return err
		}

		engine := layout.NewEngine(m, layout.Anchors(m.ComponentCount, cfg.AnchorSpacing))
		runner := sim.New(engine, m)

		start := time.Now()
		result, err := runner.Run(context.Background(), simConfig(cfg))
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		framesPerSec := float64(result.Frames) / elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%d\t%v\t%v\t%.0f\n",
			len(m.Nodes), len(m.Edges), result.Frames, result.Slept, elapsed.Round(time.Microsecond), framesPerSec)
	}
	return w.Flush()
}
