package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/player"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	children   string
	rows       int
	sortType   string
	seed       int64
	theme      string
	speed      float64
	logFile    string
	logLevel   string
	trace      bool
	unsorted   bool
	values     string
	outFile    string
	pngFile    string
	imgWidth   int
	imgHeight  int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands. The root command runs the interactive
// chart when no subcommand is given.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sortviz",
		Short: "sorting algorithm visualizer",
		RunE:  runInteractive,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&children, "children", strconv.Itoa(bars.DefaultChildren),
		fmt.Sprintf("number of bars, up to %d", bars.MaxChildren))
	rootCmd.PersistentFlags().StringVar(&sortType, "type", config.DefaultSortType, "sorting type")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	rootCmd.PersistentFlags().Float64Var(&speed, "speed", config.DefaultSpeed, "animation speed multiplier (0 = no delays)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme,
		fmt.Sprintf("color theme (%s)", strings.Join(viz.ThemeNames(), ", ")))
	rootCmd.Flags().IntVar(&rows, "rows", 16, "chart height in terminal rows")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the TUI runs")

	runCmd := &cobra.Command{
		Use:   "run [sort-type]",
		Short: "run a sort without the TUI",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&trace, "trace", false, "print every step")
	runCmd.Flags().StringVar(&values, "values", "", "comma separated values instead of random ones")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list sorting types",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range algo.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTYPE\tBARS\tCOMPARE\tSWAP\tFLOURISH")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%dms\t%dms\t%dms\n",
					name, p.SortType, p.Children, p.Pacing.CompareMs, p.Pacing.SwapMs, p.Pacing.FlourishMs)
			}
			w.Flush()
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [sort-type]",
		Short: "plot values before and after sorting",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSort,
	}
	plotCmd.Flags().StringVar(&values, "values", "", "comma separated values instead of random ones")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "count steps for each sorting type over several sizes",
		RunE:  benchSorts,
	}

	exportCmd := &cobra.Command{
		Use:   "export [sort-type]",
		Short: "export the sorted chart as svg or png",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportChart,
	}
	exportCmd.Flags().StringVar(&values, "values", "", "comma separated values instead of random ones")
	exportCmd.Flags().StringVar(&outFile, "out", "", "svg output path (default stdout)")
	exportCmd.Flags().StringVar(&pngFile, "png", "", "write a png to this path instead of svg")
	exportCmd.Flags().IntVar(&imgWidth, "width", 800, "image width in pixels")
	exportCmd.Flags().IntVar(&imgHeight, "height", 400, "image height in pixels")
	exportCmd.Flags().BoolVar(&unsorted, "unsorted", false, "export the chart before sorting")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, listCmd, presetsCmd, plotCmd, benchCmd, exportCmd, configCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicit flags, in
// that order.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
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

	flags := cmd.Flags()
	if flags.Changed("children") {
		cfg.Children = bars.ParseCount(children, cfg.Children)
	}
	if flags.Changed("type") {
		cfg.SortType = sortType
	}
	if len(args) > 0 {
		cfg.SortType = args[0]
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("theme") {
		if !slices.Contains(viz.ThemeNames(), theme) {
			return nil, fmt.Errorf("unknown theme: %s (available: %v)", theme, viz.ThemeNames())
		}
		cfg.Theme = theme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// seedOf returns the configured seed, or a time based one when it is zero.
func seedOf(cfg *config.Config) int64 {
	if cfg.Seed == 0 {
		return time.Now().UnixNano()
	}
	return cfg.Seed
}

func newLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// newSession builds a controller holding the configured container, filled
// either with explicit values or random ones.
func newSession(cfg *config.Config, logger *slog.Logger) (*session.Controller, error) {
	ctrl := session.New(
		session.WithLogger(logger),
		session.WithSeed(seedOf(cfg)),
		session.WithPacing(cfg.GetPacing()),
	)
	ct := ctrl.Add(cfg.Container, cfg.Children, cfg.SortType)
	ct.MaxValue = cfg.MaxValue

	if values != "" {
		vals, err := parseValues(values)
		if err != nil {
			return nil, err
		}
		return ctrl, ctrl.Load(cfg.Container, vals)
	}
	return ctrl, ctrl.Randomize(cfg.Container)
}

func parseValues(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	vals := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, err := strconv.Atoi(p); err != nil {
			return nil, fmt.Errorf("invalid value %q", p)
		}
		vals = append(vals, bars.ParseValue(p))
	}
	return vals, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	var w io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	opts := []viz.Option{viz.WithTheme(cfg.Theme), viz.WithRows(rows)}
	if cfg.Speed > 0 {
		// the model applies the speed itself so +/- keep working
		opts = append(opts, viz.WithSpeed(cfg.Speed))
		cfg.Speed = 1
	}

	ctrl, err := newSession(cfg, newLogger(w))
	if err != nil {
		return err
	}
	return viz.Run(ctrl, cfg.Container, opts...)
}

type stepPrinter struct {
	w io.Writer
	n int
}

func (p *stepPrinter) OnStep(s algo.Step, c *bars.Collection) {
	p.n++
	if s.Kind == algo.KindSwap {
		fmt.Fprintf(p.w, "%5d  %-22s %v\n", p.n, s, c.Values())
		return
	}
	fmt.Fprintf(p.w, "%5d  %s\n", p.n, s)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("speed") && configFile == "" && preset == "" {
		cfg.Speed = 0
	}

	ctrl, err := newSession(cfg, newLogger(os.Stderr))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run, err := ctrl.Begin(cfg.Container, cfg.SortType)
	if err != nil {
		return err
	}
	defer run.Release()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sorting %d bars with %s\n", run.Bars().Len(), run.SortType)
	fmt.Fprintf(out, "before: %v\n", run.Bars().Values())
	if trace {
		run.AddObserver(&stepPrinter{w: out})
	}

	result, err := run.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "after:  %v\n", run.Bars().Values())
	fmt.Fprintf(out, "completed in %v\n", result.Elapsed)
	fmt.Fprintln(out, "\nmetrics:")
	for _, name := range metrics.Names() {
		fmt.Fprintf(out, "  %s: %.0f\n", name, result.Metrics[name])
	}
	return nil
}

func plotSort(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg.Speed = 0

	ctrl, err := newSession(cfg, newLogger(os.Stderr))
	if err != nil {
		return err
	}
	ct, err := ctrl.Container(cfg.Container)
	if err != nil {
		return err
	}
	before := toFloats(ct.Bars().Values())
	if len(before) == 0 {
		return fmt.Errorf("no data to plot")
	}

	result, err := ctrl.Start(cmd.Context(), cfg.Container, cfg.SortType)
	if err != nil {
		return err
	}
	after := toFloats(ct.Bars().Values())

	out := cmd.OutOrStdout()
	for _, series := range []struct {
		data    []float64
		caption string
	}{
		{before, "before"},
		{after, fmt.Sprintf("after %s (%.0f comparisons, %.0f swaps)", cfg.SortType, result.Metrics["comparisons"], result.Metrics["swaps"])},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func toFloats(vals []int) []float64 {
	data := make([]float64, len(vals))
	for i, v := range vals {
		data[i] = float64(v)
	}
	return data
}

func benchSorts(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	sizes := []int{10, 50, 100, 200}
	rngSeed := seedOf(cfg)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %v (seed %d)\n\n", algo.Names(), rngSeed)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tBARS\tCOMPARISONS\tSWAPS\tSTEPS\tTIME")

	for _, name := range algo.Names() {
		fn, err := algo.Lookup(name)
		if err != nil {
			return err
		}
		for _, n := range sizes {
			ctrl := session.New(session.WithLogger(newLogger(io.Discard)), session.WithSeed(rngSeed))
			ctrl.Add("bench", n, name)
			if err := ctrl.Randomize("bench"); err != nil {
				return err
			}
			ct, err := ctrl.Container("bench")
			if err != nil {
				return err
			}

			start := ct.Bars().Values()
			p := player.New(ct.Bars(), fn(start), player.Instant())
			for _, m := range metrics.Default() {
				p.AddMetric(m)
			}
			result, err := p.Run(cmd.Context())
			p.Close()
			if err != nil {
				return err
			}
			if want := algo.Replay(start, fn(start)); !slices.Equal(want, ct.Bars().Values()) {
				return fmt.Errorf("%s on %d bars: animated result %v differs from replay %v", name, n, ct.Bars().Values(), want)
			}

			fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%d\t%v\n",
				name, n, result.Metrics["comparisons"], result.Metrics["swaps"], result.Steps, result.Elapsed)
		}
	}
	return w.Flush()
}

func exportChart(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	cfg.Speed = 0

	ctrl, err := newSession(cfg, newLogger(os.Stderr))
	if err != nil {
		return err
	}
	ct, err := ctrl.Container(cfg.Container)
	if err != nil {
		return err
	}

	caption := "unsorted"
	if !unsorted {
		if _, err := ctrl.Start(cmd.Context(), cfg.Container, cfg.SortType); err != nil {
			return err
		}
		caption = cfg.SortType
	}

	if pngFile != "" {
		if err := export.SavePNG(pngFile, ct.Bars(), imgWidth, imgHeight, caption); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pngFile)
		return nil
	}

	svg := export.BarsToSVG(ct.Bars(), imgWidth, imgHeight)
	if outFile == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), svg)
		return err
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	path := "sortviz.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
