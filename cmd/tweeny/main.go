package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/tweeny/internal/clock"
	"github.com/san-kum/tweeny/internal/config"
	"github.com/san-kum/tweeny/internal/easing"
	"github.com/san-kum/tweeny/internal/export"
	"github.com/san-kum/tweeny/internal/storage"
	"github.com/san-kum/tweeny/internal/trace"
	"github.com/san-kum/tweeny/internal/tween"
	"github.com/san-kum/tweeny/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	verbose    bool
	fromFlag   string
	toFlag     string
	durationMs int
	easingName string
	fps        int
	configFile string
	preset     string
	live       bool
	save       bool
	quiet      bool
	samples    int
	svgPath    string
	outPath    string
)

// main registers the tweeny commands and executes the root command, exiting
// with status 1 on error.
func main() {
	env, err := config.ParseEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := &cobra.Command{
		Use:          "tweeny",
		Short:        "property tweening engine",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", env.DataDirOr(config.DefaultDataDir), "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log session events to stderr")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "tween properties and print each frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTween(cmd, env)
		},
	}
	runCmd.Flags().StringVar(&fromFlag, "from", "", "start values, e.g. x=0,y=5")
	runCmd.Flags().StringVar(&toFlag, "to", "", "target values, e.g. x=100")
	runCmd.Flags().IntVar(&durationMs, "duration", config.DefaultDurationMs, "duration in milliseconds")
	runCmd.Flags().StringVar(&easingName, "easing", config.DefaultEasing, "easing formula")
	runCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "ticks per second")
	runCmd.Flags().StringVar(&configFile, "config", "", "run file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use a preset run")
	runCmd.Flags().BoolVar(&live, "live", false, "show the live terminal view")
	runCmd.Flags().BoolVar(&save, "save", false, "store the recorded frames")
	runCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the final values")

	formulasCmd := &cobra.Command{
		Use:   "formulas",
		Short: "list easing formulas",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range easing.NewRegistry().Names() {
				fmt.Println(name)
			}
		},
	}

	curveCmd := &cobra.Command{
		Use:   "curve [formula]",
		Short: "plot an easing formula",
		Args:  cobra.ExactArgs(1),
		RunE:  plotCurve,
	}
	curveCmd.Flags().IntVar(&samples, "samples", 80, "number of samples")
	curveCmd.Flags().StringVar(&svgPath, "svg", "", "also write the curve as svg to this path")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset runs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-12s %-16s %5dms\n", name, p.Easing, p.DurationMs)
			}
		},
	}

	rootCmd.AddCommand(runCmd, formulasCmd, curveCmd, listCmd, plotCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "tweeny: ", log.LstdFlags|log.Lmicroseconds)
	}
	return log.New(io.Discard, "", 0)
}

// resolveConfig layers the run config: defaults, environment, preset, run
// file, then any flag set on the command line.
func resolveConfig(cmd *cobra.Command, env config.Env) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.ApplyEnv(env)

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
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("easing") {
		cfg.Easing = easingName
	}
	if flags.Changed("duration") {
		cfg.DurationMs = durationMs
	}
	if flags.Changed("from") {
		props, err := parseProps(fromFlag)
		if err != nil {
			return nil, fmt.Errorf("--from: %w", err)
		}
		cfg.From = props
	}
	if flags.Changed("to") {
		props, err := parseProps(toFlag)
		if err != nil {
			return nil, fmt.Errorf("--to: %w", err)
		}
		cfg.To = props
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseProps reads "x=1,y=2.5" into Props.
func parseProps(s string) (tween.Props, error) {
	props := tween.Props{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, raw, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name=value, got %q", pair)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("value for %s: %w", name, err)
		}
		props[name] = v
	}
	return props, nil
}

// resolveEasing returns name when reg knows it and linear otherwise, so
// stored runs record the formula that actually ran.
func resolveEasing(reg *easing.Registry, name string) string {
	if _, ok := reg.Lookup(name); ok {
		return name
	}
	return easing.NameLinear
}

func runTween(cmd *cobra.Command, env config.Env) error {
	cfg, err := resolveConfig(cmd, env)
	if err != nil {
		return err
	}

	engine := tween.NewEngine(
		tween.WithDefaults(cfg.Defaults()),
		tween.WithLogger(newLogger()),
	)
	if name := resolveEasing(engine.Registry(), cfg.Easing); name != cfg.Easing {
		fmt.Fprintf(os.Stderr, "unknown easing %q, using %s\n", cfg.Easing, name)
		cfg.Easing = name
	}

	if live {
		return viz.Run(engine, cfg)
	}

	keys := cfg.From.Clone().CopyFrom(cfg.To).Keys()
	if !quiet {
		fmt.Printf("%10s", "ms")
		for _, k := range keys {
			fmt.Printf("  %12s", k)
		}
		fmt.Println()
	}

	rec := trace.NewRecorder(clock.System{})
	rec.Start()
	printFrame := func(p tween.Props) {
		frames := rec.Frames()
		f := frames[len(frames)-1]
		fmt.Printf("%10.1f", float64(f.Elapsed.Microseconds())/1000)
		for _, k := range keys {
			fmt.Printf("  %12.4f", p[k])
		}
		fmt.Println()
	}

	session := engine.TweenWithOptions(tween.Options{
		Subject:  cfg.From.Clone(),
		Target:   cfg.To,
		Duration: cfg.Duration(),
		Easing:   cfg.Easing,
		OnStep: func(p tween.Props) {
			rec.Observe(p)
			if !quiet {
				printFrame(p)
			}
		},
		OnComplete: func(p tween.Props) {
			rec.Observe(p)
			printFrame(p)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := session.Wait(ctx); err != nil {
		session.Stop(false)
		fmt.Println("interrupted")
	}

	if !save {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Easing:     cfg.Easing,
		FPS:        cfg.FPS,
		DurationMs: cfg.DurationMs,
		From:       cfg.From,
		To:         cfg.To,
		Completed:  session.Completed(),
	}, rec.Frames())
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func plotCurve(cmd *cobra.Command, args []string) error {
	name := args[0]
	reg := easing.NewRegistry()
	f, ok := reg.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown formula: %s", name)
	}

	points := export.SampleFormula(f, samples)
	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.Y
	}

	fmt.Println(asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(name),
	))

	if svgPath != "" {
		svg := export.CurveSVG(points, 400, 300, "#00ff88")
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
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
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tEASING\tDURATION\tFPS\tFRAMES\tDONE")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dms\t%d\t%d\t%t\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Easing,
			run.DurationMs,
			run.FPS,
			run.Frames,
			run.Completed,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("easing: %s\n", meta.Easing)
	fmt.Printf("frames: %d\n\n", len(frames))

	for _, k := range trace.Keys(frames) {
		graph := asciigraph.Plot(trace.Series(frames, k),
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(k),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	if outPath == "" {
		return export.RunJSON(os.Stdout, *meta, frames)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := export.RunJSON(file, *meta, frames); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", outPath)
	return nil
}
