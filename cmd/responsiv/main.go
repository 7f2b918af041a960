package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/responsiv/internal/config"
	"github.com/san-kum/responsiv/internal/export"
	"github.com/san-kum/responsiv/internal/layout"
	"github.com/san-kum/responsiv/internal/leads"
	"github.com/san-kum/responsiv/internal/logging"
	"github.com/san-kum/responsiv/internal/metrics"
	"github.com/san-kum/responsiv/internal/sim"
	"github.com/san-kum/responsiv/internal/storage"
	"github.com/san-kum/responsiv/internal/viz"
)

var (
	configFile string
	preset     string
	quality    string
	device     string
	era        string
	logFile    string
	dataDir    string
	verbose    bool
	// render
	width  int
	height int
	// metrics
	ticks    int
	interval time.Duration
	outFile  string
	save     bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "responsiv",
		Short: "responsive design demo for the terminal",
		Long: `Responsiv shows one storefront in a phone, tablet or desktop frame
across three design eras and three levels of responsiveness, next to a
simulated conversion chart.

Run without arguments to start the interactive demo.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, err = logging.New(cfg.LogFile, cfg.LogLevel, verbose, cmd.Parent() == nil)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runInteractive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "start from a named preset")
	pf.StringVar(&quality, "quality", "", "responsiveness: none, bad, perfect")
	pf.StringVar(&device, "device", "", "device: mobile, tablet, desktop")
	pf.StringVar(&era, "era", "", "design era: 2010, 2020, 2026")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&dataDir, "data", ".responsiv", "directory for recorded runs")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "print one frame of the demo",
		RunE:  renderFrame,
	}
	renderCmd.Flags().IntVar(&width, "width", 120, "terminal columns")
	renderCmd.Flags().IntVar(&height, "height", 40, "terminal rows")

	variantsCmd := &cobra.Command{
		Use:   "variants",
		Short: "list the layout drawn for every selection",
		RunE:  listVariants,
	}

	metricsCmd := &cobra.Command{
		Use:   "metrics",
		Short: "run the metrics generator without the UI",
		RunE:  runMetrics,
	}
	metricsCmd.Flags().IntVar(&ticks, "ticks", 20, "number of updates to record")
	metricsCmd.Flags().DurationVar(&interval, "interval", 0, "update interval (default from config)")
	metricsCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the series to a .csv, .json or .svg file")
	metricsCmd.Flags().BoolVar(&save, "save", false, "record the run in the data directory")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list recorded metrics runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	leadCmd := &cobra.Command{
		Use:   "lead [email]",
		Short: "request a free audit",
		Args:  cobra.ExactArgs(1),
		RunE:  submitLead,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(renderCmd, variantsCmd, metricsCmd, runsCmd, plotCmd, leadCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers defaults, preset, config file, environment and flags,
// in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(preset, configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("quality") {
		cfg.Quality = quality
	}
	if flags.Changed("device") {
		cfg.Device = device
	}
	if flags.Changed("era") {
		cfg.Era = era
	}
	if flags.Changed("interval") {
		cfg.TickInterval = interval
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	cfg.Normalize()
	return cfg, nil
}

// setup builds the state store and metrics ticker from the resolved config.
func setup(cmd *cobra.Command) (*config.Config, *sim.Store, *metrics.Ticker, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	st, err := cfg.State()
	if err != nil {
		return nil, nil, nil, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	gen := metrics.NewGenerator(cfg.SeriesLength, rand.NewSource(cfg.Seed))
	ticker := metrics.NewTicker(gen,
		metrics.WithInterval(cfg.TickInterval),
		metrics.WithLogger(logger.Named("metrics")),
	)
	return cfg, sim.New(st), ticker, nil
}

func runInteractive(cmd *cobra.Command, args []string) error {
	cfg, store, ticker, err := setup(cmd)
	if err != nil {
		return err
	}
	logger.Info("starting demo", zap.Any("state", store.Snapshot()))
	return viz.Run(viz.Options{
		Store:  store,
		Ticker: ticker,
		Submitter: leads.NewSubmitter(
			leads.WithDelay(cfg.SubmitDelay),
			leads.WithLogger(logger.Named("leads")),
		),
		Logger: logger.Named("ui"),
	})
}

func renderFrame(cmd *cobra.Command, args []string) error {
	_, store, ticker, err := setup(cmd)
	if err != nil {
		return err
	}
	fmt.Println(viz.RenderOnce(viz.Options{
		Store:  store,
		Ticker: ticker,
		Logger: logger,
		Width:  width,
		Height: height,
	}))
	return nil
}

func listVariants(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SELECTED\tDEVICE\tERA\tDRAWN AS\tWIDTH\tNAV\tHERO\tPRODUCTS\tFOOTER\tEXTRAS")
	for _, v := range layout.Table() {
		container := fmt.Sprintf("%dpx", v.Container)
		if v.Fixed {
			container += " fixed"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			v.Selected.Short(),
			v.Device,
			v.Era,
			v.Visual.Short(),
			container,
			v.Nav,
			v.Hero,
			v.Products,
			v.Footer,
			extras(v),
		)
	}
	return w.Flush()
}

func extras(v layout.Variant) string {
	var out []string
	flags := []struct {
		on   bool
		name string
	}{
		{v.OversizedHeadline, "big-headline"},
		{v.TinyBodyText, "tiny-text"},
		{v.GrayscaleCards, "grayscale"},
		{v.Badge, "badge"},
		{v.GlowBackdrop, "glow"},
		{v.AdminBar, "admin-bar"},
		{v.SecondaryCTA, "watch-film"},
		{v.QuickAddOverlay, "quick-add"},
	}
	for _, f := range flags {
		if f.on {
			out = append(out, f.name)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}

func runMetrics(cmd *cobra.Command, args []string) error {
	if ticks < 1 {
		return fmt.Errorf("--ticks must be positive, got %d", ticks)
	}
	cfg, store, ticker, err := setup(cmd)
	if err != nil {
		return err
	}
	every := cfg.TickInterval
	q := store.Snapshot().Quality

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	ticker.Start(ctx, q)
	defer ticker.Stop()
	<-ticker.Updates() // initial seed

	fmt.Printf("recording %d updates every %s for %s...\n", ticks, every, q)
	received := 0
	g.Go(func() error {
		for received < ticks {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case series := <-ticker.Updates():
				received++
				logger.Debug("metrics update", zap.Int("n", received), zap.Float64("last", series[len(series)-1]))
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	ticker.Stop()

	series := ticker.Series()
	fmt.Println(plotSeries(q.String(), metrics.HeadlineFor(q), series))

	report := export.NewReport(q, received, every, series)
	if outFile != "" {
		if err := export.WriteFile(outFile, report); err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}
		fmt.Printf("wrote %s\n", outFile)
	}
	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(report, cfg.Seed)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		logger.Info("run saved", zap.String("id", runID), zap.String("dir", dataDir))
		fmt.Printf("saved run: %s\n", runID)
	}
	return nil
}

func plotSeries(label string, h metrics.Headline, series []float64) string {
	if len(series) == 0 {
		return "no data to plot"
	}
	return asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.LowerBound(metrics.MinValue),
		asciigraph.UpperBound(metrics.MaxValue),
		asciigraph.Caption(fmt.Sprintf("%s  conversion %s  bounce %s  revenue %s", label, h.Conversion, h.BounceRate, h.Revenue)),
	)
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSELECTED\tDRAWN AS\tTIME\tTICKS\tINTERVAL\tCONVERSION")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			run.ID,
			run.Quality,
			run.Rendered,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Ticks,
			run.Interval,
			run.Headline.Conversion,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("seed: %d\n", meta.Seed)
	fmt.Printf("points: %d\n\n", len(series))
	fmt.Println(plotSeries(meta.Quality, meta.Headline, series))
	return nil
}

func submitLead(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s := leads.NewSubmitter(
		leads.WithDelay(cfg.SubmitDelay),
		leads.WithLogger(logger.Named("leads")),
	)
	receipt, err := s.Submit(cmd.Context(), leads.Lead{Email: args[0]})
	if err != nil {
		return err
	}
	fmt.Println("Success! You've been added to our VIP list.")
	fmt.Printf("  id:    %s\n  email: %s\n  at:    %s\n", receipt.ID, receipt.Email, receipt.At.Format(time.RFC3339))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tQUALITY\tDEVICE\tERA\tANALYTICS\tVISITOR\tCINEMATIC")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t%v\t%v\n",
			name, p.Quality, p.Device, p.Era, p.ShowAnalytics, p.SimulateUser, p.Cinematic)
	}
	return w.Flush()
}
