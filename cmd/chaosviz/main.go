package main

import (
	"fmt"
	"log"
	"os"

	"github.com/san-kum/chaosviz/internal/config"
	"github.com/san-kum/chaosviz/internal/gui"
	"github.com/san-kum/chaosviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	dissipation float64
	maxPoints   int
	growth      string
	wrapAngle   bool
	frameRate   int
	theme       string
	logFile     string

	// run
	frames int
	// lyapunov
	probeDuration float64
	// bifurcation
	bMin, bMax   float64
	bSteps       int
	transient    float64
	recordWindow float64
	// spectrum
	samples int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "chaosviz",
		Short:        "Thomas attractor visualizer",
		SilenceUsage: true,
		// Default to the window when no command given
		RunE: runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "dissipation preset (see 'chaosviz presets')")
	pf.Float64Var(&dissipation, "b", config.DefaultConfig().Dissipation, "dissipation b in [0, 1]")
	pf.IntVar(&maxPoints, "max-points", config.DefaultConfig().MaxPoints, "bloom cap")
	pf.StringVar(&growth, "growth", config.DefaultConfig().Growth, "growth mode: literal or hard_stop")
	pf.BoolVar(&wrapAngle, "wrap-angle", false, "wrap the view angle to [0, 2π)")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal color theme")
	pf.StringVar(&logFile, "log", "", "write debug log to file")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the visualizer window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the visualizer in the terminal",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "advance the simulation headless and print statistics",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 100, "frames to advance")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov",
		Short: "estimate the largest Lyapunov exponent and regime for b",
		Args:  cobra.NoArgs,
		RunE:  runLyapunov,
	}
	lyapunovCmd.Flags().Float64Var(&probeDuration, "time", 1000, "measurement duration")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation",
		Short: "plot x maxima over a sweep of b",
		Args:  cobra.NoArgs,
		RunE:  runBifurcation,
	}
	bifurcationCmd.Flags().Float64Var(&bMin, "min", 0.05, "lowest b")
	bifurcationCmd.Flags().Float64Var(&bMax, "max", 0.35, "highest b")
	bifurcationCmd.Flags().IntVar(&bSteps, "steps", 80, "number of b values")
	bifurcationCmd.Flags().Float64Var(&transient, "transient", 200, "time discarded per b")
	bifurcationCmd.Flags().Float64Var(&recordWindow, "record", 200, "time recorded per b")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "power spectrum of x(t)",
		Args:  cobra.NoArgs,
		RunE:  runSpectrum,
	}
	spectrumCmd.Flags().IntVar(&samples, "samples", 4096, "number of samples")
	spectrumCmd.Flags().Float64Var(&transient, "transient", 200, "time discarded before sampling")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list dissipation presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, runCmd, lyapunovCmd, bifurcationCmd, spectrumCmd, presetsCmd)
	return rootCmd
}

// resolveConfig layers defaults, the config file, the preset and finally
// explicitly set flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, err
		}
		p.Apply(cfg)
	}

	flags := cmd.Flags()
	if flags.Changed("b") {
		cfg.Dissipation = dissipation
	}
	if flags.Changed("max-points") {
		cfg.MaxPoints = maxPoints
	}
	if flags.Changed("growth") {
		cfg.Growth = growth
	}
	if flags.Changed("wrap-angle") {
		cfg.WrapAngle = wrapAngle
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLog sends the standard logger to --log when given. The returned
// function closes the file.
func setupLog() (func(), error) {
	if logFile == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sim, err := cfg.NewSimulator()
	if err != nil {
		return err
	}
	closeLog, err := setupLog()
	if err != nil {
		return err
	}
	defer closeLog()
	return gui.Run(sim, cfg)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sim, err := cfg.NewSimulator()
	if err != nil {
		return err
	}
	return viz.Run(sim, cfg, logFile)
}
