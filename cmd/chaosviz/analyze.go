package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/chaosviz/internal/analysis"
	"github.com/san-kum/chaosviz/internal/attractor"
	"github.com/san-kum/chaosviz/internal/config"
	"github.com/san-kum/chaosviz/internal/integrators"
	"github.com/san-kum/chaosviz/internal/metrics"
	"github.com/san-kum/chaosviz/internal/physics"
	"github.com/spf13/cobra"
)

const (
	plotTail = 1000
	// Half-width of the box the confinement metric checks against.
	confineRadius = 10.0
)

func runHeadless(cmd *cobra.Command, args []string) error {
	if frames < 0 {
		return fmt.Errorf("frames must be >= 0, got %d", frames)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	sim, err := cfg.NewSimulator()
	if err != nil {
		return err
	}

	fmt.Printf("running %d frames at b=%.3f (%s growth)...\n", frames, sim.Dissipation(), sim.Options().Growth)
	for i := 0; i < frames; i++ {
		sim.Advance()
		sim.Rotate()
	}

	last := sim.Last()
	lo, hi := bounds(sim.Points())
	fmt.Printf("frames: %d\n", sim.Frames())
	fmt.Printf("points: %d\n", sim.Len())
	fmt.Printf("angle:  %.4f rad\n", sim.Angle())
	fmt.Printf("last:   (%.6f, %.6f, %.6f)\n", last.X, last.Y, last.Z)
	fmt.Printf("bounds: x [%.3f, %.3f]  y [%.3f, %.3f]  z [%.3f, %.3f]\n", lo.X, hi.X, lo.Y, hi.Y, lo.Z, hi.Z)
	fmt.Printf("regime: %s\n", probeFor(cfg).Classify(sim.Dissipation()))

	ms := metrics.Trajectory(confineRadius)
	metrics.ObservePoints(sim.Points(), cfg.Dt, ms...)
	fmt.Println("\nmetrics:")
	for _, m := range ms {
		fmt.Printf("  %s: %.6f\n", m.Name(), m.Value())
	}
	fmt.Println()

	xs, ys, zs := coords(sim.Points(), plotTail)
	if len(xs) > 1 {
		graph := asciigraph.PlotMany([][]float64{xs, ys, zs},
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
			asciigraph.Caption(fmt.Sprintf("x (red), y (green), z (blue): last %d points", len(xs))),
		)
		fmt.Println(graph)
	}
	return nil
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	if !(probeDuration > 0) {
		return fmt.Errorf("time must be > 0, got %g", probeDuration)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	probe := probeFor(cfg)
	probe.Duration = probeDuration

	est := probe.Classify(cfg.Dissipation)
	fmt.Printf("b:        %.4f\n", est.Dissipation)
	fmt.Printf("lyapunov: %+.6f\n", est.Lyapunov)
	fmt.Printf("spread:   %.6f\n", est.Spread)
	fmt.Printf("regime:   %s\n", est.Regime)
	return nil
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	if bMin < physics.MinDissipation || bMax > physics.MaxDissipation || bMin >= bMax {
		return fmt.Errorf("need %g <= min < max <= %g, got [%g, %g]", physics.MinDissipation, physics.MaxDissipation, bMin, bMax)
	}
	if bSteps < 2 {
		return fmt.Errorf("steps must be >= 2, got %d", bSteps)
	}
	if !(recordWindow > 0) {
		return fmt.Errorf("record must be > 0, got %g", recordWindow)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("bifurcation sweep b in [%.3f, %.3f], %d steps...\n\n", bMin, bMax, bSteps)
	data := analysis.BifurcationDiagram(
		physics.NewThomas(cfg.Dissipation), integrators.NewEuler(),
		"b", bMin, bMax, bSteps, 0,
		seedState(cfg), cfg.Dt, transient, recordWindow,
	)
	plot := analysis.BifurcationToASCII(data, bSteps, 20)
	if plot == "" {
		fmt.Println("no oscillations in range")
		return nil
	}
	fmt.Print(plot)
	fmt.Printf("b: %.3f%*s%.3f\n", bMin, max(bSteps-10, 1), "", bMax)
	return nil
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	if samples < 2 {
		return fmt.Errorf("samples must be >= 2, got %d", samples)
	}
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	states := analysis.Sample(physics.NewThomas(cfg.Dissipation), integrators.NewEuler(), seedState(cfg), cfg.Dt, transient, samples)
	xs := make([]float64, len(states))
	for i, s := range states {
		xs[i] = s[0]
	}

	spectrum := analysis.PowerSpectrum(xs, cfg.Dt)
	freq, peak := spectrum.Dominant()
	fmt.Printf("b:          %.4f\n", cfg.Dissipation)
	fmt.Printf("samples:    %d (dt=%g)\n", len(xs), cfg.Dt)
	fmt.Printf("resolution: %.5f\n", spectrum.Resolution)
	if freq > 0 {
		fmt.Printf("dominant:   %.5f (period %.3f, power %.3f)\n\n", freq, 1/freq, peak)
	} else {
		fmt.Printf("dominant:   none\n\n")
	}

	// Thomas' oscillations live well below 1; show that part of the spectrum.
	shown := spectrum.Power
	if spectrum.Resolution > 0 {
		if n := int(math.Ceil(1 / spectrum.Resolution)); n < len(shown) {
			shown = shown[:n]
		}
	}
	if len(shown) > 1 {
		graph := asciigraph.Plot(shown,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum of x, 0 to 1"),
		)
		fmt.Println(graph)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tB\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		p, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.3f\t%s\n", p.Name, p.Dissipation, p.Description)
	}
	return w.Flush()
}

func probeFor(cfg *config.Config) analysis.Probe {
	probe := analysis.DefaultProbe()
	probe.X0 = seedState(cfg)
	probe.Dt = cfg.Dt
	return probe
}

func seedState(cfg *config.Config) []float64 {
	return []float64{cfg.Seed.X, cfg.Seed.Y, cfg.Seed.Z}
}

func bounds(points []attractor.Point) (lo, hi attractor.Point) {
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
		lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
	}
	return lo, hi
}

func coords(points []attractor.Point, n int) (xs, ys, zs []float64) {
	if len(points) > n {
		points = points[len(points)-n:]
	}
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	zs = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i], zs[i] = p.X, p.Y, p.Z
	}
	return xs, ys, zs
}
