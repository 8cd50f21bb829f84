// Command smoothinfo prints how the exponential smoothers respond to simple
// test signals.
//
// Usage:
//
//	smoothinfo [flags] [signal]
//
// The signal is one of step, ramp or fade (default step). Each row shows the
// input sample, the single smoother output and the double smoother level,
// trend and forecast.
//
// Examples:
//
//	smoothinfo
//	smoothinfo -alpha 4 -steps 40 step
//	smoothinfo -alpha 2 -beta 3 -slope 12 ramp
//	smoothinfo -low 0 -high 4095 fade
//	smoothinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-pixels/dsp/blend"
	"github.com/cwbudde/algo-pixels/dsp/smooth"
)

type signalParams struct {
	low   int
	high  int
	slope int
	steps int
}

type signalEntry struct {
	name  string
	about string
	build func(p signalParams) []uint16
}

var registry = []signalEntry{
	{"step", "jump from -low to -high after the first sample", buildStep},
	{"ramp", "rise from -low by -slope per sample", buildRamp},
	{"fade", "8-bit weighted crossfade from -low to -high", buildFade},
}

type row struct {
	n        int
	input    uint16
	single   float64
	level    float64
	trend    float64
	forecast float64
}

func main() {
	alpha := flag.Uint("alpha", 2, "level smoothing exponent (time constant 2^alpha samples)")
	beta := flag.Uint("beta", 2, "trend smoothing exponent")
	steps := flag.Int("steps", 24, "number of samples to print")
	low := flag.Int("low", 0, "starting input value")
	high := flag.Int("high", 1000, "final input value for step and fade")
	slope := flag.Int("slope", 10, "per-sample increment for ramp")
	list := flag.Bool("list", false, "list available signals")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: smoothinfo [flags] [signal]\n\n")
		fmt.Fprintf(os.Stderr, "Prints single and double exponential smoothing traces.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -alpha 4 step\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -alpha 2 -beta 3 -slope 12 ramp\n")
		fmt.Fprintf(os.Stderr, "  smoothinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	name := "step"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}

	entry, ok := lookupSignal(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown signal %q (use -list to see available)\n", name)
		os.Exit(1)
	}

	if *steps <= 0 {
		fmt.Fprintf(os.Stderr, "error: steps must be > 0: %d\n", *steps)
		os.Exit(1)
	}

	in := entry.build(signalParams{low: *low, high: *high, slope: *slope, steps: *steps})

	rows, err := trace(in, binFlag(*alpha), binFlag(*beta))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	tc, err := smooth.TimeConstant(binFlag(*alpha))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("signal=%s alpha=%d beta=%d time constant=%.0f samples\n\n", entry.name, *alpha, *beta, tc)

	if err := printTrace(os.Stdout, rows); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func lookupSignal(name string) (signalEntry, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e, true
		}
	}
	return signalEntry{}, false
}

func printList(w io.Writer) {
	entries := append([]signalEntry(nil), registry...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	for _, e := range entries {
		fmt.Fprintf(w, "%-6s %s\n", e.name, e.about)
	}
}

func trace(in []uint16, alpha, beta uint8) ([]row, error) {
	single, err := smooth.NewSingle(smooth.WithAlpha(alpha))
	if err != nil {
		return nil, err
	}
	double, err := smooth.NewDouble(smooth.WithAlpha(alpha), smooth.WithBeta(beta))
	if err != nil {
		return nil, err
	}

	rows := make([]row, len(in))
	for i, x := range in {
		rows[i] = row{
			n:        i,
			input:    x,
			single:   single.ProcessSample(int(x)),
			forecast: double.ProcessSample(x),
			level:    double.Level(),
			trend:    double.Trend(),
		}
	}
	return rows, nil
}

func printTrace(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "n\tInput\tSingle\tLevel\tTrend\tForecast\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-\t-----\t------\t-----\t-----\t--------\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%d\t%d\t%.3f\t%.3f\t%.3f\t%.3f\n",
			r.n, r.input, r.single, r.level, r.trend, r.forecast,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func buildStep(p signalParams) []uint16 {
	out := make([]uint16, p.steps)
	for i := range out {
		if i == 0 {
			out[i] = clampUint16(p.low)
		} else {
			out[i] = clampUint16(p.high)
		}
	}
	return out
}

func buildRamp(p signalParams) []uint16 {
	out := make([]uint16, p.steps)
	for i := range out {
		out[i] = clampUint16(p.low + i*p.slope)
	}
	return out
}

func buildFade(p signalParams) []uint16 {
	out := make([]uint16, p.steps)
	low, high := int32(clampUint16(p.low)), int32(clampUint16(p.high))
	for i := range out {
		percent := 255
		if p.steps > 1 {
			percent = i * 255 / (p.steps - 1)
		}
		out[i] = uint16(blend.WeightedMeanInt(low, high, uint8(percent)))
	}
	return out
}

// binFlag narrows a flag value to a bin, saturating so that oversized values
// still reach the smoother's range check instead of wrapping.
func binFlag(v uint) uint8 {
	if v > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(v)
}

func clampUint16(v int) uint16 {
	switch {
	case v < 0:
		return 0
	case v > 0xffff:
		return 0xffff
	default:
		return uint16(v)
	}
}
