// Command filterinfo designs a filter and prints its coefficients together
// with a magnitude/phase table.
//
// Usage:
//
//	filterinfo [flags] [shape ...]
//
// Without arguments it prints all shapes.
//
// Examples:
//
//	filterinfo lowpass
//	filterinfo -freq 2000 -q 1.5 bandpass notch
//	filterinfo -gain -6 peak lowshelf highshelf
//	filterinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/filter/iir"
	"github.com/cwbudde/algo-eq/dsp/response"
)

type shapeEntry struct {
	name     string
	hasGain  bool
	designFn func(freq, sampleRate, gainDB float64, opts ...design.Option) *iir.Filter
}

var registry = []shapeEntry{
	{"lowpass", false, func(f, sr, _ float64, o ...design.Option) *iir.Filter { return design.Lowpass(f, sr, o...) }},
	{"highpass", false, func(f, sr, _ float64, o ...design.Option) *iir.Filter { return design.Highpass(f, sr, o...) }},
	{"bandpass", false, func(f, sr, _ float64, o ...design.Option) *iir.Filter { return design.Bandpass(f, sr, o...) }},
	{"allpass", false, func(f, sr, _ float64, o ...design.Option) *iir.Filter { return design.Allpass(f, sr, o...) }},
	{"notch", false, func(f, sr, _ float64, o ...design.Option) *iir.Filter { return design.Notch(f, sr, o...) }},
	{"peak", true, design.Peak},
	{"lowshelf", true, design.LowShelf},
	{"highshelf", true, design.HighShelf},
	{"peak-constant-q", true, design.PeakConstantQ},
}

func main() {
	freq := flag.Float64("freq", 1000, "center/corner frequency in Hz")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	q := flag.Float64("q", math.NaN(), "quality factor (default 1/sqrt(2))")
	gain := flag.Float64("gain", 6, "gain in dB for peak/shelf shapes")
	points := flag.Int("points", 16, "number of response table rows")
	list := flag.Bool("list", false, "list available shape names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags] [shape ...]\n\n")
		fmt.Fprintf(os.Stderr, "Designs IIR filters and prints coefficients and responses.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints all shapes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo lowpass\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -freq 2000 -q 1.5 bandpass notch\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -gain -6 peak-constant-q\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	entries := resolveEntries(flag.Args())
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filter shapes\n")
		os.Exit(1)
	}

	var opts []design.Option
	if !math.IsNaN(*q) {
		opts = append(opts, design.WithQ(*q))
	}

	for _, e := range entries {
		printShape(e, *freq, *rate, *gain, *points, opts)
	}
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []shapeEntry {
	if len(names) == 0 {
		return registry
	}

	byName := make(map[string]shapeEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []shapeEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown shape %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printShape(e shapeEntry, freq, rate, gain float64, points int, opts []design.Option) {
	f := e.designFn(freq, rate, gain, opts...)
	a, b := f.Coefficients()

	label := e.name
	if e.hasGain {
		label = fmt.Sprintf("%s (%+.1f dB)", e.name, gain)
	}

	fmt.Printf("%s @ %.0f Hz, %.0f Hz sample rate\n", label, freq, rate)
	fmt.Printf("  a: %v\n", a)
	fmt.Printf("  b: %v\n", b)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Freq [Hz]\tMagnitude [dB]\tPhase [rad]\n")

	nyquist := rate / 2
	for i := 1; i <= points; i++ {
		// Log-spaced rows from 20 Hz toward Nyquist.
		hz := 20 * math.Pow(nyquist/20, float64(i)/float64(points+1))
		mag := response.MagnitudeAt(a, b, hz, rate)
		fmt.Fprintf(tw, "  %.1f\t%.2f\t%+.3f\n",
			hz, 20*math.Log10(mag), response.PhaseAt(a, b, hz, rate))
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
	fmt.Println()
}
