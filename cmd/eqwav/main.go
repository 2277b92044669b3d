// Command eqwav runs a WAV file through the 10-band equalizer.
//
// Usage:
//
//	eqwav -in input.wav -out output.wav -gains "0,0,-5,0,3,3,0,0,6,6"
//
// The input is downmixed to mono, filtered sample by sample, and written
// back as 16-bit PCM. Gains are in dB, one per band from low to high.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/wav"
	"github.com/go-audio/audio"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
)

func main() {
	in := flag.String("in", "", "input WAV file")
	out := flag.String("out", "", "output WAV file")
	gains := flag.String("gains", "", "comma-separated per-band gains in dB, low to high")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: eqwav -in input.wav -out output.wav [-gains g0,...,g9]\n\n")
		fmt.Fprintf(os.Stderr, "Applies a 10-band equalizer to a WAV file (downmixed to mono).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(*in, *out, *gains); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, gainSpec string) error {
	samples, sampleRate, err := readWAVMono(inPath)
	if err != nil {
		return err
	}

	equalizer, err := eq.NewTenBand(sampleRate)
	if err != nil {
		return err
	}

	if err := applyGains(equalizer, gainSpec); err != nil {
		return err
	}

	for i := 0; i < equalizer.NumBands(); i++ {
		fmt.Printf("%6.0f Hz : %+5.1f dB\n", equalizer.BandFrequency(i), equalizer.BandGain(i))
	}

	equalizer.ProcessBlock(samples)

	if err := writeWAVMono(outPath, samples, sampleRate); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d samples at %d Hz)\n", outPath, len(samples), sampleRate)

	return nil
}

func applyGains(equalizer *eq.Equalizer, csv string) error {
	if csv == "" {
		return nil
	}

	fields := strings.Split(csv, ",")
	if len(fields) != equalizer.NumBands() {
		return fmt.Errorf("expected %d gains, got %d", equalizer.NumBands(), len(fields))
	}

	for i, field := range fields {
		gainDB, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return fmt.Errorf("invalid gain %q: %w", field, err)
		}

		if err := equalizer.SetBandGain(i, gainDB); err != nil {
			return fmt.Errorf("band %d: %w", i, err)
		}
	}

	return nil
}

// readWAVMono decodes a WAV file, normalizes it to [-1, 1], and downmixes
// all channels to mono.
func readWAVMono(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid wav file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, 0, fmt.Errorf("invalid wav buffer: %s", path)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int(1) << (bitDepth - 1))

	ch := buf.Format.NumChannels
	frames := len(buf.Data) / ch
	out := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i*ch+c])
		}
		out[i] = sum / float64(ch) / scale
	}

	return out, buf.Format.SampleRate, nil
}

// writeWAVMono encodes samples as mono 16-bit PCM, clipping to [-1, 1].
func writeWAVMono(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := make([]float32, len(samples))
	for i, s := range samples {
		data[i] = float32(core.Clamp(s, -1, 1))
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	defer enc.Close()

	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			SampleRate:  sampleRate,
			NumChannels: 1,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	return enc.Write(buf)
}
