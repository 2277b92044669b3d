// Package response characterizes filters by their impulse, magnitude, and
// phase response.
//
// The [Analyzer] drives any [iir.SampleProcessor] with a unit impulse and
// FFTs the zero-padded output, which measures the filter exactly as a
// streaming consumer sees it. The closed-form helpers [MagnitudeAt] and
// [PhaseAt] evaluate H(e^-jw) directly from a coefficient set instead, and
// are mainly useful as an analytic cross-check.
package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/iir"
)

const (
	defaultImpulseLength = 512
	defaultFFTSize       = 4096
)

// Errors returned by Analyze.
var (
	ErrInvalidImpulseLength = errors.New("response: impulse length must be positive")
	ErrFFTSizeTooSmall      = errors.New("response: fft size smaller than impulse length")
)

// ImpulseResponse feeds a unit impulse (1.0 followed by zeros) through p and
// returns the first n output samples. The processor's delay lines are
// mutated; pass a freshly designed filter or Reset it afterwards.
func ImpulseResponse(p iir.SampleProcessor, n int) []float64 {
	out := make([]float64, n)

	x := 1.0
	for i := range out {
		out[i] = p.ProcessSample(x)
		x = 0
	}

	return out
}

// Analyzer measures frequency and phase response via an impulse and an FFT.
type Analyzer struct {
	impulseLen int
	fftSize    int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithImpulseLength sets how many impulse-response samples are captured
// before zero-padding. Default 512.
func WithImpulseLength(n int) Option {
	return func(a *Analyzer) { a.impulseLen = n }
}

// WithFFTSize sets the FFT size, and with it the bin resolution
// (sampleRate/fftSize Hz per bin). Default 4096.
func WithFFTSize(n int) Option {
	return func(a *Analyzer) { a.fftSize = n }
}

// NewAnalyzer returns an Analyzer with the given options applied.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		impulseLen: defaultImpulseLength,
		fftSize:    defaultFFTSize,
	}
	for _, o := range opts {
		if o != nil {
			o(a)
		}
	}

	return a
}

// Result holds the measured response for bins 0..fftSize/2 (DC to Nyquist).
type Result struct {
	SampleRate float64
	FFTSize    int

	Magnitude   []float64 // linear |H| per bin
	MagnitudeDB []float64 // 20*log10|H| per bin
	Phase       []float64 // radians, in [-pi, pi]
}

// BinFrequency returns the center frequency of bin i in Hz.
func (r *Result) BinFrequency(i int) float64 {
	return float64(i) * r.SampleRate / float64(r.FFTSize)
}

// Analyze excites p with a unit impulse and returns its measured response at
// the given sample rate.
func (a *Analyzer) Analyze(p iir.SampleProcessor, sampleRate float64) (*Result, error) {
	if a.impulseLen < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidImpulseLength, a.impulseLen)
	}

	if a.fftSize < a.impulseLen {
		return nil, fmt.Errorf("%w: %d < %d", ErrFFTSizeTooSmall, a.fftSize, a.impulseLen)
	}

	ir := ImpulseResponse(p, a.impulseLen)

	in := make([]complex128, a.fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(a.fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, a.fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := a.fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	res := &Result{
		SampleRate:  sampleRate,
		FFTSize:     a.fftSize,
		Magnitude:   make([]float64, bins),
		MagnitudeDB: make([]float64, bins),
		Phase:       make([]float64, bins),
	}

	vecmath.Magnitude(res.Magnitude, re, im)

	for i := 0; i < bins; i++ {
		res.MagnitudeDB[i] = core.LinearToDB(res.Magnitude[i])
		res.Phase[i] = math.Atan2(im[i], re[i])
	}

	return res, nil
}

// responseAt evaluates H(e^-jw) from unnormalized coefficient sets, where
// a[0] is the normalization divisor.
func responseAt(a, b []float64, freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var num, den complex128

	for i, c := range b {
		num += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(i)))
	}

	for i, c := range a {
		den += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(i)))
	}

	return num / den
}

// MagnitudeAt returns |H(f)| evaluated analytically from the coefficient
// sets of an N-order recurrence, a[0] included.
func MagnitudeAt(a, b []float64, freqHz, sampleRate float64) float64 {
	return cmplx.Abs(responseAt(a, b, freqHz, sampleRate))
}

// PhaseAt returns the phase response in radians at freqHz, in [-pi, pi].
func PhaseAt(a, b []float64, freqHz, sampleRate float64) float64 {
	return cmplx.Phase(responseAt(a, b, freqHz, sampleRate))
}
