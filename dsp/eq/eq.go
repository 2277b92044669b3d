// Package eq implements a multi-band equalizer as an ordered cascade of
// constant-Q peaking filters.
//
// Each band owns one order-2 [iir.Filter]. Changing a band's gain re-derives
// only that band's coefficients and swaps them into the live filter without
// touching its delay lines, so gains can be adjusted while a stream is being
// processed without an audible click.
package eq

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/filter/iir"
)

// Errors returned by the constructors and SetBandGain.
var (
	ErrNoBands           = errors.New("eq: band list is empty")
	ErrInvalidSampleRate = errors.New("eq: sample rate must be positive")
	ErrInvalidGainBounds = errors.New("eq: gain bounds are inverted")
	ErrGainOutOfRange    = errors.New("eq: gain out of range")
)

// Equalizer is an ordered cascade of constant-Q peaking filters, one per
// band. Band frequencies, gain bounds, the shared quality factor, and the
// sample rate are fixed at construction; only per-band gains change.
//
// An Equalizer exclusively owns its band filters and is not safe for
// concurrent use; independent signals need independent instances.
type Equalizer struct {
	sampleRate int
	bands      []float64
	gains      []float64
	gainMinDB  float64
	gainMaxDB  float64
	q          float64
	filters    []*iir.Filter
}

// New builds an equalizer with one band per center frequency in bands, all
// starting at 0 dB. It fails only on structurally invalid input: an empty
// band list, a non-positive sample rate, or inverted gain bounds.
func New(sampleRate int, bands []float64, gainMinDB, gainMaxDB, q float64) (*Equalizer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if len(bands) == 0 {
		return nil, ErrNoBands
	}

	if gainMinDB > gainMaxDB {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidGainBounds, gainMinDB, gainMaxDB)
	}

	e := &Equalizer{
		sampleRate: sampleRate,
		bands:      append([]float64(nil), bands...),
		gains:      make([]float64, len(bands)),
		gainMinDB:  gainMinDB,
		gainMaxDB:  gainMaxDB,
		q:          q,
		filters:    make([]*iir.Filter, len(bands)),
	}

	for i, freq := range e.bands {
		e.filters[i] = design.PeakConstantQ(freq, float64(sampleRate), 0, design.WithQ(q))
	}

	return e, nil
}

// NewTenBand builds the standard 10-band equalizer preset. The band centers
// follow the GStreamer 10-band IIR equalizer table, roughly one octave
// apart, and the shared Q of 2*sqrt(2) keeps each band about an octave wide.
func NewTenBand(sampleRate int) (*Equalizer, error) {
	bands := []float64{29, 59, 119, 237, 474, 947, 1889, 3770, 7523, 15011}

	return New(sampleRate, bands, -24, 12, 2*math.Sqrt2)
}

// NumBands returns the number of bands.
func (e *Equalizer) NumBands() int { return len(e.bands) }

// SampleRate returns the sample rate fixed at construction.
func (e *Equalizer) SampleRate() int { return e.sampleRate }

// QFactor returns the quality factor shared by all bands.
func (e *Equalizer) QFactor() float64 { return e.q }

// GainBounds returns the inclusive per-band gain range in dB.
func (e *Equalizer) GainBounds() (minDB, maxDB float64) {
	return e.gainMinDB, e.gainMaxDB
}

// BandFrequency returns the center frequency of band index in Hz.
// index must be in [0, NumBands); out-of-range panics.
func (e *Equalizer) BandFrequency(index int) float64 {
	return e.bands[index]
}

// BandGain returns the current gain of band index in dB.
// index must be in [0, NumBands); out-of-range panics.
func (e *Equalizer) BandGain(index int) float64 {
	return e.gains[index]
}

// SetBandGain sets the gain of band index and re-derives that band's
// coefficients. Gains outside [GainBounds] fail with [ErrGainOutOfRange]
// and leave the equalizer unchanged.
//
// On success only the band's coefficients are replaced; its delay line keeps
// running, so a gain change mid-stream does not produce a discontinuity.
// index must be in [0, NumBands); out-of-range panics.
func (e *Equalizer) SetBandGain(index int, gainDB float64) error {
	_ = e.bands[index]

	if gainDB < e.gainMinDB || gainDB > e.gainMaxDB {
		return fmt.Errorf("%w: %g dB, must be within [%g, %g]",
			ErrGainOutOfRange, gainDB, e.gainMinDB, e.gainMaxDB)
	}

	e.gains[index] = gainDB
	e.redesignBand(index)

	return nil
}

// redesignBand derives fresh coefficients for one band at its current gain
// and copies them into the live filter.
func (e *Equalizer) redesignBand(index int) {
	fresh := design.PeakConstantQ(e.bands[index], float64(e.sampleRate), e.gains[index], design.WithQ(e.q))

	a, b := fresh.Coefficients()
	if err := e.filters[index].SetCoefficients(a, b); err != nil {
		// Both filters have the same fixed order; a mismatch is a bug.
		panic(err)
	}
}

// ProcessSample feeds one sample through every band filter in band order and
// returns the final output.
func (e *Equalizer) ProcessSample(x float64) float64 {
	for _, f := range e.filters {
		x = f.ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block of samples in-place through the full cascade.
func (e *Equalizer) ProcessBlock(buf []float64) {
	for _, f := range e.filters {
		f.ProcessBlock(buf)
	}
}

// Reset clears the delay lines of every band filter. Gains and coefficients
// are kept.
func (e *Equalizer) Reset() {
	for _, f := range e.filters {
		f.Reset()
	}
}
