package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/filter/iir"
)

// PeakConstantQ designs a constant-Q peaking biquad with the given gain in
// dB, following the parametric-EQ derivation in Zoelzer's DAFX (p. 50-55).
// The bandwidth stays constant in octaves across gain settings and the gain
// is referenced at the -3 dB points like an analog peaking EQ, which makes
// this shape the right building block for a cascaded multi-band equalizer.
//
// Boost (gainDB > 0) and cut use structurally different formulas: the boost
// branch normalizes by the unity-gain denominator and scales the feedforward
// terms by v0, while the cut branch moves v0 into the denominator. The two
// only coincide at 0 dB, where both collapse to an exact identity.
func PeakConstantQ(freq, sampleRate, gainDB float64, opts ...Option) *iir.Filter {
	cfg := applyOptions(opts)
	q := cfg.q
	k := math.Tan(math.Pi * freq / sampleRate)
	kk := k * k

	v0 := core.DBToLinear(gainDB)
	if v0 < 1 {
		// Cuts are expressed through an inverted linear gain.
		v0 = 1 / v0
	}

	var b0, b1, b2, a1, a2 float64

	if gainDB > 0 {
		den := 1 + (1/q)*k + kk
		b0 = (1 + (v0/q)*k + kk) / den
		b1 = 2 * (kk - 1) / den
		b2 = (1 - (v0/q)*k + kk) / den
		a1 = b1
		a2 = (1 - (1/q)*k + kk) / den
	} else {
		den := 1 + (v0/q)*k + kk
		b0 = (1 + (1/q)*k + kk) / den
		b1 = 2 * (kk - 1) / den
		b2 = (1 - (1/q)*k + kk) / den
		a1 = b1
		a2 = (1 - (v0/q)*k + kk) / den
	}

	// a0 is omitted; the runtime prepends the implicit 1.0.
	return newBiquad([]float64{a1, a2}, []float64{b0, b1, b2})
}
