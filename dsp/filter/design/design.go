package design

import (
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/iir"
)

const biquadOrder = 2

// newBiquad builds an order-2 filter carrying the given coefficients.
// The call sites construct the slices with the correct lengths, so a
// length failure here is a bug in this package.
func newBiquad(a, b []float64) *iir.Filter {
	f := iir.New(biquadOrder)
	if err := f.SetCoefficients(a, b); err != nil {
		panic(err)
	}

	return f
}

// angular returns w0 together with its sine and cosine.
func angular(freq, sampleRate float64) (w0, sw, cw float64) {
	w0 = 2 * math.Pi * freq / sampleRate

	return w0, math.Sin(w0), math.Cos(w0)
}

// Lowpass designs a lowpass biquad at freq (Hz).
func Lowpass(freq, sampleRate float64, opts ...Option) *iir.Filter {
	cfg := applyOptions(opts)
	_, sw, cw := angular(freq, sampleRate)
	alpha := sw / (2 * cfg.q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw

	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return newBiquad([]float64{a0, a1, a2}, []float64{b0, b1, b0})
}

// Highpass designs a highpass biquad at freq (Hz).
func Highpass(freq, sampleRate float64, opts ...Option) *iir.Filter {
	cfg := applyOptions(opts)
	_, sw, cw := angular(freq, sampleRate)
	alpha := sw / (2 * cfg.q)

	b0 := (1 + cw) / 2
	b1 := -1 - cw

	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return newBiquad([]float64{a0, a1, a2}, []float64{b0, b1, b0})
}

// Bandpass designs a constant-skirt-gain bandpass biquad with peak gain Q.
func Bandpass(freq, sampleRate float64, opts ...Option) *iir.Filter {
	cfg := applyOptions(opts)
	_, sw, cw := angular(freq, sampleRate)
	alpha := sw / (2 * cfg.q)

	b0 := sw / 2
	b1 := 0.0
	b2 := -b0

	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return newBiquad([]float64{a0, a1, a2}, []float64{b0, b1, b2})
}

// Allpass designs an allpass biquad centered at freq (Hz). Its feedforward
// and feedback coefficients are mirror images, giving unity magnitude at
// every frequency with a phase shift around the center.
func Allpass(freq, sampleRate float64, opts ...Option) *iir.Filter {
	cfg := applyOptions(opts)
	_, sw, cw := angular(freq, sampleRate)
	alpha := sw / (2 * cfg.q)

	b0 := 1 - alpha
	b1 := -2 * cw
	b2 := 1 + alpha

	return newBiquad([]float64{b2, b1, b0}, []float64{b0, b1, b2})
}

// Notch designs a notch biquad with a null at freq (Hz). Unlike the other
// shapes it derives alpha from the bandwidth in octaves, so Q here sets the
// notch width rather than a resonance.
func Notch(freq, sampleRate float64, opts ...Option) *iir.Filter {
	cfg := applyOptions(opts)
	w0, sw, cw := angular(freq, sampleRate)
	alpha := sw * math.Sinh(math.Ln2/2*cfg.q*(w0/sw))

	b0 := 1.0
	b1 := -2 * cw

	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return newBiquad([]float64{a0, a1, a2}, []float64{b0, b1, b0})
}

// Peak designs a peaking-EQ biquad with the given gain in dB.
func Peak(freq, sampleRate, gainDB float64, opts ...Option) *iir.Filter {
	cfg := applyOptions(opts)
	_, sw, cw := angular(freq, sampleRate)
	alpha := sw / (2 * cfg.q)
	a := math.Pow(10, gainDB/40)

	b0 := 1 + alpha*a
	b1 := -2 * cw
	b2 := 1 - alpha*a
	a0 := 1 + alpha/a
	a1 := -2 * cw
	a2 := 1 - alpha/a

	return newBiquad([]float64{a0, a1, a2}, []float64{b0, b1, b2})
}

// LowShelf designs a low-shelf biquad with the given gain in dB below freq.
func LowShelf(freq, sampleRate, gainDB float64, opts ...Option) *iir.Filter {
	cfg := applyOptions(opts)
	_, sw, cw := angular(freq, sampleRate)
	alpha := sw / (2 * cfg.q)
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) - (a-1)*cw + beta)
	b1 := 2 * a * ((a - 1) - (a+1)*cw)
	b2 := a * ((a + 1) - (a-1)*cw - beta)
	a0 := (a + 1) + (a-1)*cw + beta
	a1 := -2 * ((a - 1) + (a+1)*cw)
	a2 := (a + 1) + (a-1)*cw - beta

	return newBiquad([]float64{a0, a1, a2}, []float64{b0, b1, b2})
}

// HighShelf designs a high-shelf biquad with the given gain in dB above freq.
func HighShelf(freq, sampleRate, gainDB float64, opts ...Option) *iir.Filter {
	cfg := applyOptions(opts)
	_, sw, cw := angular(freq, sampleRate)
	alpha := sw / (2 * cfg.q)
	a := math.Pow(10, gainDB/40)
	beta := 2 * math.Sqrt(a) * alpha

	b0 := a * ((a + 1) + (a-1)*cw + beta)
	b1 := -2 * a * ((a - 1) + (a+1)*cw)
	b2 := a * ((a + 1) + (a-1)*cw - beta)
	a0 := (a + 1) - (a-1)*cw + beta
	a1 := 2 * ((a - 1) - (a+1)*cw)
	a2 := (a + 1) - (a-1)*cw - beta

	return newBiquad([]float64{a0, a1, a2}, []float64{b0, b1, b2})
}
