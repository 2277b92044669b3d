package iir

import (
	"errors"
	"fmt"
)

// ErrCoefficientLength is returned by SetCoefficients when a supplied
// coefficient slice does not match the filter's fixed order.
var ErrCoefficientLength = errors.New("iir: invalid coefficient length")

// SampleProcessor is anything that can filter a signal one sample at a time.
// Both [*Filter] and the equalizer in dsp/eq implement it, so analysis and
// driver code can treat a single section and a full cascade uniformly.
type SampleProcessor interface {
	ProcessSample(x float64) float64
}

// Filter is a single IIR section of fixed order N, using the difference
// equation
//
//	y[n] = (b0*x[n] + b1*x[n-1] + ... + bN*x[n-N]
//	        - a1*y[n-1] - ... - aN*y[n-N]) / a0
//
// The order is set at construction and never changes. Coefficients can be
// replaced at any time without disturbing the delay lines, which is what
// allows a live equalizer band to change shape mid-stream without a click.
type Filter struct {
	order int

	// a[0..order] feedback, b[0..order] feedforward, as supplied.
	a []float64
	b []float64

	// x[n-1..n-order] and y[n-1..n-order], newest first.
	xHistory []float64
	yHistory []float64
}

// New returns an identity filter of the given order: a0 = b0 = 1, all other
// coefficients zero, all history zero. Processing a sample through a fresh
// filter returns it unchanged.
//
// New panics if order < 1; the order is a structural property of the caller's
// design, not runtime input.
func New(order int) *Filter {
	if order < 1 {
		panic(fmt.Sprintf("iir: filter order must be >= 1, got %d", order))
	}

	f := &Filter{
		order:    order,
		a:        make([]float64, order+1),
		b:        make([]float64, order+1),
		xHistory: make([]float64, order),
		yHistory: make([]float64, order),
	}
	f.a[0] = 1
	f.b[0] = 1

	return f
}

// Order returns the filter order fixed at construction.
func (f *Filter) Order() int { return f.order }

// SetCoefficients replaces both coefficient sets.
//
// b must have exactly order+1 elements. a may have either order+1 elements,
// or order elements in which case a leading 1.0 is prepended. Any other
// length fails with [ErrCoefficientLength] and leaves the filter completely
// unchanged; on success both sets are replaced together.
//
// The delay lines are never touched, so coefficients can be hot-swapped on a
// running filter without an output discontinuity.
func (f *Filter) SetCoefficients(a, b []float64) error {
	if len(a) != f.order+1 && len(a) != f.order {
		return fmt.Errorf("%w: expected %d a-coefficients for an order-%d filter, got %d",
			ErrCoefficientLength, f.order+1, f.order, len(a))
	}

	if len(b) != f.order+1 {
		return fmt.Errorf("%w: expected %d b-coefficients for an order-%d filter, got %d",
			ErrCoefficientLength, f.order+1, f.order, len(b))
	}

	if len(a) == f.order {
		f.a[0] = 1
		copy(f.a[1:], a)
	} else {
		copy(f.a, a)
	}

	copy(f.b, b)

	return nil
}

// Coefficients returns copies of the current feedback (a) and feedforward (b)
// coefficient sets, each of length order+1.
func (f *Filter) Coefficients() (a, b []float64) {
	a = make([]float64, len(f.a))
	b = make([]float64, len(f.b))
	copy(a, f.a)
	copy(b, f.b)

	return a, b
}

// ProcessSample filters one input sample and returns the output.
//
// The result depends only on the current coefficients, the delay lines left
// by previous calls, and x; callers streaming a signal must call it once per
// sample in order. a[0] == 0 is not validated here and yields non-finite
// output; supplying stable coefficients is the designer's responsibility.
func (f *Filter) ProcessSample(x float64) float64 {
	y := 0.0
	for i := 1; i <= f.order; i++ {
		y += f.b[i]*f.xHistory[i-1] - f.a[i]*f.yHistory[i-1]
	}

	y = (y + f.b[0]*x) / f.a[0]

	// Shift both delay lines one step toward the past and insert the
	// newest pair at the head.
	copy(f.xHistory[1:], f.xHistory[:f.order-1])
	copy(f.yHistory[1:], f.yHistory[:f.order-1])
	f.xHistory[0] = x
	f.yHistory[0] = y

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset clears both delay lines to zero. Coefficients are kept.
func (f *Filter) Reset() {
	for i := range f.xHistory {
		f.xHistory[i] = 0
		f.yHistory[i] = 0
	}
}

// State returns copies of the input and output delay lines, newest first.
func (f *Filter) State() (inputs, outputs []float64) {
	inputs = make([]float64, len(f.xHistory))
	outputs = make([]float64, len(f.yHistory))
	copy(inputs, f.xHistory)
	copy(outputs, f.yHistory)

	return inputs, outputs
}
