// Package design derives IIR recurrence coefficients from physical filter
// parameters (center frequency, sample rate, quality factor, gain).
//
// Each designer is a pure function that returns a freshly built order-2
// [iir.Filter] carrying the classic Audio EQ Cookbook coefficients for its
// shape, stored unnormalized (the a0 term is kept and applied by the
// runtime). [PeakConstantQ] implements the Zoelzer constant-Q parametric
// band used by the dsp/eq cascade.
//
// The quality factor defaults to 1/sqrt(2) (Butterworth-flat) and can be
// overridden with [WithQ]. Degenerate parameters such as a center frequency
// at or beyond Nyquist, or a zero quality factor, are not validated; they
// propagate as non-finite coefficients and are the caller's responsibility.
package design
