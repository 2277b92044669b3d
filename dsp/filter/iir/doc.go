// Package iir provides the N-order IIR recurrence runtime.
//
// A [Filter] holds one set of feedback (a) and feedforward (b) coefficients
// together with its input and output delay lines, and computes one output
// sample per call to ProcessSample using the Direct Form I difference
// equation. Coefficients are stored exactly as supplied; a[0] acts as the
// normalization divisor and is applied on every sample rather than being
// folded into the other coefficients.
//
// This package provides the processing runtime only. Coefficient design
// (lowpass, shelving, parametric EQ, etc.) lives in dsp/filter/design.
package iir
