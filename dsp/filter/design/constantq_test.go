package design

import (
	"math"
	"testing"
)

const eqBandQ = 2 * math.Sqrt2

func TestPeakConstantQ_ZeroGainIsExactIdentity(t *testing.T) {
	f := PeakConstantQ(1000, 48000, 0, WithQ(eqBandQ))

	a, b := f.Coefficients()
	if a[0] != 1 {
		t.Fatalf("a0 = %v, want implicit 1", a[0])
	}
	// At 0 dB numerator and denominator coincide term for term, so the
	// filter is an exact pass-through regardless of input.
	if b[0] != 1 || b[1] != a[1] || b[2] != a[2] {
		t.Fatalf("0 dB coefficients not identity: a=%v b=%v", a, b)
	}

	for _, x := range []float64{1, -0.25, 0.5, 0} {
		if got := f.ProcessSample(x); got != x {
			t.Fatalf("0 dB band altered sample %v -> %v", x, got)
		}
	}
}

func TestPeakConstantQ_GainDirection(t *testing.T) {
	sr := 48000.0
	fc := 1000.0

	boost := PeakConstantQ(fc, sr, 5, WithQ(eqBandQ))
	cut := PeakConstantQ(fc, sr, -5, WithQ(eqBandQ))

	if m := mag(boost, fc, sr); !(m > 1) {
		t.Errorf("boost magnitude at center = %v, want > 1", m)
	}
	if m := mag(cut, fc, sr); !(m < 1) {
		t.Errorf("cut magnitude at center = %v, want < 1", m)
	}

	// Far from the center both settle back toward unity.
	for _, f := range []float64{50, 20000} {
		if m := mag(boost, f, sr); !almostEqual(m, 1, 0.05) {
			t.Errorf("boost magnitude at %v Hz = %v, want ~1", f, m)
		}
	}
}

func TestPeakConstantQ_BoostCutSymmetry(t *testing.T) {
	sr := 48000.0
	fc := 1000.0
	gain := 6.0

	boost := PeakConstantQ(fc, sr, gain, WithQ(eqBandQ))
	cut := PeakConstantQ(fc, sr, -gain, WithQ(eqBandQ))

	// Constant-Q cut mirrors the boost at the center frequency.
	prod := mag(boost, fc, sr) * mag(cut, fc, sr)
	if !almostEqual(prod, 1, 1e-9) {
		t.Errorf("boost*cut at center = %v, want 1", prod)
	}
}

func TestPeakConstantQ_ContinuousAcrossZeroGain(t *testing.T) {
	// The boost and cut formulas are algebraically distinct, so their
	// agreement at the branch boundary is verified numerically rather than
	// assumed.
	sr := 48000.0
	fc := 1000.0
	eps := 1e-9

	up := PeakConstantQ(fc, sr, eps, WithQ(eqBandQ))
	down := PeakConstantQ(fc, sr, -eps, WithQ(eqBandQ))

	upA, upB := up.Coefficients()
	downA, downB := down.Coefficients()
	for i := range upA {
		if !almostEqual(upA[i], downA[i], 1e-9) {
			t.Errorf("a[%d]: boost %v vs cut %v at the 0 dB boundary", i, upA[i], downA[i])
		}
		if !almostEqual(upB[i], downB[i], 1e-9) {
			t.Errorf("b[%d]: boost %v vs cut %v at the 0 dB boundary", i, upB[i], downB[i])
		}
	}

	for _, f := range []float64{100, fc, 10000} {
		if m := mag(up, f, sr); !almostEqual(m, 1, 1e-6) {
			t.Errorf("near-zero boost magnitude at %v Hz = %v, want ~1", f, m)
		}
		if m := mag(down, f, sr); !almostEqual(m, 1, 1e-6) {
			t.Errorf("near-zero cut magnitude at %v Hz = %v, want ~1", f, m)
		}
	}
}

func TestPeakConstantQ_SuppliesOrderLengthFeedback(t *testing.T) {
	f := PeakConstantQ(1000, 48000, 3, WithQ(eqBandQ))

	a, _ := f.Coefficients()
	if len(a) != 3 {
		t.Fatalf("len(a) = %d, want 3", len(a))
	}
	if a[0] != 1 {
		t.Fatalf("a0 = %v, want the implicit 1.0", a[0])
	}
}
