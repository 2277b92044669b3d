package design_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
	"github.com/cwbudde/algo-eq/dsp/response"
)

func ExampleLowpass() {
	f := design.Lowpass(1000, 48000)
	a, b := f.Coefficients()

	fmt.Printf("order=%d\n", f.Order())
	fmt.Printf("100 Hz:   %.2f dB\n", 20*math.Log10(response.MagnitudeAt(a, b, 100, 48000)))
	fmt.Printf("1000 Hz:  %.2f dB\n", 20*math.Log10(response.MagnitudeAt(a, b, 1000, 48000)))
	fmt.Printf("10000 Hz: %.2f dB\n", 20*math.Log10(response.MagnitudeAt(a, b, 10000, 48000)))
	// Output:
	// order=2
	// 100 Hz:   -0.00 dB
	// 1000 Hz:  -3.01 dB
	// 10000 Hz: -42.74 dB
}
