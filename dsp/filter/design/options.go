package design

import "math"

// Evaluated at runtime on purpose: the constant expression 1/math.Sqrt2 is
// folded in arbitrary precision and lands one ulp above the IEEE-rounded
// quotient, which shifts the shelf coefficient vectors.
var defaultQ = 1 / math.Sqrt(2)

// Option configures a designer.
type Option func(*config)

type config struct {
	q float64
}

// WithQ overrides the default quality factor of 1/sqrt(2).
// The value is passed through as-is; a zero or negative Q degenerates the
// design rather than being rejected.
func WithQ(q float64) Option {
	return func(c *config) { c.q = q }
}

func applyOptions(opts []Option) config {
	cfg := config{q: defaultQ}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	return cfg
}
