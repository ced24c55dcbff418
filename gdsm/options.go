package gdsm

import "github.com/telegraphic/gdsm/interp"

type config struct {
	method     interp.Method
	nside      int // 0 = native resolution
	includeCMB bool
	unit       Unit
	unitSet    bool
	beta       float64 // Haslam scalar spectral index
}

// Option configures a model at construction time.
type Option func(*config)

// WithInterpolation selects the interpolation method for the frequency
// curves. The default is monotone PCHIP; raw cubic splines can overshoot
// between control points.
func WithInterpolation(m interp.Method) Option {
	return func(cfg *config) {
		cfg.method = m
	}
}

// WithNside resamples generated maps to the given resolution instead of the
// component data's native one. Must be a power of two.
func WithNside(nside int) Option {
	return func(cfg *config) {
		cfg.nside = nside
	}
}

// WithCMB includes the cosmic microwave background (T = 2.725 K) in
// generated maps. The default excludes it.
func WithCMB(include bool) Option {
	return func(cfg *config) {
		cfg.includeCMB = include
	}
}

// WithUnit selects the output unit. Only GSM2016 supports units other than
// antenna temperature in kelvin.
func WithUnit(u Unit) Option {
	return func(cfg *config) {
		cfg.unit = u
		cfg.unitSet = true
	}
}

// WithSpectralIndex overrides the Haslam scalar spectral index
// (default -2.55). Ignored when the component data carries a per-pixel
// index map.
func WithSpectralIndex(beta float64) Option {
	return func(cfg *config) {
		cfg.beta = beta
	}
}

func defaultConfig() config {
	return config{
		method: interp.PCHIP,
		beta:   -2.55,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
