package interp

import (
	"errors"
	"fmt"
	"math"

	ginterp "gonum.org/v1/gonum/interp"
)

// Errors returned when building or querying interpolation curves.
var (
	ErrTooFewPoints         = errors.New("interp: at least two tabulated frequencies are required")
	ErrFrequencyOrder       = errors.New("interp: tabulated frequencies must be strictly increasing")
	ErrColumnLength         = errors.New("interp: column length does not match frequency count")
	ErrNoColumns            = errors.New("interp: at least one coefficient column is required")
	ErrNonPositiveFrequency = errors.New("interp: frequency must be positive")
	ErrScaleDomain          = errors.New("interp: scale values must be positive for log-domain interpolation")
)

// RangeError reports a query frequency outside the calibrated band.
// The model is empirically calibrated only inside [MinMHz, MaxMHz];
// no extrapolation is performed.
type RangeError struct {
	FreqMHz float64
	MinMHz  float64
	MaxMHz  float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("interp: frequency %g MHz outside calibrated band [%g, %g] MHz",
		e.FreqMHz, e.MinMHz, e.MaxMHz)
}

// Method selects the piecewise interpolation family.
type Method int

const (
	// PCHIP is monotone piecewise cubic Hermite interpolation. It never
	// overshoots between control points.
	PCHIP Method = iota
	// CubicSpline is a natural cubic spline with continuous second derivatives.
	CubicSpline
	// Linear is piecewise linear interpolation.
	Linear
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case CubicSpline:
		return "cubic"
	case Linear:
		return "linear"
	default:
		return "pchip"
	}
}

// Axis selects the abscissa used for fitting and evaluation.
type Axis int

const (
	// LogAxis fits against ln(frequency). Appropriate when coefficients
	// vary over several orders of magnitude in frequency.
	LogAxis Axis = iota
	// LinearAxis fits against the frequency directly.
	LinearAxis
)

type config struct {
	method      Method
	axis        Axis
	scale       []float64
	scaleMethod Method
	scaleSet    bool
	logScale    bool
}

// Option configures curve fitting.
type Option func(*config)

// WithMethod selects the interpolation method for the coefficient columns.
func WithMethod(m Method) Option {
	return func(cfg *config) {
		cfg.method = m
	}
}

// WithAxis selects the frequency axis.
func WithAxis(a Axis) Option {
	return func(cfg *config) {
		cfg.axis = a
	}
}

// WithScaleColumn attaches an overall scale column of the same length as the
// frequency table. When logDomain is true the scale is interpolated as
// ln(scale) and exponentiated on evaluation, which keeps interpolated values
// positive for positive control points.
func WithScaleColumn(scale []float64, logDomain bool) Option {
	return func(cfg *config) {
		cfg.scale = scale
		cfg.logScale = logDomain
	}
}

// WithScaleMethod overrides the interpolation method for the scale column.
// Without it the scale column uses the coefficient method.
func WithScaleMethod(m Method) Option {
	return func(cfg *config) {
		cfg.scaleMethod = m
		cfg.scaleSet = true
	}
}

func defaultConfig() config {
	return config{
		method: PCHIP,
		axis:   LogAxis,
	}
}

// Curves holds fitted interpolants for the K coefficient columns of a
// frequency table, plus an optional scale column. Immutable after New;
// concurrent At calls are safe.
type Curves struct {
	minMHz, maxMHz float64
	axis           Axis
	logScale       bool
	comps          []ginterp.FittablePredictor
	scale          ginterp.FittablePredictor
}

// New fits interpolation curves through the tabulated frequencies (MHz,
// strictly increasing, N >= 2) and the K coefficient columns (each of
// length N).
func New(freqsMHz []float64, columns [][]float64, opts ...Option) (*Curves, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.scaleSet {
		cfg.scaleMethod = cfg.method
	}

	if len(freqsMHz) < 2 {
		return nil, ErrTooFewPoints
	}
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	for i := 1; i < len(freqsMHz); i++ {
		if freqsMHz[i] <= freqsMHz[i-1] {
			return nil, ErrFrequencyOrder
		}
	}

	xs, err := transformAxis(freqsMHz, cfg.axis)
	if err != nil {
		return nil, err
	}

	c := &Curves{
		minMHz:   freqsMHz[0],
		maxMHz:   freqsMHz[len(freqsMHz)-1],
		axis:     cfg.axis,
		logScale: cfg.logScale,
		comps:    make([]ginterp.FittablePredictor, len(columns)),
	}

	for k, col := range columns {
		if len(col) != len(freqsMHz) {
			return nil, fmt.Errorf("interp: column %d: %w", k, ErrColumnLength)
		}
		p := newPredictor(cfg.method)
		if err := p.Fit(xs, col); err != nil {
			return nil, fmt.Errorf("interp: fitting column %d: %w", k, err)
		}
		c.comps[k] = p
	}

	if cfg.scale != nil {
		if len(cfg.scale) != len(freqsMHz) {
			return nil, fmt.Errorf("interp: scale column: %w", ErrColumnLength)
		}
		ys := cfg.scale
		if cfg.logScale {
			ys = make([]float64, len(cfg.scale))
			for i, v := range cfg.scale {
				if v <= 0 {
					return nil, ErrScaleDomain
				}
				ys[i] = math.Log(v)
			}
		}
		p := newPredictor(cfg.scaleMethod)
		if err := p.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("interp: fitting scale column: %w", err)
		}
		c.scale = p
	}

	return c, nil
}

// K returns the number of coefficient columns.
func (c *Curves) K() int {
	return len(c.comps)
}

// Band returns the calibrated frequency band in MHz.
func (c *Curves) Band() (minMHz, maxMHz float64) {
	return c.minMHz, c.maxMHz
}

// HasScale reports whether a scale column was fitted.
func (c *Curves) HasScale() bool {
	return c.scale != nil
}

// At interpolates the K mixing weights and the overall scale at freqMHz.
// The scale is 1 when no scale column was fitted. Queries outside the
// calibrated band return a *RangeError.
func (c *Curves) At(freqMHz float64) (weights []float64, scale float64, err error) {
	if freqMHz < c.minMHz || freqMHz > c.maxMHz {
		return nil, 0, &RangeError{FreqMHz: freqMHz, MinMHz: c.minMHz, MaxMHz: c.maxMHz}
	}

	x := freqMHz
	if c.axis == LogAxis {
		x = math.Log(freqMHz)
	}

	weights = make([]float64, len(c.comps))
	for k, p := range c.comps {
		weights[k] = p.Predict(x)
	}

	scale = 1
	if c.scale != nil {
		scale = c.scale.Predict(x)
		if c.logScale {
			scale = math.Exp(scale)
		}
	}
	return weights, scale, nil
}

func newPredictor(m Method) ginterp.FittablePredictor {
	switch m {
	case CubicSpline:
		return &ginterp.NaturalCubic{}
	case Linear:
		return &ginterp.PiecewiseLinear{}
	default:
		return &ginterp.FritschButland{}
	}
}

func transformAxis(freqsMHz []float64, a Axis) ([]float64, error) {
	xs := make([]float64, len(freqsMHz))
	for i, f := range freqsMHz {
		if a == LogAxis {
			if f <= 0 {
				return nil, ErrNonPositiveFrequency
			}
			xs[i] = math.Log(f)
		} else {
			xs[i] = f
		}
	}
	return xs, nil
}
