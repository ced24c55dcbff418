package interp

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestPassesThroughControlPoints(t *testing.T) {
	freqs := []float64{10, 45, 100, 408, 1420, 23000}
	columns := [][]float64{
		{1.0, 0.9, 0.7, 0.4, 0.2, 0.05},
		{0.0, 0.05, 0.2, 0.4, 0.5, 0.3},
		{-0.1, -0.05, 0.0, 0.1, 0.15, 0.2},
	}
	scale := []float64{2400, 310, 25, 2.6, 0.4, 0.003}

	for _, method := range []Method{PCHIP, CubicSpline, Linear} {
		c, err := New(freqs, columns,
			WithMethod(method),
			WithScaleColumn(scale, true),
		)
		if err != nil {
			t.Fatalf("%v: New: %v", method, err)
		}
		for i, f := range freqs {
			w, s, err := c.At(f)
			if err != nil {
				t.Fatalf("%v: At(%g): %v", method, f, err)
			}
			for k := range columns {
				if !almostEqual(w[k], columns[k][i], 1e-9) {
					t.Fatalf("%v: At(%g) weight %d: got %v want %v", method, f, k, w[k], columns[k][i])
				}
			}
			if !almostEqual(s, scale[i], scale[i]*1e-9) {
				t.Fatalf("%v: At(%g) scale: got %v want %v", method, f, s, scale[i])
			}
		}
	}
}

func TestLinearMidpointWeights(t *testing.T) {
	// K=3 with two control rows: at the midpoint of a linear axis the
	// weights are the row average.
	freqs := []float64{100, 200}
	columns := [][]float64{
		{1, 0},
		{0, 1},
		{0, 0},
	}

	c, err := New(freqs, columns, WithMethod(Linear), WithAxis(LinearAxis))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w, s, err := c.At(150)
	if err != nil {
		t.Fatalf("At(150): %v", err)
	}
	want := []float64{0.5, 0.5, 0}
	for k := range want {
		if !almostEqual(w[k], want[k], 1e-12) {
			t.Fatalf("weight %d: got %v want %v", k, w[k], want[k])
		}
	}
	if s != 1 {
		t.Fatalf("scale: got %v want 1", s)
	}
}

func TestRangeErrorOutsideBand(t *testing.T) {
	c, err := New([]float64{100, 200}, [][]float64{{1, 0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, f := range []float64{50, 99.999, 200.001, 1e6} {
		_, _, err := c.At(f)
		var re *RangeError
		if !errors.As(err, &re) {
			t.Fatalf("At(%g): got %v want *RangeError", f, err)
		}
		if re.MinMHz != 100 || re.MaxMHz != 200 || re.FreqMHz != f {
			t.Fatalf("At(%g): bad range error contents: %+v", f, re)
		}
	}

	// Band edges are inside the calibrated range.
	for _, f := range []float64{100, 200} {
		if _, _, err := c.At(f); err != nil {
			t.Fatalf("At(%g): unexpected error: %v", f, err)
		}
	}
}

func TestPCHIPDoesNotOvershoot(t *testing.T) {
	// Monotone decreasing control data; a monotone cubic must stay inside
	// the data range everywhere in the band.
	freqs := []float64{10, 20, 50, 100, 500, 1000}
	col := []float64{100, 40, 10, 8, 1, 0.5}

	c, err := New(freqs, [][]float64{col}, WithMethod(PCHIP))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	prev := math.Inf(1)
	for f := 10.0; f <= 1000; f *= 1.01 {
		w, _, err := c.At(f)
		if err != nil {
			t.Fatalf("At(%g): %v", f, err)
		}
		if w[0] < 0.5-1e-9 || w[0] > 100+1e-9 {
			t.Fatalf("At(%g): value %v outside data range", f, w[0])
		}
		if w[0] > prev+1e-9 {
			t.Fatalf("At(%g): monotonicity violated (%v after %v)", f, w[0], prev)
		}
		prev = w[0]
	}
}

func TestScaleMethodOverride(t *testing.T) {
	freqs := []float64{10, 100, 1000}
	col := []float64{1, 2, 3}
	scale := []float64{1, 10, 100}

	c, err := New(freqs, [][]float64{col},
		WithMethod(CubicSpline),
		WithScaleColumn(scale, true),
		WithScaleMethod(Linear),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// ln(scale) is linear in ln(f) here, so linear interpolation of the log
	// scale is exact between control points.
	_, s, err := c.At(math.Sqrt(10 * 100))
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if !almostEqual(s, math.Sqrt(10), 1e-9) {
		t.Fatalf("scale: got %v want %v", s, math.Sqrt(10))
	}
}

func TestNewValidation(t *testing.T) {
	for _, tc := range []struct {
		name    string
		freqs   []float64
		columns [][]float64
		opts    []Option
		want    error
	}{
		{
			name:    "too few points",
			freqs:   []float64{100},
			columns: [][]float64{{1}},
			want:    ErrTooFewPoints,
		},
		{
			name:    "no columns",
			freqs:   []float64{100, 200},
			columns: nil,
			want:    ErrNoColumns,
		},
		{
			name:    "non-monotonic",
			freqs:   []float64{100, 100},
			columns: [][]float64{{1, 2}},
			want:    ErrFrequencyOrder,
		},
		{
			name:    "decreasing",
			freqs:   []float64{200, 100},
			columns: [][]float64{{1, 2}},
			want:    ErrFrequencyOrder,
		},
		{
			name:    "column length",
			freqs:   []float64{100, 200},
			columns: [][]float64{{1, 2, 3}},
			want:    ErrColumnLength,
		},
		{
			name:    "scale length",
			freqs:   []float64{100, 200},
			columns: [][]float64{{1, 2}},
			opts:    []Option{WithScaleColumn([]float64{1}, false)},
			want:    ErrColumnLength,
		},
		{
			name:    "log scale domain",
			freqs:   []float64{100, 200},
			columns: [][]float64{{1, 2}},
			opts:    []Option{WithScaleColumn([]float64{1, -1}, true)},
			want:    ErrScaleDomain,
		},
		{
			name:    "log axis needs positive frequencies",
			freqs:   []float64{-10, 200},
			columns: [][]float64{{1, 2}},
			want:    ErrNonPositiveFrequency,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.freqs, tc.columns, tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v want %v", err, tc.want)
			}
		})
	}
}

func TestLogAxisEquivalentForExactHits(t *testing.T) {
	// Whatever the axis, tabulated frequencies reproduce tabulated values.
	freqs := []float64{10, 100, 1000, 10000}
	col := []float64{5, -3, 2, 0.5}
	for _, axis := range []Axis{LogAxis, LinearAxis} {
		c, err := New(freqs, [][]float64{col}, WithAxis(axis))
		if err != nil {
			t.Fatalf("axis=%v: %v", axis, err)
		}
		for i, f := range freqs {
			w, _, err := c.At(f)
			if err != nil {
				t.Fatalf("axis=%v At(%g): %v", axis, f, err)
			}
			if !almostEqual(w[0], col[i], 1e-9) {
				t.Fatalf("axis=%v At(%g): got %v want %v", axis, f, w[0], col[i])
			}
		}
	}
}
