// Package interp interpolates tabulated per-frequency model coefficients
// onto an arbitrary query frequency.
//
// A [Curves] value is fitted once from a calibration table (N frequencies,
// K coefficient columns, optionally one overall scale column) and then
// queried repeatedly. Available methods:
//
//   - [PCHIP]:       monotone piecewise cubic Hermite (default)
//   - [CubicSpline]: natural cubic spline
//   - [Linear]:      piecewise linear
//
// PCHIP is the default because unconstrained cubic splines can overshoot
// between control points, producing non-physical oscillation near model
// transition frequencies. All methods reproduce the tabulated values exactly
// at the tabulated frequencies.
//
// Wide-band tables are interpolated on a logarithmic frequency axis
// ([LogAxis]); queries outside the tabulated band fail with [*RangeError]
// rather than extrapolating.
package interp
