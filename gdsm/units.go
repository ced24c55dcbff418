package gdsm

import "math"

// CMBTemperature is the cosmic microwave background monopole in kelvin.
const CMBTemperature = 2.725

// Physical constants (SI), matching the values the GSM2016 calibration used.
const (
	kBoltzmann = 1.38065e-23 // J/K
	cLight     = 2.99792e8   // m/s
	hPlanck    = 6.62607e-34 // J s
)

// KCMBToMJysr converts a thermodynamic CMB temperature in kelvin to
// MJy/sr at frequency hz, linearized around the CMB blackbody.
func KCMBToMJysr(k, hz float64) float64 {
	x := hPlanck * hz / (kBoltzmann * CMBTemperature)
	bNu := 2 * hPlanck * hz * (hz / cLight) * (hz / cLight) / (math.Exp(x) - 1)
	d := bNu * cLight / hz / CMBTemperature
	conv := d * d / 2 * math.Exp(x) / kBoltzmann
	return k * conv * 1e20 // 1e-26 for Jy, 1e6 for MJy
}

// KRJToMJysr converts a Rayleigh-Jeans brightness temperature in kelvin to
// MJy/sr at frequency hz.
func KRJToMJysr(k, hz float64) float64 {
	conv := 2 * (hz / cLight) * (hz / cLight) * kBoltzmann
	return k * conv * 1e20
}
