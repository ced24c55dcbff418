// Package gdsm reconstructs all-sky maps of diffuse Galactic radio emission
// at arbitrary frequencies from precomputed principal-component data.
//
// A [Model] is built once from a loaded component set and then queried at any
// frequency inside its calibrated band:
//
//	comps, err := compdata.Load("gsm_components.npz", gdsm.GSM2008.Schema())
//	if err != nil { ... }
//	model, err := gdsm.New(gdsm.GSM2008, comps)
//	if err != nil { ... }
//	sky, err := model.Generate(408) // 408 MHz
//
// Four model variants are supported, selected by [Variant]:
//
//   - [GSM2008]: 10 MHz – 94 GHz, three components, antenna temperature (K)
//   - [GSM2016]: 10 MHz – 5 THz, six components, TCMB / TRJ / MJy/sr
//   - [LFSM]:    10 – 408 MHz, antenna temperature (K)
//   - [Haslam]:  destriped 408 MHz template scaled by a power law
//
// Each variant is a data-driven policy (frequency band, interpolation axis,
// scale handling, native pixel ordering), not a separate type. Reconstruction
// is a linear combination of the basis maps with interpolated weights; a
// query outside the calibrated band fails rather than extrapolating, and
// negative pixels from interpolation overshoot are surfaced via
// [Map.NegativePixels], never clamped.
package gdsm
