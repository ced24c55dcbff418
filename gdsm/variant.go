package gdsm

import (
	"github.com/telegraphic/gdsm/compdata"
	"github.com/telegraphic/gdsm/healpix"
	"github.com/telegraphic/gdsm/interp"
)

// Variant selects which calibrated component set and reconstruction formula
// to use.
type Variant int

const (
	// GSM2008 is the de Oliveira-Costa et al. (2008) global sky model:
	// three principal components over 10 MHz - 94 GHz.
	GSM2008 Variant = iota
	// GSM2016 is the Zheng et al. (2017) extended model: six physical
	// components over 10 MHz - 5 THz, stored in NESTED ordering.
	GSM2016
	// LFSM is the LWA1 low-frequency sky model, 10 - 408 MHz.
	LFSM
	// Haslam is the destriped, desourced Haslam 408 MHz template scaled by
	// a spectral-index power law.
	Haslam
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case GSM2016:
		return "GSM2016"
	case LFSM:
		return "LFSM"
	case Haslam:
		return "Haslam"
	default:
		return "GSM2008"
	}
}

// Unit identifies the radiometric unit of reconstructed pixel values.
type Unit int

const (
	// UnitKelvin is Rayleigh-Jeans antenna temperature in kelvin, the
	// native unit of GSM2008, LFSM and Haslam.
	UnitKelvin Unit = iota
	// UnitTCMB is thermodynamic CMB temperature in kelvin (GSM2016).
	UnitTCMB
	// UnitTRJ is Rayleigh-Jeans brightness temperature in kelvin (GSM2016).
	UnitTRJ
	// UnitMJysr is megajansky per steradian (GSM2016 native).
	UnitMJysr
)

// String returns the conventional unit label.
func (u Unit) String() string {
	switch u {
	case UnitTCMB:
		return "TCMB"
	case UnitTRJ:
		return "TRJ"
	case UnitMJysr:
		return "MJysr"
	default:
		return "K"
	}
}

// Basemap selects which GSM2008 basis-map set to load. The PCA fit was
// locked to different survey maps at different resolutions.
type Basemap int

const (
	// BasemapHaslam408 locks to the Haslam 408 MHz map (1 degree
	// resolution, preferred below 1 GHz).
	BasemapHaslam408 Basemap = iota
	// Basemap5Deg is the synthesized 5.1 degree map built from all
	// surveys in the fit.
	Basemap5Deg
	// BasemapWMAP23K locks to the denoised WMAP 23 GHz map (2 degree
	// resolution, preferred at CMB frequencies).
	BasemapWMAP23K
)

// policy captures the per-variant reconstruction behavior. Variants are
// data-driven policies resolved at model construction, not subtypes.
type policy struct {
	minMHz, maxMHz float64 // 0,0 = only f > 0 is enforced
	axis           interp.Axis
	logScale       bool // interpolate the scale column in log domain
	linearScale    bool // force linear interpolation of the scale column
	refMHz         float64
	defaultUnit    Unit
}

func (v Variant) policy() policy {
	switch v {
	case GSM2016:
		return policy{minMHz: 10, maxMHz: 5e6, axis: interp.LogAxis, logScale: true, defaultUnit: UnitTCMB}
	case LFSM:
		return policy{minMHz: 10, maxMHz: 408, axis: interp.LogAxis, logScale: true, linearScale: true, defaultUnit: UnitKelvin}
	case Haslam:
		return policy{refMHz: 408, defaultUnit: UnitKelvin}
	default:
		return policy{minMHz: 10, maxMHz: 94000, axis: interp.LogAxis, logScale: true, defaultUnit: UnitKelvin}
	}
}

// Band returns the calibrated frequency band in MHz. Haslam returns (0, 0):
// the power law is defined for any positive frequency.
func (v Variant) Band() (minMHz, maxMHz float64) {
	p := v.policy()
	return p.minMHz, p.maxMHz
}

// Schema returns the component-container schema for v. For GSM2008 it
// selects the Haslam-locked basis maps; use SchemaGSM2008 for the others.
// The Haslam variant has no component schema; see MapSchema.
func (v Variant) Schema() compdata.Schema {
	switch v {
	case GSM2016:
		return compdata.Schema{
			MapsKey:   "component_maps",
			TableKey:  "spectra",
			HasScale:  true,
			FreqToMHz: 1000, // table tabulated in GHz
			Ordering:  healpix.Nested,
		}
	case LFSM:
		return compdata.Schema{
			MapsKey:  "component_maps",
			TableKey: "components",
			HasScale: true,
			Ordering: healpix.Ring,
		}
	default:
		return SchemaGSM2008(BasemapHaslam408)
	}
}

// SchemaGSM2008 returns the container schema selecting one of the three
// GSM2008 basemap-locked component sets.
func SchemaGSM2008(b Basemap) compdata.Schema {
	key := "component_maps_408locked"
	switch b {
	case Basemap5Deg:
		key = "component_maps_5deg"
	case BasemapWMAP23K:
		key = "component_maps_23klocked"
	}
	return compdata.Schema{
		MapsKey:  key,
		TableKey: "components",
		HasScale: true,
		Ordering: healpix.Ring,
	}
}

// MapSchema returns the single-template container schema for the Haslam
// variant.
func (v Variant) MapSchema() compdata.MapSchema {
	return compdata.MapSchema{
		MapKey:   "map",
		IndexKey: "spectral_index",
		Ordering: healpix.Ring,
	}
}
