package gdsm

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/telegraphic/gdsm/healpix"
)

// reconstruct produces one map at freqMHz: interpolated weights, linear
// combination of the basis maps, variant post-scaling, optional resampling.
func (m *Model) reconstruct(freqMHz float64) (*Map, error) {
	if err := m.checkBand(freqMHz); err != nil {
		return nil, err
	}

	var (
		data     []float64
		ordering healpix.Ordering
		err      error
	)
	if m.variant == Haslam {
		data = m.powerLaw(freqMHz)
		ordering = m.base.Ordering
	} else {
		if data, err = m.combine(freqMHz); err != nil {
			return nil, err
		}
		ordering = m.comps.Basis.Ordering
	}

	// Generated maps are always RING ordered; GSM2016 stores its basis
	// maps NESTED.
	if ordering == healpix.Nested {
		if data, err = healpix.Reorder(data, healpix.Nested, healpix.Ring); err != nil {
			return nil, err
		}
	}

	hz := freqMHz * 1e6
	switch m.variant {
	case GSM2008:
		if m.cfg.includeCMB {
			floats.AddConst(CMBTemperature, data)
		}
	case LFSM:
		// The LFSM basis was calibrated with the CMB in; remove it unless
		// the caller wants it.
		if !m.cfg.includeCMB {
			floats.AddConst(-CMBTemperature, data)
		}
	case GSM2016:
		// Combination happens in MJy/sr.
		if m.cfg.includeCMB {
			floats.AddConst(KCMBToMJysr(CMBTemperature, hz), data)
		}
		switch m.unit {
		case UnitTCMB:
			floats.Scale(1/KCMBToMJysr(1, hz), data)
		case UnitTRJ:
			floats.Scale(1/KRJToMJysr(1, hz), data)
		}
	}

	if m.cfg.nside != 0 && m.cfg.nside != m.NativeNside() {
		if data, err = healpix.UDGrade(data, healpix.Ring, m.cfg.nside); err != nil {
			return nil, err
		}
	}

	neg := 0
	for _, v := range data {
		if v < 0 {
			neg++
		}
	}

	return &Map{
		FreqMHz:        freqMHz,
		Nside:          m.Nside(),
		Ordering:       healpix.Ring,
		Unit:           m.unit,
		Data:           data,
		NegativePixels: neg,
	}, nil
}

// combine evaluates value[p] = scale * sum_k weight[k]*basis[k][p].
func (m *Model) combine(freqMHz float64) ([]float64, error) {
	weights, scale, err := m.curves.At(freqMHz)
	if err != nil {
		return nil, err
	}

	out := make([]float64, m.comps.Basis.Npix())
	for k, w := range weights {
		floats.AddScaled(out, w, m.comps.Basis.Component(k))
	}
	if scale != 1 {
		floats.Scale(scale, out)
	}
	return out, nil
}

// powerLaw scales the template by (f/f_ref)^beta, with beta either the
// configured scalar or the per-pixel spectral-index map.
func (m *Model) powerLaw(freqMHz float64) []float64 {
	out := make([]float64, len(m.base.Data))
	copy(out, m.base.Data)

	ratio := freqMHz / m.pol.refMHz
	if m.base.Index == nil {
		floats.Scale(math.Pow(ratio, m.cfg.beta), out)
		return out
	}

	factors := make([]float64, len(out))
	for p, beta := range m.base.Index {
		factors[p] = math.Pow(ratio, beta)
	}
	vecmath.MulBlockInPlace(out, factors)
	return out
}
