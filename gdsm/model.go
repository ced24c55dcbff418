package gdsm

import (
	"errors"
	"fmt"
	"iter"

	"github.com/telegraphic/gdsm/compdata"
	"github.com/telegraphic/gdsm/healpix"
	"github.com/telegraphic/gdsm/interp"
)

// Errors returned when building or querying models.
var (
	ErrHaslamConstructor    = errors.New("gdsm: the Haslam variant is built with NewHaslam")
	ErrNilComponents        = errors.New("gdsm: nil component data")
	ErrNoFrequency          = errors.New("gdsm: no frequency set; call SetFrequency first")
	ErrUnsupportedUnit      = errors.New("gdsm: unit not supported by this model variant")
	ErrNonPositiveFrequency = errors.New("gdsm: frequency must be positive")
	ErrTemplateModel        = errors.New("gdsm: template models have no mixing weights")
)

// Map is a reconstructed all-sky map at a single frequency, owned by the
// caller.
type Map struct {
	// FreqMHz is the frequency the map represents.
	FreqMHz float64
	// Nside is the map resolution; len(Data) == 12*Nside^2.
	Nside int
	// Ordering is the pixel ordering (always RING for generated maps).
	Ordering healpix.Ordering
	// Unit is the radiometric unit of the pixel values.
	Unit Unit
	// Data holds one brightness value per pixel.
	Data []float64
	// NegativePixels counts pixels driven negative by interpolation
	// overshoot. Values are surfaced as-is, not clamped.
	NegativePixels int
}

// Model reconstructs sky maps for one variant. The component data and the
// fitted frequency curves are immutable after New, so a single Model is safe
// for concurrent queries.
type Model struct {
	variant Variant
	pol     policy
	cfg     config
	unit    Unit

	comps  *compdata.Components // PCA variants
	base   *compdata.BaseMap    // Haslam
	curves *interp.Curves

	freqMHz float64 // set via SetFrequency; 0 = unset
}

// New builds a PCA model (GSM2008, GSM2016 or LFSM) from loaded component
// data. The frequency interpolation curves are fitted once here.
func New(v Variant, c *compdata.Components, opts ...Option) (*Model, error) {
	if v == Haslam {
		return nil, ErrHaslamConstructor
	}
	if c == nil {
		return nil, ErrNilComponents
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	m := &Model{variant: v, pol: v.policy(), cfg: applyOptions(opts), comps: c}
	if err := m.finishSetup(); err != nil {
		return nil, err
	}

	iopts := []interp.Option{
		interp.WithMethod(m.cfg.method),
		interp.WithAxis(m.pol.axis),
	}
	if c.Table.Scale != nil {
		iopts = append(iopts, interp.WithScaleColumn(c.Table.Scale, m.pol.logScale))
		if m.pol.linearScale {
			iopts = append(iopts, interp.WithScaleMethod(interp.Linear))
		}
	}

	curves, err := interp.New(c.Table.FreqsMHz, c.Table.Columns(), iopts...)
	if err != nil {
		return nil, err
	}
	m.curves = curves
	return m, nil
}

// NewHaslam builds the power-law template model from a loaded base map.
func NewHaslam(b *compdata.BaseMap, opts ...Option) (*Model, error) {
	if b == nil {
		return nil, ErrNilComponents
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	m := &Model{variant: Haslam, pol: Haslam.policy(), cfg: applyOptions(opts), base: b}
	if err := m.finishSetup(); err != nil {
		return nil, err
	}
	return m, nil
}

// Open loads the component container at path with the variant's default
// schema and builds the model. The Haslam variant loads its template map.
func Open(v Variant, path string, opts ...Option) (*Model, error) {
	if v == Haslam {
		b, err := compdata.LoadBaseMap(path, v.MapSchema())
		if err != nil {
			return nil, err
		}
		return NewHaslam(b, opts...)
	}
	c, err := compdata.Load(path, v.Schema())
	if err != nil {
		return nil, err
	}
	return New(v, c, opts...)
}

func (m *Model) finishSetup() error {
	if m.cfg.nside != 0 && !healpix.IsValidNside(m.cfg.nside) {
		return fmt.Errorf("gdsm: target nside %d: %w", m.cfg.nside, healpix.ErrInvalidNside)
	}

	m.unit = m.pol.defaultUnit
	if m.cfg.unitSet {
		if m.variant != GSM2016 && m.cfg.unit != UnitKelvin {
			return fmt.Errorf("gdsm: %v output is antenna temperature: %w", m.variant, ErrUnsupportedUnit)
		}
		if m.variant == GSM2016 && m.cfg.unit == UnitKelvin {
			return fmt.Errorf("gdsm: GSM2016 units are TCMB, TRJ or MJysr: %w", ErrUnsupportedUnit)
		}
		m.unit = m.cfg.unit
	}
	return nil
}

// Variant returns the model variant.
func (m *Model) Variant() Variant {
	return m.variant
}

// Unit returns the output unit of generated maps.
func (m *Model) Unit() Unit {
	return m.unit
}

// K returns the number of basis components (1 for Haslam).
func (m *Model) K() int {
	if m.base != nil {
		return 1
	}
	return m.comps.Basis.K()
}

// NativeNside returns the component data's resolution.
func (m *Model) NativeNside() int {
	if m.base != nil {
		return m.base.Nside
	}
	return m.comps.Basis.Nside
}

// Nside returns the resolution of generated maps, after any configured
// resampling.
func (m *Model) Nside() int {
	if m.cfg.nside != 0 {
		return m.cfg.nside
	}
	return m.NativeNside()
}

// Band returns the queryable frequency band in MHz. For PCA variants this is
// the intersection of the variant's stated band with the loaded table; for
// Haslam both values are 0 and any positive frequency is accepted.
func (m *Model) Band() (minMHz, maxMHz float64) {
	if m.curves == nil {
		return m.pol.minMHz, m.pol.maxMHz
	}
	lo, hi := m.curves.Band()
	if m.pol.minMHz > lo {
		lo = m.pol.minMHz
	}
	if m.pol.maxMHz < hi {
		hi = m.pol.maxMHz
	}
	return lo, hi
}

// SetFrequency selects the frequency (MHz) for a subsequent GenerateMap
// call, validating it against the calibrated band.
func (m *Model) SetFrequency(freqMHz float64) error {
	if err := m.checkBand(freqMHz); err != nil {
		return err
	}
	m.freqMHz = freqMHz
	return nil
}

// Frequency returns the frequency set by SetFrequency, or 0 when unset.
func (m *Model) Frequency() float64 {
	return m.freqMHz
}

// GenerateMap reconstructs the sky at the frequency selected with
// SetFrequency.
func (m *Model) GenerateMap() (*Map, error) {
	if m.freqMHz == 0 {
		return nil, ErrNoFrequency
	}
	return m.reconstruct(m.freqMHz)
}

// Generate reconstructs one map per frequency (MHz), in input order. Each
// frequency is processed independently; the first error aborts.
func (m *Model) Generate(freqsMHz ...float64) ([]*Map, error) {
	maps := make([]*Map, 0, len(freqsMHz))
	for _, f := range freqsMHz {
		mp, err := m.reconstruct(f)
		if err != nil {
			return nil, err
		}
		maps = append(maps, mp)
	}
	return maps, nil
}

// Maps returns a lazy, restartable sequence over the reconstructions at the
// given frequencies, in order. Iteration may be abandoned at any point and
// restarted from the beginning.
func (m *Model) Maps(freqsMHz []float64) iter.Seq2[*Map, error] {
	return func(yield func(*Map, error) bool) {
		for _, f := range freqsMHz {
			if !yield(m.reconstruct(f)) {
				return
			}
		}
	}
}

// WeightsAt returns the interpolated K mixing weights and overall scale at
// freqMHz without reconstructing a map. Template models (Haslam) have no
// weights and return ErrTemplateModel.
func (m *Model) WeightsAt(freqMHz float64) (weights []float64, scale float64, err error) {
	if m.curves == nil {
		return nil, 0, ErrTemplateModel
	}
	if err := m.checkBand(freqMHz); err != nil {
		return nil, 0, err
	}
	return m.curves.At(freqMHz)
}

func (m *Model) checkBand(freqMHz float64) error {
	if freqMHz <= 0 {
		return ErrNonPositiveFrequency
	}
	lo, hi := m.Band()
	if lo != 0 && (freqMHz < lo || freqMHz > hi) {
		return &interp.RangeError{FreqMHz: freqMHz, MinMHz: lo, MaxMHz: hi}
	}
	return nil
}
