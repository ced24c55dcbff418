package compdata

import (
	"errors"
	"fmt"
	"io"

	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/mat"

	"github.com/telegraphic/gdsm/healpix"
)

// Errors returned while loading or validating component data.
var (
	ErrMissingArray      = errors.New("compdata: required array missing from container")
	ErrArrayShape        = errors.New("compdata: array has unexpected shape")
	ErrDimensionMismatch = errors.New("compdata: component dimensions disagree")
	ErrTooFewFrequencies = errors.New("compdata: at least two tabulated frequencies are required")
	ErrFrequencyOrder    = errors.New("compdata: tabulated frequencies must be strictly increasing")
)

// Schema names the arrays a model variant stores in its container and how to
// normalize them on load.
type Schema struct {
	// MapsKey is a 2D array of shape (K, npix): the K basis maps.
	MapsKey string
	// TableKey is a 2D array of shape (N, 1+S+K): the frequency column,
	// an optional scale column (S=1 when HasScale), then K coefficient
	// columns.
	TableKey string
	// HasScale marks the presence of the scale column.
	HasScale bool
	// FreqToMHz converts the table's frequency column to MHz (e.g. 1000
	// for tables in GHz). Zero means 1.
	FreqToMHz float64
	// Ordering is the pixel ordering the basis maps are stored in.
	Ordering healpix.Ordering
}

// MapSchema names the arrays of a single-template model container.
type MapSchema struct {
	// MapKey is a 1D array of length npix: the template map.
	MapKey string
	// IndexKey optionally names a per-pixel spectral index array of the
	// same length. Empty means absent.
	IndexKey string
	// Ordering is the pixel ordering of the map.
	Ordering healpix.Ordering
}

// BasisSet is the immutable set of K basis maps on a common pixel grid.
type BasisSet struct {
	// Maps holds the basis maps as rows, shape (K, npix).
	Maps *mat.Dense
	// Nside is the native resolution derived from npix.
	Nside int
	// Ordering is the pixel ordering of the maps.
	Ordering healpix.Ordering
}

// K returns the number of basis maps.
func (b *BasisSet) K() int {
	k, _ := b.Maps.Dims()
	return k
}

// Npix returns the per-map pixel count.
func (b *BasisSet) Npix() int {
	_, npix := b.Maps.Dims()
	return npix
}

// Component returns basis map k without copying. Callers must not modify it.
func (b *BasisSet) Component(k int) []float64 {
	return b.Maps.RawRowView(k)
}

// FrequencyTable associates each calibration frequency with a K-vector of
// mixing coefficients and, optionally, an overall scale value.
type FrequencyTable struct {
	// FreqsMHz are the N calibration frequencies, strictly increasing.
	FreqsMHz []float64
	// Coeffs is the coefficient matrix, shape (N, K).
	Coeffs *mat.Dense
	// Scale is the optional per-frequency scale column of length N.
	Scale []float64
}

// N returns the number of tabulated frequencies.
func (t *FrequencyTable) N() int {
	return len(t.FreqsMHz)
}

// K returns the number of coefficient columns.
func (t *FrequencyTable) K() int {
	_, k := t.Coeffs.Dims()
	return k
}

// Column returns a copy of coefficient column k.
func (t *FrequencyTable) Column(k int) []float64 {
	n, _ := t.Coeffs.Dims()
	col := make([]float64, n)
	mat.Col(col, k, t.Coeffs)
	return col
}

// Columns returns copies of all K coefficient columns.
func (t *FrequencyTable) Columns() [][]float64 {
	_, k := t.Coeffs.Dims()
	cols := make([][]float64, k)
	for i := range cols {
		cols[i] = t.Column(i)
	}
	return cols
}

// Components is a loaded, validated basis set plus frequency table.
// Treated as read-only for the process lifetime.
type Components struct {
	Basis BasisSet
	Table FrequencyTable
}

// Validate checks the dimensional invariants. It is called by Load and
// exported for components constructed in memory.
func (c *Components) Validate() error {
	if c.Basis.Maps == nil || c.Table.Coeffs == nil {
		return fmt.Errorf("compdata: nil matrices: %w", ErrArrayShape)
	}

	k, npix := c.Basis.Maps.Dims()
	nside, err := healpix.NpixToNside(npix)
	if err != nil {
		return fmt.Errorf("compdata: basis maps have %d pixels: %w", npix, err)
	}
	if c.Basis.Nside != nside {
		return fmt.Errorf("compdata: stated nside %d does not match %d pixels: %w",
			c.Basis.Nside, npix, ErrDimensionMismatch)
	}

	n, kc := c.Table.Coeffs.Dims()
	if kc != k {
		return fmt.Errorf("compdata: %d coefficient columns for %d basis maps: %w",
			kc, k, ErrDimensionMismatch)
	}
	if len(c.Table.FreqsMHz) != n {
		return fmt.Errorf("compdata: %d frequencies for %d coefficient rows: %w",
			len(c.Table.FreqsMHz), n, ErrDimensionMismatch)
	}
	if c.Table.Scale != nil && len(c.Table.Scale) != n {
		return fmt.Errorf("compdata: scale column length %d for %d rows: %w",
			len(c.Table.Scale), n, ErrDimensionMismatch)
	}
	if n < 2 {
		return ErrTooFewFrequencies
	}
	for i := 1; i < n; i++ {
		if c.Table.FreqsMHz[i] <= c.Table.FreqsMHz[i-1] {
			return ErrFrequencyOrder
		}
	}
	return nil
}

// Load reads and validates a component container from disk.
func Load(path string, s Schema) (*Components, error) {
	r, err := npz.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compdata: opening %s: %w", path, err)
	}
	defer r.Close()
	return read(r, s)
}

// Read reads and validates a component container from an injected source.
func Read(r io.ReaderAt, size int64, s Schema) (*Components, error) {
	zr, err := npz.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("compdata: reading container: %w", err)
	}
	return read(zr, s)
}

func read(r *npz.Reader, s Schema) (*Components, error) {
	var maps, table mat.Dense
	if err := readArray(r, s.MapsKey, &maps); err != nil {
		return nil, err
	}
	if err := readArray(r, s.TableKey, &table); err != nil {
		return nil, err
	}

	n, cols := table.Dims()
	keep := 1
	if s.HasScale {
		keep = 2
	}
	if cols <= keep {
		return nil, fmt.Errorf("compdata: table %q has %d columns: %w", s.TableKey, cols, ErrArrayShape)
	}
	k := cols - keep

	toMHz := s.FreqToMHz
	if toMHz == 0 {
		toMHz = 1
	}

	freqs := make([]float64, n)
	var scale []float64
	if s.HasScale {
		scale = make([]float64, n)
	}
	coeffs := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		freqs[i] = table.At(i, 0) * toMHz
		if s.HasScale {
			scale[i] = table.At(i, 1)
		}
		for j := 0; j < k; j++ {
			coeffs.Set(i, j, table.At(i, keep+j))
		}
	}

	_, npix := maps.Dims()
	nside, err := healpix.NpixToNside(npix)
	if err != nil {
		return nil, fmt.Errorf("compdata: basis maps have %d pixels: %w", npix, err)
	}

	c := &Components{
		Basis: BasisSet{Maps: &maps, Nside: nside, Ordering: s.Ordering},
		Table: FrequencyTable{FreqsMHz: freqs, Coeffs: coeffs, Scale: scale},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// BaseMap is a loaded single-template map, optionally with a per-pixel
// spectral index.
type BaseMap struct {
	// Data is the template map of length npix.
	Data []float64
	// Index is the optional per-pixel spectral index, same length as Data.
	Index []float64
	// Nside is the native resolution derived from npix.
	Nside int
	// Ordering is the pixel ordering of the map.
	Ordering healpix.Ordering
}

// Validate checks the dimensional invariants of the base map.
func (b *BaseMap) Validate() error {
	nside, err := healpix.NpixToNside(len(b.Data))
	if err != nil {
		return fmt.Errorf("compdata: base map has %d pixels: %w", len(b.Data), err)
	}
	if b.Nside != nside {
		return fmt.Errorf("compdata: stated nside %d does not match %d pixels: %w",
			b.Nside, len(b.Data), ErrDimensionMismatch)
	}
	if b.Index != nil && len(b.Index) != len(b.Data) {
		return fmt.Errorf("compdata: spectral index length %d for %d pixels: %w",
			len(b.Index), len(b.Data), ErrDimensionMismatch)
	}
	return nil
}

// LoadBaseMap reads and validates a single-template container from disk.
func LoadBaseMap(path string, s MapSchema) (*BaseMap, error) {
	r, err := npz.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compdata: opening %s: %w", path, err)
	}
	defer r.Close()

	var data []float64
	if err := readArray(r, s.MapKey, &data); err != nil {
		return nil, err
	}

	var index []float64
	if s.IndexKey != "" {
		if err := readArray(r, s.IndexKey, &index); err != nil {
			return nil, err
		}
	}

	nside, err := healpix.NpixToNside(len(data))
	if err != nil {
		return nil, fmt.Errorf("compdata: base map has %d pixels: %w", len(data), err)
	}

	b := &BaseMap{Data: data, Index: index, Nside: nside, Ordering: s.Ordering}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// readArray reads a named array, accepting both bare keys and the
// numpy-style "name.npy" keys savez writes.
func readArray(r *npz.Reader, key string, dst any) error {
	for _, k := range []string{key, key + ".npy"} {
		if hasKey(r, k) {
			if err := r.Read(k, dst); err != nil {
				return fmt.Errorf("compdata: reading %q: %w", key, err)
			}
			return nil
		}
	}
	return fmt.Errorf("compdata: %q: %w", key, ErrMissingArray)
}

func hasKey(r *npz.Reader, key string) bool {
	for _, k := range r.Keys() {
		if k == key {
			return true
		}
	}
	return false
}
