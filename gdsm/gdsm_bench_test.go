package gdsm

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/telegraphic/gdsm/compdata"
	"github.com/telegraphic/gdsm/healpix"
)

func benchModel(b *testing.B, nside, k int) *Model {
	b.Helper()
	npix := 12 * nside * nside
	maps := mat.NewDense(k, npix, nil)
	for i := 0; i < k; i++ {
		for p := 0; p < npix; p++ {
			maps.Set(i, p, math.Sin(float64(i*npix+p)*0.13))
		}
	}

	freqs := []float64{10, 100, 1000, 10000, 94000}
	coeffs := mat.NewDense(len(freqs), k, nil)
	scale := make([]float64, len(freqs))
	for i := range freqs {
		scale[i] = math.Exp(-float64(i))
		for j := 0; j < k; j++ {
			coeffs.Set(i, j, 1/float64(i+j+1))
		}
	}

	comps := &compdata.Components{
		Basis: compdata.BasisSet{Maps: maps, Nside: nside, Ordering: healpix.Ring},
		Table: compdata.FrequencyTable{FreqsMHz: freqs, Coeffs: coeffs, Scale: scale},
	}
	m, err := New(GSM2008, comps)
	if err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkGenerateNside64(b *testing.B) {
	m := benchModel(b, 64, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Generate(408); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerateNside256(b *testing.B) {
	m := benchModel(b, 256, 6)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Generate(1420); err != nil {
			b.Fatal(err)
		}
	}
}
