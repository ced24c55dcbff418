package healpix

import "testing"

func BenchmarkNestToRing(b *testing.B) {
	const nside = 256
	npix := 12 * nside * nside
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NestToRing(nside, i%npix); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUDGradeDown(b *testing.B) {
	m := rampMap(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := UDGrade(m, Nested, 16); err != nil {
			b.Fatal(err)
		}
	}
}
