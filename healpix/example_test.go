package healpix_test

import (
	"fmt"

	"github.com/telegraphic/gdsm/healpix"
)

func ExampleUDGrade() {
	// A uniform sky at nside=4, degraded to nside=2.
	m := make([]float64, 192)
	for p := range m {
		m[p] = 1.0
	}

	out, err := healpix.UDGrade(m, healpix.Ring, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(len(out), out[0])
	// Output:
	// 48 1
}

func ExampleNpixToNside() {
	nside, err := healpix.NpixToNside(3145728)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(nside)
	// Output:
	// 512
}
