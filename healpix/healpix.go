package healpix

import (
	"errors"
	"math"
)

var (
	// ErrInvalidNside indicates an nside that is not a positive power of two.
	ErrInvalidNside = errors.New("healpix: nside must be a positive power of two")
	// ErrInvalidNpix indicates a pixel count that is not 12*nside^2 for a valid nside.
	ErrInvalidNpix = errors.New("healpix: pixel count is not 12*nside^2 for a valid nside")
	// ErrPixelRange indicates a pixel index outside [0, npix).
	ErrPixelRange = errors.New("healpix: pixel index out of range")
)

// Ordering identifies the pixel indexing scheme of a map.
type Ordering int

const (
	// Ring orders pixels along iso-latitude rings from north to south.
	Ring Ordering = iota
	// Nested orders pixels hierarchically within the 12 base faces.
	Nested
)

// String returns the conventional name of the ordering.
func (o Ordering) String() string {
	if o == Nested {
		return "NESTED"
	}
	return "RING"
}

// IsValidNside reports whether nside is a positive power of two.
func IsValidNside(nside int) bool {
	return nside > 0 && nside&(nside-1) == 0
}

// NsideToNpix returns the pixel count 12*nside^2 for a valid nside.
func NsideToNpix(nside int) (int, error) {
	if !IsValidNside(nside) {
		return 0, ErrInvalidNside
	}
	return 12 * nside * nside, nil
}

// NpixToNside derives the resolution parameter from a map length.
func NpixToNside(npix int) (int, error) {
	if npix <= 0 || npix%12 != 0 {
		return 0, ErrInvalidNpix
	}
	nside := isqrt(npix / 12)
	if 12*nside*nside != npix || !IsValidNside(nside) {
		return 0, ErrInvalidNpix
	}
	return nside, nil
}

// Base face layout constants of the HEALPix tessellation: jrll is the ring
// offset and jpll the longitude offset of each of the 12 faces.
var (
	jrll = [12]int{2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4}
	jpll = [12]int{1, 3, 5, 7, 0, 2, 4, 6, 1, 3, 5, 7}
)

// NestToRing converts a NESTED pixel index to the RING index at the same nside.
// nside must be a valid power of two and pix in [0, 12*nside^2).
func NestToRing(nside, pix int) (int, error) {
	if !IsValidNside(nside) {
		return 0, ErrInvalidNside
	}
	npface := nside * nside
	if pix < 0 || pix >= 12*npface {
		return 0, ErrPixelRange
	}

	face := pix / npface
	p := uint64(pix & (npface - 1))
	ix := int(compressBits(p))
	iy := int(compressBits(p >> 1))

	// jr counts rings from the north pole, 1..4*nside-1.
	jr := jrll[face]*nside - ix - iy - 1

	var nr, n0, kshift int
	switch {
	case jr < nside: // north polar cap
		nr = jr
		n0 = 2 * nr * (nr - 1)
	case jr > 3*nside: // south polar cap
		nr = 4*nside - jr
		n0 = 12*nside*nside - 2*nr*(nr+1)
	default: // equatorial belt
		nr = nside
		n0 = 2*nside*(nside-1) + (jr-nside)*4*nside
		kshift = (jr - nside) & 1
	}

	jp := (jpll[face]*nr + ix - iy + 1 + kshift) / 2
	if jp > 4*nr {
		jp -= 4 * nr
	}
	if jp < 1 {
		jp += 4 * nr
	}
	return n0 + jp - 1, nil
}

// RingToNest converts a RING pixel index to the NESTED index at the same nside.
// nside must be a valid power of two and pix in [0, 12*nside^2).
func RingToNest(nside, pix int) (int, error) {
	if !IsValidNside(nside) {
		return 0, ErrInvalidNside
	}
	npix := 12 * nside * nside
	if pix < 0 || pix >= npix {
		return 0, ErrPixelRange
	}

	ncap := 2 * nside * (nside - 1)
	nl2 := 2 * nside

	var iring, iphi, kshift, nr, face int
	switch {
	case pix < ncap: // north polar cap
		iring = (1 + isqrt(1+2*pix)) >> 1
		iphi = pix + 1 - 2*iring*(iring-1)
		nr = iring
		face = (iphi - 1) / iring
	case pix < npix-ncap: // equatorial belt
		ip := pix - ncap
		tmp := ip / (4 * nside)
		iring = tmp + nside
		iphi = ip - tmp*4*nside + 1
		kshift = (iring + nside) & 1
		nr = nside

		ire := iring - nside + 1
		irm := nl2 + 2 - ire
		ifm := (iphi - ire/2 + nside - 1) / nside
		ifp := (iphi - irm/2 + nside - 1) / nside
		switch {
		case ifp == ifm:
			face = ifp&3 + 4
		case ifp < ifm:
			face = ifp
		default:
			face = ifm + 8
		}
	default: // south polar cap
		ip := npix - pix
		iring = (1 + isqrt(2*ip-1)) >> 1
		iphi = 4*iring + 1 - (ip - 2*iring*(iring-1))
		nr = iring
		face = 8 + (iphi-1)/iring
		iring = 2*nl2 - iring
	}

	irt := iring - jrll[face]*nside + 1
	ipt := 2*iphi - jpll[face]*nr - kshift - 1
	if ipt >= nl2 {
		ipt -= 8 * nside
	}
	ix := (ipt - irt) >> 1
	iy := (-(ipt + irt)) >> 1

	return face*nside*nside + int(spreadBits(uint64(ix))|spreadBits(uint64(iy))<<1), nil
}

// Reorder returns a copy of m converted between orderings. The resolution is
// derived from the map length. Converting to the same ordering copies.
func Reorder(m []float64, from, to Ordering) ([]float64, error) {
	nside, err := NpixToNside(len(m))
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(m))
	if from == to {
		copy(out, m)
		return out, nil
	}

	// Walk nested indices in both directions so only one conversion is needed.
	for nest := range m {
		ring, err := NestToRing(nside, nest)
		if err != nil {
			return nil, err
		}
		if from == Nested {
			out[ring] = m[nest]
		} else {
			out[nest] = m[ring]
		}
	}
	return out, nil
}

func isqrt(v int) int {
	r := int(math.Sqrt(float64(v)))
	for r > 0 && r*r > v {
		r--
	}
	for (r+1)*(r+1) <= v {
		r++
	}
	return r
}

// spreadBits interleaves the low 32 bits of x with zeros.
func spreadBits(x uint64) uint64 {
	x &= 0x00000000ffffffff
	x = (x | x<<16) & 0x0000ffff0000ffff
	x = (x | x<<8) & 0x00ff00ff00ff00ff
	x = (x | x<<4) & 0x0f0f0f0f0f0f0f0f
	x = (x | x<<2) & 0x3333333333333333
	x = (x | x<<1) & 0x5555555555555555
	return x
}

// compressBits keeps the even bits of x, packing them into the low half.
func compressBits(x uint64) uint64 {
	x &= 0x5555555555555555
	x = (x | x>>1) & 0x3333333333333333
	x = (x | x>>2) & 0x0f0f0f0f0f0f0f0f
	x = (x | x>>4) & 0x00ff00ff00ff00ff
	x = (x | x>>8) & 0x0000ffff0000ffff
	x = (x | x>>16) & 0x00000000ffffffff
	return x
}
