// Package healpix provides the equal-area sphere pixelization used to index
// all-sky maps: nside/npix validation, RING and NESTED pixel index
// conversion, whole-map reordering, and resolution up/down-grading.
//
// A map at resolution nside has 12*nside^2 pixels; nside must be a power of
// two. Two index orderings exist:
//
//   - [Ring]:   pixels numbered along iso-latitude rings, north to south
//   - [Nested]: pixels numbered hierarchically inside the 12 base faces
//
// RING ordering is convenient for spectral analysis, NESTED for hierarchical
// operations such as [UDGrade]. The conversions here follow the canonical
// face/bit-interleave decomposition of the HEALPix scheme.
package healpix
