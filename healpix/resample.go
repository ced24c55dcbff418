package healpix

// UDGrade resamples a map to targetNside, preserving the stated ordering.
//
// Downgrading averages each group of nested child pixels, which preserves
// the map mean (and hence the integrated sky power) exactly. Upgrading
// replicates each parent value into its children. RING maps are reordered to
// NESTED internally and back.
//
// Returns ErrInvalidNside if targetNside is not a power of two, or
// ErrInvalidNpix if the map length is not a valid pixel count.
func UDGrade(m []float64, ordering Ordering, targetNside int) ([]float64, error) {
	if !IsValidNside(targetNside) {
		return nil, ErrInvalidNside
	}
	nside, err := NpixToNside(len(m))
	if err != nil {
		return nil, err
	}

	if nside == targetNside {
		out := make([]float64, len(m))
		copy(out, m)
		return out, nil
	}

	nested := m
	if ordering == Ring {
		if nested, err = Reorder(m, Ring, Nested); err != nil {
			return nil, err
		}
	}

	var out []float64
	if targetNside < nside {
		out = degradeNested(nested, nside, targetNside)
	} else {
		out = upgradeNested(nested, nside, targetNside)
	}

	if ordering == Ring {
		return Reorder(out, Nested, Ring)
	}
	return out, nil
}

// degradeNested averages ratio^2 consecutive nested children per output pixel.
func degradeNested(m []float64, nside, targetNside int) []float64 {
	ratio := nside / targetNside
	group := ratio * ratio
	out := make([]float64, 12*targetNside*targetNside)
	inv := 1 / float64(group)
	for p := range out {
		sum := 0.0
		for _, v := range m[p*group : (p+1)*group] {
			sum += v
		}
		out[p] = sum * inv
	}
	return out
}

// upgradeNested replicates each nested parent into ratio^2 children.
func upgradeNested(m []float64, nside, targetNside int) []float64 {
	ratio := targetNside / nside
	group := ratio * ratio
	out := make([]float64, 12*targetNside*targetNside)
	for p := range out {
		out[p] = m[p/group]
	}
	return out
}
