// Package fft implements the in-place complex transform engine behind the
// packed real DFT in the root package.
package fft

// Rearrange applies the bit-reversal permutation to data in place.
// len(data) must be a power of two.
func Rearrange(data []complex128) {
	n := len(data)

	target := 0
	for position := 0; position < n; position++ {
		if target > position {
			data[position], data[target] = data[target], data[position]
		}

		mask := n >> 1
		for target&mask != 0 {
			target &^= mask
			mask >>= 1
		}
		target |= mask
	}
}

// Butterflies runs the radix-2 stage loop over bit-reversed data using a
// stage-ordered factor table: stage step consumes step consecutive entries.
// Only the prefix for len(data) stages is read, so a table built for a larger
// power of two is valid here.
func Butterflies(data, factors []complex128) {
	n := len(data)

	k := 0
	for step := 1; step < n; step <<= 1 {
		jump := step << 1
		for i := 0; i < step; i++ {
			factor := factors[k]
			k++

			for pair := i; pair < n; pair += jump {
				match := pair + step
				product := factor * data[match]
				data[match] = data[pair] - product
				data[pair] += product
			}
		}
	}
}

// ScaleInPlace multiplies each element of data by scale.
func ScaleInPlace(data []complex128, scale float64) {
	if scale == 1 {
		return
	}

	factor := complex(scale, 0)
	for i := range data {
		data[i] *= factor
	}
}
