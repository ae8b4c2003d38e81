package algodft

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-dft/internal/fft"
)

// Transform performs an in-place discrete Fourier transform of real data
// according to plan.
//
// For Forward, data is replaced by its packed spectrum (see PackedSpectrum
// for the layout). For Backward and Inverse, data must hold a packed spectrum
// and is replaced by the corresponding real sequence; only Inverse applies
// the 2/n scale that makes Forward followed by Inverse the identity.
//
// The length of data must equal plan.Size. A mismatch panics: it indicates a
// programming error, not a runtime condition.
func Transform(data []float64, plan *Plan) {
	if len(data) != plan.size {
		panic(fmt.Sprintf("algodft: buffer length %d does not match plan size %d", len(data), plan.size))
	}
	plan.validate()

	half := fft.AsComplex128(data)
	switch plan.operation {
	case Forward:
		transformComplex(half, plan)
		compose(half, plan.factors, false)
	default:
		compose(half, plan.factors, true)
		transformComplex(half, plan)
	}
}

// compose converts in place between the half-size complex FFT of packed real
// data and the packed spectrum. The butterfly is its own inverse up to the
// sign flip and the placement of the 0.5 scale on the DC/Nyquist cell, which
// is applied only when inverse is true.
func compose(data []complex128, factors []complex128, inverse bool) {
	n := len(data)

	// Cell 0 carries DC in its real part and Nyquist in its imaginary part.
	d0 := data[0]
	data[0] = complex(real(d0)+imag(d0), real(d0)-imag(d0))
	if inverse {
		data[0] *= 0.5
	}
	if n == 1 {
		return
	}

	m := len(factors)
	sign := -1.0
	if inverse {
		sign = 1.0
	}

	for i := 1; i < n/2; i++ {
		j := n - i
		mirror := cmplx.Conj(data[j])
		part1 := data[i] + mirror
		part2 := data[i] - mirror
		product := complex(0, sign) * factors[m-j] * part2
		data[i] = 0.5 * (part1 + product)
		data[j] = cmplx.Conj(0.5 * (part1 - product))
	}

	data[n/2] = cmplx.Conj(data[n/2])
}
