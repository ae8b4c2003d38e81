package algodft

import (
	"fmt"
	"math/cmplx"

	imath "github.com/cwbudde/algo-dft/internal/math"
)

// PackedSpectrum is the compact spectrum of a real sequence, as produced in
// place by a Forward Transform and consumed by Backward and Inverse
// transforms and by Unpack.
//
// For a sequence of length n, element 0 holds the DC component and element 1
// the Nyquist component; both are purely real for real input and need no
// imaginary storage. Elements 2i and 2i+1 hold the real and imaginary parts
// of frequency bin i for 0 < i < n/2. The upper half of the spectrum is not
// stored: for real input it is the complex conjugate of the lower half.
type PackedSpectrum []float64

// Unpack expands a packed spectrum into the full complex spectrum of the same
// length, reconstructing the upper half by conjugate symmetry. The result is
// a fresh allocation; data is not modified.
//
// The length of data must be a power of two; anything else panics.
func Unpack(data PackedSpectrum) []complex128 {
	n := len(data)
	if !imath.IsPowerOf2(n) {
		panic(fmt.Sprintf("algodft: packed spectrum length %d is not a power of two", n))
	}

	spectrum := make([]complex128, n)
	spectrum[0] = complex(data[0], 0)
	for i := 1; i < n/2; i++ {
		spectrum[i] = complex(data[2*i], data[2*i+1])
	}
	if n > 1 {
		spectrum[n/2] = complex(data[1], 0)
	}
	for i := n/2 + 1; i < n; i++ {
		spectrum[i] = cmplx.Conj(spectrum[n-i])
	}

	return spectrum
}
