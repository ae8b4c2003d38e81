package algodft

import (
	"fmt"

	"github.com/cwbudde/algo-dft/internal/fft"
)

// TransformComplex performs an in-place complex discrete Fourier transform of
// data according to plan: Forward computes the unscaled DFT, Backward the
// unscaled inverse DFT, and Inverse the inverse DFT scaled by 1/len(data).
//
// The length of data must equal plan.Size; a mismatch panics.
func TransformComplex(data []complex128, plan *Plan) {
	if len(data) != plan.size {
		panic(fmt.Sprintf("algodft: buffer length %d does not match plan size %d", len(data), plan.size))
	}
	plan.validate()

	transformComplex(data, plan)
}

// transformComplex runs the in-place engine without length checks. The factor
// table is consumed as a prefix, so data may be shorter than the plan size as
// long as its length is a power of two; the real pipeline runs it over the
// half buffer.
func transformComplex(data []complex128, plan *Plan) {
	fft.Rearrange(data)
	fft.Butterflies(data, plan.factors)

	if plan.operation == Inverse {
		fft.ScaleInPlace(data, 1/float64(len(data)))
	}
}
