package fft

import (
	"fmt"
	"unsafe"
)

// AsComplex128 reinterprets an even-length float64 slice as complex128 pairs
// over the same backing array, real part first, imaginary part second. No
// data is copied: writes through either view are visible in the other, so the
// caller must hold exclusive access to the buffer while the view is in use.
//
// An odd-length slice panics.
func AsComplex128(data []float64) []complex128 {
	if len(data)%2 != 0 {
		panic(fmt.Sprintf("fft: cannot view %d float64 values as complex128 pairs", len(data)))
	}
	if len(data) == 0 {
		return nil
	}

	return unsafe.Slice((*complex128)(unsafe.Pointer(&data[0])), len(data)/2)
}
