package algodft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func assertApproxFloat64(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, math.Abs(got-want))...)
	}
}

func assertApproxComplex128(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func mustPlan(t *testing.T, operation Operation, size int) *Plan {
	t.Helper()

	plan, err := NewPlan(operation, size)
	if err != nil {
		t.Fatalf("NewPlan(%v, %d): %v", operation, size, err)
	}

	return plan
}

func randomFloat64(n int, seed int64) []float64 {
	rnd := rand.New(rand.NewSource(seed))

	data := make([]float64, n)
	for i := range data {
		data[i] = 2*rnd.Float64() - 1
	}

	return data
}

func randomComplex128(n int, seed int64) []complex128 {
	rnd := rand.New(rand.NewSource(seed))

	data := make([]complex128, n)
	for i := range data {
		data[i] = complex(2*rnd.Float64()-1, 2*rnd.Float64()-1)
	}

	return data
}

// naiveDFT computes the DFT of complex input directly from the definition.
func naiveDFT(input []complex128) []complex128 {
	n := len(input)

	output := make([]complex128, n)
	for k := 0; k < n; k++ {
		var sum complex128
		for j := 0; j < n; j++ {
			angle := -2 * math.Pi * float64(k) * float64(j) / float64(n)
			sum += input[j] * complex(math.Cos(angle), math.Sin(angle))
		}
		output[k] = sum
	}

	return output
}

// naiveRealDFT computes the DFT of real input directly from the definition.
func naiveRealDFT(input []float64) []complex128 {
	data := make([]complex128, len(input))
	for i, value := range input {
		data[i] = complex(value, 0)
	}

	return naiveDFT(data)
}
