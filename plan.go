package algodft

import (
	"fmt"
	"math"

	imath "github.com/cwbudde/algo-dft/internal/math"
)

// Operation selects the transform direction a Plan encodes.
type Operation int

const (
	// Forward computes the unscaled discrete Fourier transform.
	Forward Operation = iota

	// Backward computes the unscaled inverse transform. A Forward transform
	// followed by Backward yields the input scaled by the complex length.
	Backward

	// Inverse computes the inverse transform scaled by the reciprocal of the
	// complex length, so Forward followed by Inverse is the identity.
	Inverse
)

// String returns a human-readable name for the operation.
func (op Operation) String() string {
	switch op {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Inverse:
		return "inverse"
	default:
		return "unknown"
	}
}

// Plan holds the precomputed twiddle factors for transforms of one size and
// direction. A Plan is immutable after construction and may be read
// concurrently.
type Plan struct {
	size      int
	operation Operation
	factors   []complex128
}

// NewPlan precomputes the twiddle-factor table for transforms of the given
// size. The size must be a power of two and at least 2; otherwise
// ErrInvalidLength is returned.
//
// The table is stage ordered: stage step = 1, 2, ..., size/2 contributes step
// entries exp(sign*i*pi*k/step) for k = 0..step-1, where sign is -1 for
// Forward and +1 otherwise. Butterfly stages consume the table as a prefix,
// which lets one Plan drive both the full-size complex transform and the
// half-size transform inside the real pipeline; the real recombination reads
// the final stage block from the high end of the table.
func NewPlan(operation Operation, size int) (*Plan, error) {
	if size < 2 || !imath.IsPowerOf2(size) {
		return nil, ErrInvalidLength
	}

	sign := 1.0
	if operation == Forward {
		sign = -1.0
	}

	factors := make([]complex128, 0, size-1)
	for step := 1; step < size; step <<= 1 {
		theta := sign * math.Pi / float64(step)
		for k := 0; k < step; k++ {
			angle := theta * float64(k)
			factors = append(factors, complex(math.Cos(angle), math.Sin(angle)))
		}
	}

	return &Plan{size: size, operation: operation, factors: factors}, nil
}

// Size returns the transform size the plan was built for.
func (p *Plan) Size() int {
	return p.size
}

// Operation returns the transform direction the plan was built for.
func (p *Plan) Operation() Operation {
	return p.operation
}

// validate panics when the factor table does not match the declared size.
// A mismatch means the Plan was assembled by hand rather than by NewPlan.
func (p *Plan) validate() {
	if len(p.factors) != p.size-1 {
		panic(fmt.Sprintf("algodft: malformed plan: %d factors for size %d", len(p.factors), p.size))
	}
}
