package algodft_test

import (
	"fmt"

	algodft "github.com/cwbudde/algo-dft"
)

func ExampleTransform() {
	data := []float64{1, 2, 3, 4}

	plan, err := algodft.NewPlan(algodft.Forward, len(data))
	if err != nil {
		panic(err)
	}

	algodft.Transform(data, plan)
	fmt.Println(data)
	// Output:
	// [10 -2 -2 2]
}

func ExampleUnpack() {
	spectrum := algodft.Unpack(algodft.PackedSpectrum{1, 2, 3, 4})
	fmt.Println(spectrum)
	// Output:
	// [(1+0i) (3+4i) (2+0i) (3-4i)]
}
