// Command dftbench reports detected CPU features and times packed real DFT
// transforms over a list of sizes.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	algodft "github.com/cwbudde/algo-dft"
	"github.com/cwbudde/algo-dft/internal/cpu"
	imath "github.com/cwbudde/algo-dft/internal/math"
)

func main() {
	log.SetFlags(0)

	sizeList := "1024,4096,16384,65536"
	iters := 50
	warmup := 5
	seed := 1

	parser := flaggy.NewParser("dftbench")
	parser.Description = "Benchmark packed real DFT transforms"

	parser.String(&sizeList, "s", "sizes", "comma-separated transform sizes")
	parser.Int(&iters, "n", "iters", "benchmark iterations")
	parser.Int(&warmup, "w", "warmup", "warmup iterations")
	parser.Int(&seed, "r", "seed", "rng seed")

	if err := parser.Parse(); err != nil {
		log.Fatalln(err)
	}

	if err := run(sizeList, iters, warmup, int64(seed)); err != nil {
		log.Fatalln(err)
	}
}

func run(sizeList string, iters, warmup int, seed int64) error {
	sizes, err := parseSizes(sizeList)
	if err != nil {
		return err
	}

	features := cpu.DetectFeatures()
	fmt.Printf("arch=%s simd=%s\n", features.Architecture, features)
	fmt.Printf("iters=%d warmup=%d\n", iters, warmup)
	fmt.Printf("%8s  %6s  %10s  %12s\n", "size", "stages", "mode", "ns/op")

	rnd := rand.New(rand.NewSource(seed))

	for _, n := range sizes {
		forward, err := algodft.NewPlan(algodft.Forward, n)
		if err != nil {
			return errors.Wrapf(err, "size %d", n)
		}

		inverse, err := algodft.NewPlan(algodft.Inverse, n)
		if err != nil {
			return errors.Wrapf(err, "size %d", n)
		}

		data := make([]float64, n)
		for i := range data {
			data[i] = 2*rnd.Float64() - 1
		}

		stages := imath.Log2(n)
		fmt.Printf("%8d  %6d  %10s  %12.1f\n", n, stages, algodft.Forward, benchmark(data, forward, iters, warmup))
		fmt.Printf("%8d  %6d  %10s  %12.1f\n", n, stages, algodft.Inverse, benchmark(data, inverse, iters, warmup))
	}

	return nil
}

func benchmark(data []float64, plan *algodft.Plan, iters, warmup int) float64 {
	for i := 0; i < warmup; i++ {
		algodft.Transform(data, plan)
	}

	start := time.Now()
	for i := 0; i < iters; i++ {
		algodft.Transform(data, plan)
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func parseSizes(list string) ([]int, error) {
	var sizes []int

	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.Wrapf(err, "bad size %q", field)
		}

		sizes = append(sizes, n)
	}

	if len(sizes) == 0 {
		return nil, errors.New("no sizes specified")
	}

	return sizes, nil
}
