package math

import "testing"

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	cases := map[int]bool{
		-8: false, -1: false, 0: false,
		1: true, 2: true, 3: false, 4: true,
		6: false, 1024: true, 1025: false,
	}

	for n, want := range cases {
		if got := IsPowerOf2(n); got != want {
			t.Errorf("IsPowerOf2(%d): got %v want %v", n, got, want)
		}
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	cases := map[int]int{1: 0, 2: 1, 4: 2, 8: 3, 1024: 10}

	for n, want := range cases {
		if got := Log2(n); got != want {
			t.Errorf("Log2(%d): got %d want %d", n, got, want)
		}
	}
}
