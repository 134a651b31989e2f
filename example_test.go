package matrixprofile

import "fmt"

func Example() {
	sig := []float64{584, -11, 23, 79, 1001, 0, -19}

	p, err := Stump(sig, NewOptions(3))
	if err != nil {
		panic(err)
	}

	dist := make([]float64, len(p.Dist))
	idx := make([]int, len(p.Index))
	for i := range p.Dist {
		dist[i] = p.Dist[i][0]
		idx[i] = p.Index[i][0]
	}

	fmt.Printf("Matrix Profile: %.3f\n", dist)
	fmt.Printf("Profile Index:  %v\n", idx)

	// Output:
	// Matrix Profile: [0.116 2.694 3.000 2.694 0.116]
	// Profile Index:  [4 3 0 1 0]
}

func Example_mPdist() {
	a := []float64{-11.1, 23.4, 79.5, 1001.0}
	b := []float64{584, -11, 23, 79, 1001, 0, -19}

	d, err := MPdist(a, b, MPdistOptions{M: 3})
	if err != nil {
		panic(err)
	}

	fmt.Printf("MPdist: %.6f\n", d)

	// Output:
	// MPdist: 0.000199
}
