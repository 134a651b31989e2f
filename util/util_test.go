package util

import (
	"math"
	"testing"
)

func TestZNormalize(t *testing.T) {
	var out []float64
	var err error

	testdata := []struct {
		data     []float64
		expected []float64
	}{
		{[]float64{}, nil},
		{[]float64{1, 1, 1, 1}, nil},
		{[]float64{-1, 1, -1, 1}, []float64{-1, 1, -1, 1}},
		{[]float64{7, 5, 5, 7}, []float64{1, -1, -1, 1}},
	}

	for _, d := range testdata {
		out, err = ZNormalize(d.data)
		if err != nil && d.expected == nil {
			// Got an error and expected an error
			continue
		}
		if d.expected == nil {
			t.Errorf("Expected an invalid standard deviation of 0, %v", d)
		}
		if len(out) != len(d.expected) {
			t.Errorf("Expected %d elements, but got %d, %v", len(d.expected), len(out), d)
		}
		for i := 0; i < len(out); i++ {
			if math.Abs(out[i]-d.expected[i]) > 1e-7 {
				t.Errorf("Expected %v, but got %v for %v", d.expected, out, d)
				break
			}
		}
	}
}

func TestSum2s(t *testing.T) {
	testdata := []struct {
		data     []float64
		w        int
		expected []float64
	}{
		{[]float64{1, 1, 1, 1}, 4, []float64{1}},
		{[]float64{1, 1, 1, 1}, 2, []float64{1, 1, 1}},
		{[]float64{1, 2, 4, 8}, 2, []float64{1.5, 3, 6}},
	}

	for _, d := range testdata {
		out := Sum2s(d.data, d.w)
		if len(out) != len(d.expected) {
			t.Fatalf("expected %d elements, got %d for %v", len(d.expected), len(out), d)
		}
		for i := range out {
			if math.Abs(out[i]-d.expected[i]) > 1e-9 {
				t.Errorf("expected %v, got %v for %v", d.expected, out, d)
				break
			}
		}
	}
}

func TestSlidingMeanInvStd(t *testing.T) {
	testdata := []struct {
		a              []float64
		w              int
		thresh         float64
		expectedMean   []float64
		expectedInvStd []float64
		expectedConst  []bool
	}{
		{[]float64{2, 2, 2, 2, 2, 2}, 3, 1e-7, []float64{2, 2, 2, 2}, []float64{0, 0, 0, 0}, []bool{true, true, true, true}},
		{
			[]float64{2, 4, 3, 5, 4, 6}, 3, 1e-7,
			[]float64{3, 4, 4, 5},
			[]float64{math.Sqrt(1.5), math.Sqrt(1.5), math.Sqrt(1.5), math.Sqrt(1.5)},
			[]bool{false, false, false, false},
		},
	}

	for _, d := range testdata {
		mean, invStd, constant := SlidingMeanInvStd(d.a, d.w, d.thresh)
		if len(mean) != len(d.expectedMean) {
			t.Fatalf("expected %d means, got %d", len(d.expectedMean), len(mean))
		}
		for i := range mean {
			if math.Abs(mean[i]-d.expectedMean[i]) > 1e-9 {
				t.Errorf("mean: expected %v, got %v", d.expectedMean, mean)
				break
			}
			if math.Abs(invStd[i]-d.expectedInvStd[i]) > 1e-7 {
				t.Errorf("invStd: expected %v, got %v", d.expectedInvStd, invStd)
				break
			}
			if constant[i] != d.expectedConst[i] {
				t.Errorf("constant: expected %v, got %v", d.expectedConst, constant)
				break
			}
		}
	}
}
