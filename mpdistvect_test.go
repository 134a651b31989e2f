package matrixprofile

import (
	"math"
	"testing"
)

func TestSlidingMin(t *testing.T) {
	a := []float64{5, 1, 4, 2, 8, 3}
	got := slidingMin(a, 3)
	want := []float64{1, 1, 2, 2}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestMPdistVectShapeAndFindsExactMatch(t *testing.T) {
	Q := []float64{3, 8, 1, 4}
	T := []float64{9, 2, 7, 3, 8, 1, 4, 5, 0, 6}

	out, err := MPdistVect(Q, T, 3, Selector{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantLen := len(T) - len(Q) + 1
	if len(out) != wantLen {
		t.Fatalf("expected %d entries, got %d", wantLen, len(out))
	}

	minIdx, minVal := 0, math.Inf(1)
	for i, v := range out {
		if v < minVal {
			minVal = v
			minIdx = i
		}
	}
	// Q appears verbatim starting at T[3], so offset 3 attains the
	// minimum. With k'=1 (second smallest of four), offsets 2 and 4
	// also reach zero, so only the value at offset 3 is checked.
	if out[3] > minVal {
		t.Errorf("expected the exact match at offset 3 to attain the minimum %v (at %d), got %v", minVal, minIdx, out[3])
	}
	if minVal > 1e-6 {
		t.Errorf("expected a near-zero distance at the exact match, got %v", minVal)
	}
}
