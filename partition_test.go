package matrixprofile

import "testing"

func TestEnumerateDiagonalsSelfJoin(t *testing.T) {
	// n_A = 7, m = 3 => diags in [excl_zone+1, n_A-m] = [1, 4] when
	// excl_zone=0, the default outer-enumeration exclusion zone.
	diags := enumerateDiagonals(7, 7, 3, 0, true)
	want := []int{1, 2, 3, 4}
	if len(diags) != len(want) {
		t.Fatalf("expected %v, got %v", want, diags)
	}
	for i := range want {
		if diags[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], diags[i])
		}
	}
}

func TestEnumerateDiagonalsABJoin(t *testing.T) {
	diags := enumerateDiagonals(5, 6, 3, 0, false)
	// g in [-(nA-m), nB-m] = [-2, 3]
	want := []int{-2, -1, 0, 1, 2, 3}
	if len(diags) != len(want) {
		t.Fatalf("expected %v, got %v", want, diags)
	}
	for i := range want {
		if diags[i] != want[i] {
			t.Errorf("index %d: expected %d, got %d", i, want[i], diags[i])
		}
	}
}

func TestDiagonalCellCount(t *testing.T) {
	// nA=7, nB=7, m=3: diagonal 0 has min(5,5)-0=5 cells.
	if got := diagonalCellCount(0, 7, 7, 3); got != 5 {
		t.Errorf("expected 5 cells on the main diagonal, got %d", got)
	}
	// diagonal 4: min(5, 5-4)-0 = 1
	if got := diagonalCellCount(4, 7, 7, 3); got != 1 {
		t.Errorf("expected 1 cell, got %d", got)
	}
}

func TestSplitDiagonalsCoversEveryDiagonalExactlyOnce(t *testing.T) {
	diags := enumerateDiagonals(30, 30, 5, 0, true)
	ranges := splitDiagonals(diags, 30, 30, 5, 4)

	seen := make(map[int]bool)
	for _, r := range ranges {
		for _, g := range diags[r.start:r.stop] {
			if seen[g] {
				t.Fatalf("diagonal %d assigned to more than one range", g)
			}
			seen[g] = true
		}
	}
	if len(seen) != len(diags) {
		t.Fatalf("expected all %d diagonals covered, got %d", len(diags), len(seen))
	}
}

func TestSplitDiagonalsSingleThread(t *testing.T) {
	diags := enumerateDiagonals(10, 10, 3, 0, true)
	ranges := splitDiagonals(diags, 10, 10, 3, 1)
	if len(ranges) != 1 || ranges[0].start != 0 || ranges[0].stop != len(diags) {
		t.Errorf("expected a single full range, got %v", ranges)
	}
}
