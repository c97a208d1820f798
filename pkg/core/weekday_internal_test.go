package core

import "testing"

func TestFloorDivMod(t *testing.T) {
	tests := []struct {
		a, b, q, m int
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{-100, 100, -1, 0},
		{-101, 100, -2, 99},
		{0, 7, 0, 0},
	}

	for _, tt := range tests {
		if q := floorDiv(tt.a, tt.b); q != tt.q {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, q, tt.q)
		}
		if m := floorMod(tt.a, tt.b); m != tt.m {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.a, tt.b, m, tt.m)
		}
		if tt.b*floorDiv(tt.a, tt.b)+floorMod(tt.a, tt.b) != tt.a {
			t.Errorf("floorDiv/floorMod(%d, %d) do not recompose", tt.a, tt.b)
		}
	}
}
