package core

import "testing"

func TestMod(t *testing.T) {
	tests := []struct {
		a, limit, expected int
	}{
		{0, 25, 0},
		{24, 25, 24},
		{25, 25, 0},
		{26, 25, 1},
		{-1, 25, 24},
		{-25, 25, 0},
		{-26, 25, 24},
	}

	for _, tc := range tests {
		result := Mod(tc.a, tc.limit)
		if result != tc.expected {
			t.Errorf("Mod(%d, %d) = %d, expected %d", tc.a, tc.limit, result, tc.expected)
		}
	}
}

func TestWrapIncDec(t *testing.T) {
	const limit = 25

	if WrapInc(0, limit) != 1 {
		t.Error("WrapInc(0) should be 1")
	}
	if WrapInc(limit-1, limit) != 0 {
		t.Error("WrapInc at the last row should wrap to 0")
	}
	if WrapDec(1, limit) != 0 {
		t.Error("WrapDec(1) should be 0")
	}
	if WrapDec(0, limit) != limit-1 {
		t.Error("WrapDec at row 0 should wrap to the last row")
	}

	// Inc and Dec are inverses over the whole range.
	for v := 0; v < limit; v++ {
		if WrapDec(WrapInc(v, limit), limit) != v {
			t.Errorf("WrapDec(WrapInc(%d)) != %d", v, v)
		}
	}
}

func TestWrapStaysInRange(t *testing.T) {
	const limit = 25

	v := 12
	for i := 0; i < 3*limit; i++ {
		v = WrapInc(v, limit)
		if v < 0 || v >= limit {
			t.Fatalf("WrapInc left range: %d", v)
		}
	}
	for i := 0; i < 3*limit; i++ {
		v = WrapDec(v, limit)
		if v < 0 || v >= limit {
			t.Fatalf("WrapDec left range: %d", v)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}
