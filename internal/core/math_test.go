package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomIntBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	sawMin, sawMax := false, false
	for i := 0; i < 2000; i++ {
		v := RandomInt(rng, 3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("RandomInt(3, 6) = %d, outside range", v)
		}
		if v == 3 {
			sawMin = true
		}
		if v == 6 {
			sawMax = true
		}
	}

	if !sawMin || !sawMax {
		t.Errorf("both endpoints should be reachable, sawMin=%v sawMax=%v", sawMin, sawMax)
	}
}

func TestRandomIntSingleValue(t *testing.T) {
	for i := 0; i < 10; i++ {
		if v := RandomInt(nil, 42, 42); v != 42 {
			t.Errorf("RandomInt(42, 42) = %d, expected 42", v)
		}
	}
}

func TestRandomIntNilSource(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInt(nil, -5, 5)
		if v < -5 || v > 5 {
			t.Fatalf("RandomInt(nil, -5, 5) = %d, outside range", v)
		}
	}
}

func TestRandomIntSwappedBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := RandomInt(rng, 10, 1)
		if v < 1 || v > 10 {
			t.Fatalf("RandomInt(10, 1) = %d, outside range", v)
		}
	}
}

func TestRandomIntExtremeBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		RandomInt(rng, math.MinInt, math.MaxInt)
		RandomInt(nil, math.MinInt, math.MaxInt)

		v := RandomInt(rng, math.MinInt+1, math.MaxInt)
		if v == math.MinInt {
			t.Fatalf("RandomInt(MinInt+1, MaxInt) = %d, outside range", v)
		}
		v = RandomInt(rng, math.MaxInt-1, math.MaxInt)
		if v < math.MaxInt-1 {
			t.Fatalf("RandomInt(MaxInt-1, MaxInt) = %d, outside range", v)
		}
	}
}

func TestRandomIntDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 50; i++ {
		if RandomInt(a, 0, 1000) != RandomInt(b, 0, 1000) {
			t.Fatal("same seed should produce the same sequence")
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(10, 20, 0) = %f, expected 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp(10, 20, 1) = %f, expected 20", got)
	}
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp(10, 20, 0.5) = %f, expected 15", got)
	}
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		name                                string
		value, inMin, inMax, outMin, outMax float64
		expected                            float64
	}{
		{"midpoint", 5, 0, 10, 0, 100, 50},
		{"below range clamps", -3, 0, 10, 0, 100, 0},
		{"above range clamps", 30, 0, 10, 0, 100, 100},
		{"inverted output", 2.5, 0, 10, 100, 0, 75},
		{"zero-width input", 4, 4, 4, 7, 9, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapRange(tc.value, tc.inMin, tc.inMax, tc.outMin, tc.outMax)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("MapRange() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestEasingEndpoints(t *testing.T) {
	easings := map[string]func(float64) float64{
		"EaseInOutCubic": EaseInOutCubic,
		"EaseOutQuart":   EaseOutQuart,
	}

	for name, fn := range easings {
		t.Run(name, func(t *testing.T) {
			if got := fn(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %f, expected 0", name, got)
			}
			if got := fn(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %f, expected 1", name, got)
			}
			prev := fn(0)
			for i := 1; i <= 100; i++ {
				v := fn(float64(i) / 100)
				if v < 0 || v > 1 {
					t.Fatalf("%s(%f) = %f, outside [0,1]", name, float64(i)/100, v)
				}
				if v < prev {
					t.Fatalf("%s should be monotonic, dropped at t=%f", name, float64(i)/100)
				}
				prev = v
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestTickDuration(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TickDuration().Milliseconds() != 16 {
		t.Errorf("TickDuration() at 60fps = %v, expected ~16ms", cfg.TickDuration())
	}

	cfg.TickRate = 0
	if cfg.TickDuration().Milliseconds() != 16 {
		t.Errorf("TickDuration() with zero rate should fall back to 60fps, got %v", cfg.TickDuration())
	}

	cfg.TickRate = 10
	if cfg.TickDuration().Milliseconds() != 100 {
		t.Errorf("TickDuration() at 10fps = %v, expected 100ms", cfg.TickDuration())
	}
}
