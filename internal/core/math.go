// Package core provides fundamental types and utilities for the swipes game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"math"
	"math/rand"
)

// Rect represents an axis-aligned box on the screen, used for overlays and bands.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// RandomInt returns a uniformly chosen integer in the closed interval [min, max].
// A nil rng draws from the process-wide math/rand source.
// If max < min the bounds are swapped.
func RandomInt(rng *rand.Rand, min, max int) int {
	if max < min {
		min, max = max, min
	}
	if min == max {
		return min
	}
	span := uint64(max) - uint64(min)
	if span < math.MaxInt {
		if rng == nil {
			return min + rand.Intn(int(span)+1)
		}
		return min + rng.Intn(int(span)+1)
	}

	// The range is wider than int, so fold raw bits into it.
	var bits uint64
	if rng == nil {
		bits = rand.Uint64()
	} else {
		bits = rng.Uint64()
	}
	if span != math.MaxUint64 {
		bits %= span + 1
	}
	return int(uint64(min) + bits)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapRange remaps value from [inMin, inMax] to [outMin, outMax].
// The input is clamped to the source range first, so the result never
// leaves the target range. A zero-width source range maps to outMin.
func MapRange(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	t := ClampF((value-inMin)/(inMax-inMin), 0, 1)
	return Lerp(outMin, outMax, t)
}

// EaseInOutCubic accelerates through the first half and decelerates through the second.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuart starts fast and settles slowly. Used for incoming nodes.
func EaseOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}
