package arc

import "github.com/chewxy/math32"

// Radians converts degrees to radians.
func Radians(deg float32) float32 { return deg * (math32.Pi / 180) }

// Degrees converts radians to degrees.
func Degrees(rad float32) float32 { return rad * (180 / math32.Pi) }

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b, t float32) float32 { return a + (b-a)*t }

// Remap maps x from the range [from0, from1] onto [to0, to1] without clamping.
// Either range may be descending. An empty source range maps to to0.
func Remap(x, from0, from1, to0, to1 float32) float32 {
	if from0 == from1 {
		return to0
	}
	return Lerp(to0, to1, (x-from0)/(from1-from0))
}

// RemapClamp is Remap with x first clamped to the source range.
func RemapClamp(x, from0, from1, to0, to1 float32) float32 {
	if from0 == from1 {
		return to0
	}
	t := (x - from0) / (from1 - from0)
	switch {
	case t < 0:
		t = 0
	case t > 1:
		t = 1
	}
	return Lerp(to0, to1, t)
}
