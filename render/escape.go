package render

import "math"

// EscapeRadius is the distance from the origin past which an orbit is
// known to diverge.
const EscapeRadius = 2.0

// NotEscaped is the stage reported for points that belong to the set.
const NotEscaped = -1

// IsInSet iterates z ← z² + c starting at z0 at most maxIter times.
//
// A point is eliminated as soon as an iterate lies further than EscapeRadius
// from the origin; stage is then the 0-based iteration that crossed it.
// An iterate equal to its predecessor is a fixed point, and the point is
// accepted immediately. Longer cycles are not detected and run the full
// budget. Points that survive every iteration are members; stage is
// NotEscaped for all members.
func IsInSet(z0, c complex128, maxIter int) (inSet bool, stage int) {
	prev := z0
	z := z0
	for i := 0; i < maxIter; i++ {
		z = z*z + c

		if dist(z) > EscapeRadius {
			return false, i
		}

		if z == prev {
			return true, NotEscaped
		}
		prev = z
	}
	return true, NotEscaped
}

// dist is |z| computed as sqrt(re² + im²) rather than cmplx.Abs, which uses
// math.Hypot and can round differently near the escape radius.
func dist(z complex128) float64 {
	re, im := real(z), imag(z)
	return math.Sqrt(re*re + im*im)
}
