/*
 * density.go, part of molgrid.
 */

package grid

import "math"

// density evaluates the per-atom kernel at Cartesian distance d from the
// atom center, given the atom's effective radius r (already scaled by
// RadiusScale). It works in normalized distance u = d/r so the A,B,C tail
// coefficients stay configuration-only: a Gaussian core out to u =
// gaussianRadiusMultiple, a quadratic tail matching the Gaussian's value
// and slope there and reaching zero at u = finalRadiusMultiple, and zero
// beyond.
func (g *GridMaker) density(d, r float64) float64 {
	if r <= 0 {
		return 0
	}
	u := d / r
	switch {
	case u < g.gaussianRadiusMultiple:
		return math.Exp(-2 * u * u)
	case u < g.finalRadiusMultiple:
		return g.a*u*u + g.b*u + g.c
	default:
		return 0
	}
}

// densityDeriv returns df/dd, the derivative of density with respect to
// the Cartesian distance d (not u), which is what the chain rule needs to
// turn a voxel's upstream gradient into a Cartesian atom gradient.
func (g *GridMaker) densityDeriv(d, r float64) float64 {
	if r <= 0 {
		return 0
	}
	u := d / r
	switch {
	case u < g.gaussianRadiusMultiple:
		// d/du[exp(-2u^2)] = -4u*exp(-2u^2); chain rule by du/dd = 1/r.
		return (-4 * u * math.Exp(-2*u*u)) / r
	case u < g.finalRadiusMultiple:
		// d/du[A u^2 + B u + C] = 2A u + B = d*u + e; chain rule by 1/r.
		return (g.d*u + g.e) / r
	default:
		return 0
	}
}

// densityAndDeriv evaluates both density and densityDeriv from a single
// region test, used on the hot path inside Forward/Backward.
func (g *GridMaker) densityAndDeriv(d, r float64) (val, deriv float64) {
	if r <= 0 {
		return 0, 0
	}
	u := d / r
	switch {
	case u < g.gaussianRadiusMultiple:
		e := math.Exp(-2 * u * u)
		return e, (-4 * u * e) / r
	case u < g.finalRadiusMultiple:
		return g.a*u*u + g.b*u + g.c, (g.d*u + g.e) / r
	default:
		return 0, 0
	}
}
