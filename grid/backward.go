/*
 * backward.go, part of molgrid.
 */

package grid

import (
	"math"

	v3 "github.com/rmera/molgrid/v3"
)

// GradientSet carries the per-atom gradients Backward produces: one row of
// dCoord for every atom, and, in vector-typing mode only, one row of dType
// weights per atom (nil in indexed mode, since an atom's type there is a
// discrete index, not a differentiable weight).
type GradientSet struct {
	DCoord *v3.Matrix
	DType  *TypeWeights
}

// Backward propagates the upstream gradient diff (shaped like a grid
// Forward would have produced for cs) back onto cs's atom coordinates and,
// in vector-typing mode, onto its type weights. center must be the same
// grid center used in the matching Forward call.
//
// In Binary mode the forward kernel is a thresholded indicator, whose
// derivative is zero almost everywhere, so Backward returns all-zero
// gradients (coordinate and, in vector-typing mode, type-weight) rather
// than the gradient of the summed density.
func (g *GridMaker) Backward(center [3]float64, cs *CoordinateSet, diff *DensityGrid) (*GradientSet, error) {
	if err := cs.validate(); err != nil {
		return nil, err
	}
	if err := checkStorage(cs.Location, diff.Location); err != nil {
		return nil, err
	}
	if diff.Dim != g.dim {
		return nil, newError(ShapeMismatch, "diff grid has dim %d, grid maker is configured for dim %d", diff.Dim, g.dim)
	}

	n := cs.N()
	grads := &GradientSet{DCoord: v3.Zeros(n)}
	if !cs.Indexed() {
		grads.DType = NewTypeWeights(n, cs.TypeVector.T)
	}

	if g.binary {
		return grads, nil
	}

	origin := g.GridOrigin(center)

	forEachAtom(cs.Location, n, func(atom int) {
		g.backwardAtom(cs, atom, origin, diff, grads)
	})

	return grads, nil
}

func (g *GridMaker) backwardAtom(cs *CoordinateSet, atom int, origin [3]float64, diff *DensityGrid, grads *GradientSet) {
	var center [3]float64
	row := cs.Coords.Row(nil, atom)
	center[0], center[1], center[2] = row[0], row[1], row[2]

	baseR := cs.Radii[atom]
	if baseR <= 0 {
		return
	}
	r := g.radiusScale * baseR

	// allChannels, not atomChannels: type_gradients[n][t] += diff*f(d) does
	// not depend on the atom's current weight for channel t, so a
	// zero-weight channel still needs its type gradient accumulated, even
	// though it contributes nothing to the atom's coordinate gradient.
	channels := g.allChannels(cs, atom, diff.Types)
	if len(channels) == 0 {
		return
	}

	lo, hi := g.atomBounds(center, origin, r)
	if boxEmpty(lo, hi) {
		return
	}

	var gx, gy, gz float64
	typeGrad := make([]float64, len(channels))

	for i := lo[0]; i <= hi[0]; i++ {
		x := origin[0] + float64(i)*g.resolution
		dx := x - center[0]
		for j := lo[1]; j <= hi[1]; j++ {
			y := origin[1] + float64(j)*g.resolution
			dy := y - center[1]
			for k := lo[2]; k <= hi[2]; k++ {
				z := origin[2] + float64(k)*g.resolution
				dz := z - center[2]
				d := math.Sqrt(dx*dx + dy*dy + dz*dz)
				dens, deriv := g.densityAndDeriv(d, r)
				if dens == 0 && deriv == 0 {
					continue
				}
				for ci, ch := range channels {
					dv := diff.At(ch.t, i, j, k)
					if dv == 0 {
						continue
					}
					typeGrad[ci] += dv * dens
					if d == 0 {
						// the Cartesian direction is undefined at the atom's
						// own center; the gradient contribution there is the
						// limit value 0, but f(0) itself is still well
						// defined and must still count toward typeGrad above.
						continue
					}
					scale := dv * ch.weight * deriv / d
					gx += scale * (center[0] - x)
					gy += scale * (center[1] - y)
					gz += scale * (center[2] - z)
				}
			}
		}
	}

	grads.DCoord.Set(atom, 0, gx)
	grads.DCoord.Set(atom, 1, gy)
	grads.DCoord.Set(atom, 2, gz)

	if grads.DType != nil {
		for ci, ch := range channels {
			grads.DType.Set(atom, ch.t, typeGrad[ci])
		}
	}
}
