/*
 * relevance.go, part of molgrid.
 */

package grid

import "math"

// BackwardRelevance redistributes a grid-shaped relevance signal diff back
// onto the atoms of cs, proportional to each atom's fractional
// contribution to density at every voxel it touches: an atom that
// contributed half of a voxel's total density receives half of that
// voxel's relevance. density must be the grid Forward produced for cs (so
// the fractions are computed against the same totals diff was derived
// from); center must be the same grid center used there.
//
// BackwardRelevance only supports indexed typing: splitting relevance
// across overlapping vector-typed contributions at the same voxel has no
// single well-defined fraction, so a vector-typed CoordinateSet is a
// MissingTyping error.
func (g *GridMaker) BackwardRelevance(center [3]float64, cs *CoordinateSet, density, diff *DensityGrid) ([]float64, error) {
	if err := cs.validate(); err != nil {
		return nil, err
	}
	if !cs.Indexed() {
		return nil, newError(MissingTyping, "backward relevance requires indexed typing")
	}
	if err := checkStorage(cs.Location, density.Location, diff.Location); err != nil {
		return nil, err
	}
	if !density.sameShape(diff) {
		return nil, newError(ShapeMismatch, "density grid and diff grid have different shapes")
	}
	if density.Dim != g.dim {
		return nil, newError(ShapeMismatch, "density grid has dim %d, grid maker is configured for dim %d", density.Dim, g.dim)
	}

	n := cs.N()
	relevance := make([]float64, n)
	origin := g.GridOrigin(center)

	forEachAtom(cs.Location, n, func(atom int) {
		relevance[atom] = g.relevanceAtom(cs, atom, origin, density, diff)
	})

	return relevance, nil
}

func (g *GridMaker) relevanceAtom(cs *CoordinateSet, atom int, origin [3]float64, density, diff *DensityGrid) float64 {
	var center [3]float64
	row := cs.Coords.Row(nil, atom)
	center[0], center[1], center[2] = row[0], row[1], row[2]

	baseR := cs.Radii[atom]
	if baseR <= 0 {
		return 0
	}
	r := g.radiusScale * baseR

	idx := int(cs.TypeIndex[atom])
	if idx < 0 || idx >= density.Types {
		return 0
	}

	lo, hi := g.atomBounds(center, origin, r)
	if boxEmpty(lo, hi) {
		return 0
	}

	var total float64
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
				contribution := g.density(d, r)
				if contribution == 0 {
					continue
				}
				voxelTotal := density.At(idx, i, j, k)
				if voxelTotal <= 0 {
					continue
				}
				fraction := contribution / voxelTotal
				if fraction > 1 {
					fraction = 1
				}
				total += fraction * diff.At(idx, i, j, k)
			}
		}
	}
	return total
}
