/*
 * bounds.go, part of molgrid.
 */

package grid

import "math"

// axisBounds returns the inclusive [lo, hi] voxel index range along one
// axis that an atom centered at coord (that axis's Cartesian component),
// with real-space cutoff radius cutoff, can possibly influence. origin is
// that axis's component of the grid origin (voxel 0's Cartesian position).
// The range is empty (represented as lo > hi) if the atom's influence
// falls entirely outside the grid.
func (g *GridMaker) axisBounds(coord, origin, cutoff float64) (lo, hi int) {
	loF := (coord - cutoff - origin) / g.resolution
	hiF := (coord + cutoff - origin) / g.resolution

	lo = int(math.Ceil(loF))
	hi = int(math.Floor(hiF))

	if lo < 0 {
		lo = 0
	}
	if hi > g.dim-1 {
		hi = g.dim - 1
	}
	return lo, hi
}

// atomBounds returns the axis-aligned voxel box (inclusive on every axis)
// that an atom at center with effective radius r (already RadiusScale'd)
// can influence, given the grid's origin. It is empty on an axis where lo
// > hi, in which case the atom contributes nothing to this grid at all.
func (g *GridMaker) atomBounds(center [3]float64, origin [3]float64, r float64) (lo, hi [3]int) {
	cutoff := r * g.finalRadiusMultiple
	for axis := 0; axis < 3; axis++ {
		lo[axis], hi[axis] = g.axisBounds(center[axis], origin[axis], cutoff)
	}
	return lo, hi
}

// boxEmpty reports whether an atomBounds result describes an empty box
// (the atom does not touch the grid on at least one axis).
func boxEmpty(lo, hi [3]int) bool {
	return lo[0] > hi[0] || lo[1] > hi[1] || lo[2] > hi[2]
}
