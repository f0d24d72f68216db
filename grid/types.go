/*
 * types.go, part of molgrid.
 */

package grid

import (
	"gonum.org/v1/gonum/floats"

	v3 "github.com/rmera/molgrid/v3"
)

// Location tags a tensor as host-resident or device-resident. Forward,
// Backward and BackwardRelevance dispatch on the Location of their
// CoordinateSet: Host walks atoms on the calling goroutine, Device spreads
// them across a worker pool sized to runtime.NumCPU(). Mixing Locations
// within a single call is a StorageMismatch error.
type Location int

const (
	Host Location = iota
	Device
)

func (l Location) String() string {
	if l == Device {
		return "device"
	}
	return "host"
}

// TypeWeights is a dense N x T matrix of per-atom, per-type weights, used
// in vector-typing mode (as opposed to indexed-typing mode, where each atom
// carries a single integer type and an implicit weight of 1).
type TypeWeights struct {
	Data []float64
	N, T int
}

// NewTypeWeights allocates a zeroed n x t weight matrix.
func NewTypeWeights(n, t int) *TypeWeights {
	return &TypeWeights{Data: make([]float64, n*t), N: n, T: t}
}

func (w *TypeWeights) At(n, t int) float64 { return w.Data[n*w.T+t] }

func (w *TypeWeights) Set(n, t int, v float64) { w.Data[n*w.T+t] = v }

// CoordinateSet bundles everything Forward/Backward/BackwardRelevance need
// about a set of atoms: their positions, their van der Waals radii, and
// exactly one of an indexed or a vector typing. Parsing atomic data,
// assigning a typing scheme and batching examples together all happen
// outside this package; CoordinateSet is the boundary.
type CoordinateSet struct {
	Coords     *v3.Matrix
	TypeIndex  []float64 // indexed typing: one type per atom, negative means "no type, skip". Stored as float64 so it lines up with the rest of CoordinateSet's tensor-uniform storage, not because fractional indices are meaningful.
	TypeVector *TypeWeights // vector typing: an N x T weight row per atom
	Radii      []float64
	Location   Location
}

// N returns the number of atoms in the set.
func (cs *CoordinateSet) N() int {
	if cs.Coords == nil {
		return 0
	}
	return cs.Coords.NVecs()
}

// Indexed reports whether this set uses indexed typing (a single type per
// atom) rather than vector typing (a dense weight row per atom).
func (cs *CoordinateSet) Indexed() bool { return cs.TypeVector == nil }

// validate checks internal shape consistency: coordinate count must match
// radius count and whichever typing is present.
func (cs *CoordinateSet) validate() error {
	n := cs.N()
	if len(cs.Radii) != n {
		return newError(ShapeMismatch, "coordinate set has %d atoms but %d radii", n, len(cs.Radii))
	}
	if cs.TypeVector == nil && cs.TypeIndex == nil {
		return newError(MissingTyping, "coordinate set has neither indexed nor vector typing")
	}
	if cs.TypeVector != nil && cs.TypeIndex != nil {
		return newError(MissingTyping, "coordinate set has both indexed and vector typing, only one is allowed")
	}
	if cs.TypeIndex != nil && len(cs.TypeIndex) != n {
		return newError(ShapeMismatch, "coordinate set has %d atoms but %d type indices", n, len(cs.TypeIndex))
	}
	if cs.TypeVector != nil && cs.TypeVector.N != n {
		return newError(ShapeMismatch, "coordinate set has %d atoms but type-vector matrix has %d rows", n, cs.TypeVector.N)
	}
	return nil
}

// DensityGrid is a dense T x dim x dim x dim tensor of per-type density
// values, channel-major (all of type 0's voxels, then all of type 1's...).
// It is also reused, with the same shape, to carry an upstream gradient
// into Backward/BackwardRelevance.
type DensityGrid struct {
	Data     []float64
	Types    int
	Dim      int
	Location Location
}

// NewDensityGrid allocates a zeroed types x dim x dim x dim grid.
func NewDensityGrid(types, dim int, loc Location) *DensityGrid {
	return &DensityGrid{Data: make([]float64, types*dim*dim*dim), Types: types, Dim: dim, Location: loc}
}

func (dg *DensityGrid) index(t, i, j, k int) int {
	d := dg.Dim
	return ((t*d+i)*d+j)*d + k
}

func (dg *DensityGrid) At(t, i, j, k int) float64 { return dg.Data[dg.index(t, i, j, k)] }

func (dg *DensityGrid) Set(t, i, j, k int, v float64) { dg.Data[dg.index(t, i, j, k)] = v }

// Zero clears every voxel.
func (dg *DensityGrid) Zero() {
	for i := range dg.Data {
		dg.Data[i] = 0
	}
}

// sameShape reports whether two grids agree on type count and voxel count.
func (dg *DensityGrid) sameShape(other *DensityGrid) bool {
	return dg.Types == other.Types && dg.Dim == other.Dim
}

// Sum returns the sum of every voxel in one channel, used by the
// discretized-integral property test (the grid's total mass per type
// should track the analytic integral of the density kernel as resolution
// is refined).
func (dg *DensityGrid) Sum(channel int) float64 {
	d := dg.Dim
	return floats.Sum(dg.Data[channel*d*d*d : (channel+1)*d*d*d])
}
