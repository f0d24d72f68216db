/*
 * relevance_test.go, part of molgrid.
 */

package grid

import (
	"math"
	"testing"
)

func TestBackwardRelevancePartialPropagation(Te *testing.T) {
	g, err := New(0.1, 6.0)
	if err != nil {
		Te.Fatal(err)
	}
	dim, _, _ := g.GridDims()
	cs := singleAtomSet(0, 0, 0, 2.0, Host)

	diff := NewDensityGrid(1, dim, Host)
	diff.Set(0, 31, 30, 30, 10.0)

	// The voxel's recorded total density (1.0) is slightly larger than the
	// atom's own contribution there (about 0.995 at d = 0.1), so only a
	// fraction of diff's 10.0 should come back as relevance.
	density := NewDensityGrid(1, dim, Host)
	density.Set(0, 31, 30, 30, 1.0)

	rel, err := g.BackwardRelevance([3]float64{0, 0, 0}, cs, density, diff)
	if err != nil {
		Te.Fatal(err)
	}
	if rel[0] <= 1.0 || rel[0] >= 10.0 {
		Te.Errorf("expected relevance strictly between 1.0 and 10.0, got %v", rel[0])
	}
}

func TestBackwardRelevanceBoundedByDiff(Te *testing.T) {
	g, err := New(0.2, 8.0)
	if err != nil {
		Te.Fatal(err)
	}
	dim, _, _ := g.GridDims()
	cs := singleAtomSet(0, 0, 0, 1.5, Host)

	density := NewDensityGrid(1, dim, Host)
	diff := NewDensityGrid(1, dim, Host)
	mid := dim / 2
	diff.Set(0, mid, mid, mid, 4.0)
	density.Set(0, mid, mid, mid, 0.5) // smaller than the atom's own contribution: fraction clamps to 1

	rel, err := g.BackwardRelevance([3]float64{0, 0, 0}, cs, density, diff)
	if err != nil {
		Te.Fatal(err)
	}
	if rel[0] > 4.0+1e-9 {
		Te.Errorf("relevance must never exceed the diff value it was redistributed from, got %v", rel[0])
	}
	if rel[0] < 0 {
		Te.Errorf("relevance must never be negative, got %v", rel[0])
	}
}

func TestBackwardRelevanceRejectsVectorTyping(Te *testing.T) {
	g, err := New(0.1, 6.0)
	if err != nil {
		Te.Fatal(err)
	}
	dim, _, _ := g.GridDims()
	cs := singleAtomSet(0, 0, 0, 2.0, Host)
	cs.TypeIndex = nil
	cs.TypeVector = NewTypeWeights(1, 2)

	density := NewDensityGrid(2, dim, Host)
	diff := NewDensityGrid(2, dim, Host)

	if _, err := g.BackwardRelevance([3]float64{0, 0, 0}, cs, density, diff); err == nil {
		Te.Fatal("expected a MissingTyping error for vector-typed relevance")
	} else if gerr, ok := err.(Error); !ok || gerr.Kind() != MissingTyping {
		Te.Errorf("expected MissingTyping kind, got %v", err)
	}
}

func TestBackwardRelevanceHostDeviceParity(Te *testing.T) {
	g, err := New(0.2, 8.0)
	if err != nil {
		Te.Fatal(err)
	}
	dim, _, _ := g.GridDims()

	buildSet := func(loc Location) *CoordinateSet {
		cs := singleAtomSet(0.2, -0.1, 0.3, 1.6, loc)
		return cs
	}
	buildGrid := func(loc Location, v float64) *DensityGrid {
		d := NewDensityGrid(1, dim, loc)
		mid := dim / 2
		d.Set(0, mid, mid, mid, v)
		return d
	}

	relHost, err := g.BackwardRelevance([3]float64{0, 0, 0}, buildSet(Host), buildGrid(Host, 0.6), buildGrid(Host, 3.0))
	if err != nil {
		Te.Fatal(err)
	}
	relDevice, err := g.BackwardRelevance([3]float64{0, 0, 0}, buildSet(Device), buildGrid(Device, 0.6), buildGrid(Device, 3.0))
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(relHost[0]-relDevice[0]) > 1e-6 {
		Te.Errorf("host/device relevance mismatch: %v vs %v", relHost[0], relDevice[0])
	}
}
