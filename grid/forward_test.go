/*
 * forward_test.go, part of molgrid.
 */

package grid

import (
	"math"
	"testing"

	v3 "github.com/rmera/molgrid/v3"
)

func TestForwardSingleAtomPeaksAtCenter(Te *testing.T) {
	g, err := New(0.1, 6.0)
	if err != nil {
		Te.Fatal(err)
	}
	dim, _, _ := g.GridDims()
	cs := singleAtomSet(0, 0, 0, 2.0, Host)
	out := NewDensityGrid(1, dim, Host)

	if err := g.Forward([3]float64{0, 0, 0}, cs, out); err != nil {
		Te.Fatal(err)
	}
	mid := dim / 2
	if math.Abs(out.At(0, mid, mid, mid)-1.0) > 1e-6 {
		Te.Errorf("expected density 1.0 at the atom's own voxel, got %v", out.At(0, mid, mid, mid))
	}
	if out.At(0, 0, 0, 0) != 0 {
		Te.Errorf("expected zero density far from the atom, got %v", out.At(0, 0, 0, 0))
	}
}

func TestForwardSymmetricAboutOrigin(Te *testing.T) {
	g, err := New(0.2, 8.0)
	if err != nil {
		Te.Fatal(err)
	}
	dim, _, _ := g.GridDims()

	right := singleAtomSet(1.2, 0, 0, 1.7, Host)
	left := singleAtomSet(-1.2, 0, 0, 1.7, Host)
	outRight := NewDensityGrid(1, dim, Host)
	outLeft := NewDensityGrid(1, dim, Host)
	if err := g.Forward([3]float64{0, 0, 0}, right, outRight); err != nil {
		Te.Fatal(err)
	}
	if err := g.Forward([3]float64{0, 0, 0}, left, outLeft); err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			for k := 0; k < dim; k++ {
				mirrored := dim - 1 - i
				if math.Abs(outRight.At(0, i, j, k)-outLeft.At(0, mirrored, j, k)) > 1e-6 {
					Te.Fatalf("expected mirror symmetry at (%d,%d,%d): %v vs %v", i, j, k, outRight.At(0, i, j, k), outLeft.At(0, mirrored, j, k))
				}
			}
		}
	}
}

func TestForwardBinaryModeIsIndicator(Te *testing.T) {
	g, err := New(0.1, 6.0)
	if err != nil {
		Te.Fatal(err)
	}
	g.Binary(true)
	dim, _, _ := g.GridDims()
	cs := singleAtomSet(0, 0, 0, 2.0, Host)
	out := NewDensityGrid(1, dim, Host)
	if err := g.Forward([3]float64{0, 0, 0}, cs, out); err != nil {
		Te.Fatal(err)
	}
	for _, v := range out.Data {
		if v != 0 && v != 1 {
			Te.Fatalf("binary mode must only produce 0 or 1, got %v", v)
			break
		}
	}
}

func TestForwardVectorTypingSpreadsAcrossChannels(Te *testing.T) {
	g, err := New(0.2, 8.0)
	if err != nil {
		Te.Fatal(err)
	}
	dim, _, _ := g.GridDims()
	coords, _ := v3.NewMatrix([]float64{0, 0, 0})
	tv := NewTypeWeights(1, 2)
	tv.Set(0, 0, 0.3)
	tv.Set(0, 1, 0.7)
	cs := &CoordinateSet{Coords: coords, TypeVector: tv, Radii: []float64{1.5}, Location: Host}
	out := NewDensityGrid(2, dim, Host)

	if err := g.Forward([3]float64{0, 0, 0}, cs, out); err != nil {
		Te.Fatal(err)
	}
	mid := dim / 2
	ratio := out.At(0, mid, mid, mid) / out.At(1, mid, mid, mid)
	if math.Abs(ratio-(0.3/0.7)) > 1e-6 {
		Te.Errorf("expected channel densities in the 0.3:0.7 ratio of the type weights, got %v", ratio)
	}
}

func TestForwardOverlappingAtomsSum(Te *testing.T) {
	g, err := New(0.2, 8.0)
	if err != nil {
		Te.Fatal(err)
	}
	dim, _, _ := g.GridDims()
	coords, _ := v3.NewMatrix([]float64{0, 0, 0, 0.1, 0, 0})
	cs := &CoordinateSet{Coords: coords, TypeIndex: []float64{0, 0}, Radii: []float64{1.5, 1.5}, Location: Host}
	out := NewDensityGrid(1, dim, Host)
	if err := g.Forward([3]float64{0, 0, 0}, cs, out); err != nil {
		Te.Fatal(err)
	}

	single := &CoordinateSet{Coords: v3.Zeros(1), TypeIndex: []float64{0}, Radii: []float64{1.5}, Location: Host}
	single.Coords.Set(0, 0, 0)
	onlyOut := NewDensityGrid(1, dim, Host)
	if err := g.Forward([3]float64{0, 0, 0}, single, onlyOut); err != nil {
		Te.Fatal(err)
	}

	mid := dim / 2
	if out.At(0, mid, mid, mid) <= onlyOut.At(0, mid, mid, mid) {
		Te.Error("expected overlapping atoms' densities to sum, not saturate at one atom's contribution")
	}
}

func TestForwardHostDeviceParity(Te *testing.T) {
	g, err := New(0.25, 10.0)
	if err != nil {
		Te.Fatal(err)
	}
	dim, _, _ := g.GridDims()
	coords, _ := v3.NewMatrix([]float64{0.1, 0.2, -0.3, -1.0, 0.4, 0.2, 1.1, -0.6, 0.5, 0.0, 0.0, 1.5})
	build := func(loc Location) *CoordinateSet {
		return &CoordinateSet{Coords: coords, TypeIndex: []float64{0, 1, 0, 2}, Radii: []float64{1.5, 1.7, 1.4, 1.2}, Location: loc}
	}

	outHost := NewDensityGrid(3, dim, Host)
	outDevice := NewDensityGrid(3, dim, Device)
	if err := g.Forward([3]float64{0, 0, 0}, build(Host), outHost); err != nil {
		Te.Fatal(err)
	}
	if err := g.Forward([3]float64{0, 0, 0}, build(Device), outDevice); err != nil {
		Te.Fatal(err)
	}

	if !SameWithinTolerance(outHost, outDevice, 1e-4) {
		Te.Fatal("host and device forward passes disagree beyond tolerance")
	}
}

func TestForwardMassAgreesAcrossResolutions(Te *testing.T) {
	// Refining the voxel grid should make the discretized sum of density a
	// closer approximation of the kernel's (resolution-independent)
	// analytic integral, so the discretized masses at two resolutions
	// should be positive and roughly agree.
	coarse, err := New(0.4, 6.0)
	if err != nil {
		Te.Fatal(err)
	}
	fine, err := New(0.1, 6.0)
	if err != nil {
		Te.Fatal(err)
	}
	cs := singleAtomSet(0, 0, 0, 1.5, Host)

	dimC, _, _ := coarse.GridDims()
	dimF, _, _ := fine.GridDims()
	outC := NewDensityGrid(1, dimC, Host)
	outF := NewDensityGrid(1, dimF, Host)
	if err := coarse.Forward([3]float64{0, 0, 0}, cs, outC); err != nil {
		Te.Fatal(err)
	}
	if err := fine.Forward([3]float64{0, 0, 0}, cs, outF); err != nil {
		Te.Fatal(err)
	}

	massC := outC.Sum(0) * math.Pow(0.4, 3)
	massF := outF.Sum(0) * math.Pow(0.1, 3)
	if massC <= 0 || massF <= 0 {
		Te.Fatal("expected positive discretized mass at both resolutions")
	}
	if math.Abs(massC-massF)/massF > 0.5 {
		Te.Errorf("discretized mass should roughly agree across resolutions: coarse %v fine %v", massC, massF)
	}
}

func TestForwardShapeMismatch(Te *testing.T) {
	g, err := New(0.1, 6.0)
	if err != nil {
		Te.Fatal(err)
	}
	cs := singleAtomSet(0, 0, 0, 2.0, Host)
	badOut := NewDensityGrid(1, 10, Host)
	if err := g.Forward([3]float64{0, 0, 0}, cs, badOut); err == nil {
		Te.Fatal("expected a shape mismatch error for a grid with the wrong dim")
	} else if gerr, ok := err.(Error); !ok || gerr.Kind() != ShapeMismatch {
		Te.Errorf("expected ShapeMismatch kind, got %v", err)
	}
}

func TestForwardMissingTyping(Te *testing.T) {
	g, err := New(0.1, 6.0)
	if err != nil {
		Te.Fatal(err)
	}
	dim, _, _ := g.GridDims()
	coords, _ := v3.NewMatrix([]float64{0, 0, 0})
	cs := &CoordinateSet{Coords: coords, Radii: []float64{2.0}, Location: Host}
	out := NewDensityGrid(1, dim, Host)
	if err := g.Forward([3]float64{0, 0, 0}, cs, out); err == nil {
		Te.Fatal("expected a MissingTyping error")
	} else if gerr, ok := err.(Error); !ok || gerr.Kind() != MissingTyping {
		Te.Errorf("expected MissingTyping kind, got %v", err)
	}
}
