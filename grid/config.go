/*
 * config.go, part of molgrid.
 */

package grid

import "math"

// GridMaker holds the geometry and density-kernel configuration shared by
// Forward, Backward and BackwardRelevance. The zero value is not usable;
// build one with New.
type GridMaker struct {
	resolution             float64
	dimension              float64
	binary                 bool
	radiusScale            float64
	gaussianRadiusMultiple float64
	finalRadiusMultiple    float64
	dim                    int

	// a, b, c are the quadratic-tail coefficients in normalized-distance
	// (u = d/r) space; d, e are the matching derivative coefficients
	// (df/du = d*u + e in the tail). All five depend only on
	// gaussianRadiusMultiple, so they are recomputed once per
	// configuration change, never per atom.
	a, b, c, d, e float64
}

// New builds a GridMaker with the given resolution (in Angstrom per voxel)
// and cubic side length (in Angstrom), and default kernel shape (summed
// density, radius_scale 1, gaussian_radius_multiple 1).
func New(resolution, dimension float64) (*GridMaker, error) {
	g := new(GridMaker)
	if err := g.Initialize(resolution, dimension, false, 1.0, 1.0); err != nil {
		return nil, err
	}
	return g, nil
}

// Initialize (re)configures every geometry and kernel-shape parameter at
// once, and is the only entry point that validates them: resolution and
// dimension must be positive, radiusScale must be positive and
// gaussianRadiusMultiple must be positive.
func (g *GridMaker) Initialize(resolution, dimension float64, binary bool, radiusScale, gaussianRadiusMultiple float64) error {
	if resolution <= 0 {
		return newError(InvalidConfiguration, "resolution must be positive, got %v", resolution)
	}
	if dimension <= 0 {
		return newError(InvalidConfiguration, "dimension must be positive, got %v", dimension)
	}
	if radiusScale <= 0 {
		return newError(InvalidConfiguration, "radius_scale must be positive, got %v", radiusScale)
	}
	if gaussianRadiusMultiple <= 0 {
		return newError(InvalidConfiguration, "gaussian_radius_multiple must be positive, got %v", gaussianRadiusMultiple)
	}
	g.resolution = resolution
	g.dimension = dimension
	g.binary = binary
	g.radiusScale = radiusScale
	g.gaussianRadiusMultiple = gaussianRadiusMultiple
	g.recompute()
	return nil
}

// recompute derives dim and the kernel coefficients from the current
// resolution/dimension/gaussianRadiusMultiple. It must run after every
// change to those three fields - final_radius_multiple in particular is
// always rederived here, never left at a stale or zero value.
func (g *GridMaker) recompute() {
	g.dim = int(math.Round(g.dimension/g.resolution)) + 1

	G := g.gaussianRadiusMultiple
	g.finalRadiusMultiple = (1 + 2*G*G) / (2 * G)
	final := g.finalRadiusMultiple

	v := math.Exp(-2 * G * G)
	dv := -4 * G * math.Exp(-2*G*G)

	span := G - final
	A := (dv*span - v) / (span * span)
	B := dv - 2*A*G
	C := v - A*G*G - B*G

	g.a, g.b, g.c = A, B, C
	g.d, g.e = 2*A, B
}

// Resolution returns the voxel edge length in Angstrom, setting it first if
// a positive value is given.
func (g *GridMaker) Resolution(resolution ...float64) float64 {
	ret := g.resolution
	if len(resolution) > 0 && resolution[0] > 0 {
		g.resolution = resolution[0]
		g.recompute()
	}
	return ret
}

// Dimension returns the cubic grid side length in Angstrom, setting it
// first if a positive value is given.
func (g *GridMaker) Dimension(dimension ...float64) float64 {
	ret := g.dimension
	if len(dimension) > 0 && dimension[0] > 0 {
		g.dimension = dimension[0]
		g.recompute()
	}
	return ret
}

// Binary returns whether the grid records atom presence (max) instead of
// summed density, setting it first if a value is given.
func (g *GridMaker) Binary(binary ...bool) bool {
	ret := g.binary
	if len(binary) > 0 {
		g.binary = binary[0]
	}
	return ret
}

// RadiusScale returns the multiplier applied to every atom's van der Waals
// radius before rasterizing, setting it first if a positive value is given.
func (g *GridMaker) RadiusScale(scale ...float64) float64 {
	ret := g.radiusScale
	if len(scale) > 0 && scale[0] > 0 {
		g.radiusScale = scale[0]
	}
	return ret
}

// GaussianRadiusMultiple returns the multiple of an atom's effective radius
// at which the density kernel switches from its Gaussian core to its
// quadratic tail, setting it first if a positive value is given.
func (g *GridMaker) GaussianRadiusMultiple(multiple ...float64) float64 {
	ret := g.gaussianRadiusMultiple
	if len(multiple) > 0 && multiple[0] > 0 {
		g.gaussianRadiusMultiple = multiple[0]
		g.recompute()
	}
	return ret
}

// FinalRadiusMultiple returns the multiple of an atom's effective radius
// beyond which its density contribution is zero. It is derived from
// GaussianRadiusMultiple and cannot be set directly.
func (g *GridMaker) FinalRadiusMultiple() float64 { return g.finalRadiusMultiple }

// GridDims returns the per-axis voxel count. The grid is always cubic, so
// all three dimensions are equal.
func (g *GridMaker) GridDims() (int, int, int) { return g.dim, g.dim, g.dim }

// GridOrigin returns the Cartesian coordinate of voxel (0,0,0) given the
// grid's center.
func (g *GridMaker) GridOrigin(center [3]float64) [3]float64 {
	half := g.dimension / 2
	return [3]float64{center[0] - half, center[1] - half, center[2] - half}
}

// RadiusMultiple returns radius_scale * final_radius_multiple, the factor
// that turns an atom's raw van der Waals radius into the real-space cutoff
// distance beyond which the atom contributes nothing to the grid.
func (g *GridMaker) RadiusMultiple() float64 { return g.radiusScale * g.finalRadiusMultiple }
