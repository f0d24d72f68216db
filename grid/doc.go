/*
 * doc.go, part of molgrid.
 */

/*Package grid rasterizes atoms into a dense 4D density grid, and carries
gradients back in both directions.

A GridMaker holds the geometry of the grid (resolution, side length, the
radius multiples that shape the per-atom density kernel) and the three
operations that move data across the atoms/grid boundary:

	Forward            atoms -> density grid
	Backward           upstream grid gradient -> per-atom coordinate (and,
	                   in vector-typing mode, per-atom type) gradient
	BackwardRelevance  grid-shaped relevance -> per-atom relevance

Each operation can run on the Host (a single goroutine, atoms in order) or
on a simulated Device (a pool of goroutines, one per available CPU). On the
Device, Forward gives each goroutine a contiguous range of atoms and its own
partial grid, then sums (or, in binary mode, maxes) the partial grids in a
fixed order, so its summation order differs from the Host's. The two agree
within tolerance, not necessarily bit for bit, as a real GPU accumulation
path would - a goroutine pool stands in for the missing GPU here.

grid does not know how atoms are typed, how examples are batched, or how
coordinates are read from a file - CoordinateSet is the seam where that
data crosses in from outside the package.
*/
package grid
