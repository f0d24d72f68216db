/*
 * parallel.go, part of molgrid.
 *
 * The Host/Device split below follows the same goroutine-worker-pool idiom
 * gochem's solv package used for walking trajectory frames concurrently:
 * a fixed pool of workers. forEachAtom feeds its workers from one shared
 * channel of atom indices; forEachAtomAccumulate hands each worker one
 * contiguous range of atoms. Here the "frames" are atom indices instead
 * of trajectory frames, and the pool stands in for a GPU's data-parallel
 * execution: the two paths are required to agree within tolerance, not
 * necessarily bit for bit, because accumulation order differs.
 */

package grid

import (
	"runtime"

	"gonum.org/v1/gonum/floats/scalar"
)

// forEachAtom calls work(atomIndex) for every atom in [0, n), either on the
// calling goroutine (loc == Host) or spread across a runtime.NumCPU()-sized
// worker pool (loc == Device). work must be safe to call concurrently with
// itself when loc == Device; work that accumulates into a shared grid goes
// through forEachAtomAccumulate instead.
func forEachAtom(loc Location, n int, work func(atom int)) {
	if loc == Host || n <= 1 {
		for i := 0; i < n; i++ {
			work(i)
		}
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	done := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		go func() {
			for atom := range jobs {
				work(atom)
			}
			done <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ {
		<-done
	}
}

// forEachAtomAccumulate is forEachAtom's counterpart for work that writes
// into a shared DensityGrid at voxels that different atoms can overlap.
// On the Host path, work accumulates directly into dst. On the Device
// path, the atom range is split into one contiguous chunk per worker, each
// worker accumulates into its own freshly allocated grid (newLocal), and
// the partial grids are merged into dst with merge once every worker is
// done - so no voxel is ever written by two goroutines at once, and the
// only behavioral difference from Host is the order partial sums (or
// maxes) are combined in.
func forEachAtomAccumulate(loc Location, n int, dst *DensityGrid, newLocal func() *DensityGrid, work func(atom int, g *DensityGrid), merge func(dst, src *DensityGrid)) {
	if loc == Host || n <= 1 {
		for i := 0; i < n; i++ {
			work(i, dst)
		}
		return
	}

	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	partials := make([]*DensityGrid, workers)
	done := make(chan int, workers)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			done <- w
			continue
		}
		partials[w] = newLocal()
		go func(w, lo, hi int) {
			local := partials[w]
			for i := lo; i < hi; i++ {
				work(i, local)
			}
			done <- w
		}(w, lo, hi)
	}
	for i := 0; i < workers; i++ {
		<-done
	}
	for _, p := range partials {
		if p != nil {
			merge(dst, p)
		}
	}
}

// checkStorage returns a StorageMismatch error if any of the given tensors
// disagree on Location. A call mixing Host and Device tensors has no
// well-defined accumulation order, so it is rejected synchronously instead
// of silently picking one.
func checkStorage(locs ...Location) error {
	for i := 1; i < len(locs); i++ {
		if locs[i] != locs[0] {
			return newError(StorageMismatch, "got both %s and %s tensors in the same call", locs[0], locs[i])
		}
	}
	return nil
}

// SameWithinTolerance reports whether two grids of the same shape agree at
// every voxel within an absolute-or-relative tolerance, the comparison the
// host/device parity property needs (accumulation order differs between
// the two paths, so exact equality is never the right check).
func SameWithinTolerance(a, b *DensityGrid, tol float64) bool {
	if !a.sameShape(b) {
		return false
	}
	for i := range a.Data {
		if !scalar.EqualWithinAbsOrRel(a.Data[i], b.Data[i], tol, tol) {
			return false
		}
	}
	return true
}
