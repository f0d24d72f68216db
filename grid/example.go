/*
 * example.go, part of molgrid.
 *
 * Example and Batch are thin convenience wrappers over CoordinateSet: they
 * pair a set of atoms with the Transform that should be applied before
 * rasterizing, so a caller assembling training batches has something
 * concrete to hand to Forward5D instead of threading transforms through
 * by hand. Assembling the batch itself - which examples go together, how
 * many per batch - stays outside this package.
 */

package grid

import (
	"math/rand"

	"github.com/rmera/molgrid/transform"
	v3 "github.com/rmera/molgrid/v3"
)

// Transformer is the subset of *transform.Transform that Example needs.
// Custom transforms only need to satisfy this interface, not import
// package transform themselves; Forward5D's own random-augmentation knobs
// do use transform.Random directly (see below).
type Transformer interface {
	Forward(in, out *v3.Matrix) error
}

// chainedTransform applies first, then second, to the same coordinates -
// used by Forward5D to compose an example's own transform with an
// additional random jitter without disturbing either one.
type chainedTransform struct {
	first, second Transformer
}

func (c chainedTransform) Forward(in, out *v3.Matrix) error {
	mid := v3.Zeros(in.NVecs())
	if err := c.first.Forward(in, mid); err != nil {
		return err
	}
	return c.second.Forward(mid, out)
}

// Example pairs a CoordinateSet with the transform that should be applied
// to its coordinates before rasterizing. Transform may be nil, meaning
// "rasterize as given, centered at Center".
type Example struct {
	Coords    *CoordinateSet
	Transform Transformer
	Center    [3]float64
}

// Batch is a sequence of examples rasterized together into one 5D (batch x
// type x dim x dim x dim) tensor by Forward5D.
type Batch []Example

// ForwardExample applies ex.Transform (if any) to a copy of ex.Coords'
// coordinates, then rasterizes the result into out, centered at ex.Center.
func (g *GridMaker) ForwardExample(ex Example, out *DensityGrid) error {
	cs := ex.Coords
	if ex.Transform != nil {
		transformed := v3.Zeros(cs.N())
		if err := ex.Transform.Forward(cs.Coords, transformed); err != nil {
			return err
		}
		moved := *cs
		moved.Coords = transformed
		cs = &moved
	}
	return g.Forward(ex.Center, cs, out)
}

// Forward5D rasterizes every example in batch into its own slice of out,
// which must have one *DensityGrid per example, each already allocated
// with this GridMaker's configured dim and the type count the caller
// wants. Examples are rasterized concurrently by a pool of up to
// runtime.NumCPU() goroutines - safe because each example writes only to
// its own output grid, unlike Forward's per-atom accumulation into a
// single grid. Random jitters are all drawn from src on the calling
// goroutine before that.
//
// randomTranslation and randomRotation mirror
// forward(example_batch, out_5d_grid, random_translation, random_rotation):
// when randomTranslation > 0 or randomRotation is true, every example gets
// an additional random jitter (built with transform.Random, composed onto
// its own Transform if it has one) before rasterizing. src supplies the
// randomness; pass src == nil (with randomTranslation == 0 and
// randomRotation == false) to skip augmentation entirely.
func (g *GridMaker) Forward5D(batch Batch, out []*DensityGrid, randomTranslation float64, randomRotation bool, src *rand.Rand) error {
	if len(out) != len(batch) {
		return newError(ShapeMismatch, "batch has %d examples but out has %d grids", len(batch), len(out))
	}
	augment := src != nil && (randomTranslation > 0 || randomRotation)

	// src is a *rand.Rand, which is not safe for concurrent use, so every
	// jitter is drawn here, serially, before the examples are spread out.
	jitters := make([]Transformer, len(batch))
	if augment {
		for i := range batch {
			jitters[i] = transform.Random(batch[i].Center, randomTranslation, randomRotation, src)
		}
	}

	errs := make([]error, len(batch))
	forEachAtom(Device, len(batch), func(i int) {
		ex := batch[i]
		if jitter := jitters[i]; jitter != nil {
			if ex.Transform == nil {
				ex.Transform = jitter
			} else {
				ex.Transform = chainedTransform{first: ex.Transform, second: jitter}
			}
		}
		errs[i] = g.ForwardExample(ex, out[i])
	})
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
