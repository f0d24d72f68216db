/*
 * forward.go, part of molgrid.
 */

package grid

import "math"

// Forward rasterizes cs into out, which must already be allocated with
// shape types x dim x dim x dim (types being the number of channels the
// caller wants; for indexed typing this is the caller's type-scheme size,
// for vector typing it must equal cs.TypeVector.T) and the grid's
// configured dim. center is the Cartesian center of the grid; out is
// zeroed before rasterizing.
//
// In indexed-typing mode, atom n contributes its density to channel
// cs.TypeIndex[n] only (a negative index skips the atom entirely). In
// vector-typing mode, atom n contributes density * cs.TypeVector.At(n, t)
// to every channel t. In binary mode the grid records atom presence (the
// per-voxel max of 1 where any atom's density reaches 0.5, else 0) instead
// of summed density.
func (g *GridMaker) Forward(center [3]float64, cs *CoordinateSet, out *DensityGrid) error {
	if err := cs.validate(); err != nil {
		return err
	}
	if err := checkStorage(cs.Location, out.Location); err != nil {
		return err
	}
	if out.Dim != g.dim {
		return newError(ShapeMismatch, "output grid has dim %d, grid maker is configured for dim %d", out.Dim, g.dim)
	}
	if cs.Indexed() && out.Types < 1 {
		return newError(ShapeMismatch, "output grid must have at least one type channel")
	}
	if !cs.Indexed() && out.Types != cs.TypeVector.T {
		return newError(ShapeMismatch, "output grid has %d type channels but coordinate set has %d", out.Types, cs.TypeVector.T)
	}

	out.Zero()
	origin := g.GridOrigin(center)
	n := cs.N()

	rasterAtom := func(atom int, dst *DensityGrid) {
		g.rasterizeAtom(cs, atom, origin, dst)
	}

	merge := func(dst, src *DensityGrid) {
		if g.binary {
			for i := range dst.Data {
				if src.Data[i] > dst.Data[i] {
					dst.Data[i] = src.Data[i]
				}
			}
		} else {
			for i := range dst.Data {
				dst.Data[i] += src.Data[i]
			}
		}
	}

	newLocal := func() *DensityGrid {
		return NewDensityGrid(out.Types, out.Dim, out.Location)
	}

	forEachAtomAccumulate(cs.Location, n, out, newLocal, rasterAtom, merge)
	return nil
}

// rasterizeAtom adds (or, in binary mode, maxes in) one atom's density
// contribution over its axis-aligned bounding box into dst.
func (g *GridMaker) rasterizeAtom(cs *CoordinateSet, atom int, origin [3]float64, dst *DensityGrid) {
	var center [3]float64
	row := cs.Coords.Row(nil, atom)
	center[0], center[1], center[2] = row[0], row[1], row[2]

	baseR := cs.Radii[atom]
	if baseR <= 0 {
		return
	}
	r := g.radiusScale * baseR

	channels := g.atomChannels(cs, atom, dst.Types)
	if len(channels) == 0 {
		return
	}

	lo, hi := g.atomBounds(center, origin, r)
	if boxEmpty(lo, hi) {
		return
	}

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
				dens := g.density(d, r)
				if dens == 0 {
					continue
				}
				for _, ch := range channels {
					v := dens * ch.weight
					if g.binary {
						ind := 0.0
						if v >= 0.5 {
							ind = 1
						}
						if ind > dst.At(ch.t, i, j, k) {
							dst.Set(ch.t, i, j, k, ind)
						}
					} else {
						dst.Set(ch.t, i, j, k, dst.At(ch.t, i, j, k)+v)
					}
				}
			}
		}
	}
}

type weightedChannel struct {
	t      int
	weight float64
}

// atomChannels returns which output channels atom contributes to, and with
// what per-channel weight: a single channel with weight 1 in indexed mode,
// or every channel with its vector weight in vector mode (zero-weight
// channels are skipped). This skip is a safe optimization here: a
// zero-weight channel contributes exactly 0 density (weight * f(d) = 0), so
// Forward can drop it. Backward cannot use this list for its type-gradient
// term - see allChannels.
func (g *GridMaker) atomChannels(cs *CoordinateSet, atom int, types int) []weightedChannel {
	if cs.Indexed() {
		idx := int(cs.TypeIndex[atom])
		if idx < 0 || idx >= types {
			return nil
		}
		return []weightedChannel{{t: idx, weight: 1}}
	}
	out := make([]weightedChannel, 0, cs.TypeVector.T)
	for t := 0; t < cs.TypeVector.T; t++ {
		w := cs.TypeVector.At(atom, t)
		if w == 0 {
			continue
		}
		out = append(out, weightedChannel{t: t, weight: w})
	}
	return out
}

// allChannels is atomChannels without the zero-weight skip: every channel
// in indexed mode's single valid index, or every channel 0..T-1 in vector
// mode regardless of the atom's current weight there. Backward's
// type-gradient accumulation (type_gradients[n][t] += diff*f(d)) does not
// depend on the atom's current weight for channel t, so a zero-weight
// channel still needs to appear here even though its weight correctly
// zeroes out that channel's contribution to the atom's coordinate gradient.
func (g *GridMaker) allChannels(cs *CoordinateSet, atom int, types int) []weightedChannel {
	if cs.Indexed() {
		idx := int(cs.TypeIndex[atom])
		if idx < 0 || idx >= types {
			return nil
		}
		return []weightedChannel{{t: idx, weight: 1}}
	}
	out := make([]weightedChannel, cs.TypeVector.T)
	for t := 0; t < cs.TypeVector.T; t++ {
		out[t] = weightedChannel{t: t, weight: cs.TypeVector.At(atom, t)}
	}
	return out
}
