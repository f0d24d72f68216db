/*
 * random.go, part of molgrid.
 */

package transform

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random builds a Transform centered at center with a uniform translation
// jitter of up to maxTranslation Angstrom per axis and, if rotate is true,
// a rotation about a uniformly sampled axis by an angle drawn uniformly
// from [0, 2*pi). src supplies all randomness; this
// package owns only the sampling distributions, not the RNG itself, so
// callers control reproducibility by seeding src themselves.
func Random(center [3]float64, maxTranslation float64, rotate bool, src *rand.Rand) *Transform {
	jitter := distuv.Uniform{Min: -maxTranslation, Max: maxTranslation, Src: randSource{src}}
	translation := [3]float64{jitter.Rand(), jitter.Rand(), jitter.Rand()}

	t := &Transform{Center: center, Translation: translation}
	if !rotate {
		return t
	}

	// A uniformly random rotation axis is a uniformly random point on the
	// unit sphere, obtained by normalizing three independent standard
	// normal draws.
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: randSource{src}}
	axis := r3.Unit(r3.Vec{X: normal.Rand(), Y: normal.Rand(), Z: normal.Rand()})

	angleDist := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: randSource{src}}
	t.Axis = axis
	t.Angle = angleDist.Rand()
	return t
}

// randSource adapts a *math/rand.Rand to the Uint64/Seed(uint64) source
// interface that distuv's Src field takes.
type randSource struct{ r *rand.Rand }

func (s randSource) Uint64() uint64 { return s.r.Uint64() }

func (s randSource) Seed(seed uint64) { s.r.Seed(int64(seed)) }
