/*
 * transform.go, part of molgrid.
 */

package transform

import (
	"gonum.org/v1/gonum/spatial/r3"

	v3 "github.com/rmera/molgrid/v3"
)

// Transform bundles a center, a rotation (axis + angle in radians, identity
// when Angle is zero) and a translation. Forward applies rotation about
// Center followed by Translation to a set of coordinates; Backward applies
// only the inverse rotation to a set of gradients, since a rigid
// translation does not change a gradient.
type Transform struct {
	Center      [3]float64
	Translation [3]float64
	Axis        r3.Vec
	Angle       float64
}

// Identity returns a Transform centered at center that changes nothing.
func Identity(center [3]float64) *Transform {
	return &Transform{Center: center}
}

// New builds a Transform from an explicit center, translation, rotation
// axis and angle (radians). A zero axis or zero angle means no rotation.
func New(center, translation [3]float64, axis r3.Vec, angle float64) *Transform {
	return &Transform{Center: center, Translation: translation, Axis: axis, Angle: angle}
}

func (t *Transform) rotate(v r3.Vec, inverse bool) r3.Vec {
	if t.Angle == 0 || (t.Axis == r3.Vec{}) {
		return v
	}
	angle := t.Angle
	if inverse {
		angle = -angle
	}
	return r3.Rotate(v, angle, r3.Unit(t.Axis))
}

// Forward writes into out the result of rotating in about Center and then
// translating by Translation. in and out may be the same Matrix.
func (t *Transform) Forward(in, out *v3.Matrix) error {
	n := in.NVecs()
	if out.NVecs() != n {
		return Error{"transform: Forward: in/out vector count mismatch", nil, true}
	}
	row := make([]float64, 3)
	for i := 0; i < n; i++ {
		in.Row(row, i)
		centered := r3.Vec{X: row[0] - t.Center[0], Y: row[1] - t.Center[1], Z: row[2] - t.Center[2]}
		rotated := t.rotate(centered, false)
		out.Set(i, 0, rotated.X+t.Center[0]+t.Translation[0])
		out.Set(i, 1, rotated.Y+t.Center[1]+t.Translation[1])
		out.Set(i, 2, rotated.Z+t.Center[2]+t.Translation[2])
	}
	return nil
}

// Backward writes into out the result of un-rotating grad: a gradient
// vector at a rotated point maps back through the inverse rotation only,
// since the translation component of Forward is a constant shift and
// contributes nothing to a gradient. grad and out may be the same Matrix.
func (t *Transform) Backward(grad, out *v3.Matrix) error {
	n := grad.NVecs()
	if out.NVecs() != n {
		return Error{"transform: Backward: in/out vector count mismatch", nil, true}
	}
	row := make([]float64, 3)
	for i := 0; i < n; i++ {
		grad.Row(row, i)
		v := r3.Vec{X: row[0], Y: row[1], Z: row[2]}
		back := t.rotate(v, true)
		out.Set(i, 0, back.X)
		out.Set(i, 1, back.Y)
		out.Set(i, 2, back.Z)
	}
	return nil
}
