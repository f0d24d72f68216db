/*
 * matrix.go, part of molgrid.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a set of vectors in 3D space: always N rows by 3 columns, one
// row per point. It wraps gonum.org/v1/gonum/mat.Dense instead of the
// legacy gonum/matrix/mat64 + cblas pairing molgrid used to depend on -
// modern gonum ships its own pure-Go blas/lapack, so there is no cgo backend
// to register anymore.
type Matrix struct {
	*mat.Dense
}

// Zeros returns a zero-filled Matrix with vecs rows.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

// NewMatrix builds a Matrix from a flat, row-major slice of 3*N floats.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols = 3
	if len(data)%cols != 0 {
		return nil, Error{fmt.Sprintf("input slice length %d not divisible by %d", len(data), cols), nil, true}
	}
	rows := len(data) / cols
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

// NVecs returns the number of vectors (rows) in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNot3Col)
	}
	return r
}

// VecView returns a view of the ith vector of F; changes to it are
// reflected in F and vice versa.
func (F *Matrix) VecView(i int) *Matrix {
	v := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{v}
}

// Row fills dst (allocating if nil) with the ith row of F and returns it.
func (F *Matrix) Row(dst []float64, i int) []float64 {
	if dst == nil {
		dst = make([]float64, 3)
	}
	mat.Row(dst, i, F.Dense)
	return dst
}

// Copy copies A into the receiver, which must have the same shape.
func (F *Matrix) Copy(A *Matrix) {
	F.Dense.Copy(A.Dense)
}

// Scale sets the receiver to c*A.
func (F *Matrix) Scale(c float64, A *Matrix) {
	F.Dense.Scale(c, A.Dense)
}

// AddVec adds the single row vector "vec" to every row of A, storing the
// result in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	ar, ac := A.Dims()
	vr, vc := vec.Dims()
	if vr != 1 || vc != ac {
		panic(ErrShape)
	}
	if F != A {
		F.Copy(A)
	}
	row := make([]float64, ac)
	vec.Row(row, 0)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			F.Set(i, j, F.At(i, j)+row[j])
		}
	}
}

// SubVec subtracts the single row vector "vec" from every row of A, storing
// the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	neg := Zeros(1)
	neg.Scale(-1, vec)
	F.AddVec(A, neg)
}

// SomeVecs puts, in the receiver, the rows of A indexed by clist, in the
// order given by clist.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	_, ac := A.Dims()
	fr, fc := F.Dims()
	if fc != ac || fr != len(clist) {
		panic(ErrShape)
	}
	row := make([]float64, ac)
	for i, idx := range clist {
		A.Row(row, idx)
		for j, v := range row {
			F.Set(i, j, v)
		}
	}
}

// SetVecs sets, in the receiver, the rows indexed by clist to the
// corresponding rows of A (A[k] goes to receiver[clist[k]]).
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	_, ac := A.Dims()
	_, fc := F.Dims()
	if fc != ac {
		panic(ErrShape)
	}
	row := make([]float64, ac)
	for k, idx := range clist {
		A.Row(row, k)
		for j, v := range row {
			F.Set(idx, j, v)
		}
	}
}

// Mul wraps mat.Dense.Mul, handling the case where the receiver aliases one
// of the arguments (mat.Dense.Mul forbids that unless both operands share
// the receiver's exact type).
func (F *Matrix) Mul(A, B mat.Matrix) {
	if aM, ok := A.(*Matrix); ok && F == aM {
		F.Dense.Mul(aM.Dense, B)
		return
	}
	if bM, ok := B.(*Matrix); ok && F == bM {
		F.Dense.Mul(A, bM.Dense)
		return
	}
	F.Dense.Mul(A, B)
}

// String returns a readable representation of the matrix.
func (F *Matrix) String() string {
	r, _ := F.Dims()
	lines := make([]string, 0, r)
	row := make([]float64, 3)
	for i := 0; i < r; i++ {
		F.Row(row, i)
		lines = append(lines, fmt.Sprintf("%8.3f %8.3f %8.3f", row[0], row[1], row[2]))
	}
	return "[\n" + strings.Join(lines, "\n") + "\n]"
}
