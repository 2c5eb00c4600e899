/*
 * v3.go, part of curview.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, i.e. a Nx3 dense matrix where each
//row holds the cartesian coordinates of one point.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum dense matrix into a v3.Matrix. It panics if the
//matrix does not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic("v3: only 3-column matrices can hold coordinates")
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, fmt.Errorf("v3.NewMatrix: input slice length %d not divisible by %d", l, cols)
	}
	if rows == 0 {
		return nil, fmt.Errorf("v3.NewMatrix: empty data")
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-initialized Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NVecs returns the number of vectors in the Matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the i-th vector of the matrix. Changes in the
//view are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	return &Matrix{F.Slice(i, i+1, 0, 3).(*mat.Dense)}
}

//Row returns the i-th vector as a slice. If dst is non-nil and has length 3
//it is used to store the result.
func (F *Matrix) Row(dst []float64, i int) []float64 {
	if dst == nil || len(dst) != 3 {
		dst = make([]float64, 3)
	}
	for j := 0; j < 3; j++ {
		dst[j] = F.At(i, j)
	}
	return dst
}

//Sub puts the element-wise difference a-b in the receiver.
func (F *Matrix) Sub(a, b *Matrix) {
	F.Dense.Sub(a.Dense, b.Dense)
}

//Add puts the element-wise sum a+b in the receiver.
func (F *Matrix) Add(a, b *Matrix) {
	F.Dense.Add(a.Dense, b.Dense)
}

//Scale puts the matrix a scaled by v in the receiver.
func (F *Matrix) Scale(v float64, a *Matrix) {
	F.Dense.Scale(v, a.Dense)
}

//Copy returns a copy of the matrix.
func (F *Matrix) Copy() *Matrix {
	r := Zeros(F.NVecs())
	r.Dense.Copy(F.Dense)
	return r
}

//Norm returns the Frobenius norm of the matrix, which for a single vector
//is its euclidean length.
func (F *Matrix) Norm(i float64) float64 {
	return mat.Norm(F.Dense, i)
}

//Unit puts in the receiver the unit vector pointing in the direction of a.
//It returns an error if a has (numerically) zero length.
func (F *Matrix) Unit(a *Matrix) error {
	n := a.Norm(2)
	if n <= 1e-12 {
		return fmt.Errorf("v3.Unit: vector of zero length")
	}
	F.Scale(1/n, a)
	return nil
}

//Dot returns the dot product of the vectors a and b. Both must have one row.
func Dot(a, b *Matrix) float64 {
	if a.NVecs() != 1 || b.NVecs() != 1 {
		panic("v3.Dot: only implemented for single vectors")
	}
	var d float64
	for i := 0; i < 3; i++ {
		d += a.At(0, i) * b.At(0, i)
	}
	return d
}

//Cross puts the cross product of the vectors a and b in the receiver.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic("v3.Cross: only implemented for single vectors")
	}
	c0 := a.At(0, 1)*b.At(0, 2) - a.At(0, 2)*b.At(0, 1)
	c1 := a.At(0, 2)*b.At(0, 0) - a.At(0, 0)*b.At(0, 2)
	c2 := a.At(0, 0)*b.At(0, 1) - a.At(0, 1)*b.At(0, 0)
	F.Set(0, 0, c0)
	F.Set(0, 1, c1)
	F.Set(0, 2, c2)
}

//Angle returns the angle between the vectors v1 and v2, in radians.
func Angle(v1, v2 *Matrix) float64 {
	n := v1.Norm(2) * v2.Norm(2)
	if n == 0 {
		return 0
	}
	c := Dot(v1, v2) / n
	//Clamp to avoid NaNs from rounding right at +/-1.
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c)
}
