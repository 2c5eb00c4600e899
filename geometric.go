/*
 * geometric.go, part of curview.
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

package curv

import (
	"fmt"
	"math"

	v3 "github.com/gvallverdu/curview/v3"
	"gonum.org/v1/gonum/mat"
)

//Dihedral calculates the dihedral angle between the points a, b, c and d,
//in radians, in the (-pi, pi] range.
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	all := []*v3.Matrix{a, b, c, d}
	for number, point := range all {
		if point == nil {
			panic(fmt.Sprintf("curv.Dihedral: vector %d is nil", number))
		}
		if point.NVecs() != 1 {
			panic(fmt.Sprintf("curv.Dihedral: vector %d has invalid shape", number))
		}
	}
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bmascaled := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	bmascaled.Scale(cmb.Norm(2), bma)
	v2 := v3.Zeros(1)
	v2.Cross(cmb, dmc)
	first := v3.Dot(bmascaled, v2)
	v1 := v3.Zeros(1)
	v1.Cross(bma, cmb)
	second := v3.Dot(v1, v2)
	return math.Atan2(first, second)
}

//planeNormal returns the unit normal of the least-squares plane of the
//points in coords, as the eigenvector associated with the smallest
//eigenvalue of the covariance matrix of the centered points.
func planeNormal(coords *v3.Matrix) (*v3.Matrix, error) {
	n := coords.NVecs()
	if n < 3 {
		return nil, &Error{msg: "planeNormal: at least 3 points needed to fit a plane"}
	}
	//center of the points
	mean := make([]float64, 3)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			mean[j] += coords.At(i, j) / float64(n)
		}
	}
	cov := mat.NewSymDense(3, nil)
	for i := 0; i < n; i++ {
		var d [3]float64
		for j := 0; j < 3; j++ {
			d[j] = coords.At(i, j) - mean[j]
		}
		for j := 0; j < 3; j++ {
			for k := j; k < 3; k++ {
				cov.SetSym(j, k, cov.At(j, k)+d[j]*d[k])
			}
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(cov, true); !ok {
		return nil, &Error{msg: "planeNormal: eigendecomposition failed"}
	}
	var evecs mat.Dense
	eig.VectorsTo(&evecs)
	//eigenvalues are in ascending order, the first eigenvector is the
	//direction of least variance, i.e. the plane normal.
	normal := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		normal.Set(0, j, evecs.At(j, 0))
	}
	if err := normal.Unit(normal); err != nil {
		return nil, errDecorate(err, "planeNormal")
	}
	return normal, nil
}

//distanceToPlane returns the absolute distance from point to the plane
//through origin (a point on the plane) with the given unit normal.
func distanceToPlane(point, origin, normal *v3.Matrix) float64 {
	d := v3.Zeros(1)
	d.Sub(point, origin)
	return math.Abs(v3.Dot(d, normal))
}

//sphereThrough returns the center of the sphere passing through the four
//points a, p1, p2 and p3. It returns an error when the points are
//(numerically) coplanar, as the linear system becomes singular.
func sphereThrough(a, p1, p2, p3 *v3.Matrix) (*v3.Matrix, error) {
	pts := []*v3.Matrix{p1, p2, p3}
	A := mat.NewDense(3, 3, nil)
	b := mat.NewVecDense(3, nil)
	norm2 := func(p *v3.Matrix) float64 {
		return p.At(0, 0)*p.At(0, 0) + p.At(0, 1)*p.At(0, 1) + p.At(0, 2)*p.At(0, 2)
	}
	na := norm2(a)
	for i, p := range pts {
		for j := 0; j < 3; j++ {
			A.Set(i, j, 2*(p.At(0, j)-a.At(0, j)))
		}
		b.SetVec(i, norm2(p)-na)
	}
	var c mat.VecDense
	if err := c.SolveVec(A, b); err != nil {
		return nil, &Error{msg: "sphereThrough: points are coplanar"}
	}
	center := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		center.Set(0, j, c.AtVec(j))
	}
	return center, nil
}
