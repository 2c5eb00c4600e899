/*
 * vertex.go, part of curview.
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
	"math"
	"sort"

	v3 "github.com/gvallverdu/curview/v3"
)

//Vertex is an atom A together with the coordinates of its bonded
//neighbors, star(A). All the local curvature descriptors are methods of
//Vertex. Descriptors that are not defined for the size of the star return
//NaN, which the serialization layers map to null/empty values.
type Vertex struct {
	a    *v3.Matrix //1x3, the vertex atom
	star *v3.Matrix //Nx3, the bonded neighbors
}

//NewVertex returns a Vertex from the coordinates of the atom a and of its
//bonded neighbors. star may be nil or empty for an isolated atom.
func NewVertex(a, star *v3.Matrix) *Vertex {
	return &Vertex{a: a, star: star}
}

//VertexFor builds the Vertex for the i-th atom of mol from its assigned
//bonds. AssignBonds must have been called on the molecule.
func VertexFor(mol *Molecule, i int) *Vertex {
	at := mol.Atom(i)
	nb := Neighbors(at)
	if len(nb) == 0 {
		return &Vertex{a: mol.Coord(i)}
	}
	star := v3.Zeros(len(nb))
	for k, n := range nb {
		for j := 0; j < 3; j++ {
			star.Set(k, j, mol.Coords.At(n.Index, j))
		}
	}
	return &Vertex{a: mol.Coord(i), star: star}
}

//NStar returns the number of atoms bonded to the vertex atom.
func (V *Vertex) NStar() int {
	if V.star == nil {
		return 0
	}
	return V.star.NVecs()
}

//AveNeighbDist returns the average distance between the vertex atom and
//its neighbors. NaN for an isolated atom.
func (V *Vertex) AveNeighbDist() float64 {
	n := V.NStar()
	if n == 0 {
		return math.NaN()
	}
	d := v3.Zeros(1)
	var tot float64
	for i := 0; i < n; i++ {
		d.Sub(V.star.VecView(i), V.a)
		tot += d.Norm(2)
	}
	return tot / float64(n)
}

//unitBonds returns the unit vectors pointing from A to each neighbor.
func (V *Vertex) unitBonds() []*v3.Matrix {
	n := V.NStar()
	u := make([]*v3.Matrix, n)
	for i := 0; i < n; i++ {
		d := v3.Zeros(1)
		d.Sub(V.star.VecView(i), V.a)
		d.Unit(d)
		u[i] = d
	}
	return u
}

//regStar returns the regularized star: each neighbor moved to unit
//distance from A along its bond direction.
func (V *Vertex) regStar() *v3.Matrix {
	u := V.unitBonds()
	reg := v3.Zeros(len(u))
	for i, v := range u {
		for j := 0; j < 3; j++ {
			reg.Set(i, j, V.a.At(0, j)+v.At(0, j))
		}
	}
	return reg
}

//poav returns the unit pi-orbital axis vector: the normal to the plane
//fitted to the regularized star, oriented away from the neighbors.
//An error is returned for stars with less than 3 atoms.
func (V *Vertex) poav() (*v3.Matrix, error) {
	if V.NStar() < 3 {
		return nil, &Error{msg: "poav: at least 3 neighbors needed"}
	}
	normal, err := planeNormal(V.regStar())
	if err != nil {
		return nil, errDecorate(err, "poav")
	}
	//orient the normal towards the side of A opposite to the star
	mean := v3.Zeros(1)
	for _, u := range V.unitBonds() {
		mean.Add(mean, u)
	}
	if v3.Dot(normal, mean) > 0 {
		normal.Scale(-1, normal)
	}
	return normal, nil
}

//PyrA returns the POAV1 pyramidalization angle in degrees: the mean angle
//between the pi-orbital axis vector and the bonds, minus 90. Zero for a
//planar vertex, positive for a pyramidalized one. NaN when the vertex has
//less than 3 neighbors.
func (V *Vertex) PyrA() float64 {
	p, err := V.poav()
	if err != nil {
		return math.NaN()
	}
	var tot float64
	u := V.unitBonds()
	for _, v := range u {
		tot += v3.Angle(p, v)
	}
	return rad2deg(tot/float64(len(u))) - 90
}

//AngularDefect returns the angular defect at the vertex in degrees:
//360 minus the sum of the angles between successive bonds, the bonds being
//ordered by azimuth around the pi-orbital axis. The angular defect is a
//discrete measure of the Gaussian curvature at the vertex. NaN when the
//vertex has less than 3 neighbors.
func (V *Vertex) AngularDefect() float64 {
	p, err := V.poav()
	if err != nil {
		return math.NaN()
	}
	u := V.unitBonds()
	//in-plane basis to measure azimuths
	e1 := v3.Zeros(1)
	ref, _ := v3.NewMatrix([]float64{1, 0, 0})
	if math.Abs(v3.Dot(p, ref)) > 0.9 {
		ref, _ = v3.NewMatrix([]float64{0, 1, 0})
	}
	e1.Cross(p, ref)
	e1.Unit(e1)
	e2 := v3.Zeros(1)
	e2.Cross(p, e1)
	type azim struct {
		phi float64
		u   *v3.Matrix
	}
	az := make([]azim, len(u))
	for i, v := range u {
		az[i] = azim{math.Atan2(v3.Dot(v, e2), v3.Dot(v, e1)), v}
	}
	sort.Slice(az, func(i, j int) bool { return az[i].phi < az[j].phi })
	var sum float64
	for i := range az {
		next := az[(i+1)%len(az)]
		sum += v3.Angle(az[i].u, next.u)
	}
	return 360 - rad2deg(sum)
}

//Improper returns the improper angle at a trivalent vertex in degrees: the
//dihedral angle i-A-j-k over the star atoms, which is 180 in absolute
//value for a planar vertex. NaN when the vertex is not trivalent.
func (V *Vertex) Improper() float64 {
	if V.NStar() != 3 {
		return math.NaN()
	}
	return rad2deg(Dihedral(V.star.VecView(0), V.a, V.star.VecView(1), V.star.VecView(2)))
}

//PyrDistance returns the distance from the vertex atom to the
//least-squares plane of its (non-regularized) neighbors, in angstrom.
//NaN when the vertex has less than 3 neighbors.
func (V *Vertex) PyrDistance() float64 {
	if V.NStar() < 3 {
		return math.NaN()
	}
	normal, err := planeNormal(V.star)
	if err != nil {
		return math.NaN()
	}
	//any star point works as plane origin for an exact-fit plane; for a
	//least-squares plane the centroid is the right origin.
	centroid := v3.Zeros(1)
	for i := 0; i < V.star.NVecs(); i++ {
		centroid.Add(centroid, V.star.VecView(i))
	}
	centroid.Scale(1/float64(V.star.NVecs()), centroid)
	return distanceToPlane(V.a, centroid, normal)
}

//SphericalCurvature returns the signed curvature 1/R of the sphere passing
//through the vertex atom and its three neighbors. The curvature is
//positive when the sphere center lies opposite to the pi-orbital axis
//(convex vertex, as in a fullerene). NaN for non-trivalent vertices and
//for a planar star, where the sphere degenerates to a plane.
func (V *Vertex) SphericalCurvature() float64 {
	if V.NStar() != 3 {
		return math.NaN()
	}
	center, err := sphereThrough(V.a, V.star.VecView(0), V.star.VecView(1), V.star.VecView(2))
	if err != nil {
		return math.NaN()
	}
	ca := v3.Zeros(1)
	ca.Sub(center, V.a)
	r := ca.Norm(2)
	if r == 0 {
		return math.NaN()
	}
	p, err := V.poav()
	if err != nil {
		return math.NaN()
	}
	k := 1 / r
	if v3.Dot(ca, p) > 0 {
		k = -k
	}
	return k
}

//POAV1 hybridization numbers. All of these are closed forms in the
//pyramidalization angle and propagate its NaN.

//CPi2 returns the squared coefficient of the s atomic orbital in the
//h_pi hybrid orbital: c_pi^2 = 2 tan^2(pyrA).
func (V *Vertex) CPi2() float64 {
	t := math.Tan(deg2rad(V.PyrA()))
	return 2 * t * t
}

//LambdaPi2 returns the squared coefficient of the p_pi atomic orbital in
//the h_pi hybrid orbital: lambda_pi^2 = 1 - c_pi^2.
func (V *Vertex) LambdaPi2() float64 {
	return 1 - V.CPi2()
}

//M returns m = (c_pi / lambda_pi)^2.
func (V *Vertex) M() float64 {
	return V.CPi2() / V.LambdaPi2()
}

//N returns n = 3m + 2, the sigma-orbital hybridization number: the sigma
//system is s p^n. A planar trivalent vertex gives n = 2, i.e. sp2.
func (V *Vertex) N() float64 {
	return 3*V.M() + 2
}

//Hybridization returns Haddon's n-tilde: the total amount of p_z atomic
//orbital transferred into the sigma system upon pyramidalization,
//3m/(n+1).
func (V *Vertex) Hybridization() float64 {
	return 3 * V.M() / (V.N() + 1)
}

func rad2deg(f float64) float64 {
	return f * 180 / math.Pi
}

func deg2rad(f float64) float64 {
	return f * math.Pi / 180
}
