/*
 * bonds.go, part of curview.
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
	"sort"

	v3 "github.com/gvallverdu/curview/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Bond connects two atoms of a molecule.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
}

//Cross returns the atom of the bond that is not origin. It panics if
//origin is not part of the bond, as that got to be a programming error.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin.Index == B.At1.Index {
		return B.At2
	}
	if origin.Index == B.At2.Index {
		return B.At1
	}
	panic("curv: trying to cross a bond: the origin atom given is not present in the bond")
}

//returns a new *Bond slice with the bond with index id removed
func takefromslice(bonds []*Bond, id int) []*Bond {
	newb := make([]*Bond, 0, len(bonds)-1)
	for _, v := range bonds {
		if v.Index != id {
			newb = append(newb, v)
		}
	}
	return newb
}

//removeBond removes b from both of its atoms.
func removeBond(b *Bond) {
	b.At1.Bonds = takefromslice(b.At1.Bonds, b.Index)
	b.At2.Bonds = takefromslice(b.At2.Bonds, b.Index)
}

//AssignBonds assigns bonds to the molecule based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33.
//Two atoms are bonded if their distance is between tooclose and the sum of
//their covalent radii plus a tolerance. Atoms whose element defines a
//maximum number of bonds get their longest extra bonds removed.
//It might get slow for large systems; it's really not thought for
//proteins or macromolecules.
func AssignBonds(mol *Molecule) error {
	var t1, t2 *v3.Matrix
	mol.FillIndexes()
	for _, at := range mol.Atoms {
		at.Bonds = nil
	}
	t3 := v3.Zeros(1)
	tot := mol.Len()
	var nextIndex int
	for i := 0; i < tot; i++ {
		t1 = mol.Coords.VecView(i)
		at1 := mol.Atom(i)
		cov1 := symbolCovrad[at1.Symbol]
		if cov1 == 0 {
			return &Error{msg: fmt.Sprintf("AssignBonds: couldn't find the covalent radius for %s %d", at1.Symbol, i)}
		}
		for j := i + 1; j < tot; j++ {
			t2 = mol.Coords.VecView(j)
			at2 := mol.Atom(j)
			cov2 := symbolCovrad[at2.Symbol]
			if cov2 == 0 {
				return &Error{msg: fmt.Sprintf("AssignBonds: couldn't find the covalent radius for %s %d", at2.Symbol, j)}
			}
			t3.Sub(t2, t1)
			d := t3.Norm(2)
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{Index: nextIndex, Dist: d, At1: at1, At2: at2}
				at1.Bonds = append(at1.Bonds, b)
				at2.Bonds = append(at2.Bonds, b)
				nextIndex++
			}
		}
	}
	//Now we check that no atom has too many bonds.
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //no maximum specified for this element
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			removeBond(at.Bonds[len(at.Bonds)-1]) //we remove the longest bond
		}
	}
	return nil
}

//Neighbors returns the atoms bonded to at, ordered by atom index.
func Neighbors(at *Atom) []*Atom {
	n := make([]*Atom, 0, len(at.Bonds))
	for _, b := range at.Bonds {
		n = append(n, b.Cross(at))
	}
	sort.Slice(n, func(i, j int) bool { return n[i].Index < n[j].Index })
	return n
}
