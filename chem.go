/*
 * chem.go, part of curview.
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

	v3 "github.com/gvallverdu/curview/v3"
)

//Atom contains the per-atom data read from a structure file, except for the
//coordinates, which live in a matrix owned by the Molecule.
type Atom struct {
	Index  int //position of the atom in the molecule, starting from 0
	Symbol string
	Mass   float64
	Bonds  []*Bond
}

//Copy returns a copy of the Atom. Bonds are not copied, as they reference
//other atoms.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("curv: attempted to copy a nil atom")
	}
	return &Atom{Index: A.Index, Symbol: A.Symbol, Mass: A.Mass}
}

//Molecule contains the atoms of a single-frame structure together with
//their cartesian coordinates, in angstrom.
type Molecule struct {
	Name   string
	Atoms  []*Atom
	Coords *v3.Matrix
}

//NewMolecule makes a molecule from atoms and coordinates. It returns an
//error if either is nil or if their sizes are inconsistent.
func NewMolecule(name string, atoms []*Atom, coords *v3.Matrix) (*Molecule, error) {
	if atoms == nil {
		return nil, &Error{msg: "NewMolecule: nil atoms"}
	}
	if coords == nil {
		return nil, &Error{msg: "NewMolecule: nil coordinates"}
	}
	if len(atoms) != coords.NVecs() {
		return nil, &Error{msg: fmt.Sprintf("NewMolecule: %d atoms but %d coordinate vectors", len(atoms), coords.NVecs())}
	}
	mol := &Molecule{Name: name, Atoms: atoms, Coords: coords}
	mol.FillIndexes()
	return mol, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the atom at index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("curv: requested atom out of bounds")
	}
	return M.Atoms[i]
}

//Coord returns a view of the coordinates of the i-th atom.
func (M *Molecule) Coord(i int) *v3.Matrix {
	return M.Coords.VecView(i)
}

//FillIndexes sets the Index field of every atom to its current position.
func (M *Molecule) FillIndexes() {
	for i, at := range M.Atoms {
		at.Index = i
	}
}

//BondList returns every bond of the molecule exactly once, ordered by
//bond index.
func (M *Molecule) BondList() []*Bond {
	seen := make(map[int]bool)
	bonds := make([]*Bond, 0, M.Len())
	for _, at := range M.Atoms {
		for _, b := range at.Bonds {
			if !seen[b.Index] {
				seen[b.Index] = true
				bonds = append(bonds, b)
			}
		}
	}
	return bonds
}
