/*
 * xyz.go, part of curview.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	v3 "github.com/gvallverdu/curview/v3"
)

//XYZRead reads an XYZ file and returns a Molecule. The file is expected to
//have the number of atoms in the first line, a title line, and then one
//line per atom with the element symbol and the cartesian coordinates, in
//angstrom.
func XYZRead(xyzname string) (*Molecule, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	defer xyzfile.Close()
	mol, err := XYZReaderRead(xyzfile, xyzname)
	return mol, errDecorate(err, "XYZRead")
}

//XYZReaderRead reads an XYZ-formatted structure from an io.Reader. The
//name is only used for the molecule and for error reporting.
func XYZReaderRead(xyz io.Reader, name string) (*Molecule, error) {
	buf := bufio.NewReader(xyz)
	line, err := buf.ReadString('\n')
	if err != nil {
		return nil, &Error{msg: fmt.Sprintf("XYZReaderRead: ill-formatted XYZ %s: missing atom count", name)}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, &Error{msg: fmt.Sprintf("XYZReaderRead: ill-formatted XYZ %s: bad atom count %q", name, strings.TrimSpace(line))}
	}
	title, err := buf.ReadString('\n')
	if err != nil {
		return nil, &Error{msg: fmt.Sprintf("XYZReaderRead: ill-formatted XYZ %s: missing title line", name)}
	}
	title = strings.TrimSpace(title)
	atoms := make([]*Atom, natoms)
	coords := make([]float64, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &Error{msg: fmt.Sprintf("XYZReaderRead: %s: %v", name, err)}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, &Error{msg: fmt.Sprintf("XYZReaderRead: line %d of %s ill-formed", i+3, name)}
		}
		atoms[i] = &Atom{Index: i, Symbol: fields[0], Mass: symbolMass[fields[0]]}
		for j := 0; j < 3; j++ {
			coords[i*3+j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, &Error{msg: fmt.Sprintf("XYZReaderRead: line %d of %s: bad coordinate %q", i+3, name, fields[j+1])}
			}
		}
	}
	mcoords, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "XYZReaderRead")
	}
	if title == "" {
		title = name
	}
	return &Molecule{Name: title, Atoms: atoms, Coords: mcoords}, nil
}

//XYZWrite writes the molecule mol to an XYZ file with name xyzname, which
//will be created. If the file exists it will be overwritten.
func XYZWrite(xyzname string, mol *Molecule) error {
	out, err := os.Create(xyzname)
	if err != nil {
		return errDecorate(err, "XYZWrite")
	}
	defer out.Close()
	return errDecorate(XYZWriteTo(out, mol), "XYZWrite")
}

//XYZWriteTo writes the molecule mol in XYZ format to the given io.Writer.
func XYZWriteTo(out io.Writer, mol *Molecule) error {
	if mol == nil || mol.Coords == nil {
		return &Error{msg: "XYZWriteTo: nil molecule"}
	}
	if _, err := fmt.Fprintf(out, "%d\n%s\n", mol.Len(), mol.Name); err != nil {
		return errDecorate(err, "XYZWriteTo")
	}
	c := make([]float64, 3)
	for i, at := range mol.Atoms {
		mol.Coords.Row(c, i)
		if _, err := fmt.Fprintf(out, "%-2s  %12.6f  %12.6f  %12.6f\n", at.Symbol, c[0], c[1], c[2]); err != nil {
			return errDecorate(err, "XYZWriteTo")
		}
	}
	return nil
}
