/*
 * atomicdata.go, part of curview.
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

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"B":  10.81,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31 in the reference. A longer radius doesn't hurt H,
	// as extra bonds get eliminated by the max-bond pruning.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Se": 1.2,
	"K":  2.03,
	"Ca": 1.76,
	"Mg": 1.41,
	"Cl": 1.02,
	"Na": 1.66,
	"Cu": 1.32,
	"Zn": 1.22,
	"Co": 1.5,  //hs
	"Fe": 1.52, //hs
	"Mn": 1.61, //hs
	"Cr": 1.39,
	"Si": 1.11,
	"B":  0.84,
	"Be": 0.96,
	"F":  0.57,
	"Br": 1.2,
	"I":  1.39,
}

//A map for checking that atoms don't have too many bonds. A value of 0
//means undefined, i.e. that the atom shouldn't be checked for max bonds.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"N":  0, //undefined
	"P":  0,
	"S":  0,
	"Se": 0,
	"B":  0,
	"Be": 0,
	"F":  1,
	"Br": 1,
	"I":  1,
}

//Jmol display colors per element, used by the structure viewer when no
//data column is mapped on the atoms.
var symbolColor = map[string]string{
	"H":  "#FFFFFF",
	"C":  "#909090",
	"N":  "#3050F8",
	"O":  "#FF0D0D",
	"F":  "#90E050",
	"Na": "#AB5CF2",
	"Mg": "#8AFF00",
	"P":  "#FF8000",
	"S":  "#FFFF30",
	"Cl": "#1FF01F",
	"K":  "#8F40D4",
	"Ca": "#3DFF00",
	"Cr": "#8A99C7",
	"Mn": "#9C7AC7",
	"Fe": "#E06633",
	"Co": "#F090A0",
	"Cu": "#C88033",
	"Zn": "#7D80B0",
	"Se": "#FFA100",
	"Br": "#A62929",
	"I":  "#940094",
	"B":  "#FFB5B5",
	"Si": "#F0C8A0",
	"Be": "#C2FF00",
}

//SymbolColor returns the Jmol display color for an element, or black if
//the element is not in the table.
func SymbolColor(symbol string) string {
	if c, ok := symbolColor[symbol]; ok {
		return c
	}
	return "#000000"
}

//SymbolColors returns a copy of the Jmol element color table. The web
//layer may override entries from a user-provided YAML file.
func SymbolColors() map[string]string {
	r := make(map[string]string, len(symbolColor))
	for k, v := range symbolColor {
		r[k] = v
	}
	return r
}
