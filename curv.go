/*
 * curv.go, part of curview.
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
	"github.com/gvallverdu/curview/dataset"
)

//DataColumns is the ordered set of per-atom columns produced by Analyze.
//"custom" starts zero-filled and is meant for manual edits.
var DataColumns = []string{
	dataset.IndexColumn,
	dataset.SpeciesColumn,
	"pyrA",
	"angular_defect",
	"n_star_A",
	"spherical_curvature",
	"improper",
	"pyr_distance",
	"hybridization",
	"m",
	"n",
	"c_pi^2",
	"lambda_pi^2",
	"ave_neighb_dist",
	"custom",
}

//Analyze computes every local curvature descriptor for every atom of the
//molecule and returns them as a dataset with the DataColumns columns.
//Bonds are assigned first unless the molecule already has some.
func Analyze(mol *Molecule) (*dataset.Dataset, error) {
	if mol.Len() == 0 {
		return nil, &Error{msg: "Analyze: empty molecule"}
	}
	bonded := false
	for _, at := range mol.Atoms {
		if len(at.Bonds) > 0 {
			bonded = true
			break
		}
	}
	if !bonded {
		if err := AssignBonds(mol); err != nil {
			return nil, errDecorate(err, "Analyze")
		}
	}
	n := mol.Len()
	cols := map[string][]float64{}
	for _, name := range DataColumns {
		if name == dataset.SpeciesColumn {
			continue
		}
		cols[name] = make([]float64, n)
	}
	species := make([]string, n)
	for i := 0; i < n; i++ {
		v := VertexFor(mol, i)
		species[i] = mol.Atom(i).Symbol
		cols[dataset.IndexColumn][i] = float64(i)
		cols["pyrA"][i] = v.PyrA()
		cols["angular_defect"][i] = v.AngularDefect()
		cols["n_star_A"][i] = float64(v.NStar())
		cols["spherical_curvature"][i] = v.SphericalCurvature()
		cols["improper"][i] = v.Improper()
		cols["pyr_distance"][i] = v.PyrDistance()
		cols["hybridization"][i] = v.Hybridization()
		cols["m"][i] = v.M()
		cols["n"][i] = v.N()
		cols["c_pi^2"][i] = v.CPi2()
		cols["lambda_pi^2"][i] = v.LambdaPi2()
		cols["ave_neighb_dist"][i] = v.AveNeighbDist()
		cols["custom"][i] = 0
	}
	data := dataset.New(n)
	for _, name := range DataColumns {
		if name == dataset.SpeciesColumn {
			if err := data.SetSpecies(species); err != nil {
				return nil, errDecorate(err, "Analyze")
			}
			continue
		}
		if err := data.AddColumn(name, cols[name]); err != nil {
			return nil, errDecorate(err, "Analyze")
		}
	}
	return data, nil
}
