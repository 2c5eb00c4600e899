/*
 * dataset.go, part of curview.
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

//Package dataset holds per-atom analysis results as an ordered table of
//named columns: one string column for the chemical species and float64
//columns for everything else, with NaN marking undefined values.
package dataset

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

//SpeciesColumn is the name of the only string-valued column.
const SpeciesColumn = "species"

//IndexColumn holds the atom index; it is serialized as an integer.
const IndexColumn = "atom_idx"

//Dataset is a table with one row per atom.
type Dataset struct {
	names   []string //ordered column names
	species []string
	cols    map[string][]float64
	n       int
}

//New returns an empty dataset with n rows.
func New(n int) *Dataset {
	return &Dataset{
		names:   make([]string, 0, 16),
		species: make([]string, n),
		cols:    make(map[string][]float64),
		n:       n,
	}
}

//Len returns the number of rows.
func (D *Dataset) Len() int {
	return D.n
}

//Columns returns the ordered column names, including the species column
//if set.
func (D *Dataset) Columns() []string {
	r := make([]string, len(D.names))
	copy(r, D.names)
	return r
}

//HasColumn reports whether the dataset has a column with this name.
func (D *Dataset) HasColumn(name string) bool {
	if name == SpeciesColumn {
		return containsString(D.names, SpeciesColumn)
	}
	_, ok := D.cols[name]
	return ok
}

//SetSpecies sets the species column. The length must match the dataset.
func (D *Dataset) SetSpecies(species []string) error {
	if len(species) != D.n {
		return fmt.Errorf("dataset.SetSpecies: %d values for %d rows", len(species), D.n)
	}
	if !containsString(D.names, SpeciesColumn) {
		D.names = append(D.names, SpeciesColumn)
	}
	copy(D.species, species)
	return nil
}

//Species returns the species column.
func (D *Dataset) Species() []string {
	r := make([]string, D.n)
	copy(r, D.species)
	return r
}

//AddColumn appends a float column. The length must match the dataset and
//the name must not be taken.
func (D *Dataset) AddColumn(name string, values []float64) error {
	if name == SpeciesColumn {
		return fmt.Errorf("dataset.AddColumn: %q is reserved for the species", name)
	}
	if len(values) != D.n {
		return fmt.Errorf("dataset.AddColumn: %d values for %d rows in column %q", len(values), D.n, name)
	}
	if _, ok := D.cols[name]; ok {
		return fmt.Errorf("dataset.AddColumn: column %q already present", name)
	}
	v := make([]float64, D.n)
	copy(v, values)
	D.names = append(D.names, name)
	D.cols[name] = v
	return nil
}

//Column returns a copy of the named float column.
func (D *Dataset) Column(name string) ([]float64, error) {
	c, ok := D.cols[name]
	if !ok {
		return nil, fmt.Errorf("dataset.Column: no column %q", name)
	}
	r := make([]float64, D.n)
	copy(r, c)
	return r, nil
}

//SetValue sets one cell of a float column. The species column is
//immutable.
func (D *Dataset) SetValue(row int, name string, value float64) error {
	if name == SpeciesColumn {
		return fmt.Errorf("dataset.SetValue: the species column is not editable")
	}
	c, ok := D.cols[name]
	if !ok {
		return fmt.Errorf("dataset.SetValue: no column %q", name)
	}
	if row < 0 || row >= D.n {
		return fmt.Errorf("dataset.SetValue: row %d out of range", row)
	}
	c[row] = value
	return nil
}

//Select returns a new dataset restricted to the given columns, in the
//given order.
func (D *Dataset) Select(names ...string) (*Dataset, error) {
	r := New(D.n)
	for _, name := range names {
		if name == SpeciesColumn {
			if err := r.SetSpecies(D.species); err != nil {
				return nil, err
			}
			continue
		}
		c, err := D.Column(name)
		if err != nil {
			return nil, fmt.Errorf("dataset.Select: %w", err)
		}
		if err := r.AddColumn(name, c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

//Records returns the rows as JSON-friendly maps, column order preserved by
//the caller via Columns. NaNs become nil and the atom index an int.
func (D *Dataset) Records() []map[string]interface{} {
	recs := make([]map[string]interface{}, D.n)
	for i := 0; i < D.n; i++ {
		rec := make(map[string]interface{}, len(D.names))
		for _, name := range D.names {
			if name == SpeciesColumn {
				rec[name] = D.species[i]
				continue
			}
			v := D.cols[name][i]
			switch {
			case math.IsNaN(v):
				rec[name] = nil
			case name == IndexColumn:
				rec[name] = int(v)
			default:
				rec[name] = v
			}
		}
		recs[i] = rec
	}
	return recs
}

//Summary holds the descriptive statistics of one column, NaNs excluded.
type Summary struct {
	Column string  `json:"data"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"25%"`
	Median float64 `json:"50%"`
	Q75    float64 `json:"75%"`
	Max    float64 `json:"max"`
}

//Describe returns the descriptive statistics of a float column. An error
//is returned for an unknown column or one without any defined value.
func (D *Dataset) Describe(name string) (*Summary, error) {
	c, ok := D.cols[name]
	if !ok {
		return nil, fmt.Errorf("dataset.Describe: no column %q", name)
	}
	vals := make([]float64, 0, D.n)
	for _, v := range c {
		if !math.IsNaN(v) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("dataset.Describe: column %q has no defined values", name)
	}
	sort.Float64s(vals)
	mean, std := stat.MeanStdDev(vals, nil)
	if len(vals) == 1 {
		std = 0
	}
	return &Summary{
		Column: name,
		Count:  len(vals),
		Mean:   mean,
		Std:    std,
		Min:    vals[0],
		Q25:    stat.Quantile(0.25, stat.Empirical, vals, nil),
		Median: stat.Quantile(0.5, stat.Empirical, vals, nil),
		Q75:    stat.Quantile(0.75, stat.Empirical, vals, nil),
		Max:    vals[len(vals)-1],
	}, nil
}

func (D *Dataset) MarshalJSON() ([]byte, error) {
	//NaN is not valid JSON, so columns are sanitized through a
	//nullable representation.
	cols := make(map[string][]float64, len(D.cols))
	for k, v := range D.cols {
		cols[k] = v
	}
	return json.Marshal(&struct {
		N       int                   `json:"n"`
		Names   []string              `json:"columns"`
		Species []string              `json:"species"`
		Cols    map[string][]*float64 `json:"data"`
	}{
		N:       D.n,
		Names:   D.names,
		Species: D.species,
		Cols:    nullable(cols),
	})
}

func (D *Dataset) UnmarshalJSON(b []byte) error {
	var a struct {
		N       int                   `json:"n"`
		Names   []string              `json:"columns"`
		Species []string              `json:"species"`
		Cols    map[string][]*float64 `json:"data"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	D.n = a.N
	D.names = a.Names
	D.species = a.Species
	D.cols = make(map[string][]float64, len(a.Cols))
	for k, v := range a.Cols {
		c := make([]float64, len(v))
		for i, p := range v {
			if p == nil {
				c[i] = math.NaN()
			} else {
				c[i] = *p
			}
		}
		D.cols[k] = c
	}
	return nil
}

func nullable(cols map[string][]float64) map[string][]*float64 {
	r := make(map[string][]*float64, len(cols))
	for k, v := range cols {
		c := make([]*float64, len(v))
		for i := range v {
			if !math.IsNaN(v[i]) {
				x := v[i]
				c[i] = &x
			}
		}
		r[k] = c
	}
	return r
}

func containsString(s []string, x string) bool {
	for _, v := range s {
		if v == x {
			return true
		}
	}
	return false
}
