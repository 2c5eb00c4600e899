/*
 * csv.go, part of curview.
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

package dataset

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"

	"github.com/klauspost/compress/gzip"
)

//WriteCSV writes the dataset in CSV format. If columns are given, only
//those are written, in the given order; otherwise all columns are written
//in the dataset order. NaN cells become empty fields.
func (D *Dataset) WriteCSV(out io.Writer, columns ...string) error {
	d := D
	if len(columns) > 0 {
		var err error
		if d, err = D.Select(columns...); err != nil {
			return err
		}
	}
	w := csv.NewWriter(out)
	names := d.Columns()
	if err := w.Write(names); err != nil {
		return err
	}
	row := make([]string, len(names))
	for i := 0; i < d.n; i++ {
		for j, name := range names {
			if name == SpeciesColumn {
				row[j] = d.species[i]
				continue
			}
			v := d.cols[name][i]
			switch {
			case math.IsNaN(v):
				row[j] = ""
			case name == IndexColumn:
				row[j] = strconv.Itoa(int(v))
			default:
				row[j] = strconv.FormatFloat(v, 'f', 6, 64)
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

//WriteCSVGZ writes the dataset as gzip-compressed CSV.
func (D *Dataset) WriteCSVGZ(out io.Writer, columns ...string) error {
	gz := gzip.NewWriter(out)
	if err := D.WriteCSV(gz, columns...); err != nil {
		gz.Close()
		return err
	}
	return gz.Close()
}
