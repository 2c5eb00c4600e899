/*
 * histo.go, part of curview.
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

//Package histo provides one-dimensional histograms with explicit dividers,
//used to summarize the distribution of per-atom descriptors.
package histo

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Bin count limits, matching the bins selector of the viewer.
const (
	MinBins     = 5
	MaxBins     = 50
	DefaultBins = 30
)

//Data is a histogram.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

//NewData returns a new histogram from the given dividers and raw data.
//rawdata can be nil, in which case an empty histogram is created. NaNs
//and out-of-range points in rawdata are dropped.
func NewData(dividers, rawdata []float64) (*Data, error) {
	if len(dividers) < 2 {
		return nil, fmt.Errorf("histo.NewData: at least 2 dividers needed")
	}
	if !sort.Float64sAreSorted(dividers) {
		return nil, fmt.Errorf("histo.NewData: dividers must be sorted")
	}
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.rehisto(rawdata)
	}
	return d, nil
}

//FromValues builds a histogram of values with nbins bins spanning the
//range of the (finite) data. The bin count is clamped to the
//MinBins..MaxBins range. An error is returned when no finite value is
//left to build the range from.
func FromValues(values []float64, nbins int) (*Data, error) {
	if nbins < MinBins {
		nbins = MinBins
	} else if nbins > MaxBins {
		nbins = MaxBins
	}
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return nil, fmt.Errorf("histo.FromValues: no finite values")
	}
	min := floats.Min(clean)
	max := floats.Max(clean)
	if min == max {
		//degenerate range, widen it a little so the single value falls
		//in a bin
		min -= 0.5
		max += 0.5
	}
	dividers := make([]float64, nbins+1)
	floats.Span(dividers, min, max)
	//the last divider is excluded by stat.Histogram, nudge it so the
	//maximum is counted
	dividers[nbins] = math.Nextafter(max, max+1)
	return NewData(dividers, clean)
}

//rehisto rebuilds the counts from rawdata, dropping the points that fall
//off the dividers, as stat.Histogram panics on them.
func (D *Data) rehisto(rawdata []float64) {
	data := make([]float64, 0, len(rawdata))
	for _, v := range rawdata {
		if math.IsNaN(v) || v < D.dividers[0] || v >= D.dividers[len(D.dividers)-1] {
			continue
		}
		data = append(data, v)
	}
	sort.Float64s(data)
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}

//AddData adds the given data points to the histogram. Values off the
//dividers are omitted.
func (D *Data) AddData(points ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	for _, v := range points {
		for j := 0; j < len(D.dividers)-1; j++ {
			if D.dividers[j] <= v && v < D.dividers[j+1] {
				D.histo[j]++
				D.total++
				break
			}
		}
	}
	if norma {
		D.Normalize()
	}
}

//Total returns the number of points counted in the histogram.
func (D *Data) Total() int {
	return D.total
}

//Normalized returns true if the histogram is normalized.
func (D *Data) Normalized() bool {
	return D.normalized
}

//Normalize normalizes the histogram so the counts sum to 1, i.e. each bin
//holds a probability.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

//UnNormalize restores the histogram to raw counts.
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

//CopyDividers returns a copy of the dividers of the histogram.
func (D *Data) CopyDividers() []float64 {
	d := make([]float64, len(D.dividers))
	copy(d, D.dividers)
	return d
}

//View returns the bin contents. The returned slice is live.
func (D *Data) View() []float64 {
	return D.histo
}

//Sum returns the sum of the bin contents.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

//String prints a -hopefully- pretty representation of the histogram.
func (D *Data) String() string {
	ret := fmt.Sprintf("Normalized: %v, TotalData: %d\n", D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a struct {
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}
