/*
 * chemplot.go, part of curview.
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

//Package chemplot renders the static figures of the curvature viewer:
//per-column histograms and property-against-property scatter plots with
//a least-squares trend line.
package chemplot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//sizes of the rendered figures
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

var (
	barColor   = color.NRGBA{R: 0x3B, G: 0x52, B: 0x8B, A: 0xFF}
	trendColor = color.NRGBA{R: 0xCF, G: 0x44, B: 0x46, A: 0xFF}
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = vg.Millimeters(3)
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func finite(vals []float64) []float64 {
	r := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			r = append(r, v)
		}
	}
	return r
}

//Histogram builds the distribution plot of one data column. NaNs are
//excluded. When normalized, the bars integrate to one.
func Histogram(vals []float64, bins int, title, xlabel string, normalized bool) (*plot.Plot, error) {
	vals = finite(vals)
	if len(vals) == 0 {
		return nil, fmt.Errorf("chemplot.Histogram: no defined values to plot")
	}
	h, err := plotter.NewHist(plotter.Values(vals), bins)
	if err != nil {
		return nil, fmt.Errorf("chemplot.Histogram: %w", err)
	}
	if normalized {
		h.Normalize(1)
	}
	h.FillColor = barColor
	ylabel := "count"
	if normalized {
		ylabel = "density"
	}
	p := basicPlot(title, xlabel, ylabel)
	p.Add(h)
	return p, nil
}

//Scatter builds an x-against-y plot of two data columns, with a
//least-squares parabola drawn through the points. Rows where either
//value is undefined are excluded.
func Scatter(x, y []float64, title, xlabel, ylabel string) (*plot.Plot, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("chemplot.Scatter: %d x values against %d y values", len(x), len(y))
	}
	pts := make(plotter.XYs, 0, len(x))
	for i := range x {
		if math.IsNaN(x[i]) || math.IsNaN(y[i]) || math.IsInf(x[i], 0) || math.IsInf(y[i], 0) {
			continue
		}
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("chemplot.Scatter: no defined points to plot")
	}
	p := basicPlot(title, xlabel, ylabel)
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("chemplot.Scatter: %w", err)
	}
	s.GlyphStyle.Radius = vg.Points(2.5)
	p.Add(s)
	if len(pts) >= 3 {
		coeffs, err := polyfit(pts, 2)
		if err == nil {
			p.Add(trendLine(pts, coeffs))
		}
	}
	return p, nil
}

//polyfit returns the least-squares polynomial coefficients, lowest
//degree first, through the points.
func polyfit(pts plotter.XYs, degree int) ([]float64, error) {
	a := mat.NewDense(len(pts), degree+1, nil)
	b := mat.NewVecDense(len(pts), nil)
	for i, pt := range pts {
		v := 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, v)
			v *= pt.X
		}
		b.SetVec(i, pt.Y)
	}
	var qr mat.QR
	qr.Factorize(a)
	coeffs := mat.NewVecDense(degree+1, nil)
	if err := qr.SolveVecTo(coeffs, false, b); err != nil {
		return nil, fmt.Errorf("chemplot.polyfit: %w", err)
	}
	return coeffs.RawVector().Data, nil
}

func trendLine(pts plotter.XYs, coeffs []float64) *plotter.Line {
	lo, hi := pts[0].X, pts[0].X
	for _, pt := range pts {
		if pt.X < lo {
			lo = pt.X
		}
		if pt.X > hi {
			hi = pt.X
		}
	}
	pad := 0.05 * (hi - lo)
	lo -= pad
	hi += pad
	const samples = 100
	line := make(plotter.XYs, samples)
	for i := 0; i < samples; i++ {
		x := lo + (hi-lo)*float64(i)/float64(samples-1)
		y := 0.0
		v := 1.0
		for _, c := range coeffs {
			y += c * v
			v *= x
		}
		line[i] = plotter.XY{X: x, Y: y}
	}
	l, err := plotter.NewLine(line)
	if err != nil {
		//a filled XYs can't fail to become a line
		panic(err)
	}
	l.LineStyle.Color = trendColor
	l.LineStyle.Width = vg.Points(1.5)
	return l
}

//WritePNG renders the plot as PNG at the default figure size.
func WritePNG(out io.Writer, p *plot.Plot) error {
	wt, err := p.WriterTo(DefaultWidth, DefaultHeight, "png")
	if err != nil {
		return fmt.Errorf("chemplot.WritePNG: %w", err)
	}
	if _, err := wt.WriteTo(out); err != nil {
		return fmt.Errorf("chemplot.WritePNG: %w", err)
	}
	return nil
}
