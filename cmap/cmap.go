/*
 * cmap.go, part of curview.
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

//Package cmap maps data values onto colors for the structure viewer.
//It provides the matplotlib-style perceptually uniform colormaps the
//original viewer defaults to, the smooth colormaps of the gonum plot
//palette, and every map in "_r" reversed order.
package cmap

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

//DefaultNaNColor paints atoms whose selected data is undefined.
const DefaultNaNColor = "#000000"

//Default is the colormap selected when none is requested.
const Default = "cividis"

var hexPatt = regexp.MustCompile(`^#[A-Fa-f0-9]{6}$`)

//ValidHex reports whether s is a #rrggbb color.
func ValidHex(s string) bool {
	return hexPatt.MatchString(s)
}

//Map is a colormap: a sequence of anchor colors interpolated linearly
//over [0, 1].
type Map struct {
	name    string
	anchors []color.NRGBA
}

//Name returns the name of the colormap.
func (m *Map) Name() string {
	return m.name
}

//At returns the interpolated color at t. t is clamped to [0, 1].
func (m *Map) At(t float64) color.NRGBA {
	if math.IsNaN(t) {
		t = 0
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	pos := t * float64(len(m.anchors)-1)
	i := int(pos)
	if i >= len(m.anchors)-1 {
		return m.anchors[len(m.anchors)-1]
	}
	f := pos - float64(i)
	a, b := m.anchors[i], m.anchors[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + f*(float64(y)-float64(x))))
	}
	return color.NRGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 255}
}

//Hex returns the interpolated color at t as #rrggbb.
func (m *Map) Hex(t float64) string {
	c := m.At(t)
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

//reversed returns the reverse-order version of the map.
func (m *Map) reversed() *Map {
	r := &Map{name: m.name + "_r", anchors: make([]color.NRGBA, len(m.anchors))}
	for i, c := range m.anchors {
		r.anchors[len(m.anchors)-1-i] = c
	}
	return r
}

var registry = map[string]*Map{}

func register(name string, anchors []color.NRGBA) {
	m := &Map{name: name, anchors: anchors}
	registry[name] = m
	registry[name+"_r"] = m.reversed()
}

//registerColorMap samples a gonum plot ColorMap into anchors.
func registerColorMap(name string, cm palette.ColorMap) {
	const samples = 64
	cm.SetMin(0)
	cm.SetMax(1)
	anchors := make([]color.NRGBA, samples)
	for i := 0; i < samples; i++ {
		c, err := cm.At(float64(i) / float64(samples-1))
		if err != nil {
			//sampling a map over its own domain can't fail
			panic(fmt.Sprintf("cmap: sampling %s: %v", name, err))
		}
		r, g, b, _ := c.RGBA()
		anchors[i] = color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
	}
	register(name, anchors)
}

func init() {
	register("viridis", mustAnchors(viridisHex))
	register("cividis", mustAnchors(cividisHex))
	register("plasma", mustAnchors(plasmaHex))
	register("magma", mustAnchors(magmaHex))
	register("inferno", mustAnchors(infernoHex))
	registerColorMap("kindlmann", moreland.Kindlmann())
	registerColorMap("extended_kindlmann", moreland.ExtendedKindlmann())
	registerColorMap("black_body", moreland.BlackBody())
	registerColorMap("extended_black_body", moreland.ExtendedBlackBody())
	registerColorMap("smooth_blue_red", moreland.SmoothBlueRed())
	registerColorMap("smooth_green_red", moreland.SmoothGreenRed())
}

//Names returns the sorted names of the available colormaps, the "_r"
//reversed variants included.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

//Get returns the named colormap.
func Get(name string) (*Map, error) {
	if name == "" {
		name = Default
	}
	m, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("cmap: unknown colormap %q", name)
	}
	return m, nil
}

//Bounds returns the lowest and highest finite values of vals, honoring
//the user overrides min and max when non-nil. An error is returned when
//no bound can be determined.
func Bounds(vals []float64, min, max *float64) (float64, float64, error) {
	lo := math.Inf(1)
	hi := math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	if math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 0, fmt.Errorf("cmap: no finite values to take bounds from")
	}
	return lo, hi, nil
}

//MapValues returns one #rrggbb color per value, normalizing the values
//between the bounds with the named colormap. NaNs get nancolor, which
//falls back to DefaultNaNColor when empty or not a valid hex color.
func MapValues(vals []float64, name string, min, max *float64, nancolor string) ([]string, error) {
	m, err := Get(name)
	if err != nil {
		return nil, err
	}
	if !ValidHex(nancolor) {
		nancolor = DefaultNaNColor
	}
	lo, hi, err := Bounds(vals, min, max)
	if err != nil {
		return nil, err
	}
	span := hi - lo
	colors := make([]string, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) {
			colors[i] = nancolor
			continue
		}
		t := 0.5
		if span != 0 {
			t = (v - lo) / span
		}
		colors[i] = m.Hex(t)
	}
	return colors, nil
}

//ElementColors returns the display color of each species, looked up in
//table with a black fallback, the way the viewer paints atoms when no
//data column is selected.
func ElementColors(species []string, table map[string]string) []string {
	colors := make([]string, len(species))
	for i, s := range species {
		if c, ok := table[s]; ok && ValidHex(c) {
			colors[i] = strings.ToUpper(c)
		} else {
			colors[i] = DefaultNaNColor
		}
	}
	return colors
}

func mustAnchors(hexes []string) []color.NRGBA {
	anchors := make([]color.NRGBA, len(hexes))
	for i, h := range hexes {
		var r, g, b uint8
		if _, err := fmt.Sscanf(h, "#%02x%02x%02x", &r, &g, &b); err != nil {
			panic("cmap: bad anchor " + h)
		}
		anchors[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return anchors
}

//Anchor colors of the matplotlib perceptually uniform colormaps.
var (
	viridisHex = []string{
		"#440154", "#472D7B", "#3B528B", "#2C728E", "#21918C",
		"#28AE80", "#5EC962", "#ADDC30", "#FDE725",
	}
	cividisHex = []string{
		"#00224E", "#123570", "#3B496C", "#575D6D", "#707173",
		"#8A8678", "#A59C74", "#C3B369", "#FEE838",
	}
	plasmaHex = []string{
		"#0D0887", "#46039F", "#7201A8", "#9C179E", "#BD3786",
		"#D8576B", "#ED7953", "#FDCA26", "#F0F921",
	}
	magmaHex = []string{
		"#000004", "#180F3E", "#451077", "#721F81", "#9F2F7F",
		"#CD4071", "#F1605D", "#FD9567", "#FCFDBF",
	}
	infernoHex = []string{
		"#000004", "#1B0C42", "#4B0C6B", "#781C6D", "#A52C60",
		"#CF4446", "#ED6925", "#FB9A06", "#FCFFA4",
	}
)
