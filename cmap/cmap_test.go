package cmap

import (
	"math"
	"testing"
)

func TestGetAndNames(Te *testing.T) {
	names := Names()
	if len(names) == 0 {
		Te.Fatal("no colormaps registered")
	}
	for _, name := range []string{"viridis", "cividis", "plasma", "magma",
		"inferno", "kindlmann", "smooth_blue_red"} {
		if _, err := Get(name); err != nil {
			Te.Error(err)
		}
		if _, err := Get(name + "_r"); err != nil {
			Te.Error(err)
		}
	}
	if _, err := Get("not_a_colormap"); err == nil {
		Te.Error("expected an error for an unknown colormap")
	}
	m, err := Get("")
	if err != nil {
		Te.Fatal(err)
	}
	if m.Name() != Default {
		Te.Errorf("empty name resolved to %s, want %s", m.Name(), Default)
	}
}

func TestMapEndpointsAndReversal(Te *testing.T) {
	m, err := Get("viridis")
	if err != nil {
		Te.Fatal(err)
	}
	r, err := Get("viridis_r")
	if err != nil {
		Te.Fatal(err)
	}
	if m.Hex(0) != "#440154" || m.Hex(1) != "#FDE725" {
		Te.Errorf("viridis endpoints wrong: %s %s", m.Hex(0), m.Hex(1))
	}
	if r.Hex(0) != m.Hex(1) || r.Hex(1) != m.Hex(0) {
		Te.Error("reversed map endpoints do not mirror the original")
	}
	//out-of-range and NaN arguments clamp
	if m.Hex(-3) != m.Hex(0) || m.Hex(7) != m.Hex(1) {
		Te.Error("clamping failed")
	}
	for _, t := range []float64{0, 0.25, 0.5, 0.75, 1} {
		if !ValidHex(m.Hex(t)) {
			Te.Errorf("Hex(%v) = %s is not a valid color", t, m.Hex(t))
		}
	}
}

func TestBounds(Te *testing.T) {
	vals := []float64{3, math.NaN(), -1, 8, math.Inf(1)}
	lo, hi, err := Bounds(vals, nil, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if lo != -1 || hi != 8 {
		Te.Errorf("got bounds [%v, %v], want [-1, 8]", lo, hi)
	}
	min := 0.0
	max := 5.0
	lo, hi, err = Bounds(vals, &min, &max)
	if err != nil {
		Te.Fatal(err)
	}
	if lo != 0 || hi != 5 {
		Te.Errorf("overrides ignored: [%v, %v]", lo, hi)
	}
	if _, _, err = Bounds([]float64{math.NaN()}, nil, nil); err == nil {
		Te.Error("expected an error for all-NaN values")
	}
}

func TestMapValues(Te *testing.T) {
	vals := []float64{0, 5, 10, math.NaN()}
	colors, err := MapValues(vals, "viridis", nil, nil, "")
	if err != nil {
		Te.Fatal(err)
	}
	if len(colors) != 4 {
		Te.Fatalf("got %d colors, want 4", len(colors))
	}
	if colors[0] != "#440154" || colors[2] != "#FDE725" {
		Te.Errorf("extreme values miscolored: %s %s", colors[0], colors[2])
	}
	if colors[3] != DefaultNaNColor {
		Te.Errorf("NaN colored %s, want %s", colors[3], DefaultNaNColor)
	}
	colors, err = MapValues(vals, "viridis", nil, nil, "#FF00FF")
	if err != nil {
		Te.Fatal(err)
	}
	if colors[3] != "#FF00FF" {
		Te.Errorf("NaN override ignored: %s", colors[3])
	}
	//constant data maps to the middle of the scale
	colors, err = MapValues([]float64{2, 2}, "viridis", nil, nil, "")
	if err != nil {
		Te.Fatal(err)
	}
	if colors[0] != colors[1] {
		Te.Error("constant data should get a single color")
	}
}

func TestElementColors(Te *testing.T) {
	table := map[string]string{"C": "#909090", "O": "#ff0d0d"}
	colors := ElementColors([]string{"C", "O", "Xq"}, table)
	if colors[0] != "#909090" || colors[1] != "#FF0D0D" {
		Te.Errorf("lookup failed: %v", colors)
	}
	if colors[2] != DefaultNaNColor {
		Te.Errorf("unknown species colored %s, want %s", colors[2], DefaultNaNColor)
	}
}
