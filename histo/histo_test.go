package histo

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNewData(Te *testing.T) {
	if _, err := NewData([]float64{1}, nil); err == nil {
		Te.Error("expected an error for a single divider")
	}
	if _, err := NewData([]float64{2, 1}, nil); err == nil {
		Te.Error("expected an error for unsorted dividers")
	}
	d, err := NewData([]float64{0, 1, 2}, []float64{0.5, 0.6, 1.5, 5, math.NaN()})
	if err != nil {
		Te.Fatal(err)
	}
	//5 and NaN fall off the dividers
	if d.Total() != 3 {
		Te.Errorf("wrong total: %d", d.Total())
	}
	h := d.View()
	if h[0] != 2 || h[1] != 1 {
		Te.Errorf("wrong counts: %v", h)
	}
}

func TestFromValues(Te *testing.T) {
	vals := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	d, err := FromValues(vals, 5)
	if err != nil {
		Te.Fatal(err)
	}
	if d.Total() != len(vals) {
		Te.Errorf("all values should be counted, got %d", d.Total())
	}
	if len(d.View()) != 5 {
		Te.Errorf("wrong number of bins: %d", len(d.View()))
	}
	//every bin should hold 2 values, including the maximum
	for i, v := range d.View() {
		if v != 2 {
			Te.Errorf("bin %d should hold 2 values, got %f", i, v)
		}
	}
	//bin count clamping
	d, err = FromValues(vals, 1000)
	if err != nil {
		Te.Fatal(err)
	}
	if len(d.View()) != MaxBins {
		Te.Errorf("bin count should clamp to %d, got %d", MaxBins, len(d.View()))
	}
	if _, err := FromValues([]float64{math.NaN()}, 10); err == nil {
		Te.Error("expected an error for all-NaN data")
	}
	//degenerate range
	d, err = FromValues([]float64{2, 2, 2}, 10)
	if err != nil {
		Te.Fatal(err)
	}
	if d.Total() != 3 {
		Te.Errorf("constant data should still be counted, got %d", d.Total())
	}
}

func TestNormalize(Te *testing.T) {
	d, err := FromValues([]float64{0, 1, 2, 3}, 5)
	if err != nil {
		Te.Fatal(err)
	}
	d.Normalize()
	if !d.Normalized() {
		Te.Error("histogram should be normalized")
	}
	if s := d.Sum(); math.Abs(s-1) > 1e-12 {
		Te.Errorf("normalized histogram should sum to 1, got %f", s)
	}
	//normalizing twice must not re-scale
	d.Normalize()
	if s := d.Sum(); math.Abs(s-1) > 1e-12 {
		Te.Errorf("double normalization changed the sum: %f", s)
	}
	d.UnNormalize()
	if s := d.Sum(); math.Abs(s-4) > 1e-12 {
		Te.Errorf("unnormalized histogram should sum to the total, got %f", s)
	}
}

func TestAddData(Te *testing.T) {
	d, err := NewData([]float64{0, 1, 2}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	d.AddData(0.5, 1.5, 27) //last one off range
	if d.Total() != 2 {
		Te.Errorf("wrong total after AddData: %d", d.Total())
	}
}

func TestJSONRoundTrip(Te *testing.T) {
	d, err := FromValues([]float64{0, 1, 1, 2, 3}, 5)
	if err != nil {
		Te.Fatal(err)
	}
	d.Normalize()
	b, err := json.Marshal(d)
	if err != nil {
		Te.Fatal(err)
	}
	d2 := new(Data)
	if err := json.Unmarshal(b, d2); err != nil {
		Te.Fatal(err)
	}
	if d2.Total() != d.Total() || !d2.Normalized() {
		Te.Error("JSON round trip lost data")
	}
	h1, h2 := d.View(), d2.View()
	for i := range h1 {
		if math.Abs(h1[i]-h2[i]) > 1e-12 {
			Te.Errorf("bin %d changed in round trip", i)
		}
	}
}
