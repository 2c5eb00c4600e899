package dataset

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func sample(Te *testing.T) *Dataset {
	d := New(4)
	if err := d.AddColumn(IndexColumn, []float64{0, 1, 2, 3}); err != nil {
		Te.Fatal(err)
	}
	if err := d.SetSpecies([]string{"C", "C", "H", "O"}); err != nil {
		Te.Fatal(err)
	}
	if err := d.AddColumn("pyrA", []float64{10, 0, math.NaN(), 5}); err != nil {
		Te.Fatal(err)
	}
	return d
}

func TestColumns(Te *testing.T) {
	d := sample(Te)
	if d.Len() != 4 {
		Te.Errorf("got %d rows, want 4", d.Len())
	}
	want := []string{IndexColumn, SpeciesColumn, "pyrA"}
	got := d.Columns()
	if len(got) != len(want) {
		Te.Fatalf("got columns %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			Te.Errorf("column %d is %s, want %s", i, got[i], want[i])
		}
	}
	if !d.HasColumn(SpeciesColumn) || !d.HasColumn("pyrA") || d.HasColumn("nope") {
		Te.Error("HasColumn misreports")
	}
	if err := d.AddColumn("pyrA", []float64{0, 0, 0, 0}); err == nil {
		Te.Error("expected an error re-adding a column")
	}
	if err := d.AddColumn("short", []float64{1}); err == nil {
		Te.Error("expected an error for a wrong-length column")
	}
	if err := d.AddColumn(SpeciesColumn, []float64{0, 0, 0, 0}); err == nil {
		Te.Error("expected an error adding a float species column")
	}
}

func TestSetValue(Te *testing.T) {
	d := sample(Te)
	if err := d.SetValue(2, "pyrA", 7.5); err != nil {
		Te.Fatal(err)
	}
	c, err := d.Column("pyrA")
	if err != nil {
		Te.Fatal(err)
	}
	if c[2] != 7.5 {
		Te.Errorf("cell not updated: %v", c)
	}
	if err := d.SetValue(0, SpeciesColumn, 1); err == nil {
		Te.Error("the species column should not be editable")
	}
	if err := d.SetValue(9, "pyrA", 1); err == nil {
		Te.Error("expected an error for an out-of-range row")
	}
	//Column returns a copy, so writing to it must not leak back
	c[0] = -99
	c2, _ := d.Column("pyrA")
	if c2[0] == -99 {
		Te.Error("Column leaked internal storage")
	}
}

func TestSelectAndRecords(Te *testing.T) {
	d := sample(Te)
	s, err := d.Select(SpeciesColumn, "pyrA")
	if err != nil {
		Te.Fatal(err)
	}
	if cols := s.Columns(); len(cols) != 2 || cols[0] != SpeciesColumn || cols[1] != "pyrA" {
		Te.Errorf("bad selection: %v", cols)
	}
	if _, err := d.Select("nope"); err == nil {
		Te.Error("expected an error selecting a missing column")
	}
	recs := d.Records()
	if len(recs) != 4 {
		Te.Fatalf("got %d records, want 4", len(recs))
	}
	if recs[0][IndexColumn] != 0 {
		Te.Errorf("atom index should marshal as int, got %T", recs[0][IndexColumn])
	}
	if recs[2]["pyrA"] != nil {
		Te.Errorf("NaN should become nil, got %v", recs[2]["pyrA"])
	}
	if recs[3][SpeciesColumn] != "O" {
		Te.Errorf("species lost: %v", recs[3])
	}
}

func TestDescribe(Te *testing.T) {
	d := sample(Te)
	s, err := d.Describe("pyrA")
	if err != nil {
		Te.Fatal(err)
	}
	//the NaN row is excluded: values are 0, 5, 10
	if s.Count != 3 {
		Te.Errorf("got count %d, want 3", s.Count)
	}
	if math.Abs(s.Mean-5) > 1e-12 {
		Te.Errorf("got mean %v, want 5", s.Mean)
	}
	if s.Min != 0 || s.Max != 10 || s.Median != 5 {
		Te.Errorf("bad summary: %+v", s)
	}
	if _, err := d.Describe("nope"); err == nil {
		Te.Error("expected an error for an unknown column")
	}
	nan := New(2)
	nan.AddColumn("x", []float64{math.NaN(), math.NaN()})
	if _, err := nan.Describe("x"); err == nil {
		Te.Error("expected an error for an all-NaN column")
	}
}

func TestJSONRoundTrip(Te *testing.T) {
	d := sample(Te)
	b, err := json.Marshal(d)
	if err != nil {
		Te.Fatal(err)
	}
	if bytes.Contains(b, []byte("NaN")) {
		Te.Fatal("NaN leaked into the JSON encoding")
	}
	var r Dataset
	if err := json.Unmarshal(b, &r); err != nil {
		Te.Fatal(err)
	}
	if r.Len() != 4 {
		Te.Fatalf("got %d rows after round trip, want 4", r.Len())
	}
	c, err := r.Column("pyrA")
	if err != nil {
		Te.Fatal(err)
	}
	if c[0] != 10 || !math.IsNaN(c[2]) {
		Te.Errorf("column corrupted: %v", c)
	}
	if sp := r.Species(); sp[3] != "O" {
		Te.Errorf("species corrupted: %v", sp)
	}
}

func TestWriteCSV(Te *testing.T) {
	d := sample(Te)
	var buf bytes.Buffer
	if err := d.WriteCSV(&buf); err != nil {
		Te.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		Te.Fatalf("got %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if lines[0] != "atom_idx,species,pyrA" {
		Te.Errorf("bad header: %s", lines[0])
	}
	if lines[1] != "0,C,10.000000" {
		Te.Errorf("bad first row: %s", lines[1])
	}
	if lines[3] != "2,H," {
		Te.Errorf("the NaN cell should be empty: %s", lines[3])
	}
	buf.Reset()
	if err := d.WriteCSV(&buf, SpeciesColumn); err != nil {
		Te.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "species\nC\nC\nH\nO" {
		Te.Errorf("bad column subset:\n%s", got)
	}
	if err := d.WriteCSV(&buf, "nope"); err == nil {
		Te.Error("expected an error for an unknown column")
	}
}

func TestWriteCSVGZ(Te *testing.T) {
	d := sample(Te)
	var buf bytes.Buffer
	if err := d.WriteCSVGZ(&buf); err != nil {
		Te.Fatal(err)
	}
	gz, err := gzip.NewReader(&buf)
	if err != nil {
		Te.Fatal(err)
	}
	defer gz.Close()
	var out bytes.Buffer
	if _, err := out.ReadFrom(gz); err != nil {
		Te.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "atom_idx,species,pyrA\n") {
		Te.Errorf("bad decompressed content:\n%s", out.String())
	}
}
