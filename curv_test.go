package curv

import (
	"math"
	"testing"

	v3 "github.com/gvallverdu/curview/v3"
)

//symmetricPyramid returns a vertex at the origin with three neighbors at
//unit distance, polar angle theta (degrees) below the +z axis and azimuths
//0, 120 and 240 degrees. For such a vertex the POAV is +z and every
//descriptor has a closed form.
func symmetricPyramid(theta float64) *Vertex {
	s := math.Sin(deg2rad(theta))
	c := math.Cos(deg2rad(theta))
	a := v3.Zeros(1)
	star, _ := v3.NewMatrix([]float64{
		s, 0, c,
		-s / 2, s * math.Sqrt(3) / 2, c,
		-s / 2, -s * math.Sqrt(3) / 2, c,
	})
	return NewVertex(a, star)
}

//TestPyramidalVertex checks every descriptor of a C3v pyramidal vertex
//against its closed form: bonds at polar angle 100 degrees give a
//pyramidalization angle of exactly 10 degrees.
func TestPyramidalVertex(Te *testing.T) {
	v := symmetricPyramid(100)
	if v.NStar() != 3 {
		Te.Fatalf("wrong star size: %d", v.NStar())
	}
	if p := v.PyrA(); math.Abs(p-10) > 1e-6 {
		Te.Errorf("pyrA should be 10 degrees, got %f", p)
	}
	//angle between two bonds: cos = (3cos^2(100) - 1)/2
	cosb := (3*math.Pow(math.Cos(deg2rad(100)), 2) - 1) / 2
	want := 360 - 3*rad2deg(math.Acos(cosb))
	if ad := v.AngularDefect(); math.Abs(ad-want) > 1e-6 {
		Te.Errorf("angular defect should be %f, got %f", want, ad)
	}
	//sphere through the 4 points is centered on the z axis at
	//1/(2cos(100)), below the star, so the curvature is positive.
	wantk := 2 * math.Abs(math.Cos(deg2rad(100)))
	if k := v.SphericalCurvature(); math.Abs(k-wantk) > 1e-9 {
		Te.Errorf("spherical curvature should be %f, got %f", wantk, k)
	}
	if d := v.PyrDistance(); math.Abs(d-math.Abs(math.Cos(deg2rad(100)))) > 1e-9 {
		Te.Errorf("pyr distance should be %f, got %f", math.Abs(math.Cos(deg2rad(100))), d)
	}
	if ad := v.AveNeighbDist(); math.Abs(ad-1) > 1e-9 {
		Te.Errorf("average neighbor distance should be 1, got %f", ad)
	}
	//POAV1 closed forms
	t2 := math.Pow(math.Tan(deg2rad(10)), 2)
	if c := v.CPi2(); math.Abs(c-2*t2) > 1e-9 {
		Te.Errorf("c_pi^2 should be %f, got %f", 2*t2, c)
	}
	if l := v.LambdaPi2(); math.Abs(l-(1-2*t2)) > 1e-9 {
		Te.Errorf("lambda_pi^2 should be %f, got %f", 1-2*t2, l)
	}
	m := 2 * t2 / (1 - 2*t2)
	if got := v.M(); math.Abs(got-m) > 1e-9 {
		Te.Errorf("m should be %f, got %f", m, got)
	}
	if got := v.N(); math.Abs(got-(3*m+2)) > 1e-9 {
		Te.Errorf("n should be %f, got %f", 3*m+2, got)
	}
	//n-tilde collapses to c_pi^2: the s character gained by the pi
	//orbital equals the p_z character lost to the sigma system.
	if got := v.Hybridization(); math.Abs(got-v.CPi2()) > 1e-9 {
		Te.Errorf("hybridization should equal c_pi^2, got %f", got)
	}
	//improper angle is between planar (180) and fully folded
	imp := math.Abs(v.Improper())
	if math.IsNaN(imp) || imp >= 179 || imp <= 90 {
		Te.Errorf("unexpected improper angle: %f", v.Improper())
	}
}

//TestPlanarVertex checks the sp2 limit: zero pyramidalization, zero
//angular defect, n = 2 and an undefined spherical curvature.
func TestPlanarVertex(Te *testing.T) {
	v := symmetricPyramid(90)
	if p := v.PyrA(); math.Abs(p) > 1e-9 {
		Te.Errorf("planar pyrA should be 0, got %f", p)
	}
	if ad := v.AngularDefect(); math.Abs(ad) > 1e-9 {
		Te.Errorf("planar angular defect should be 0, got %f", ad)
	}
	if k := v.SphericalCurvature(); !math.IsNaN(k) {
		Te.Errorf("planar spherical curvature should be NaN, got %f", k)
	}
	if imp := math.Abs(v.Improper()); math.Abs(imp-180) > 1e-6 {
		Te.Errorf("planar improper should be 180 in absolute value, got %f", imp)
	}
	if n := v.N(); math.Abs(n-2) > 1e-9 {
		Te.Errorf("planar n should be 2 (sp2), got %f", n)
	}
	if d := v.PyrDistance(); math.Abs(d) > 1e-9 {
		Te.Errorf("planar pyr distance should be 0, got %f", d)
	}
}

//TestSmallStars checks that descriptors degrade to NaN instead of
//panicking when the star is too small.
func TestSmallStars(Te *testing.T) {
	lone := NewVertex(v3.Zeros(1), nil)
	if lone.NStar() != 0 {
		Te.Error("isolated atom should have an empty star")
	}
	star, _ := v3.NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	divalent := NewVertex(v3.Zeros(1), star)
	for name, f := range map[string]func() float64{
		"pyrA":                divalent.PyrA,
		"angular_defect":      divalent.AngularDefect,
		"improper":            divalent.Improper,
		"pyr_distance":        divalent.PyrDistance,
		"spherical_curvature": divalent.SphericalCurvature,
		"ave_neighb_dist":     lone.AveNeighbDist,
	} {
		if !math.IsNaN(f()) {
			Te.Errorf("%s should be NaN for a too-small star", name)
		}
	}
	if d := divalent.AveNeighbDist(); math.Abs(d-1) > 1e-9 {
		Te.Errorf("divalent average neighbor distance should be 1, got %f", d)
	}
}

//TestAnalyze runs the full analysis on a planar trigonal fragment and
//checks the dataset contents for the central and the peripheral atoms.
func TestAnalyze(Te *testing.T) {
	mol, err := XYZRead("test/planar.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	data, err := Analyze(mol)
	if err != nil {
		Te.Fatal(err)
	}
	if data.Len() != 4 {
		Te.Fatalf("wrong number of rows: %d", data.Len())
	}
	cols := data.Columns()
	if len(cols) != len(DataColumns) {
		Te.Fatalf("wrong number of columns: %d", len(cols))
	}
	for i, name := range DataColumns {
		if cols[i] != name {
			Te.Errorf("column %d should be %s, got %s", i, name, cols[i])
		}
	}
	nstar, err := data.Column("n_star_A")
	if err != nil {
		Te.Fatal(err)
	}
	if nstar[0] != 3 || nstar[1] != 1 {
		Te.Errorf("wrong star sizes: %v", nstar)
	}
	pyra, _ := data.Column("pyrA")
	if math.Abs(pyra[0]) > 1e-6 {
		Te.Errorf("central atom should be planar, pyrA %f", pyra[0])
	}
	if !math.IsNaN(pyra[1]) {
		Te.Errorf("terminal atom pyrA should be NaN, got %f", pyra[1])
	}
	nn, _ := data.Column("n")
	if math.Abs(nn[0]-2) > 1e-6 {
		Te.Errorf("central atom should be sp2, n %f", nn[0])
	}
	avd, _ := data.Column("ave_neighb_dist")
	if math.Abs(avd[0]-1.4) > 1e-6 {
		Te.Errorf("wrong average neighbor distance: %f", avd[0])
	}
	custom, _ := data.Column("custom")
	for _, v := range custom {
		if v != 0 {
			Te.Error("custom column should start zero-filled")
		}
	}
	if s := data.Species(); s[0] != "C" {
		Te.Errorf("wrong species: %v", s)
	}
}
