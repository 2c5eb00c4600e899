package curv

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

//TestXYZIO tests that XYZ files are opened, read and written correctly.
func TestXYZIO(Te *testing.T) {
	mol, err := XYZRead("test/water.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	if mol.Len() != 3 {
		Te.Errorf("wrong number of atoms: %d", mol.Len())
	}
	if mol.Atom(0).Symbol != "O" || mol.Atom(1).Symbol != "H" {
		Te.Errorf("wrong symbols: %s %s", mol.Atom(0).Symbol, mol.Atom(1).Symbol)
	}
	if mol.Name != "water molecule" {
		Te.Errorf("title line not read: %q", mol.Name)
	}
	if mol.Atom(0).Mass != 16.00 {
		Te.Errorf("mass not assigned: %f", mol.Atom(0).Mass)
	}
	var buf bytes.Buffer
	if err := XYZWriteTo(&buf, mol); err != nil {
		Te.Fatal(err)
	}
	mol2, err := XYZReaderRead(&buf, "roundtrip")
	if err != nil {
		Te.Fatal(err)
	}
	if mol2.Len() != mol.Len() {
		Te.Fatalf("round trip changed the number of atoms: %d", mol2.Len())
	}
	for i := 0; i < mol.Len(); i++ {
		if mol2.Atom(i).Symbol != mol.Atom(i).Symbol {
			Te.Errorf("round trip changed symbol %d", i)
		}
		for j := 0; j < 3; j++ {
			if math.Abs(mol2.Coords.At(i, j)-mol.Coords.At(i, j)) > 1e-6 {
				Te.Errorf("round trip changed coordinate %d,%d", i, j)
			}
		}
	}
}

func TestXYZReadErrors(Te *testing.T) {
	bad := []string{
		"",
		"nonsense\n",
		"2\n",
		"2\ntitle\nH 0.0 0.0 0.0\n",
		"1\ntitle\nH 0.0 zero 0.0\n",
		"1\ntitle\nH 0.0 0.0\n",
	}
	for i, s := range bad {
		if _, err := XYZReaderRead(strings.NewReader(s), "bad"); err == nil {
			Te.Errorf("case %d: expected an error", i)
		}
	}
}
