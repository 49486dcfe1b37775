package molfile

import "testing"

// ethanol with explicit hydrogens, as the toolkit serializes it
const ethanolBlock = `
     RDKit          3D

  9  8  0  0  0  0  0  0  0  0999 V2000
   -0.8880    0.1640   -0.0100 C   0  0  0  0  0  0  0  0  0  0  0  0
    0.4630   -0.4920    0.0250 C   0  0  0  0  0  0  0  0  0  0  0  0
    1.4470    0.4860    0.3190 O   0  0  0  0  0  0  0  0  0  0  0  0
   -1.6560   -0.6020   -0.1610 H   0  0  0  0  0  0  0  0  0  0  0  0
   -0.9110    0.8810   -0.8370 H   0  0  0  0  0  0  0  0  0  0  0  0
   -1.1200    0.6900    0.9210 H   0  0  0  0  0  0  0  0  0  0  0  0
    0.4470   -1.2280    0.8370 H   0  0  0  0  0  0  0  0  0  0  0  0
    0.7080   -1.0010   -0.9130 H   0  0  0  0  0  0  0  0  0  0  0  0
    1.5100    1.1020   -0.4210 H   0  0  0  0  0  0  0  0  0  0  0  0
  1  2  1  0
  2  3  1  0
  1  4  1  0
  1  5  1  0
  1  6  1  0
  2  7  1  0
  2  8  1  0
  3  9  1  0
M  END
`

// benzene with explicit hydrogens, kekulized ring
const benzeneBlock = `
     RDKit          3D

 12 12  0  0  0  0  0  0  0  0999 V2000
    1.3925    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
    0.6962    1.2059    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
   -0.6962    1.2059    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
   -1.3925    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
   -0.6962   -1.2059    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
    0.6962   -1.2059    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
    2.4750    0.0000    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
    1.2375    2.1434    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
   -1.2375    2.1434    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
   -2.4750    0.0000    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
   -1.2375   -2.1434    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
    1.2375   -2.1434    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
  1  2  2  0
  2  3  1  0
  3  4  2  0
  4  5  1  0
  5  6  2  0
  6  1  1  0
  1  7  1  0
  2  8  1  0
  3  9  1  0
  4 10  1  0
  5 11  1  0
  6 12  1  0
M  END
`

const saltBlock = `
     RDKit          3D

  3  1  0  0  0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
    1.5000    0.0000    0.0000 O   0  0  0  0  0  0  0  0  0  0  0  0
    5.0000    0.0000    0.0000 Na  0  0  0  0  0  0  0  0  0  0  0  0
  1  2  1  0
M  END
`

func TestParse_Ethanol(t *testing.T) {
	mol, err := Parse(ethanolBlock)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(mol.Atoms) != 9 {
		t.Errorf("atoms = %d, want 9", len(mol.Atoms))
	}
	if len(mol.Bonds) != 8 {
		t.Errorf("bonds = %d, want 8", len(mol.Bonds))
	}
	if mol.HeavyAtoms() != 3 {
		t.Errorf("heavy atoms = %d, want 3", mol.HeavyAtoms())
	}
	if got := mol.Formula(); got != "C2H6O" {
		t.Errorf("formula = %q, want C2H6O", got)
	}
	if mol.Atoms[2].Element != "O" {
		t.Errorf("atom 3 element = %q, want O", mol.Atoms[2].Element)
	}
	if mol.Atoms[0].X != -0.888 {
		t.Errorf("atom 1 x = %v, want -0.888", mol.Atoms[0].X)
	}
	if mol.Bonds[1] != (Bond{From: 1, To: 2, Order: 1}) {
		t.Errorf("bond 2 = %+v", mol.Bonds[1])
	}
}

func TestParse_Benzene(t *testing.T) {
	mol, err := Parse(benzeneBlock)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if mol.HeavyAtoms() != 6 {
		t.Errorf("heavy atoms = %d, want 6", mol.HeavyAtoms())
	}
	if got := mol.Formula(); got != "C6H6" {
		t.Errorf("formula = %q, want C6H6", got)
	}
	n, err := mol.Fragments()
	if err != nil {
		t.Fatalf("Fragments: %v", err)
	}
	if n != 1 {
		t.Errorf("benzene fragments = %d, want 1", n)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		block string
	}{
		{"empty", ""},
		{"no counts", "\n\n\n"},
		{"truncated atoms", "\n\n\n  2  0  0  0  0  0  0  0  0  0999 V2000\n"},
		{"garbled coordinate", "\n\n\n  1  0  0  0  0  0  0  0  0  0999 V2000\n    xx.000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\nM  END\n"},
		{"garbled bond", "\n\n\n  2  1  0  0  0  0  0  0  0  0999 V2000\n    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n    1.5000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0\n  1  x  1  0\nM  END\n"},
	}
	for _, tc := range cases {
		if _, err := Parse(tc.block); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestFragments(t *testing.T) {
	mol, err := Parse(ethanolBlock)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	n, err := mol.Fragments()
	if err != nil {
		t.Fatalf("Fragments: %v", err)
	}
	if n != 1 {
		t.Errorf("ethanol fragments = %d, want 1", n)
	}

	salt, err := Parse(saltBlock)
	if err != nil {
		t.Fatalf("Parse salt: %v", err)
	}
	n, err = salt.Fragments()
	if err != nil {
		t.Fatalf("Fragments: %v", err)
	}
	if n != 2 {
		t.Errorf("salt fragments = %d, want 2", n)
	}
}

func TestFormula_NoCarbon(t *testing.T) {
	mol := &Molecule{Atoms: []Atom{
		{Element: "O"}, {Element: "H"}, {Element: "H"},
	}}
	if got := mol.Formula(); got != "H2O" {
		t.Errorf("formula = %q, want H2O", got)
	}
}
