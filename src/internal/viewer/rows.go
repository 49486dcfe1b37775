package viewer

import (
	"fmt"

	"molsim/src/internal/chem"
	"molsim/src/internal/geometry"
)

// Row is one line of the property table.
type Row struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
}

// PropertyRows flattens the computed properties into display rows, in a
// fixed order with units attached.
func PropertyRows(p chem.Properties) []Row {
	return []Row{
		{"Formula", p.Formula, ""},
		{"Molecular weight", fmt.Sprintf("%.2f", p.MolecularWeight), "g/mol"},
		{"Exact mass", fmt.Sprintf("%.4f", p.ExactMass), "g/mol"},
		{"Heavy atoms", fmt.Sprintf("%d", p.HeavyAtoms), "count"},
		{"LogP", fmt.Sprintf("%.2f", p.LogP), ""},
		{"H-bond donors", fmt.Sprintf("%d", p.HBondDonors), "count"},
		{"H-bond acceptors", fmt.Sprintf("%d", p.HBondAcceptors), "count"},
		{"TPSA", fmt.Sprintf("%.2f", p.TPSA), "Å²"},
		{"Rotatable bonds", fmt.Sprintf("%d", p.RotatableBonds), "count"},
		{"Rings", fmt.Sprintf("%d", p.Rings), "count"},
		{"Aromatic rings", fmt.Sprintf("%d", p.AromaticRings), "count"},
		{"Lipinski violations", fmt.Sprintf("%d", p.LipinskiViolations), "count"},
	}
}

// GeometryRows flattens the conformer summary into display rows.
func GeometryRows(g geometry.Summary) []Row {
	return []Row{
		{"Radius of gyration", fmt.Sprintf("%.3f", g.RadiusOfGyration), "Å"},
		{"Span", fmt.Sprintf("%.3f", g.Span), "Å"},
		{"Asphericity", fmt.Sprintf("%.3f", g.Asphericity), "Å²"},
	}
}
