// Package geometry summarizes an embedded conformer for the info panel:
// center of mass, radius of gyration, principal moments and overall span.
// It works on the serialized structure the viewer gets, so the numbers
// always describe exactly what is on screen.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"molsim/src/internal/molfile"
)

type Summary struct {
	CenterOfMass     [3]float64 `json:"center_of_mass"`
	RadiusOfGyration float64    `json:"radius_of_gyration"`
	PrincipalMoments [3]float64 `json:"principal_moments"`
	Asphericity      float64    `json:"asphericity"`
	Span             float64    `json:"span"`
}

// Summarize computes the summary for one conformer. Atoms with elements
// missing from the mass table degrade gracefully to unit weights.
func Summarize(mol *molfile.Molecule) (Summary, error) {
	n := len(mol.Atoms)
	if n == 0 {
		return Summary{}, fmt.Errorf("geometry: molecule has no atoms")
	}

	masses := make([]float64, n)
	var total float64
	for i, a := range mol.Atoms {
		masses[i] = a.Mass()
		total += masses[i]
	}
	if total == 0 {
		for i := range masses {
			masses[i] = 1
		}
		total = float64(n)
	}

	var com [3]float64
	for i, a := range mol.Atoms {
		com[0] += masses[i] * a.X
		com[1] += masses[i] * a.Y
		com[2] += masses[i] * a.Z
	}
	for k := range com {
		com[k] /= total
	}

	// mass-weighted gyration tensor about the center of mass
	s := mat.NewSymDense(3, nil)
	for i, a := range mol.Atoms {
		d := [3]float64{a.X - com[0], a.Y - com[1], a.Z - com[2]}
		w := masses[i] / total
		for r := 0; r < 3; r++ {
			for c := r; c < 3; c++ {
				s.SetSym(r, c, s.At(r, c)+w*d[r]*d[c])
			}
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(s, false); !ok {
		return Summary{}, fmt.Errorf("geometry: gyration tensor eigendecomposition failed")
	}
	vals := eig.Values(nil) // ascending

	rg := math.Sqrt(vals[0] + vals[1] + vals[2])
	asph := vals[2] - 0.5*(vals[0]+vals[1])

	return Summary{
		CenterOfMass:     com,
		RadiusOfGyration: rg,
		PrincipalMoments: [3]float64{vals[0], vals[1], vals[2]},
		Asphericity:      asph,
		Span:             span(mol.Atoms),
	}, nil
}

// span is the largest interatomic distance. Inputs are single molecules,
// so the quadratic scan is fine.
func span(atoms []molfile.Atom) float64 {
	var max float64
	for i := 0; i < len(atoms); i++ {
		for j := i + 1; j < len(atoms); j++ {
			dx := atoms[i].X - atoms[j].X
			dy := atoms[i].Y - atoms[j].Y
			dz := atoms[i].Z - atoms[j].Z
			if d := dx*dx + dy*dy + dz*dz; d > max {
				max = d
			}
		}
	}
	return math.Sqrt(max)
}
