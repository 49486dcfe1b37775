// Package chem defines the boundary between the application and the
// cheminformatics toolkit that does the actual chemistry. The rest of the
// code only ever sees these interfaces, so the toolkit can be swapped
// without touching the pipeline or the HTTP layer.
package chem

import "fmt"

// EmbedOptions control 3D coordinate generation. Seed pins the embedding
// RNG so repeated submissions of the same SMILES give the same conformer.
type EmbedOptions struct {
	Seed          int
	MaxIterations int
}

// Properties is the display record computed for one molecule. Built fresh
// per request and discarded after rendering.
type Properties struct {
	Formula            string  `json:"formula"`
	MolecularWeight    float64 `json:"molecular_weight"`
	ExactMass          float64 `json:"exact_mass"`
	LogP               float64 `json:"logp"`
	HBondDonors        int     `json:"hbd"`
	HBondAcceptors     int     `json:"hba"`
	TPSA               float64 `json:"tpsa"`
	RotatableBonds     int     `json:"rotatable_bonds"`
	HeavyAtoms         int     `json:"heavy_atoms"`
	Rings              int     `json:"rings"`
	AromaticRings      int     `json:"aromatic_rings"`
	LipinskiViolations int     `json:"lipinski_violations"`
}

// Mol is an opaque molecule handle. Callers must Close it when done; the
// toolkit backs it with C-allocated memory.
type Mol interface {
	AddHydrogens() error
	Embed3D(opts EmbedOptions) error
	MolBlock() (string, error)
	CanonicalSMILES() (string, error)
	SVG() (string, error)
	// Descriptors returns the toolkit's raw descriptor map. Key names are
	// owned by the toolkit; the simulator maps them onto Properties.
	Descriptors() (map[string]float64, error)
	Close()
}

// Toolkit parses SMILES input into molecule handles.
type Toolkit interface {
	FromSMILES(smiles string) (Mol, error)
	Version() string
}

// ParseError means the SMILES text could not be interpreted as a valid
// molecular graph. It is one of the two user-visible error kinds.
type ParseError struct {
	SMILES string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid SMILES %q", e.SMILES)
}

// EmbeddingError means a valid molecular graph could not be given 3D
// coordinates, e.g. for highly constrained ring systems.
type EmbeddingError struct {
	SMILES string
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("could not generate 3D coordinates for %q", e.SMILES)
}
