// Package simulator runs the one fixed pipeline behind the page: parse the
// SMILES, add hydrogens, embed a 3D conformer, serialize it for the viewer
// and collect the display properties. All chemistry happens inside the
// toolkit; this package only sequences the calls and formats the results.
package simulator

import (
	"fmt"

	"golang.org/x/sync/singleflight"

	"molsim/src/internal/chem"
	"molsim/src/internal/config"
	"molsim/src/internal/geometry"
	"molsim/src/internal/molfile"
)

type Simulator struct {
	toolkit chem.Toolkit
	cfg     config.ChemistryConfig

	// identical concurrent submissions share one toolkit run
	group singleflight.Group
}

// Request is one user submission. Seed and MaxIterations override the
// configured defaults when set.
type Request struct {
	SMILES        string
	Seed          *int
	MaxIterations *int
	// IncludeSVG adds the toolkit's 2D depiction to the result.
	IncludeSVG bool
}

// Result is the immutable outcome of one pipeline run. It holds only value
// types so it can be shared between deduplicated requests.
type Result struct {
	SMILES     string           `json:"smiles"`
	Canonical  string           `json:"canonical_smiles"`
	MolBlock   string           `json:"molblock"`
	SVG        string           `json:"svg,omitempty"`
	Properties chem.Properties  `json:"properties"`
	Geometry   geometry.Summary `json:"geometry"`
	Fragments  int              `json:"fragments"`
}

func New(tk chem.Toolkit, cfg config.ChemistryConfig) *Simulator {
	return &Simulator{toolkit: tk, cfg: cfg}
}

// Simulate runs the pipeline for one submission. It returns
// *chem.ParseError for SMILES the toolkit rejects and *chem.EmbeddingError
// when no 3D arrangement can be found; both are terminal for the request.
func (s *Simulator) Simulate(req Request) (*Result, error) {
	opts := chem.EmbedOptions{
		Seed:          s.cfg.Seed,
		MaxIterations: s.cfg.MaxIterations,
	}
	if req.Seed != nil {
		opts.Seed = *req.Seed
	}
	if req.MaxIterations != nil && *req.MaxIterations > 0 {
		opts.MaxIterations = *req.MaxIterations
	}

	key := fmt.Sprintf("%s|%d|%d|%t", req.SMILES, opts.Seed, opts.MaxIterations, req.IncludeSVG)
	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.run(req.SMILES, opts, req.IncludeSVG)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

func (s *Simulator) run(smiles string, opts chem.EmbedOptions, includeSVG bool) (*Result, error) {
	mol, err := s.toolkit.FromSMILES(smiles)
	if err != nil {
		return nil, err
	}
	defer mol.Close()

	if err := mol.AddHydrogens(); err != nil {
		return nil, fmt.Errorf("adding hydrogens: %w", err)
	}
	if err := mol.Embed3D(opts); err != nil {
		return nil, err
	}

	block, err := mol.MolBlock()
	if err != nil {
		return nil, fmt.Errorf("serializing structure: %w", err)
	}
	if block == "" {
		return nil, &chem.EmbeddingError{SMILES: smiles}
	}

	canonical, err := mol.CanonicalSMILES()
	if err != nil {
		return nil, fmt.Errorf("canonical SMILES: %w", err)
	}

	desc, err := mol.Descriptors()
	if err != nil {
		return nil, fmt.Errorf("computing descriptors: %w", err)
	}

	parsed, err := molfile.Parse(block)
	if err != nil {
		return nil, fmt.Errorf("reading serialized structure: %w", err)
	}
	fragments, err := parsed.Fragments()
	if err != nil {
		return nil, fmt.Errorf("counting fragments: %w", err)
	}
	geo, err := geometry.Summarize(parsed)
	if err != nil {
		return nil, fmt.Errorf("geometry summary: %w", err)
	}

	props := properties(desc, parsed)

	var svg string
	if includeSVG {
		if svg, err = mol.SVG(); err != nil {
			return nil, fmt.Errorf("rendering depiction: %w", err)
		}
	}

	return &Result{
		SMILES:     smiles,
		Canonical:  canonical,
		MolBlock:   block,
		SVG:        svg,
		Properties: props,
		Geometry:   geo,
		Fragments:  fragments,
	}, nil
}

// properties maps the toolkit's descriptor names onto the display record.
// The formula comes from the serialized structure (Hill order, explicit
// hydrogens included); the Lipinski count follows the rule of five.
func properties(desc map[string]float64, parsed *molfile.Molecule) chem.Properties {
	p := chem.Properties{
		Formula:         parsed.Formula(),
		MolecularWeight: pick(desc, "amw"),
		ExactMass:       pick(desc, "exactmw"),
		LogP:            pick(desc, "CrippenClogP"),
		HBondDonors:     int(pick(desc, "lipinskiHBD", "NumHBD")),
		HBondAcceptors:  int(pick(desc, "lipinskiHBA", "NumHBA")),
		TPSA:            pick(desc, "tpsa"),
		RotatableBonds:  int(pick(desc, "NumRotatableBonds")),
		HeavyAtoms:      parsed.HeavyAtoms(),
		Rings:           int(pick(desc, "NumRings")),
		AromaticRings:   int(pick(desc, "NumAromaticRings")),
	}

	if p.MolecularWeight > 500 {
		p.LipinskiViolations++
	}
	if p.LogP > 5 {
		p.LipinskiViolations++
	}
	if p.HBondDonors > 5 {
		p.LipinskiViolations++
	}
	if p.HBondAcceptors > 10 {
		p.LipinskiViolations++
	}
	return p
}

func pick(desc map[string]float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := desc[k]; ok {
			return v
		}
	}
	return 0
}
