// Package presets holds the one-click molecule catalog shown next to the
// SMILES field. A YAML file can replace the built-in list.
package presets

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Preset struct {
	Name   string `yaml:"name" json:"name"`
	SMILES string `yaml:"smiles" json:"smiles"`
}

// Defaults is the built-in catalog of common organic compounds.
func Defaults() []Preset {
	return []Preset{
		{Name: "Ethanol", SMILES: "CCO"},
		{Name: "Methane", SMILES: "C"},
		{Name: "Benzene", SMILES: "c1ccccc1"},
		{Name: "Aspirin", SMILES: "CC(=O)OC1=CC=CC=C1C(=O)O"},
		{Name: "Caffeine", SMILES: "CN1C=NC2=C1C(=O)N(C(=O)N2C)C"},
		{Name: "Glucose", SMILES: "C([C@@H]1[C@H]([C@@H]([C@H]([C@H](O1)O)O)O)O)O"},
		{Name: "Acetone", SMILES: "CC(=O)C"},
		{Name: "Toluene", SMILES: "Cc1ccccc1"},
		{Name: "Phenol", SMILES: "c1ccc(cc1)O"},
		{Name: "Acetic acid", SMILES: "CC(=O)O"},
		{Name: "Ammonia", SMILES: "N"},
		{Name: "Water", SMILES: "O"},
		{Name: "Ethylene", SMILES: "C=C"},
		{Name: "Propane", SMILES: "CCC"},
		{Name: "Cyclohexane", SMILES: "C1CCCCC1"},
		{Name: "Penicillin G", SMILES: "CC1(C(N2C(S1)C(C2=O)NC(=O)CC3=CC=CC=C3)C(=O)O)C"},
		{Name: "Vitamin C", SMILES: "C(C(C1C(=O)C(=C(O1)O)O)O)O"},
		{Name: "Dopamine", SMILES: "C1=CC(=C(C=C1CCN)O)O"},
		{Name: "Capsaicin", SMILES: "CC(C)C=CCCCCC(=O)NCC1=CC(=C(C=C1)O)OC"},
		{Name: "TNT", SMILES: "CC1=C(C=C(C=C1[N+](=O)[O-])[N+](=O)[O-])[N+](=O)[O-]"},
	}
}

// Load reads the catalog from a YAML file, falling back to Defaults when
// path is empty. Entries missing a name or SMILES are rejected so broken
// catalogs surface at startup rather than per request.
func Load(path string) ([]Preset, error) {
	if path == "" {
		return Defaults(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []Preset
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("presets: parsing %s: %w", path, err)
	}
	for i, p := range list {
		if p.Name == "" || p.SMILES == "" {
			return nil, fmt.Errorf("presets: entry %d in %s missing name or smiles", i+1, path)
		}
	}
	return list, nil
}
