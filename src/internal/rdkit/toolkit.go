package rdkit

/*
#cgo CFLAGS: -I${SRCDIR}/third_party/rdkit
#cgo linux,amd64 LDFLAGS: -L${SRCDIR}/third_party/rdkit -lrdkitcffi_linux_amd64 -lm -lstdc++ -lfreetype
#include <stdlib.h>
#include "third_party/rdkit/cffiwrapper.h"
*/
import "C"
import (
	"errors"
	"unsafe"

	"molsim/src/internal/chem"
)

// Toolkit implements chem.Toolkit on top of librdkitcffi.
type Toolkit struct {
	version string
}

// New returns the toolkit with RDKit's own C++ logging silenced; failures
// are reported through error returns instead. The library version is
// captured once here so later calls never touch C memory.
func New() *Toolkit {
	C.disable_logging()
	cv := C.version()
	defer C.free(unsafe.Pointer(cv))
	return &Toolkit{version: C.GoString(cv)}
}

func (t *Toolkit) Version() string {
	return t.version
}

func (t *Toolkit) FromSMILES(smiles string) (chem.Mol, error) {
	m := NewMol(smiles)
	if !m.Valid() {
		m.Delete()
		return nil, &chem.ParseError{SMILES: smiles}
	}
	return &boundMol{mol: m, smiles: smiles}, nil
}

// boundMol adapts the pickle-backed Mol to the chem.Mol boundary.
type boundMol struct {
	mol    Mol
	smiles string
}

func (b *boundMol) AddHydrogens() error {
	return b.mol.AddHs()
}

func (b *boundMol) Embed3D(opts chem.EmbedOptions) error {
	err := b.mol.Embed3D(opts.Seed, opts.MaxIterations)
	if errors.Is(err, ErrEmbed) {
		return &chem.EmbeddingError{SMILES: b.smiles}
	}
	return err
}

func (b *boundMol) MolBlock() (string, error) {
	block, err := b.mol.MolBlock()
	return string(block), err
}

func (b *boundMol) CanonicalSMILES() (string, error) {
	return b.mol.SMILES()
}

func (b *boundMol) SVG() (string, error) {
	svg, err := b.mol.SVG()
	return string(svg), err
}

func (b *boundMol) Descriptors() (map[string]float64, error) {
	return b.mol.Descriptors()
}

func (b *boundMol) Close() {
	b.mol.Delete()
}
