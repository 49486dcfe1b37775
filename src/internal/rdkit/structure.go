package rdkit

/*
#cgo CFLAGS: -I${SRCDIR}/third_party/rdkit
#cgo linux,amd64 LDFLAGS: -L${SRCDIR}/third_party/rdkit -lrdkitcffi_linux_amd64 -lm -lstdc++ -lfreetype
#include <stdlib.h>
#include "third_party/rdkit/cffiwrapper.h"
*/
import "C"
import (
	"encoding/json"
	"errors"
	"fmt"
	"unsafe"
)

var (
	ErrAddHs = errors.New("rdkit: add_hs failed")
	ErrEmbed = errors.New("rdkit: set_3d_coords failed")
)

// AddHs adds explicit hydrogens to the molecule in place.
func (m *Mol) AddHs() error {
	if m.isDeleted {
		return ErrDeleted
	}
	if C.add_hs(&m.pkl, (*C.ulong)(unsafe.Pointer(&m.pklSize))) == 0 {
		return ErrAddHs
	}
	return nil
}

// Embed3D generates a 3D conformer with RDKit's distance-geometry embedding
// (ETKDG), which includes the force-field style cleanup. A non-negative seed
// makes the conformer reproducible across calls.
func (m *Mol) Embed3D(seed, maxIterations int) error {
	if m.isDeleted {
		return ErrDeleted
	}
	params := fmt.Sprintf(`{"randomSeed":%d,"maxIterations":%d}`, seed, maxIterations)
	cparams := C.CString(params)
	defer C.free(unsafe.Pointer(cparams))
	if C.set_3d_coords(&m.pkl, (*C.ulong)(unsafe.Pointer(&m.pklSize)), cparams) == 0 {
		return ErrEmbed
	}
	return nil
}

// Descriptors returns RDKit's descriptor map (amw, exactmw, CrippenClogP,
// lipinskiHBD, lipinskiHBA, tpsa, NumRotatableBonds, NumRings, ...).
func (m *Mol) Descriptors() (map[string]float64, error) {
	if m.isDeleted {
		return nil, ErrDeleted
	}
	cjson := C.get_descriptors(m.pkl, m.pklSize)
	defer C.free(unsafe.Pointer(cjson))
	raw := []byte(C.GoString(cjson))

	out := make(map[string]float64)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("rdkit: parsing descriptors: %w", err)
	}
	return out, nil
}
