// Package rdkit binds the RDKit C FFI (librdkitcffi). Molecules are held
// as RDKit pickles in C memory; every Mol must be released with Delete.
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
)

var (
	ErrDeleted = errors.New("rdkit: Mol is deleted")
)

type Mol struct {
	pkl       *C.char
	pklSize   C.size_t
	isDeleted bool
}

// NewMol parses a SMILES string. The returned Mol is invalid (Valid() ==
// false) when RDKit rejects the input; callers decide how to surface that.
func NewMol(input string) Mol {
	smile := C.CString(input)
	defer C.free(unsafe.Pointer(smile))

	nullChar := C.CString("")
	defer C.free(unsafe.Pointer(nullChar))

	var pklSize C.size_t
	pkl := C.get_mol(smile, (*C.ulong)(unsafe.Pointer(&pklSize)), nullChar)

	return Mol{
		pkl:       pkl,
		pklSize:   pklSize,
		isDeleted: false,
	}
}

// Valid reports whether RDKit accepted the input. get_mol returns an empty
// pickle for strings it cannot parse.
func (m *Mol) Valid() bool {
	return !m.isDeleted && m.pkl != nil && m.pklSize > 0
}

func (m *Mol) MolBlock() ([]byte, error) {
	if m.isDeleted {
		return nil, ErrDeleted
	}
	nullChar := C.CString("")
	defer C.free(unsafe.Pointer(nullChar))
	cmol := C.get_molblock(m.pkl, m.pklSize, nullChar)
	defer C.free(unsafe.Pointer(cmol))
	return []byte(C.GoString(cmol)), nil
}

func (m *Mol) SMILES() (string, error) {
	if m.isDeleted {
		return "", ErrDeleted
	}
	nullChar := C.CString("")
	defer C.free(unsafe.Pointer(nullChar))
	csmile := C.get_smiles(m.pkl, m.pklSize, nullChar)
	defer C.free(unsafe.Pointer(csmile))
	return C.GoString(csmile), nil
}

func (m *Mol) SVG() ([]byte, error) {
	if m.isDeleted {
		return nil, ErrDeleted
	}
	nullChar := C.CString("")
	defer C.free(unsafe.Pointer(nullChar))
	csvg := C.get_svg(m.pkl, m.pklSize, nullChar)
	defer C.free(unsafe.Pointer(csvg))
	return []byte(C.GoString(csvg)), nil
}

func (m *Mol) Delete() {
	if !m.isDeleted {
		m.isDeleted = true
		C.free(unsafe.Pointer(m.pkl))
	}
}
