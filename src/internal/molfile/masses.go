package molfile

// Standard atomic weights for the elements that show up in organic and
// medicinal chemistry inputs. Used only for the geometry summary's mass
// weighting; the displayed molecular weight always comes from the toolkit.
var Masses = map[string]float64{
	"H":  1.008,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Na": 22.990,
	"Mg": 24.305,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.098,
	"Ca": 40.078,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Cu": 63.546,
	"Zn": 65.38,
	"Se": 78.971,
	"Br": 79.904,
	"I":  126.904,
}

// Mass returns the atom's standard atomic weight, or 0 for elements not in
// the table. Callers fall back to unit weights when the total is zero.
func (a Atom) Mass() float64 {
	return Masses[a.Element]
}
