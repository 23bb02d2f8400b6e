package core

import "strings"

// hexNAcOxonium is the HexNAc oxonium dehydration ladder shared by every
// HexNAc-bearing class. Masses are protonated m/z values.
var hexNAcOxonium = []Fragment{
	{"HG(HexNAc,221)", "C8H15NO6", 222.0972, true},
	{"HG(HexNAc,203)", "C8H13NO5", 204.0866, true},
	{"HG(HexNAc,185)", "C8H11NO4", 186.0761, true},
	{"HG(HexNAc,155)", "C7H9NO3", 156.0655, true},
	{"HG(HexNAc,137)", "C7H7NO2", 138.0550, true},
}

// sialylOxonium is the Neu5Ac B-ion pair common to all sialylated classes.
var sialylOxonium = []Fragment{
	{"HG(NeuAc,309)", "C11H19NO9", 310.1133, true},
	{"HG(NeuAc,291)", "C11H17NO8", 292.1027, true},
}

// disialylOxonium extends sialylOxonium with the Neu5Ac2 B-ion pair.
var disialylOxonium = []Fragment{
	{"HG(NeuAc,309)", "C11H19NO9", 310.1133, true},
	{"HG(NeuAc,291)", "C11H17NO8", 292.1027, true},
	{"HG(NeuAc2,600)", "C22H36N2O17", 601.2087, true},
	{"HG(NeuAc2,582)", "C22H34N2O16", 583.1981, true},
}

// positiveOxoniumFragments returns the protonated headgroup B/C-ions of a
// class. Two dispatch passes run in sequence: the first covers the neutral
// and monosialo families, the second adds per-class extensions (the GM
// classes collect entries from both).
func positiveOxoniumFragments(lipidClass string) []Fragment {
	var fragments []Fragment

	switch {
	case lipidClass == "Lac" || lipidClass == "LC3" || lipidClass == "LC4":
		fragments = append(fragments,
			Fragment{"HG(Hex,162)", "C6H10O5", 163.0606, true},
			Fragment{"HG(Hex,180)", "C6H12O6", 181.0707, true},
			Fragment{"HG(Hex2,324)", "C12H20O10", 325.1135, true},
			Fragment{"HG(Hex2,342)", "C12H22O11", 343.1235, true},
		)
		if lipidClass == "LC3" || lipidClass == "LC4" {
			fragments = append(fragments, hexNAcOxonium...)
		}

	case lipidClass == "Hex":
		fragments = append(fragments,
			Fragment{"HG(Hex,162)", "C6H10O5", 163.0606, true},
			Fragment{"HG(Hex,180)", "C6H12O6", 181.0707, true},
		)

	case strings.HasPrefix(lipidClass, "GA"):
		fragments = append(fragments, Fragment{"HG(Hex,180)", "C6H12O6", 181.0707, true})
		fragments = append(fragments, hexNAcOxonium...)
		fragments = append(fragments, Fragment{"HG(HexHexNAc,383)", "C14H25NO11", 384.1505, true})

	case lipidClass == "Gb3" || lipidClass == "Gb4":
		fragments = append(fragments,
			Fragment{"HG(Hex,162)", "C6H10O5", 163.0606, true},
			Fragment{"HG(Hex,180)", "C6H12O6", 181.0707, true},
			Fragment{"HG(Hex2,324)", "C12H20O10", 325.1135, true},
			Fragment{"HG(Hex3,487)", "C18H30O15", 487.1664, true},
		)
		if lipidClass == "Gb4" {
			fragments = append(fragments, hexNAcOxonium...)
			fragments = append(fragments, Fragment{"HG(HexNAcHex,365)", "C14H23NO10", 366.1400, true})
		}

	case lipidClass == "SM":
		fragments = append(fragments,
			Fragment{"Phosphocholine", "C5H15NO4P", 184.0739, true},
			Fragment{"Phosphocholine-H2O", "C5H13NO3P", 166.0628, true},
		)

	case lipidClass == "SM4":
		fragments = append(fragments, Fragment{"HG(Hex,180)", "C6H12O6", 181.0707, true})

	case strings.HasPrefix(lipidClass, "GM"):
		fragments = append(fragments, sialylOxonium...)
	}

	switch {
	case lipidClass == "GM4":
		fragments = append(fragments,
			Fragment{"HG(NeuAcGal,471)", "C17H29NO14", 472.1661, true},
			Fragment{"HG(NeuAcGal,453)", "C17H27NO13", 454.1555, true},
		)

	case lipidClass == "GM3":
		fragments = append(fragments, Fragment{"HG(Hex2,342)", "C12H22O11", 343.1235, true})

	case lipidClass == "GM2" || lipidClass == "GM1":
		fragments = append(fragments, hexNAcOxonium...)
		fragments = append(fragments,
			Fragment{"HG(HexNAcHex,383)", "C14H25NO11", 384.1500, true},
			Fragment{"HG(HexNAcHex,365)", "C14H23NO10", 366.1395, true},
			Fragment{"HG(HexNAcHex2,545)", "C20H35NO16", 546.2029, true},
			Fragment{"HG(HexNAcHex2,527)", "C20H33NO15", 528.1923, true},
		)

	case strings.HasPrefix(lipidClass, "GD"):
		fragments = append(fragments, disialylOxonium...)
		if lipidClass == "GD2" {
			fragments = append(fragments, hexNAcOxonium...)
			fragments = append(fragments,
				Fragment{"HG(HexNAcHex,383)", "C14H25NO11", 384.1500, true},
				Fragment{"HG(HexNAcHex,365)", "C14H23NO10", 366.1395, true},
				Fragment{"HG(NeuAc2Hex,744)", "C28H44N2O21", 745.2509, true},
				Fragment{"HG(Neu5Ac2HexNAcHex,947)", "C36H57N3O26", 948.3303, true},
				Fragment{"HG(Neu5Ac2HexNAcHex2,1109)", "C14H25NO11", 1110.3831, true},
			)
		}

	case strings.HasPrefix(lipidClass, "GT"):
		fragments = append(fragments, disialylOxonium...)
		fragments = append(fragments, Fragment{"HG(HexNAcHex,365)", "C14H23NO10", 366.1395, true})
		if lipidClass == "GT3" {
			fragments = append(fragments, Fragment{"HG(Hex,180)", "C6H12O6", 181.0707, true})
		}
		if lipidClass == "GT2" {
			fragments = append(fragments, hexNAcOxonium...)
		}

	case lipidClass == "GQ1" || lipidClass == "GP1":
		fragments = append(fragments, disialylOxonium...)
		fragments = append(fragments, Fragment{"HG(HexNAcHex,365)", "C14H23NO10", 366.1395, true})
		if lipidClass == "GP1" {
			fragments = append(fragments, Fragment{"HG(NeuAc4HexNAcHex,1529)", "C58H91N5O42", 1530.5211, true})
		}

	case lipidClass == "nLc10" || lipidClass == "nLc8" || lipidClass == "nLc6":
		fragments = append(fragments, Fragment{"HG(Hex,180)", "C6H12O6", 181.0707, true})
		fragments = append(fragments, hexNAcOxonium...)
		fragments = append(fragments,
			Fragment{"HG(HexNAcHex,383)", "C14H25NO11", 384.1500, true},
			Fragment{"HG(HexNAcHex,365)", "C14H23NO10", 366.1395, true},
		)

	case strings.HasPrefix(lipidClass, "SHex2"):
		fragments = append(fragments,
			Fragment{"HG(Hex,180)", "C6H12O6", 181.0707, true},
			Fragment{"HG(Hex2,342)", "C12H22O11", 343.1235, true},
		)
	}

	return fragments
}

// PositiveHeadgroupFragments returns the positive-mode headgroup fragments
// of a class: the neutral loss ladder followed by the oxonium B/C-ions.
// Classes with neither yield nil.
func PositiveHeadgroupFragments(lipidClass string, precursor MolecularFormula) ([]Fragment, error) {
	losses, err := HeadgroupLossFragments(lipidClass, precursor)
	if err != nil {
		return nil, err
	}
	return append(losses, positiveOxoniumFragments(lipidClass)...), nil
}
