package core

import "strconv"

// negativeLCBFragments holds the negative-mode long-chain base product ions,
// keyed by chain token. Masses are deprotonated [M-H]- values.
var negativeLCBFragments = map[string][]Fragment{
	"16:0;2": {
		{"LCB(-CH3O)", "C15H32NO", 241.2406, true},
		{"LCB(-C2H8NO)", "C14H28O", 211.2062, true},
	},
	"16:1;2": {
		{"LCB(-CH3O)", "C15H30NO", 239.2249, true},
		{"LCB(-C2H8NO)", "C14H26O", 209.1905, true},
	},
	"17:0;2": {
		{"LCB(-CH3O)", "C16H34NO", 255.2562, true},
		{"LCB(-C2H8NO)", "C15H30O", 225.2218, true},
	},
	"17:1;2": {
		{"LCB(-CH3O)", "C16H32NO", 253.2406, true},
		{"LCB(-C2H8NO)", "C15H28O", 223.2062, true},
	},
	"18:0;2": {
		{"LCB(-CH3O)", "C17H37NO", 270.2797, true},
		{"LCB(-C2H8NO)", "C16H32O", 239.2375, true},
	},
	"18:1;2": {
		{"LCB(-CH3O)", "C17H35NO", 268.2640, true},
		{"LCB(-C2H8NO)", "C16H30O", 237.2218, true},
	},
	"18:2;2": {
		{"LCB(-CH3O)", "C17H33NO", 266.2484, true},
		{"LCB(-C2H8NO)", "C16H28O", 235.2062, true},
	},
	"18:0;3": {
		{"LCB(-CH3O)", "C17H36NO2", 285.2668, true},
		{"LCB(-C2H8NO)", "C16H32O2", 255.2324, true},
	},
	"19:0;2": {
		{"LCB(-CH3O)", "C18H38NO", 283.2875, true},
		{"LCB(-C2H8NO)", "C17H34O", 253.2531, true},
	},
	"19:1;2": {
		{"LCB(-CH3O)", "C18H36NO", 281.2719, true},
		{"LCB(-C2H8NO)", "C17H32O", 251.2375, true},
	},
	"20:0;2": {
		{"LCB(-CH3O)", "C19H40NO", 297.3032, true},
		{"LCB(-C2H8NO)", "C18H36O", 267.2688, true},
	},
	"20:1;2": {
		{"LCB(-CH3O)", "C19H38NO", 295.2875, true},
		{"LCB(-C2H8NO)", "C18H34O", 265.2531, true},
	},
	"18:0;1": {
		{"doxLCB(-CH3O)", "C17H36N", 253.2769, true},
		{"doxLCB(-C2H8N)", "C16H32", 223.2426, true},
	},
	"18:1;1": {
		{"doxLCB(-CH3O)", "C17H34N", 251.2613, true},
		{"doxLCB(-C2H8N)", "C16H30", 221.2269, true},
	},
	"19:0;1": {
		{"doxLCB(-CH3O)", "C18H38N", 267.2926, true},
		{"doxLCB(-C2H8N)", "C17H34", 237.2582, true},
	},
	"20:0;1": {
		{"doxLCB(-CH3O)", "C19H40N", 281.3082, true},
		{"doxLCB(-C2H8N)", "C18H36", 251.2739, true},
	},
}

// NegativeLCBFragments returns the negative-mode base fragments for a chain
// token; unknown tokens yield nil.
func NegativeLCBFragments(lcbType string) []Fragment {
	return negativeLCBFragments[lcbType]
}

// NegativeFAFragments derives the amide-retaining acyl fragments of a fatty
// acid token in closed form. The acyl chain is amide-linked (LCB-NH-CO-R),
// so each fragment keeps the nitrogen and the carbonyl oxygen. Masses are
// deprotonated [M-H]- values.
func NegativeFAFragments(faType string) []Fragment {
	m := chainTokenRE.FindStringSubmatch(faType)
	if m == nil || m[3] != "" {
		return nil
	}
	carbons, _ := strconv.Atoi(m[1])
	unsaturations, _ := strconv.Atoi(m[2])
	hCount := 2*carbons - 2*unsaturations

	hnMass := float64(carbons)*MassC + float64(hCount+1)*MassH + MassN + MassO - MassH
	acnMass := float64(carbons+2)*MassC + float64(hCount+3)*MassH + MassN + MassO - MassH
	acetamideMass := float64(carbons+2)*MassC + float64(hCount+3)*MassH + MassN + 2*MassO - MassH

	return []Fragment{
		{"FA " + faType + "+(HN)", formulaCHNO(carbons, hCount+1, 1), hnMass, true},
		{"FA " + faType + "+(C2H3N)", formulaCHNO(carbons+2, hCount+3, 1), acnMass, true},
		{"FA " + faType + "+(C2H3NO)", formulaCHNO(carbons+2, hCount+3, 2), acetamideMass, true},
	}
}

func formulaCHNO(c, h, o int) string {
	return NewMolecularFormula(map[string]int{"C": c, "H": h, "N": 1, "O": o}).String()
}

// negativeSialoClasses gates the sialylated-class branch of the negative
// headgroup dispatcher.
var negativeSialoClasses = map[string]bool{
	"GM4": true, "GM3": true, "GM2": true, "GM1": true,
	"GD3": true, "GD2": true, "GD1a": true, "GD1b": true, "GD1c": true,
	"GT3": true, "GT2": true, "GT1a": true, "GT1b": true, "GT1c": true,
	"GQ1": true, "GP1": true,
}

// disialoNegativeBIons is the Neu5Ac2 B-ion pair seen for every headgroup
// carrying the Neu5Ac-Neu5Ac motif. Masses are [M-H]- values.
var disialoNegativeBIons = []Fragment{
	{"HG(NeuAc2,582)", "C22H34N2O16", 581.1836, true},
	{"HG(NeuAc2-CO2,538)", "C21H34N2O14", 537.1937, true},
}

// trisialoNegativeBIons extends the disialo pair with the Neu5Ac3 B-ions.
var trisialoNegativeBIons = []Fragment{
	{"HG(NeuAc2,582)", "C22H34N2O16", 581.1836, true},
	{"HG(NeuAc2-CO2,538)", "C21H34N2O14", 537.1937, true},
	{"HG(NeuAc3,873)", "C33H51N3O24", 872.2790, true},
	{"HG(NeuAc3-CO2,829)", "C32H51N3O22", 828.2891, true},
}

// NegativeHeadgroupFragments returns the negative-mode headgroup fragments
// of a class: diagnostic B-ions plus the neutral loss ladder. Classes with
// no negative-mode chemistry yield nil.
func NegativeHeadgroupFragments(lipidClass string, precursor MolecularFormula) ([]Fragment, error) {
	var fragments []Fragment

	appendLosses := func() error {
		losses, err := HeadgroupLossFragments(lipidClass, precursor)
		if err != nil {
			return err
		}
		fragments = append(fragments, losses...)
		return nil
	}

	switch {
	case lipidClass == "SM4":
		fragments = append(fragments,
			Fragment{"HG(HSO4,97)", "H2SO4", 96.9596, true},
			Fragment{"HG(SHexCer,242)", "C6H10O8S", 241.0017, true},
			Fragment{"HG(SHexCer)+(C2H5NO)", "C8H15NO9S", 300.0389, true},
		)
		if err := appendLosses(); err != nil {
			return nil, err
		}

	case lipidClass == "SHex2":
		fragments = append(fragments,
			Fragment{"HG(HSO4,97)", "H2SO4", 96.9596, true},
			Fragment{"HG(SO3,80)", "HSO3", 79.9568, true},
			Fragment{"HG(SHex,260)", "C6H12SO9", 259.0124, true},
			Fragment{"HG(SHex,242)", "C6H10SO8", 241.0018, true},
			Fragment{"HG(SHexHex,404)", "C12H20SO13", 403.0546, true},
			Fragment{"HG(SHexHex,386)", "C12H18SO12", 385.0441, true},
			Fragment{"HG(Hex,180)", "C6H12O6", 179.0556, true},
			Fragment{"HG(Hex2,342)", "C12H22O11", 341.1084, true},
		)
		if err := appendLosses(); err != nil {
			return nil, err
		}

	case negativeSialoClasses[lipidClass]:
		fragments = append(fragments, Fragment{"HG(NeuAc,291)", "C11H17NO8", 290.0876, true})

		if lipidClass == "GD3" || lipidClass == "GD2" || lipidClass == "GD1b" {
			fragments = append(fragments, disialoNegativeBIons...)
		}
		if lipidClass == "GD1a" || lipidClass == "GD1b" {
			fragments = append(fragments, Fragment{"HG(HexNAcHex,365)", "C14H25NO10", 366.1395, true})
			if lipidClass == "GD1a" {
				fragments = append(fragments, Fragment{"HG(NeuAcHexNAcHex,656)", "C25H40N2O18", 655.2203, true})
			}
		}
		if lipidClass == "GT1a" || lipidClass == "GT1b" || lipidClass == "GT1c" {
			fragments = append(fragments, disialoNegativeBIons...)
			if lipidClass == "GT1b" {
				fragments = append(fragments, Fragment{"HG(NeuAcHexHexNAc,656)", "C25H40N2O18", 655.2203, true})
			}
			if lipidClass == "GT1c" {
				fragments = append(fragments,
					Fragment{"HG(HexHexNAc,365)", "C14H23NO10", 364.1249, true},
					Fragment{"HG(NeuAc3,873)", "C33H51N3O24", 872.2790, true},
					Fragment{"HG(NeuAc3-CO2,829)", "C32H51N3O22", 828.2891, true},
				)
			}
		}
		if lipidClass == "GT2" {
			fragments = append(fragments, trisialoNegativeBIons...)
			fragments = append(fragments, Fragment{"HG(HexNAc,203)", "C8H13NO5", 203.0721, true})
		}
		if lipidClass == "GT3" {
			fragments = append(fragments, trisialoNegativeBIons...)
		}
		if lipidClass == "GQ1" {
			fragments = append(fragments, disialoNegativeBIons...)
			fragments = append(fragments, Fragment{"HG(NeuAc2Hex,762)", "C28H46N2O22", 761.2469, true})
			fragments = append(fragments,
				Fragment{"HG(NeuAc3,873)", "C33H51N3O24", 872.2790, true},
				Fragment{"HG(NeuAc3-CO2,829)", "C32H51N3O22", 828.2891, true},
			)
		}
		if lipidClass == "GP1" {
			fragments = append(fragments, trisialoNegativeBIons...)
			fragments = append(fragments,
				Fragment{"HG(NeuAc4,1164)", "C44H68N4O32", 1163.3744, true},
				Fragment{"HG(NeuAc4-CO2,1120)", "C43H68N4O30", 1119.3846, true},
			)
		}

		if err := appendLosses(); err != nil {
			return nil, err
		}

	case lipidClass == "nLc10" || lipidClass == "nLc8" || lipidClass == "nLc6":
		fragments = append(fragments,
			Fragment{"HG(Hex,180)", "C6H12O6", 179.0561, true},
			Fragment{"HG(Hex,162)", "C6H10O5", 161.0455, true},
			Fragment{"HG(HexNAc,221)", "C8H15NO6", 220.0827, true},
			Fragment{"HG(HexNAc,203)", "C8H13NO5", 202.0721, true},
			Fragment{"HG(HexNAcHex,383)", "C14H25NO11", 382.1355, true},
			Fragment{"HG(HexNAcHex,365)", "C14H23NO10", 364.1249, true},
		)
		if err := appendLosses(); err != nil {
			return nil, err
		}
	}

	return fragments, nil
}
