package core

import (
	"log/slog"
	"strings"
)

// Transition is one row of the Skyline-style transition list. The m/z
// columns are pointers so a blanked list (template export) keeps every other
// column intact.
type Transition struct {
	MoleculeListName string
	Molecule         string
	MoleculeFormula  string
	PrecursorAdduct  string
	PrecursorMZ      *float64
	PrecursorCharge  int
	ProductName      string
	ProductFormula   string
	ProductAdduct    string
	ProductMZ        *float64
	ProductCharge    int
	IsotopeLabelType string
}

// mzValue rounds an m/z to 4 decimals and boxes it.
func mzValue(mz float64) *float64 {
	v := RoundFloat(mz, 4)
	return &v
}

// doublyChargedGT1 matches the sialyl losses that survive as 2- product
// ions in the trisialo series.
func doublyChargedGT1(name string) bool {
	return strings.Contains(name, "-Neu5Ac,309") || strings.Contains(name, "-Neu5Ac,291")
}

var doublyChargedGP1 = map[string]bool{
	"HG(-Neu5Ac,309)":  true,
	"HG(-Neu5Ac2,600)": true,
}

var doublyChargedNLc10 = map[string]bool{
	"HG(-HexNAc,221)":     true,
	"HG(-HexNAcHex,383)":  true,
	"HG(-HexNAc2Hex,586)": true,
}

// GenerateTransitions builds the full transition list for a lipid class over
// the requested charge states and optional adduct/chain selections. Rows
// come out in deterministic order: species, then adduct, then rule-table
// order within each block.
func GenerateTransitions(lipidClass string, chargeStates []int, selectedAdducts, selectedLCBs, selectedFAs []string) ([]Transition, error) {
	slog.Info("generating transitions", "class", lipidClass, "charges", chargeStates)

	species, err := EnumerateSpecies(lipidClass, selectedLCBs, selectedFAs)
	if err != nil {
		return nil, err
	}
	adducts := AdductDefinitions(chargeStates, selectedAdducts)

	isCeramide := IsCeramideClass(lipidClass)
	isDoxCer := lipidClass == "doxCer"
	isGSL := IsGSLClass(lipidClass)
	hasHeadgroup := isGSL || lipidClass == "SM" || lipidClass == "SM4"

	var transitions []Transition

	for _, sp := range species {
		var precursorName string
		if isCeramide {
			precursorName = lipidClass + "(" + sp.Key() + ")"
		} else {
			precursorName = lipidClass + " " + sp.Key()
		}

		formulaStr := sp.Formula.String()
		precursorMass, err := sp.Formula.Mass()
		if err != nil {
			return nil, err
		}

		for _, adduct := range adducts {
			chargeMag := adduct.Charge
			if chargeMag < 0 {
				chargeMag = -chargeMag
			}
			precursorMZ := (precursorMass + adduct.MassDelta) / float64(chargeMag)

			base := Transition{
				MoleculeListName: lipidClass,
				Molecule:         precursorName,
				MoleculeFormula:  formulaStr,
				PrecursorAdduct:  adduct.Name,
				PrecursorMZ:      mzValue(precursorMZ),
				PrecursorCharge:  adduct.Charge,
			}

			row := base
			row.ProductName = "precursor"
			row.ProductFormula = formulaStr
			row.ProductAdduct = adduct.Name
			row.ProductMZ = mzValue(precursorMZ)
			row.ProductCharge = adduct.Charge
			transitions = append(transitions, row)

			positive := adduct.Polarity == PolarityPositive

			if positive {
				dehydrated := sp.Formula.Subtract(map[string]int{"H": 2, "O": 1})
				dehydratedMass, err := dehydrated.Mass()
				if err != nil {
					return nil, err
				}
				row = base
				row.ProductName = "precursor-(H2O,18)"
				row.ProductFormula = dehydrated.String()
				row.ProductAdduct = adduct.Name
				row.ProductMZ = mzValue((dehydratedMass + adduct.MassDelta) / float64(chargeMag))
				row.ProductCharge = adduct.Charge
				transitions = append(transitions, row)
			}

			fragmentCharge := 1
			fragmentAdduct := "[M+H]1+"
			if !positive {
				fragmentCharge = -1
				fragmentAdduct = "[M-H]1-"
			}

			if positive {
				var lcbFragments []Fragment
				switch {
				case isCeramide:
					lcbFragments = CeramideLCBFragments(sp.LCB, isDoxCer)
				case lipidClass == "SM" || lipidClass == "SM4":
					lcbFragments = CeramideLCBFragments(sp.LCB, false)
				case isGSL:
					lcbFragments = GSLLCBFragments(sp.LCB)
				}
				for _, frag := range lcbFragments {
					row = base
					row.ProductName = frag.Name
					row.ProductFormula = frag.Formula
					row.ProductAdduct = fragmentAdduct
					row.ProductMZ = mzValue(frag.Mass)
					row.ProductCharge = fragmentCharge
					transitions = append(transitions, row)
				}
			}

			if !hasHeadgroup {
				continue
			}

			if positive {
				hgFragments, err := PositiveHeadgroupFragments(lipidClass, sp.Formula)
				if err != nil {
					return nil, err
				}
				for _, frag := range hgFragments {
					mz := frag.Mass
					if !frag.PreIonized {
						mz += ProtonMass
					}
					row = base
					row.ProductName = frag.Name
					row.ProductFormula = frag.Formula
					row.ProductAdduct = fragmentAdduct
					row.ProductMZ = mzValue(mz)
					row.ProductCharge = 1
					transitions = append(transitions, row)
				}
				continue
			}

			hgFragments, err := NegativeHeadgroupFragments(lipidClass, sp.Formula)
			if err != nil {
				return nil, err
			}
			for _, frag := range hgFragments {
				var mz float64
				switch {
				case frag.PreIonized:
					mz = frag.Mass
				case strings.HasPrefix(frag.Name, "HG(-"):
					// Glycosidic Y-ion: restore the cleavage water, then
					// deprotonate.
					mz = frag.Mass + WaterMass - ProtonMass
				default:
					mz = frag.Mass - ProtonMass
				}
				row = base
				row.ProductName = frag.Name
				row.ProductFormula = frag.Formula
				row.ProductAdduct = fragmentAdduct
				row.ProductMZ = mzValue(mz)
				row.ProductCharge = -1
				transitions = append(transitions, row)
			}

			multiplyCharged := chargeMag >= 2

			if isGSL && multiplyCharged &&
				(lipidClass == "GT1a" || lipidClass == "GT1b" || lipidClass == "GT1c") {
				for _, frag := range hgFragments {
					if !doublyChargedGT1(frag.Name) {
						continue
					}
					var mz float64
					if strings.HasPrefix(frag.Name, "HG(-") {
						mz = (frag.Mass + WaterMass - 2*ProtonMass) / 2
					} else {
						mz = (frag.Mass - 2*ProtonMass) / 2
					}
					row = base
					row.ProductName = frag.Name + " [Z=2]"
					row.ProductFormula = frag.Formula
					row.ProductAdduct = "[M-2H]2-"
					row.ProductMZ = mzValue(mz)
					row.ProductCharge = -2
					transitions = append(transitions, row)
				}
			}

			if isGSL && multiplyCharged && lipidClass == "GP1" {
				for _, frag := range hgFragments {
					if !doublyChargedGP1[frag.Name] {
						continue
					}
					row = base
					row.ProductName = frag.Name + " [Z=2]"
					row.ProductFormula = frag.Formula
					row.ProductAdduct = "[M-2H]2-"
					row.ProductMZ = mzValue((frag.Mass - 2*ProtonMass) / 2)
					row.ProductCharge = -2
					transitions = append(transitions, row)
				}
			}

			if isGSL && multiplyCharged && (lipidClass == "nLc10" || lipidClass == "nLc8") {
				for _, frag := range hgFragments {
					matched := false
					if lipidClass == "nLc10" {
						matched = doublyChargedNLc10[frag.Name]
					} else {
						matched = frag.Name == "HG(-Hex,180)"
					}
					if !matched {
						continue
					}
					row = base
					row.ProductName = frag.Name + " [Z=2]"
					row.ProductFormula = frag.Formula
					row.ProductAdduct = "[M-2H]2-"
					row.ProductMZ = mzValue((frag.Mass - 2*ProtonMass) / 2)
					row.ProductCharge = -2
					transitions = append(transitions, row)
				}
			}

			for _, frag := range NegativeLCBFragments(sp.LCB) {
				row = base
				row.ProductName = frag.Name
				row.ProductFormula = frag.Formula
				row.ProductAdduct = fragmentAdduct
				row.ProductMZ = mzValue(frag.Mass)
				row.ProductCharge = fragmentCharge
				transitions = append(transitions, row)
			}

			for _, frag := range NegativeFAFragments(sp.FA) {
				row = base
				row.ProductName = frag.Name
				row.ProductFormula = frag.Formula
				row.ProductAdduct = fragmentAdduct
				row.ProductMZ = mzValue(frag.Mass)
				row.ProductCharge = fragmentCharge
				transitions = append(transitions, row)
			}
		}
	}

	slog.Info("transition generation complete", "class", lipidClass, "rows", len(transitions))
	return transitions, nil
}

// BlankMZValues clears both m/z columns of every row, for exporting a
// template list that the instrument software recalculates. Idempotent.
func BlankMZValues(rows []Transition) []Transition {
	out := make([]Transition, len(rows))
	for i, row := range rows {
		row.PrecursorMZ = nil
		row.ProductMZ = nil
		out[i] = row
	}
	return out
}
