// Package core lipid class catalogs. All headgroup compositions are
// dehydrated residues, verified or calculated from verified structures.
package core

import (
	"fmt"
	"sort"
)

// UnknownLipidClassError reports a lipid class not present in any catalog.
type UnknownLipidClassError struct {
	Class string
}

func (e *UnknownLipidClassError) Error() string {
	return fmt.Sprintf("unknown lipid class: %s", e.Class)
}

// gslHeadgroupCompositions holds the dehydrated glycan/sulfo headgroup
// residues of the GSL classes.
var gslHeadgroupCompositions = map[string]map[string]int{
	"Hex":   {"C": 6, "H": 10, "O": 5},
	"SM4":   {"C": 6, "H": 10, "O": 8, "S": 1},
	"Lac":   {"C": 12, "H": 20, "O": 10},
	"LC3":   {"C": 20, "H": 33, "N": 1, "O": 15},
	"LC4":   {"C": 26, "H": 43, "N": 1, "O": 20},
	"Gb3":   {"C": 18, "H": 30, "O": 15},
	"Gb4":   {"C": 26, "H": 43, "N": 1, "O": 20},
	"GA2":   {"C": 20, "H": 33, "N": 1, "O": 15},
	"GA1":   {"C": 26, "H": 43, "N": 1, "O": 20},
	"GM4":   {"C": 17, "H": 27, "N": 1, "O": 13},
	"GM3":   {"C": 23, "H": 37, "N": 1, "O": 18},
	"GM2":   {"C": 31, "H": 50, "N": 2, "O": 23},
	"GM1":   {"C": 37, "H": 60, "N": 2, "O": 28},
	"GD3":   {"C": 34, "H": 54, "N": 2, "O": 26},
	"GD2":   {"C": 42, "H": 67, "N": 3, "O": 31},
	"GD1a":  {"C": 48, "H": 77, "N": 3, "O": 36},
	"GD1b":  {"C": 48, "H": 77, "N": 3, "O": 36},
	"GT3":   {"C": 45, "H": 71, "N": 3, "O": 34},
	"GT2":   {"C": 53, "H": 84, "N": 4, "O": 39},
	"GT1a":  {"C": 59, "H": 94, "N": 4, "O": 44},
	"GT1b":  {"C": 59, "H": 94, "N": 4, "O": 44},
	"GT1c":  {"C": 59, "H": 94, "N": 4, "O": 44},
	"GQ1":   {"C": 70, "H": 111, "N": 5, "O": 52},
	"GP1":   {"C": 81, "H": 128, "N": 6, "O": 60},
	"nLc10": {"C": 68, "H": 112, "N": 4, "O": 50},
	"nLc8":  {"C": 54, "H": 89, "N": 3, "O": 40},
	"nLc6":  {"C": 40, "H": 66, "N": 2, "O": 30},
	"SHex2": {"C": 12, "H": 20, "O": 13, "S": 1},
}

// Ceramide bodies carry no headgroup; the ceramide is the backbone.
var ceramideCompositions = map[string]map[string]int{
	"Cer":    {},
	"doxCer": {},
}

var smCompositions = map[string]map[string]int{
	"SM": {"C": 5, "H": 12, "N": 1, "O": 3, "P": 1},
}

// LipidComposition returns the dehydrated headgroup residue composition for
// a lipid class. The returned map is a copy.
func LipidComposition(lipidClass string) (map[string]int, error) {
	for _, catalog := range []map[string]map[string]int{
		gslHeadgroupCompositions, ceramideCompositions, smCompositions,
	} {
		if comp, ok := catalog[lipidClass]; ok {
			out := make(map[string]int, len(comp))
			for element, count := range comp {
				out[element] = count
			}
			return out, nil
		}
	}
	return nil, &UnknownLipidClassError{Class: lipidClass}
}

// AllLipidClasses returns the union of all three catalogs in lexicographic
// order. The ordering is user visible (CLI choices, selection UIs).
func AllLipidClasses() []string {
	var classes []string
	for class := range gslHeadgroupCompositions {
		classes = append(classes, class)
	}
	for class := range ceramideCompositions {
		classes = append(classes, class)
	}
	for class := range smCompositions {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	return classes
}

// IsCeramideClass reports whether the class is in the ceramide-family catalog.
func IsCeramideClass(lipidClass string) bool {
	_, ok := ceramideCompositions[lipidClass]
	return ok
}

// IsGSLClass reports whether the class is a glycosphingolipid headgroup class.
func IsGSLClass(lipidClass string) bool {
	_, ok := gslHeadgroupCompositions[lipidClass]
	return ok
}

var molecularWeightRanges = map[string]string{
	"Hex": "600-900",
	"Lac": "700-800", "LC3": "900-1000", "LC4": "1100-1200",
	"Gb3": "1000-1100", "Gb4": "1200-1400",
	"GA2": "1000-1100", "GA1": "1200-1400",
	"GM4": "1000-1200",
	"GM3": "1200-1300", "GM2": "1400-1500", "GM1": "1500-1600",
	"GD3": "1500-1600", "GD2": "1700-1800", "GD1a": "1800-1900", "GD1b": "1800-1900",
	"GT3": "1700-1900", "GT2": "1900-2100", "GT1a": "2000-2400", "GT1b": "2000-2400", "GT1c": "2000-2400",
	"GQ1": "2300-2400", "GP1": "2600-2700",
	"Cer": "500-750", "doxCer": "480-730",
	"SM": "650-900", "SM4": "700-1100",
	"nLc10": "2200-2500",
	"nLc8":  "1900-2200",
	"nLc6":  "1500-1800",
	"SHex2": "700-1100",
}

// MolecularWeightRange returns the display-only MW range in Da.
func MolecularWeightRange(lipidClass string) string {
	if r, ok := molecularWeightRanges[lipidClass]; ok {
		return r
	}
	return "500-2000"
}

var sialicAcidCounts = map[string]int{
	"GM4": 1, "GM3": 1, "GM2": 1, "GM1": 1,
	"GD3": 2, "GD2": 2, "GD1a": 2, "GD1b": 2,
	"GT3": 3, "GT2": 3, "GT1a": 3, "GT1b": 3, "GT1c": 3,
	"GQ1": 4, "GP1": 5,
}

// SialicAcidCount returns the number of Neu5Ac residues in the headgroup.
func SialicAcidCount(lipidClass string) int {
	return sialicAcidCounts[lipidClass]
}

var structureDescriptions = map[string]string{
	"doxCer": "headless, 1-deoxy-Ceramide",
	"Cer":    "HO-",
	"Hex":    "β-D-Glc- or β-D-Gal-linked Ceramide (Hexosylceramide)",
	"SM4":    "3-O-sulfated Gal-Cer (Sulfatide)",
	"Lac":    "Galβ1-4Glc-Cer (Lactosyl-Ceramide)",
	"LC3":    "GlcNAcβ1-3Galβ1-4Glc-Cer (Lacto/neoLacto-series), isobaric to GA2",
	"LC4":    "Galβ1-3GlcNAcβ1-3Galβ1-4Glc-Cer (Lacto-series)",
	"Gb3":    "Galα1-4Galβ1-4Glc-Cer (Globotriaosylceramide)",
	"Gb4":    "GalNAcβ1-3Galα1-4Galβ1-4Glc-Cer (isobaric to GA1)",
	"GA2":    "GalNAcβ1-4Galβ1-4Glc-Cer (asialo-GM2), isobaric to Lc3",
	"GA1":    "Galβ1-3GalNAcβ1-4Galβ1-4Glc-Cer (asialo-GM1)",
	"GM4":    "Neu5Acα2-3Galβ-Cer",
	"GM3":    "NeuAcα2-3Galβ1-4Glcβ-Cer",
	"GM2":    "GalNAcβ1-4(NeuAcα2-3)Galβ1-4Glcβ-Cer",
	"GM1":    "Galβ1-3GalNAcβ1-4(NeuAcα2-3)Galβ1-4Glcβ-Cer",
	"GD3":    "NeuAcα2-8NeuAcα2-3Galβ1-4Glcβ-Cer",
	"GD2":    "GalNAcβ1-4(NeuAcα2-8NeuAcα2-3)Galβ1-4Glcβ-Cer",
	"GD1a":   "NeuAcα2-3Galβ1-3GalNAcβ1-4(NeuAcα2-3)Galβ1-4Glcβ-Cer",
	"GD1b":   "Galβ1-3GalNAcβ1-4(NeuAcα2-8NeuAcα2-3)Galβ1-4Glcβ-Cer",
	"GT3":    "Neu5Acα2-8Neu5Acα2-8Neu5Acα2-3Galβ1-4Glcβ-Cer",
	"GT2":    "GalNAcβ1-4(Neu5Acα2-8Neu5Acα2-8Neu5Acα2-3)Galβ1-4Glcβ-Cer",
	"GT1a":   "Neu5Acα2-8Neu5Acα2-3Galβ1-3GalNAcβ1-4(Neu5Acα2-3)Galβ1-4Glcβ-Cer",
	"GT1b":   "Neu5Acα2-3Galβ1-3GalNAcβ1-4(Neu5Acα2-8Neu5Acα2-3)Galβ1-4Glcβ-Cer",
	"GT1c":   "Galβ1-3GalNAcβ1-4(NeuAcα2-8NeuAcα2-8NeuAcα2-3)Galβ1-4Glcβ-Cer",
	"SM":     "Phosphocholine-Cer (Sphingomyelin)",
	"nLc10":  "GlcNAcβ1-3Galβ1-4GlcNAcβ1-3(Galα1-3Galβ1-4GlcNAcβ1-6)Galβ1-4GlcNAcβ1-3Galβ1-4Glcβ-Cer",
	"nLc8":   "Galβ1-4GlcNAcβ1-3(Galβ1-4GlcNAcβ1-6)Galβ1-4GlcNAcβ1-3Galβ1-4Glcβ-Cer",
	"nLc6":   "Galβ1-4GlcNAcβ1-3Galβ1-4GlcNAcβ1-3Galβ1-4Glcβ-Cer",
	"SHex2":  "Sulfated dihexosylceramide",
}

// StructureDescription returns a human-readable structure string.
func StructureDescription(lipidClass string) string {
	if s, ok := structureDescriptions[lipidClass]; ok {
		return s
	}
	return "Structure not specified"
}

// RecommendedCharges returns the charge states typically observed for a
// lipid class, bucketed by headgroup size. GP1 and GQ1 carry explicit
// overrides.
func RecommendedCharges(lipidClass string) []int {
	if IsCeramideClass(lipidClass) {
		return []int{1}
	}

	smallGSL := map[string]bool{
		"Hex": true, "SM4": true, "Lac": true, "SHex2": true,
		"LC3": true, "LC4": true, "GA1": true, "GA2": true,
	}
	mediumGSL := map[string]bool{"GM3": true, "GM2": true, "GM1": true, "GD3": true}
	largeGSL := map[string]bool{
		"GD2": true, "GD1a": true, "GD1b": true, "GD1c": true,
		"GT3": true, "GT2": true,
	}
	veryLargeGSL := map[string]bool{"GT1a": true, "GT1b": true, "GQ1": true, "GP1": true}

	switch {
	case smallGSL[lipidClass]:
		return []int{1}
	case mediumGSL[lipidClass]:
		return []int{1, 2}
	case largeGSL[lipidClass]:
		return []int{2, 3}
	case veryLargeGSL[lipidClass]:
		switch lipidClass {
		case "GP1":
			return []int{3, 4, 5}
		case "GQ1":
			return []int{3, 4}
		default: // GT1a, GT1b
			return []int{2, 3}
		}
	default:
		return []int{1, 2}
	}
}
