// Package core implements the transition generation engine for
// glycosphingolipid (GSL), ceramide and sphingomyelin targeted MS assays:
// molecular formula arithmetic, lipid class catalogs, species enumeration,
// fragment rule tables, adduct combinatorics and isotope labeling.
package core

import (
	"fmt"
	"math"
	"strings"
)

// Atomic masses (monoisotopic, IUPAC 2016)
const (
	MassC = 12.0000000
	MassH = 1.00782503223
	MassN = 14.0030740048
	MassO = 15.9949146223
	MassP = 30.9737619985
	MassS = 31.9720711744

	// Proton mass for charge calculations
	ProtonMass = 1.007276466812

	// Neutral water, used in glycosidic cleavage arithmetic
	WaterMass = 18.0105647
)

var atomicMasses = map[string]float64{
	"C": MassC,
	"H": MassH,
	"N": MassN,
	"O": MassO,
	"P": MassP,
	"S": MassS,
}

// elementOrder is the canonical rendering order for formula strings.
var elementOrder = [...]string{"C", "H", "N", "O", "P", "S"}

// UnknownElementError reports a mass calculation over an element symbol
// that has no registered atomic mass. Mass lookups never default to zero;
// a silent zero would corrupt every downstream m/z.
type UnknownElementError struct {
	Element string
}

func (e *UnknownElementError) Error() string {
	return fmt.Sprintf("unknown element symbol %q in molecular formula", e.Element)
}

// MolecularFormula is an element-count aggregate. Zero and negative counts
// are never stored. Values are immutable in effect: Add and Subtract return
// a fresh formula instead of mutating the receiver, so a precursor formula
// can never alias one of its derived fragments.
type MolecularFormula struct {
	elements map[string]int
}

// NewMolecularFormula builds a formula from element counts, dropping
// non-positive entries.
func NewMolecularFormula(elements map[string]int) MolecularFormula {
	normalized := make(map[string]int, len(elements))
	for element, count := range elements {
		if count > 0 {
			normalized[element] = count
		}
	}
	return MolecularFormula{elements: normalized}
}

// Count returns the stored count for an element (zero if absent).
func (f MolecularFormula) Count(element string) int {
	return f.elements[element]
}

// Elements returns a copy of the element-count mapping.
func (f MolecularFormula) Elements() map[string]int {
	out := make(map[string]int, len(f.elements))
	for element, count := range f.elements {
		out[element] = count
	}
	return out
}

// Add returns a new formula with the delta applied element-wise.
// Non-positive resulting counts are dropped.
func (f MolecularFormula) Add(delta map[string]int) MolecularFormula {
	result := f.Elements()
	for element, count := range delta {
		result[element] += count
	}
	return NewMolecularFormula(result)
}

// Subtract returns a new formula with the loss removed element-wise.
func (f MolecularFormula) Subtract(loss map[string]int) MolecularFormula {
	negated := make(map[string]int, len(loss))
	for element, count := range loss {
		negated[element] = -count
	}
	return f.Add(negated)
}

// Mass returns the exact monoisotopic mass of the formula. An element
// without a registered atomic mass is an UnknownElementError.
func (f MolecularFormula) Mass() (float64, error) {
	total := 0.0
	for element, count := range f.elements {
		atomicMass, ok := atomicMasses[element]
		if !ok {
			return 0, &UnknownElementError{Element: element}
		}
		total += atomicMass * float64(count)
	}
	return total, nil
}

// String renders the formula in fixed C,H,N,O,P,S order, omitting zero
// counts and the digit 1 (e.g. C34H67NO3).
func (f MolecularFormula) String() string {
	var b strings.Builder
	for _, element := range elementOrder {
		count := f.elements[element]
		if count <= 0 {
			continue
		}
		b.WriteString(element)
		if count > 1 {
			fmt.Fprintf(&b, "%d", count)
		}
	}
	return b.String()
}

// RoundFloat rounds a float to n decimal places
func RoundFloat(val float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
