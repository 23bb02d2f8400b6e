package core

import (
	"log/slog"
	"regexp"
	"strconv"
)

// chainTokenRE matches chain descriptors of the form
// carbons:unsaturations[;hydroxyls], e.g. "18:1;2" or "16:0".
var chainTokenRE = regexp.MustCompile(`^(\d+):(\d+)(?:;(\d+))?$`)

// Species pairs one long-chain base with one fatty acid for a lipid class.
type Species struct {
	LCB     string
	FA      string
	Formula MolecularFormula
}

// Key returns the species identity key "{lcb}/{fa}".
func (s Species) Key() string {
	return s.LCB + "/" + s.FA
}

// DefaultLCBTokens returns the standard long-chain base selection for a
// lipid class. 1-deoxy ceramides use the monohydroxy bases.
func DefaultLCBTokens(lipidClass string) []string {
	if lipidClass == "doxCer" {
		return []string{"18:0;1", "18:1;1"}
	}
	return []string{"18:0;2", "18:1;2", "18:2;2"}
}

// DefaultFattyAcidTokens returns the default acyl chain selection:
// lengths 16-26 (even and odd) with 0 or 1 double bonds.
func DefaultFattyAcidTokens() []string {
	var tokens []string
	for length := 16; length <= 26; length++ {
		for _, unsat := range []int{0, 1} {
			tokens = append(tokens, strconv.Itoa(length)+":"+strconv.Itoa(unsat))
		}
	}
	return tokens
}

// parseLCBComposition parses a long-chain base token. LCB hydrogens follow
// the amino-alcohol arithmetic H = 2C + 3 - 2U; the hydroxyl count defaults
// to 1 for doxCer and 2 otherwise.
func parseLCBComposition(token, lipidClass string) (map[string]int, bool) {
	m := chainTokenRE.FindStringSubmatch(token)
	if m == nil {
		return nil, false
	}
	carbons, _ := strconv.Atoi(m[1])
	unsaturations, _ := strconv.Atoi(m[2])
	if carbons < 1 {
		return nil, false
	}
	hydroxyls := 2
	if lipidClass == "doxCer" {
		hydroxyls = 1
	}
	if m[3] != "" {
		hydroxyls, _ = strconv.Atoi(m[3])
	}
	return map[string]int{
		"C": carbons,
		"H": 2*carbons + 3 - 2*unsaturations,
		"N": 1,
		"O": hydroxyls,
	}, true
}

// parseFAComposition parses a fatty acid token. FA hydrogens follow the
// carboxylic-acid arithmetic H = 2C - 2U; both acid oxygens are counted
// here and the amide condensation is folded in during backbone assembly.
func parseFAComposition(token string) (map[string]int, bool) {
	m := chainTokenRE.FindStringSubmatch(token)
	if m == nil || m[3] != "" {
		return nil, false
	}
	carbons, _ := strconv.Atoi(m[1])
	unsaturations, _ := strconv.Atoi(m[2])
	if carbons < 1 {
		return nil, false
	}
	return map[string]int{
		"C": carbons,
		"H": 2*carbons - 2*unsaturations,
		"O": 2,
	}, true
}

// EnumerateSpecies produces every LCB x FA combination for a lipid class as
// neutral molecular formulas, in LCB-outer/FA-inner order. Tokens that do
// not parse are logged and skipped. Nil token lists fall back to the
// compiled-in defaults; empty non-nil lists enumerate nothing.
func EnumerateSpecies(lipidClass string, lcbTokens, faTokens []string) ([]Species, error) {
	headgroup, err := LipidComposition(lipidClass)
	if err != nil {
		return nil, err
	}

	if lcbTokens == nil {
		lcbTokens = DefaultLCBTokens(lipidClass)
	}
	if faTokens == nil {
		faTokens = DefaultFattyAcidTokens()
	}

	type chain struct {
		token       string
		composition map[string]int
	}

	var lcbs []chain
	for _, token := range lcbTokens {
		comp, ok := parseLCBComposition(token, lipidClass)
		if !ok {
			slog.Warn("skipping malformed LCB token", "token", token)
			continue
		}
		lcbs = append(lcbs, chain{token, comp})
	}

	var fas []chain
	for _, token := range faTokens {
		comp, ok := parseFAComposition(token)
		if !ok {
			slog.Warn("skipping malformed fatty acid token", "token", token)
			continue
		}
		fas = append(fas, chain{token, comp})
	}

	var species []Species
	for _, lcb := range lcbs {
		for _, fa := range fas {
			// Amide condensation: backbone loses one water relative to the
			// free chains, with one oxygen already folded into the FA count.
			backbone := map[string]int{
				"C": lcb.composition["C"] + fa.composition["C"],
				"H": lcb.composition["H"] + fa.composition["H"] - 2,
				"N": lcb.composition["N"],
				"O": lcb.composition["O"] + fa.composition["O"] - 1,
			}

			final := map[string]int{
				"C": backbone["C"] + headgroup["C"],
				"H": backbone["H"] + headgroup["H"],
				"N": backbone["N"] + headgroup["N"],
				"O": backbone["O"] + headgroup["O"],
				"P": headgroup["P"],
				"S": headgroup["S"],
			}

			species = append(species, Species{
				LCB:     lcb.token,
				FA:      fa.token,
				Formula: NewMolecularFormula(final),
			})
		}
	}

	return species, nil
}
