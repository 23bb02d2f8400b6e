package core

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Isotope substitution mass deltas (IUPAC)
var isotopeDeltas = map[string]float64{
	"2H":  1.006276746,
	"15N": 0.997034893,
	"13C": 1.0033548378,
	"18O": 2.004244,
}

// InvalidIsotopeTokenError reports an unparseable isotope label token.
type InvalidIsotopeTokenError struct {
	Token    string
	Position int
}

func (e *InvalidIsotopeTokenError) Error() string {
	return fmt.Sprintf("unrecognized isotope label at position %d in %q (valid: D, N15, C13, O18)",
		e.Position, e.Token)
}

// ParseIsotopeLabel parses an isotope label token like "M2DN15" or "M3D"
// into isotope counts, e.g. {"2H": 2, "15N": 1}. Case-insensitive; a
// leading M is optional; a bare letter counts as 1.
func ParseIsotopeLabel(token string) (map[string]int, error) {
	token = strings.ToUpper(strings.TrimSpace(token))
	if token == "" {
		return map[string]int{}, nil
	}
	body := strings.TrimPrefix(token, "M")

	counts := map[string]int{}
	i := 0
	for i < len(body) {
		start := i
		for i < len(body) && unicode.IsDigit(rune(body[i])) {
			i++
		}
		count := 1
		if i > start {
			fmt.Sscanf(body[start:i], "%d", &count)
		}
		if i >= len(body) {
			break
		}

		switch {
		case body[i] == 'D':
			counts["2H"] += count
			i++
		case strings.HasPrefix(body[i:], "N15"):
			counts["15N"] += count
			i += 3
		case strings.HasPrefix(body[i:], "C13"):
			counts["13C"] += count
			i += 3
		case strings.HasPrefix(body[i:], "O18"):
			counts["18O"] += count
			i += 3
		default:
			return nil, &InvalidIsotopeTokenError{Token: token, Position: i}
		}
	}
	return counts, nil
}

// IsotopeMassShift sums the mass deltas of an isotope composition.
func IsotopeMassShift(counts map[string]int) float64 {
	shift := 0.0
	for isotope, count := range counts {
		shift += isotopeDeltas[isotope] * float64(count)
	}
	return shift
}

// adductInsertRE anchors the "[M" (or "[2M" etc.) head of an adduct string,
// where the isotope token is spliced in.
var adductInsertRE = regexp.MustCompile(`^\[(\d*)M`)

// heavyAdduct splices the uppercased isotope token into an adduct name:
// "[M+H]1+" with "M2DN15" becomes "[M2DN15+H]1+".
func heavyAdduct(adduct, token string) string {
	if strings.TrimSpace(adduct) == "" {
		return adduct
	}
	normalized := strings.ToUpper(strings.TrimSpace(token))
	replaced := false
	return adductInsertRE.ReplaceAllStringFunc(adduct, func(match string) string {
		if replaced {
			return match
		}
		replaced = true
		prefix := adductInsertRE.FindStringSubmatch(match)[1]
		return "[" + prefix + normalized
	})
}

// LabelOptions selects the heavy isotope tokens per class family and the
// product-name keywords that mark a product ion as label-bearing.
type LabelOptions struct {
	Isotope       string
	CerIsotope    string
	DoxCerIsotope string
	Keywords      []string
}

// DefaultLabelOptions mirrors the standard labeling scheme: dideutero/15N
// sphingosine for everything, trideutero base for 1-deoxy ceramides.
func DefaultLabelOptions() LabelOptions {
	return LabelOptions{
		Isotope:       "M2DN15",
		CerIsotope:    "M2DN15",
		DoxCerIsotope: "M3D",
		Keywords:      []string{"LCB", "precursor", "HG(-Hex"},
	}
}

func (o LabelOptions) tokenFor(listName string) string {
	switch listName {
	case "doxCer":
		return o.DoxCerIsotope
	case "Cer":
		return o.CerIsotope
	default:
		return o.Isotope
	}
}

func (o LabelOptions) labelsProduct(productName string) bool {
	lower := strings.ToLower(productName)
	for _, keyword := range o.Keywords {
		keyword = strings.TrimSpace(keyword)
		if keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}

// AddIsotopeLabels duplicates the list into light and heavy variants. Heavy
// rows get the isotope token spliced into the precursor adduct and the
// precursor m/z shifted by shift/|z|; product columns shift only when the
// product name matches a keyword (the label sits on the backbone, so only
// backbone-retaining products move).
func AddIsotopeLabels(rows []Transition, opts LabelOptions) ([]Transition, error) {
	out := make([]Transition, 0, 2*len(rows))

	for _, row := range rows {
		row.IsotopeLabelType = "light"
		out = append(out, row)
	}

	for _, row := range rows {
		token := opts.tokenFor(row.MoleculeListName)
		counts, err := ParseIsotopeLabel(token)
		if err != nil {
			return nil, fmt.Errorf("isotope label for %s: %w", row.MoleculeListName, err)
		}
		shift := IsotopeMassShift(counts)

		row.IsotopeLabelType = "heavy"
		row.PrecursorAdduct = heavyAdduct(row.PrecursorAdduct, token)
		if row.PrecursorMZ != nil {
			chargeMag := row.PrecursorCharge
			if chargeMag < 0 {
				chargeMag = -chargeMag
			}
			row.PrecursorMZ = mzValue(*row.PrecursorMZ + shift/float64(chargeMag))
		}

		if opts.labelsProduct(row.ProductName) {
			row.ProductAdduct = heavyAdduct(row.ProductAdduct, token)
			if row.ProductMZ != nil {
				row.ProductMZ = mzValue(*row.ProductMZ + shift)
			}
		}

		out = append(out, row)
	}

	return out, nil
}
