package core

// Ion polarity values for AdductInfo.
const (
	PolarityPositive = "positive"
	PolarityNegative = "negative"
)

// AdductInfo describes one ionization adduct: display name, mass delta
// relative to the neutral mass, signed charge and polarity. The charge sign
// always matches the polarity.
type AdductInfo struct {
	Name      string
	MassDelta float64
	Charge    int
	Polarity  string
}

// Adduct component masses
const (
	massNa  = 22.98976928
	massNH4 = 18.03383
)

// adductMap indexes the full adduct table by charge magnitude, then by the
// selection name used on the CLI (suffix-free spelling, e.g. "[M+H]+").
var adductMap = map[int]map[string]AdductInfo{
	1: {
		"[M+H]+":       {"[M+H]1+", ProtonMass, 1, PolarityPositive},
		"[M-H]-":       {"[M-H]1-", -ProtonMass, -1, PolarityNegative},
		"[M+Na]+":      {"[M+Na]1+", massNa, 1, PolarityPositive},
		"[M+NH4]+":     {"[M+NH4]1+", massNH4, 1, PolarityPositive},
		"[M+CH3COO]-":  {"[M+CH3COO]1-", 59.013851, -1, PolarityNegative},
		"[M+HCOO]-":    {"[M+HCOO]1-", 44.998201, -1, PolarityNegative},
	},
	2: {
		"[M+2H]2+":   {"[M+2H]2+", 2 * ProtonMass, 2, PolarityPositive},
		"[M-2H]2-":   {"[M-2H]2-", -2 * ProtonMass, -2, PolarityNegative},
		"[M+H+Na]2+": {"[M+H+Na]2+", ProtonMass + massNa, 2, PolarityPositive},
		"[M+2Na]2+":  {"[M+2Na]2+", 2 * massNa, 2, PolarityPositive},
	},
	3: {
		"[M+3H]3+":    {"[M+3H]3+", 3 * ProtonMass, 3, PolarityPositive},
		"[M-3H]3-":    {"[M-3H]3-", -3 * ProtonMass, -3, PolarityNegative},
		"[M+2H+Na]3+": {"[M+2H+Na]3+", 2*ProtonMass + massNa, 3, PolarityPositive},
		"[M+H+2Na]3+": {"[M+H+2Na]3+", ProtonMass + 2*massNa, 3, PolarityPositive},
		"[M+3Na]3+":   {"[M+3Na]3+", 3 * massNa, 3, PolarityPositive},
	},
	4: {
		"[M+4H]4+": {"[M+4H]4+", 4 * ProtonMass, 4, PolarityPositive},
		"[M-4H]4-": {"[M-4H]4-", -4 * ProtonMass, -4, PolarityNegative},
	},
	5: {
		"[M+5H]5+": {"[M+5H]5+", 5 * ProtonMass, 5, PolarityPositive},
		"[M-5H]5-": {"[M-5H]5-", -5 * ProtonMass, -5, PolarityNegative},
	},
}

// canonicalAdducts lists, per charge magnitude, the default positive and
// negative adduct pair used when no explicit selection is given.
var canonicalAdducts = map[int][2]string{
	1: {"[M+H]+", "[M-H]-"},
	2: {"[M+2H]2+", "[M-2H]2-"},
	3: {"[M+3H]3+", "[M-3H]3-"},
	4: {"[M+4H]4+", "[M-4H]4-"},
	5: {"[M+5H]5+", "[M-5H]5-"},
}

// AdductNames returns the selection names available for a charge magnitude.
func AdductNames(charge int) []string {
	table, ok := adductMap[charge]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	return names
}

// AdductDefinitions resolves charge states and optional adduct selections
// into concrete adducts. With no selection it yields one canonical
// protonated/deprotonated pair per requested charge, in charge-state order;
// with a selection it filters the per-charge tables to the requested names.
func AdductDefinitions(chargeStates []int, selectedAdducts []string) []AdductInfo {
	var adducts []AdductInfo

	if selectedAdducts == nil {
		for _, charge := range chargeStates {
			pair, ok := canonicalAdducts[charge]
			if !ok {
				continue
			}
			adducts = append(adducts, adductMap[charge][pair[0]], adductMap[charge][pair[1]])
		}
		return adducts
	}

	for _, name := range selectedAdducts {
		for _, charge := range chargeStates {
			table, ok := adductMap[charge]
			if !ok {
				continue
			}
			if adduct, ok := table[name]; ok {
				adducts = append(adducts, adduct)
			}
		}
	}
	return adducts
}
