package core

// Fragment is one product-ion rule entry. Mass is either a ready m/z value
// (PreIonized) or a neutral fragment mass that still needs the polarity
// arithmetic applied at emission time.
type Fragment struct {
	Name       string
	Formula    string
	Mass       float64
	PreIonized bool
}

// standardLCBFragments holds the positive-mode long-chain base product ions
// of the dihydroxy and trihydroxy bases, keyed by chain token. Masses are
// protonated m/z values.
var standardLCBFragments = map[string][]Fragment{
	"16:0;2": {
		{"LCB 16:0;2(-HO)", "C16H33NO", 256.2635, true},
		{"LCB 16:0;2(-H3O2)", "C16H31N", 238.2529, true},
		{"LCB 16:0;2(-CH3O2)", "C15H31N", 226.2529, true},
	},
	"16:1;2": {
		{"LCB 16:1;2(-HO)", "C16H31NO", 254.2478, true},
		{"LCB 16:1;2(-H3O2)", "C16H29N", 236.2373, true},
		{"LCB 16:1;2(-CH3O2)", "C15H29N", 224.2373, true},
	},
	"17:0;2": {
		{"LCB 17:0;2(-HO)", "C17H35NO", 270.2791, true},
		{"LCB 17:0;2(-H3O2)", "C17H33N", 252.2686, true},
		{"LCB 17:0;2(-CH3O2)", "C16H33N", 240.2686, true},
	},
	"17:1;2": {
		{"LCB 17:1;2(-HO)", "C17H33NO", 268.2635, true},
		{"LCB 17:1;2(-H3O2)", "C17H31N", 250.2529, true},
		{"LCB 17:1;2(-CH3O2)", "C16H31N", 238.2529, true},
	},
	"18:0;2": {
		{"LCB 18:0;2(-HO)", "C18H37NO", 284.2948, true},
		{"LCB 18:0;2(-H3O2)", "C18H35N", 266.2842, true},
		{"LCB 18:0;2(-CH3O2)", "C17H35N", 254.2842, true},
	},
	"18:1;2": {
		{"LCB 18:1;2(-HO)", "C18H35NO", 282.2791, true},
		{"LCB 18:1;2(-H3O2)", "C18H33N", 264.2686, true},
		{"LCB 18:1;2(-CH3O2)", "C17H33N", 252.2686, true},
	},
	"18:2;2": {
		{"LCB 18:2;2(-HO)", "C18H33NO", 280.2635, true},
		{"LCB 18:2;2(-H3O2)", "C18H31N", 262.2529, true},
		{"LCB 18:2;2(-CH3O2)", "C17H31N", 250.2529, true},
	},
	"18:0;3": {
		{"LCB 18:0;3(-HO)", "C18H37NO2", 300.2897, true},
		{"LCB 18:0;3(-H3O2)", "C18H35NO", 282.2791, true},
		{"LCB 18:0;3(-CH3O2)", "C17H35NO", 270.2791, true},
	},
	"19:0;2": {
		{"LCB 19:0;2(-HO)", "C19H39NO", 298.3104, true},
		{"LCB 19:0;2(-H3O2)", "C19H37N", 280.2999, true},
		{"LCB 19:0;2(-CH3O2)", "C18H37N", 268.2999, true},
	},
	"19:1;2": {
		{"LCB 19:1;2(-HO)", "C19H37NO", 296.2948, true},
		{"LCB 19:1;2(-H3O2)", "C19H35N", 278.2842, true},
		{"LCB 19:1;2(-CH3O2)", "C18H35N", 266.2842, true},
	},
	"20:0;2": {
		{"LCB 20:0;2(-HO)", "C20H41NO", 312.3261, true},
		{"LCB 20:0;2(-H3O2)", "C20H39N", 294.3156, true},
		{"LCB 20:0;2(-CH3O2)", "C19H39N", 282.3156, true},
	},
	"20:1;2": {
		{"LCB 20:1;2(-HO)", "C20H39NO", 310.3104, true},
		{"LCB 20:1;2(-H3O2)", "C20H37N", 292.2999, true},
		{"LCB 20:1;2(-CH3O2)", "C19H37N", 280.2999, true},
	},
}

// deoxyLCBFragments holds the positive-mode 1-deoxy base product ions.
// 1-deoxy bases lack the C1 hydroxyl, so the dehydration ladder is shorter.
var deoxyLCBFragments = map[string][]Fragment{
	"18:0;1": {
		{"doxLCB 18:0;1", "C18H39NO", 286.3104, true},
		{"doxLCB 18:0;1(-H2O)", "C18H37N", 268.2999, true},
	},
	"18:1;1": {
		{"doxLCB 18:1;1", "C18H37NO", 284.2948, true},
		{"doxLCB 18:1;1(-H2O)", "C18H35N", 266.2842, true},
	},
	"19:0;1": {
		{"doxLCB 19:0;1", "C19H41NO", 300.3261, true},
		{"doxLCB 19:0;1(-H2O)", "C19H39N", 282.3156, true},
	},
	"20:0;1": {
		{"doxLCB 20:0;1", "C20H43NO", 314.3417, true},
		{"doxLCB 20:0;1(-H2O)", "C20H41N", 296.3312, true},
	},
}

// CeramideLCBFragments returns the positive-mode base fragments for a chain
// token. Deoxy selects the 1-deoxy table; unknown tokens yield nil.
func CeramideLCBFragments(lcbType string, deoxy bool) []Fragment {
	if deoxy {
		return deoxyLCBFragments[lcbType]
	}
	return standardLCBFragments[lcbType]
}

// GSLLCBFragments returns the positive-mode base fragments used for the
// glycosylated and phosphocholine classes. These always carry a standard
// dihydroxy or trihydroxy base.
func GSLLCBFragments(lcbType string) []Fragment {
	return standardLCBFragments[lcbType]
}
