package core

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseIsotopeLabel(t *testing.T) {
	tests := []struct {
		token string
		want  map[string]int
	}{
		{"M2DN15", map[string]int{"2H": 2, "15N": 1}},
		{"M3D", map[string]int{"2H": 3}},
		{"M4D2N15", map[string]int{"2H": 4, "15N": 2}},
		{"m2dn15", map[string]int{"2H": 2, "15N": 1}},
		{"DC13", map[string]int{"2H": 1, "13C": 1}},
		{"M2O18", map[string]int{"18O": 2}},
		{"", map[string]int{}},
		{"  ", map[string]int{}},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseIsotopeLabel(tt.token)
			if err != nil {
				t.Fatalf("ParseIsotopeLabel(%q) error: %v", tt.token, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseIsotopeLabel(%q) mismatch (-want +got):\n%s", tt.token, diff)
			}
		})
	}
}

func TestParseIsotopeLabelInvalid(t *testing.T) {
	for _, token := range []string{"M2X", "MN14", "2Q"} {
		_, err := ParseIsotopeLabel(token)
		if err == nil {
			t.Errorf("ParseIsotopeLabel(%q): expected error", token)
			continue
		}
		var invalid *InvalidIsotopeTokenError
		if !errors.As(err, &invalid) {
			t.Errorf("ParseIsotopeLabel(%q): expected InvalidIsotopeTokenError, got %T", token, err)
		}
	}
}

func TestIsotopeMassShift(t *testing.T) {
	counts, err := ParseIsotopeLabel("M2DN15")
	if err != nil {
		t.Fatal(err)
	}
	want := 2*1.006276746 + 0.997034893
	if got := IsotopeMassShift(counts); math.Abs(got-want) > massTolerance {
		t.Errorf("IsotopeMassShift = %.9f, want %.9f", got, want)
	}
}

func TestHeavyAdduct(t *testing.T) {
	tests := []struct {
		adduct string
		token  string
		want   string
	}{
		{"[M+H]1+", "M2DN15", "[M2DN15+H]1+"},
		{"[M-2H]2-", "M3D", "[M3D-2H]2-"},
		{"[2M+H]1+", "M2DN15", "[2M2DN15+H]1+"},
		{"[M+H]1+", "m2dn15", "[M2DN15+H]1+"},
		{"", "M2DN15", ""},
	}
	for _, tt := range tests {
		if got := heavyAdduct(tt.adduct, tt.token); got != tt.want {
			t.Errorf("heavyAdduct(%q, %q) = %q, want %q", tt.adduct, tt.token, got, tt.want)
		}
	}
}

func TestAddIsotopeLabels(t *testing.T) {
	rows, err := GenerateTransitions("Cer", []int{1}, []string{"[M+H]+"}, []string{"18:1;2"}, []string{"16:0"})
	if err != nil {
		t.Fatal(err)
	}
	labeled, err := AddIsotopeLabels(rows, DefaultLabelOptions())
	if err != nil {
		t.Fatal(err)
	}
	if len(labeled) != 2*len(rows) {
		t.Fatalf("got %d rows, want %d", len(labeled), 2*len(rows))
	}

	light := labeled[:len(rows)]
	heavy := labeled[len(rows):]

	for i, row := range light {
		if row.IsotopeLabelType != "light" {
			t.Fatalf("light row %d labeled %q", i, row.IsotopeLabelType)
		}
		if row.PrecursorAdduct != rows[i].PrecursorAdduct || *row.PrecursorMZ != *rows[i].PrecursorMZ {
			t.Fatalf("light row %d altered", i)
		}
	}

	shift := 2*1.006276746 + 0.997034893

	heavyPrecursor := heavy[0]
	if heavyPrecursor.IsotopeLabelType != "heavy" {
		t.Fatalf("heavy row labeled %q", heavyPrecursor.IsotopeLabelType)
	}
	if heavyPrecursor.PrecursorAdduct != "[M2DN15+H]1+" {
		t.Errorf("heavy precursor adduct = %q", heavyPrecursor.PrecursorAdduct)
	}
	wantMZ := RoundFloat(*rows[0].PrecursorMZ+shift, 4)
	if math.Abs(*heavyPrecursor.PrecursorMZ-wantMZ) > 1e-4 {
		t.Errorf("heavy precursor m/z = %v, want %v", *heavyPrecursor.PrecursorMZ, wantMZ)
	}
	// The precursor product row matches the "precursor" keyword and shifts too.
	if heavyPrecursor.ProductAdduct != "[M2DN15+H]1+" {
		t.Errorf("heavy precursor product adduct = %q", heavyPrecursor.ProductAdduct)
	}
	if math.Abs(*heavyPrecursor.ProductMZ-wantMZ) > 1e-4 {
		t.Errorf("heavy precursor product m/z = %v, want %v", *heavyPrecursor.ProductMZ, wantMZ)
	}

	// LCB product rows match the "LCB" keyword: adduct rewritten, unscaled shift.
	for i, row := range heavy {
		if row.ProductName == "LCB 18:1;2(-HO)" {
			if row.ProductAdduct != "[M2DN15+H]1+" {
				t.Errorf("heavy LCB product adduct = %q", row.ProductAdduct)
			}
			want := RoundFloat(*rows[i].ProductMZ+shift, 4)
			if math.Abs(*row.ProductMZ-want) > 1e-4 {
				t.Errorf("heavy LCB product m/z = %v, want %v", *row.ProductMZ, want)
			}
		}
	}
}

func TestAddIsotopeLabelsKeywordGate(t *testing.T) {
	rows, err := GenerateTransitions("GM1", []int{1}, []string{"[M+H]+"}, []string{"18:1;2"}, []string{"18:0"})
	if err != nil {
		t.Fatal(err)
	}
	labeled, err := AddIsotopeLabels(rows, DefaultLabelOptions())
	if err != nil {
		t.Fatal(err)
	}
	heavy := labeled[len(rows):]

	for i, row := range heavy {
		// Oxonium ions carry no backbone atoms: product columns untouched.
		if row.ProductName == "HG(NeuAc,309)" {
			if row.ProductAdduct != rows[i].ProductAdduct {
				t.Errorf("oxonium product adduct rewritten: %q", row.ProductAdduct)
			}
			if *row.ProductMZ != *rows[i].ProductMZ {
				t.Errorf("oxonium product m/z shifted: %v", *row.ProductMZ)
			}
			// Precursor columns still shift on every heavy row.
			if row.PrecursorAdduct == rows[i].PrecursorAdduct {
				t.Error("heavy precursor adduct not rewritten")
			}
		}
	}
}

func TestAddIsotopeLabelsPerClassTokens(t *testing.T) {
	rows, err := GenerateTransitions("doxCer", []int{1}, []string{"[M+H]+"}, []string{"18:1;1"}, []string{"16:0"})
	if err != nil {
		t.Fatal(err)
	}
	labeled, err := AddIsotopeLabels(rows, DefaultLabelOptions())
	if err != nil {
		t.Fatal(err)
	}
	heavy := labeled[len(rows):]
	if heavy[0].PrecursorAdduct != "[M3D+H]1+" {
		t.Errorf("doxCer heavy adduct = %q, want [M3D+H]1+", heavy[0].PrecursorAdduct)
	}
}

func TestAddIsotopeLabelsInvalidToken(t *testing.T) {
	rows, err := GenerateTransitions("Cer", []int{1}, []string{"[M+H]+"}, []string{"18:1;2"}, []string{"16:0"})
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultLabelOptions()
	opts.CerIsotope = "M2Q"
	if _, err := AddIsotopeLabels(rows, opts); err == nil {
		t.Fatal("expected error for invalid isotope token")
	}
}
