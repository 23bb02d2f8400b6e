package core

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func countProduct(rows []Transition, productName string) int {
	n := 0
	for _, row := range rows {
		if row.ProductName == productName {
			n++
		}
	}
	return n
}

func TestGenerateTransitionsCeramidePositive(t *testing.T) {
	rows, err := GenerateTransitions("Cer", []int{1}, []string{"[M+H]+"}, []string{"18:1;2"}, []string{"16:0"})
	if err != nil {
		t.Fatalf("GenerateTransitions error: %v", err)
	}
	// Precursor + water loss + 3 LCB fragments; no headgroup block for Cer.
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5", len(rows))
	}

	precursor := rows[0]
	if precursor.Molecule != "Cer(18:1;2/16:0)" {
		t.Errorf("Molecule = %q, want Cer(18:1;2/16:0)", precursor.Molecule)
	}
	if precursor.MoleculeFormula != "C34H67NO3" {
		t.Errorf("MoleculeFormula = %q", precursor.MoleculeFormula)
	}
	if precursor.PrecursorAdduct != "[M+H]1+" || precursor.PrecursorCharge != 1 {
		t.Errorf("precursor adduct/charge = %q/%d", precursor.PrecursorAdduct, precursor.PrecursorCharge)
	}
	if precursor.PrecursorMZ == nil || math.Abs(*precursor.PrecursorMZ-538.5194) > 1e-4 {
		t.Errorf("precursor m/z = %v, want 538.5194", precursor.PrecursorMZ)
	}
	if precursor.ProductName != "precursor" || *precursor.ProductMZ != *precursor.PrecursorMZ {
		t.Errorf("precursor row product = %q/%v", precursor.ProductName, precursor.ProductMZ)
	}

	waterLoss := rows[1]
	if waterLoss.ProductName != "precursor-(H2O,18)" {
		t.Fatalf("second row = %q, want precursor-(H2O,18)", waterLoss.ProductName)
	}
	if waterLoss.ProductFormula != "C34H65NO2" {
		t.Errorf("water loss formula = %q, want C34H65NO2", waterLoss.ProductFormula)
	}
	if math.Abs(*waterLoss.ProductMZ-(*precursor.PrecursorMZ-18.0106)) > 1e-3 {
		t.Errorf("water loss m/z = %v", *waterLoss.ProductMZ)
	}

	lcb := rows[2]
	if lcb.ProductName != "LCB 18:1;2(-HO)" || *lcb.ProductMZ != 282.2791 {
		t.Errorf("LCB row = %q/%v", lcb.ProductName, *lcb.ProductMZ)
	}
	if lcb.ProductAdduct != "[M+H]1+" || lcb.ProductCharge != 1 {
		t.Errorf("LCB row adduct/charge = %q/%d", lcb.ProductAdduct, lcb.ProductCharge)
	}
}

func TestGenerateTransitionsCeramideNegative(t *testing.T) {
	rows, err := GenerateTransitions("Cer", []int{1}, []string{"[M-H]-"}, []string{"18:1;2"}, []string{"16:0"})
	if err != nil {
		t.Fatal(err)
	}
	// Ceramides carry no headgroup, so negative mode is precursor-only.
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].PrecursorCharge != -1 || rows[0].ProductName != "precursor" {
		t.Errorf("row = %+v", rows[0])
	}
}

func TestGenerateTransitionsGM1Defaults(t *testing.T) {
	rows, err := GenerateTransitions("GM1", []int{1}, []string{"[M+H]+"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	// 66 default species, one precursor row each.
	if got := countProduct(rows, "precursor"); got != 66 {
		t.Errorf("precursor rows = %d, want 66", got)
	}
	// Per species: precursor + water loss + 3 LCB + 16 headgroup rows.
	if len(rows) != 66*21 {
		t.Errorf("total rows = %d, want %d", len(rows), 66*21)
	}
	// Positive product ions are singly charged.
	for _, row := range rows {
		if row.ProductCharge < 1 {
			t.Fatalf("positive mode row with product charge %d: %q", row.ProductCharge, row.ProductName)
		}
	}
}

func TestGenerateTransitionsGT1bDoublyCharged(t *testing.T) {
	rows, err := GenerateTransitions("GT1b", []int{2}, []string{"[M-2H]2-"}, []string{"18:1;2"}, []string{"18:0"})
	if err != nil {
		t.Fatal(err)
	}
	// Precursor + 12 negative headgroup + 1 doubly charged + 2 LCB + 3 FA.
	if len(rows) != 19 {
		t.Fatalf("got %d rows, want 19", len(rows))
	}

	if got := countProduct(rows, "HG(-Neu5Ac,309) [Z=2]"); got != 1 {
		t.Errorf("doubly charged rows = %d, want 1", got)
	}
	for _, row := range rows {
		if row.ProductName == "HG(-Neu5Ac,309) [Z=2]" {
			if row.ProductAdduct != "[M-2H]2-" || row.ProductCharge != -2 {
				t.Errorf("Z=2 row adduct/charge = %q/%d", row.ProductAdduct, row.ProductCharge)
			}
		}
	}

	// Singly charged Y-ion arithmetic: loss fragment + H2O - proton.
	var y1, z2 *Transition
	for i := range rows {
		switch rows[i].ProductName {
		case "HG(-Neu5Ac,309)":
			y1 = &rows[i]
		case "HG(-Neu5Ac,309) [Z=2]":
			z2 = &rows[i]
		}
	}
	if y1 == nil || z2 == nil {
		t.Fatal("missing Neu5Ac loss rows")
	}
	// (m1 + proton) relates the singly and doubly charged m/z values:
	// m1 = M + H2O - H+, m2 = (M + H2O - 2H+)/2.
	if math.Abs(2*(*z2.ProductMZ)-(*y1.ProductMZ-ProtonMass)) > 1e-3 {
		t.Errorf("charge-state arithmetic mismatch: y=%.4f z2=%.4f", *y1.ProductMZ, *z2.ProductMZ)
	}
}

func TestGenerateTransitionsGP1DoublyCharged(t *testing.T) {
	rows, err := GenerateTransitions("GP1", []int{3}, []string{"[M-3H]3-"}, []string{"18:1;2"}, []string{"18:0"})
	if err != nil {
		t.Fatal(err)
	}
	// GP1 allowlist is exact names, without the glycosidic water.
	if got := countProduct(rows, "HG(-Neu5Ac,309) [Z=2]"); got != 1 {
		t.Errorf("HG(-Neu5Ac,309) [Z=2] rows = %d, want 1", got)
	}
	if got := countProduct(rows, "HG(-Neu5Ac2,600) [Z=2]"); got != 1 {
		t.Errorf("HG(-Neu5Ac2,600) [Z=2] rows = %d, want 1", got)
	}
}

func TestGenerateTransitionsDeterministic(t *testing.T) {
	first, err := GenerateTransitions("GM3", []int{1, 2}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := GenerateTransitions("GM3", []int{1, 2}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated generation differs (-first +second):\n%s", diff)
	}
}

func TestBlankMZValues(t *testing.T) {
	rows, err := GenerateTransitions("Cer", []int{1}, nil, []string{"18:1;2"}, []string{"16:0"})
	if err != nil {
		t.Fatal(err)
	}
	blanked := BlankMZValues(rows)
	for i, row := range blanked {
		if row.PrecursorMZ != nil || row.ProductMZ != nil {
			t.Fatalf("row %d not blanked", i)
		}
		if row.ProductName != rows[i].ProductName || row.PrecursorAdduct != rows[i].PrecursorAdduct {
			t.Fatalf("row %d lost non-m/z columns", i)
		}
	}
	// Source rows stay intact and blanking is idempotent.
	if rows[0].PrecursorMZ == nil {
		t.Error("BlankMZValues mutated its input")
	}
	again := BlankMZValues(blanked)
	if again[0].PrecursorMZ != nil {
		t.Error("BlankMZValues not idempotent")
	}
}
