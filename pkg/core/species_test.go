package core

import (
	"math"
	"testing"
)

func TestEnumerateSpeciesCeramide(t *testing.T) {
	species, err := EnumerateSpecies("Cer", []string{"18:1;2"}, []string{"16:0"})
	if err != nil {
		t.Fatalf("EnumerateSpecies error: %v", err)
	}
	if len(species) != 1 {
		t.Fatalf("got %d species, want 1", len(species))
	}
	sp := species[0]
	if sp.Key() != "18:1;2/16:0" {
		t.Errorf("Key() = %q, want 18:1;2/16:0", sp.Key())
	}
	if got := sp.Formula.String(); got != "C34H67NO3" {
		t.Errorf("Formula = %q, want C34H67NO3", got)
	}
	mass, err := sp.Formula.Mass()
	if err != nil {
		t.Fatalf("Mass() error: %v", err)
	}
	if math.Abs(mass-537.5121) > 1e-4 {
		t.Errorf("Mass() = %.4f, want 537.5121", mass)
	}
}

func TestEnumerateSpeciesDoxCerHydroxylDefault(t *testing.T) {
	// 1-deoxy base: single hydroxyl unless the token says otherwise.
	species, err := EnumerateSpecies("doxCer", []string{"18:1"}, []string{"16:0"})
	if err != nil {
		t.Fatalf("EnumerateSpecies error: %v", err)
	}
	if got := species[0].Formula.String(); got != "C34H67NO2" {
		t.Errorf("doxCer formula = %q, want C34H67NO2", got)
	}

	// Explicit hydroxyl count overrides the class default.
	species, err = EnumerateSpecies("doxCer", []string{"18:1;2"}, []string{"16:0"})
	if err != nil {
		t.Fatalf("EnumerateSpecies error: %v", err)
	}
	if got := species[0].Formula.String(); got != "C34H67NO3" {
		t.Errorf("doxCer ;2 formula = %q, want C34H67NO3", got)
	}
}

func TestEnumerateSpeciesHeadgroupAddition(t *testing.T) {
	species, err := EnumerateSpecies("SM", []string{"18:1;2"}, []string{"16:0"})
	if err != nil {
		t.Fatalf("EnumerateSpecies error: %v", err)
	}
	// Ceramide backbone C34H67NO3 plus phosphocholine residue C5H12NO3P.
	if got := species[0].Formula.String(); got != "C39H79N2O6P" {
		t.Errorf("SM formula = %q, want C39H79N2O6P", got)
	}
}

func TestEnumerateSpeciesDefaults(t *testing.T) {
	species, err := EnumerateSpecies("GM1", nil, nil)
	if err != nil {
		t.Fatalf("EnumerateSpecies error: %v", err)
	}
	// 3 default LCBs x 22 default fatty acids.
	if len(species) != 66 {
		t.Fatalf("got %d species, want 66", len(species))
	}
	// LCB-outer, FA-inner ordering.
	if species[0].Key() != "18:0;2/16:0" {
		t.Errorf("first species = %q, want 18:0;2/16:0", species[0].Key())
	}
	if species[1].Key() != "18:0;2/16:1" {
		t.Errorf("second species = %q, want 18:0;2/16:1", species[1].Key())
	}
	if species[22].Key() != "18:1;2/16:0" {
		t.Errorf("23rd species = %q, want 18:1;2/16:0", species[22].Key())
	}
}

func TestEnumerateSpeciesMalformedTokensSkipped(t *testing.T) {
	species, err := EnumerateSpecies("Cer", []string{"18:1;2", "bogus", "0:0"}, []string{"16:0", "16:0;1", ""})
	if err != nil {
		t.Fatalf("EnumerateSpecies error: %v", err)
	}
	if len(species) != 1 {
		t.Fatalf("got %d species, want 1 (malformed tokens skipped)", len(species))
	}
}

func TestEnumerateSpeciesEmptySelections(t *testing.T) {
	species, err := EnumerateSpecies("Cer", []string{}, []string{"16:0"})
	if err != nil {
		t.Fatalf("EnumerateSpecies error: %v", err)
	}
	if len(species) != 0 {
		t.Errorf("empty LCB list: got %d species, want 0", len(species))
	}
}

func TestEnumerateSpeciesUnknownClass(t *testing.T) {
	if _, err := EnumerateSpecies("PC", nil, nil); err == nil {
		t.Fatal("expected error for unknown class")
	}
}

func TestDefaultFattyAcidTokens(t *testing.T) {
	tokens := DefaultFattyAcidTokens()
	if len(tokens) != 22 {
		t.Fatalf("got %d default fatty acids, want 22", len(tokens))
	}
	if tokens[0] != "16:0" || tokens[1] != "16:1" || tokens[21] != "26:1" {
		t.Errorf("unexpected token ordering: %v", tokens)
	}
}
