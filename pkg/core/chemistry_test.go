package core

import (
	"errors"
	"math"
	"testing"
)

const massTolerance = 1e-6

func TestMolecularFormulaMass(t *testing.T) {
	tests := []struct {
		name     string
		elements map[string]int
		want     float64
	}{
		{"water", map[string]int{"H": 2, "O": 1}, 18.0105646467},
		{"glucose", map[string]int{"C": 6, "H": 12, "O": 6}, 180.0633881178},
		{"ceramide d18:1/16:0", map[string]int{"C": 34, "H": 67, "N": 1, "O": 3}, 537.5120950},
		{"empty", map[string]int{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewMolecularFormula(tt.elements)
			got, err := f.Mass()
			if err != nil {
				t.Fatalf("Mass() error: %v", err)
			}
			if math.Abs(got-tt.want) > massTolerance {
				t.Errorf("Mass() = %.7f, want %.7f", got, tt.want)
			}
		})
	}
}

func TestMolecularFormulaMassUnknownElement(t *testing.T) {
	f := NewMolecularFormula(map[string]int{"C": 1, "Xx": 2})
	_, err := f.Mass()
	if err == nil {
		t.Fatal("Mass() with unknown element: expected error, got nil")
	}
	var unknownErr *UnknownElementError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownElementError, got %T", err)
	}
	if unknownErr.Element != "Xx" {
		t.Errorf("Element = %q, want %q", unknownErr.Element, "Xx")
	}
}

func TestMolecularFormulaString(t *testing.T) {
	tests := []struct {
		name     string
		elements map[string]int
		want     string
	}{
		{"canonical order", map[string]int{"O": 3, "C": 34, "N": 1, "H": 67}, "C34H67NO3"},
		{"omits unit counts", map[string]int{"C": 1, "H": 1, "N": 1}, "CHN"},
		{"drops zero counts", map[string]int{"C": 6, "H": 12, "O": 6, "P": 0}, "C6H12O6"},
		{"sulfur last", map[string]int{"C": 6, "H": 10, "O": 8, "S": 1}, "C6H10O8S"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewMolecularFormula(tt.elements).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMolecularFormulaAddSubtract(t *testing.T) {
	base := NewMolecularFormula(map[string]int{"C": 6, "H": 12, "O": 6})

	sum := base.Add(map[string]int{"C": 1, "H": 2})
	if got := sum.String(); got != "C7H14O6" {
		t.Errorf("Add: got %q, want C7H14O6", got)
	}

	diff := base.Subtract(map[string]int{"H": 2, "O": 1})
	if got := diff.String(); got != "C6H10O5" {
		t.Errorf("Subtract: got %q, want C6H10O5", got)
	}

	// Receiver must be untouched after derivations.
	if got := base.String(); got != "C6H12O6" {
		t.Errorf("base mutated: got %q, want C6H12O6", got)
	}

	// Over-subtraction drops the element instead of going negative.
	gone := base.Subtract(map[string]int{"O": 10})
	if gone.Count("O") != 0 {
		t.Errorf("Subtract below zero: O count = %d, want 0", gone.Count("O"))
	}
}

func TestMolecularFormulaElementsCopy(t *testing.T) {
	f := NewMolecularFormula(map[string]int{"C": 2, "H": 6})
	m := f.Elements()
	m["C"] = 99
	if f.Count("C") != 2 {
		t.Errorf("Elements() exposed internal map: C = %d, want 2", f.Count("C"))
	}
}

func TestRoundFloat(t *testing.T) {
	tests := []struct {
		val       float64
		precision int
		want      float64
	}{
		{537.51209503, 4, 537.5121},
		{538.51937149, 4, 538.5194},
		{310.11334, 4, 310.1133},
		{-1.00726, 2, -1.01},
	}
	for _, tt := range tests {
		if got := RoundFloat(tt.val, tt.precision); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RoundFloat(%v, %d) = %v, want %v", tt.val, tt.precision, got, tt.want)
		}
	}
}
