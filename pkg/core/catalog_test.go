package core

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAllLipidClasses(t *testing.T) {
	classes := AllLipidClasses()
	if len(classes) != 31 {
		t.Errorf("AllLipidClasses() returned %d classes, want 31", len(classes))
	}
	if !sort.StringsAreSorted(classes) {
		t.Error("AllLipidClasses() not sorted")
	}
	for _, want := range []string{"Cer", "doxCer", "SM", "GM1", "GP1", "nLc6", "SHex2"} {
		found := false
		for _, c := range classes {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("AllLipidClasses() missing %q", want)
		}
	}
}

func TestLipidComposition(t *testing.T) {
	tests := []struct {
		class string
		want  map[string]int
	}{
		{"Cer", map[string]int{}},
		{"SM", map[string]int{"C": 5, "H": 12, "N": 1, "O": 3, "P": 1}},
		{"GM1", map[string]int{"C": 37, "H": 60, "N": 2, "O": 28}},
		{"SM4", map[string]int{"C": 6, "H": 10, "O": 8, "S": 1}},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			got, err := LipidComposition(tt.class)
			if err != nil {
				t.Fatalf("LipidComposition(%q) error: %v", tt.class, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LipidComposition(%q) mismatch (-want +got):\n%s", tt.class, diff)
			}
		})
	}
}

func TestLipidCompositionUnknownClass(t *testing.T) {
	_, err := LipidComposition("PC")
	if err == nil {
		t.Fatal("LipidComposition(PC): expected error")
	}
	var unknownErr *UnknownLipidClassError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownLipidClassError, got %T", err)
	}
}

func TestLipidCompositionReturnsCopy(t *testing.T) {
	first, _ := LipidComposition("GM3")
	first["C"] = 0
	second, _ := LipidComposition("GM3")
	if second["C"] != 23 {
		t.Errorf("catalog mutated through returned map: C = %d, want 23", second["C"])
	}
}

func TestClassPredicates(t *testing.T) {
	if !IsCeramideClass("Cer") || !IsCeramideClass("doxCer") {
		t.Error("Cer and doxCer must be ceramide classes")
	}
	if IsCeramideClass("SM") || IsCeramideClass("GM1") {
		t.Error("SM and GM1 must not be ceramide classes")
	}
	if !IsGSLClass("GM1") || !IsGSLClass("SM4") {
		t.Error("GM1 and SM4 must be GSL classes")
	}
	if IsGSLClass("SM") || IsGSLClass("Cer") {
		t.Error("SM and Cer must not be GSL classes")
	}
}

func TestRecommendedCharges(t *testing.T) {
	tests := []struct {
		class string
		want  []int
	}{
		{"Cer", []int{1}},
		{"doxCer", []int{1}},
		{"Hex", []int{1}},
		{"GM1", []int{1, 2}},
		{"GD1a", []int{2, 3}},
		{"GT1b", []int{2, 3}},
		{"GQ1", []int{3, 4}},
		{"GP1", []int{3, 4, 5}},
		{"SM", []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, RecommendedCharges(tt.class)); diff != "" {
				t.Errorf("RecommendedCharges(%q) mismatch (-want +got):\n%s", tt.class, diff)
			}
		})
	}
}

func TestSialicAcidCount(t *testing.T) {
	tests := []struct {
		class string
		want  int
	}{
		{"GM3", 1}, {"GD1a", 2}, {"GT1b", 3}, {"GQ1", 4}, {"GP1", 5}, {"Hex", 0},
	}
	for _, tt := range tests {
		if got := SialicAcidCount(tt.class); got != tt.want {
			t.Errorf("SialicAcidCount(%q) = %d, want %d", tt.class, got, tt.want)
		}
	}
}
