// Package config persists user chain and labeling selections as a JSON
// sidecar file next to the working directory. A missing or corrupt file
// falls back to the compiled-in defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "gsl_config.json"

// LCBSelections holds the long-chain base tokens per class family.
type LCBSelections struct {
	Standard []string `json:"standard"`
	DoxCer   []string `json:"doxCer"`
}

// FattyAcidRange describes the generated acyl chain series.
type FattyAcidRange struct {
	MinLength     int   `json:"min_length"`
	MaxLength     int   `json:"max_length"`
	Unsaturations []int `json:"unsaturations"`
	EvenChainOnly bool  `json:"even_chain_only"`
}

// IsotopeLabeling holds the heavy-label settings.
type IsotopeLabeling struct {
	Enabled       bool   `json:"enabled"`
	GSLIsotope    string `json:"gsl_isotope"`
	CerIsotope    string `json:"cer_isotope"`
	DoxCerIsotope string `json:"doxcer_isotope"`
	LabelKeywords string `json:"label_keywords"`
	BlankMZ       bool   `json:"blank_mz"`
}

// Config is the persisted selection state.
type Config struct {
	LCBSelections      LCBSelections   `json:"lcb_selections"`
	FattyAcidRange     FattyAcidRange  `json:"fatty_acid_range"`
	SelectedFattyAcids []string        `json:"selected_fatty_acids"`
	ChargeStates       []int           `json:"charge_states"`
	SelectedAdducts    []string        `json:"selected_adducts"`
	IsotopeLabeling    IsotopeLabeling `json:"isotope_labeling"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		LCBSelections: LCBSelections{
			Standard: []string{"18:0;2", "18:1;2", "18:2;2"},
			DoxCer:   []string{"18:0;1", "18:1;1"},
		},
		FattyAcidRange: FattyAcidRange{
			MinLength:     16,
			MaxLength:     26,
			Unsaturations: []int{0, 1},
			EvenChainOnly: false,
		},
		SelectedFattyAcids: nil,
		ChargeStates:       []int{1},
		SelectedAdducts:    nil,
		IsotopeLabeling: IsotopeLabeling{
			Enabled:       false,
			GSLIsotope:    "M2DN15",
			CerIsotope:    "M2DN15",
			DoxCerIsotope: "M3D",
			LabelKeywords: "LCB,precursor,HG(-Hex",
			BlankMZ:       false,
		},
	}
}

// Load reads the config file at path. A missing or unparseable file yields
// the defaults rather than an error.
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return cfg
}

// Save writes the config as indented JSON.
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// LCBList returns the configured long-chain bases for a lipid class.
func (c Config) LCBList(lipidClass string) []string {
	if lipidClass == "doxCer" {
		return c.LCBSelections.DoxCer
	}
	return c.LCBSelections.Standard
}

// FattyAcidList returns the explicit fatty acid selection if set, otherwise
// expands the configured chain range.
func (c Config) FattyAcidList() []string {
	if len(c.SelectedFattyAcids) > 0 {
		return c.SelectedFattyAcids
	}

	var fattyAcids []string
	for length := c.FattyAcidRange.MinLength; length <= c.FattyAcidRange.MaxLength; length++ {
		if c.FattyAcidRange.EvenChainOnly && length%2 != 0 {
			continue
		}
		for _, unsat := range c.FattyAcidRange.Unsaturations {
			fattyAcids = append(fattyAcids, strconv.Itoa(length)+":"+strconv.Itoa(unsat))
		}
	}
	return fattyAcids
}
