package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huelslab/gslgen/pkg/config"
	"github.com/huelslab/gslgen/pkg/core"
	"github.com/huelslab/gslgen/pkg/writer/csv"
	"github.com/huelslab/gslgen/pkg/writer/sqlite"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a transition list for a lipid class",
	Long: `Generate a Skyline-style transition list for one lipid class.

Chain selections (long-chain bases and fatty acids) come from flags when
given, otherwise from gsl_config.json, otherwise from compiled-in defaults.

Examples:
  gslgen generate -l Cer
  gslgen generate -l GM1 --auto-charges -o gm1.csv
  gslgen generate -l GT1b --charge-states 2,3 --add-labels
  gslgen generate -l SM --format sqlite -o sm_method.db`,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := validateLipidClass(lipidClass); err != nil {
		return err
	}

	cfgPath := configFile
	if cfgPath == "" {
		cfgPath = config.DefaultFileName
	}
	cfg := config.Load(cfgPath)

	charges, err := resolveChargeStates(cfg)
	if err != nil {
		return err
	}

	lcbs := lcbTokens
	if lcbs == nil {
		lcbs = cfg.LCBList(lipidClass)
	}
	fas := faTokens
	if fas == nil {
		fas = cfg.FattyAcidList()
	}

	var selectedAdducts []string
	if adducts != nil {
		selectedAdducts = adducts
	} else {
		selectedAdducts = cfg.SelectedAdducts
	}

	fmt.Printf("Lipid class: %s\n", lipidClass)
	if structure := core.StructureDescription(lipidClass); structure != "Structure not specified" {
		fmt.Printf("Structure: %s\n", structure)
	}
	fmt.Printf("MW range: %s Da\n", core.MolecularWeightRange(lipidClass))
	fmt.Printf("Charge states: %v\n", charges)

	rows, err := core.GenerateTransitions(lipidClass, charges, selectedAdducts, lcbs, fas)
	if err != nil {
		return fmt.Errorf("generating transitions: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no transitions generated for %s; check chain and adduct selections", lipidClass)
	}

	if addLabels || cfg.IsotopeLabeling.Enabled {
		opts := labelOptions(cmd, cfg)
		rows, err = core.AddIsotopeLabels(rows, opts)
		if err != nil {
			return fmt.Errorf("adding isotope labels: %w", err)
		}
		fmt.Printf("Isotope labels: light/heavy pairs (%s)\n", opts.Isotope)
	}

	if blankMZ || cfg.IsotopeLabeling.BlankMZ {
		rows = core.BlankMZValues(rows)
		fmt.Println("m/z values blanked")
	}

	out := outputFile
	if out == "" {
		out = defaultOutputName(lipidClass, outputFormat)
	}

	switch outputFormat {
	case "csv":
		if err := csv.WriteFile(out, rows); err != nil {
			return err
		}
	case "sqlite":
		w, err := sqlite.NewWriter(out)
		if err != nil {
			return err
		}
		if err := w.WriteTransitions(rows); err != nil {
			w.Close()
			return err
		}
		if err := w.Finalize(lipidClass); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format: %s (want csv or sqlite)", outputFormat)
	}

	fmt.Printf("Wrote %d transitions to %s\n", len(rows), out)

	if verbose {
		printSample(rows)
	}
	return nil
}

func validateLipidClass(class string) error {
	for _, known := range core.AllLipidClasses() {
		if class == known {
			return nil
		}
	}
	return fmt.Errorf("unknown lipid class %q; run 'gslgen classes' for the full list", class)
}

// resolveChargeStates picks explicit --charge-states first, then
// --auto-charges, then the config, then singly charged.
func resolveChargeStates(cfg config.Config) ([]int, error) {
	if chargeStates != nil {
		for _, z := range chargeStates {
			if z < 1 || z > 5 {
				return nil, fmt.Errorf("charge state %d out of range 1-5", z)
			}
		}
		return chargeStates, nil
	}
	if autoCharges {
		return core.RecommendedCharges(lipidClass), nil
	}
	if len(cfg.ChargeStates) > 0 {
		return cfg.ChargeStates, nil
	}
	return []int{1}, nil
}

func labelOptions(cmd *cobra.Command, cfg config.Config) core.LabelOptions {
	opts := core.LabelOptions{
		Isotope:       isotope,
		CerIsotope:    cerIsotope,
		DoxCerIsotope: doxCerIsotope,
	}
	if cfg.IsotopeLabeling.Enabled && !addLabels {
		opts.Isotope = cfg.IsotopeLabeling.GSLIsotope
		opts.CerIsotope = cfg.IsotopeLabeling.CerIsotope
		opts.DoxCerIsotope = cfg.IsotopeLabeling.DoxCerIsotope
	}

	keywords := labelKeywords
	if cfg.IsotopeLabeling.Enabled && !cmd.Flags().Changed("lcb") {
		keywords = cfg.IsotopeLabeling.LabelKeywords
	}
	for _, kw := range strings.Split(keywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			opts.Keywords = append(opts.Keywords, kw)
		}
	}
	return opts
}

func defaultOutputName(class, format string) string {
	if format == "sqlite" {
		return strings.ToLower(class) + "_transitions_final.db"
	}
	return strings.ToLower(class) + "_transitions_final.csv"
}

// printSample prints the first transitions of the list for a quick sanity
// check without opening the output file.
func printSample(rows []core.Transition) {
	n := len(rows)
	if n > 10 {
		n = 10
	}
	fmt.Println("\nSample transitions:")
	for _, row := range rows[:n] {
		precursor := "-"
		if row.PrecursorMZ != nil {
			precursor = fmt.Sprintf("%.4f", *row.PrecursorMZ)
		}
		product := "-"
		if row.ProductMZ != nil {
			product = fmt.Sprintf("%.4f", *row.ProductMZ)
		}
		fmt.Printf("  %-28s %s %s -> %-24s %s\n",
			row.Molecule, row.PrecursorAdduct, precursor, row.ProductName, product)
	}
	if len(rows) > n {
		fmt.Printf("  ... and %d more\n", len(rows)-n)
	}
}
