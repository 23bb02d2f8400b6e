// Package cmd provides CLI command implementations
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Flags for generate command
	lipidClass    string
	outputFile    string
	outputFormat  string
	chargeStates  []int
	autoCharges   bool
	adducts       []string
	lcbTokens     []string
	faTokens      []string
	configFile    string
	addLabels     bool
	isotope       string
	cerIsotope    string
	doxCerIsotope string
	labelKeywords string
	blankMZ       bool
	verbose       bool
)

var rootCmd = &cobra.Command{
	Use:   "gslgen",
	Short: "gslgen - GSL and ceramide transition list generator",
	Long: `gslgen generates targeted MS transition lists for glycosphingolipids,
ceramides and sphingomyelin.

Precursor and product m/z values are calculated from exact monoisotopic
masses with per-class fragmentation rules:
- Headgroup neutral losses (Y-ions) and oxonium ions (B-ions)
- Long-chain base and fatty acid fragments, both polarities
- Multiply charged precursors and diagnostic 2- product ions
- Optional stable isotope labels (light/heavy pairs)`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(classesCmd)

	generateCmd.Flags().StringVarP(&lipidClass, "lipid-class", "l", "", "Lipid class to generate (required, see 'gslgen classes')")
	generateCmd.Flags().StringVarP(&outputFile, "out", "o", "", "Output file (default <class>_transitions_final.csv)")
	generateCmd.Flags().StringVarP(&outputFormat, "format", "f", "csv", "Output format: csv or sqlite")
	generateCmd.Flags().IntSliceVar(&chargeStates, "charge-states", nil, "Charge states to include (1-5)")
	generateCmd.Flags().BoolVar(&autoCharges, "auto-charges", false, "Use recommended charge states for the class")
	generateCmd.Flags().StringSliceVar(&adducts, "adducts", nil, "Specific adducts to generate (e.g. '[M+H]+,[M+Na]+')")
	generateCmd.Flags().StringSliceVar(&lcbTokens, "lcbs", nil, "Long-chain base tokens (default from config)")
	generateCmd.Flags().StringSliceVar(&faTokens, "fatty-acids", nil, "Fatty acid tokens (default from config)")
	generateCmd.Flags().StringVar(&configFile, "config", "", "Config file path (default gsl_config.json if present)")
	generateCmd.Flags().BoolVar(&addLabels, "add-labels", false, "Add isotope labels (light/heavy pairs)")
	generateCmd.Flags().StringVar(&isotope, "isotope", "M2DN15", "Isotope token for GSLs")
	generateCmd.Flags().StringVar(&cerIsotope, "cer-isotope", "M2DN15", "Isotope token for Cer")
	generateCmd.Flags().StringVar(&doxCerIsotope, "doxcer-isotope", "M3D", "Isotope token for doxCer")
	generateCmd.Flags().StringVar(&labelKeywords, "lcb", "LCB,precursor,HG(-Hex", "Comma-separated product-name keywords that carry the label")
	generateCmd.Flags().BoolVar(&blankMZ, "blank-mz", false, "Blank all m/z values in the output")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	generateCmd.MarkFlagRequired("lipid-class")
}
