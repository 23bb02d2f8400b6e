package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huelslab/gslgen/pkg/core"
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List supported lipid classes",
	Long:  "List every supported lipid class with structure, MW range and recommended charge states.",
	RunE:  runClasses,
}

func runClasses(cmd *cobra.Command, args []string) error {
	fmt.Printf("%-8s %-10s %-12s %s\n", "Class", "MW (Da)", "Charges", "Structure")
	fmt.Println(strings.Repeat("-", 100))

	for _, class := range core.AllLipidClasses() {
		charges := core.RecommendedCharges(class)
		chargeStrs := make([]string, len(charges))
		for i, z := range charges {
			chargeStrs[i] = fmt.Sprintf("%d", z)
		}
		fmt.Printf("%-8s %-10s %-12s %s\n",
			class,
			core.MolecularWeightRange(class),
			strings.Join(chargeStrs, ","),
			core.StructureDescription(class))
	}
	return nil
}
