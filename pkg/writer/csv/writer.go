// Package csv serializes transition lists in the Skyline transition-list
// column layout.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/huelslab/gslgen/pkg/core"
)

// baseColumns is the Skyline small-molecule transition list header.
var baseColumns = []string{
	"Molecule List Name",
	"Molecule",
	"Molecule Formula",
	"Precursor Adduct",
	"Precursor m/z",
	"Precursor Charge",
	"Product Name",
	"Product Formula",
	"Product Adduct",
	"Product m/z",
	"Product Charge",
}

// hasLabels reports whether any row carries an isotope label type, which
// adds the trailing column.
func hasLabels(rows []core.Transition) bool {
	for _, row := range rows {
		if row.IsotopeLabelType != "" {
			return true
		}
	}
	return false
}

func formatMZ(mz *float64) string {
	if mz == nil {
		return ""
	}
	return strconv.FormatFloat(*mz, 'f', -1, 64)
}

// Write serializes a transition list to w. The Isotope Label Type column
// appears only when labels are present.
func Write(w io.Writer, rows []core.Transition) error {
	cw := csv.NewWriter(w)

	labeled := hasLabels(rows)
	header := baseColumns
	if labeled {
		header = append(append([]string{}, baseColumns...), "Isotope Label Type")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.MoleculeListName,
			row.Molecule,
			row.MoleculeFormula,
			row.PrecursorAdduct,
			formatMZ(row.PrecursorMZ),
			strconv.Itoa(row.PrecursorCharge),
			row.ProductName,
			row.ProductFormula,
			row.ProductAdduct,
			formatMZ(row.ProductMZ),
			strconv.Itoa(row.ProductCharge),
		}
		if labeled {
			record = append(record, row.IsotopeLabelType)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile serializes a transition list to path.
func WriteFile(path string, rows []core.Transition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
