package calmap

import (
	"fmt"
	"strings"
)

// GetMapSummary renders the table as a tab-separated report: one header
// line followed by one line per entry in ascending key order. The
// calibrated, error, and corrected columns are recomputed through the
// same query paths callers use, so they reflect exactly what a lookup
// at each stored key would return. An empty table yields only the
// header line.
//
// Layout note: a double tab separates the Calibrated and Error values
// to line the columns up under the longer "Calibrated" heading.
func (t *Table) GetMapSummary() string {
	var b strings.Builder

	b.WriteString("Nominal\tCalibrated\tError\tCorrected\n")

	for _, k := range t.keys {
		// Stored keys always hit the exact-match branch, so these
		// lookups cannot fail on a non-empty table.
		e, _ := t.ErrorValue(k)
		c, _ := t.CorrectedPosition(k)
		fmt.Fprintf(&b, "%v\t%v\t\t%v\t%v\n", k, k-e, e, c)
	}

	return b.String()
}
