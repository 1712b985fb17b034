package calmap_test

import (
	"fmt"

	"github.com/cwbudde/algo-calibration/calmap"
)

func ExampleTable() {
	t := calmap.New()
	t.AddPoint(10.0, 9.75) // measured 9.75 at nominal 10
	t.AddPoint(20.0, 19.5) // measured 19.5 at nominal 20

	e, _ := t.ErrorValue(15.0)
	p, _ := t.CorrectedPosition(15.0)

	fmt.Println(e)
	fmt.Println(p)
	// Output:
	// 0.375
	// 14.625
}

func ExampleTable_GetMapSummary() {
	t := calmap.New()
	t.AddPoint(10.0, 9.75)
	t.AddPoint(20.0, 19.5)

	fmt.Print(t.GetMapSummary())
	// Output:
	// Nominal	Calibrated	Error	Corrected
	// 10	9.75		0.25	9.75
	// 20	19.5		0.5	19.5
}
