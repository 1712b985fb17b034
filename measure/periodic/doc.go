// Package periodic detects repeating structure in a calibration
// table's error curve.
//
// Mechanical error sources are often periodic: lead-screw pitch error
// repeats once per screw revolution, encoder eccentricity once per
// encoder turn. Resampling the interpolated error curve on a uniform
// grid and taking its spectrum separates these components from
// broadband residue and points at the mechanical culprit.
//
// # Usage
//
//	t := calmap.New()
//	// ... load measured points ...
//
//	res, err := periodic.Analyze(t, periodic.Config{})
//	if err != nil {
//	    // table too sparse for spectral analysis
//	}
//	for _, c := range res.Components {
//	    fmt.Printf("%.1f cycles/span, amplitude %.4f\n",
//	        c.CyclesPerSpan, c.Amplitude)
//	}
package periodic
