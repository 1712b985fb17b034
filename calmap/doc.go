// Package calmap provides a sparse calibration table with linear
// error interpolation.
//
// A [Table] stores (nominal, error) pairs where error is the signed
// difference between a nominal position and its externally measured
// calibrated value. Lookups at stored keys return the stored error
// exactly; lookups strictly between two stored keys interpolate
// linearly; lookups outside the calibrated span fail rather than
// extrapolate.
//
// # Usage
//
// Build a table from measurements, then correct arbitrary positions
// inside the calibrated range:
//
//	t := calmap.New()
//	t.AddPoint(10.0, 9.8)  // error +0.2 at 10
//	t.AddPoint(20.0, 19.5) // error +0.5 at 20
//
//	e, _ := t.ErrorValue(15.0)         // 0.35
//	p, _ := t.CorrectedPosition(15.0)  // 14.65
//
// Raw error maps (already key to error, not nominal/calibrated pairs)
// can be loaded wholesale with [Table.SetMap] or merged with
// [Table.AppendMap]. Note the merge asymmetry: AppendMap never
// overwrites an existing key, while AddPoint always does.
package calmap
