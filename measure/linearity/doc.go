// Package linearity fits a straight line to raw calibration point sets
// and quantifies how far the instrument response deviates from it.
//
// This is the usual pre-flight check before loading points into a
// correction table: a response that is already linear to within the
// instrument's tolerance only needs a gain/offset correction, while
// large or structured residuals call for the full interpolating table.
//
// # Usage
//
//	res, err := linearity.Analyze(nominals, calibrateds)
//	if err != nil {
//	    // mismatched slices, too few points, or a vertical response
//	}
//	fmt.Printf("gain %.6f offset %.6f max dev %.4f\n",
//	    res.Gain, res.Offset, res.MaxError)
package linearity
