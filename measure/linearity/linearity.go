package linearity

import (
	"errors"
	"math"
)

// Errors returned by linearity analysis.
var (
	ErrLengthMismatch = errors.New("linearity: nominal and calibrated slices must have the same length")
	ErrTooFewPoints   = errors.New("linearity: at least two points are required")
	ErrDegenerate     = errors.New("linearity: all nominal values coincide")
)

// Result holds the least-squares fit of calibrated readings against
// nominal positions together with residual metrics.
//
// The fit model is calibrated ≈ Gain*nominal + Offset. An ideal
// instrument has Gain 1 and Offset 0; the residual metrics quantify
// how much of the response the line cannot explain.
type Result struct {
	Gain        float64
	Offset      float64
	MaxError    float64 // largest absolute residual
	MaxErrorPos int     // index of the largest residual
	RMSError    float64
	R2          float64 // coefficient of determination, 1 for a perfect line
}

// Analyze fits a least-squares line through (nominal, calibrated)
// pairs and reports residual statistics.
//
// Returns ErrLengthMismatch when the slices differ in length,
// ErrTooFewPoints for fewer than two points, and ErrDegenerate when
// every nominal value is identical (the slope is undefined).
func Analyze(nominals, calibrateds []float64) (Result, error) {
	if len(nominals) != len(calibrateds) {
		return Result{}, ErrLengthMismatch
	}

	n := len(nominals)
	if n < 2 {
		return Result{}, ErrTooFewPoints
	}

	var meanX, meanY float64
	for i := 0; i < n; i++ {
		meanX += nominals[i]
		meanY += calibrateds[i]
	}

	meanX /= float64(n)
	meanY /= float64(n)

	// Centered normal equations: slope = Sxy / Sxx.
	var sxx, sxy, syy float64
	for i := 0; i < n; i++ {
		dx := nominals[i] - meanX
		dy := calibrateds[i] - meanY
		sxx += dx * dx
		sxy += dx * dy
		syy += dy * dy
	}

	if sxx == 0 {
		return Result{}, ErrDegenerate
	}

	res := Result{
		Gain: sxy / sxx,
	}
	res.Offset = meanY - res.Gain*meanX

	var ssRes float64
	for i := 0; i < n; i++ {
		r := calibrateds[i] - (res.Gain*nominals[i] + res.Offset)
		ssRes += r * r

		if a := math.Abs(r); a > res.MaxError {
			res.MaxError = a
			res.MaxErrorPos = i
		}
	}

	res.RMSError = math.Sqrt(ssRes / float64(n))

	// A constant response (syy == 0) is fitted exactly by the line,
	// so R² is 1 by convention.
	if syy == 0 {
		res.R2 = 1
	} else {
		res.R2 = 1 - ssRes/syy
	}

	return res, nil
}
