package testutil

import "math"

// Ramp returns n evenly spaced nominal positions starting at start.
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// LinearCalibrated returns calibrated readings for the given nominals
// under a pure gain/offset response: calibrated = gain*nominal + offset.
func LinearCalibrated(nominals []float64, gain, offset float64) []float64 {
	out := make([]float64, len(nominals))
	for i, n := range nominals {
		out[i] = gain*n + offset
	}
	return out
}

// SinusoidalCalibrated returns calibrated readings whose error is a
// single sinusoid across the nominal span: error(x) = amplitude *
// sin(2*pi*cycles*(x-min)/(max-min)). The nominals must span a non-zero
// range.
func SinusoidalCalibrated(nominals []float64, amplitude, cycles float64) []float64 {
	min, max := nominals[0], nominals[0]
	for _, n := range nominals {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}

	out := make([]float64, len(nominals))
	for i, n := range nominals {
		e := amplitude * math.Sin(2*math.Pi*cycles*(n-min)/(max-min))
		out[i] = n - e
	}
	return out
}
