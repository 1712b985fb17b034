package periodic

import (
	"errors"
	"fmt"
	"math"
	"sort"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-calibration/calmap"
)

const (
	defaultSamples       = 256
	minSamples           = 16
	defaultMaxComponents = 5
)

// Errors returned by periodic-error analysis.
var (
	ErrTooFewPoints = errors.New("periodic: table must hold at least two entries")
)

// Config holds analysis parameters. The zero value selects sensible
// defaults.
type Config struct {
	// Samples is the uniform resampling resolution across the
	// calibrated span. Defaults to 256, minimum 16.
	Samples int

	// MaxComponents limits how many spectral peaks are reported.
	// Defaults to 5.
	MaxComponents int
}

// Component is one periodic contribution to the error curve.
type Component struct {
	CyclesPerSpan float64 // repetitions across the calibrated range
	Amplitude     float64 // peak amplitude in error units
}

// Result holds the periodic-error analysis of a calibration table.
type Result struct {
	Mean       float64 // mean of the resampled error curve
	RMS        float64 // RMS about the mean
	PeakToPeak float64
	Components []Component // strongest first
}

func normalizeConfig(cfg Config) Config {
	if cfg.Samples <= 0 {
		cfg.Samples = defaultSamples
	}

	if cfg.Samples < minSamples {
		cfg.Samples = minSamples
	}

	if cfg.MaxComponents <= 0 {
		cfg.MaxComponents = defaultMaxComponents
	}

	return cfg
}

// Analyze resamples the table's error curve uniformly across its
// calibrated range and reports the dominant periodic components.
//
// Lead-screw pitch errors and encoder eccentricity show up as strong
// single components; a clean table has only broadband residue. The
// resample endpoints coincide with the table's extreme keys, so the
// whole grid stays inside the interpolable range.
//
// Returns ErrTooFewPoints for tables with fewer than two entries and
// propagates lookup failures from the resampling pass.
func Analyze(t *calmap.Table, cfg Config) (Result, error) {
	cfg = normalizeConfig(cfg)

	if t.Len() < 2 {
		return Result{}, ErrTooFewPoints
	}

	min, max, _ := t.Range()

	n := cfg.Samples
	grid := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range grid {
		grid[i] = min + float64(i)*step
	}

	// Keep the last sample an exact key match; accumulated rounding
	// must not push it past the table range.
	grid[n-1] = max

	curve := make([]float64, n)
	if err := t.ErrorBlock(curve, grid); err != nil {
		return Result{}, fmt.Errorf("periodic: resampling error curve: %w", err)
	}

	res := Result{}

	var sum float64
	minV, maxV := curve[0], curve[0]
	for _, v := range curve {
		sum += v
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	res.Mean = sum / float64(n)
	res.PeakToPeak = maxV - minV

	var sumSq float64
	for i := range curve {
		curve[i] -= res.Mean
		sumSq += curve[i] * curve[i]
	}

	res.RMS = math.Sqrt(sumSq / float64(n))

	// Hann window against leakage from non-integer cycle counts; the
	// coherent gain (winSum/n) is divided back out of the amplitudes.
	coeffs := make([]float64, n)
	var winSum float64
	for i := range coeffs {
		coeffs[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		winSum += coeffs[i]
	}

	vecmath.MulBlockInPlace(curve, coeffs)

	fftSize := nextPowerOf2(n)

	inData := make([]complex128, fftSize)
	for i, v := range curve {
		inData[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, fmt.Errorf("periodic: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return Result{}, fmt.Errorf("periodic: forward fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	res.Components = pickComponents(mag, winSum, n, fftSize, cfg.MaxComponents)

	return res, nil
}

// pickComponents selects local spectral maxima, strongest first. The
// DC bin is skipped (the mean was removed before windowing).
func pickComponents(mag []float64, winSum float64, samples, fftSize, limit int) []Component {
	type peak struct {
		bin int
		m   float64
	}

	var peaks []peak
	for k := 1; k < len(mag)-1; k++ {
		if mag[k] >= mag[k-1] && mag[k] > mag[k+1] && mag[k] > 0 {
			peaks = append(peaks, peak{bin: k, m: mag[k]})
		}
	}

	sort.Slice(peaks, func(i, j int) bool { return peaks[i].m > peaks[j].m })

	if len(peaks) > limit {
		peaks = peaks[:limit]
	}

	out := make([]Component, len(peaks))
	for i, p := range peaks {
		out[i] = Component{
			// bin k is k/fftSize cycles per sample; the span holds
			// samples-1 sample intervals.
			CyclesPerSpan: float64(p.bin) * float64(samples-1) / float64(fftSize),
			Amplitude:     2 * p.m / winSum,
		}
	}

	return out
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
