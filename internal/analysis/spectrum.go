package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum is the one-sided magnitude spectrum of a real signal.
type Spectrum struct {
	Power []float64
	// Resolution is the frequency width of one bin: 1/(N*dt).
	Resolution float64
}

// PowerSpectrum removes the mean from samples and returns the magnitudes of
// the first N/2 FFT bins. Any length is accepted.
func PowerSpectrum(samples []float64, dt float64) Spectrum {
	n := len(samples)
	if n < 2 || dt <= 0 {
		return Spectrum{}
	}

	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(n)

	centered := make([]float64, n)
	for i, v := range samples {
		centered[i] = v - mean
	}

	bins := fft.FFTReal(centered)
	power := make([]float64, n/2)
	for i := range power {
		power[i] = cmplx.Abs(bins[i])
	}
	return Spectrum{Power: power, Resolution: 1 / (float64(n) * dt)}
}

// Dominant returns the frequency and magnitude of the strongest non-DC bin.
func (s Spectrum) Dominant() (freq, power float64) {
	idx := 0
	for i := 1; i < len(s.Power); i++ {
		if s.Power[i] > power {
			power = s.Power[i]
			idx = i
		}
	}
	return float64(idx) * s.Resolution, power
}
