// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spectral provides windowed power-spectrum diagnostics for
// wavelet coefficient sequences, complementing the time-scale view a
// wavelet pyramid gives with a conventional frequency-domain one.
package spectral

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/window"
	"gonum.org/v1/gonum/fourier"
)

// Window names a dsp/window apodization function applied before the FFT
// to reduce spectral leakage from a coefficient sequence's cut edges.
type Window func(seq []float64) []float64

// Named windows suitable for Analyzer.PowerSpectrum. None leaves the
// sequence unmodified.
var (
	None     Window = window.Rectangle
	Hann     Window = window.Hann
	Hamming  Window = window.Hamming
	Blackman Window = window.Blackman
)

// Analyzer computes windowed power spectra of fixed-length real
// sequences, reusing its FFT work buffer and coefficient buffer across
// calls the way fourier.FFT is meant to be driven.
type Analyzer struct {
	fft   *fourier.FFT
	buf   []float64
	coeff []complex128
}

// NewAnalyzer returns an Analyzer for sequences of length n. It panics
// if n is not positive.
func NewAnalyzer(n int) *Analyzer {
	if n <= 0 {
		panic("spectral: non-positive sequence length")
	}
	return &Analyzer{fft: fourier.NewFFT(n)}
}

// Len returns the sequence length the Analyzer was constructed for.
func (a *Analyzer) Len() int { return a.fft.Len() }

// PowerSpectrum windows seq with win (None for no windowing), computes
// its discrete Fourier coefficients, and returns the one-sided power
// spectrum |X_k|^2 for k = 0, ..., n/2. It panics if len(seq) does not
// equal a.Len().
func (a *Analyzer) PowerSpectrum(seq []float64, win Window) []float64 {
	if len(seq) != a.Len() {
		panic("spectral: sequence length mismatch")
	}
	if win == nil {
		win = None
	}
	if cap(a.buf) < len(seq) {
		a.buf = make([]float64, len(seq))
	}
	a.buf = a.buf[:len(seq)]
	copy(a.buf, seq)
	windowed := win(a.buf)

	a.coeff = a.fft.Coefficients(a.coeff, windowed)
	out := make([]float64, len(a.coeff))
	for k, c := range a.coeff {
		m := cmplx.Abs(c)
		out[k] = m * m
	}
	return out
}

// DominantFrequencyBin returns the index of the largest-magnitude bin in
// a power spectrum produced by PowerSpectrum, skipping the DC term at
// index 0. It returns -1 for a spectrum of length 1.
func DominantFrequencyBin(power []float64) int {
	best := -1
	bestVal := 0.0
	for i := 1; i < len(power); i++ {
		if power[i] > bestVal {
			bestVal = power[i]
			best = i
		}
	}
	return best
}
