// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dwt implements the single-level and multi-level decimated
// discrete wavelet transform: convolution-downsample analysis and
// upsample-convolve synthesis, and the cascade of single-level transforms
// into a level-indexed coefficient pyramid.
package dwt

import (
	"fmt"

	"gonum.org/v1/wavelet"
	"gonum.org/v1/wavelet/internal/kernel"
	"gonum.org/v1/wavelet/padding"
)

// Transform is a single-level DWT analysis/synthesis engine bound to one
// wavelet and one boundary mode. Construct with NewTransform; the zero
// value is not usable.
//
// A Transform holds no per-call mutable state (unlike fourier.FFT, which
// caches a work buffer sized to one sequence length, a Transform's
// signals vary in length call to call since levels halve), so a single
// Transform is safe for concurrent use by multiple goroutines.
type Transform struct {
	w    *wavelet.Wavelet
	mode wavelet.BoundaryMode
	k    kernel.Kernel
}

// NewTransform returns a Transform for w under the given boundary mode. It
// returns ErrContinuousWavelet if w is a Continuous-kind descriptor, and
// ErrUnsupportedBoundary if mode is not implemented.
func NewTransform(w *wavelet.Wavelet, mode wavelet.BoundaryMode) (*Transform, error) {
	if w.Kind() == wavelet.Continuous {
		return nil, wavelet.ErrContinuousWavelet
	}
	if !mode.Supported() {
		return nil, fmt.Errorf("%w: %s", wavelet.ErrUnsupportedBoundary, mode)
	}
	return &Transform{w: w, mode: mode, k: kernel.Scalar{}}, nil
}

// Wavelet returns the wavelet the Transform was constructed with.
func (t *Transform) Wavelet() *wavelet.Wavelet { return t.w }

// Mode returns the boundary mode the Transform was constructed with.
func (t *Transform) Mode() wavelet.BoundaryMode { return t.mode }

// Forward computes one level of DWT analysis: signal must have even,
// power-of-two length N ≥ 2. The result holds approximation and detail
// coefficients of length N/2 each.
func (t *Transform) Forward(signal []float64) (wavelet.CoefficientPair, error) {
	if err := validateForwardInput(signal); err != nil {
		return wavelet.CoefficientPair{}, err
	}
	low := t.w.AnalysisLowPass()
	high := t.w.AnalysisHighPass()
	approx := t.k.ConvDownsample(nil, signal, low, t.mode)
	detail := t.k.ConvDownsample(nil, signal, high, t.mode)
	return wavelet.NewCoefficientPair(approx, detail)
}

func validateForwardInput(signal []float64) error {
	if err := wavelet.CheckSignal(signal); err != nil {
		return err
	}
	if len(signal) < 2 {
		return wavelet.ErrTooShort
	}
	if !wavelet.IsPowerOfTwo(len(signal)) {
		return wavelet.ErrNotPowerOfTwo
	}
	return nil
}

// Inverse computes one level of DWT synthesis from a coefficient pair of
// length M, returning a reconstruction of length 2M.
func (t *Transform) Inverse(pair wavelet.CoefficientPair) ([]float64, error) {
	if pair.Len() == 0 {
		return nil, wavelet.ErrEmptySignal
	}
	lowRecon := t.w.ReconstructionLowPass()
	highRecon := t.w.ReconstructionHighPass()
	approxPath := t.k.UpsampleConv(nil, pair.Approx(), lowRecon, t.mode)
	detailPath := t.k.UpsampleConv(nil, pair.Detail(), highRecon, t.mode)
	out := make([]float64, len(approxPath))
	for i := range out {
		out[i] = approxPath[i] + detailPath[i]
	}
	return out, nil
}

// Facade wraps a Transform with the length-flexible behavior of §4.3: a
// signal whose length is not a power of two (or is shorter than 2) is
// padded up to the next power of two before the forward transform runs,
// and the inverse trims its reconstruction back to the original length.
type Facade struct {
	t        *Transform
	strategy padding.Strategy
}

// NewFacade returns a Facade around t using strategy to pad and trim.
func NewFacade(t *Transform, strategy padding.Strategy) *Facade {
	return &Facade{t: t, strategy: strategy}
}

// paddedTargetLength returns the power-of-two length a signal of length n
// must be padded to, or ErrTooLong if n exceeds wavelet.MaxSignalLength.
// Checking here, rather than letting wavelet.NextPowerOfTwo panic, keeps
// the over-length case a recoverable error for Forward's caller: the
// maximum-length case of §4.6/§7 is bad *data*, not a programmer bug.
func paddedTargetLength(n int) (int, error) {
	if n < 2 {
		n = 2
	}
	if n > wavelet.MaxSignalLength {
		return 0, wavelet.ErrTooLong
	}
	return wavelet.NextPowerOfTwo(n), nil
}

// Forward pads signal to a power-of-two length if needed (via the
// Facade's Strategy), runs the single-level forward transform, and
// returns the result together with the original length.
func (f *Facade) Forward(signal []float64) (wavelet.PaddedCoefficientPair, error) {
	if err := wavelet.CheckSignal(signal); err != nil {
		return wavelet.PaddedCoefficientPair{}, err
	}
	target, err := paddedTargetLength(len(signal))
	if err != nil {
		return wavelet.PaddedCoefficientPair{}, err
	}
	padded := signal
	if target != len(signal) {
		padded = f.strategy.Pad(signal, target)
	}
	pair, err := f.t.Forward(padded)
	if err != nil {
		return wavelet.PaddedCoefficientPair{}, err
	}
	return wavelet.NewPaddedCoefficientPair(pair, len(signal))
}

// Inverse reconstructs the padded signal and trims it back to
// pair.OriginalLength() samples via the Facade's Strategy.
func (f *Facade) Inverse(pair wavelet.PaddedCoefficientPair) ([]float64, error) {
	full, err := f.t.Inverse(pair.CoefficientPair)
	if err != nil {
		return nil, err
	}
	return f.strategy.Trim(full, pair.OriginalLength()), nil
}
