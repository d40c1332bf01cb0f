// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package modwt implements the single-level and multi-level maximal
// overlap (undecimated, shift-invariant) discrete wavelet transform: the
// non-decimating counterpart of package dwt, using MODWT-scaled filters
// and producing same-length output at every level.
package modwt

import (
	"fmt"

	"gonum.org/v1/wavelet"
	"gonum.org/v1/wavelet/internal/kernel"
)

// Transform is a single-level MODWT analysis/synthesis engine bound to
// one wavelet and one boundary mode. Construct with NewTransform.
//
// Unlike package dwt's Transform, a modwt.Transform accepts signals of
// any length N ≥ 1 (§4.4): it does not decimate, so there is no
// power-of-two requirement.
type Transform struct {
	w    *wavelet.Wavelet
	mode wavelet.BoundaryMode
	k    kernel.Kernel
}

// NewTransform returns a Transform for w under the given boundary mode.
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

// Forward computes one level of MODWT analysis: signal may have any
// nonempty, finite length N. The result holds approximation and detail
// coefficients of length N each (§4.4).
func (t *Transform) Forward(signal []float64) (wavelet.CoefficientPair, error) {
	if err := wavelet.CheckSignal(signal); err != nil {
		return wavelet.CoefficientPair{}, err
	}
	low := t.w.AnalysisLowPass()
	high := t.w.AnalysisHighPass()
	approx := t.k.MODWTConv(nil, signal, low, t.mode)
	detail := t.k.MODWTConv(nil, signal, high, t.mode)
	return wavelet.NewCoefficientPair(approx, detail)
}

// Inverse reconstructs the signal from a MODWT coefficient pair by
// summing the low-pass and high-pass reconstructed paths. Under Periodic
// mode the reconstruction is exact to numerical precision; under
// ZeroPadding it exhibits boundary error that decays with
// min(t, N-t) (§4.4).
func (t *Transform) Inverse(pair wavelet.CoefficientPair) ([]float64, error) {
	if pair.Len() == 0 {
		return nil, wavelet.ErrEmptySignal
	}
	lowRecon := t.w.ReconstructionLowPass()
	highRecon := t.w.ReconstructionHighPass()
	approxPath := t.k.MODWTInvConv(nil, pair.Approx(), lowRecon, t.mode)
	detailPath := t.k.MODWTInvConv(nil, pair.Detail(), highRecon, t.mode)
	out := make([]float64, len(approxPath))
	for i := range out {
		out[i] = approxPath[i] + detailPath[i]
	}
	return out, nil
}
