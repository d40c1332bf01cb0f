// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavelet

// CoefficientPair is an immutable value holding the two equal-length,
// finite arrays a single-level forward transform produces: approximation
// (low-pass) and detail (high-pass) coefficients. Use NewCoefficientPair
// to construct one; it validates length-matching, non-emptiness and
// finiteness so that every CoefficientPair in circulation is already
// known-good.
type CoefficientPair struct {
	approx []float64
	detail []float64
}

// NewCoefficientPair validates and wraps approx and detail. It copies
// both slices, so the caller's backing arrays may be reused or mutated
// afterward without affecting the returned pair.
func NewCoefficientPair(approx, detail []float64) (CoefficientPair, error) {
	if len(approx) == 0 || len(detail) == 0 {
		return CoefficientPair{}, ErrEmptySignal
	}
	if len(approx) != len(detail) {
		return CoefficientPair{}, ErrLengthMismatch
	}
	if err := CheckFinite(approx); err != nil {
		return CoefficientPair{}, err
	}
	if err := CheckFinite(detail); err != nil {
		return CoefficientPair{}, err
	}
	a := make([]float64, len(approx))
	copy(a, approx)
	d := make([]float64, len(detail))
	copy(d, detail)
	return CoefficientPair{approx: a, detail: d}, nil
}

// Len returns the common length of the approximation and detail arrays.
func (p CoefficientPair) Len() int { return len(p.approx) }

// Approx returns a copy of the approximation (low-pass) coefficients.
func (p CoefficientPair) Approx() []float64 {
	out := make([]float64, len(p.approx))
	copy(out, p.approx)
	return out
}

// Detail returns a copy of the detail (high-pass) coefficients.
func (p CoefficientPair) Detail() []float64 {
	out := make([]float64, len(p.detail))
	copy(out, p.detail)
	return out
}

// PaddedCoefficientPair is a CoefficientPair produced by the
// length-flexible façade after auto-padding a non-power-of-two input. It
// additionally records the signal length before padding, so the façade's
// inverse can trim the reconstruction back to size.
type PaddedCoefficientPair struct {
	CoefficientPair
	originalLength int
}

// NewPaddedCoefficientPair validates pair and originalLength: the latter
// must be positive and no greater than the pair's length.
func NewPaddedCoefficientPair(pair CoefficientPair, originalLength int) (PaddedCoefficientPair, error) {
	if originalLength <= 0 || originalLength > pair.Len() {
		return PaddedCoefficientPair{}, ErrInvalidLength
	}
	return PaddedCoefficientPair{CoefficientPair: pair, originalLength: originalLength}, nil
}

// OriginalLength returns the length of the signal before padding.
func (p PaddedCoefficientPair) OriginalLength() int { return p.originalLength }
