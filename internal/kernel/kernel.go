// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package kernel implements the primitive array operations of the
// filter-bank engine: convolution with optional stride-2 decimation,
// upsample-then-convolve, and non-decimating circular convolution, each
// under the Periodic and ZeroPadding boundary regimes.
//
// The kernel presumes validated input: it does not check for empty
// filters, length mismatches, or non-finite samples (that is the calling
// engine's job — see the top-level wavelet package's CheckSignal and
// CheckFinite). This mirrors §4.2 of the originating specification:
// "kernels do not raise". Every exported function here panics only on a
// caller bug (nil/zero-length filter, a pre-allocated dst of the wrong
// length), never on bad floating-point data.
//
// Kernel is the abstract interface an optimized (SIMD, cache-blocked)
// back-end would implement; Scalar is the only implementation this
// package ships, and the one every conformance test targets, per the
// originating specification's §1 scope note that platform-optimization
// paths are optional back-ends behind a single abstract kernel interface.
package kernel

import "gonum.org/v1/wavelet"

// Kernel is the abstract primitive operation set a DWT or MODWT engine is
// built on. A back-end need only implement Kernel; Scalar is the
// reference (and, in this module, only) implementation.
type Kernel interface {
	// ConvDownsample computes the DWT analysis convolution:
	// out[k] = Σ_j filter[j] * signal[idx(2k+1-j)], for k in [0, N/2).
	// len(signal) must be even; the result has half its length.
	ConvDownsample(dst, signal, filter []float64, mode wavelet.BoundaryMode) []float64

	// UpsampleConv computes the DWT synthesis convolution, the transpose
	// of ConvDownsample: out[n] = Σ_j filter[j] * coeffs[idx((n+j-1)/2)]
	// over the j with n+j-1 even. The result has twice the length of
	// coeffs.
	UpsampleConv(dst, coeffs, filter []float64, mode wavelet.BoundaryMode) []float64

	// MODWTConv computes the non-decimating MODWT analysis convolution
	// using filter rescaled by 1/√2, producing a result the same length
	// as signal.
	MODWTConv(dst, signal, filter []float64, mode wavelet.BoundaryMode) []float64

	// MODWTInvConv computes one term (low- or high-pass) of the MODWT
	// synthesis sum; the engine adds the low-pass and high-pass results
	// together to reconstruct the signal.
	MODWTInvConv(dst, coeffs, filter []float64, mode wavelet.BoundaryMode) []float64
}

// Scalar is the reference, purely scalar Kernel implementation. Its zero
// value is ready to use; it holds no state.
type Scalar struct{}

// idx maps an out-of-range index x into [0, n) under mode. It panics if
// mode is not Supported, since by the time the kernel runs, the calling
// engine has already validated the mode.
func idx(x, n int, mode wavelet.BoundaryMode) (i int, zero bool) {
	switch mode {
	case wavelet.Periodic:
		i = x % n
		if i < 0 {
			i += n
		}
		return i, false
	case wavelet.ZeroPadding:
		if x < 0 || x >= n {
			return 0, true
		}
		return x, false
	default:
		panic("kernel: unsupported boundary mode")
	}
}

// at returns signal[idx(x, len(signal), mode)], substituting 0 for
// out-of-range ZeroPadding positions.
func at(signal []float64, x int, mode wavelet.BoundaryMode) float64 {
	i, zero := idx(x, len(signal), mode)
	if zero {
		return 0
	}
	return signal[i]
}

// ConvDownsample implements Kernel.ConvDownsample.
//
// out[k] = Σ_{j=0}^{L-1} filter[j] * signal[idx(2k+1-j, N, mode)]
func (Scalar) ConvDownsample(dst, signal, filter []float64, mode wavelet.BoundaryMode) []float64 {
	n := len(signal)
	if n == 0 || n%2 != 0 {
		panic("kernel: ConvDownsample requires a nonempty, even-length signal")
	}
	l := len(filter)
	if l == 0 {
		panic("kernel: ConvDownsample requires a nonempty filter")
	}
	m := n / 2
	dst = ensureLen(dst, m)
	for k := 0; k < m; k++ {
		var sum float64
		for j := 0; j < l; j++ {
			sum += filter[j] * at(signal, 2*k+1-j, mode)
		}
		dst[k] = sum
	}
	return dst
}

// UpsampleConv implements Kernel.UpsampleConv.
//
// out[n] = Σ_{j : (n+j-1) even} filter[j] * coeffs[idx((n+j-1)/2, M, mode)]
//
// This is the transpose of ConvDownsample's 2k+1-j indexing, so summing
// the low-pass and high-pass paths of an orthogonal filter pair under
// Periodic mode recovers the analysed signal exactly.
func (Scalar) UpsampleConv(dst, coeffs, filter []float64, mode wavelet.BoundaryMode) []float64 {
	m := len(coeffs)
	if m == 0 {
		panic("kernel: UpsampleConv requires nonempty coefficients")
	}
	l := len(filter)
	if l == 0 {
		panic("kernel: UpsampleConv requires a nonempty filter")
	}
	n := 2 * m
	dst = ensureLen(dst, n)
	for out := 0; out < n; out++ {
		var sum float64
		for j := 0; j < l; j++ {
			d := out + j - 1
			if d%2 != 0 {
				continue
			}
			ci := d / 2
			cn, zero := idx(ci, m, mode)
			if zero {
				continue
			}
			sum += filter[j] * coeffs[cn]
		}
		dst[out] = sum
	}
	return dst
}

// sqrtHalf is 1/√2, the MODWT per-level filter rescaling of §4.2.
const sqrtHalf = 0.7071067811865476

// MODWTConv implements Kernel.MODWTConv.
//
// out[t] = Σ_{j=0}^{L-1} (filter[j]/√2) * signal[idx(t-j, N, mode)]
func (Scalar) MODWTConv(dst, signal, filter []float64, mode wavelet.BoundaryMode) []float64 {
	n := len(signal)
	if n == 0 {
		panic("kernel: MODWTConv requires a nonempty signal")
	}
	l := len(filter)
	if l == 0 {
		panic("kernel: MODWTConv requires a nonempty filter")
	}
	dst = ensureLen(dst, n)
	for t := 0; t < n; t++ {
		var sum float64
		for j := 0; j < l; j++ {
			sum += filter[j] * at(signal, t-j, mode)
		}
		dst[t] = sum * sqrtHalf
	}
	return dst
}

// MODWTInvConv implements Kernel.MODWTInvConv: the time-reversed pairing
// of the MODWT synthesis sum. The caller invokes this once with the
// reconstruction low-pass against the approximation coefficients and once
// with the reconstruction high-pass against the detail coefficients, and
// adds the two results together.
//
// out[t] = Σ_{j=0}^{L-1} (filter[j]/√2) * coeffs[idx(t+j, N, mode)]
func (Scalar) MODWTInvConv(dst, coeffs, filter []float64, mode wavelet.BoundaryMode) []float64 {
	n := len(coeffs)
	if n == 0 {
		panic("kernel: MODWTInvConv requires nonempty coefficients")
	}
	l := len(filter)
	if l == 0 {
		panic("kernel: MODWTInvConv requires a nonempty filter")
	}
	dst = ensureLen(dst, n)
	for t := 0; t < n; t++ {
		var sum float64
		for j := 0; j < l; j++ {
			sum += filter[j] * at(coeffs, t+j, mode)
		}
		dst[t] = sum * sqrtHalf
	}
	return dst
}

// ensureLen returns a new slice of length n when dst is nil, and dst
// itself otherwise. It panics if dst is non-nil and its length is not n,
// in the manner of fourier.FFT.FFT's dst handling.
func ensureLen(dst []float64, n int) []float64 {
	if dst == nil {
		return make([]float64, n)
	}
	if len(dst) != n {
		panic("kernel: destination length mismatch")
	}
	return dst
}
