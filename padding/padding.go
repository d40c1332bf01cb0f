// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package padding implements the pluggable padding-strategy interface the
// DWT length-flexible façade (see package dwt) uses to extend a
// non-power-of-two signal up to a workable length, and to trim a
// reconstruction back down afterward.
//
// The shape of Strategy mirrors interp.Fitter/interp.Predictor in
// gonum.org/v1/gonum/interp: a small, single-purpose interface that a
// handful of stateless, named implementations satisfy, selected by value
// rather than by a registry or factory.
package padding

// Strategy extends a signal to a target length and trims it back down.
type Strategy interface {
	// Pad returns signal extended to targetLength. It panics if
	// targetLength < len(signal).
	Pad(signal []float64, targetLength int) []float64

	// Trim returns the first originalLength samples of the meaningful
	// content of array, undoing Pad. It panics if
	// originalLength > len(array).
	Trim(array []float64, originalLength int) []float64
}

// Zero pads with zero-valued samples.
var Zero Strategy = zeroStrategy{}

// Symmetric pads by whole-sample (half-point) mirror reflection, so that
// the sample adjacent to the boundary is repeated: ..., s1, s0, s0, s1, ...
var Symmetric Strategy = symmetricStrategy{}

// Reflect pads by whole-point mirror reflection about the boundary
// sample: ..., s2, s1, s0, s1, s2, ...
var Reflect Strategy = reflectStrategy{}

// PeriodicExt pads by periodic (wrap-around) extension: ..., s0, s1, s0,
// s1, ... Named PeriodicExt rather than Periodic to avoid colliding with
// wavelet.Periodic, the unrelated boundary mode used by the kernel's
// convolution.
var PeriodicExt Strategy = periodicStrategy{}

type zeroStrategy struct{}

func (zeroStrategy) Pad(signal []float64, targetLength int) []float64 {
	checkPad(signal, targetLength)
	out := make([]float64, targetLength)
	copy(out, signal)
	return out
}

func (zeroStrategy) Trim(array []float64, originalLength int) []float64 {
	checkTrim(array, originalLength)
	out := make([]float64, originalLength)
	copy(out, array[:originalLength])
	return out
}

type symmetricStrategy struct{}

func (symmetricStrategy) Pad(signal []float64, targetLength int) []float64 {
	checkPad(signal, targetLength)
	out := make([]float64, targetLength)
	n := len(signal)
	for i := range out {
		out[i] = signal[symmetricIndex(i, n)]
	}
	return out
}

func (symmetricStrategy) Trim(array []float64, originalLength int) []float64 {
	checkTrim(array, originalLength)
	out := make([]float64, originalLength)
	copy(out, array[:originalLength])
	return out
}

// symmetricIndex maps i into [0, n) by whole-sample mirror reflection:
// period 2n, with the boundary sample itself repeated.
func symmetricIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i < n {
		return i
	}
	return period - 1 - i
}

type reflectStrategy struct{}

func (reflectStrategy) Pad(signal []float64, targetLength int) []float64 {
	checkPad(signal, targetLength)
	out := make([]float64, targetLength)
	n := len(signal)
	for i := range out {
		out[i] = signal[reflectIndex(i, n)]
	}
	return out
}

func (reflectStrategy) Trim(array []float64, originalLength int) []float64 {
	checkTrim(array, originalLength)
	out := make([]float64, originalLength)
	copy(out, array[:originalLength])
	return out
}

// reflectIndex maps i into [0, n) by whole-point mirror reflection about
// the boundary sample: period 2(n-1), boundary sample not repeated.
func reflectIndex(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i < n {
		return i
	}
	return period - i
}

type periodicStrategy struct{}

func (periodicStrategy) Pad(signal []float64, targetLength int) []float64 {
	checkPad(signal, targetLength)
	out := make([]float64, targetLength)
	n := len(signal)
	for i := range out {
		m := i % n
		out[i] = signal[m]
	}
	return out
}

func (periodicStrategy) Trim(array []float64, originalLength int) []float64 {
	checkTrim(array, originalLength)
	out := make([]float64, originalLength)
	copy(out, array[:originalLength])
	return out
}

func checkPad(signal []float64, targetLength int) {
	if len(signal) == 0 {
		panic("padding: empty signal")
	}
	if targetLength < len(signal) {
		panic("padding: target length shorter than signal")
	}
}

func checkTrim(array []float64, originalLength int) {
	if originalLength <= 0 {
		panic("padding: non-positive original length")
	}
	if originalLength > len(array) {
		panic("padding: original length exceeds array length")
	}
}
