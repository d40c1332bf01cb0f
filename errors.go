// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavelet

import (
	"errors"
	"fmt"
)

// Sentinel errors for the invalid-signal and invalid-argument taxonomy
// shared by the dwt and modwt packages. Engines validate at their entry
// points and return one of these (or wrap one with errors.Is-compatible
// context); the kernel layer never raises.
var (
	// ErrEmptySignal signifies an input array had zero length.
	ErrEmptySignal = errors.New("wavelet: empty signal")

	// ErrTooShort signifies a signal shorter than the minimum length a
	// transform requires (2 samples for the DWT, 1 for the MODWT).
	ErrTooShort = errors.New("wavelet: signal too short")

	// ErrTooLong signifies a signal longer than the maximum length
	// next_power_of_two can compute without signed overflow.
	ErrTooLong = errors.New("wavelet: signal too long")

	// ErrNotPowerOfTwo signifies a signal length the DWT single-level
	// engine requires to be a power of two, but is not.
	ErrNotPowerOfTwo = errors.New("wavelet: length is not a power of two")

	// ErrLengthMismatch signifies two arrays that must have equal length
	// (such as an approximation/detail pair) do not. A pre-allocated
	// kernel destination of the wrong length panics instead.
	ErrLengthMismatch = errors.New("wavelet: length mismatch")

	// ErrUnknownWavelet signifies a wavelet name or order the catalog
	// does not recognize at all (as distinct from one it recognizes but
	// has not tabulated; see ErrNotImplemented).
	ErrUnknownWavelet = errors.New("wavelet: unknown wavelet")

	// ErrNotImplemented signifies a wavelet family and order the catalog
	// recognizes conceptually but has no coefficient table for.
	ErrNotImplemented = errors.New("wavelet: wavelet order not implemented")

	// ErrContinuousWavelet signifies a wavelet of Continuous kind was
	// passed to a DWT or MODWT engine, which require a discrete
	// (orthogonal or biorthogonal) wavelet.
	ErrContinuousWavelet = errors.New("wavelet: continuous wavelet is not valid for a discrete transform")

	// ErrUnsupportedBoundary signifies a boundary mode the engine does
	// not implement, including reserved tags for future modes.
	ErrUnsupportedBoundary = errors.New("wavelet: unsupported boundary mode")

	// ErrInvalidLevel signifies a requested level count outside
	// [1, maxLevel] for explicit multi-level decomposition, or a
	// negative/out-of-range level argument to a pyramid accessor.
	ErrInvalidLevel = errors.New("wavelet: invalid level")

	// ErrInvalidThreshold signifies an adaptive-decomposition threshold
	// outside (0, 1).
	ErrInvalidThreshold = errors.New("wavelet: invalid threshold")

	// ErrInvalidLength signifies a non-positive padded target length, or
	// an original length greater than the array being trimmed.
	ErrInvalidLength = errors.New("wavelet: invalid length")
)

// NonFiniteError reports that a signal contained a NaN or ±Inf value, and
// identifies the offending index for the caller.
type NonFiniteError struct {
	Index int
	Value float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("wavelet: non-finite value %v at index %d", e.Value, e.Index)
}
