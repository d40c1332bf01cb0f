// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wavelet provides the catalog of wavelet filters and the shared
// value types (boundary modes, coefficient pairs) used by the dwt and modwt
// subpackages to compute forward and inverse discrete wavelet transforms of
// finite real-valued sequences.
//
// wavelet implements the filter-bank substance of the library: the static
// tables of analysis filters for the Haar, Daubechies, Symlet, Coiflet and
// biorthogonal spline families, and the algebraic rules (quadrature-mirror,
// alternating-sign) that derive the remaining filters of an orthogonal
// wavelet from its analysis low-pass. Transform engines live in the dwt and
// modwt subpackages; the raw convolution primitives live in
// internal/kernel.
package wavelet // import "gonum.org/v1/wavelet"
