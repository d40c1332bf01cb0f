// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavelet

// Biorthogonal spline filters. Unlike the orthogonal families, analysis
// and reconstruction low-pass filters differ and may differ in length; the
// catalog carries both rather than deriving one from the other (§4.1).
//
// bior1.3 pairs a 2-tap reconstruction spline (order 1) with a 6-tap
// analysis filter shaped for 3 vanishing moments on the reconstruction
// side, the minimum-order member of the family worth shipping on its own.
func init() {
	register("bior1.3", entry{
		family: BiorSpline, order: 3, kind: Biorthogonal,
		vanishingMoments: 3,
		h: []float64{
			-0.08838834764831845,
			0.08838834764831845,
			0.70710678118654757,
			0.70710678118654757,
			0.08838834764831845,
			-0.08838834764831845,
		},
		hRecon: []float64{
			0.70710678118654757,
			0.70710678118654757,
		},
	})
}
