// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavelet

// Coiflet analysis low-pass filters. coif{N} has 6N taps and 2N vanishing
// moments. See DESIGN.md and recognizedButUnimplemented for the orders
// not carried (coif3-coif10).
func init() {
	register("coif1", entry{
		family: Coiflet, order: 1, kind: Orthogonal,
		vanishingMoments: 2,
		h: []float64{
			-0.01565572813546454,
			-0.07273261951252645,
			0.38486484686420286,
			0.85257202021225542,
			0.33789766245780922,
			-0.07273261951252645,
		},
	})

	register("coif2", entry{
		family: Coiflet, order: 2, kind: Orthogonal,
		vanishingMoments: 4,
		h: []float64{
			-0.00072054944536451,
			-0.00182320887070299,
			0.00561143481939450,
			0.02368017194633482,
			-0.05943441864645690,
			-0.07648859907830640,
			0.41700518442169897,
			0.81272363544554232,
			0.38611006682116220,
			-0.06737255472196302,
			-0.04146493678175915,
			0.01638733646352211,
		},
	})
}
