// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavelet

func init() {
	register("haar", entry{
		family:           Haar,
		order:            1,
		kind:             Orthogonal,
		h:                []float64{0.7071067811865476, 0.7071067811865476},
		vanishingMoments: 1,
	})
}
