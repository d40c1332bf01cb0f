// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavelet

// Symlet analysis low-pass filters: the least-asymmetric orthogonal
// wavelets of a given order. sym2 and sym3 coincide exactly with db2 and
// db3 (the least-asymmetric solution is unique at those orders); sym4 is
// the first order where the symlet and Daubechies filters diverge. See
// DESIGN.md and recognizedButUnimplemented for the orders not carried
// (sym7, sym10, sym12, sym15, sym20).
func init() {
	register("sym2", entry{
		family: Symlet, order: 2, kind: Orthogonal,
		vanishingMoments: 2,
		h: []float64{
			0.48296291314453414,
			0.83651630373780790,
			0.22414386804201338,
			-0.12940952255126038,
		},
	})

	register("sym3", entry{
		family: Symlet, order: 3, kind: Orthogonal,
		vanishingMoments: 3,
		h: []float64{
			0.33267055295008261,
			0.80689150931109257,
			0.45987750211849157,
			-0.13501102001025458,
			-0.08544127388202666,
			0.03522629188570953,
		},
	})

	register("sym4", entry{
		family: Symlet, order: 4, kind: Orthogonal,
		vanishingMoments: 4,
		h: []float64{
			-0.07576571478927333,
			-0.02963552764599851,
			0.49761866763201545,
			0.80373875180591614,
			0.29785779560527736,
			-0.09921954357684722,
			-0.01260396726203783,
			0.03222310060404270,
		},
	})

	register("sym5", entry{
		family: Symlet, order: 5, kind: Orthogonal,
		vanishingMoments: 5,
		h: []float64{
			0.027333068345078,
			0.029519490925774,
			-0.039134249302383,
			0.199397533977394,
			0.723407690402421,
			0.633978963458212,
			0.016602105764522,
			-0.175328089908450,
			-0.021101834024759,
			0.019538882735387,
		},
	})

	register("sym6", entry{
		family: Symlet, order: 6, kind: Orthogonal,
		vanishingMoments: 6,
		h: []float64{
			0.015404109327027,
			0.003490712084217,
			-0.117990111148191,
			-0.048311742585632,
			0.491055941926747,
			0.787641141030194,
			0.337929421727622,
			-0.072637522786575,
			-0.021060292512601,
			0.044724901770666,
			0.001767711864492,
			-0.007800708325034,
		},
	})

	register("sym8", entry{
		family: Symlet, order: 8, kind: Orthogonal,
		vanishingMoments: 8,
		h: []float64{
			-0.003382415951359,
			-0.000542132331635,
			0.031695087811492,
			0.007607487324918,
			-0.143294238350810,
			-0.061273359067908,
			0.481359651258372,
			0.777185751700524,
			0.364441894835331,
			-0.051945838107709,
			-0.027219029917058,
			0.049137179673722,
			0.003808752013890,
			-0.014952258337048,
			-0.000302920514721,
			0.001889950332899,
		},
	})
}
