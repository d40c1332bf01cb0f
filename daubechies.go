// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavelet

// Daubechies analysis low-pass filters, from Daubechies (1992), Ten
// Lectures on Wavelets, cross-checked against Percival & Walden (2000)
// table 4.2 and a reference DSP toolkit. db{N} has 2N taps and N
// vanishing moments. See DESIGN.md and recognizedButUnimplemented for the
// orders this catalog does not carry (db12-db20).
func init() {
	register("db2", entry{
		family: Daubechies, order: 2, kind: Orthogonal,
		vanishingMoments: 2,
		h: []float64{
			0.48296291314453414,
			0.83651630373780790,
			0.22414386804201338,
			-0.12940952255126038,
		},
	})

	register("db3", entry{
		family: Daubechies, order: 3, kind: Orthogonal,
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

	register("db4", entry{
		family: Daubechies, order: 4, kind: Orthogonal,
		vanishingMoments: 4,
		h: []float64{
			0.23037781330889650,
			0.71484657055291565,
			0.63088076792985890,
			-0.02798376941685985,
			-0.18703481171909308,
			0.03084138183556076,
			0.03288301166688520,
			-0.01059740178506903,
		},
	})

	register("db5", entry{
		family: Daubechies, order: 5, kind: Orthogonal,
		vanishingMoments: 5,
		h: []float64{
			0.16010239797419291,
			0.60382926979718967,
			0.72430852843777293,
			0.13842814590132074,
			-0.24229488706619015,
			-0.03224486958502953,
			0.07757149384006586,
			-0.00624149021279827,
			-0.01258075199908200,
			0.00333572528547377,
		},
	})

	register("db6", entry{
		family: Daubechies, order: 6, kind: Orthogonal,
		vanishingMoments: 6,
		h: []float64{
			0.11154074335010946,
			0.49462389039845307,
			0.75113390802157790,
			0.31525035170919790,
			-0.22626469396543983,
			-0.12976686756709563,
			0.09750160558707936,
			0.02752286553001629,
			-0.03158203931748602,
			0.00055384220099938,
			0.00477725751101065,
			-0.00107730108530847,
		},
	})

	register("db7", entry{
		family: Daubechies, order: 7, kind: Orthogonal,
		vanishingMoments: 7,
		h: []float64{
			0.07785205408500917,
			0.39653931948230575,
			0.72913209084655506,
			0.46978228740519077,
			-0.14390600392856498,
			-0.22403618499416572,
			0.07130921926705004,
			0.08061260915108307,
			-0.03802993693503463,
			-0.01657454163101562,
			0.01255099855609984,
			0.00042957797292136,
			-0.00180164070404994,
			0.00035371380000103,
		},
	})

	register("db8", entry{
		family: Daubechies, order: 8, kind: Orthogonal,
		vanishingMoments: 8,
		h: []float64{
			0.05441584224308161,
			0.31287159091446592,
			0.67563073629801285,
			0.58535468365486909,
			-0.01582910525634930,
			-0.28401554296154593,
			0.00047248457399797,
			0.12874742662018601,
			-0.01736930100202211,
			-0.04408825393079475,
			0.01398102791739828,
			0.00874609404740577,
			-0.00487035299301066,
			-0.00039174037337694,
			0.00067544940645360,
			-0.00011747678412477,
		},
	})

	register("db9", entry{
		family: Daubechies, order: 9, kind: Orthogonal,
		vanishingMoments: 9,
		h: []float64{
			0.038077947363872,
			0.243834674613970,
			0.604823123690620,
			0.657288078050930,
			0.133197385825040,
			-0.293273783279330,
			-0.096840783220879,
			0.148540749334760,
			0.030725681478320,
			-0.067632829059080,
			0.000250947114834,
			0.022361662123510,
			-0.004723204757894,
			-0.004281503682464,
			0.001847646883056,
			0.000230385763537,
			-0.000251963188971,
			0.000039347319995,
		},
	})

	register("db10", entry{
		family: Daubechies, order: 10, kind: Orthogonal,
		vanishingMoments: 10,
		h: []float64{
			0.02667005790094916,
			0.18817680007762133,
			0.52720118893172300,
			0.68845903945360755,
			0.28117234366057423,
			-0.24984642432711538,
			-0.19594627437659665,
			0.12736934033574265,
			0.09305736460380659,
			-0.07139414716639708,
			-0.02945753682194567,
			0.03321267405893324,
			0.00360655356695616,
			-0.01073317548681220,
			0.00139535174705290,
			0.00199240529518105,
			-0.00068585669495039,
			-0.00011646685512928,
			0.00009358867000106,
			-0.00001326420289452,
		},
	})
}
