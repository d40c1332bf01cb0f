// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavelet

import "math"

// Kind distinguishes the families of wavelet a Wavelet descriptor can
// represent. Engines pattern-match on Kind rather than relying on an
// inheritance hierarchy: see design note 9 of the originating
// specification.
type Kind int

const (
	// Orthogonal wavelets derive their high-pass and reconstruction
	// filters from the analysis low-pass by the QMF and equal-filter
	// rules; H and Ĥ coincide.
	Orthogonal Kind = iota

	// Biorthogonal wavelets carry an independent reconstruction
	// low-pass (and therefore an independent reconstruction high-pass)
	// that the catalog supplies directly.
	Biorthogonal

	// Continuous marks a descriptor usable only by a continuous wavelet
	// transform front-end. The DWT and MODWT engines reject it with
	// ErrContinuousWavelet.
	Continuous
)

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Orthogonal:
		return "orthogonal"
	case Biorthogonal:
		return "biorthogonal"
	case Continuous:
		return "continuous"
	default:
		return "unknown"
	}
}

// Family identifies the mathematical family a Wavelet belongs to.
type Family int

const (
	Haar Family = iota
	Daubechies
	Symlet
	Coiflet
	BiorSpline
)

// String returns the canonical lowercase name of the family.
func (f Family) String() string {
	switch f {
	case Haar:
		return "haar"
	case Daubechies:
		return "db"
	case Symlet:
		return "sym"
	case Coiflet:
		return "coif"
	case BiorSpline:
		return "bior"
	default:
		return "unknown"
	}
}

// Wavelet is an immutable descriptor of a discrete wavelet: its identity,
// its analysis low-pass filter, and (for biorthogonal wavelets only) an
// independent reconstruction low-pass. The remaining three filters
// (analysis high-pass and, for orthogonal wavelets, both reconstruction
// filters) are derived on demand by AnalysisHighPass, ReconstructionLowPass
// and ReconstructionHighPass rather than stored, keeping the catalog a pure
// data table (see design note 9).
//
// A Wavelet obtained from Lookup must not be mutated; its filter slices
// are shared by every caller holding that *Wavelet.
type Wavelet struct {
	name             string
	family           Family
	order            int
	kind             Kind
	h                []float64 // analysis low-pass
	hRecon           []float64 // reconstruction low-pass, biorthogonal only
	vanishingMoments int
	approximate      bool // true if h was computed rather than tabulated
}

// Name returns the stable, lowercase canonical identity of the wavelet,
// e.g. "haar", "db4", "sym8", "bior1.3".
func (w *Wavelet) Name() string { return w.name }

// Family returns the mathematical family of the wavelet.
func (w *Wavelet) Family() Family { return w.family }

// Order returns the wavelet's order: the N of "dbN", "symN" or "coifN"
// (equal to the vanishing-moment count for Daubechies and Symlet; a
// coifN wavelet has 2N vanishing moments), and for biorthogonal splines
// the analysis order, the second digit of the "biorN.M" name.
func (w *Wavelet) Order() int { return w.order }

// Kind returns whether the wavelet is orthogonal, biorthogonal, or
// continuous-only.
func (w *Wavelet) Kind() Kind { return w.kind }

// VanishingMoments returns the number of polynomial degrees the wavelet
// function annihilates.
func (w *Wavelet) VanishingMoments() int { return w.vanishingMoments }

// Approximate reports whether the analysis low-pass was computed
// on-the-fly rather than taken from a literal, authoritative coefficient
// table. Such filters are excluded from strict orthogonality verification
// (§4.1 of the originating specification).
func (w *Wavelet) Approximate() bool { return w.approximate }

// Len returns the length L of the analysis low-pass filter.
func (w *Wavelet) Len() int { return len(w.h) }

// AnalysisLowPass returns the analysis low-pass filter h. The returned
// slice is the descriptor's own storage, not a copy, and must not be
// modified.
func (w *Wavelet) AnalysisLowPass() []float64 { return w.h }

// AnalysisHighPass returns the analysis high-pass filter g, derived by the
// quadrature-mirror rule g[n] = (-1)^n * h[L-1-n] for orthogonal and
// biorthogonal wavelets alike: a biorthogonal wavelet's analysis high-pass
// is still the QMF of its analysis low-pass, only the reconstruction side
// differs. The result is freshly allocated on every call; descriptors do
// not cache derived filters (design note 9).
func (w *Wavelet) AnalysisHighPass() []float64 {
	return qmf(w.h)
}

// ReconstructionLowPass returns the reconstruction low-pass filter ĥ. For
// an orthogonal wavelet this equals the analysis low-pass; for a
// biorthogonal wavelet it is the catalog-supplied independent filter.
func (w *Wavelet) ReconstructionLowPass() []float64 {
	if w.kind == Biorthogonal {
		out := make([]float64, len(w.hRecon))
		copy(out, w.hRecon)
		return out
	}
	out := make([]float64, len(w.h))
	copy(out, w.h)
	return out
}

// ReconstructionHighPass returns the reconstruction high-pass filter ĝ,
// the QMF of the reconstruction low-pass.
func (w *Wavelet) ReconstructionHighPass() []float64 {
	return qmf(w.ReconstructionLowPass())
}

// qmf derives a quadrature-mirror filter from h: g[n] = (-1)^n * h[L-1-n].
func qmf(h []float64) []float64 {
	n := len(h)
	g := make([]float64, n)
	for i := 0; i < n; i++ {
		sign := 1.0
		if i%2 != 0 {
			sign = -1.0
		}
		g[i] = sign * h[n-1-i]
	}
	return g
}

// VerifyResult reports the outcome of checking an orthogonal wavelet's
// filter laws against the invariants of §3/§8 of the originating
// specification.
type VerifyResult struct {
	SumH       float64 // should equal √2
	SumHSq     float64 // should equal 1
	MaxOrthErr float64 // largest |Σ_n h[n]·h[n+2k]| over nonzero shifts k
	Tolerance  float64
	OK         bool
}

// Verify checks the orthogonality laws of §3/§8: Σh = √2, Σh² = 1, and
// Σ_n h[n]·h[n+2k] = 0 for every nonzero integer shift k with |2k| < L,
// within tol. For a Biorthogonal wavelet only Σh = √2 is enforced: the
// sum of squares is reported in SumHSq but not checked against 1 (bior1.3's
// analysis filter has Σh² = 1.03125), and the cross-orthogonality law is
// skipped. Continuous
// and Approximate descriptors always report OK: false, since they were
// never meant to satisfy these laws.
func (w *Wavelet) Verify(tol float64) VerifyResult {
	res := VerifyResult{Tolerance: tol}
	if w.kind == Continuous || w.approximate {
		return res
	}
	h := w.h
	L := len(h)

	var sumH float64
	for _, v := range h {
		sumH += v
	}
	res.SumH = sumH

	var sumHSq float64
	for _, v := range h {
		sumHSq += v * v
	}
	res.SumHSq = sumHSq

	sumHOK := math.Abs(sumH-math.Sqrt2) <= tol
	sumHSqOK := math.Abs(sumHSq-1) <= tol

	if w.kind == Biorthogonal {
		res.OK = sumHOK
		return res
	}

	maxErr := 0.0
	for k := 1; 2*k < L; k++ {
		var s float64
		for n := 0; n+2*k < L; n++ {
			s += h[n] * h[n+2*k]
		}
		if math.Abs(s) > maxErr {
			maxErr = math.Abs(s)
		}
	}
	res.MaxOrthErr = maxErr

	res.OK = sumHOK && sumHSqOK && maxErr <= tol
	return res
}
