// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwt

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/wavelet"
	"gonum.org/v1/wavelet/internal/spectral"
)

// Pyramid is a multi-level DWT coefficient pyramid: one final
// approximation plus one detail array per level, level 1 being the
// finest. Build one with Forward or ForwardAdaptive; obtain it back with
// Reconstruct, ReconstructFromLevel, or the memoizing ApproxAtLevel.
//
// Pyramid owns its coefficient arrays exclusively; nothing outside this
// package mutates them after construction. The reconstruction cache is
// the only mutable state, guarded per level by a sync.Once so that
// concurrent callers share one build of a given level — the same pattern
// distmv.Normal uses to lazily compute (and share) its Cholesky factor.
type Pyramid struct {
	t      *Transform
	levels int
	final  []float64   // approximation at the coarsest level
	detail [][]float64 // detail[k-1] is the level-k detail array

	cacheOnce []sync.Once
	cache     [][]float64 // cache[0] is the full reconstruction; cache[k] is approx at level k
}

// Levels returns the number of detail levels in the pyramid.
func (p *Pyramid) Levels() int { return p.levels }

// FinalApprox returns a copy of the approximation at the coarsest level.
func (p *Pyramid) FinalApprox() []float64 {
	out := make([]float64, len(p.final))
	copy(out, p.final)
	return out
}

// DetailAtLevel returns a copy of the stored detail coefficients for the
// given level (1 is finest, Levels() is coarsest). It returns
// ErrInvalidLevel if level is out of [1, Levels()].
func (p *Pyramid) DetailAtLevel(level int) ([]float64, error) {
	if level < 1 || level > p.levels {
		return nil, wavelet.ErrInvalidLevel
	}
	src := p.detail[level-1]
	out := make([]float64, len(src))
	copy(out, src)
	return out, nil
}

// maxLevel returns L_max: the number of successive halvings of n whose
// input length is at least filterLen. The length left after the last
// halving may be shorter than filterLen (8 samples with a 2-tap filter
// give 3 levels; 32 samples with a 4-tap filter give 4).
func maxLevel(n, filterLen int) int {
	l := 0
	for n >= filterLen && n%2 == 0 && n/2 >= 1 {
		n /= 2
		l++
		if n < filterLen {
			break
		}
	}
	return l
}

// Forward runs the explicit-levels multi-level DWT forward transform of
// §4.5: signal must have power-of-two length; levels must be in
// [1, L_max]. L_max is the largest number of levels for which every
// level's input approximation is at least as long as the analysis filter.
func (t *Transform) Forward(signal []float64, levels int) (*Pyramid, error) {
	if err := validateForwardInput(signal); err != nil {
		return nil, err
	}
	lmax := maxLevel(len(signal), t.w.Len())
	if levels < 1 || levels > lmax {
		return nil, fmt.Errorf("%w: requested %d, max %d", wavelet.ErrInvalidLevel, levels, lmax)
	}

	details := make([][]float64, levels)
	approx := signal
	for level := 0; level < levels; level++ {
		pair, err := t.Forward(approx)
		if err != nil {
			return nil, err
		}
		details[level] = pair.Detail()
		approx = pair.Approx()
	}

	p := &Pyramid{
		t:         t,
		levels:    levels,
		final:     approx,
		detail:    details,
		cacheOnce: make([]sync.Once, levels+1),
		cache:     make([][]float64, levels+1),
	}
	p.cache[levels] = append([]float64(nil), approx...)
	p.cacheOnce[levels].Do(func() {})
	return p, nil
}

// ForwardAdaptive runs the adaptive multi-level DWT forward transform of
// §4.5: decomposition stops once a level's relative detail energy
// (Σ detail² / Σ signal²) falls below tau, having produced at least one
// level, or once L_max is reached. tau must be in (0, 1).
func (t *Transform) ForwardAdaptive(signal []float64, tau float64) (*Pyramid, error) {
	if err := validateForwardInput(signal); err != nil {
		return nil, err
	}
	if tau <= 0 || tau >= 1 {
		return nil, wavelet.ErrInvalidThreshold
	}
	lmax := maxLevel(len(signal), t.w.Len())

	var signalEnergy float64
	for _, v := range signal {
		signalEnergy += v * v
	}

	var details [][]float64
	approx := signal
	for level := 0; level < lmax; level++ {
		pair, err := t.Forward(approx)
		if err != nil {
			return nil, err
		}
		detail := pair.Detail()
		details = append(details, detail)
		approx = pair.Approx()

		var detailEnergy float64
		for _, v := range detail {
			detailEnergy += v * v
		}
		relEnergy := 0.0
		if signalEnergy > 0 {
			relEnergy = detailEnergy / signalEnergy
		}
		if relEnergy < tau {
			break
		}
	}

	levels := len(details)
	p := &Pyramid{
		t:         t,
		levels:    levels,
		final:     approx,
		detail:    details,
		cacheOnce: make([]sync.Once, levels+1),
		cache:     make([][]float64, levels+1),
	}
	p.cache[levels] = append([]float64(nil), approx...)
	p.cacheOnce[levels].Do(func() {})
	return p, nil
}

// Reconstruct fully inverts the pyramid, returning the original signal
// within numerical tolerance. It is equivalent to
// ApproxAtLevel(0).
func (p *Pyramid) Reconstruct() ([]float64, error) {
	return p.ApproxAtLevel(0)
}

// ReconstructFromLevel reconstructs the signal with detail levels 1
// through fromLevel zeroed out (projection / level-N smoothing, §4.5).
// fromLevel 0 means full reconstruction, identical to Reconstruct.
func (p *Pyramid) ReconstructFromLevel(fromLevel int) ([]float64, error) {
	if fromLevel < 0 || fromLevel > p.levels {
		return nil, wavelet.ErrInvalidLevel
	}
	approx := p.final
	for level := p.levels; level >= 1; level-- {
		detail := p.detail[level-1]
		if level <= fromLevel {
			detail = make([]float64, len(detail))
		}
		pair, err := wavelet.NewCoefficientPair(approx, detail)
		if err != nil {
			return nil, err
		}
		next, err := p.t.Inverse(pair)
		if err != nil {
			return nil, err
		}
		approx = next
	}
	return approx, nil
}

// ApproxAtLevel returns the reconstructed approximation at the given
// level: level == Levels() returns the stored final approximation
// directly; level == 0 fully reconstructs; 0 < level < Levels()
// reconstructs by inverting from the final approximation down to that
// level. Results are memoized per level behind a sync.Once, so repeated
// calls (even concurrent ones) return the same slice contents without
// recomputing, satisfying the cache-determinism property of §8.
func (p *Pyramid) ApproxAtLevel(level int) ([]float64, error) {
	if level < 0 || level > p.levels {
		return nil, wavelet.ErrInvalidLevel
	}
	// buildApproxAtLevel can only fail by way of an internal invariant
	// violation (level is already validated above, and every
	// CoefficientPair stored in the pyramid was itself validated at
	// construction time), so a failed build is not expected to become
	// successful on retry; the error is reported but the Once is not
	// reset.
	var buildErr error
	p.cacheOnce[level].Do(func() {
		p.cache[level], buildErr = p.buildApproxAtLevel(level)
	})
	if buildErr != nil {
		return nil, buildErr
	}
	out := make([]float64, len(p.cache[level]))
	copy(out, p.cache[level])
	return out, nil
}

func (p *Pyramid) buildApproxAtLevel(level int) ([]float64, error) {
	approx := p.final
	for l := p.levels; l > level; l-- {
		pair, err := wavelet.NewCoefficientPair(approx, p.detail[l-1])
		if err != nil {
			return nil, err
		}
		next, err := p.t.Inverse(pair)
		if err != nil {
			return nil, err
		}
		approx = next
	}
	out := make([]float64, len(approx))
	copy(out, approx)
	return out, nil
}

// DetailSpectrum returns the windowed one-sided power spectrum of the
// detail coefficients at the given level, letting a caller inspect which
// frequencies dominate a band the time-scale decomposition isolated. win
// may be nil, which applies no windowing.
func (p *Pyramid) DetailSpectrum(level int, win spectral.Window) ([]float64, error) {
	detail, err := p.DetailAtLevel(level)
	if err != nil {
		return nil, err
	}
	a := spectral.NewAnalyzer(len(detail))
	return a.PowerSpectrum(detail, win), nil
}

// Energy returns Σ x² for x.
func Energy(x []float64) float64 {
	var e float64
	for _, v := range x {
		e += v * v
	}
	return e
}

// relTol returns true if |got-want| <= tol*(1+math.Abs(want)), the
// tolerance shape used throughout §8's testable properties.
func relTol(got, want, tol float64) bool {
	return math.Abs(got-want) <= tol*(1+math.Abs(want))
}
