// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modwt

import (
	"fmt"
	"sync"

	"gonum.org/v1/wavelet"
	"gonum.org/v1/wavelet/internal/spectral"
)

// Pyramid is a multi-level MODWT coefficient pyramid. Unlike a dwt.Pyramid,
// every detail array (and the final approximation) has the same length as
// the original signal, since MODWT does not decimate (§3, §4.5).
type Pyramid struct {
	t      *Transform
	levels int
	final  []float64
	detail [][]float64

	cacheOnce []sync.Once
	cache     [][]float64
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
// given level (1 is finest, Levels() is coarsest).
func (p *Pyramid) DetailAtLevel(level int) ([]float64, error) {
	if level < 1 || level > p.levels {
		return nil, wavelet.ErrInvalidLevel
	}
	src := p.detail[level-1]
	out := make([]float64, len(src))
	copy(out, src)
	return out, nil
}

// ForwardLevels runs the explicit-levels multi-level MODWT forward
// transform: the single-level MODWT engine is applied levels times to its
// own approximation output, without decimation. Any levels ≥ 1 is
// accepted; no upper bound from the signal or filter length is enforced.
func (t *Transform) ForwardLevels(signal []float64, levels int) (*Pyramid, error) {
	if err := wavelet.CheckSignal(signal); err != nil {
		return nil, err
	}
	if levels < 1 {
		return nil, fmt.Errorf("%w: requested %d", wavelet.ErrInvalidLevel, levels)
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

// ForwardAdaptive runs the adaptive multi-level MODWT forward transform,
// stopping once a level's relative detail energy falls below tau, having
// produced at least one level, or once maxLevels is reached.
func (t *Transform) ForwardAdaptive(signal []float64, tau float64, maxLevels int) (*Pyramid, error) {
	if err := wavelet.CheckSignal(signal); err != nil {
		return nil, err
	}
	if tau <= 0 || tau >= 1 {
		return nil, wavelet.ErrInvalidThreshold
	}
	if maxLevels < 1 {
		return nil, wavelet.ErrInvalidLevel
	}

	var signalEnergy float64
	for _, v := range signal {
		signalEnergy += v * v
	}

	var details [][]float64
	approx := signal
	for level := 0; level < maxLevels; level++ {
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

// Reconstruct fully inverts the pyramid.
func (p *Pyramid) Reconstruct() ([]float64, error) {
	return p.ApproxAtLevel(0)
}

// ReconstructFromLevel reconstructs the signal with detail levels 1
// through fromLevel zeroed out. fromLevel 0 means full reconstruction.
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
// level, memoized behind a per-level sync.Once exactly as dwt.Pyramid
// does.
func (p *Pyramid) ApproxAtLevel(level int) ([]float64, error) {
	if level < 0 || level > p.levels {
		return nil, wavelet.ErrInvalidLevel
	}
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

// DetailSpectrum returns the windowed one-sided power spectrum of the
// detail coefficients at the given level. Because MODWT does not
// decimate, every level's detail array has the same length, so a single
// spectral.Analyzer sized to the signal length could be reused across
// levels by a caller holding onto one; this method builds its own for
// simplicity.
func (p *Pyramid) DetailSpectrum(level int, win spectral.Window) ([]float64, error) {
	detail, err := p.DetailAtLevel(level)
	if err != nil {
		return nil, err
	}
	a := spectral.NewAnalyzer(len(detail))
	return a.PowerSpectrum(detail, win), nil
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
