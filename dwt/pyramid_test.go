// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwt

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"gonum.org/v1/wavelet"
	"gonum.org/v1/wavelet/internal/spectral"
)

// S4: multi-level DB2, Periodic, signal length 32, L=4. Level lengths
// halve at each step; full reconstruction recovers the input.
func TestScenarioS4MultiLevelDB2(t *testing.T) {
	w := mustWavelet(t, "db2")
	tr, err := NewTransform(w, wavelet.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(3))
	signal := make([]float64, 32)
	for i := range signal {
		signal[i] = rng.NormFloat64()
	}

	p, err := tr.Forward(signal, 4)
	if err != nil {
		t.Fatal(err)
	}
	wantLens := []int{16, 8, 4, 2}
	for level := 1; level <= 4; level++ {
		d, err := p.DetailAtLevel(level)
		if err != nil {
			t.Fatal(err)
		}
		if len(d) != wantLens[level-1] {
			t.Errorf("len(details[%d]) = %d, want %d", level, len(d), wantLens[level-1])
		}
	}
	if len(p.FinalApprox()) != 2 {
		t.Errorf("len(FinalApprox()) = %d, want 2", len(p.FinalApprox()))
	}

	recon, err := p.Reconstruct()
	if err != nil {
		t.Fatal(err)
	}
	maxAbs := 0.0
	for _, v := range signal {
		if math.Abs(v) > maxAbs {
			maxAbs = math.Abs(v)
		}
	}
	tol := 4 * 1e-10 * (1 + maxAbs)
	for i := range signal {
		if math.Abs(recon[i]-signal[i]) > tol {
			t.Errorf("reconstruction[%d] = %v, want %v (tol %v)", i, recon[i], signal[i], tol)
		}
	}
}

// S5: adaptive decomposition on a low-frequency ramp stops at ≤ 2 levels
// with a threshold of 0.01. ZeroPadding keeps the ramp free of the
// wrap-around jump that Periodic mode would put into every level's
// detail energy.
func TestScenarioS5AdaptiveStopsEarlyOnRamp(t *testing.T) {
	w := mustWavelet(t, "db2")
	tr, err := NewTransform(w, wavelet.ZeroPadding)
	if err != nil {
		t.Fatal(err)
	}
	signal := make([]float64, 32)
	for i := range signal {
		signal[i] = float64(i)
	}
	p, err := tr.ForwardAdaptive(signal, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if p.Levels() > 2 {
		t.Errorf("Levels() = %d, want <= 2", p.Levels())
	}
}

func TestForwardAdaptiveRejectsInvalidThreshold(t *testing.T) {
	w := mustWavelet(t, "haar")
	tr, _ := NewTransform(w, wavelet.Periodic)
	signal := make([]float64, 8)
	for i := range signal {
		signal[i] = float64(i)
	}
	for _, tau := range []float64{0, 1, -0.1, 1.1} {
		if _, err := tr.ForwardAdaptive(signal, tau); err != wavelet.ErrInvalidThreshold {
			t.Errorf("tau=%v: err = %v, want ErrInvalidThreshold", tau, err)
		}
	}
}

func TestForwardRejectsLevelsAboveMax(t *testing.T) {
	w := mustWavelet(t, "haar")
	tr, _ := NewTransform(w, wavelet.Periodic)
	signal := make([]float64, 8) // L_max = 3 for an 8-sample signal with a 2-tap filter
	for i := range signal {
		signal[i] = float64(i)
	}
	if _, err := tr.Forward(signal, 4); err == nil {
		t.Error("expected error requesting levels above L_max")
	}
	if _, err := tr.Forward(signal, 0); err == nil {
		t.Error("expected error requesting zero levels")
	}
}

// Property 6 of §8: projection monotonicity. Reconstructing from a
// nonzero level never increases energy beyond the original signal's (up
// to numerical slack), and projecting from level 0 equals full
// reconstruction.
func TestProjectionMonotonicity(t *testing.T) {
	w := mustWavelet(t, "db2")
	tr, err := NewTransform(w, wavelet.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(11))
	signal := make([]float64, 64)
	for i := range signal {
		signal[i] = rng.NormFloat64()
	}
	p, err := tr.Forward(signal, 3)
	if err != nil {
		t.Fatal(err)
	}
	signalEnergy := Energy(signal)

	full, err := p.ReconstructFromLevel(0)
	if err != nil {
		t.Fatal(err)
	}
	recon, err := p.Reconstruct()
	if err != nil {
		t.Fatal(err)
	}
	if !floatsEqual(full, recon, 1e-10) {
		t.Errorf("ReconstructFromLevel(0) != Reconstruct(): %v vs %v", full, recon)
	}

	for level := 0; level <= 3; level++ {
		projected, err := p.ReconstructFromLevel(level)
		if err != nil {
			t.Fatal(err)
		}
		if Energy(projected) > signalEnergy*(1+1e-8)+1e-12 {
			t.Errorf("level %d: projected energy %v exceeds signal energy %v", level, Energy(projected), signalEnergy)
		}
	}
}

// Property 8 of §8: cache determinism. Repeated and concurrent
// ApproxAtLevel calls return identical data.
func TestCacheDeterminism(t *testing.T) {
	w := mustWavelet(t, "db2")
	tr, err := NewTransform(w, wavelet.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	signal := make([]float64, 32)
	for i := range signal {
		signal[i] = math.Sin(float64(i))
	}
	p, err := tr.Forward(signal, 4)
	if err != nil {
		t.Fatal(err)
	}

	first, err := p.ApproxAtLevel(2)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := p.ApproxAtLevel(2)
		if err != nil {
			t.Fatal(err)
		}
		if !floatsEqual(first, again, 0) {
			t.Errorf("ApproxAtLevel(2) not bitwise identical on repeat call %d", i)
		}
	}

	var wg sync.WaitGroup
	results := make([][]float64, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := p.ApproxAtLevel(3)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = r
		}()
	}
	wg.Wait()
	for i := 1; i < len(results); i++ {
		if !floatsEqual(results[0], results[i], 0) {
			t.Errorf("concurrent ApproxAtLevel(3) results diverge at index %d", i)
		}
	}
}

func TestDetailSpectrumLengthAndRange(t *testing.T) {
	w := mustWavelet(t, "db2")
	tr, err := NewTransform(w, wavelet.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	signal := make([]float64, 32)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 32)
	}
	p, err := tr.Forward(signal, 3)
	if err != nil {
		t.Fatal(err)
	}
	power, err := p.DetailSpectrum(1, spectral.Hann)
	if err != nil {
		t.Fatal(err)
	}
	detailLen, err := p.DetailAtLevel(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(power) != len(detailLen)/2+1 {
		t.Errorf("len(power) = %d, want %d", len(power), len(detailLen)/2+1)
	}
	for i, v := range power {
		if v < 0 {
			t.Errorf("power[%d] = %v, want >= 0", i, v)
		}
	}
	if _, err := p.DetailSpectrum(0, nil); err != wavelet.ErrInvalidLevel {
		t.Errorf("err = %v, want ErrInvalidLevel", err)
	}
}

func TestApproxAtLevelRejectsOutOfRange(t *testing.T) {
	w := mustWavelet(t, "haar")
	tr, _ := NewTransform(w, wavelet.Periodic)
	signal := make([]float64, 8)
	for i := range signal {
		signal[i] = float64(i)
	}
	p, err := tr.Forward(signal, 2)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.ApproxAtLevel(-1); err != wavelet.ErrInvalidLevel {
		t.Errorf("err = %v, want ErrInvalidLevel", err)
	}
	if _, err := p.ApproxAtLevel(3); err != wavelet.ErrInvalidLevel {
		t.Errorf("err = %v, want ErrInvalidLevel", err)
	}
}
