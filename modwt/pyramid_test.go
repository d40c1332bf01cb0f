// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modwt

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/wavelet"
	"gonum.org/v1/wavelet/internal/spectral"
)

func TestMultiLevelMODWTSameLengthAtEveryLevel(t *testing.T) {
	w := mustWavelet(t, "db2")
	tr, err := NewTransform(w, wavelet.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(9))
	signal := make([]float64, 17) // deliberately not a power of two
	for i := range signal {
		signal[i] = rng.NormFloat64()
	}
	p, err := tr.ForwardLevels(signal, 3)
	if err != nil {
		t.Fatal(err)
	}
	for level := 1; level <= 3; level++ {
		d, err := p.DetailAtLevel(level)
		if err != nil {
			t.Fatal(err)
		}
		if len(d) != len(signal) {
			t.Errorf("len(details[%d]) = %d, want %d", level, len(d), len(signal))
		}
	}
	if len(p.FinalApprox()) != len(signal) {
		t.Errorf("len(FinalApprox()) = %d, want %d", len(p.FinalApprox()), len(signal))
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
	tol := 3 * 1e-8 * (1 + maxAbs)
	for i := range signal {
		if math.Abs(recon[i]-signal[i]) > tol {
			t.Errorf("reconstruction[%d] = %v, want %v", i, recon[i], signal[i])
		}
	}
}

func TestMODWTApproxAtLevelMemoizes(t *testing.T) {
	w := mustWavelet(t, "haar")
	tr, err := NewTransform(w, wavelet.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	signal := make([]float64, 10)
	for i := range signal {
		signal[i] = math.Cos(float64(i))
	}
	p, err := tr.ForwardLevels(signal, 3)
	if err != nil {
		t.Fatal(err)
	}
	first, err := p.ApproxAtLevel(1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := p.ApproxAtLevel(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatal("length mismatch between repeated ApproxAtLevel calls")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("ApproxAtLevel(1)[%d] differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestMODWTDetailSpectrumMatchesSignalLength(t *testing.T) {
	w := mustWavelet(t, "db2")
	tr, err := NewTransform(w, wavelet.Periodic)
	if err != nil {
		t.Fatal(err)
	}
	signal := make([]float64, 17)
	for i := range signal {
		signal[i] = math.Cos(float64(i))
	}
	p, err := tr.ForwardLevels(signal, 2)
	if err != nil {
		t.Fatal(err)
	}
	power, err := p.DetailSpectrum(2, spectral.None)
	if err != nil {
		t.Fatal(err)
	}
	if len(power) != len(signal)/2+1 {
		t.Errorf("len(power) = %d, want %d", len(power), len(signal)/2+1)
	}
}

func TestMODWTForwardAdaptiveRespectsMaxLevels(t *testing.T) {
	w := mustWavelet(t, "haar")
	tr, _ := NewTransform(w, wavelet.Periodic)
	signal := make([]float64, 16)
	for i := range signal {
		signal[i] = 1 // constant signal: detail energy is ~0 at every level
	}
	p, err := tr.ForwardAdaptive(signal, 0.5, 4)
	if err != nil {
		t.Fatal(err)
	}
	if p.Levels() < 1 {
		t.Error("expected at least one level even for a trivial signal")
	}
	if p.Levels() > 4 {
		t.Errorf("Levels() = %d, want <= 4", p.Levels())
	}
}
