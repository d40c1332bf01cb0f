// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavelet

import (
	"errors"
	"math"
	"testing"
)

func floatsEqual(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// S6 and property 7 of §8: every orthogonal filter in the catalog
// satisfies Σh = √2, Σh² = 1, and the cross-orthogonality law, within a
// tight tolerance for the short filters this catalog ships.
func TestFilterLawVerificationOrthogonal(t *testing.T) {
	orthogonalNames := []string{"haar", "db2", "db3", "db4", "db5", "db6", "db7", "db8", "db9", "db10", "sym2", "sym3", "sym4", "sym5", "sym6", "sym8", "coif1", "coif2"}
	for _, name := range orthogonalNames {
		w, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		res := w.Verify(1e-9)
		if !res.OK {
			t.Errorf("%s: Verify failed: sumH=%v sumHSq=%v maxOrthErr=%v", name, res.SumH, res.SumHSq, res.MaxOrthErr)
		}
	}
}

func TestFilterLawVerificationSym4(t *testing.T) {
	w, err := Lookup("sym4")
	if err != nil {
		t.Fatal(err)
	}
	res := w.Verify(1e-9)
	if math.Abs(res.SumH-math.Sqrt2) > 1e-9 {
		t.Errorf("SumH = %v, want %v", res.SumH, math.Sqrt2)
	}
	if math.Abs(res.SumHSq-1) > 1e-9 {
		t.Errorf("SumHSq = %v, want 1", res.SumHSq)
	}
	if res.MaxOrthErr > 1e-9 {
		t.Errorf("MaxOrthErr = %v, want <= 1e-9", res.MaxOrthErr)
	}
}

func TestBiorthogonalVerifyRelaxesSumOfSquares(t *testing.T) {
	w, err := Lookup("bior1.3")
	if err != nil {
		t.Fatal(err)
	}
	res := w.Verify(1e-9)
	if !res.OK {
		t.Errorf("bior1.3: Verify failed: sumHSq=%v", res.SumHSq)
	}
}

func TestAnalysisHighPassIsQMFOfLowPass(t *testing.T) {
	w, err := Lookup("db4")
	if err != nil {
		t.Fatal(err)
	}
	h := w.AnalysisLowPass()
	g := w.AnalysisHighPass()
	if len(g) != len(h) {
		t.Fatalf("len(g) = %d, want %d", len(g), len(h))
	}
	L := len(h)
	for n := 0; n < L; n++ {
		sign := 1.0
		if n%2 != 0 {
			sign = -1.0
		}
		want := sign * h[L-1-n]
		if math.Abs(g[n]-want) > 1e-15 {
			t.Errorf("g[%d] = %v, want %v", n, g[n], want)
		}
	}
}

func TestOrthogonalReconstructionEqualsAnalysis(t *testing.T) {
	w, err := Lookup("db3")
	if err != nil {
		t.Fatal(err)
	}
	if !floatsEqual(w.AnalysisLowPass(), w.ReconstructionLowPass(), 0) {
		t.Error("orthogonal ReconstructionLowPass should equal AnalysisLowPass")
	}
	if !floatsEqual(w.AnalysisHighPass(), w.ReconstructionHighPass(), 0) {
		t.Error("orthogonal ReconstructionHighPass should equal AnalysisHighPass")
	}
}

func TestBiorthogonalReconstructionDiffersFromAnalysis(t *testing.T) {
	w, err := Lookup("bior1.3")
	if err != nil {
		t.Fatal(err)
	}
	if len(w.AnalysisLowPass()) == len(w.ReconstructionLowPass()) {
		t.Error("bior1.3 analysis and reconstruction low-pass filters are expected to differ in length")
	}
}

func TestLookupUnknownWaveletVsNotImplemented(t *testing.T) {
	if _, err := Lookup("nonexistent-wavelet"); !errors.Is(err, ErrUnknownWavelet) {
		t.Errorf("err = %v, want ErrUnknownWavelet", err)
	}
	if _, err := Lookup("db12"); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("err = %v, want ErrNotImplemented", err)
	}
}

func TestIsPowerOfTwo(t *testing.T) {
	cases := map[int]bool{
		-1: false, 0: false, 1: true, 2: true, 3: false, 4: true, 1023: false, 1024: true,
	}
	for n, want := range cases {
		if got := IsPowerOfTwo(n); got != want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int]int{
		1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1000: 1024, 1024: 1024,
	}
	for n, want := range cases {
		if got := NextPowerOfTwo(n); got != want {
			t.Errorf("NextPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestNextPowerOfTwoPanicsAboveMax(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for length above MaxSignalLength")
		}
	}()
	NextPowerOfTwo(MaxSignalLength + 1)
}

func TestCheckFiniteReportsIndex(t *testing.T) {
	err := CheckFinite([]float64{1, 2, math.Inf(1), 4})
	nf, ok := err.(*NonFiniteError)
	if !ok {
		t.Fatalf("err = %v (%T), want *NonFiniteError", err, err)
	}
	if nf.Index != 2 {
		t.Errorf("Index = %d, want 2", nf.Index)
	}
}

func TestNewCoefficientPairValidates(t *testing.T) {
	if _, err := NewCoefficientPair([]float64{1, 2}, []float64{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
	if _, err := NewCoefficientPair(nil, nil); !errors.Is(err, ErrEmptySignal) {
		t.Errorf("err = %v, want ErrEmptySignal", err)
	}
	pair, err := NewCoefficientPair([]float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if pair.Len() != 2 {
		t.Errorf("Len() = %d, want 2", pair.Len())
	}
}

func TestCoefficientPairCopiesAreIndependent(t *testing.T) {
	approx := []float64{1, 2, 3}
	detail := []float64{4, 5, 6}
	pair, err := NewCoefficientPair(approx, detail)
	if err != nil {
		t.Fatal(err)
	}
	approx[0] = 999
	if pair.Approx()[0] == 999 {
		t.Error("CoefficientPair.Approx() should be independent of the caller's backing array")
	}
	got := pair.Approx()
	got[0] = 42
	if pair.Approx()[0] == 42 {
		t.Error("pair.Approx() should return a fresh copy each call")
	}
}

func TestNewPaddedCoefficientPairValidatesOriginalLength(t *testing.T) {
	pair, err := NewCoefficientPair([]float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewPaddedCoefficientPair(pair, 0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("err = %v, want ErrInvalidLength", err)
	}
	if _, err := NewPaddedCoefficientPair(pair, 3); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("err = %v, want ErrInvalidLength", err)
	}
	p, err := NewPaddedCoefficientPair(pair, 2)
	if err != nil {
		t.Fatal(err)
	}
	if p.OriginalLength() != 2 {
		t.Errorf("OriginalLength() = %d, want 2", p.OriginalLength())
	}
}

func TestBoundaryModeSupported(t *testing.T) {
	if !Periodic.Supported() || !ZeroPadding.Supported() {
		t.Error("Periodic and ZeroPadding should be Supported")
	}
	reserved := BoundaryMode(99)
	if reserved.Valid() {
		t.Error("an out-of-range BoundaryMode should not be Valid")
	}
}
