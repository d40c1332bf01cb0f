// Copyright ©2026 The Wavelet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavelet

import "fmt"

// entry is the catalog's internal representation of a tabulated wavelet.
// The exported *Wavelet values Lookup returns are built from entry values
// so that the table itself stays a flat, easily-audited data literal (see
// design note 9: "keeps descriptors as pure data tables").
type entry struct {
	family           Family
	order            int
	kind             Kind
	h                []float64
	hRecon           []float64 // only set for Biorthogonal entries
	vanishingMoments int
	approximate      bool
}

// catalog maps a canonical lowercase wavelet name to its tabulated entry.
// It is built once at init time from literal coefficient tables and never
// mutated afterward; Lookup and Names only ever read from it.
var catalog = map[string]entry{}

func register(name string, e entry) {
	if _, dup := catalog[name]; dup {
		panic("wavelet: duplicate catalog entry " + name)
	}
	catalog[name] = e
}

// Lookup returns the descriptor for the named wavelet, e.g. "haar", "db4",
// "sym8", "coif2", "bior1.3". Names are matched exactly against the
// catalog's canonical lowercase form.
//
// If name names a family and order this package has never heard of at all,
// Lookup returns ErrUnknownWavelet. If name names a family and order the
// package recognizes conceptually but has not tabulated coefficients for,
// Lookup returns ErrNotImplemented — distinct per §4.1 of the originating
// specification, so a caller can tell "you mistyped this" from "this is a
// real wavelet, it's just not in this catalog yet".
func Lookup(name string) (*Wavelet, error) {
	e, ok := catalog[name]
	if !ok {
		if _, known := recognizedButUnimplemented[name]; known {
			return nil, fmt.Errorf("%w: %s", ErrNotImplemented, name)
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownWavelet, name)
	}
	return newFromEntry(name, e), nil
}

// Names returns the canonical names of every wavelet this catalog has
// coefficient tables for, in no particular order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	return out
}

func newFromEntry(name string, e entry) *Wavelet {
	h := make([]float64, len(e.h))
	copy(h, e.h)
	w := &Wavelet{
		name:             name,
		family:           e.family,
		order:            e.order,
		kind:             e.kind,
		h:                h,
		vanishingMoments: e.vanishingMoments,
		approximate:      e.approximate,
	}
	if e.kind == Biorthogonal {
		hr := make([]float64, len(e.hRecon))
		copy(hr, e.hRecon)
		w.hRecon = hr
	}
	return w
}

// recognizedButUnimplemented names wavelets this package knows exist (the
// spec's catalog lists them as families/orders to ship) but for which this
// catalog carries no literal, cross-checked coefficient table. Per §4.1,
// "Missing orders must raise a 'not implemented' error distinct from
// 'invalid argument'". db9, db10, sym5, sym6, and sym8 were added after a
// transcription pass verified each candidate table against the §8 filter
// laws (Σh=√2, Σh²=1, cross-orthogonality) to better than 1e-9 before it
// was committed to the catalog; sym7 and the remaining higher orders below
// did not pass that check against any candidate table this package could
// reconstruct from the named references' published precision, and hand-
// transcribing them further risks silently shipping one that fails the §8
// invariant, which this package treats as worse than declining outright.
// See DESIGN.md for the per-entry decision record.
var recognizedButUnimplemented = map[string]struct{}{
	"db12": {}, "db14": {}, "db16": {}, "db18": {}, "db20": {},
	"sym7": {}, "sym10": {}, "sym12": {}, "sym15": {}, "sym20": {},
	"coif3": {}, "coif4": {}, "coif5": {}, "coif6": {}, "coif7": {}, "coif8": {}, "coif9": {}, "coif10": {},
}
