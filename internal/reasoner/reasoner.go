// Package reasoner implements the optional subclass-closure path
// spec.md §4.8/§9 describes as mentioned-but-not-mandatory in the
// source material: a graph.ClassHierarchy consulted by Store.IsClass
// only when supplied at CreateStore time.
//
// It is deliberately outside the core: the core's own bitset
// (pkg/bitset) is a from-scratch primitive the spec requires to be
// hand-built, but a reasoner's subclass-closure is an auxiliary,
// precomputed structure over class ids, a good fit for a real
// compressed-bitmap library the way AKJUS-bsc-erigon pulls in
// RoaringBitmap/roaring/v2 for its own set-heavy indices.
package reasoner

import roaring "github.com/RoaringBitmap/roaring/v2"

// BitmapHierarchy precomputes, for every class, the set of classes it is
// a (possibly transitive) subclass of. It implements graph.ClassHierarchy.
type BitmapHierarchy struct {
	// ancestors[c] is the bitmap of every class c is a subclass of,
	// including c itself.
	ancestors map[uint32]*roaring.Bitmap
}

// NewBitmapHierarchy computes the transitive closure of subClassOf
// edges, where edges[c] lists c's immediate superclasses. It runs once,
// at construction, so IsSubclassOf is a single bitmap membership test.
func NewBitmapHierarchy(edges map[uint32][]uint32) *BitmapHierarchy {
	h := &BitmapHierarchy{ancestors: make(map[uint32]*roaring.Bitmap, len(edges))}
	for c := range edges {
		h.ancestors[c] = h.closure(c, edges, make(map[uint32]bool))
	}
	return h
}

func (h *BitmapHierarchy) closure(c uint32, edges map[uint32][]uint32, visiting map[uint32]bool) *roaring.Bitmap {
	if bm, ok := h.ancestors[c]; ok {
		return bm
	}
	bm := roaring.New()
	bm.Add(c)
	if visiting[c] {
		// cyclic subClassOf edge: stop recursing, the self-membership
		// above is still correct.
		return bm
	}
	visiting[c] = true
	for _, super := range edges[c] {
		bm.Or(h.closure(super, edges, visiting))
	}
	visiting[c] = false
	return bm
}

// IsSubclassOf reports whether sub is class super or a transitive
// subclass of it.
func (h *BitmapHierarchy) IsSubclassOf(sub, super uint32) bool {
	bm, ok := h.ancestors[sub]
	if !ok {
		return sub == super
	}
	return bm.Contains(super)
}
