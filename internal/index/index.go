// Package index implements the three coordinated structures the store
// keeps per predicate: the subject bit vector (PSV), the primary-object
// array (POA), and the per-subject type scalar (OT). See spec.md §4.3.
package index

import "github.com/knowgraph/semcore/pkg/bitset"

// Predicates owns the per-predicate PSV and POA tables, growing either
// dimension on demand. Index 0 in the predicate dimension is never used
// (predicate id 0 is the wildcard sentinel and is never a valid
// argument), but is kept so predicate ids can index directly without an
// off-by-one translation.
type Predicates struct {
	psv []*bitset.BitVector // psv[p] : bit s set iff (s, p, *) exists
	poa [][]uint32          // poa[p][s] : first object inserted for (s, p, *)
}

// NewPredicates creates an empty predicate index with room for
// hintPredicates predicates. hintSubjects is not used: each predicate's
// subject arrays are allocated on its first insert and grow on demand.
func NewPredicates(hintPredicates, hintSubjects int) *Predicates {
	return &Predicates{
		psv: make([]*bitset.BitVector, hintPredicates+1),
		poa: make([][]uint32, hintPredicates+1),
	}
}

func (p *Predicates) ensurePredicate(pred uint32) {
	if int(pred) < len(p.psv) {
		return
	}
	newCap := len(p.psv)
	if newCap == 0 {
		newCap = 1
	}
	for newCap <= int(pred) {
		newCap *= 2
	}
	grownPSV := make([]*bitset.BitVector, newCap)
	copy(grownPSV, p.psv)
	p.psv = grownPSV

	grownPOA := make([][]uint32, newCap)
	copy(grownPOA, p.poa)
	p.poa = grownPOA
}

func (p *Predicates) ensureSubjectSlot(pred, subj uint32) []uint32 {
	p.ensurePredicate(pred)
	if p.psv[pred] == nil {
		p.psv[pred] = bitset.New(int(subj) + 1)
	}
	poa := p.poa[pred]
	if int(subj) >= len(poa) {
		newCap := len(poa)
		if newCap == 0 {
			newCap = 1
		}
		for newCap <= int(subj) {
			newCap *= 2
		}
		grown := make([]uint32, newCap)
		copy(grown, poa)
		poa = grown
		p.poa[pred] = poa
	}
	return poa
}

// HasSubject reports PSV[p].Test(s).
func (p *Predicates) HasSubject(pred, subj uint32) bool {
	if int(pred) >= len(p.psv) || p.psv[pred] == nil {
		return false
	}
	return p.psv[pred].Test(int(subj))
}

// PrimaryObject returns POA[p][s], or 0 if none recorded.
func (p *Predicates) PrimaryObject(pred, subj uint32) uint32 {
	if int(pred) >= len(p.poa) {
		return 0
	}
	poa := p.poa[pred]
	if int(subj) >= len(poa) {
		return 0
	}
	return poa[subj]
}

// setPrimaryObject records obj as POA[p][s] and sets PSV[p].Test(s).
// Callers are responsible for only calling this the first time a
// subject/predicate pair is seen (see Predicates.Insert).
func (p *Predicates) setPrimaryObject(pred, subj, obj uint32) {
	poa := p.ensureSubjectSlot(pred, subj)
	poa[subj] = obj
	p.psv[pred].Set(int(subj))
}

// SubjectVector returns the raw PSV[p] bit vector (nil if predicate p
// has never been inserted), for callers that want to combine predicates
// themselves (spec.md §6, SubjectVector).
func (p *Predicates) SubjectVector(pred uint32) *bitset.BitVector {
	if int(pred) >= len(p.psv) {
		return nil
	}
	return p.psv[pred]
}

// InsertResult describes what Insert did, so the caller (graph.Store)
// can decide whether to consult/populate the multi-object index.
type InsertResult int

const (
	// InsertedPrimary means this was the first object for (s, p, *);
	// POA/PSV were updated and there is nothing else to do.
	InsertedPrimary InsertResult = iota
	// DuplicatePrimary means obj equals the existing POA[p][s]; a no-op.
	DuplicatePrimary
	// NeedsMultiObject means POA[p][s] is already set to a different
	// object; the caller must consult/populate the MOI.
	NeedsMultiObject
)

// Insert applies the POA/PSV half of spec.md §4.4's algorithm and
// reports which of the three cases applied.
func (p *Predicates) Insert(pred, subj, obj uint32) InsertResult {
	existing := p.PrimaryObject(pred, subj)
	switch {
	case existing == 0:
		p.setPrimaryObject(pred, subj, obj)
		return InsertedPrimary
	case existing == obj:
		return DuplicatePrimary
	default:
		return NeedsMultiObject
	}
}

// ObjectTypes is the per-subject OT scalar array, written only for the
// designated type predicate.
type ObjectTypes struct {
	ot []uint32
}

// NewObjectTypes creates an empty OT array sized to the given hint.
func NewObjectTypes(hintSubjects int) *ObjectTypes {
	return &ObjectTypes{ot: make([]uint32, hintSubjects)}
}

// Get returns OT[s], or 0 if unset.
func (o *ObjectTypes) Get(subj uint32) uint32 {
	if int(subj) >= len(o.ot) {
		return 0
	}
	return o.ot[subj]
}

// SetIfAbsent writes obj into OT[s] only if OT[s] is currently 0,
// matching spec.md §4.3/§4.4: the first type assertion wins.
func (o *ObjectTypes) SetIfAbsent(subj, obj uint32) {
	if int(subj) >= len(o.ot) {
		newCap := len(o.ot)
		if newCap == 0 {
			newCap = 1
		}
		for newCap <= int(subj) {
			newCap *= 2
		}
		grown := make([]uint32, newCap)
		copy(grown, o.ot)
		o.ot = grown
	}
	if o.ot[subj] == 0 {
		o.ot[subj] = obj
	}
}
