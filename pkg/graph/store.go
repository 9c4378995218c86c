// Package graph implements the in-memory semantic knowledge engine
// described by spec.md: string interning, triple insertion, bit-vector
// indexing, pattern ask, subject/object materialization, and shape
// constraint checks, all bounded by a small constant per lookup and
// independent of dataset size.
//
// The store is single-threaded per instance for mutation (spec.md §5):
// all of AddTriple must happen on one owning goroutine. Once quiesced,
// the read-only operations (Ask, AskBatch, GetObjects,
// MaterializeSubjects, IsClass, MinCount, MaxCount,
// ValidateShapeBatch) are safe to call concurrently from multiple
// goroutines, the same way trigo's own TripleStore separates writable
// and read-only badger transactions.
package graph

import (
	"math"

	"github.com/knowgraph/semcore/internal/index"
	"github.com/knowgraph/semcore/internal/intern"
)

// WildcardID is the reserved identifier meaning "any"/"absent". The
// interner never hands it out.
const WildcardID uint32 = 0

// ClassHierarchy is an optional, externally supplied subclass-closure
// oracle (spec.md §4.8/§9). When nil, IsClass only tests the direct
// type scalar. package reasoner provides a bitmap-backed implementation.
type ClassHierarchy interface {
	// IsSubclassOf reports whether sub is class or a transitive subclass
	// of super. Implementations should treat IsSubclassOf(c, c) as true.
	IsSubclassOf(sub, super uint32) bool
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithTypePredicate designates the predicate id that receives the
// additional per-subject OT scalar (spec.md §4.3, §9: "recognized by a
// configured identifier supplied by the caller — it is not discovered
// by string content").
func WithTypePredicate(id uint32) Option {
	return func(s *Store) { s.typePredicate = id }
}

// WithClassHierarchy injects an optional subclass-closure oracle used
// by IsClass.
func WithClassHierarchy(h ClassHierarchy) Option {
	return func(s *Store) { s.hierarchy = h }
}

// WithObserver registers a telemetry observer (package telemetry) for
// begin/end span notifications around Intern, AddTriple, and the query
// and shape operations. Resolve and SubjectVector are not spanned.
func WithObserver(obs Observer) Option {
	return func(s *Store) {
		if obs != nil {
			s.obs = obs
		}
	}
}

// Store owns the interner, all index arrays, all bit vectors, and the
// multi-object index for one knowledge graph. Nothing outlives the
// Store that allocated it (spec.md §3, "ownership is strictly
// hierarchical").
type Store struct {
	interner *intern.Table
	preds    *index.Predicates
	moi      *index.MOI
	ot       *index.ObjectTypes

	typePredicate uint32
	hierarchy     ClassHierarchy
	obs           Observer

	tripleCount int
}

// CreateStore creates an empty store sized to the given capacity hints.
// The hints only pre-size the first allocation; every index still grows
// dynamically as ids beyond the hint are observed (spec.md §3 "Lifecycle").
func CreateStore(hintMaxTriples, hintMaxPredicates, hintMaxObjects int, opts ...Option) *Store {
	s := &Store{
		interner: intern.New(hintMaxTriples),
		preds:    index.NewPredicates(hintMaxPredicates, hintMaxObjects),
		moi:      index.NewMOI(),
		ot:       index.NewObjectTypes(hintMaxObjects),
		obs:      noopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the store's owned memory. In Go this is a no-op beyond
// dropping references (there is nothing else to release), but it keeps
// the API symmetrical with spec.md §6's create_store/destroy_store pair
// and gives callers a place to hang resource-tracking hooks.
func (s *Store) Close() {
	s.interner = nil
	s.preds = nil
	s.moi = nil
	s.ot = nil
}

// Intern returns the dense id for bytes, interning it if new. The
// returned id is never 0. An empty byte string is refused with
// ErrInvalidWildcard.
func (s *Store) Intern(b []byte) (uint32, error) {
	if len(b) == 0 {
		return 0, ErrInvalidWildcard
	}
	span := s.obs.Begin("intern")
	id, err := s.interner.Intern(b)
	if err != nil {
		span.End(err)
		return 0, ErrOutOfMemory
	}
	span.End(nil)
	return id, nil
}

// Resolve returns the bytes originally passed to Intern for id.
func (s *Store) Resolve(id uint32) ([]byte, error) {
	b, ok := s.interner.Resolve(id)
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

// AddTriple records (s, p, o) if not already present; idempotent under
// repeated identical insertion (spec.md §4.4).
func (s *Store) AddTriple(subj, pred, obj uint32) error {
	span := s.obs.Begin("add_triple")
	err := s.addTriple(subj, pred, obj)
	span.End(err)
	return err
}

func (s *Store) addTriple(subj, pred, obj uint32) error {
	if subj == WildcardID || pred == WildcardID || obj == WildcardID {
		return ErrInvalidWildcard
	}
	if subj == math.MaxUint32 || pred == math.MaxUint32 || obj == math.MaxUint32 {
		return ErrOverflow
	}

	switch s.preds.Insert(pred, subj, obj) {
	case index.InsertedPrimary:
		// nothing further: PSV/POA already updated.
	case index.DuplicatePrimary:
		return nil
	case index.NeedsMultiObject:
		primary := s.preds.PrimaryObject(pred, subj)
		set := s.moi.EnsureSeeded(pred, subj, primary)
		if _, already := set[obj]; already {
			return nil
		}
		s.moi.Add(pred, subj, obj)
	}

	s.tripleCount++

	if s.typePredicate != 0 && pred == s.typePredicate {
		s.ot.SetIfAbsent(subj, obj)
	}

	return nil
}

// Stats reports cheap, already-maintained counters useful to CLI
// introspection and the benchmark harness (SPEC_FULL.md §4): the
// distinct-triple count and the number of interned strings.
type Stats struct {
	Triples         int
	InternedStrings int
}

// Stats returns the store's current size counters.
func (s *Store) Stats() Stats {
	return Stats{
		Triples:         s.tripleCount,
		InternedStrings: s.interner.Len(),
	}
}
