package graph

import "github.com/knowgraph/semcore/pkg/bitset"

// Ask reports whether a matching triple exists. obj may be WildcardID,
// meaning "any object for (subj, pred)"; subj and pred must be concrete
// (spec.md §4.5).
func (s *Store) Ask(subj, pred, obj uint32) (bool, error) {
	if subj == WildcardID || pred == WildcardID {
		return false, ErrInvalidWildcard
	}
	span := s.obs.Begin("ask")
	ok := s.ask(subj, pred, obj)
	span.End(nil)
	return ok, nil
}

func (s *Store) ask(subj, pred, obj uint32) bool {
	if !s.preds.HasSubject(pred, subj) {
		return false
	}
	if obj == WildcardID {
		return true
	}
	if s.preds.PrimaryObject(pred, subj) == obj {
		return true
	}
	set, ok := s.moi.Get(pred, subj)
	if !ok {
		return false
	}
	_, ok = set[obj]
	return ok
}

// Pattern is one (subject, predicate, object) query for AskBatch; obj
// may be WildcardID.
type Pattern struct {
	Subject   uint32
	Predicate uint32
	Object    uint32
}

// AskBatch evaluates N patterns together. spec.md §4.5 describes this as
// a prefetch-friendly "four lanes at a time" batch; in Go there is no
// portable manual-prefetch primitive, so AskBatch groups patterns into
// lanes of four and evaluates each lane's PSV test, POA load, and MOI
// fallback together, which is the part of the access pattern under our
// control and keeps the contract (identical results to individually
// issued Ask calls) exact regardless of how the compiler schedules
// loads.
func (s *Store) AskBatch(patterns []Pattern) ([]bool, error) {
	if len(patterns) == 0 {
		return nil, ErrInconsistent
	}
	span := s.obs.Begin("ask_batch")
	defer span.End(nil)

	out := make([]bool, len(patterns))
	const lane = 4
	for i := 0; i < len(patterns); i += lane {
		end := i + lane
		if end > len(patterns) {
			end = len(patterns)
		}
		var hasSubj [lane]bool
		for j := i; j < end; j++ {
			p := patterns[j]
			if p.Subject == WildcardID || p.Predicate == WildcardID {
				out[j] = false
				continue
			}
			hasSubj[j-i] = s.preds.HasSubject(p.Predicate, p.Subject)
		}
		for j := i; j < end; j++ {
			p := patterns[j]
			if p.Subject == WildcardID || p.Predicate == WildcardID {
				continue
			}
			if !hasSubj[j-i] {
				out[j] = false
				continue
			}
			if p.Object == WildcardID {
				out[j] = true
				continue
			}
			if s.preds.PrimaryObject(p.Predicate, p.Subject) == p.Object {
				out[j] = true
				continue
			}
			set, ok := s.moi.Get(p.Predicate, p.Subject)
			if ok {
				_, out[j] = set[p.Object]
			}
		}
	}
	return out, nil
}

// GetObjects yields every object recorded for (pred, subj): the primary
// object first (if any), then the remaining members of the multi-object
// set, skipping the primary to avoid duplication (spec.md §4.6). The
// returned slice is a finite, restartable realization of that sequence.
func (s *Store) GetObjects(pred, subj uint32) ([]uint32, error) {
	if pred == WildcardID || subj == WildcardID {
		return nil, ErrInvalidWildcard
	}
	span := s.obs.Begin("get_objects")
	defer span.End(nil)

	primary := s.preds.PrimaryObject(pred, subj)
	if primary == WildcardID {
		return nil, nil
	}
	out := []uint32{primary}
	set, ok := s.moi.Get(pred, subj)
	if !ok {
		return out, nil
	}
	for o := range set {
		if o != primary {
			out = append(out, o)
		}
	}
	return out, nil
}

// MaterializeSubjects returns every subject s such that (s, pred, obj)
// exists, in ascending order of s, with obj == WildcardID meaning "every
// subject PSV[pred] indicates" (spec.md §4.7). The caller owns the
// returned slice.
func (s *Store) MaterializeSubjects(pred, obj uint32) ([]uint32, error) {
	if pred == WildcardID {
		return nil, ErrInvalidWildcard
	}
	span := s.obs.Begin("materialize_subjects")
	defer span.End(nil)

	sv := s.preds.SubjectVector(pred)
	if sv == nil {
		return nil, nil
	}
	out := make([]uint32, 0, sv.PopCount())
	sv.ForEach(func(bit int) bool {
		subj := uint32(bit)
		if obj == WildcardID {
			out = append(out, subj)
			return true
		}
		if s.preds.PrimaryObject(pred, subj) == obj {
			out = append(out, subj)
			return true
		}
		if set, ok := s.moi.Get(pred, subj); ok {
			if _, ok := set[obj]; ok {
				out = append(out, subj)
			}
		}
		return true
	})
	return out, nil
}

// SubjectVector returns the raw bit vector of subjects having pred (any
// object), for a higher layer (optimizer, reasoner) that wants to
// combine predicates itself without paying for a materialized array
// (spec.md §6, optional operation). When obj is not WildcardID, the
// returned vector is built by filtering PSV[pred] down to subjects
// whose recorded object(s) include obj — still a single pass, never a
// linear scan of the whole store.
func (s *Store) SubjectVector(pred, obj uint32) (*bitset.BitVector, error) {
	if pred == WildcardID {
		return nil, ErrInvalidWildcard
	}
	sv := s.preds.SubjectVector(pred)
	if sv == nil {
		return bitset.New(0), nil
	}
	if obj == WildcardID {
		return sv, nil
	}
	out := bitset.New(sv.Len())
	sv.ForEach(func(bit int) bool {
		subj := uint32(bit)
		if s.preds.PrimaryObject(pred, subj) == obj {
			out.Set(bit)
		} else if set, ok := s.moi.Get(pred, subj); ok {
			if _, ok := set[obj]; ok {
				out.Set(bit)
			}
		}
		return true
	})
	return out, nil
}
