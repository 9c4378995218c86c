// Package bench generates synthetic triple corpora and drives a
// graph.Store through them, reporting throughput in human-readable
// form. It is not part of the core: spec.md scopes benchmarking as an
// external concern, exercised here via go test -bench rather than a
// library API the core depends on.
package bench

import (
	"fmt"

	"github.com/knowgraph/semcore/pkg/graph"
)

// Corpus is a synthetic set of (subject, predicate, object) byte-string
// triples, generated deterministically from its sizes so repeated runs
// are comparable.
type Corpus struct {
	Subjects   []string
	Predicates []string
	Triples    [][3]int // indices into Subjects/Predicates/Subjects
}

// Generate builds a corpus of nSubjects subjects related through
// nPredicates predicates, each subject emitting fanOut triples per
// predicate (object reused from the subject pool), entirely
// deterministic for a given set of sizes.
func Generate(nSubjects, nPredicates, fanOut int) *Corpus {
	c := &Corpus{
		Subjects:   make([]string, nSubjects),
		Predicates: make([]string, nPredicates),
	}
	for i := range c.Subjects {
		c.Subjects[i] = fmt.Sprintf("urn:bench:subject:%d", i)
	}
	for i := range c.Predicates {
		c.Predicates[i] = fmt.Sprintf("urn:bench:predicate:%d", i)
	}
	for s := 0; s < nSubjects; s++ {
		for p := 0; p < nPredicates; p++ {
			for f := 0; f < fanOut; f++ {
				obj := (s + f + 1) % nSubjects
				c.Triples = append(c.Triples, [3]int{s, p, obj})
			}
		}
	}
	return c
}

// Load interns every subject/predicate/object referenced by c and
// inserts every triple into s, returning the number of triples
// actually added (AddTriple calls, not accounting for idempotent
// duplicates the generator may produce when fanOut wraps around).
func Load(s *graph.Store, c *Corpus) (int, error) {
	subjIDs := make([]uint32, len(c.Subjects))
	for i, v := range c.Subjects {
		id, err := s.Intern([]byte(v))
		if err != nil {
			return 0, fmt.Errorf("bench: intern subject %d: %w", i, err)
		}
		subjIDs[i] = id
	}
	predIDs := make([]uint32, len(c.Predicates))
	for i, v := range c.Predicates {
		id, err := s.Intern([]byte(v))
		if err != nil {
			return 0, fmt.Errorf("bench: intern predicate %d: %w", i, err)
		}
		predIDs[i] = id
	}

	loaded := 0
	for _, tr := range c.Triples {
		if err := s.AddTriple(subjIDs[tr[0]], predIDs[tr[1]], subjIDs[tr[2]]); err != nil {
			return loaded, fmt.Errorf("bench: add triple: %w", err)
		}
		loaded++
	}
	return loaded, nil
}
