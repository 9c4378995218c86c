package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/knowgraph/semcore/internal/telemetry"
	"github.com/knowgraph/semcore/internal/ttl"
	"github.com/knowgraph/semcore/pkg/graph"
)

// openStore builds a Store and, if path is non-empty, ingests it from
// an N-Triples-style file before returning.
func openStore(path string, typePredicate string) (*graph.Store, error) {
	opts := []graph.Option{graph.WithObserver(telemetry.NewOTelObserver("semcore-cli"))}

	var typePredicateID uint32
	if typePredicate != "" {
		// Intern the type predicate against a throwaway table first: since
		// it is always the very first string either table ever sees, both
		// assign it the same id (1), so it can be baked into
		// WithTypePredicate before the real store's interner exists yet.
		scratch := graph.CreateStore(1, 1, 1)
		id, err := scratch.Intern([]byte(typePredicate))
		if err != nil {
			return nil, fmt.Errorf("intern type predicate: %w", err)
		}
		typePredicateID = id
		opts = append(opts, graph.WithTypePredicate(typePredicateID))
	}

	s := graph.CreateStore(1<<16, 1<<12, 1<<16, opts...)
	if typePredicate != "" {
		if _, err := s.Intern([]byte(typePredicate)); err != nil {
			return nil, fmt.Errorf("intern type predicate: %w", err)
		}
	}

	if path != "" {
		stats, err := ttl.LoadFile(s, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		log.Info("ingested file",
			zap.String("path", path),
			zap.Int("triples", stats.Triples),
			zap.Int("lines", stats.Lines))
	}
	return s, nil
}
