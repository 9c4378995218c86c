package telemetry

import (
	"testing"

	"github.com/knowgraph/semcore/pkg/graph"
)

// countingObserver is a minimal Observer used to assert the store calls
// Begin/End exactly once per operation, without pulling in a real OTel
// SDK exporter for the test.
type countingObserver struct {
	begins int
	ends   int
}

type countingSpan struct{ o *countingObserver }

func (o *countingObserver) Begin(string) graph.Span {
	o.begins++
	return countingSpan{o: o}
}

func (s countingSpan) End(error) { s.o.ends++ }

func TestObserverSeesOneSpanPerOperation(t *testing.T) {
	obs := &countingObserver{}
	s := graph.CreateStore(4, 4, 4, graph.WithObserver(obs))

	s.Intern([]byte("ex:alice"))
	s.AddTriple(1, 1, 1)
	s.Ask(1, 1, 1)

	if obs.begins != obs.ends {
		t.Fatalf("begins=%d ends=%d, want equal (every span must end)", obs.begins, obs.ends)
	}
	if obs.begins != 3 {
		t.Fatalf("begins=%d, want 3 (intern, add_triple, ask)", obs.begins)
	}
}

func TestNewOTelObserverImplementsObserver(t *testing.T) {
	var _ graph.Observer = NewOTelObserver("semcore-test")
}
