package bench

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/knowgraph/semcore/pkg/graph"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(10, 3, 2)
	b := Generate(10, 3, 2)
	if len(a.Triples) != len(b.Triples) {
		t.Fatalf("Generate() not deterministic: %d vs %d triples", len(a.Triples), len(b.Triples))
	}
	for i := range a.Triples {
		if a.Triples[i] != b.Triples[i] {
			t.Fatalf("Generate() triple %d differs: %v vs %v", i, a.Triples[i], b.Triples[i])
		}
	}
}

func TestLoadCorpusIntoStore(t *testing.T) {
	c := Generate(20, 4, 3)
	s := graph.CreateStore(64, 8, 64)
	n, err := Load(s, c)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if n != len(c.Triples) {
		t.Fatalf("Load() = %d, want %d", n, len(c.Triples))
	}
	if s.Stats().Triples == 0 {
		t.Fatalf("Stats().Triples = 0 after loading corpus")
	}
}

func TestCheckpointCacheRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bench-cache")
	cache, err := OpenCheckpointCache(dir)
	if err != nil {
		t.Fatalf("OpenCheckpointCache() error = %v", err)
	}
	defer cache.Close()

	c := Generate(5, 2, 1)
	if err := cache.Save("small", c); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, ok, err := cache.Load("small")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !ok {
		t.Fatalf("Load() ok = false, want true")
	}
	if len(loaded.Triples) != len(c.Triples) {
		t.Fatalf("Load() triples = %d, want %d", len(loaded.Triples), len(c.Triples))
	}
}

func TestCheckpointCacheMissReportsNotOK(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "bench-cache-empty")
	cache, err := OpenCheckpointCache(dir)
	if err != nil {
		t.Fatalf("OpenCheckpointCache() error = %v", err)
	}
	defer cache.Close()

	_, ok, err := cache.Load("missing")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok {
		t.Fatalf("Load() ok = true, want false for missing key")
	}
}

func TestThroughputString(t *testing.T) {
	th := Throughput{Operations: 1000000, Elapsed: 100 * time.Millisecond}
	if th.PerSecond() <= 0 {
		t.Fatalf("PerSecond() = %f, want > 0", th.PerSecond())
	}
	if th.String() == "" {
		t.Fatalf("String() = empty")
	}
}

func BenchmarkAddTriple(b *testing.B) {
	c := Generate(200, 10, 5)
	s := graph.CreateStore(4096, 64, 4096)
	if _, err := Load(s, c); err != nil {
		b.Fatalf("Load() error = %v", err)
	}

	subj, _ := s.Intern([]byte("urn:bench:subject:0"))
	pred, _ := s.Intern([]byte("urn:bench:predicate:0"))
	obj, _ := s.Intern([]byte("urn:bench:subject:1"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.AddTriple(subj, pred, obj); err != nil {
			b.Fatalf("AddTriple() error = %v", err)
		}
	}
}

func BenchmarkAsk(b *testing.B) {
	c := Generate(200, 10, 5)
	s := graph.CreateStore(4096, 64, 4096)
	if _, err := Load(s, c); err != nil {
		b.Fatalf("Load() error = %v", err)
	}

	subj, _ := s.Intern([]byte("urn:bench:subject:0"))
	pred, _ := s.Intern([]byte("urn:bench:predicate:0"))
	obj, _ := s.Intern([]byte("urn:bench:subject:1"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Ask(subj, pred, obj); err != nil {
			b.Fatalf("Ask() error = %v", err)
		}
	}
}
