package ttl

import (
	"strings"
	"testing"

	"github.com/knowgraph/semcore/pkg/graph"
)

func TestLoadBasicStatements(t *testing.T) {
	s := graph.CreateStore(16, 16, 16)
	input := `<ex:alice> <ex:knows> <ex:bob> .
<ex:alice> <ex:knows> <ex:carol> .
`
	stats, err := Load(s, strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if stats.Triples != 2 {
		t.Fatalf("stats.Triples = %d, want 2", stats.Triples)
	}

	alice, _ := s.Intern([]byte("ex:alice"))
	knows, _ := s.Intern([]byte("ex:knows"))
	bob, _ := s.Intern([]byte("ex:bob"))

	ok, err := s.Ask(alice, knows, bob)
	if err != nil || !ok {
		t.Fatalf("Ask(alice, knows, bob) = %v, %v, want true, nil", ok, err)
	}
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	s := graph.CreateStore(16, 16, 16)
	input := "# a comment\n\n<ex:a> <ex:b> <ex:c> .\n"
	stats, err := Load(s, strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if stats.Comments != 1 || stats.Blanks != 1 || stats.Triples != 1 {
		t.Fatalf("stats = %+v, want 1 comment, 1 blank, 1 triple", stats)
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	s := graph.CreateStore(16, 16, 16)
	_, err := Load(s, strings.NewReader("<ex:a> <ex:b> .\n"))
	if err == nil {
		t.Fatalf("Load() error = nil, want error on 2-term statement")
	}
}

func TestLoadRejectsNonIRITerm(t *testing.T) {
	s := graph.CreateStore(16, 16, 16)
	_, err := Load(s, strings.NewReader("<ex:a> <ex:b> plainword .\n"))
	if err == nil {
		t.Fatalf("Load() error = nil, want error on bare term")
	}
}

func TestLoadFileMissingPathErrors(t *testing.T) {
	s := graph.CreateStore(4, 4, 4)
	if _, err := LoadFile(s, "/nonexistent/path/does-not-exist.nt"); err == nil {
		t.Fatalf("LoadFile() error = nil, want error for missing file")
	}
}
