// Package ttl loads line-oriented N-Triples-style files ("<s> <p> <o> .")
// into a graph.Store. One statement per line, terms wrapped in angle
// brackets, exactly the restricted subset the ambient stack needs: the
// core has no Term/datatype system (spec.md's data model is opaque
// byte-strings), so unlike a full Turtle/N-Triples parser there is no
// literal, language-tag, or prefix handling here, only IRI-shaped terms
// separated by whitespace.
package ttl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knowgraph/semcore/pkg/graph"
)

// Stats reports how many statements a Load call consumed.
type Stats struct {
	Lines    int
	Triples  int
	Comments int
	Blanks   int
}

// LoadFile opens path and loads its statements into s.
func LoadFile(s *graph.Store, path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("ttl: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(s, f)
}

// Load reads statements from r, one per line, interning each term and
// adding the resulting triple to s. It stops at the first malformed
// line.
func Load(s *graph.Store, r io.Reader) (Stats, error) {
	var st Stats
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		st.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			st.Blanks++
			continue
		}
		if strings.HasPrefix(line, "#") {
			st.Comments++
			continue
		}

		subj, pred, obj, err := parseStatement(line)
		if err != nil {
			return st, fmt.Errorf("ttl: line %d: %w", st.Lines, err)
		}

		sID, err := s.Intern(subj)
		if err != nil {
			return st, fmt.Errorf("ttl: line %d: intern subject: %w", st.Lines, err)
		}
		pID, err := s.Intern(pred)
		if err != nil {
			return st, fmt.Errorf("ttl: line %d: intern predicate: %w", st.Lines, err)
		}
		oID, err := s.Intern(obj)
		if err != nil {
			return st, fmt.Errorf("ttl: line %d: intern object: %w", st.Lines, err)
		}
		if err := s.AddTriple(sID, pID, oID); err != nil {
			return st, fmt.Errorf("ttl: line %d: add triple: %w", st.Lines, err)
		}
		st.Triples++
	}
	if err := scanner.Err(); err != nil {
		return st, fmt.Errorf("ttl: scan: %w", err)
	}
	return st, nil
}

// parseStatement splits "<s> <p> <o> ." into its three bracketed terms.
func parseStatement(line string) (subj, pred, obj []byte, err error) {
	line = strings.TrimSuffix(strings.TrimSpace(line), ".")
	line = strings.TrimSpace(line)

	fields := splitTerms(line)
	if len(fields) != 3 {
		return nil, nil, nil, fmt.Errorf("expected 3 terms, got %d: %q", len(fields), line)
	}
	subj, err = unwrap(fields[0])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("subject: %w", err)
	}
	pred, err = unwrap(fields[1])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("predicate: %w", err)
	}
	obj, err = unwrap(fields[2])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("object: %w", err)
	}
	return subj, pred, obj, nil
}

// splitTerms splits on whitespace while keeping "<...>" terms with
// embedded spaces intact (none expected in practice, but a term is only
// ever closed by its own '>').
func splitTerms(line string) []string {
	var fields []string
	var cur strings.Builder
	inTerm := false
	for _, r := range line {
		switch {
		case r == '<':
			inTerm = true
			cur.WriteRune(r)
		case r == '>':
			inTerm = false
			cur.WriteRune(r)
		case r == ' ' || r == '\t':
			if inTerm {
				cur.WriteRune(r)
				continue
			}
			if cur.Len() > 0 {
				fields = append(fields, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		fields = append(fields, cur.String())
	}
	return fields
}

func unwrap(term string) ([]byte, error) {
	if len(term) < 2 || term[0] != '<' || term[len(term)-1] != '>' {
		return nil, fmt.Errorf("not an IRI term: %q", term)
	}
	return []byte(term[1 : len(term)-1]), nil
}
