package render

import (
	"strings"
	"testing"
)

func TestRenderAskResult(t *testing.T) {
	r, err := New("ask", DefaultAskTemplate)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out, err := r.Render(AskResult{Subject: 1, Predicate: 2, Object: 3, Matched: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(out, "YES") {
		t.Fatalf("Render() = %q, want prefix YES", out)
	}
}

func TestRenderMaterializeResultUsesSprigHelpers(t *testing.T) {
	r, err := New("materialize", DefaultMaterializeTemplate)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out, err := r.Render(MaterializeResult{Predicate: 2, Object: 3, Subjects: []uint32{1, 5, 7}})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "3 subject(s)") {
		t.Fatalf("Render() = %q, want subject count", out)
	}
}

func TestRenderShapeResult(t *testing.T) {
	r, err := New("shape", DefaultShapeTemplate)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out, err := r.Render(ShapeResult{Subject: 42, Valid: false})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(out, "violates") {
		t.Fatalf("Render() = %q, want violates", out)
	}
}

func TestNewRejectsInvalidTemplate(t *testing.T) {
	if _, err := New("bad", "{{.Unclosed"); err == nil {
		t.Fatalf("New() error = nil, want parse error")
	}
}

func TestRenderWithSprigFunction(t *testing.T) {
	r, err := New("upper", `{{.Subject | toString | upper}}`)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	out, err := r.Render(AskResult{Subject: 9})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if out != "9" {
		t.Fatalf("Render() = %q, want %q", out, "9")
	}
}
