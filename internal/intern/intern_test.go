package intern

import "testing"

func TestInternReferentialEquality(t *testing.T) {
	tbl := New(0)

	id1, err := tbl.Intern([]byte("ex:alice"))
	if err != nil {
		t.Fatalf("Intern() error = %v", err)
	}
	id2, err := tbl.Intern([]byte("ex:alice"))
	if err != nil {
		t.Fatalf("Intern() error = %v", err)
	}
	if id1 != id2 {
		t.Fatalf("Intern(x) != Intern(x): %d != %d", id1, id2)
	}
}

func TestInternDistinctStringsGetDistinctIDs(t *testing.T) {
	tbl := New(0)
	a, _ := tbl.Intern([]byte("ex:alice"))
	b, _ := tbl.Intern([]byte("ex:bob"))
	if a == b {
		t.Fatalf("distinct strings must get distinct ids")
	}
}

func TestFirstIDIsOneNeverZero(t *testing.T) {
	tbl := New(0)
	id, err := tbl.Intern([]byte("first"))
	if err != nil {
		t.Fatalf("Intern() error = %v", err)
	}
	if id != 1 {
		t.Fatalf("first interned id = %d, want 1 (id 0 is the wildcard sentinel)", id)
	}
}

func TestResolveRoundTrip(t *testing.T) {
	tbl := New(0)
	want := "http://example.org/alice"
	id, _ := tbl.Intern([]byte(want))

	got, ok := tbl.Resolve(id)
	if !ok {
		t.Fatalf("Resolve(%d) not found", id)
	}
	if string(got) != want {
		t.Fatalf("Resolve(intern(x)) = %q, want %q", got, want)
	}
}

func TestResolveUnknownOrWildcard(t *testing.T) {
	tbl := New(0)
	if _, ok := tbl.Resolve(0); ok {
		t.Fatalf("Resolve(0) must report not-found: 0 is the wildcard sentinel")
	}
	if _, ok := tbl.Resolve(999); ok {
		t.Fatalf("Resolve() of a never-issued id must report not-found")
	}
}

func TestGrowthPreservesExistingIDs(t *testing.T) {
	tbl := New(0)
	ids := make(map[string]uint32)
	for i := 0; i < 500; i++ {
		s := string(rune('a'+(i%26))) + string(rune(i))
		id, err := tbl.Intern([]byte(s))
		if err != nil {
			t.Fatalf("Intern() error = %v", err)
		}
		ids[s] = id
	}

	for s, want := range ids {
		got, err := tbl.Intern([]byte(s))
		if err != nil {
			t.Fatalf("Intern() error = %v", err)
		}
		if got != want {
			t.Fatalf("id for %q changed across growth: was %d, now %d", s, want, got)
		}
	}
}

func TestLenCountsDistinctStrings(t *testing.T) {
	tbl := New(0)
	tbl.Intern([]byte("a"))
	tbl.Intern([]byte("b"))
	tbl.Intern([]byte("a"))

	if got := tbl.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
}
