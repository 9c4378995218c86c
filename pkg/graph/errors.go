package graph

import "errors"

// Error taxonomy per spec.md §7. Queries never fail on absent data —
// "no matching triple" is a normal false/empty result, not one of
// these.
var (
	// ErrOutOfMemory is returned when allocation fails while interning,
	// growing an index, or materializing a result array.
	ErrOutOfMemory = errors.New("graph: out of memory")

	// ErrInvalidWildcard is returned when the reserved id 0 is passed in
	// a position that does not accept it (subject or predicate of Ask,
	// GetObjects, MaterializeSubjects; any position of AddTriple), and
	// by Intern when asked to intern an empty byte string.
	ErrInvalidWildcard = errors.New("graph: invalid wildcard")

	// ErrOverflow is returned when an id or count would exceed the
	// representable 32-bit id space.
	ErrOverflow = errors.New("graph: id overflow")

	// ErrInconsistent is returned when a batched call receives a
	// zero-length or misshaped argument.
	ErrInconsistent = errors.New("graph: inconsistent batch argument")

	// ErrNotFound is returned only by operations where a missing
	// argument id is exceptional, such as Resolve on an id the interner
	// never issued. It is distinct from a query returning false.
	ErrNotFound = errors.New("graph: not found")
)
