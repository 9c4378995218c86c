package graph

// Observer is the hook the store invokes around its spanned operations
// (see WithObserver) so an
// external telemetry layer (package telemetry) can record spans,
// without the core taking a dependency on any particular tracing
// backend (spec.md §6). When no observer is registered the store uses
// noopObserver, which performs no observable work — Begin/End are still
// called, but allocate nothing and touch no shared state.
type Observer interface {
	Begin(op string) Span
}

// Span is ended exactly once per Begin, with the operation's error (nil
// on success).
type Span interface {
	End(err error)
}

type noopObserver struct{}

func (noopObserver) Begin(string) Span { return noopSpan{} }

type noopSpan struct{}

func (noopSpan) End(error) {}
