package report

// Result pairs an optional document with the diagnostics collected while
// parsing it. Recovery means both can be present at once: a document built
// from a broken input still describes everything that parsed cleanly. An
// empty error list guarantees the document is present.
type Result[T any] struct {
	Document    T
	HasDocument bool
	Errors      ErrorList
}

// Success wraps a document that parsed without diagnostics.
func Success[T any](document T) Result[T] {
	return Result[T]{Document: document, HasDocument: true}
}

// Recovered wraps a document together with the diagnostics recovery skipped
// over. With an empty error list it is equivalent to Success.
func Recovered[T any](document T, errs ErrorList) Result[T] {
	return Result[T]{Document: document, HasDocument: true, Errors: errs}
}

// Failure wraps diagnostics for an input no document could be built from.
func Failure[T any](errs ErrorList) Result[T] {
	return Result[T]{Errors: errs}
}

// IsClean reports whether parsing produced a document and no diagnostics.
func (r Result[T]) IsClean() bool {
	return r.HasDocument && len(r.Errors) == 0
}

// HasErrors reports whether any diagnostic was recorded.
func (r Result[T]) HasErrors() bool {
	return len(r.Errors) > 0
}

// Strict collapses the result into a success or failure, discarding the
// document as soon as a single diagnostic was recorded.
func (r Result[T]) Strict() (T, error) {
	if len(r.Errors) > 0 {
		var zero T
		return zero, r.Errors
	}
	return r.Document, nil
}
