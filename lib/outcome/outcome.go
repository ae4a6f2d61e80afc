// Package outcome provides a two-variant result type for computations over
// untrusted input, where a failure is data to be aggregated rather than an
// exceptional condition.
package outcome

// Result holds exactly one of a success value or an error value.
// It is immutable once constructed. The zero value is an Err carrying
// the zero value of E.
type Result[V, E any] struct {
	value V
	err   E
	ok    bool
}

// Ok creates a successful Result.
func Ok[V, E any](value V) Result[V, E] {
	return Result[V, E]{value: value, ok: true}
}

// Err creates a failed Result.
func Err[V, E any](err E) Result[V, E] {
	return Result[V, E]{err: err}
}

func (r Result[V, E]) IsOk() bool {
	return r.ok
}

func (r Result[V, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and whether it is present.
func (r Result[V, E]) Get() (V, bool) {
	return r.value, r.ok
}

// GetErr returns the error value and whether it is present.
func (r Result[V, E]) GetErr() (E, bool) {
	return r.err, !r.ok
}

// MustGet returns the success value, panicking on an Err.
// Reserved for tests and for call sites directly after an IsOk check.
func (r Result[V, E]) MustGet() V {
	if !r.ok {
		panic("called MustGet on an Err result")
	}
	return r.value
}

// UnwrapOr returns the success value, or fallback on an Err.
func (r Result[V, E]) UnwrapOr(fallback V) V {
	if !r.ok {
		return fallback
	}
	return r.value
}

// OrElse returns the receiver unchanged when it is Ok, otherwise the
// result of fn applied to the error value.
func (r Result[V, E]) OrElse(fn func(E) Result[V, E]) Result[V, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Map transforms the success value, passing an Err through unchanged.
func Map[V, W, E any](r Result[V, E], fn func(V) W) Result[W, E] {
	if !r.ok {
		return Err[W, E](r.err)
	}
	return Ok[W, E](fn(r.value))
}

// MapErr transforms the error value, passing an Ok through unchanged.
func MapErr[V, E, F any](r Result[V, E], fn func(E) F) Result[V, F] {
	if r.ok {
		return Ok[V, F](r.value)
	}
	return Err[V, F](fn(r.err))
}

// Then chains a result-producing transformation, flattening the output.
// fn runs only when the receiver is Ok.
func Then[V, W, E any](r Result[V, E], fn func(V) Result[W, E]) Result[W, E] {
	if !r.ok {
		return Err[W, E](r.err)
	}
	return fn(r.value)
}
