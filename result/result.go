/*
Package result implements the outcome of a computation that may fail.

A Result either holds a value (Ok) or an error (Err). It bridges Go's
(value, error) convention and pattern matching:

    r := result.Of(strconv.Atoi(s))
    switch m := r.Match(); m {
    case m.Ok(&n):
        …
    case m.Err(&err):
        …
    }

*/
package result

// Result is the outcome of a computation producing a value of type T, or failing.
type Result[T any] interface {
	Match() Matcher[T]
	Unwrap() (T, error)
	IsOk() bool
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successfully computed value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. err should not be nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of lifts a Go-style (value, error) pair into a Result. If err is non-nil, x is dropped.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return &matcher[T]{r: r}
}

// Unwrap returns the (value, error) pair r has been constructed from.
func (r result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

func (r result[T]) IsOk() bool {
	return r.err == nil
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// AndThen chains a computation which may fail onto r. Errors are passed through.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	v, err := r.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return f(v)
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Result.Match. Exactly one of its methods returns the
// matcher itself, the other one returns nil.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm *matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm *matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
