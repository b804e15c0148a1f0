package try

import (
	"time"

	"github.com/google/uuid"
)

// Try is the outcome of a fallible computation: exactly one of Success or
// Failure. Every combinator returns a new Try, or the receiver when there is
// nothing to compute.
type Try interface {
	Seq

	// Get returns the value of a Success, or the error of a Failure.
	Get() (any, error)
	// MustGet returns the value of a Success and panics with the error of a Failure.
	MustGet() any
	// Err returns the error of a Failure, nil for a Success.
	Err() error
	// IsEmpty reports whether the sequence view is empty, i.e. the Try is a Failure.
	IsEmpty() bool
	IsSuccess() bool
	IsFailure() bool
	// ID identifies this instance; it never takes part in equality.
	ID() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time

	Map(f func(v any) any) Try
	TryMap(f func(v any) (any, error)) Try
	FlatMap(f func(v any) any) Try
	Select(p func(v any) bool) Try
	Reject(p func(v any) bool) Try
	Flatten() Try
	FlattenDepth(levels int) Try
	Grep(pattern any, f func(v any) any) Try
	Zip(others ...Try) Try

	OrElse(f func() any) Try
	GetOrElse(f func() any) any
	Recover(f func(err error) any) Try
	RecoverWith(f func(err error) any) Try

	Each(f func(v any)) Try
	OnSuccess(f func(v any)) Try
	OnFailure(f func(err error)) Try

	Equal(other Try) bool
	Matches(other Try) bool
	String() string

	sealed()
}

type meta struct {
	id        uuid.UUID
	createdAt time.Time
}

func newMeta() meta {
	return meta{id: uuid.New(), createdAt: time.Now().UTC()}
}

func (m meta) ID() uuid.UUID {
	return m.id
}

func (m meta) CreatedAt() time.Time {
	return m.createdAt
}

// Succeed returns a Success holding v.
func Succeed(v any) Success {
	return Success{meta: newMeta(), value: v}
}

// Fail returns a Failure holding err. A nil err is a programming mistake and
// panics with *ArgumentError.
func Fail(err error) Failure {
	if IsNil(err) {
		panic(&ArgumentError{Op: "Fail", Msg: "missing error"})
	}
	return Failure{meta: newMeta(), err: err}
}

// Wrap runs fn once and returns Success with its return value, or Failure if
// fn panics with a recoverable value. Fatal panics are re-raised.
func Wrap(fn func() any) Try {
	requireCallback(fn != nil, "Wrap")
	return capture(func() (any, error) { return fn(), nil })
}

// WrapErr is Wrap for computations reporting failure through their error
// result. A fatal returned error is raised as a panic.
func WrapErr(fn func() (any, error)) Try {
	requireCallback(fn != nil, "WrapErr")
	return capture(fn)
}

// Of turns a (value, error) pair into a Try.
func Of(v any, err error) Try {
	return capture(func() (any, error) { return v, err })
}

func capture(fn func() (any, error)) (result Try) {
	completed := false
	defer func() {
		if completed {
			return
		}
		r := recover()
		if r == nil {
			// runtime.Goexit: let it unwind.
			return
		}
		err, ok := r.(error)
		if !ok || IsNil(err) {
			err = newPanicError(r)
		}
		if IsFatal(err) {
			panic(r)
		}
		result = Fail(err)
	}()

	v, err := fn()
	completed = true
	if !IsNil(err) {
		if IsFatal(err) {
			panic(err)
		}
		return Fail(err)
	}
	return Succeed(v)
}
