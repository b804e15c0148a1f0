package chain

import (
	"github.com/ib-77/ytry/pkg/try"
	"github.com/ib-77/ytry/pkg/try/solo"
)

// Chain carries a try.Try whose success value is expected to be a T.
type Chain[T any] struct {
	res try.Try
}

// Start creates a chain from an existing outcome.
func Start[T any](res try.Try) Chain[T] {
	if res == nil {
		panic(&try.ArgumentError{Op: "chain.Start", Msg: "missing result"})
	}
	return Chain[T]{res: res}
}

// FromValue creates a chain from a successful value.
func FromValue[T any](v T) Chain[T] {
	return Start[T](try.Succeed(v))
}

func (c Chain[T]) Result() try.Try {
	return c.res
}

// Value returns the typed value or the error of the chain.
func (c Chain[T]) Value() (T, error) {
	return solo.Value[T](c.res)
}

// Then composes functions that already return a try.Try.
func (c Chain[T]) Then(onSuccess func(v T) try.Try) Chain[T] {
	return Then[T, T](c, onSuccess)
}

// ThenTry composes functions that return (T, error), like repository calls.
func (c Chain[T]) ThenTry(onSuccess func(v T) (T, error)) Chain[T] {
	return ThenTry[T, T](c, onSuccess)
}

func (c Chain[T]) Map(onSuccess func(v T) T) Chain[T] {
	return Map[T, T](c, onSuccess)
}

// Tee runs onSuccess for its side effect and keeps the outcome.
func (c Chain[T]) Tee(onSuccess func(v T)) Chain[T] {
	return Chain[T]{res: solo.Tee(c.res, onSuccess)}
}

func (c Chain[T]) DoubleTee(onSuccess func(v T), onFailure func(err error)) Chain[T] {
	return Chain[T]{res: solo.DoubleTee(c.res, onSuccess, onFailure)}
}

// Or returns the first successful chain among c and alternatives, or the
// first failure when none succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required, or the last one
// when all of them succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain to a final value, delegating to solo.Finally.
func (c Chain[T]) Finally(onSuccess func(v T) T, onFailure func(err error) T) T {
	return Finally(c, onSuccess, onFailure)
}

// Then chains a function that returns a try.Try holding a U. The returned
// outcome replaces the current one as is, without flattening its value.
func Then[T, U any](c Chain[T], onSuccess func(v T) try.Try) Chain[U] {
	return Chain[U]{res: solo.TryMap(c.res, func(v T) (any, error) {
		next := onSuccess(v)
		if next == nil {
			panic(&try.ArgumentError{Op: "chain.Then", Msg: "step returned no result"})
		}
		return next.Get()
	})}
}

// ThenTry chains a function that returns (U, error).
func ThenTry[T, U any](c Chain[T], onSuccess func(v T) (U, error)) Chain[U] {
	return Chain[U]{res: solo.TryMap(c.res, onSuccess)}
}

// Map chains a pure transformation.
func Map[T, U any](c Chain[T], onSuccess func(v T) U) Chain[U] {
	return Chain[U]{res: solo.Map(c.res, onSuccess)}
}

func DoubleMap[T, U any](c Chain[T], onSuccess func(v T) U, onFailure func(err error) error) Chain[U] {
	return Chain[U]{res: solo.DoubleMap(c.res, onSuccess, onFailure)}
}

func Finally[T, U any](c Chain[T], onSuccess func(v T) U, onFailure func(err error) U) U {
	return solo.Finally(c.res, onSuccess, onFailure)
}
