package try

import (
	"cmp"
	"reflect"
	"regexp"

	"github.com/pkg/errors"
)

// Pattern is a value with its own matching semantics, used by Grep and
// Matches.
type Pattern interface {
	Match(v any) bool
}

// Equaler lets a payload define its own structural equality.
type Equaler interface {
	Equal(other any) bool
}

// PatternFunc adapts a predicate to Pattern.
type PatternFunc func(v any) bool

func (f PatternFunc) Match(v any) bool {
	return f(v)
}

// Pred builds a Pattern from a typed predicate. Values of another type never
// match.
func Pred[T any](p func(T) bool) Pattern {
	return PatternFunc(func(v any) bool {
		t, ok := v.(T)
		return ok && p(t)
	})
}

// Range matches values of type T within [lo, hi].
func Range[T cmp.Ordered](lo, hi T) Pattern {
	return PatternFunc(func(v any) bool {
		t, ok := v.(T)
		return ok && cmp.Compare(lo, t) <= 0 && cmp.Compare(t, hi) <= 0
	})
}

// Kind is an error standing for every error of type E. Fail(Kind[E]()).Matches(t)
// holds for any Failure t whose error chain contains an E.
func Kind[E error]() error {
	return kind[E]{}
}

type kind[E error] struct{}

func (kind[E]) Error() string {
	return "kind " + reflect.TypeOf((*E)(nil)).Elem().String()
}

func (kind[E]) Match(v any) bool {
	err, ok := v.(error)
	if !ok {
		return false
	}
	var target E
	return errors.As(err, &target)
}

// match is the pattern equality behind Grep and Matches.
func match(pattern, v any) bool {
	switch p := pattern.(type) {
	case nil:
		return v == nil
	case Pattern:
		return p.Match(v)
	case Try:
		t, ok := v.(Try)
		return ok && p.Matches(t)
	case func(any) bool:
		return p(v)
	case *regexp.Regexp:
		s, ok := v.(string)
		return ok && p.MatchString(s)
	case error:
		err, ok := v.(error)
		return ok && (errors.Is(err, p) || valuesEqual(p, err))
	default:
		return valuesEqual(p, v)
	}
}
