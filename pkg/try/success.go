package try

import "fmt"

// Success is a completed computation holding a value.
type Success struct {
	meta
	value any
}

func (s Success) sealed() {}

func (s Success) ToSlice() []any {
	return []any{s.value}
}

func (s Success) Get() (any, error) {
	return s.value, nil
}

func (s Success) MustGet() any {
	return s.value
}

func (s Success) Err() error {
	return nil
}

func (s Success) IsEmpty() bool {
	return false
}

func (s Success) IsSuccess() bool {
	return true
}

func (s Success) IsFailure() bool {
	return false
}

// Map returns Success(f(value)), or a Failure if f panics.
func (s Success) Map(f func(v any) any) Try {
	requireCallback(f != nil, "Map")
	return capture(func() (any, error) { return f(s.value), nil })
}

// TryMap is Map for functions returning an error.
func (s Success) TryMap(f func(v any) (any, error)) Try {
	requireCallback(f != nil, "TryMap")
	return capture(func() (any, error) { return f(s.value) })
}

// FlatMap runs f on the value. When f returns something sequence-like (a Try,
// a Seq or a []any) it is flattened one level and normalized; any other return
// value is kept as Success.
func (s Success) FlatMap(f func(v any) any) Try {
	requireCallback(f != nil, "FlatMap")
	wrapped := capture(func() (any, error) { return f(s.value), nil })
	if v, err := wrapped.Get(); err == nil && !isSeq(v) {
		return wrapped
	}
	return ToTry(wrapped.Flatten())
}

func (s Success) Select(p func(v any) bool) Try {
	requireCallback(p != nil, "Select")
	return s.filter(p, true)
}

func (s Success) Reject(p func(v any) bool) Try {
	requireCallback(p != nil, "Reject")
	return s.filter(p, false)
}

func (s Success) filter(p func(v any) bool, keep bool) Try {
	verdict := capture(func() (any, error) { return p(s.value), nil })
	v, err := verdict.Get()
	if err != nil {
		return verdict
	}
	if v.(bool) == keep {
		return s
	}
	return Fail(ErrNotFound)
}

func (s Success) Flatten() Try {
	return s.FlattenDepth(1)
}

// FlattenDepth unwraps up to levels nested Trys, stopping early at a Failure.
// A non-positive levels returns the receiver. A payload that is not
// sequence-like panics with *TypeError.
func (s Success) FlattenDepth(levels int) Try {
	var current Try = s
	for range levels {
		v, err := current.Get()
		if err != nil {
			return current
		}
		current = ToTry(v)
	}
	return current
}

// Grep keeps the value when pattern matches it (see Matches for the pattern
// forms), then maps it with f if f is not nil.
func (s Success) Grep(pattern any, f func(v any) any) Try {
	verdict := capture(func() (any, error) { return match(pattern, s.value), nil })
	v, err := verdict.Get()
	if err != nil {
		return verdict
	}

	var candidate Try = s
	if !v.(bool) {
		candidate = Fail(ErrNotFound)
	}
	if f == nil {
		return candidate
	}
	return candidate.Map(f)
}

func (s Success) Zip(others ...Try) Try {
	return Zip(append([]Try{s}, others...)...)
}

func (s Success) OrElse(f func() any) Try {
	requireCallback(f != nil, "OrElse")
	return s
}

func (s Success) GetOrElse(f func() any) any {
	requireCallback(f != nil, "GetOrElse")
	return s.value
}

func (s Success) Recover(f func(err error) any) Try {
	requireCallback(f != nil, "Recover")
	return s
}

func (s Success) RecoverWith(f func(err error) any) Try {
	requireCallback(f != nil, "RecoverWith")
	return s
}

// Each calls f with the value. A failing f is logged and ignored.
func (s Success) Each(f func(v any)) Try {
	requireCallback(f != nil, "Each")
	swallowed("Each", s, capture(func() (any, error) {
		f(s.value)
		return nil, nil
	}))
	return s
}

func (s Success) OnSuccess(f func(v any)) Try {
	requireCallback(f != nil, "OnSuccess")
	swallowed("OnSuccess", s, capture(func() (any, error) {
		f(s.value)
		return nil, nil
	}))
	return s
}

func (s Success) OnFailure(f func(err error)) Try {
	requireCallback(f != nil, "OnFailure")
	return s
}

func (s Success) Equal(other Try) bool {
	o, ok := other.(Success)
	return ok && valuesEqual(s.value, o.value)
}

// Matches reports whether other is a Success whose value matches the
// receiver's value used as a pattern.
func (s Success) Matches(other Try) bool {
	o, ok := other.(Success)
	return ok && match(s.value, o.value)
}

func (s Success) String() string {
	return fmt.Sprintf("Success(%v)", s.value)
}
