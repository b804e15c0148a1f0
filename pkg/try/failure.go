package try

import "fmt"

// Failure is an aborted computation holding the error that stopped it.
type Failure struct {
	meta
	err error
}

func (f Failure) sealed() {}

func (f Failure) ToSlice() []any {
	return nil
}

func (f Failure) Get() (any, error) {
	return nil, f.err
}

// MustGet panics with the stored error.
func (f Failure) MustGet() any {
	panic(f.err)
}

func (f Failure) Err() error {
	return f.err
}

func (f Failure) IsEmpty() bool {
	return true
}

func (f Failure) IsSuccess() bool {
	return false
}

func (f Failure) IsFailure() bool {
	return true
}

func (f Failure) Map(fn func(v any) any) Try {
	requireCallback(fn != nil, "Map")
	return f
}

func (f Failure) TryMap(fn func(v any) (any, error)) Try {
	requireCallback(fn != nil, "TryMap")
	return f
}

func (f Failure) FlatMap(fn func(v any) any) Try {
	requireCallback(fn != nil, "FlatMap")
	return f
}

func (f Failure) Select(p func(v any) bool) Try {
	requireCallback(p != nil, "Select")
	return f
}

func (f Failure) Reject(p func(v any) bool) Try {
	requireCallback(p != nil, "Reject")
	return f
}

func (f Failure) Flatten() Try {
	return f
}

func (f Failure) FlattenDepth(int) Try {
	return f
}

func (f Failure) Grep(any, func(v any) any) Try {
	return f
}

func (f Failure) Zip(...Try) Try {
	return f
}

// OrElse returns the Try produced by fn. Anything else panics with *TypeError.
func (f Failure) OrElse(fn func() any) Try {
	requireCallback(fn != nil, "OrElse")
	other := fn()
	t, ok := other.(Try)
	if !ok {
		panic(typeErrorf("OrElse", "callback should evaluate to a Try. Found %T", other))
	}
	return t
}

func (f Failure) GetOrElse(fn func() any) any {
	requireCallback(fn != nil, "GetOrElse")
	return fn()
}

// Recover applies fn to the error. A nil outcome means no rule matched and
// keeps the receiver; a panic inside fn replaces the error.
func (f Failure) Recover(fn func(err error) any) Try {
	requireCallback(fn != nil, "Recover")
	candidate := capture(func() (any, error) { return fn(f.err), nil })
	if v, err := candidate.Get(); err == nil && IsNil(v) {
		return f
	}
	return candidate
}

// RecoverWith is Recover for callbacks producing a Try, which is returned
// as is rather than nested in a Success.
func (f Failure) RecoverWith(fn func(err error) any) Try {
	requireCallback(fn != nil, "RecoverWith")
	candidate := capture(func() (any, error) { return fn(f.err), nil })
	v, err := candidate.Get()
	if err != nil {
		return candidate
	}
	if IsNil(v) {
		return f
	}
	if _, ok := v.(Try); !ok {
		panic(typeErrorf("RecoverWith", "callback should evaluate to a Try. Found %T", v))
	}
	return candidate.Flatten()
}

func (f Failure) Each(fn func(v any)) Try {
	requireCallback(fn != nil, "Each")
	return f
}

func (f Failure) OnSuccess(fn func(v any)) Try {
	requireCallback(fn != nil, "OnSuccess")
	return f
}

// OnFailure calls fn with the error. A failing fn is logged and ignored.
func (f Failure) OnFailure(fn func(err error)) Try {
	requireCallback(fn != nil, "OnFailure")
	swallowed("OnFailure", f, capture(func() (any, error) {
		fn(f.err)
		return nil, nil
	}))
	return f
}

func (f Failure) Equal(other Try) bool {
	o, ok := other.(Failure)
	return ok && valuesEqual(f.err, o.err)
}

// Matches reports whether other is a Failure whose error matches the
// receiver's error used as a pattern, so Fail(Kind[*MyErr]()) or
// Fail(ErrNotFound) can classify failures.
func (f Failure) Matches(other Try) bool {
	o, ok := other.(Failure)
	return ok && match(f.err, o.err)
}

func (f Failure) String() string {
	return fmt.Sprintf("Failure(%v)", f.err)
}
