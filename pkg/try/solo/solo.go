package solo

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/ib-77/ytry/pkg/try"
)

func cast[T any](op string, v any) T {
	out, err := convert[T](op, v)
	if err != nil {
		panic(err)
	}
	return out
}

func convert[T any](op string, v any) (T, error) {
	var zero T
	if v == nil {
		switch reflect.TypeFor[T]().Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return zero, nil
		}
	}
	out, ok := v.(T)
	if !ok {
		return zero, &try.TypeError{
			Op:  op,
			Msg: fmt.Sprintf("expected %s. Found %T", reflect.TypeFor[T](), v),
		}
	}
	return out, nil
}

// Value returns the typed value of a Success or the error of a Failure.
func Value[T any](t try.Try) (T, error) {
	v, err := t.Get()
	if err != nil {
		var zero T
		return zero, err
	}
	return convert[T]("Value", v)
}

// ValueOr returns the typed value of a Success, fallback otherwise.
func ValueOr[T any](t try.Try, fallback T) T {
	if t.IsFailure() {
		return fallback
	}
	return cast[T]("ValueOr", t.MustGet())
}

func Map[In, Out any](t try.Try, onSuccess func(in In) Out) try.Try {
	return t.Map(func(v any) any {
		return onSuccess(cast[In]("Map", v))
	})
}

func TryMap[In, Out any](t try.Try, onTryExecute func(in In) (Out, error)) try.Try {
	return t.TryMap(func(v any) (any, error) {
		out, err := onTryExecute(cast[In]("TryMap", v))
		if err != nil {
			return nil, err
		}
		return out, nil
	})
}

func FlatMap[In any](t try.Try, onSuccess func(in In) try.Try) try.Try {
	return t.FlatMap(func(v any) any {
		return onSuccess(cast[In]("FlatMap", v))
	})
}

// Validate fails a Success whose value does not pass validate, using errMsg as
// the error.
func Validate[T any](t try.Try, validate func(in T) (valid bool, errMsg string)) try.Try {
	return t.FlatMap(func(v any) any {
		if valid, errMsg := validate(cast[T]("Validate", v)); !valid {
			return try.Fail(errors.New(errMsg))
		}
		return try.Succeed(v)
	})
}

// ValidateAll runs every validator against a Success and fails with the
// combined errors. With breakOnError it stops at the first error.
func ValidateAll[T any](t try.Try, breakOnError bool, validators ...func(in T) error) try.Try {
	if t.IsFailure() || len(validators) == 0 {
		return t
	}

	in := cast[T]("ValidateAll", t.MustGet())
	var err error
	for _, validate := range validators {
		if e := validate(in); e != nil {
			err = multierr.Append(err, e)
			if breakOnError {
				break
			}
		}
	}

	if err != nil {
		return try.Fail(err)
	}
	return t
}

// Collect returns Success with the typed values of ts, or the first Failure.
func Collect[T any](ts ...try.Try) try.Try {
	return try.Zip(ts...).Map(func(v any) any {
		values := v.([]any)
		out := make([]T, 0, len(values))
		for _, e := range values {
			out = append(out, cast[T]("Collect", e))
		}
		return out
	})
}

// Tee runs onSuccess for its side effect and returns t unchanged.
func Tee[T any](t try.Try, onSuccess func(in T)) try.Try {
	return t.OnSuccess(func(v any) {
		onSuccess(cast[T]("Tee", v))
	})
}

func DoubleTee[T any](t try.Try, onSuccess func(in T), onFailure func(err error)) try.Try {
	return Tee(t, onSuccess).OnFailure(onFailure)
}

// DoubleMap maps the value of a Success with onSuccess and the error of a
// Failure with onFailure. A nil error from onFailure keeps the original one.
func DoubleMap[In, Out any](t try.Try,
	onSuccess func(in In) Out,
	onFailure func(err error) error) try.Try {

	if err := t.Err(); err != nil {
		if mapped := onFailure(err); mapped != nil {
			return try.Fail(mapped)
		}
		return t
	}
	return Map(t, onSuccess)
}

func Finally[T, Out any](t try.Try,
	onSuccess func(r T) Out,
	onFailure func(err error) Out) Out {

	v, err := t.Get()
	if err != nil {
		return onFailure(err)
	}
	return onSuccess(cast[T]("Finally", v))
}
