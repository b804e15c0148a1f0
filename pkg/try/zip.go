package try

import "go.uber.org/multierr"

// Zip returns Success with the values of ts in order, or the first Failure
// among them.
func Zip(ts ...Try) Try {
	values := make([]any, 0, len(ts))
	for _, t := range ts {
		if t == nil {
			panic(&ArgumentError{Op: "Zip", Msg: "nil Try"})
		}
		v, err := t.Get()
		if err != nil {
			return t
		}
		values = append(values, v)
	}
	return Succeed(values)
}

// ZipAll is Zip reporting every failure: the errors of all Failures are
// combined into one (see Errors).
func ZipAll(ts ...Try) Try {
	values := make([]any, 0, len(ts))
	var errs error
	for _, t := range ts {
		if t == nil {
			panic(&ArgumentError{Op: "ZipAll", Msg: "nil Try"})
		}
		v, err := t.Get()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		values = append(values, v)
	}
	if errs != nil {
		return Fail(errs)
	}
	return Succeed(values)
}
