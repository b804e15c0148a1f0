package try

// Seq is implemented by values exposing a view of zero or one elements.
// A Try is a Seq: Success views its value, Failure views nothing.
type Seq interface {
	ToSlice() []any
}

// isSeq reports whether v can be converted by ToTry: a Try, a Seq or a []any.
// Nothing else counts, in particular not typed slices such as []int or []byte.
func isSeq(v any) bool {
	switch v.(type) {
	case Seq, []any:
		return true
	default:
		return false
	}
}

// ToTry normalizes a sequence-like value into a Try. A Try is returned
// unchanged, an empty view becomes Failure(ErrNotFound) and a non-empty one a
// Success of its first element. Any other value panics with *TypeError.
func ToTry(v any) Try {
	var view []any
	switch s := v.(type) {
	case Try:
		return s
	case Seq:
		view = s.ToSlice()
	case []any:
		view = s
	default:
		panic(typeErrorf("ToTry", "argument must expose a sequence view. Found %T", v))
	}

	if len(view) == 0 {
		return Fail(ErrNotFound)
	}
	return Succeed(view[0])
}
