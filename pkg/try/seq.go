package try

import "iter"

// Values iterates over the sequence view of s.
func Values(s Seq) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, v := range s.ToSlice() {
			if !yield(v) {
				return
			}
		}
	}
}

// Count returns the length of the view: 1 for a Success, 0 for a Failure.
func Count(s Seq) int {
	return len(s.ToSlice())
}

func Contains(s Seq, v any) bool {
	for e := range Values(s) {
		if valuesEqual(e, v) {
			return true
		}
	}
	return false
}

func Exists(s Seq, p func(v any) bool) bool {
	requireCallback(p != nil, "Exists")
	for v := range Values(s) {
		if p(v) {
			return true
		}
	}
	return false
}

// ForAll is vacuously true for an empty view.
func ForAll(s Seq, p func(v any) bool) bool {
	requireCallback(p != nil, "ForAll")
	for v := range Values(s) {
		if !p(v) {
			return false
		}
	}
	return true
}

// Fold reduces the view starting from seed. For a Failure f is never called
// and seed is returned.
func Fold[A any](s Seq, seed A, f func(acc A, v any) A) A {
	requireCallback(f != nil, "Fold")
	acc := seed
	for v := range Values(s) {
		acc = f(acc, v)
	}
	return acc
}
