package try_test

import (
	"github.com/pkg/errors"
)

var (
	errBoom  = errors.New("boom")
	errOther = errors.New("other")
)

type matchingError struct{}

func (matchingError) Error() string { return "matching" }

type blockError struct{ msg string }

func (e *blockError) Error() string { return e.msg }

// panicked runs f and returns whatever it panicked with.
func panicked(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}

func inc(v any) any { return v.(int) + 1 }

func even(v any) bool { return v.(int)%2 == 0 }

func odd(v any) bool { return v.(int)%2 != 0 }

// flag counts invocations of the callbacks it hands out.
type flag struct{ calls int }

func (f *flag) toggle() { f.calls++ }
