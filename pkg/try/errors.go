package try

import (
	"fmt"
	"runtime"
	"slices"
	"sync"

	"github.com/pkg/errors"
)

// ErrNotFound is the error of a Failure produced when a filter rejects the
// value or an empty sequence is converted.
var ErrNotFound = errors.New("element not found")

// TypeError reports a value of the wrong shape handed to the API, e.g. a
// recovery callback that does not evaluate to a Try.
type TypeError struct {
	Op  string
	Msg string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("try: %s: %s", e.Op, e.Msg)
}

// ArgumentError reports a missing argument, e.g. a nil callback.
type ArgumentError struct {
	Op  string
	Msg string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("try: %s: %s", e.Op, e.Msg)
}

// PanicError carries a recovered panic value that was not an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

func newPanicError(v any) *PanicError {
	stack := make([]byte, 4096)
	n := runtime.Stack(stack, false)
	return &PanicError{Value: v, Stack: stack[:n]}
}

func typeErrorf(op, format string, args ...any) *TypeError {
	return &TypeError{Op: op, Msg: fmt.Sprintf(format, args...)}
}

func requireCallback(present bool, op string) {
	if !present {
		panic(&ArgumentError{Op: op, Msg: "missing callback"})
	}
}

type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }

func (e *fatalError) Unwrap() error { return e.err }

// Fatal marks err as fatal: Wrap and the combinators re-panic it instead of
// turning it into a Failure.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err: err}
}

// FatalClassifier reports whether err must escape the capture boundary.
type FatalClassifier func(err error) bool

type registeredClassifier struct {
	id       uint64
	classify FatalClassifier
}

var (
	classifiersMu    sync.RWMutex
	classifiers      []registeredClassifier
	nextClassifierID uint64
)

// RegisterFatal adds a classifier consulted by IsFatal. The returned function
// removes it again; calling it more than once is harmless.
func RegisterFatal(c FatalClassifier) (unregister func()) {
	if c == nil {
		return func() {}
	}

	classifiersMu.Lock()
	nextClassifierID++
	id := nextClassifierID
	classifiers = append(classifiers, registeredClassifier{id: id, classify: c})
	classifiersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			classifiersMu.Lock()
			defer classifiersMu.Unlock()
			classifiers = slices.DeleteFunc(classifiers, func(r registeredClassifier) bool {
				return r.id == id
			})
		})
	}
}

// IsFatal reports whether err is never captured into a Failure: errors marked
// with Fatal, the package's own protocol errors, and anything a registered
// classifier claims.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var fe *fatalError
	var te *TypeError
	var ae *ArgumentError
	if errors.As(err, &fe) || errors.As(err, &te) || errors.As(err, &ae) {
		return true
	}

	classifiersMu.RLock()
	defer classifiersMu.RUnlock()
	for _, c := range classifiers {
		if c.classify(err) {
			return true
		}
	}
	return false
}
