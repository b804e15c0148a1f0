package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/ytry/pkg/try"
)

func TestStartAndResult(t *testing.T) {
	t.Parallel()

	res := try.Succeed(5)
	c := Start[int](res)

	if out := c.Result(); !out.Equal(res) {
		t.Fatalf("expected %v, got %v", res, out)
	}
}

func TestStart_NilResultPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if _, ok := recover().(*try.ArgumentError); !ok {
			t.Fatalf("expected *try.ArgumentError panic")
		}
	}()
	Start[int](nil)
}

func TestFromValue(t *testing.T) {
	t.Parallel()

	v, err := FromValue(7).Value()
	if err != nil || v != 7 {
		t.Fatalf("expected 7, got: val=%v, err=%v", v, err)
	}
}

func TestThen_SuccessPath(t *testing.T) {
	t.Parallel()

	v, err := FromValue(3).
		Then(func(n int) try.Try { return try.Succeed(n * 2) }).
		Then(func(n int) try.Try { return try.Succeed(n + 1) }).
		Value()

	if err != nil || v != 7 {
		t.Fatalf("expected 7, got: val=%v, err=%v", v, err)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	called := false
	c := Start[int](try.Fail(boom)).Then(func(n int) try.Try {
		called = true
		return try.Succeed(n + 1)
	})

	if _, err := c.Value(); !errors.Is(err, boom) {
		t.Fatalf("expected failure 'boom', got %v", err)
	}
	if called {
		t.Fatalf("step should not be called when the chain already failed")
	}
}

func TestThen_KeepsSliceValues(t *testing.T) {
	t.Parallel()

	c := Then[int, []any](FromValue(2), func(n int) try.Try {
		return try.Succeed([]any{n, n})
	})

	v, err := c.Value()
	if err != nil || len(v) != 2 {
		t.Fatalf("expected a two element slice, got: val=%v, err=%v", v, err)
	}
}

func TestThen_StepFailureAndPanic(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failed := FromValue(1).Then(func(int) try.Try { return try.Fail(boom) })
	if _, err := failed.Value(); !errors.Is(err, boom) {
		t.Fatalf("expected 'boom', got %v", err)
	}

	panicked := FromValue(1).Then(func(int) try.Try { panic(boom) })
	if _, err := panicked.Value(); !errors.Is(err, boom) {
		t.Fatalf("expected captured panic 'boom', got %v", err)
	}
}

func TestThenTry_ChangesType(t *testing.T) {
	t.Parallel()

	v, err := ThenTry(FromValue("42"), strconv.Atoi).Value()
	if err != nil || v != 42 {
		t.Fatalf("expected 42, got: val=%v, err=%v", v, err)
	}

	_, err = ThenTry(FromValue("x"), strconv.Atoi).Value()
	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected *strconv.NumError, got %v", err)
	}
}

func TestThenTry_Method(t *testing.T) {
	t.Parallel()

	half := func(n int) (int, error) {
		if n%2 != 0 {
			return 0, errors.New("odd")
		}
		return n / 2, nil
	}

	if v, err := FromValue(8).ThenTry(half).ThenTry(half).Value(); err != nil || v != 2 {
		t.Fatalf("expected 2, got: val=%v, err=%v", v, err)
	}
	if _, err := FromValue(6).ThenTry(half).ThenTry(half).Value(); err == nil || err.Error() != "odd" {
		t.Fatalf("expected 'odd', got %v", err)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	if v, _ := FromValue(4).Map(func(n int) int { return n * n }).Value(); v != 16 {
		t.Fatalf("expected 16, got %v", v)
	}

	s, err := Map(FromValue(4), strconv.Itoa).Value()
	if err != nil || s != "4" {
		t.Fatalf("expected \"4\", got: val=%q, err=%v", s, err)
	}
}

func TestMap_WrongTypePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if _, ok := recover().(*try.TypeError); !ok {
			t.Fatalf("expected *try.TypeError panic")
		}
	}()
	Start[int](try.Succeed("five")).Map(func(n int) int { return n })
}

func TestTee(t *testing.T) {
	t.Parallel()

	var seen []int
	c := FromValue(1).
		Tee(func(n int) { seen = append(seen, n) }).
		Map(func(n int) int { return n + 1 }).
		Tee(func(n int) { seen = append(seen, n) })

	if v, _ := c.Value(); v != 2 {
		t.Fatalf("expected 2, got %v", v)
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("expected tee to observe [1 2], got %v", seen)
	}

	Start[int](try.Fail(errors.New("boom"))).Tee(func(n int) { seen = append(seen, n) })
	if len(seen) != 2 {
		t.Fatalf("tee should not run on failure, got %v", seen)
	}
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()

	var okCalls, errCalls int
	onOK := func(int) { okCalls++ }
	onErr := func(error) { errCalls++ }

	FromValue(1).DoubleTee(onOK, onErr)
	Start[int](try.Fail(errors.New("boom"))).DoubleTee(onOK, onErr)

	if okCalls != 1 || errCalls != 1 {
		t.Fatalf("expected one call per branch, got ok=%d err=%d", okCalls, errCalls)
	}
}

func TestDoubleMap(t *testing.T) {
	t.Parallel()

	annotate := func(err error) error { return errors.New("parse: " + err.Error()) }

	s, err := DoubleMap(FromValue(9), strconv.Itoa, annotate).Value()
	if err != nil || s != "9" {
		t.Fatalf("expected \"9\", got: val=%q, err=%v", s, err)
	}

	_, err = DoubleMap(Start[int](try.Fail(errors.New("boom"))), strconv.Itoa, annotate).Value()
	if err == nil || err.Error() != "parse: boom" {
		t.Fatalf("expected 'parse: boom', got %v", err)
	}
}

func TestOr(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	failA := Start[int](try.Fail(first))
	failB := Start[int](try.Fail(errors.New("second")))

	if v, err := failA.Or(failB, FromValue(3), FromValue(4)).Value(); err != nil || v != 3 {
		t.Fatalf("expected first success 3, got: val=%v, err=%v", v, err)
	}
	if v, _ := FromValue(1).Or(FromValue(2)).Value(); v != 1 {
		t.Fatalf("expected receiver to win, got %v", v)
	}
	if _, err := failA.Or(failB).Value(); !errors.Is(err, first) {
		t.Fatalf("expected first failure, got %v", err)
	}
}

func TestAnd(t *testing.T) {
	t.Parallel()

	second := errors.New("second")

	if v, err := FromValue(1).And(FromValue(2), FromValue(3)).Value(); err != nil || v != 3 {
		t.Fatalf("expected last success 3, got: val=%v, err=%v", v, err)
	}

	c := FromValue(1).And(Start[int](try.Fail(second)), Start[int](try.Fail(errors.New("third"))))
	if _, err := c.Value(); !errors.Is(err, second) {
		t.Fatalf("expected first failure 'second', got %v", err)
	}

	if v, _ := FromValue(5).And().Value(); v != 5 {
		t.Fatalf("expected receiver without requirements, got %v", v)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	onErr := func(error) int { return -1 }
	double := func(n int) int { return n * 2 }

	if out := FromValue(21).Finally(double, onErr); out != 42 {
		t.Fatalf("expected 42, got %d", out)
	}
	if out := Start[int](try.Fail(errors.New("boom"))).Finally(double, onErr); out != -1 {
		t.Fatalf("expected -1, got %d", out)
	}

	label := Finally(FromValue(3), strconv.Itoa, func(err error) string { return err.Error() })
	if label != "3" {
		t.Fatalf("expected \"3\", got %q", label)
	}
}

func TestChainIsImmutable(t *testing.T) {
	t.Parallel()

	base := FromValue(1)
	_ = base.Map(func(n int) int { return n + 100 })

	if v, _ := base.Value(); v != 1 {
		t.Fatalf("expected base chain to keep 1, got %v", v)
	}
}
