// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/gen"
	"code.hybscloud.com/kont"
)

func TestNextInfiniteCounter(t *testing.T) {
	g := counter()
	for want := 0; want < 6; want++ {
		if r := next(t, g, 0); r.Value != want {
			t.Fatalf("step %d got %d", want, r.Value)
		}
	}
	expect(t, next(t, g, 0), 6, false)
}

func TestNextOrderThenAbsent(t *testing.T) {
	g := oneTwoThree()
	expect(t, next(t, g, 0), 1, false)
	expect(t, next(t, g, 0), 2, false)
	expect(t, next(t, g, 0), 3, false)
	expect(t, next(t, g, 0), 0, true)
	expect(t, next(t, g, 0), 0, true)
}

func TestNextAbsentIsNilForAny(t *testing.T) {
	g := gen.New(func() kont.Eff[any] {
		return gen.YieldThen(1, absent())
	})
	expect[any](t, next(t, g, nil), 1, false)
	expect[any](t, next(t, g, nil), nil, true)
}

func TestThrowWithoutRecovery(t *testing.T) {
	g := gen.New(func() kont.Eff[int] {
		return gen.YieldThen(1, gen.YieldThen(2, kont.Pure(0)))
	})
	oops := errors.New("oops")

	expect(t, next(t, g, 0), 1, false)
	r, err := g.Throw(oops)
	if err != oops {
		t.Fatalf("Throw got %v, want %v", err, oops)
	}
	if !r.Done {
		t.Fatal("expected Done after unrecovered Throw")
	}
	if g.State() != gen.Completed {
		t.Fatalf("state got %v, want %v", g.State(), gen.Completed)
	}
	expect(t, next(t, g, 0), 0, true)
}

func TestReturnShortCircuits(t *testing.T) {
	g := oneTwoThree()
	expect(t, next(t, g, 0), 1, false)

	r, err := g.Return(8)
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	expect(t, r, 8, true)
	expect(t, next(t, g, 0), 0, true)
}

func TestReturnStatementEndsBody(t *testing.T) {
	reached := false
	g := gen.New(func() kont.Eff[int] {
		return gen.YieldThen(1, kont.Then(gen.Return[struct{}](2),
			kont.Then(do(func() { reached = true }), gen.YieldThen(3, kont.Pure(0))),
		))
	})

	expect(t, next(t, g, 0), 1, false)
	expect(t, next(t, g, 0), 2, true)
	expect(t, next(t, g, 0), 0, true)
	if reached {
		t.Fatal("body continued past Return")
	}
}

func TestNextSubstitutesSentValue(t *testing.T) {
	g := gen.New(func() kont.Eff[string] {
		str := "foo"
		return gen.YieldBind(str, func(a string) kont.Eff[string] {
			str += a
			return gen.YieldBind(str, func(b string) kont.Eff[string] {
				str += b
				return gen.YieldBind(str, func(c string) kont.Eff[string] {
					return gen.YieldThen(str+c, kont.Pure(""))
				})
			})
		})
	})

	expect(t, next(t, g, ""), "foo", false)
	expect(t, next(t, g, "bar"), "foobar", false)
	expect(t, next(t, g, "baz"), "foobarbaz", false)
	expect(t, next(t, g, "yui"), "foobarbazyui", false)
}

func TestNextFirstValueIgnored(t *testing.T) {
	g := adder()
	expect[any](t, next(t, g, 3), 1, false)
	for _, want := range []int{2, 3, 4, 5} {
		expect[any](t, next(t, g, nil), want, false)
	}
}

func TestNextAppliesValueNextTime(t *testing.T) {
	g := adder()
	expect[any](t, next(t, g, nil), 1, false)
	expect[any](t, next(t, g, 4), 5, false)
	expect[any](t, next(t, g, nil), 9, false)
	expect[any](t, next(t, g, 2), 11, false)
}

func TestOfferedValueNotReevaluated(t *testing.T) {
	evaluations := 0
	g := gen.New(func() kont.Eff[int] {
		x := 1
		return gen.Loop(0, func(n int) kont.Eff[kont.Either[int, int]] {
			if n == 3 {
				return kont.Pure(kont.Right[int, int](x))
			}
			evaluations++
			return gen.YieldBind(x+10, func(v int) kont.Eff[kont.Either[int, int]] {
				x = v
				return kont.Pure(kont.Left[int, int](n + 1))
			})
		})
	})

	expect(t, next(t, g, 0), 11, false)
	expect(t, next(t, g, 5), 15, false)
	expect(t, next(t, g, 7), 17, false)
	expect(t, next(t, g, 9), 9, true)
	if evaluations != 3 {
		t.Fatalf("offered expression evaluated %d times, want 3", evaluations)
	}
}

func TestReturnBeforeStart(t *testing.T) {
	started := false
	g := gen.New(func() kont.Eff[int] {
		started = true
		return gen.YieldThen(1, kont.Pure(0))
	})

	r, err := g.Return(4)
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	expect(t, r, 4, true)
	if started {
		t.Fatal("body ran on Return before start")
	}
	expect(t, next(t, g, 0), 0, true)
}

func TestReturnAfterCompletion(t *testing.T) {
	g := oneTwoThree()
	collect(t, g)
	r, err := g.Return(5)
	if err != nil {
		t.Fatalf("Return: %v", err)
	}
	expect(t, r, 5, true)
	expect(t, next(t, g, 0), 0, true)
}

func TestThrowBeforeStart(t *testing.T) {
	started := false
	g := gen.New(func() kont.Eff[int] {
		started = true
		return gen.Try(gen.YieldThen(1, kont.Pure(0)), func(error) kont.Eff[int] {
			return kont.Pure(-1)
		})
	})
	boom := errors.New("boom")

	r, err := g.Throw(boom)
	if err != boom {
		t.Fatalf("Throw got %v, want %v", err, boom)
	}
	expect(t, r, 0, true)
	if started {
		t.Fatal("body ran on Throw before start")
	}
	if !g.Done() {
		t.Fatal("expected generator completed")
	}
}

func TestThrowAfterCompletion(t *testing.T) {
	g := oneTwoThree()
	collect(t, g)
	boom := errors.New("boom")
	r, err := g.Throw(boom)
	if err != boom {
		t.Fatalf("Throw got %v, want %v", err, boom)
	}
	expect(t, r, 0, true)
}

func TestBodyThrowSurfacesOnNext(t *testing.T) {
	bad := errors.New("bad input")
	g := gen.New(func() kont.Eff[int] {
		return gen.YieldBind(1, func(v int) kont.Eff[int] {
			if v < 0 {
				return gen.Throw[int](bad)
			}
			return kont.Pure(v)
		})
	})

	expect(t, next(t, g, 0), 1, false)
	_, err := g.Next(-1)
	if !errors.Is(err, bad) {
		t.Fatalf("Next got %v, want %v", err, bad)
	}
	expect(t, next(t, g, 0), 0, true)
}

func TestStateTransitions(t *testing.T) {
	g := gen.New(func() kont.Eff[int] {
		return gen.YieldThen(1, kont.Pure(2))
	})
	if g.State() != gen.SuspendedStart {
		t.Fatalf("state got %v, want %v", g.State(), gen.SuspendedStart)
	}
	next(t, g, 0)
	if g.State() != gen.SuspendedYield {
		t.Fatalf("state got %v, want %v", g.State(), gen.SuspendedYield)
	}
	next(t, g, 0)
	if g.State() != gen.Completed {
		t.Fatalf("state got %v, want %v", g.State(), gen.Completed)
	}
}
