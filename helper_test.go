// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen_test

import (
	"testing"

	"code.hybscloud.com/gen"
	"code.hybscloud.com/kont"
)

// next resumes g with v and fails the test on error.
func next[T any](tb testing.TB, g *gen.Generator[T], v T) gen.Result[T] {
	tb.Helper()
	r, err := g.Next(v)
	if err != nil {
		tb.Fatalf("Next(%v): %v", v, err)
	}
	return r
}

// expect fails the test unless r is {value, done}.
func expect[T comparable](tb testing.TB, r gen.Result[T], value T, done bool) {
	tb.Helper()
	if r.Value != value || r.Done != done {
		tb.Fatalf("got {%v %v}, want {%v %v}", r.Value, r.Done, value, done)
	}
}

// collect drives g with the absent value until it completes and returns
// the offered values and the final record.
func collect[T any](tb testing.TB, g *gen.Generator[T]) ([]T, gen.Result[T]) {
	tb.Helper()
	var zero T
	var out []T
	for {
		r := next(tb, g, zero)
		if r.Done {
			return out, r
		}
		out = append(out, r.Value)
	}
}

// absent completes a Generator[any] body without a result.
func absent() kont.Eff[any] {
	var v any
	return kont.Pure(v)
}

// do runs f when the computation is evaluated, not when it is built.
func do(f func()) kont.Eff[struct{}] {
	return kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[struct{}] {
		f()
		return kont.Pure(struct{}{})
	})
}

// oneTwoThree yields 1, 2, 3 and completes without a result.
func oneTwoThree() *gen.Generator[int] {
	return gen.New(func() kont.Eff[int] {
		return gen.YieldThen(1, gen.YieldThen(2, gen.YieldThen(3, kont.Pure(0))))
	})
}

// counter yields 0, 1, 2, ... forever.
func counter() *gen.Generator[int] {
	return gen.New(func() kont.Eff[int] {
		return gen.Loop(0, func(i int) kont.Eff[kont.Either[int, int]] {
			return gen.YieldThen(i, kont.Pure(kont.Left[int, int](i+1)))
		})
	})
}

// adder yields a running total, adding the last number sent to it
// (initially 1) on every step.
func adder() *gen.Generator[any] {
	return gen.New(func() kont.Eff[any] {
		i, numToAdd := 0, 1
		return gen.Loop(struct{}{}, func(struct{}) kont.Eff[kont.Either[struct{}, any]] {
			i += numToAdd
			return gen.YieldBind[any](i, func(v any) kont.Eff[kont.Either[struct{}, any]] {
				if n, ok := v.(int); ok {
					numToAdd = n
				}
				return kont.Pure(kont.Left[struct{}, any](struct{}{}))
			})
		})
	})
}

// returning yields each element of items and completes with result.
func returning(result int, items ...int) *gen.Generator[int] {
	return gen.New(func() kont.Eff[int] {
		return gen.DelegateThen(gen.Values(items...), kont.Pure(result))
	})
}
