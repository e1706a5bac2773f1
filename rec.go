// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"code.hybscloud.com/kont"
)

// Loop runs an unbounded generator body (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// Iterations that yield are resumed lazily, so an infinite Loop only
// advances as far as the driver asks.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(step(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if next, ok := e.GetLeft(); ok {
			return Loop(next, step)
		}
		result, _ := e.GetRight()
		return kont.Pure(result)
	})
}

// ExprLoop runs an unbounded generator body (Expr-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// Pure iterations are unrolled eagerly; an iteration that suspends is
// chained with a BindFrame that re-enters the loop on resumption.
func ExprLoop[S, A any](initial S, step func(S) kont.Expr[kont.Either[S, A]]) kont.Expr[A] {
	state := initial
	for {
		m := step(state)
		if _, ok := m.Frame.(kont.ReturnFrame); !ok {
			bf := kont.AcquireBindFrame()
			bf.F = func(a kont.Erased) kont.Expr[kont.Erased] {
				e := a.(kont.Either[S, A])
				if next, ok := e.GetLeft(); ok {
					result := ExprLoop(next, step)
					return kont.Expr[kont.Erased]{Value: kont.Erased(result.Value), Frame: result.Frame}
				}
				result, _ := e.GetRight()
				return kont.Expr[kont.Erased]{Value: kont.Erased(result), Frame: exprReturnFrame}
			}
			bf.Next = exprReturnFrame
			var zero A
			return kont.Expr[A]{
				Value: zero,
				Frame: kont.ChainFrames(m.Frame, bf),
			}
		}
		next, ok := m.Value.GetLeft()
		if !ok {
			result, _ := m.Value.GetRight()
			return kont.ExprReturn(result)
		}
		state = next
	}
}
