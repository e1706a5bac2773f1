// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world generator body to Expr-world.
// The resulting Expr can be run with NewExpr.
func Reify[A any](m kont.Eff[A]) kont.Expr[A] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world generator body to Cont-world.
// The resulting Eff can be run with New or nested in Try and Finally.
func Reflect[A any](m kont.Expr[A]) kont.Eff[A] {
	return kont.Reflect(m)
}

// final boxes the result of a frame so that a nil interface result
// still completes with a non-nil erased value.
type final struct {
	value any
}

// erase converts a Cont-world computation into the form stepped by the engine.
func erase[A any](m kont.Eff[A]) kont.Expr[final] {
	return kont.Reify(kont.Map[kont.Resumed, A, final](m, func(a A) final {
		return final{value: a}
	}))
}

func eraseBind[A any](a kont.Erased) kont.Expr[kont.Erased] {
	v, _ := a.(A)
	return kont.Expr[kont.Erased]{Value: kont.Erased(final{value: v}), Frame: exprReturnFrame}
}

// eraseExpr converts an Expr-world computation into the form stepped by
// the engine. Pure computations are boxed directly.
func eraseExpr[A any](m kont.Expr[A]) kont.Expr[final] {
	if _, ok := m.Frame.(kont.ReturnFrame); ok {
		return kont.ExprReturn(final{value: m.Value})
	}
	bf := kont.AcquireBindFrame()
	bf.F = eraseBind[A]
	bf.Next = exprReturnFrame
	return kont.Expr[final]{
		Frame: kont.ChainFrames(m.Frame, bf),
	}
}
