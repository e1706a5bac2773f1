// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"code.hybscloud.com/kont"
)

// exprReturnFrame is pre-allocated to avoid boxing an empty struct into
// kont.Frame on every fused constructor.
var exprReturnFrame kont.Frame = kont.ReturnFrame{}

// identityResume is the identity resume function for EffectFrame construction.
func identityResume(v kont.Erased) kont.Erased { return v }

// sentBindUnwind unboxes the resumption of a yield or delegation and
// continues with the bound function stored in data.
func sentBindUnwind[T, B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	f := data.(func(T) kont.Expr[B])
	s, _ := current.(sent[T])
	result := f(s.value)
	return kont.Erased(result.Value), result.Frame
}

func exprThen[B any](op kont.Operation, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

func exprBind[T, B any](op kont.Operation, f func(T) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = f
	bf.Unwind = sentBindUnwind[T, B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprYieldThen offers v and then continues with next.
// Fuses a yield EffectFrame + ThenFrame.
func ExprYieldThen[T, B any](v T, next kont.Expr[B]) kont.Expr[B] {
	return exprThen(yieldOp[T]{value: v}, next)
}

// ExprYieldBind offers v and passes the sent value to f.
// Fuses a yield EffectFrame + UnwindFrame.
func ExprYieldBind[T, B any](v T, f func(T) kont.Expr[B]) kont.Expr[B] {
	return exprBind(yieldOp[T]{value: v}, f)
}

// ExprDelegateBind delegates to src and passes its final value to f.
// Fuses a delegation EffectFrame + UnwindFrame.
func ExprDelegateBind[T, B any](src Source[T], f func(T) kont.Expr[B]) kont.Expr[B] {
	return exprBind(delegateOp[T]{src: src}, f)
}
