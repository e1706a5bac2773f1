// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"code.hybscloud.com/kont"
)

func unwrap[T any](s sent[T]) kont.Eff[T] {
	return kont.Pure(s.value)
}

// Yield suspends the generator and offers v to the driver.
// The result is the value passed to the Next call that resumes it.
// v is fully evaluated before suspension; resuming never re-evaluates it.
func Yield[T any](v T) kont.Eff[T] {
	return kont.Bind(kont.Perform(yieldOp[T]{value: v}), unwrap[T])
}

// YieldThen offers v and then continues with next, discarding the sent value.
// Fuses Yield + Then.
func YieldThen[T, B any](v T, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(yieldOp[T]{value: v}), next)
}

// YieldBind offers v and passes the sent value to f.
// Fuses Yield + Bind.
func YieldBind[T, B any](v T, f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(yieldOp[T]{value: v}), func(s sent[T]) kont.Eff[B] {
		return f(s.value)
	})
}

// Delegate forwards the generator's suspension stream into src until src
// completes. Every driver call reaches src unchanged and every value src
// offers is relayed to the driver. The result is the final value of src.
func Delegate[T any](src Source[T]) kont.Eff[T] {
	return kont.Bind(kont.Perform(delegateOp[T]{src: src}), unwrap[T])
}

// DelegateThen delegates to src and then continues with next.
// Fuses Delegate + Then.
func DelegateThen[T, B any](src Source[T], next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(delegateOp[T]{src: src}), next)
}

// DelegateBind delegates to src and passes its final value to f.
// Fuses Delegate + Bind.
func DelegateBind[T, B any](src Source[T], f func(T) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(delegateOp[T]{src: src}), func(s sent[T]) kont.Eff[B] {
		return f(s.value)
	})
}

// Throw raises err from body logic. An enclosing Try recovers it;
// otherwise it completes the generator and is returned to the driver.
func Throw[A any](err error) kont.Eff[A] {
	return kont.Perform(raiseOp[A]{err: err})
}

// Return completes the generator with v from any depth of the body.
// Enclosing Finally regions still run.
func Return[A, T any](v T) kont.Eff[A] {
	return kont.Perform(exitOp[A, T]{value: v})
}

// Try runs body as a recovery region. An error injected at a suspension
// point inside body, or raised by it, continues with handle(err).
// Errors raised by handle itself propagate outward.
func Try[A any](body kont.Eff[A], handle func(error) kont.Eff[A]) kont.Eff[A] {
	return kont.Bind(kont.Perform(tryOp[A]{body: body, handle: handle}), unwrap[A])
}

// Finally runs body as a finalization region: cleanup runs after body
// completes, fails or is forced to return, and the outcome of body is
// restored afterwards. A cleanup that raises or returns overrides it.
func Finally[A any](body kont.Eff[A], cleanup kont.Eff[struct{}]) kont.Eff[A] {
	return kont.Bind(kont.Perform(finallyOp[A]{body: body, cleanup: cleanup}), unwrap[A])
}
