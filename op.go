// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"code.hybscloud.com/kont"
)

// sent carries the value delivered back to a suspension point.
// Boxed as a struct so that a nil interface value still resumes
// with a non-nil kont.Resumed.
type sent[T any] struct {
	value T
}

// box converts a driver-supplied value into the resumption expected by
// a suspension point of type T. A missing or mismatched value is absent.
func box[T any](v any) kont.Resumed {
	t, _ := v.(T)
	return sent[T]{value: t}
}

// resumer is implemented by every operation a frame can stay suspended on.
type resumer interface {
	resumeWith(v any) kont.Resumed
}

// offering is the structural interface of a suspension expression.
type offering interface {
	offer() any
}

// delegating is the structural interface of a delegation expression
// in a Generator[T].
type delegating[T any] interface {
	source() Source[T]
}

// raising is the structural interface of an error raised by body logic.
type raising interface {
	raised() error
}

// exiting is the structural interface of an explicit result-producing exit.
type exiting interface {
	exit() any
}

// region is the structural interface of a recovery or finalization region.
// The engine runs enter as a new frame; recovery and finalizer report
// whether the region intercepts errors or runs cleanup.
type region interface {
	resumer
	enter() kont.Expr[final]
	recovery() (func(error) kont.Expr[final], bool)
	finalizer() (kont.Expr[final], bool)
}

// yieldOp suspends the generator and offers value to the driver.
// It is resumed with the value of the next Next call.
type yieldOp[T any] struct {
	kont.Phantom[sent[T]]
	value T
}

func (o yieldOp[T]) offer() any { return o.value }

func (yieldOp[T]) resumeWith(v any) kont.Resumed { return box[T](v) }

// delegateOp drives src until it completes and is resumed with its result.
type delegateOp[T any] struct {
	kont.Phantom[sent[T]]
	src Source[T]
}

func (o delegateOp[T]) source() Source[T] { return o.src }

func (delegateOp[T]) resumeWith(v any) kont.Resumed { return box[T](v) }

// raiseOp raises err where it is performed. Never resumed.
type raiseOp[A any] struct {
	kont.Phantom[A]
	err error
}

func (o raiseOp[A]) raised() error { return o.err }

// exitOp terminates the generator with value, running enclosing
// finalization regions on the way out. Never resumed.
type exitOp[A, T any] struct {
	kont.Phantom[A]
	value T
}

func (o exitOp[A, T]) exit() any { return o.value }

// tryOp runs body and, when an error reaches it, continues with handle.
type tryOp[A any] struct {
	kont.Phantom[sent[A]]
	body   kont.Eff[A]
	handle func(error) kont.Eff[A]
}

func (o tryOp[A]) enter() kont.Expr[final] { return erase(o.body) }

func (o tryOp[A]) recovery() (func(error) kont.Expr[final], bool) {
	return func(err error) kont.Expr[final] { return erase(o.handle(err)) }, true
}

func (tryOp[A]) finalizer() (kont.Expr[final], bool) { return kont.Expr[final]{}, false }

func (tryOp[A]) resumeWith(v any) kont.Resumed { return box[A](v) }

// finallyOp runs body and then cleanup, however body ends.
type finallyOp[A any] struct {
	kont.Phantom[sent[A]]
	body    kont.Eff[A]
	cleanup kont.Eff[struct{}]
}

func (o finallyOp[A]) enter() kont.Expr[final] { return erase(o.body) }

func (finallyOp[A]) recovery() (func(error) kont.Expr[final], bool) { return nil, false }

func (o finallyOp[A]) finalizer() (kont.Expr[final], bool) { return erase(o.cleanup), true }

func (finallyOp[A]) resumeWith(v any) kont.Resumed { return box[A](v) }
