// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"errors"

	"code.hybscloud.com/kont"
)

// ErrRunning is returned by a driver call issued while the generator is
// executing its body, i.e. by the body itself.
var ErrRunning = errors.New("gen: generator is already running")

// State is the execution state of a Generator.
type State uint8

const (
	// SuspendedStart: created, body not yet executed.
	SuspendedStart State = iota
	// SuspendedYield: paused at a suspension point.
	SuspendedYield
	// Running: executing body logic inside a driver call.
	Running
	// Completed: finished. Terminal.
	Completed
)

func (s State) String() string {
	switch s {
	case SuspendedStart:
		return "suspended-start"
	case SuspendedYield:
		return "suspended-yield"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return "invalid"
}

// Result is the record produced by every driver call.
// Done is false while the generator is paused and Value is the value it
// offered; Done is true once it finished and Value is its final result.
// The absent value is the zero value of T.
type Result[T any] struct {
	Value T
	Done  bool
}

type frameKind uint8

const (
	frameBody frameKind = iota
	frameRecover
	frameCleanup
	frameDelegate
)

// frame is one level of the resumable continuation point.
// Kont frames hold the suspension their computation is paused on;
// a delegation frame holds the cursor receiving forwarded commands.
type frame[T any] struct {
	kind    frameKind
	susp    *kont.Suspension[final]
	region  region
	cursor  *cursor[T]
	pending signal[T]
}

// intercept reports the computation that replaces f when s reaches it:
// the recovery handler for an error inside a Try body, or the cleanup of
// a Finally region. ok is false when s passes through f.
func (f *frame[T]) intercept(s signal[T]) (expr kont.Expr[final], ok bool) {
	if f.region == nil || f.kind == frameCleanup {
		return expr, false
	}
	if s.kind == signalThrow && f.kind == frameBody {
		if handle, found := f.region.recovery(); found {
			f.kind = frameRecover
			return handle(s.err), true
		}
	}
	if cleanup, found := f.region.finalizer(); found {
		f.kind = frameCleanup
		f.pending = s
		return cleanup, true
	}
	return expr, false
}

type signalKind uint8

const (
	signalNext signalKind = iota
	signalThrow
	signalReturn
)

// signal is a completion travelling down the frame stack: a value for the
// active suspension point, an error, or a forced return.
type signal[T any] struct {
	kind  signalKind
	value any
	err   error
	ret   T
}

func deliver[T any](v any) signal[T] {
	return signal[T]{kind: signalNext, value: v}
}

func raise[T any](err error) signal[T] {
	return signal[T]{kind: signalThrow, err: err}
}

func exit[T any](v T) signal[T] {
	return signal[T]{kind: signalReturn, ret: v}
}

// Generator is a resumable execution of a generator body.
//
// A Generator is driven from one goroutine at a time. It owns its frame
// stack; the body's captured variables are mutated only while a driver
// call is executing it.
type Generator[T any] struct {
	start  func() kont.Expr[final]
	frames []frame[T]
	state  State
	serial Serial
}

// New invokes a Cont-world generator definition. body is called, and
// the computation it returns stepped, on the first call to Next; until
// then no body code runs. Every call to New yields an independent
// generator.
func New[T any](body func() kont.Eff[T]) *Generator[T] {
	return &Generator[T]{
		start:  func() kont.Expr[final] { return erase(body()) },
		serial: nextSerial(),
	}
}

// NewExpr invokes an Expr-world generator definition.
// body is called on the first call to Next.
func NewExpr[T any](body func() kont.Expr[T]) *Generator[T] {
	return &Generator[T]{
		start:  func() kont.Expr[final] { return eraseExpr(body()) },
		serial: nextSerial(),
	}
}

// State returns the current state of g.
func (g *Generator[T]) State() State {
	return g.state
}

// Done reports whether g has completed.
func (g *Generator[T]) Done() bool {
	return g.state == Completed
}

// Serial returns the serial number assigned to g.
func (g *Generator[T]) Serial() Serial {
	return g.serial
}

func (g *Generator[T]) top() *frame[T] {
	return &g.frames[len(g.frames)-1]
}

func (g *Generator[T]) push(f frame[T]) {
	g.frames = append(g.frames, f)
}

func (g *Generator[T]) pop() frame[T] {
	n := len(g.frames) - 1
	f := g.frames[n]
	g.frames[n] = frame[T]{}
	g.frames = g.frames[:n]
	return f
}

// close releases the body and every frame and marks g Completed.
func (g *Generator[T]) close() {
	for i := range g.frames {
		if susp := g.frames[i].susp; susp != nil {
			susp.Discard()
		}
		if c := g.frames[i].cursor; c != nil {
			c.release()
		}
	}
	g.frames = nil
	g.start = nil
	g.state = Completed
}

// abandon completes g when a panic escapes its body and re-panics.
func (g *Generator[T]) abandon() {
	if r := recover(); r != nil {
		for i := range g.frames {
			if c := g.frames[i].cursor; c != nil {
				c.release()
			}
		}
		g.frames = nil
		g.start = nil
		g.state = Completed
		panic(r)
	}
}
