// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"fmt"

	"code.hybscloud.com/kont"
)

// Next resumes g.
//
// On the first call the body starts and v is discarded: no suspension
// point exists yet to receive it. Afterwards v becomes the value of the
// suspension expression g is paused on. Next returns {offered, false} at
// the next suspension point or {result, true} when the body completes.
// An error raised by the body and not recovered completes g and is
// returned. After completion Next returns {absent, true}.
func (g *Generator[T]) Next(v T) (Result[T], error) {
	switch g.state {
	case Completed:
		return Result[T]{Done: true}, nil
	case Running:
		return Result[T]{}, ErrRunning
	}
	starting := g.state == SuspendedStart
	g.state = Running
	defer g.abandon()
	if starting {
		body := g.start()
		g.start = nil
		g.push(frame[T]{kind: frameBody})
		s, r, suspended := g.settle(kont.StepExpr(body))
		if suspended {
			return r, nil
		}
		return g.drive(s)
	}
	return g.drive(deliver[T](v))
}

// Throw raises err at the suspension point g is paused on, as if the
// suspension expression itself had failed.
//
// An enclosing Try region recovers err and Throw returns the next record
// as Next would. Otherwise err is returned and g is Completed. If g has
// not started or has completed, no body code runs: g is Completed and
// Throw returns {absent, true} together with err.
func (g *Generator[T]) Throw(err error) (Result[T], error) {
	switch g.state {
	case SuspendedStart, Completed:
		g.close()
		return Result[T]{Done: true}, err
	case Running:
		return Result[T]{}, ErrRunning
	}
	g.state = Running
	defer g.abandon()
	return g.drive(raise[T](err))
}

// Return forces g to terminate at the suspension point it is paused on,
// as if a return statement had executed there.
//
// Enclosing Finally cleanups still run. Return yields {v, true} unless a
// cleanup suspends, in which case that suspension is returned and later
// calls continue the cleanup, or a cleanup raises or returns, which
// overrides v. If g has not started or has completed, Return returns
// {v, true} without running body code.
func (g *Generator[T]) Return(v T) (Result[T], error) {
	switch g.state {
	case SuspendedStart, Completed:
		g.close()
		return Result[T]{Value: v, Done: true}, nil
	case Running:
		return Result[T]{}, ErrRunning
	}
	g.state = Running
	defer g.abandon()
	return g.drive(exit(v))
}

// drive delivers s to the top frame and keeps unwinding or stepping until
// g suspends again or its stack is empty.
func (g *Generator[T]) drive(s signal[T]) (Result[T], error) {
	for len(g.frames) > 0 {
		top := g.top()
		if top.kind == frameDelegate {
			r, err := top.cursor.deliver(s)
			if err == nil && !r.Done {
				g.state = SuspendedYield
				return r, nil
			}
			g.pop()
			switch {
			case err != nil:
				s = raise[T](err)
			case s.kind == signalReturn:
				s = exit(r.Value)
			default:
				s = deliver[T](r.Value)
			}
			continue
		}

		var res final
		var next *kont.Suspension[final]
		if s.kind == signalNext {
			susp := top.susp
			top.susp = nil
			res, next = susp.Resume(susp.Op().(resumer).resumeWith(s.value))
		} else {
			if top.susp != nil {
				top.susp.Discard()
				top.susp = nil
			}
			expr, ok := top.intercept(s)
			if !ok {
				g.pop()
				continue
			}
			res, next = kont.StepExpr(expr)
		}

		var r Result[T]
		var suspended bool
		if s, r, suspended = g.settle(res, next); suspended {
			return r, nil
		}
	}
	return g.finish(s)
}

// settle records the outcome of stepping the top frame's computation.
// Effects that do not pause g are handled in place. It returns the
// record and true when g suspended, or the signal to deliver next.
func (g *Generator[T]) settle(res final, next *kont.Suspension[final]) (signal[T], Result[T], bool) {
	for {
		top := g.top()
		if next == nil {
			if top.kind != frameCleanup && top.region != nil {
				if cleanup, ok := top.region.finalizer(); ok {
					top.kind = frameCleanup
					top.pending = deliver[T](res.value)
					res, next = kont.StepExpr(cleanup)
					continue
				}
			}
			done := g.pop()
			if done.kind == frameCleanup {
				return done.pending, Result[T]{}, false
			}
			return deliver[T](res.value), Result[T]{}, false
		}

		top.susp = next
		switch op := next.Op().(type) {
		case offering:
			g.state = SuspendedYield
			return signal[T]{}, Result[T]{Value: coerce[T](op.offer(), "yield", g)}, true
		case delegating[T]:
			g.push(frame[T]{kind: frameDelegate, cursor: op.source().open(g)})
			return deliver[T](nil), Result[T]{}, false
		case raising:
			next.Discard()
			top.susp = nil
			return raise[T](op.raised()), Result[T]{}, false
		case exiting:
			next.Discard()
			top.susp = nil
			return exit(coerce[T](op.exit(), "return", g)), Result[T]{}, false
		case region:
			g.push(frame[T]{kind: frameBody, region: op})
			res, next = kont.StepExpr(op.enter())
		default:
			panic(fmt.Sprintf("gen: unhandled effect %T in %T", op, g))
		}
	}
}

// finish completes g with the signal that emptied its stack.
func (g *Generator[T]) finish(s signal[T]) (Result[T], error) {
	g.frames = nil
	g.state = Completed
	switch s.kind {
	case signalThrow:
		return Result[T]{Done: true}, s.err
	case signalReturn:
		return Result[T]{Value: s.ret, Done: true}, nil
	}
	v, _ := s.value.(T)
	return Result[T]{Value: v, Done: true}, nil
}

// coerce converts a value offered or returned by body logic to T.
// A nil value is absent; any other value must be a T.
func coerce[T any](v any, what string, g any) T {
	t, ok := v.(T)
	if !ok && v != nil {
		panic(fmt.Sprintf("gen: %s of %T in %T", what, v, g))
	}
	return t
}
