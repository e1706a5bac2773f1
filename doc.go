// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package gen provides resumable generators (cooperative coroutines) built on
// the stepping boundary of [code.hybscloud.com/kont].
//
// A generator body is an ordinary kont computation that performs generator
// effects. The engine steps the body one effect at a time and keeps the paused
// position as an explicit stack of [code.hybscloud.com/kont.Suspension] frames,
// so no goroutine or native coroutine is involved.
//
// # Architecture
//
//   - Engine: [Generator] is a state machine over [State]. A driver issues
//     [Generator.Next], [Generator.Throw] and [Generator.Return]; each returns a
//     [Result] pair of offered value and completion flag.
//   - Suspension: [Yield] offers a value and evaluates to the value sent by the
//     following [Generator.Next]. The first Next only starts the body; its
//     argument is never observable.
//   - Delegation: [Delegate] forwards the driver protocol into a [Source]
//     (another generator, a slice, a string or an iter.Seq) and evaluates to the
//     inner result.
//   - Regions: [Try] recovers injected or raised errors; [Finally] runs cleanup on
//     completion, error and forced return. Cleanup may yield again.
//   - Async hosts: [Future], [Await], [Task], [Exec] and [Run] bridge single
//     resolution futures to driver calls with non-blocking polling
//     ([code.hybscloud.com/iox.ErrWouldBlock]) and adaptive backoff.
//
// # API Topologies
//
//   - Cont-world: [Yield], [YieldThen], [YieldBind], [Delegate], [DelegateThen],
//     [DelegateBind], [Throw], [Return], [Try], [Finally], [Loop].
//   - Expr-world: [ExprYieldThen], [ExprYieldBind], [ExprDelegateBind], [ExprLoop],
//     run with [NewExpr]. Bridge via [Reify] and [Reflect].
//
// # Example
//
//	g := gen.New(func() kont.Eff[string] {
//		return gen.YieldBind("foo", func(s string) kont.Eff[string] {
//			return gen.YieldThen("foo"+s, kont.Pure("done"))
//		})
//	})
//	r, _ := g.Next("")    // {foo false}
//	r, _ = g.Next("bar")  // {foobar false}
//	r, _ = g.Next("")     // {done true}
package gen
