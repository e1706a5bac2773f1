// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// awaitable is the structural interface of a yielded value the driver
// must settle before resuming: Future[T] for every T.
type awaitable interface {
	await() (any, error)
}

// Await suspends a Generator[any] body until f settles.
// The result is the resolved value; a rejection is raised at this point
// and can be recovered with Try.
func Await[T any](f *Future[T]) kont.Eff[T] {
	return YieldBind[any](f, func(v any) kont.Eff[T] {
		t, _ := v.(T)
		return kont.Pure(t)
	})
}

// Exec drives g to completion on the calling goroutine and returns its
// final value. Awaited futures are polled without blocking; while none
// can make progress Exec waits with adaptive backoff (iox.Backoff).
// Does not spawn goroutines or create channels.
func Exec(g *Generator[any]) (any, error) {
	t := Spawn(g)
	var bo iox.Backoff
	for {
		v, err := t.Poll()
		if !iox.IsWouldBlock(err) {
			return v, err
		}
		bo.Wait()
	}
}
