// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"code.hybscloud.com/iox"
)

// Task drives a Generator[any] whose body awaits futures.
//
// Values the generator yields that are futures are polled until settled:
// the generator is resumed with the resolved value or the rejection is
// thrown into it. Any other yielded value is sent straight back.
type Task struct {
	g       *Generator[any]
	pending awaitable
	send    any
	steps   uint64
	done    bool
	value   any
	err     error
}

// Spawn creates a task for g. g does not run until the first Poll.
func Spawn(g *Generator[any]) *Task {
	return &Task{g: g}
}

// Poll advances the task as far as it can without blocking.
// Returns iox.ErrWouldBlock while an awaited future is pending, and the
// final value and error of the generator once it completed.
func (t *Task) Poll() (any, error) {
	for !t.done {
		if t.pending == nil {
			t.step(t.g.Next(t.send))
			continue
		}
		v, err := t.pending.await()
		if iox.IsWouldBlock(err) {
			return nil, err
		}
		t.pending = nil
		if err != nil {
			t.step(t.g.Throw(err))
		} else {
			t.step(t.g.Next(v))
		}
	}
	return t.value, t.err
}

// Cancel forces the generator to return. Finally regions still run and
// may await again, so the task completes on a later Poll.
func (t *Task) Cancel() {
	if t.done {
		return
	}
	t.pending = nil
	t.step(t.g.Return(nil))
}

// Done reports whether the task completed.
func (t *Task) Done() bool {
	return t.done
}

func (t *Task) step(r Result[any], err error) {
	t.steps++
	if err != nil || r.Done {
		t.done, t.value, t.err = true, r.Value, err
		return
	}
	t.send = nil
	if a, ok := r.Value.(awaitable); ok {
		t.pending = a
		return
	}
	t.send = r.Value
}

// Run drives several generators to completion on the calling goroutine,
// interleaving them one Poll at a time, and returns their final values
// and errors by position. Backs off with iox.Backoff only when no
// generator made progress. Does not spawn goroutines or create channels.
func Run(gs ...*Generator[any]) ([]any, []error) {
	tasks := make([]*Task, len(gs))
	for i, g := range gs {
		tasks[i] = Spawn(g)
	}
	values := make([]any, len(gs))
	errs := make([]error, len(gs))
	live := len(tasks)
	var bo iox.Backoff
	for live > 0 {
		progress := false
		for i, t := range tasks {
			if t == nil {
				continue
			}
			before := t.steps
			v, err := t.Poll()
			if t.steps != before {
				progress = true
			}
			if iox.IsWouldBlock(err) {
				continue
			}
			values[i], errs[i] = v, err
			tasks[i] = nil
			live--
		}
		if !progress {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return values, errs
}
