// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import "iter"

// All returns an iterator over the values g offers, resuming it with the
// absent value each time. Iteration ends when g completes; an error that
// completes g is yielded once with the zero value.
//
// Breaking out of the loop forces g to return. Cleanups that suspend
// are driven to completion with the absent value, and an error raised
// by a cleanup is re-panicked, since the loop body can no longer
// receive it.
func (g *Generator[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		for {
			r, err := g.Next(zero)
			if err != nil {
				yield(zero, err)
				return
			}
			if r.Done {
				return
			}
			if !yield(r.Value, nil) {
				g.drain()
				return
			}
		}
	}
}

// drain forces g to return and runs its cleanups to completion.
func (g *Generator[T]) drain() {
	var zero T
	r, err := g.Return(zero)
	for err == nil && !r.Done {
		r, err = g.Next(zero)
	}
	if err != nil {
		panic(err)
	}
}
