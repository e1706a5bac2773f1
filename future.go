// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// futureCapacity is the bounded capacity of the settlement queue.
// Only the first settler enqueues, so the queue never fills.
const futureCapacity = 2

// settlement is the outcome carried from the settling goroutine to the poller.
type settlement[T any] struct {
	value T
	err   error
}

// Future is a single-resolution future.
//
// Any goroutine may settle it with Resolve or Reject; the first settlement
// wins and later ones are ignored. A single goroutine polls it, typically
// the driver of the generator that awaits it. The settlement travels
// through a bounded lock-free SPSC queue from lfq, whose only producer is
// the winning settler.
type Future[T any] struct {
	q       lfq.SPSC[settlement[T]]
	claimed atomix.Uint32
	slot    settlement[T]
	settled bool
	result  settlement[T]
}

// NewFuture creates a pending future.
func NewFuture[T any]() *Future[T] {
	f := &Future[T]{}
	f.q.Init(futureCapacity)
	return f
}

// Resolved creates a future already resolved with v.
func Resolved[T any](v T) *Future[T] {
	f := NewFuture[T]()
	f.Resolve(v)
	return f
}

// Rejected creates a future already rejected with err.
func Rejected[T any](err error) *Future[T] {
	f := NewFuture[T]()
	f.Reject(err)
	return f
}

// Resolve settles f with v. Reports whether this call settled f.
func (f *Future[T]) Resolve(v T) bool {
	return f.settle(settlement[T]{value: v})
}

// Reject settles f with err. Reports whether this call settled f.
// err must not be nil.
func (f *Future[T]) Reject(err error) bool {
	if err == nil {
		panic("gen: Reject with nil error")
	}
	return f.settle(settlement[T]{err: err})
}

func (f *Future[T]) settle(s settlement[T]) bool {
	if f.claimed.Add(1) != 1 {
		return false
	}
	f.slot = s
	if err := f.q.Enqueue(&f.slot); err != nil {
		panic("gen: future settlement queue full")
	}
	return true
}

// Poll returns the settlement of f without blocking.
// Returns iox.ErrWouldBlock while f is pending, the rejection error if f
// was rejected, or the resolved value.
func (f *Future[T]) Poll() (T, error) {
	if !f.settled {
		s, err := f.q.Dequeue()
		if err != nil {
			var zero T
			return zero, err
		}
		f.result, f.settled = s, true
	}
	return f.result.value, f.result.err
}

// await is Poll with the value erased, for drivers of Generator[any].
func (f *Future[T]) await() (any, error) {
	return f.Poll()
}
