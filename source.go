// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package gen

import (
	"iter"
	"runtime"
	"unicode/utf8"
)

type sourceKind uint8

const (
	sourceGenerator sourceKind = iota
	sourceValues
	sourceText
	sourceSeq
)

// Source is a producer a generator body can delegate to with Delegate.
// It is a tagged variant over another generator, a slice, the characters
// of a string and an iter.Seq. A Source value is immutable: every
// delegation opens a fresh cursor over it, except that a generator
// source shares the generator's own state.
type Source[T any] struct {
	kind  sourceKind
	gen   *Generator[T]
	items []T
	seq   iter.Seq[T]
}

// From delegates to g. Next, Throw and Return reach g unchanged and the
// final value of g becomes the result of the delegation.
func From[T any](g *Generator[T]) Source[T] {
	return Source[T]{kind: sourceGenerator, gen: g}
}

// Values delegates to a finite sequence: each element is offered in turn,
// then the delegation completes with the absent value.
func Values[T any](items ...T) Source[T] {
	return Source[T]{kind: sourceValues, items: items}
}

// Text delegates to the characters of s, offering one rune at a time as a
// string. T must be string or an interface type that holds strings.
func Text[T any](s string) Source[T] {
	if _, ok := any("").(T); !ok {
		panic("gen: Text requires a string element type")
	}
	items := make([]T, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		items = append(items, any(string(r)).(T))
	}
	return Source[T]{kind: sourceText, items: items}
}

// Seq delegates to an iterator. The iterator is pulled one element per
// driver call and stopped when exhausted, on Throw and on Return. A
// generator dropped while delegating to it stops it once collected.
func Seq[T any](seq iter.Seq[T]) Source[T] {
	return Source[T]{kind: sourceSeq, seq: seq}
}

// cursor is the per-delegation position in a Source.
type cursor[T any] struct {
	src     Source[T]
	pos     int
	next    func() (T, bool)
	stop    func()
	cleanup runtime.Cleanup
	pulling bool
}

// open starts a delegation to s on behalf of owner. A pulled iterator
// runs on its own coroutine, so its stop is tied to owner's lifetime.
func (s Source[T]) open(owner *Generator[T]) *cursor[T] {
	c := &cursor[T]{src: s}
	if s.kind == sourceSeq {
		c.next, c.stop = iter.Pull(s.seq)
		c.cleanup = runtime.AddCleanup(owner, stopPull, c.stop)
		c.pulling = true
	}
	return c
}

func stopPull(stop func()) { stop() }

// release stops a pulled iterator. Safe to call more than once.
func (c *cursor[T]) release() {
	if !c.pulling {
		return
	}
	c.pulling = false
	c.cleanup.Stop()
	c.stop()
}

// deliver forwards one driver command to the source.
// A Done result ends the delegation; a non-nil error is raised in the
// delegating frame.
func (c *cursor[T]) deliver(s signal[T]) (Result[T], error) {
	switch c.src.kind {
	case sourceGenerator:
		switch s.kind {
		case signalThrow:
			return c.src.gen.Throw(s.err)
		case signalReturn:
			return c.src.gen.Return(s.ret)
		}
		v, _ := s.value.(T)
		return c.src.gen.Next(v)
	case sourceSeq:
		if s.kind == signalNext {
			if v, ok := c.next(); ok {
				return Result[T]{Value: v}, nil
			}
		}
		c.release()
	default:
		if s.kind == signalNext && c.pos < len(c.src.items) {
			v := c.src.items[c.pos]
			c.pos++
			return Result[T]{Value: v}, nil
		}
		c.pos = len(c.src.items)
	}
	// Sequences have no body to recover or clean up: a throw closes them
	// and re-raises, a return closes them and keeps unwinding.
	switch s.kind {
	case signalThrow:
		return Result[T]{Done: true}, s.err
	case signalReturn:
		return Result[T]{Value: s.ret, Done: true}, nil
	}
	return Result[T]{Done: true}, nil
}
