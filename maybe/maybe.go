/*
Package maybe implements an option type for values which may be absent.

Block attributes are sparse: a block may or may not carry a named color slug,
and may or may not carry a custom color value. Maybe makes this explicit in
the type instead of overloading the empty string.

A nil Maybe is a legal value and is treated as Nothing by the package-level
helpers Get, WithDefault and IsJust. Methods must not be called on a nil Maybe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is either Just a value or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	Get() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromPtr returns Just(*p) for non-nil p, Nothing otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// Get returns the value of x, if present. nil is Nothing.
func Get[T any](x Maybe[T]) (T, bool) {
	if x == nil {
		var zero T
		return zero, false
	}
	return x.Get()
}

// IsJust is a predicate for x carrying a value. nil is Nothing.
func IsJust[T any](x Maybe[T]) bool {
	_, ok := Get(x)
	return ok
}

// WithDefault returns the value of x or def. nil is Nothing.
func WithDefault[T any](x Maybe[T], def T) T {
	if v, ok := Get(x); ok {
		return v
	}
	return def
}

// AndThen chains f to the value of x, if present. nil is Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := Get(x); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if present. nil is Nothing.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	if v, ok := Get(x); ok {
		return Just(f(v))
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used for switch-style pattern matching:
//
//     switch m := x.Match(); m {
//     case m.Just(&v): …
//     case m.Nothing(): …
//     }
//
// Matching requires T to be comparable.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
