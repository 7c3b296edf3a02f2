// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "fmt"

// Maybe represents an optional value: either Just a value of type A, or Nothing.
//
// Presence is a tag, not a property of the value. Just(0), Just("") and
// Just(false) are all present. The zero Maybe is Nothing.
type Maybe[A any] struct {
	ok    bool
	value A
}

// Just creates a Maybe holding a.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{ok: true, value: a}
}

// Nothing creates an empty Maybe.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// FromNullable creates a Maybe from a possibly nil value.
// Nil pointers, maps, slices, channels, funcs and interfaces become Nothing;
// every other value, including zero numbers and empty strings, becomes Just.
func FromNullable[A any](a A) Maybe[A] {
	if !Exists(a) {
		return Nothing[A]()
	}
	return Just(a)
}

// FromPtr creates a Maybe from a pointer: nil is Nothing, otherwise Just(*p).
func FromPtr[A any](p *A) Maybe[A] {
	if p == nil {
		return Nothing[A]()
	}
	return Just(*p)
}

// FromOk adapts the comma-ok idiom: Just(a) if ok, Nothing otherwise.
func FromOk[A any](a A, ok bool) Maybe[A] {
	if !ok {
		return Nothing[A]()
	}
	return Just(a)
}

// IsNothing returns true if m holds no value.
func (m Maybe[A]) IsNothing() bool {
	return !m.ok
}

// IsJust returns true if m holds a value.
func (m Maybe[A]) IsJust() bool {
	return m.ok
}

// Get returns the held value and true, or zero and false.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.ok
}

// ToPtr returns a pointer to a copy of the held value, or nil if m is Nothing.
// Prefer [Maybe.GetOr], [FoldMaybe] or [MatchMaybe]; ToPtr reintroduces a nil check.
func (m Maybe[A]) ToPtr() *A {
	if !m.ok {
		return nil
	}
	v := m.value
	return &v
}

// ToBool returns false if m is Nothing, otherwise the truthiness of the
// held value (see [Truthy]).
func (m Maybe[A]) ToBool() bool {
	return m.ok && Truthy(m.value)
}

// GetOr returns the held value, or def if m is Nothing.
func (m Maybe[A]) GetOr(def A) A {
	if !m.ok {
		return def
	}
	return m.value
}

// GetOrError returns the held value, or a [*NothingError] carrying message.
func (m Maybe[A]) GetOrError(message string) (A, error) {
	if !m.ok {
		var zero A
		return zero, nothingError(message)
	}
	return m.value, nil
}

// GetOrErr is GetOrError with the message "Maybe was Nothing".
func (m Maybe[A]) GetOrErr() (A, error) {
	return m.GetOrError(defaultNothingMessage)
}

// MustGetMessage returns the held value.
// Unsafe: panics with a [*NothingError] carrying message if m is Nothing.
func (m Maybe[A]) MustGetMessage(message string) A {
	v, err := m.GetOrError(message)
	if err != nil {
		panic(err)
	}
	return v
}

// MustGet returns the held value.
// Unsafe: panics with a [*NothingError] if m is Nothing.
func (m Maybe[A]) MustGet() A {
	return m.MustGetMessage(defaultNothingMessage)
}

// Instead replaces Nothing with Just(def). A present m is returned unchanged.
func (m Maybe[A]) Instead(def A) Maybe[A] {
	if !m.ok {
		return Just(def)
	}
	return m
}

// On calls f with the held value if present. Returns m unchanged.
func (m Maybe[A]) On(f func(A)) Maybe[A] {
	if m.ok {
		f(m.value)
	}
	return m
}

// Unless calls f if m is Nothing. Returns m unchanged.
func (m Maybe[A]) Unless(f func()) Maybe[A] {
	if !m.ok {
		f()
	}
	return m
}

// Equals reports whether m and other are both Nothing, or both Just with
// values equal under [Eq].
func (m Maybe[A]) Equals(other Maybe[A]) bool {
	if m.ok != other.ok {
		return false
	}
	if !m.ok {
		return true
	}
	return Eq(m.value, other.value)
}

// Alt returns m if present, else other.
func (m Maybe[A]) Alt(other Maybe[A]) Maybe[A] {
	if m.ok {
		return m
	}
	return other
}

// Filter returns m if present and pred holds for its value, else Nothing.
func (m Maybe[A]) Filter(pred func(A) bool) Maybe[A] {
	if m.ok && pred(m.value) {
		return m
	}
	return Nothing[A]()
}

// String formats m as Just(v) or Nothing.
func (m Maybe[A]) String() string {
	if !m.ok {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

// BindMaybe sequences two optional computations (monadic bind).
// If m is present, f is applied to its value; otherwise the result is Nothing.
func BindMaybe[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	return f(m.value)
}

// MapMaybe applies a plain function to the held value.
//
// The result is re-wrapped with [FromNullable]: if f returns a nil pointer,
// map, slice, channel, func or interface, the result is Nothing rather
// than Just(nil).
func MapMaybe[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	return BindMaybe(m, func(a A) Maybe[B] {
		return FromNullable(f(a))
	})
}

// ExtendMaybe applies f to the whole container if present and wraps the
// result with Just. Unlike [BindMaybe], f receives m itself.
func ExtendMaybe[A, B any](m Maybe[A], f func(Maybe[A]) B) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	return Just(f(m))
}

// WhenMaybe replaces a present value with b. Nothing stays Nothing.
func WhenMaybe[A, B any](m Maybe[A], b B) Maybe[B] {
	return MapMaybe(m, Const[A](b))
}

// ApplyMaybe applies the function held by mf to the value held by m.
// The result is Nothing if either is Nothing.
func ApplyMaybe[A, B any](m Maybe[A], mf Maybe[func(A) B]) Maybe[B] {
	return BindMaybe(mf, func(f func(A) B) Maybe[B] {
		return MapMaybe(m, f)
	})
}

// Prop looks up key in a present map. The result is Nothing if m is
// Nothing, the key is missing, or the stored value is nil.
func Prop[K comparable, V any](m Maybe[map[K]V], key K) Maybe[V] {
	return BindMaybe(m, func(kv map[K]V) Maybe[V] {
		v, ok := kv[key]
		if !ok {
			return Nothing[V]()
		}
		return FromNullable(v)
	})
}

// FoldMaybe reduces m to a plain value: MapMaybe(m, f).GetOr(def).
func FoldMaybe[A, B any](m Maybe[A], def B, f func(A) B) B {
	return MapMaybe(m, f).GetOr(def)
}

// MatchMaybe pattern matches on m, calling onNothing or onJust.
func MatchMaybe[A, T any](m Maybe[A], onNothing func() T, onJust func(A) T) T {
	if m.ok {
		return onJust(m.value)
	}
	return onNothing()
}

// SequenceMaybe turns a slice of Maybe into a Maybe of slice.
// The result is Nothing if any element is Nothing.
func SequenceMaybe[A any](ms []Maybe[A]) Maybe[[]A] {
	return TraverseMaybe(ms, Identity[Maybe[A]])
}

// TraverseMaybe applies f to each element, collecting the results.
// It stops at the first Nothing.
func TraverseMaybe[A, B any](xs []A, f func(A) Maybe[B]) Maybe[[]B] {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		m := f(x)
		if !m.ok {
			return Nothing[[]B]()
		}
		out = append(out, m.value)
	}
	return Just(out)
}
