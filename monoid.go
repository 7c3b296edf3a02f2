// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import "golang.org/x/exp/constraints"

// Semigroup is an associative binary operation on A.
type Semigroup[A any] interface {
	Concat(x, y A) A
}

// Monoid is a Semigroup with an identity element:
// Concat(Empty(), x) == Concat(x, Empty()) == x.
type Monoid[A any] interface {
	Semigroup[A]
	Empty() A
}

// Number is the set of types the numeric monoids operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum is the additive monoid.
type Sum[N Number] struct{}

func (Sum[N]) Concat(x, y N) N { return x + y }
func (Sum[N]) Empty() N        { return 0 }

// Product is the multiplicative monoid.
type Product[N Number] struct{}

func (Product[N]) Concat(x, y N) N { return x * y }
func (Product[N]) Empty() N        { return 1 }

// MaybeMonoid lifts a Semigroup on A into a Monoid on Maybe[A].
// Nothing is the identity; two Just values are combined with S.
type MaybeMonoid[A any] struct {
	S Semigroup[A]
}

func (m MaybeMonoid[A]) Concat(x, y Maybe[A]) Maybe[A] {
	if !x.ok {
		return y
	}
	if !y.ok {
		return x
	}
	return Just(m.S.Concat(x.value, y.value))
}

func (MaybeMonoid[A]) Empty() Maybe[A] { return Nothing[A]() }

// FirstMonoid keeps the leftmost present value; Concat is [Maybe.Alt].
type FirstMonoid[A any] struct{}

func (FirstMonoid[A]) Concat(x, y Maybe[A]) Maybe[A] { return x.Alt(y) }
func (FirstMonoid[A]) Empty() Maybe[A]               { return Nothing[A]() }

// ConcatAll folds xs from the left with m, starting from m.Empty().
func ConcatAll[A any](m Monoid[A], xs ...A) A {
	acc := m.Empty()
	for _, x := range xs {
		acc = m.Concat(acc, x)
	}
	return acc
}
