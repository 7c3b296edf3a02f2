// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// Unit is the result type of computations that produce no information,
// such as [PutState] and [ModifyState].
type Unit = struct{}

// Identity returns its argument.
// Identity[A] is a static function value per type instantiation, so passing
// it to MapMaybe or MapState does not allocate a closure.
func Identity[A any](a A) A { return a }

// Compose is left to right function composition: Compose(f, g)(x) == g(f(x)).
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and returns a.
func Const[B, A any](a A) func(B) A {
	return func(B) A {
		return a
	}
}
