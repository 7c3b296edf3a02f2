// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"fmt"

	"github.com/pkg/errors"
)

// Either represents a value that is either Left (error) or Right (success).
// Exactly one branch is set; the zero Either is Left of the zero L.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left (error) value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right creates a Right (success) value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// EitherOf builds an Either from two optional branches.
// Exactly one of l and r must be non-nil: both yields [ErrBothBranches],
// neither yields [ErrNoBranch].
func EitherOf[L, R any](l *L, r *R) (Either[L, R], error) {
	switch {
	case l != nil && r != nil:
		return Either[L, R]{}, errors.WithStack(ErrBothBranches)
	case l != nil:
		return Left[L, R](*l), nil
	case r != nil:
		return Right[L](*r), nil
	}
	return Either[L, R]{}, errors.WithStack(ErrNoBranch)
}

// MustEither is EitherOf that panics on malformed input.
func MustEither[L, R any](l *L, r *R) Either[L, R] {
	e, err := EitherOf(l, r)
	if err != nil {
		panic(err)
	}
	return e
}

// FromMaybe converts m to Right if present, else Left(leftDefault).
func FromMaybe[L, R any](leftDefault L, m Maybe[R]) Either[L, R] {
	if v, ok := m.Get(); ok {
		return Right[L](v)
	}
	return Left[L, R](leftDefault)
}

// FromNullableEither converts r to Right if it is truthy, else Left(leftDefault).
//
// Note: any falsy value (see [Truthy]), including 0, "" and false, becomes
// Left. This is stricter than [FromNullable] for Maybe, which only treats
// nil as absent.
func FromNullableEither[L, R any](leftDefault L, r R) Either[L, R] {
	if !Truthy(r) {
		return Left[L, R](leftDefault)
	}
	return Right[L](r)
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// GetOr returns the Right value, or def if e is Left.
func (e Either[L, R]) GetOr(def R) R {
	if !e.isRight {
		return def
	}
	return e.right
}

// Equals reports whether e and other are on the same branch with values
// equal under [Eq].
func (e Either[L, R]) Equals(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return Eq(e.right, other.right)
	}
	return Eq(e.left, other.left)
}

// Swap exchanges the branches.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// ToMaybe discards the Left value: Right(r) becomes Just(r), Left becomes Nothing.
func (e Either[L, R]) ToMaybe() Maybe[R] {
	if !e.isRight {
		return Nothing[R]()
	}
	return Just(e.right)
}

// String formats e as Left(v) or Right(v).
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// BindEither sequences two Either computations (monadic bind).
// A Left is propagated unchanged.
func BindEither[L, R, B any](e Either[L, R], f func(R) Either[L, B]) Either[L, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, B](e.left)
}

// MapEither applies a function to the Right value.
func MapEither[L, R, B any](e Either[L, R], f func(R) B) Either[L, B] {
	return BindEither(e, func(r R) Either[L, B] {
		return Right[L](f(r))
	})
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[L, F, R any](e Either[L, R], f func(L) F) Either[F, R] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, R](f(e.left))
}

// ApplyEither applies the function held by ef to the Right value of e.
//
// Left bias: if e is Left, its Left is returned whatever ef holds, so a
// failure of the argument is reported ahead of a failure of the function.
// Otherwise a Left ef is returned, and only Right/Right applies f.
func ApplyEither[L, R, B any](e Either[L, R], ef Either[L, func(R) B]) Either[L, B] {
	if !e.isRight {
		return Left[L, B](e.left)
	}
	if !ef.isRight {
		return Left[L, B](ef.left)
	}
	return Right[L](ef.right(e.right))
}

// SequenceEither turns a slice of Either into an Either of slice.
// The first Left, in slice order, is returned.
func SequenceEither[L, R any](es []Either[L, R]) Either[L, []R] {
	out := make([]R, 0, len(es))
	for _, e := range es {
		if !e.isRight {
			return Left[L, []R](e.left)
		}
		out = append(out, e.right)
	}
	return Right[L](out)
}
